package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/stockpile"
)

func newPlansCmd(g *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "plans",
		Short: "List the plans in the recipe book",
		Long: `List every plan in the recipe book with its step count.

With --search, only plans whose name, description, tags or step recipes
contain the query are listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, g, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "ottocraft plans: %v\n", err) //nolint:errcheck // best-effort stderr
				return errExit
			}
			defer e.close()
			if doPlans(cmd.Context(), e, search, stdout, stderr) != 0 {
				return errExit
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "only list plans matching this query")
	return cmd
}

// doPlans prints one line per plan: id, step count and name.
func doPlans(ctx context.Context, e *env, search string, stdout, stderr io.Writer) int {
	var (
		plans []domain.PlanSummary
		err   error
	)
	if search != "" {
		plans, err = e.engine.SearchPlans(ctx, search)
	} else {
		plans, err = e.engine.ListPlans(ctx)
	}
	if err != nil {
		fmt.Fprintf(stderr, "ottocraft plans: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}

	if len(plans) == 0 {
		fmt.Fprintln(stdout, "No plans found.") //nolint:errcheck // best-effort stdout
		return 0
	}
	for _, p := range plans {
		fmt.Fprintf(stdout, "%-14s %2d steps  %s\n", p.ID, p.StepCount, p.Name) //nolint:errcheck // best-effort stdout
	}
	return 0
}

func newShowCmd(g *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "show <plan>",
		Short: "Show a plan's recipes and starting stock",
		Long: `Display a plan: its name, description, tags, starting stock and every
recipe in order with its inputs and outputs.`,
		Example: `  ottocraft show swordsmith
  ottocraft --book forge.toml show nailer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, g, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "ottocraft show: %v\n", err) //nolint:errcheck // best-effort stderr
				return errExit
			}
			defer e.close()
			if doShow(cmd.Context(), e, args[0], stdout, stderr) != 0 {
				return errExit
			}
			return nil
		},
	}
}

func doShow(ctx context.Context, e *env, planID string, stdout, stderr io.Writer) int {
	spec, err := e.engine.GetPlan(ctx, planID)
	if err != nil {
		fmt.Fprintf(stderr, "ottocraft show: plan %q: %v\n", planID, err) //nolint:errcheck // best-effort stderr
		return 1
	}
	seq, err := e.engine.Preview(ctx, planID)
	if err != nil {
		fmt.Fprintf(stderr, "ottocraft show: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}

	w := &strings.Builder{}
	fmt.Fprintf(w, "%s (%s)\n", spec.Name, spec.ID)
	if spec.Description != "" {
		fmt.Fprintln(w, spec.Description)
	}
	if len(spec.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %s\n", strings.Join(spec.Tags, ", "))
	}
	if spec.Stock != nil {
		pile, err := stockpile.From(spec.Stock)
		if err != nil {
			fmt.Fprintf(stderr, "ottocraft show: %v\n", err) //nolint:errcheck // best-effort stderr
			return 1
		}
		fmt.Fprintf(w, "Starting stock:\n%s", stockListing(pile))
	}
	w.WriteString(seq.Display())
	io.WriteString(stdout, w.String()) //nolint:errcheck // best-effort stdout
	return 0
}
