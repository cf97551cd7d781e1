package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/stockpile"
)

func newSimulateCmd(g *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	var rounds int
	cmd := &cobra.Command{
		Use:   "simulate <plan>",
		Short: "Play a plan for a number of rounds without prompting",
		Long: `Run a plan from start to finish, printing every step and its outcome.

After each round the stockpile is printed, then the run is reset for the
next round. Proficiency and stock carry over between rounds. The
simulation stops early when the stockpile runs short of an input.`,
		Example: `  ottocraft simulate swordsmith
  ottocraft --seed 7 simulate apothecary --rounds 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rounds < 1 {
				fmt.Fprintf(stderr, "ottocraft simulate: --rounds must be at least 1, got %d\n", rounds) //nolint:errcheck // best-effort stderr
				return errExit
			}
			e, err := setup(cmd, g, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "ottocraft simulate: %v\n", err) //nolint:errcheck // best-effort stderr
				return errExit
			}
			defer e.close()
			if doSimulate(cmd.Context(), e, args[0], rounds, stdout, stderr) != 0 {
				return errExit
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 1, "number of rounds to play")
	return cmd
}

func doSimulate(ctx context.Context, e *env, planID string, rounds int, stdout, stderr io.Writer) int {
	run, err := e.engine.StartRun(ctx, planID)
	if err != nil {
		fmt.Fprintf(stderr, "ottocraft simulate: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}

	for round := 1; round <= rounds; round++ {
		fmt.Fprintf(stdout, "Round %d of %s\n", round, run.PlanName) //nolint:errcheck // best-effort stdout
		for !run.Cursor.Exhausted() {
			index := run.Cursor.Step()
			current, err := e.engine.Current(ctx, run.ID)
			if err != nil {
				fmt.Fprintf(stderr, "ottocraft simulate: %v\n", err) //nolint:errcheck // best-effort stderr
				return 1
			}
			fmt.Fprintf(stdout, "Step %d/%d: %s", index+1, run.Cursor.Len(), current) //nolint:errcheck // best-effort stdout

			out, err := e.engine.Step(ctx, run.ID)
			if errors.Is(err, domain.ErrInsufficientStock) {
				fmt.Fprintf(stderr, "ottocraft simulate: round %d stalled: %v\n", round, err) //nolint:errcheck // best-effort stderr
				printStock(stdout, run.Stock)
				return 1
			}
			if err != nil {
				fmt.Fprintf(stderr, "ottocraft simulate: %v\n", err) //nolint:errcheck // best-effort stderr
				return 1
			}
			fmt.Fprintf(stdout, "-> %s\n%s", out.Tier, outcomeText(out)) //nolint:errcheck // best-effort stdout
		}
		printStock(stdout, run.Stock)

		if round < rounds {
			if _, err := e.engine.Reset(ctx, run.ID); err != nil {
				fmt.Fprintf(stderr, "ottocraft simulate: %v\n", err) //nolint:errcheck // best-effort stderr
				return 1
			}
		}
	}
	return 0
}

// outcomeText is the outcome's listing, newline-terminated.
func outcomeText(out domain.Outcome) string {
	text := out.String()
	if out.Tier == domain.TierFail {
		text += "\n"
	}
	return text
}

func printStock(w io.Writer, pile *stockpile.Stockpile) {
	if pile == nil {
		return
	}
	fmt.Fprintf(w, "Stockpile:\n%s", stockListing(pile)) //nolint:errcheck // best-effort stdout
}

// stockListing is the pile's listing, newline-terminated.
func stockListing(pile *stockpile.Stockpile) string {
	if pile.Len() == 0 {
		return pile.String() + "\n"
	}
	return pile.String()
}
