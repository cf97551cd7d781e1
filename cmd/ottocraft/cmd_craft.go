package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

func newCraftCmd(g *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "craft <recipe> <units>",
		Short: "Apply a one-input recipe to a quantity of its input",
		Long: `Apply a recipe with exactly one input and one output to a number of
input units, and print how many output units were produced.

The units must be an exact multiple of the recipe's input quantity.`,
		Example: `  ottocraft craft smelt-iron 6
  ottocraft --seed 3 craft saw-planks 2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := strconv.Atoi(args[1])
			if err != nil {
				fmt.Fprintf(stderr, "ottocraft craft: units must be a whole number, got %q\n", args[1]) //nolint:errcheck // best-effort stderr
				return errExit
			}
			e, err := setup(cmd, g, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "ottocraft craft: %v\n", err) //nolint:errcheck // best-effort stderr
				return errExit
			}
			defer e.close()
			if doCraft(cmd.Context(), e, args[0], units, stdout, stderr) != 0 {
				return errExit
			}
			return nil
		},
	}
}

func doCraft(ctx context.Context, e *env, recipe string, units int, stdout, stderr io.Writer) int {
	n, err := e.engine.Craft(ctx, recipe, units)
	if err != nil {
		fmt.Fprintf(stderr, "ottocraft craft: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}
	spec, err := e.book.Recipe(ctx, recipe)
	if err != nil {
		fmt.Fprintf(stderr, "ottocraft craft: %v\n", err) //nolint:errcheck // best-effort stderr
		return 1
	}
	fmt.Fprintf(stdout, "%d %s\n", n, spec.Outputs[0].Name) //nolint:errcheck // best-effort stdout
	return 0
}
