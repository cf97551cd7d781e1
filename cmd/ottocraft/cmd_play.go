package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottocraft/internal/conversation"
	"github.com/hammamikhairi/ottocraft/internal/display"
)

func newPlayCmd(g *globalFlags, stdout, stderr io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play plans interactively at a prompt",
		Long: `Open the interactive workshop. Pick a plan, start a run and apply its
recipes one at a time; edit, fork and reset the run as you go.

A status bar shows every live run. Type help at the prompt for commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd, g, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "ottocraft play: %v\n", err) //nolint:errcheck // best-effort stderr
				return errExit
			}
			defer e.close()
			return doPlay(cmd.Context(), e, stdout)
		},
	}
}

// doPlay hands the terminal to the Bubble Tea UI and runs the prompt loop
// beside it until the user quits.
func doPlay(ctx context.Context, e *env, stdout io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ui := display.NewUI(e.store)
	app := &playApp{
		engine:   e.engine,
		parser:   conversation.NewKeywordParser(e.log),
		notifier: conversation.NewCLINotifier(e.log, ui.Printf),
		log:      e.log,
		out:      ui,
	}

	fmt.Fprintln(stdout, display.RenderBanner())
	fmt.Fprintln(stdout, display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Fprintln(stdout)

	go func() {
		ui.WaitReady()
		app.loop(ctx, ui.InputChan())
		ui.Quit()
	}()

	// Bubble Tea owns the terminal until quit.
	if err := ui.Run(); err != nil {
		e.log.Error("display: %v", err)
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
