// OttoCraft plays crafting plans: ordered recipes applied one step at a
// time against a stockpile, with proficiency that grows as you craft.
//
// Usage:
//
//	ottocraft [--book FILE] [--seed N] [--verbose|--quiet] <command>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/ottocraft/internal/book"
	"github.com/hammamikhairi/ottocraft/internal/config"
	"github.com/hammamikhairi/ottocraft/internal/craft"
	"github.com/hammamikhairi/ottocraft/internal/domain"
	"github.com/hammamikhairi/ottocraft/internal/engine"
	"github.com/hammamikhairi/ottocraft/internal/logger"
	"github.com/hammamikhairi/ottocraft/internal/storage"
)

func main() {
	_ = godotenv.Load()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// errExit is returned by RunE functions to signal a non-zero exit. The
// command has already written its own error to stderr.
var errExit = errors.New("exit")

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	book    string
	seed    uint64
	verbose bool
	quiet   bool
	logFile string
}

// run executes the CLI with args, writing output to stdout and errors to
// stderr. Returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintf(stderr, "ottocraft: %v\n", err) //nolint:errcheck // best-effort stderr
		}
		return 1
	}
	return 0
}

// newRootCmd creates the root cobra command with all subcommands.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "ottocraft",
		Short:         "Play crafting plans step by step",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			fmt.Fprintf(stderr, "ottocraft: unknown command %q\n", args[0]) //nolint:errcheck // best-effort stderr
			return errExit
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&g.book, "book", "", "recipe book TOML file (default: built-in book)")
	pf.Uint64Var(&g.seed, "seed", 0, "seed the dice for reproducible rolls")
	pf.BoolVar(&g.verbose, "verbose", false, "enable verbose/debug logging")
	pf.BoolVar(&g.quiet, "quiet", false, "disable all logging")
	pf.StringVar(&g.logFile, "log-file", "", `file to write logs to ("stderr" logs to the console)`)
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		newPlansCmd(g, stdout, stderr),
		newShowCmd(g, stdout, stderr),
		newSimulateCmd(g, stdout, stderr),
		newCraftCmd(g, stdout, stderr),
		newPlayCmd(g, stdout, stderr),
	)
	return root
}

// env is the wired application shared by the commands.
type env struct {
	cfg    config.Config
	log    *logger.Logger
	book   domain.PlanBook
	store  *storage.MemoryStore
	engine *engine.Engine
	close  func()
}

// setup resolves configuration from the environment and the flags that
// were set on cmd, then wires the logger, book, store and engine.
func setup(cmd *cobra.Command, g *globalFlags, stderr io.Writer) (*env, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if g.book != "" {
		cfg.BookPath = g.book
	}
	if flags.Changed("seed") {
		cfg.Seed, cfg.HasSeed = g.seed, true
	}
	if flags.Changed("log-file") {
		cfg.LogFile = g.logFile
	}
	if g.verbose {
		cfg.LogLevel = logger.LevelVerbose
	}
	if g.quiet {
		cfg.LogLevel = logger.LevelOff
	}

	logOut, closeLog := openLog(cfg, stderr)
	log := logger.New(cfg.LogLevel, logOut)

	var b domain.PlanBook
	if cfg.BookPath != "" {
		f, err := book.LoadFile(cfg.BookPath)
		if err != nil {
			closeLog()
			return nil, err
		}
		if b, err = book.FromFile(f, log); err != nil {
			closeLog()
			return nil, err
		}
	} else {
		b = book.NewMemoryBook(log)
	}

	roller := craft.DefaultRoller
	if cfg.HasSeed {
		roller = craft.NewRandRoller(cfg.Seed)
		log.Debug("dice seeded with %d", cfg.Seed)
	}

	store := storage.NewMemoryStore(log)
	return &env{
		cfg:    cfg,
		log:    log,
		book:   b,
		store:  store,
		engine: engine.New(b, store, log, engine.WithRoller(roller)),
		close:  closeLog,
	}, nil
}

// openLog returns the log destination. Logs go to a file by default so
// the prompt stays clean; when the file cannot be opened they fall back
// to stderr.
func openLog(cfg config.Config, stderr io.Writer) (io.Writer, func()) {
	if cfg.LogLevel == logger.LevelOff || cfg.LogFile == "" || cfg.LogFile == config.StderrLog {
		return stderr, func() {}
	}
	if dir := filepath.Dir(cfg.LogFile); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err) //nolint:errcheck // best-effort stderr
		return stderr, func() {}
	}
	return f, func() { f.Close() }
}
