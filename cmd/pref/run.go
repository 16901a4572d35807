package main

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/pref/internal/config"
	"github.com/joe/pref/internal/logging"
	"github.com/joe/pref/internal/renamer"
	"github.com/joe/pref/internal/tui"
)

// streams carries the process I/O so run can be exercised in tests.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
	// interactive reports whether in is a terminal
	interactive bool
	// altScreen reports whether out is a terminal
	altScreen bool
}

// unexported variables.
var (
	errNeedsTerminal    = errors.New("--interactive needs a terminal on stdin")
	errConflictingModes = errors.New("--dry-run and --interactive cannot be combined")
)

// run executes pref and returns the process exit code.
func run(args []string, s streams) int {
	cfg, err := config.Parse(args)
	switch {
	case errors.Is(err, config.ErrVersionRequested):
		fmt.Fprintln(s.out, cfg.Version())
		return config.ExitOK
	case err != nil:
		return usage(s, err)
	case cfg.Interactive && cfg.DryRun:
		return usage(s, errConflictingModes)
	case cfg.Interactive && !s.interactive:
		return usage(s, errNeedsTerminal)
	}

	fsys, root, closeFS, err := config.OpenDirectory(cfg.Directory)
	if err != nil {
		return invalid(s, err)
	}
	defer closeFS()

	if err := config.ValidatePrefix(cfg.Prefix); err != nil {
		return invalid(s, err)
	}

	logger := logging.New(s.err, cfg.Verbose)
	if cfg.Interactive {
		// Log lines would tear the screen
		logger = logging.Discard()
	}
	logger.Debug("dir to search", "dir", root)
	logger.Debug("prefix", "prefix", cfg.Prefix)

	if cfg.Help {
		config.WriteHelp(s.out)
	}

	r := renamer.New(fsys, cfg.RenamerOptions(), logger)

	switch {
	case cfg.DryRun:
		return dryRun(s, r, root)
	case cfg.Interactive:
		return interactive(s, r, root)
	}

	result, err := r.Run(root)

	return report(s, result, err)
}

func usage(s streams, err error) int {
	fmt.Fprintf(s.err, "error: %v\n", err)
	config.WriteHelp(s.err)

	return config.ExitUsage
}

// invalid prints a validation failure to stdout and returns its exit code.
func invalid(s streams, err error) int {
	fmt.Fprintf(s.out, "error: %v\n", err)

	var validationErr *config.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.ExitCode()
	}

	return config.ExitNotDirectory
}

func dryRun(s streams, r *renamer.Renamer, root string) int {
	plan, err := r.Plan(root)
	if err != nil {
		fmt.Fprint(s.err, tui.RenderFailure(err, nil))
		return config.ExitRenameFailed
	}

	fmt.Fprint(s.out, tui.RenderPlan(plan))

	return config.ExitOK
}

func interactive(s streams, r *renamer.Renamer, root string) int {
	plan, err := r.Plan(root)
	if err != nil {
		fmt.Fprint(s.err, tui.RenderFailure(err, nil))
		return config.ExitRenameFailed
	}

	opts := []tea.ProgramOption{tea.WithInput(s.in), tea.WithOutput(s.out)}
	if s.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	final, err := tea.NewProgram(tui.New(r, plan), opts...).Run()
	if err != nil {
		fmt.Fprintf(s.err, "error: %v\n", err)
		return config.ExitUsage
	}

	model, ok := final.(tui.Model)
	if !ok || model.Cancelled() {
		fmt.Fprintln(s.out, "cancelled, nothing renamed")
		return config.ExitOK
	}

	return report(s, model.Result(), model.Err())
}

// report prints the outcome of a run and returns the exit code.
func report(s streams, result *renamer.Result, err error) int {
	if result != nil {
		fmt.Fprint(s.out, tui.RenderSummary(result))
	}

	if err == nil && (result == nil || len(result.Failed) == 0) {
		return config.ExitOK
	}

	fmt.Fprint(s.err, tui.RenderFailure(err, result))

	return config.ExitRenameFailed
}
