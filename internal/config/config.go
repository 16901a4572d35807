// Package config handles command-line argument parsing and validation.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexflint/go-arg"

	"github.com/joe/pref/internal/renamer"
)

// Exit codes.
const (
	ExitOK           = 0
	ExitUsage        = 1
	ExitNotDirectory = 2
	ExitBadPrefix    = 3
	// ExitRenameFailed is returned when at least one rename failed.
	ExitRenameFailed = 4
)

// Exported variables.
var (
	ErrVersionRequested = errors.New("version requested")
)

// Config holds the application configuration
type Config struct {
	Directory   string   `arg:"positional,required" help:"directory whose entries are prefixed (local path or sftp://user@host[:port]/path)"`
	Prefix      string   `arg:"positional,required" help:"string prepended to every name"`
	Recursive   bool     `arg:"-r,--recursive" help:"prefix everything below the directory recursively"`
	Verbose     bool     `arg:"-v,--verbose" help:"log every rename (not shown with --interactive)"`
	IncludeDirs bool     `arg:"-d,--dirs" help:"include directories in renaming"`
	KeepGoing   bool     `arg:"-k,--keep-going" help:"report failed renames and continue instead of stopping"`
	DryRun      bool     `arg:"-n,--dry-run" help:"print what would be renamed without renaming anything"`
	Interactive bool     `arg:"-i,--interactive" help:"review the renames in a terminal UI before applying them"`
	Exclude     []string `arg:"-x,--exclude,separate" help:"leave entries matching this glob untouched (repeatable)"`

	// Help is set by -h/--help, which prints usage and then carries on.
	Help bool `arg:"-"`

	filter *renamer.ExcludeFilter
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Prefixes the names of files, and optionally directories, in a directory"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "pref 1.0.0"
}

// UsageError reports a command line that could not be parsed.
type UsageError struct {
	Err error
}

// Error implements the error interface.
func (e *UsageError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying cause.
func (e *UsageError) Unwrap() error {
	return e.Err
}

// Parse parses command-line arguments (without the program name).
// It returns ErrVersionRequested when --version was given.
func Parse(args []string) (*Config, error) {
	cfg := &Config{}

	args, cfg.Help = extractHelp(args)
	args = separatePositionals(args)

	parser, err := newParser(cfg)
	if err != nil {
		return nil, err
	}

	if err := parser.Parse(args); err != nil {
		if errors.Is(err, arg.ErrVersion) {
			return cfg, ErrVersionRequested
		}
		return nil, &UsageError{Err: err}
	}

	filter, err := renamer.NewExcludeFilter(cfg.Exclude)
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	cfg.filter = filter

	return cfg, nil
}

// RenamerOptions returns the traversal policy selected by the flags.
func (cfg *Config) RenamerOptions() renamer.Options {
	opts := renamer.Options{
		Prefix:      cfg.Prefix,
		Recursive:   cfg.Recursive,
		IncludeDirs: cfg.IncludeDirs,
		KeepGoing:   cfg.KeepGoing,
	}
	if cfg.filter != nil {
		opts.Filter = cfg.filter
	}

	return opts
}

// WriteHelp writes the full usage text to w.
func WriteHelp(w io.Writer) {
	parser, err := newParser(&Config{})
	if err != nil {
		// The Config tags are static, so this cannot happen at run time
		panic(err)
	}

	parser.WriteHelp(w)
}

func newParser(cfg *Config) (*arg.Parser, error) {
	parser, err := arg.NewParser(arg.Config{Program: "pref"}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build argument parser: %w", err)
	}

	return parser, nil
}

// extractHelp removes -h/--help from args. go-arg stops at help, while pref
// prints usage and then runs with the remaining flags.
func extractHelp(args []string) ([]string, bool) {
	help := false
	rest := make([]string, 0, len(args))

	for i, a := range args {
		if a == "--" {
			rest = append(rest, args[i:]...)
			break
		}
		if a == "-h" || a == "--help" {
			help = true
			continue
		}
		rest = append(rest, a)
	}

	return rest, help
}

// flagTakesValue lists the flags Config declares and whether each consumes the
// following argument.
var flagTakesValue = map[string]bool{
	"-r": false, "--recursive": false,
	"-v": false, "--verbose": false,
	"-d": false, "--dirs": false,
	"-k": false, "--keep-going": false,
	"-n": false, "--dry-run": false,
	"-i": false, "--interactive": false,
	"-x": true, "--exclude": true,
	"--version": false,
}

// separatePositionals lets DIRECTORY and PREFIX start with "-". The first two
// arguments that are not declared flags are the positionals; when either looks
// like a flag they are moved behind "--" so go-arg takes them literally.
func separatePositionals(args []string) []string {
	var flags, positionals []string
	dashed := false

	i := 0
	for ; i < len(args) && len(positionals) < 2; i++ {
		a := args[i]
		if a == "--" {
			break
		}

		name, _, inline := strings.Cut(a, "=")
		takesValue, declared := flagTakesValue[name]
		if !declared {
			dashed = dashed || strings.HasPrefix(a, "-")
			positionals = append(positionals, a)
			continue
		}

		flags = append(flags, a)
		if takesValue && !inline && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	if !dashed {
		return args
	}

	rest := args[i:]
	before, after := rest, []string(nil)
	for j, a := range rest {
		if a == "--" {
			before, after = rest[:j], rest[j+1:]
			break
		}
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, flags...)
	out = append(out, before...)
	out = append(out, "--")
	out = append(out, positionals...)

	return append(out, after...)
}
