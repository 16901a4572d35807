// Package renamer prefixes the names of filesystem entries in a directory,
// optionally recursing into subdirectories and optionally renaming the
// directories themselves.
package renamer

import (
	"log/slog"
	"os"
	"path"

	"github.com/joe/pref/pkg/filesystem"
)

// Options is the immutable traversal policy of a run.
type Options struct {
	Prefix      string
	Recursive   bool
	IncludeDirs bool
	// KeepGoing records failures and continues instead of aborting on the first one.
	KeepGoing bool
	// Filter may be nil, which excludes nothing.
	Filter EntryFilter
}

// Renamer drives RenameEntry over a directory tree.
type Renamer struct {
	fs      filesystem.FileSystem
	opts    Options
	logger  *slog.Logger
	emitter EventEmitter
}

// New creates a Renamer. A nil logger discards log output.
func New(fsys filesystem.FileSystem, opts Options, logger *slog.Logger) *Renamer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Renamer{
		fs:     fsys,
		opts:   opts,
		logger: logger,
	}
}

// SetEventEmitter sets the event emitter. The emitter is optional.
func (r *Renamer) SetEventEmitter(emitter EventEmitter) {
	r.emitter = emitter
}

// emit sends an event if an emitter is configured.
func (r *Renamer) emit(event Event) {
	if r.emitter != nil {
		r.emitter.Emit(event)
	}
}

// action is the decision taken for one entry.
type action struct {
	rename  bool
	descend bool
	skip    SkipReason
}

// decide applies the traversal policy to one listed entry.
// Symlinks are never directories here because listings use lstat information.
func (r *Renamer) decide(info os.FileInfo, relativePath string) action {
	if r.opts.Filter != nil && r.opts.Filter.Excluded(info.Name(), relativePath) {
		return action{skip: SkipExcluded}
	}

	if !info.IsDir() {
		return action{rename: true}
	}

	act := action{
		rename:  r.opts.IncludeDirs,
		descend: r.opts.Recursive,
	}
	if !act.rename && !act.descend {
		act.skip = SkipDirectory
	}

	return act
}

// relativeJoin builds the slash-separated root-relative path used for filtering.
func relativeJoin(dir, name string) string {
	if dir == "" {
		return name
	}
	return path.Join(dir, name)
}
