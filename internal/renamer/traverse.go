package renamer

import (
	"os"
)

// frame is one directory on the traversal stack.
type frame struct {
	dir     string // path the directory is listed by (post-rename)
	rel     string // slash-separated path relative to the root
	entries []os.FileInfo
	next    int
}

// Run prefixes the entries under root according to the options.
//
// Traversal is depth-first with an explicit stack: reaching a directory that
// is to be descended into pushes its frame immediately, so its subtree is
// finished before the next sibling is visited. A directory renamed on the way
// is listed under its new path only.
//
// Without KeepGoing the first failure stops the run; the returned Result then
// holds the completed renames and the entries still pending.
func (r *Renamer) Run(root string) (*Result, error) {
	result := &Result{Root: root}
	r.emit(TraversalStarted{Root: root})

	top, err := r.open(root, "")
	if err != nil {
		r.emit(EntryFailed{Path: root, Err: err})
		r.emit(TraversalComplete{Result: result, Err: err})
		return result, err
	}
	stack := []*frame{top}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		if cur.next >= len(cur.entries) {
			stack = stack[:len(stack)-1]
			continue
		}

		info := cur.entries[cur.next]
		cur.next++

		descendPath, rel, err := r.visit(cur, info, result)
		if err != nil {
			if !r.opts.KeepGoing {
				result.Pending = r.pending(stack)
				r.emit(TraversalComplete{Result: result, Err: err})
				return result, err
			}
			result.Failed = append(result.Failed, err)
		}

		if descendPath == "" {
			continue
		}

		child, err := r.open(descendPath, rel)
		if err != nil {
			r.emit(EntryFailed{Path: descendPath, Err: err})
			if !r.opts.KeepGoing {
				result.Pending = r.pending(stack)
				r.emit(TraversalComplete{Result: result, Err: err})
				return result, err
			}
			result.Failed = append(result.Failed, err)
			continue
		}
		stack = append(stack, child)
	}

	r.emit(TraversalComplete{Result: result})

	return result, nil
}

// visit handles one entry and returns the path to descend into, if any.
func (r *Renamer) visit(cur *frame, info os.FileInfo, result *Result) (string, string, error) {
	entryPath := r.fs.Join(cur.dir, info.Name())
	rel := relativeJoin(cur.rel, info.Name())

	act := r.decide(info, rel)
	if act.skip != "" {
		r.logger.Debug("skipping", "path", entryPath, "reason", string(act.skip))
		result.Skipped = append(result.Skipped, entryPath)
		r.emit(EntrySkipped{Path: entryPath, Reason: act.skip})
		return "", "", nil
	}

	current := entryPath
	if act.rename {
		newPath, err := RenameEntry(r.fs, entryPath, r.opts.Prefix, r.logger)
		if err != nil {
			r.emit(EntryFailed{Path: entryPath, Err: err})
			if act.descend && r.opts.KeepGoing {
				// The rename did not happen, so the old path is still valid
				return entryPath, rel, err
			}
			return "", "", err
		}

		rename := Rename{From: entryPath, To: newPath, IsDir: info.IsDir()}
		result.Renamed = append(result.Renamed, rename)
		r.emit(EntryRenamed{Rename: rename})
		current = newPath
	}

	if act.descend {
		return current, rel, nil
	}

	return "", "", nil
}

// open lists a directory and returns its frame.
func (r *Renamer) open(dir, rel string) (*frame, error) {
	entries, err := r.fs.ReadDir(dir)
	if err != nil {
		return nil, &ListError{Dir: dir, Err: err}
	}

	r.emit(DirectoryEntered{Path: dir})

	return &frame{dir: dir, rel: rel, entries: entries}, nil
}

// pending lists the entries not yet visited, innermost directory first.
func (r *Renamer) pending(stack []*frame) []string {
	var paths []string
	for i := len(stack) - 1; i >= 0; i-- {
		f := stack[i]
		for _, info := range f.entries[f.next:] {
			paths = append(paths, r.fs.Join(f.dir, info.Name()))
		}
	}
	return paths
}
