package renamer

import (
	"github.com/joe/pref/pkg/filesystem"
)

// Plan is the ordered list of renames a Run over the same tree would perform.
type Plan struct {
	Root    string
	Renames []Rename
	Skipped []string
}

// Files returns the number of planned non-directory renames.
func (p *Plan) Files() int {
	return len(p.Renames) - p.Dirs()
}

// Dirs returns the number of planned directory renames.
func (p *Plan) Dirs() int {
	count := 0
	for _, rename := range p.Renames {
		if rename.IsDir {
			count++
		}
	}
	return count
}

// Plan walks the tree without modifying it and returns what Run would do.
// Paths below a directory that is renamed earlier in the walk are reported
// under the directory's new name, exactly as Run would meet them.
func (r *Renamer) Plan(root string) (*Plan, error) {
	root = r.fs.Join(root)
	plan := &Plan{Root: root}

	// Where each descended directory will be listed from, and its root-relative path.
	located := map[string]string{root: root}
	relative := map[string]string{root: ""}

	walker := filesystem.Walk(r.fs, root)
	for walker.Step() {
		if err := walker.Err(); err != nil {
			return plan, &ListError{Dir: walker.Path(), Err: err}
		}

		entryPath := walker.Path()
		if entryPath == root {
			continue
		}

		info := walker.Stat()
		parent, name := r.fs.Split(entryPath)
		from := r.fs.Join(located[parent], name)
		rel := relativeJoin(relative[parent], name)

		act := r.decide(info, rel)
		if act.skip != "" {
			plan.Skipped = append(plan.Skipped, from)
			if info.IsDir() {
				walker.SkipDir()
			}
			continue
		}

		to := from
		if act.rename {
			to = PrefixedPath(r.fs, from, r.opts.Prefix)
			plan.Renames = append(plan.Renames, Rename{From: from, To: to, IsDir: info.IsDir()})
		}

		if !info.IsDir() {
			continue
		}
		if !act.descend {
			walker.SkipDir()
			continue
		}
		located[entryPath] = to
		relative[entryPath] = rel
	}

	return plan, nil
}
