package filesystem

import (
	"os"

	"github.com/kr/fs"
)

// Walk returns a walker over the tree rooted at root.
// The first Step yields root itself. A symlinked root is followed, the way
// ReadDir(root) follows it; symlinks below the root are reported via Lstat
// and never descended into. Children come out in ReadDir (name) order.
func Walk(fsys FileSystem, root string) *fs.Walker {
	return fs.WalkFS(root, followRoot{FileSystem: fsys, root: root})
}

// followRoot stats root instead of lstat-ing it.
type followRoot struct {
	FileSystem

	root string
}

func (f followRoot) Lstat(path string) (os.FileInfo, error) {
	if path == f.root {
		return f.FileSystem.Stat(path)
	}

	return f.FileSystem.Lstat(path)
}
