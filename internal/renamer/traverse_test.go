package renamer_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // Dot import is idiomatic for Ginkgo DSL
	. "github.com/onsi/gomega"    //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/pref/internal/renamer"
	"github.com/joe/pref/pkg/filesystem"
)

var _ = Describe("Run", func() {
	var (
		root string
		opts renamer.Options
	)

	run := func() *renamer.Result {
		result, err := renamer.New(filesystem.NewRealFileSystem(), opts, nil).Run(root)
		Expect(err).ToNot(HaveOccurred())
		return result
	}

	tree := func() []string {
		paths, err := listTree(root)
		Expect(err).ToNot(HaveOccurred())
		return paths
	}

	BeforeEach(func() {
		root = tempTree("a.txt", "sub/b.txt")
		opts = renamer.Options{Prefix: "new_"}
	})

	Context("non-recursive", func() {
		It("renames files and leaves directories and their contents alone", func() {
			result := run()

			Expect(tree()).To(Equal([]string{"new_a.txt", "sub/", "sub/b.txt"}))
			Expect(result.Renamed).To(HaveLen(1))
			Expect(result.Skipped).To(ConsistOf(filepath.Join(root, "sub")))
		})

		It("renames directories without descending when directories are included", func() {
			opts.IncludeDirs = true

			result := run()

			Expect(tree()).To(Equal([]string{"new_a.txt", "new_sub/", "new_sub/b.txt"}))
			Expect(result.Dirs()).To(Equal(1))
			Expect(result.Files()).To(Equal(1))
		})
	})

	Context("recursive with directories included", func() {
		BeforeEach(func() {
			opts.Recursive = true
			opts.IncludeDirs = true
		})

		It("renames children under the directory's new path", func() {
			result := run()

			Expect(tree()).To(Equal([]string{"new_a.txt", "new_sub/", "new_sub/new_b.txt"}))
			Expect(filepath.Join(root, "sub")).ToNot(BeAnExistingFile())
			Expect(result.Renamed).To(ContainElement(renamer.Rename{
				From: filepath.Join(root, "new_sub", "b.txt"),
				To:   filepath.Join(root, "new_sub", "new_b.txt"),
			}))
		})

		It("handles nested directories depth-first", func() {
			root = tempTree("x/y/z/deep.txt", "x/top.txt", "w.txt")

			result := run()

			Expect(tree()).To(Equal([]string{
				"new_w.txt",
				"new_x/",
				"new_x/new_top.txt",
				"new_x/new_y/",
				"new_x/new_y/new_z/",
				"new_x/new_y/new_z/new_deep.txt",
			}))

			var order []string
			for _, rename := range result.Renamed {
				order = append(order, filepath.Base(rename.To))
			}
			Expect(order).To(Equal([]string{"new_w.txt", "new_x", "new_top.txt", "new_y", "new_z", "new_deep.txt"}))
		})
	})

	Context("recursive without directories", func() {
		It("keeps directory names and renames every file at every depth", func() {
			root = tempTree("a.txt", "sub/b.txt", "sub/inner/c.txt", "empty/")
			opts.Recursive = true

			run()

			Expect(tree()).To(Equal([]string{
				"empty/",
				"new_a.txt",
				"sub/",
				"sub/inner/",
				"sub/inner/new_c.txt",
				"sub/new_b.txt",
			}))
		})
	})

	It("is not idempotent", func() {
		opts.Recursive = true
		opts.IncludeDirs = true

		run()
		run()

		Expect(tree()).To(Equal([]string{"new_new_a.txt", "new_new_sub/", "new_new_sub/new_new_b.txt"}))
	})

	It("renames symlinks themselves and never follows them", func() {
		root = tempTree("real/inside.txt", "link -> real")
		opts.Recursive = true
		opts.IncludeDirs = true

		result := run()

		Expect(tree()).To(Equal([]string{"new_link", "new_real/", "new_real/new_inside.txt"}))
		Expect(result.Renamed).To(HaveLen(3), "inside.txt must be renamed once, not again through the link")

		target, err := os.Readlink(filepath.Join(root, "new_link"))
		Expect(err).ToNot(HaveOccurred())
		Expect(target).To(Equal("real"))
	})

	It("leaves excluded entries and their subtrees untouched", func() {
		root = tempTree("a.txt", ".git/config", "src/main.go", "src/.gitkeep")
		opts.Recursive = true
		opts.IncludeDirs = true

		filter, err := renamer.NewExcludeFilter([]string{".git*"})
		Expect(err).ToNot(HaveOccurred())
		opts.Filter = filter

		result := run()

		Expect(tree()).To(Equal([]string{
			".git/",
			".git/config",
			"new_a.txt",
			"new_src/",
			"new_src/.gitkeep",
			"new_src/new_main.go",
		}))
		Expect(result.Skipped).To(HaveLen(2))
	})

	It("does nothing in an empty directory", func() {
		root = tempTree()
		opts.Recursive = true

		result := run()

		Expect(result.Renamed).To(BeEmpty())
		Expect(tree()).To(BeEmpty())
	})
})
