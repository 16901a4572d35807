package renamer_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // Dot import is idiomatic for Ginkgo DSL
	. "github.com/onsi/gomega"    //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/pref/internal/renamer"
	"github.com/joe/pref/pkg/filesystem"
)

var _ = Describe("Plan", func() {
	paths := []string{"/root/a.txt", "/root/sub/b.txt", "/root/sub/deeper/c.txt", "/root/z.txt"}

	DescribeTable("matches what Run does without touching the tree",
		func(opts renamer.Options) {
			opts.Prefix = "new_"

			planned := newMockTree(paths...)
			plan, err := renamer.New(planned, opts, nil).Plan("/root")
			Expect(err).ToNot(HaveOccurred())
			Expect(planned.Renames()).To(BeEmpty())

			done := newMockTree(paths...)
			result, err := renamer.New(done, opts, nil).Run("/root")
			Expect(err).ToNot(HaveOccurred())

			Expect(plan.Renames).To(Equal(result.Renamed))
			Expect(plan.Skipped).To(Equal(result.Skipped))
			Expect(plan.Files()).To(Equal(result.Files()))
			Expect(plan.Dirs()).To(Equal(result.Dirs()))
		},
		Entry("files only", renamer.Options{}),
		Entry("directories, not recursive", renamer.Options{IncludeDirs: true}),
		Entry("recursive", renamer.Options{Recursive: true}),
		Entry("recursive with directories", renamer.Options{Recursive: true, IncludeDirs: true}),
	)

	It("reports children under their parent's new name", func() {
		fsys := newMockTree(paths...)
		opts := renamer.Options{Prefix: "new_", Recursive: true, IncludeDirs: true}

		plan, err := renamer.New(fsys, opts, nil).Plan("/root")

		Expect(err).ToNot(HaveOccurred())
		Expect(plan.Renames).To(ContainElement(renamer.Rename{
			From: "/root/new_sub/new_deeper/c.txt",
			To:   "/root/new_sub/new_deeper/new_c.txt",
		}))
		Expect(plan.Dirs()).To(Equal(2))
		Expect(plan.Files()).To(Equal(4))
	})

	It("honors exclude patterns", func() {
		fsys := newMockTree(paths...)
		filter, err := renamer.NewExcludeFilter([]string{"sub/deeper"})
		Expect(err).ToNot(HaveOccurred())

		opts := renamer.Options{Prefix: "new_", Recursive: true, Filter: filter}
		plan, err := renamer.New(fsys, opts, nil).Plan("/root")

		Expect(err).ToNot(HaveOccurred())
		Expect(plan.Skipped).To(Equal([]string{"/root/sub/deeper"}))
		Expect(plan.Files()).To(Equal(3))
	})

	It("works against the real filesystem", func() {
		root := tempTree("a.txt", "sub/b.txt")
		opts := renamer.Options{Prefix: "new_", Recursive: true, IncludeDirs: true}

		plan, err := renamer.New(filesystem.NewRealFileSystem(), opts, nil).Plan(root)

		Expect(err).ToNot(HaveOccurred())
		Expect(plan.Renames).To(HaveLen(3))
		Expect(listTree(root)).To(Equal([]string{"a.txt", "sub/", "sub/b.txt"}))
	})

	It("follows a symlinked root the same way Run does", func() {
		target := tempTree("a.txt", "b.txt", "sub/c.txt")
		link := filepath.Join(GinkgoT().TempDir(), "link")
		Expect(os.Symlink(target, link)).To(Succeed())

		opts := renamer.Options{Prefix: "new_", Recursive: true, IncludeDirs: true}
		fsys := filesystem.NewRealFileSystem()

		plan, err := renamer.New(fsys, opts, nil).Plan(link)
		Expect(err).ToNot(HaveOccurred())
		Expect(plan.Renames).To(HaveLen(4))

		result, err := renamer.New(fsys, opts, nil).Run(link)
		Expect(err).ToNot(HaveOccurred())

		Expect(plan.Renames).To(Equal(result.Renamed))
		Expect(listTree(target)).To(Equal([]string{"new_a.txt", "new_b.txt", "new_sub/", "new_sub/new_c.txt"}))
	})

	It("fails for a root that cannot be listed", func() {
		_, err := renamer.New(newMockTree(), renamer.Options{Prefix: "p"}, nil).Plan("/missing")

		Expect(err).To(HaveOccurred())
	})
})
