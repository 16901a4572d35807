//nolint:varnamelen // Test files use idiomatic short variable names (t, tt, g, c, etc.)
package renamer_test

import (
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/pref/internal/renamer"
)

func TestExcludeFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		patterns []string
		entry    string
		rel      string
		excluded bool
	}{
		{name: "no patterns", patterns: nil, entry: "a.txt", rel: "a.txt", excluded: false},
		{name: "base name glob", patterns: []string{"*.bak"}, entry: "old.bak", rel: "x/y/old.bak", excluded: true},
		{name: "base name glob miss", patterns: []string{"*.bak"}, entry: "old.txt", rel: "old.txt", excluded: false},
		{name: "exact name at depth", patterns: []string{".git"}, entry: ".git", rel: "vendor/lib/.git", excluded: true},
		{name: "relative path", patterns: []string{"docs/*.md"}, entry: "a.md", rel: "docs/a.md", excluded: true},
		{name: "relative path elsewhere", patterns: []string{"docs/*.md"}, entry: "a.md", rel: "src/docs/a.md", excluded: false},
		{name: "doublestar", patterns: []string{"**/testdata"}, entry: "testdata", rel: "a/b/testdata", excluded: true},
		{name: "any pattern matches", patterns: []string{"*.go", "*.md"}, entry: "README.md", rel: "README.md", excluded: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g := NewWithT(t)

			filter, err := renamer.NewExcludeFilter(tt.patterns)
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(filter.Excluded(tt.entry, tt.rel)).To(Equal(tt.excluded))
		})
	}
}

func TestNewExcludeFilterRejectsBadPattern(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, err := renamer.NewExcludeFilter([]string{"ok*", "[unclosed"})

	g.Expect(err).To(MatchError(doublestar.ErrBadPattern))
	g.Expect(err.Error()).To(ContainSubstring(`"[unclosed"`))
}

func TestNewExcludeFilterCopiesPatterns(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	patterns := []string{"*.tmp"}
	filter, err := renamer.NewExcludeFilter(patterns)
	g.Expect(err).ToNot(HaveOccurred())

	patterns[0] = "*.txt"

	g.Expect(filter.Excluded("a.tmp", "a.tmp")).To(BeTrue())
	g.Expect(filter.Excluded("a.txt", "a.txt")).To(BeFalse())
}
