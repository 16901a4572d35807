package tui_test

import (
	"fmt"
	"strings"
	"syscall"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/pref/internal/renamer"
	"github.com/joe/pref/internal/tui"
)

func TestRenderPlan(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	out := tui.RenderPlan(samplePlan())

	g.Expect(out).To(ContainSubstring("/root/a.txt -> /root/new_a.txt\n"))
	g.Expect(out).To(ContainSubstring("/root/sub -> /root/new_sub\n"))
	g.Expect(out).To(ContainSubstring("would rename 2 entries (1 files, 1 directories)"))
}

func TestRenderPlanEmpty(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	out := tui.RenderPlan(&renamer.Plan{Root: "/root"})

	g.Expect(out).ToNot(ContainSubstring("->"))
	g.Expect(out).To(ContainSubstring("would rename 0 entries"))
}

func TestRenderSummary(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	out := tui.RenderSummary(&renamer.Result{
		Renamed: []renamer.Rename{{From: "/r/a", To: "/r/p_a"}},
		Skipped: []string{"/r/dir", "/r/.git"},
	})

	g.Expect(out).To(ContainSubstring("renamed 1 entry (1 files, 0 directories)"))
	g.Expect(out).To(ContainSubstring("left 2 entries untouched"))
}

func TestRenderFailureAbort(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	err := &renamer.RenameError{Path: "/r/a.txt", NewPath: "/r/p_a.txt", Err: renamer.ErrTargetExists}
	result := &renamer.Result{Pending: []string{"/r/sub/b.txt", "/r/z.txt"}}

	out := tui.RenderFailure(err, result)

	g.Expect(out).To(ContainSubstring("error: cannot rename /r/a.txt to /r/p_a.txt: target already exists"))
	g.Expect(out).To(ContainSubstring("Rename or remove the existing entry next to /r/a.txt"))
	g.Expect(out).To(ContainSubstring("2 entries were not processed:"))
	g.Expect(out).To(ContainSubstring("  /r/sub/b.txt\n"))
	g.Expect(out).To(ContainSubstring("  /r/z.txt\n"))
}

func TestRenderFailureKeepGoing(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	result := &renamer.Result{Failed: []error{
		&renamer.RenameError{Path: "/r/a", NewPath: "/r/p_a", Err: syscall.EACCES},
		&renamer.ListError{Dir: "/r/locked", Err: syscall.EACCES},
	}}

	out := tui.RenderFailure(nil, result)

	g.Expect(strings.Count(out, "error: ")).To(Equal(2))
	g.Expect(out).To(ContainSubstring("ls -ld /r/a"))
	g.Expect(out).To(ContainSubstring("ls -ld /r/locked"))
	g.Expect(out).ToNot(ContainSubstring("not processed"))
}

func TestRenderFailureLimitsPending(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	pending := make([]string, tui.PendingReportLimit+5)
	for i := range pending {
		pending[i] = fmt.Sprintf("/r/%03d", i)
	}

	out := tui.RenderFailure(syscall.EIO, &renamer.Result{Pending: pending})

	g.Expect(out).To(ContainSubstring(fmt.Sprintf("%d entries were not processed:", len(pending))))
	g.Expect(out).To(ContainSubstring("… and 5 more"))
	g.Expect(out).ToNot(ContainSubstring(pending[tui.PendingReportLimit]))
}
