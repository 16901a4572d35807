package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joe/pref/internal/renamer"
	pkgerrors "github.com/joe/pref/pkg/errors"
)

// RenderPlan renders a dry run: one "old -> new" line per planned rename and a count.
func RenderPlan(plan *renamer.Plan) string {
	var builder strings.Builder

	for _, rename := range plan.Renames {
		builder.WriteString(rename.From)
		builder.WriteString(" -> ")
		builder.WriteString(rename.To)
		builder.WriteString("\n")
	}

	builder.WriteString(RenderLabel(fmt.Sprintf("would rename %s", countEntries(len(plan.Renames), plan.Files(), plan.Dirs()))))
	builder.WriteString("\n")

	return builder.String()
}

// RenderSummary renders what a run did.
func RenderSummary(result *renamer.Result) string {
	var builder strings.Builder

	builder.WriteString(RenderSuccess(fmt.Sprintf("renamed %s", countEntries(len(result.Renamed), result.Files(), result.Dirs()))))
	builder.WriteString("\n")

	if skipped := len(result.Skipped); skipped > 0 {
		builder.WriteString(RenderDim(fmt.Sprintf("left %d entries untouched", skipped)))
		builder.WriteString("\n")
	}

	return builder.String()
}

// RenderFailure renders an aborting error, or the failures of a keep-going run,
// with suggestions and the entries that were never reached.
func RenderFailure(err error, result *renamer.Result) string {
	var builder strings.Builder
	enricher := pkgerrors.NewEnricher()

	failures := []error{}
	if err != nil {
		failures = append(failures, err)
	}
	if result != nil {
		failures = append(failures, result.Failed...)
	}

	for i, failure := range failures {
		if i > 0 {
			builder.WriteString("\n")
		}

		builder.WriteString(RenderError("error: " + failure.Error()))
		builder.WriteString("\n")

		if suggestions := pkgerrors.FormatSuggestions(enricher.Enrich(failure, affectedPath(failure))); suggestions != "" {
			builder.WriteString(suggestions)
			builder.WriteString("\n")
		}
	}

	if result == nil || len(result.Pending) == 0 {
		return builder.String()
	}

	builder.WriteString("\n")
	builder.WriteString(RenderWarning(fmt.Sprintf("%d entries were not processed:", len(result.Pending))))
	builder.WriteString("\n")

	for i, pending := range result.Pending {
		if i == PendingReportLimit {
			builder.WriteString(RenderDim(fmt.Sprintf("  … and %d more", len(result.Pending)-PendingReportLimit)))
			builder.WriteString("\n")
			break
		}
		builder.WriteString("  ")
		builder.WriteString(pending)
		builder.WriteString("\n")
	}

	return builder.String()
}

// affectedPath returns the entry a failure is about, when the error records it.
func affectedPath(err error) string {
	var renameErr *renamer.RenameError
	if errors.As(err, &renameErr) {
		return renameErr.Path
	}

	var listErr *renamer.ListError
	if errors.As(err, &listErr) {
		return listErr.Dir
	}

	return ""
}

func countEntries(total, files, dirs int) string {
	noun := "entries"
	if total == 1 {
		noun = "entry"
	}

	return fmt.Sprintf("%d %s (%d files, %d directories)", total, noun, files, dirs)
}
