// Package tui provides the interactive confirmation and progress screen for
// pref, and the styled reports printed after a run.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/pref/internal/renamer"
)

// Runner performs the renames once the user confirms.
type Runner interface {
	Run(root string) (*renamer.Result, error)
	SetEventEmitter(emitter renamer.EventEmitter)
}

// Phase is the stage the screen is in.
type Phase int

// Phases.
const (
	PhaseConfirm Phase = iota
	PhaseRunning
	PhaseDone
)

// Model shows the plan, waits for confirmation and then follows the run.
type Model struct {
	runner Runner
	plan   *renamer.Plan
	bridge *EventBridge

	spinner  spinner.Model
	progress progress.Model
	phase    Phase
	width    int

	renamed int
	failed  int
	current string

	result    *renamer.Result
	err       error
	cancelled bool
}

// New creates the model. The runner's events are routed to the screen.
func New(runner Runner, plan *renamer.Plan) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(PrimaryColor())

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = ProgressBarWidth
	bar.ShowPercentage = false // We render the counts ourselves

	bridge := NewEventBridge()
	runner.SetEventEmitter(bridge)

	return Model{
		runner:   runner,
		plan:     plan,
		bridge:   bridge,
		spinner:  spin,
		progress: bar,
		phase:    PhaseConfirm,
	}
}

// runFinishedMsg is sent when Run returns.
type runFinishedMsg struct {
	result *renamer.Result
	err    error
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(max(msg.Width-4, ProgressBarWidth/2), MaxProgressBarWidth)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case RenamerEventMsg:
		m.applyEvent(msg.Event)
		return m, m.bridge.ListenCmd()

	case runFinishedMsg:
		m.phase = PhaseDone
		m.result = msg.result
		m.err = msg.err
		m.bridge.Close()
		return m, tea.Quit

	case spinner.TickMsg:
		if m.phase != PhaseRunning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.phase {
	case PhaseConfirm:
		switch msg.String() {
		case "y", "Y", "enter":
			if len(m.plan.Renames) == 0 {
				m.cancelled = true
				return m, tea.Quit
			}
			return m.start()
		case "n", "N", "q", "esc", "ctrl+c":
			m.cancelled = true
			m.bridge.Close()
			return m, tea.Quit
		}

	case PhaseRunning:
		// A started run is not interrupted

	case PhaseDone:
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) start() (tea.Model, tea.Cmd) {
	m.phase = PhaseRunning

	runner, root := m.runner, m.plan.Root
	run := func() tea.Msg {
		result, err := runner.Run(root)
		return runFinishedMsg{result: result, err: err}
	}

	return m, tea.Batch(m.spinner.Tick, run, m.bridge.ListenCmd())
}

func (m *Model) applyEvent(event renamer.Event) {
	switch e := event.(type) {
	case renamer.DirectoryEntered:
		m.current = e.Path
	case renamer.EntryRenamed:
		m.renamed++
		m.current = e.Rename.To
	case renamer.EntryFailed:
		m.failed++
		m.current = e.Path
	}
}

// Percent returns the share of planned renames attempted so far.
func (m Model) Percent() float64 {
	total := len(m.plan.Renames)
	if total == 0 {
		return 0
	}

	return min(float64(m.renamed+m.failed)/float64(total), 1)
}

// View implements tea.Model
func (m Model) View() string {
	switch m.phase {
	case PhaseRunning:
		return m.viewRunning()
	case PhaseDone:
		return ""
	default:
		return m.viewConfirm()
	}
}

func (m Model) viewConfirm() string {
	var builder strings.Builder

	builder.WriteString(RenderTitle("pref"))
	builder.WriteString("\n")

	if len(m.plan.Renames) == 0 {
		builder.WriteString(fmt.Sprintf("Nothing to rename in %s\n\n", m.plan.Root))
		builder.WriteString(RenderDim("Press any key to exit"))
		return builder.String()
	}

	builder.WriteString(RenderLabel(fmt.Sprintf("Rename %d entries", len(m.plan.Renames))))
	builder.WriteString(fmt.Sprintf(" (%d files, %d directories) in %s\n\n", m.plan.Files(), m.plan.Dirs(), m.plan.Root))

	var preview strings.Builder
	for i, rename := range m.plan.Renames {
		if i == PlanPreviewLimit {
			preview.WriteString(RenderDim(fmt.Sprintf("… and %d more", len(m.plan.Renames)-PlanPreviewLimit)))
			break
		}
		if i > 0 {
			preview.WriteString("\n")
		}
		preview.WriteString(relativeTo(m.plan.Root, rename.From))
		preview.WriteString(RenderDim(" → "))
		preview.WriteString(relativeTo(m.plan.Root, rename.To))
	}
	builder.WriteString(BoxStyle().Render(preview.String()))
	builder.WriteString("\n")

	if skipped := len(m.plan.Skipped); skipped > 0 {
		builder.WriteString(RenderDim(fmt.Sprintf("%d entries left untouched", skipped)))
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(RenderDim("y/enter: rename   n/esc: cancel"))

	return builder.String()
}

func (m Model) viewRunning() string {
	var builder strings.Builder

	builder.WriteString(m.spinner.View())
	builder.WriteString(" Renaming ")
	builder.WriteString(m.progress.ViewAs(m.Percent()))
	builder.WriteString(fmt.Sprintf(" %d/%d", m.renamed+m.failed, len(m.plan.Renames)))
	builder.WriteString("\n")

	if m.failed > 0 {
		builder.WriteString(RenderWarning(fmt.Sprintf("%d failed", m.failed)))
		builder.WriteString("\n")
	}

	if m.current != "" {
		builder.WriteString(RenderDim(relativeTo(m.plan.Root, m.current)))
	}

	return builder.String()
}

// Phase returns the current phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Result returns the run result once the run finished.
func (m Model) Result() *renamer.Result {
	return m.result
}

// Err returns the error the run stopped with, if any.
func (m Model) Err() error {
	return m.err
}

// Cancelled reports whether the user declined the plan.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// relativeTo trims root from p for display.
func relativeTo(root, p string) string {
	rel := strings.TrimPrefix(p, root)
	rel = strings.TrimLeft(rel, `/\`)
	if rel == "" {
		return p
	}
	return rel
}
