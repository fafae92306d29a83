// Package tui provides a Bubble Tea terminal user interface for
// releasewatch.
package tui

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/releasewatch/releasewatch/internal/config"
	"github.com/releasewatch/releasewatch/internal/harvest"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1DB954")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1DB954")).
			Padding(1, 2)
)

// State represents the current UI state.
type State int

const (
	StateHarvesting State = iota
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   harvest.ProgressLevel
}

// eventBuffer collects progress events from the manager goroutine; the
// model drains it on each tick. The manager callback may fire from a
// different goroutine than Update, hence the lock.
type eventBuffer struct {
	mu     sync.Mutex
	events []LogEntry
}

func (b *eventBuffer) add(e harvest.ProgressEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, LogEntry{Message: e.Message, Level: e.Level})
}

func (b *eventBuffer) drain() []LogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	drained := b.events
	b.events = nil
	return drained
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state    State
	spinner  spinner.Model
	progress progress.Model
	logs     []LogEntry
	report   *harvest.Report
	err      error

	settings *config.Settings
	verbose  bool

	ctx    context.Context
	cancel context.CancelFunc

	manager *harvest.Manager
	events  *eventBuffer

	checked int32
	planned int32

	width int
}

// NewModel creates a new TUI model and wires the harvest manager to it.
func NewModel(settings *config.Settings, creds config.Credentials, verbose bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#1DB954"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	events := &eventBuffer{}
	manager := harvest.NewManager(settings, creds, events.add)

	return Model{
		state:    StateHarvesting,
		spinner:  sp,
		progress: prog,
		settings: settings,
		verbose:  verbose,
		ctx:      ctx,
		cancel:   cancel,
		manager:  manager,
		events:   events,
	}
}

// Init starts the harvest immediately; there is nothing to ask the user.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startHarvest(), m.tickProgress())
}

// Message types
type (
	// RunDoneMsg is sent when the harvest invocation finishes.
	RunDoneMsg struct {
		Report *harvest.Report
		Err    error
	}

	// TickMsg drives periodic progress and log updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 20
		if m.progress.Width > 80 {
			m.progress.Width = 80
		}
		if m.progress.Width < 20 {
			m.progress.Width = 20
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateHarvesting {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case RunDoneMsg:
		m.drainLogs()
		if msg.Err != nil && m.ctx.Err() == nil {
			m.state = StateError
			m.err = msg.Err
		} else if m.ctx.Err() != nil {
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		} else {
			m.state = StateComplete
			m.report = msg.Report
		}

	case TickMsg:
		if m.state == StateHarvesting {
			m.drainLogs()
			m.checked, m.planned = m.manager.GetProgress()

			var percent float64
			if m.planned > 0 {
				percent = float64(m.checked) / float64(m.planned)
			}
			cmds = append(cmds, m.progress.SetPercent(percent), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// drainLogs moves buffered manager events into the visible log window.
func (m *Model) drainLogs() {
	for _, entry := range m.events.drain() {
		if entry.Level == harvest.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, entry)
	}
	// Keep only the last 10 logs
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

// tickProgress returns a command to tick progress updates.
func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// startHarvest runs the invocation in the background.
func (m Model) startHarvest() tea.Cmd {
	return func() tea.Msg {
		report, err := m.manager.Run(m.ctx)
		return RunDoneMsg{Report: report, Err: err}
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎧 releasewatch"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Harvesting release metadata"))
	b.WriteString("\n\n")

	switch m.state {
	case StateHarvesting:
		b.WriteString(m.viewHarvesting())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewHarvesting() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Fetching releases..."))
	b.WriteString("\n\n")

	var percent float64
	if m.planned > 0 {
		percent = float64(m.checked) / float64(m.planned)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Artists: %d/%d", m.checked, m.planned)))
	b.WriteString("\n\n")

	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	checked, failed, fresh, total := 0, 0, 0, 0
	if m.report != nil {
		checked = m.report.ArtistsChecked
		failed = m.report.FailedArtists
		fresh = len(m.report.NewReleases)
		total = m.report.TotalReleases
	}

	box := boxStyle.Render(fmt.Sprintf(
		"✨ Harvest Complete!\n\n"+
			"Artists checked: %d (%d failed)\n"+
			"New releases: %d\n"+
			"Collection: %d releases",
		checked, failed, fresh, total,
	))
	b.WriteString(box)

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("❌ Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s", m.err.Error()))
	}

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case harvest.LevelError:
			style = errorStyle
			prefix = "✗"
		case harvest.LevelWarning:
			style = warningStyle
			prefix = "!"
		case harvest.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case harvest.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) getHelpText() string {
	switch m.state {
	case StateHarvesting:
		return "esc: cancel"
	case StateComplete, StateError:
		return "q: quit"
	}
	return ""
}

// Run starts the TUI application.
func Run(settings *config.Settings, creds config.Credentials, verbose bool) error {
	p := tea.NewProgram(NewModel(settings, creds, verbose), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
