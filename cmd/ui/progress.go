package ui

import (
	"fmt"
	"strings"

	"fcount/pkg/counter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	scanHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	scanLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	barFilledStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	barEmptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type scanModel struct {
	events  <-chan counter.Progress
	cancel  func()
	visited int
	total   int
	label   string
	width   int
}

type scanEventMsg counter.Progress

// scanDoneMsg arrives when the event channel closes: the scan finished.
type scanDoneMsg struct{}

func waitForEvent(events <-chan counter.Progress) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return scanDoneMsg{}
		}
		return scanEventMsg(event)
	}
}

func (m scanModel) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// The terminal is in raw mode while the view runs, so Ctrl-C
		// arrives as a key, not a signal. Cancel the scan but keep the
		// view up until the event stream ends, so the partial result
		// still renders.
		if msg.String() == "ctrl+c" && m.cancel != nil {
			m.cancel()
		}
		return m, nil

	case scanEventMsg:
		m.visited = msg.Visited
		m.total = msg.Total
		m.label = msg.Path
		return m, waitForEvent(m.events)

	case scanDoneMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m scanModel) View() string {
	var s strings.Builder

	s.WriteString(scanHeaderStyle.Render("Scanning directories..."))
	s.WriteString("\n\n")

	if m.total > 0 {
		s.WriteString(m.renderBar())
	} else {
		// Remote backends can't pre-count, so render an open-ended counter.
		s.WriteString(fmt.Sprintf("  %d directories visited", m.visited))
	}
	s.WriteString("\n\n")

	label := m.label
	if maxLabel := m.width - 4; len(label) > maxLabel && maxLabel > 3 {
		label = "..." + label[len(label)-maxLabel+3:]
	}
	s.WriteString(scanLabelStyle.Render(label))
	s.WriteString("\n")

	return s.String()
}

func (m scanModel) renderBar() string {
	percent := float64(m.visited) / float64(m.total) * 100
	if percent > 100 {
		percent = 100
	}

	barWidth := m.width - 10
	filledWidth := int(percent / 100 * float64(barWidth))

	var bar strings.Builder
	bar.WriteString("  ")
	for i := 0; i < filledWidth; i++ {
		bar.WriteString(barFilledStyle.Render("█"))
	}
	for i := filledWidth; i < barWidth; i++ {
		bar.WriteString(barEmptyStyle.Render("░"))
	}
	bar.WriteString(fmt.Sprintf(" %.0f%%", percent))

	return bar.String()
}

// RunScanProgress renders traversal progress until the event channel is
// closed. The producer side never blocks on a slow render: the engine drops
// events the channel can't take. cancel is invoked when the user hits
// Ctrl-C, since raw mode keeps the keypress from reaching the signal
// handler.
func RunScanProgress(events <-chan counter.Progress, cancel func()) error {
	m := scanModel{
		events: events,
		cancel: cancel,
		width:  60,
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
