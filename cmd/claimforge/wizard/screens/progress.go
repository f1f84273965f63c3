// Package screens holds the bubbletea models used by the wizard.
package screens

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProgressMsg is sent to update the progress screen during generation
type ProgressMsg struct {
	Current int // Current claim number
	Total   int // Total claims to generate
}

// CompletionMsg is sent when generation completes successfully
type CompletionMsg struct {
	TotalForms int           // Total number of claims created
	Duration   time.Duration // Time taken
	OutputDir  string        // Output directory path
}

// ErrorMsg is sent when an error occurs during generation
type ErrorMsg struct {
	Error error
}

var (
	progressBarStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63"))

	progressBarEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240"))

	progressPercentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("63")).
				Bold(true)

	progressElapsedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244"))

	completionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	cancelHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

// ProgressScreen displays generation progress
type ProgressScreen struct {
	current   int
	total     int
	startTime time.Time
	done      *CompletionMsg
	err       error
	cancelled bool
}

// NewProgressScreen creates a new progress screen
func NewProgressScreen(total int) *ProgressScreen {
	return &ProgressScreen{
		total:     total,
		startTime: time.Now(),
	}
}

// Cancelled reports whether the user aborted generation.
func (s *ProgressScreen) Cancelled() bool { return s.cancelled }

// Init implements tea.Model
func (s *ProgressScreen) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (s *ProgressScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			s.cancelled = true
			return s, tea.Quit
		}
		if s.done != nil || s.err != nil {
			return s, tea.Quit
		}
	case ProgressMsg:
		s.current = msg.Current
		s.total = msg.Total
	case CompletionMsg:
		done := msg
		s.done = &done
		return s, tea.Quit
	case ErrorMsg:
		s.err = msg.Error
		return s, tea.Quit
	}
	return s, nil
}

// View implements tea.Model
func (s *ProgressScreen) View() string {
	if s.err != nil {
		return errorStyle.Render("✗ Generation failed: "+s.err.Error()) + "\n"
	}
	if s.done != nil {
		return completionStyle.Render(fmt.Sprintf("✓ %d claims generated in %s (%s)",
			s.done.TotalForms, s.done.OutputDir, s.done.Duration.Round(time.Millisecond))) + "\n"
	}

	const barWidth = 40
	filled := 0
	percent := 0.0
	if s.total > 0 {
		percent = float64(s.current) / float64(s.total)
		filled = int(percent * barWidth)
	}
	bar := progressBarStyle.Render(strings.Repeat("█", filled)) +
		progressBarEmptyStyle.Render(strings.Repeat("░", barWidth-filled))

	var b strings.Builder
	b.WriteString("Generating claims...\n\n")
	b.WriteString(fmt.Sprintf("  %s %s (%d/%d)\n", bar,
		progressPercentStyle.Render(fmt.Sprintf("%3.0f%%", percent*100)),
		s.current, s.total))
	b.WriteString(progressElapsedStyle.Render(
		fmt.Sprintf("  elapsed: %s", time.Since(s.startTime).Round(time.Second))) + "\n\n")
	b.WriteString(cancelHintStyle.Render("  ctrl+c to cancel") + "\n")
	return b.String()
}
