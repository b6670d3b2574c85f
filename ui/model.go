package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lepinkainen/videosorter/sorter"
)

// File log entry for the processed files list
type FileLogEntry struct {
	Name   string
	Key    string
	Action sorter.Action
	Note   string
}

func (f FileLogEntry) FilterValue() string { return f.Name }
func (f FileLogEntry) Title() string       { return f.Name }
func (f FileLogEntry) Description() string {
	switch f.Action {
	case sorter.ActionFailed:
		return fmt.Sprintf("❌ %s", f.Note)
	case sorter.ActionSkipped:
		return fmt.Sprintf("⚠️ %s already exists", f.Key)
	}
	if f.Note != "" {
		return fmt.Sprintf("✓ → %s (%s)", f.Key, f.Note)
	}
	return fmt.Sprintf("✓ → %s", f.Key)
}

func newFileLogEntry(e sorter.Event) FileLogEntry {
	entry := FileLogEntry{Name: e.File, Key: e.Key, Action: e.Action}
	switch {
	case e.Err != nil:
		entry.Note = e.Err.Error()
	case e.ProbeErr != nil:
		entry.Note = e.ProbeErr.Error()
	}
	return entry
}

// SortModel is the TUI shown by `sort --tui`
type SortModel struct {
	// Application state
	source      string
	totalFiles  int
	processed   int
	fileEntries []FileLogEntry
	summary     *sorter.Summary
	err         error
	finished    bool

	// UI components
	overallProgress progress.Model
	fileList        list.Model

	// Layout
	width  int
	height int

	// Control state
	stopping bool
	cancel   context.CancelFunc

	// Version for display
	Version string
}

// NewSortModel creates the model; cancel stops the running sort
func NewSortModel(version string, cancel context.CancelFunc) SortModel {
	fileList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	fileList.Title = "Sorted Files"

	return SortModel{
		overallProgress: progress.New(progress.WithDefaultGradient()),
		fileList:        fileList,
		cancel:          cancel,
		Version:         version,
	}
}

// Summary returns the final summary once the sort has finished
func (m SortModel) Summary() (*sorter.Summary, error) {
	return m.summary, m.err
}

// Init implements tea.Model
func (m SortModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m SortModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.finished {
				return m, tea.Quit
			}
			// the run stops before its next file and sends SortFinishedMsg
			m.stopping = true
			if m.cancel != nil {
				m.cancel()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.overallProgress.Width = max(msg.Width-30, 10)
		m.fileList.SetSize(msg.Width-4, msg.Height/2)

	case SortStartedMsg:
		m.source = msg.Source
		m.totalFiles = msg.Total

	case FileSortedMsg:
		m.processed++
		m.fileEntries = append(m.fileEntries, newFileLogEntry(msg.Event))
		items := make([]list.Item, len(m.fileEntries))
		for i, entry := range m.fileEntries {
			items[i] = entry
		}
		m.fileList.SetItems(items)
		m.fileList.Select(len(items) - 1)

	case SortFinishedMsg:
		m.finished = true
		m.summary = msg.Summary
		m.err = msg.Err
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model
func (m SortModel) View() string {
	// Header
	header := HeaderStyle.Render(fmt.Sprintf("VideoSorter %s", m.Version))

	source := InfoStyle.Render("📂 " + m.source)

	// Overall progress
	percent := 0.0
	if m.totalFiles > 0 {
		percent = float64(m.processed) / float64(m.totalFiles)
	}
	overallView := fmt.Sprintf("Progress: %s (%d/%d)",
		m.overallProgress.ViewAs(percent),
		m.processed,
		m.totalFiles)

	sections := []string{header, source, overallView, m.fileList.View()}

	switch {
	case m.finished && m.summary != nil:
		for _, line := range (sorter.Event{Kind: sorter.EventDone, Summary: m.summary, Err: m.err}).Lines() {
			sections = append(sections, StyleLine(line))
		}
		var b strings.Builder
		PrintSummary(&b, m.summary)
		sections = append(sections, strings.TrimRight(b.String(), "\n"))
	case m.finished && m.err != nil:
		sections = append(sections, ErrorStyle.Render("❌ "+m.err.Error()))
	case m.stopping:
		sections = append(sections, WarningStyle.Render("Stopping after the current file..."))
	default:
		sections = append(sections, "Controls: [q] Stop")
	}

	return strings.Join(sections, "\n\n")
}
