package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lepinkainen/videosorter/sorter"
)

// TUI message types fed from the running sort
type SortStartedMsg struct {
	Source string
	Total  int
}

type FileSortedMsg struct {
	Event sorter.Event
}

type SortFinishedMsg struct {
	Summary *sorter.Summary
	Err     error
}

// EventMsg converts a sort event into the matching tea message
func EventMsg(e sorter.Event) tea.Msg {
	switch e.Kind {
	case sorter.EventStart:
		return SortStartedMsg{Source: e.Source, Total: e.Total}
	case sorter.EventFile:
		return FileSortedMsg{Event: e}
	default:
		return SortFinishedMsg{Summary: e.Summary, Err: e.Err}
	}
}

// TeaObserver forwards sort events to a running tea program
func TeaObserver(p *tea.Program) sorter.Observer {
	return sorter.ObserverFunc(func(e sorter.Event) {
		p.Send(EventMsg(e))
	})
}
