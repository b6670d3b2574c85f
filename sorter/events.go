package sorter

import (
	"fmt"
	"path/filepath"
	"time"
)

// EventKind identifies the stage an Event reports
type EventKind string

const (
	EventStart EventKind = "start"
	EventFile  EventKind = "file"
	EventDone  EventKind = "done"
)

// Action is what happened to a single file
type Action string

const (
	ActionMoved   Action = "moved"
	ActionCopied  Action = "copied"
	ActionSkipped Action = "skipped" // destination existed, collision policy skip
	ActionPlanned Action = "planned" // dry run
	ActionFailed  Action = "failed"  // filesystem error
)

// Event is emitted by Sorter.Run: one EventStart, one EventFile per
// candidate file and a final EventDone.
type Event struct {
	Kind EventKind
	Time time.Time

	// EventStart
	Source string
	Total  int

	// EventFile
	File     string // base name
	Path     string // source path
	Key      string
	Dest     string
	Action   Action
	ProbeErr error

	// EventFile with ActionFailed, or EventDone of an aborted run
	Err error

	// EventDone
	Summary *Summary
}

// Lines renders the event as human readable log lines
func (e Event) Lines() []string {
	switch e.Kind {
	case EventStart:
		return []string{
			fmt.Sprintf("📂 Selected folder: %s", e.Source),
			fmt.Sprintf("Found %d file(s) to sort", e.Total),
		}

	case EventFile:
		var lines []string
		if e.ProbeErr != nil {
			lines = append(lines, fmt.Sprintf("❌ Could not read resolution for %s: %v", e.File, e.ProbeErr))
		}
		target := e.Key
		if e.Dest != "" && filepath.Base(e.Dest) != e.File {
			target = fmt.Sprintf("%s (as %s)", e.Key, filepath.Base(e.Dest))
		}
		switch e.Action {
		case ActionMoved:
			lines = append(lines, fmt.Sprintf("Moved %s → %s", e.File, target))
		case ActionCopied:
			lines = append(lines, fmt.Sprintf("Copied %s → %s", e.File, target))
		case ActionSkipped:
			lines = append(lines, fmt.Sprintf("⚠️ Skipped %s → %s: already exists", e.File, target))
		case ActionPlanned:
			lines = append(lines, fmt.Sprintf("Would sort %s → %s", e.File, target))
		case ActionFailed:
			lines = append(lines, fmt.Sprintf("❌ Failed to sort %s → %s: %v", e.File, target, e.Err))
		}
		return lines

	case EventDone:
		if e.Summary == nil {
			return nil
		}
		if e.Summary.Aborted {
			line := fmt.Sprintf("⚠️ Stopped after %d of %d file(s)", e.Summary.Processed(), e.Summary.Total)
			if e.Err != nil {
				line += fmt.Sprintf(": %v", e.Err)
			}
			return []string{line}
		}
		return []string{fmt.Sprintf("✅ Done! Files sorted into '%s'.", filepath.Base(e.Summary.DestRoot))}
	}
	return nil
}

// Observer receives sort events. Handle is called synchronously from the
// goroutine running the sort, in order.
type Observer interface {
	Handle(Event)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(Event)

// Handle calls f(e)
func (f ObserverFunc) Handle(e Event) { f(e) }

type multiObserver []Observer

func (m multiObserver) Handle(e Event) {
	for _, o := range m {
		o.Handle(e)
	}
}

// Observers fans events out to every non-nil observer
func Observers(obs ...Observer) Observer {
	var m multiObserver
	for _, o := range obs {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

// ChannelObserver sends every event to ch. The send blocks, so the reader
// paces the sort.
func ChannelObserver(ch chan<- Event) Observer {
	return ObserverFunc(func(e Event) { ch <- e })
}
