package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/lepinkainen/videosorter/sorter"
)

// Printer writes sort events as styled lines, optionally with a progress
// bar on a second writer
type Printer struct {
	out    io.Writer
	barOut io.Writer
	bar    *progressbar.ProgressBar
}

// NewPrinter creates a Printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// WithProgress enables a progress bar rendered to w
func (p *Printer) WithProgress(w io.Writer) *Printer {
	p.barOut = w
	return p
}

// Handle implements sorter.Observer
func (p *Printer) Handle(e sorter.Event) {
	switch e.Kind {
	case sorter.EventStart:
		if p.barOut != nil && e.Total > 0 {
			p.bar = progressbar.NewOptions(e.Total,
				progressbar.OptionSetWriter(p.barOut),
				progressbar.OptionSetDescription("Sorting"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		p.printLines(e.Lines())

	case sorter.EventFile:
		if p.bar != nil {
			_ = p.bar.Clear()
			p.bar.Describe(truncate(e.File, 30))
		}
		p.printLines(e.Lines())
		if p.bar != nil {
			_ = p.bar.Add(1)
		}

	case sorter.EventDone:
		if p.bar != nil {
			_ = p.bar.Finish()
			p.bar = nil
		}
		fmt.Fprintln(p.out)
		p.printLines(e.Lines())
		if e.Summary != nil {
			PrintSummary(p.out, e.Summary)
		}
	}
}

func (p *Printer) printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(p.out, StyleLine(line))
	}
}

// PrintSummary writes per-folder counts and totals
func PrintSummary(w io.Writer, s *sorter.Summary) {
	for _, key := range s.Keys() {
		fmt.Fprintf(w, "  %s %d\n", InfoStyle.Render(fmt.Sprintf("%-12s", key)), s.ByKey[key])
	}

	line := fmt.Sprintf("%d moved, %d copied", s.Moved, s.Copied)
	if s.Planned > 0 {
		line = fmt.Sprintf("%d planned (dry run)", s.Planned)
	}
	if s.Skipped > 0 {
		line += fmt.Sprintf(", %d skipped", s.Skipped)
	}
	if s.Failed > 0 {
		line += fmt.Sprintf(", %d failed", s.Failed)
	}
	if s.ProbeFailures > 0 {
		line += fmt.Sprintf(", %d unreadable", s.ProbeFailures)
	}
	fmt.Fprintf(w, "%s in %s\n", line, s.Duration.Round(time.Millisecond))
}

// truncate shortens s to max runes so multibyte names stay valid UTF-8
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s
}
