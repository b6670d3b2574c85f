package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/lepinkainen/videosorter/sorter"
	"github.com/lepinkainen/videosorter/video"
)

func testEvents() []sorter.Event {
	summary := &sorter.Summary{
		SourceDir:     "/videos",
		DestRoot:      "/videos/sorted_videos",
		Mode:          video.ModeOrientation,
		Total:         2,
		Moved:         2,
		ProbeFailures: 1,
		ByKey:         map[string]int{"landscape": 1, "unknown": 1},
		Duration:      1500 * time.Millisecond,
	}
	return []sorter.Event{
		{Kind: sorter.EventStart, Source: "/videos", Total: 2},
		{Kind: sorter.EventFile, File: "a.mp4", Key: "landscape", Action: sorter.ActionMoved},
		{Kind: sorter.EventFile, File: "c.mp4", Key: "unknown", Action: sorter.ActionMoved, ProbeErr: errors.New("moov atom not found")},
		{Kind: sorter.EventDone, Summary: summary},
	}
}

func TestPrinter(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out)
	for _, e := range testEvents() {
		p.Handle(e)
	}

	got := out.String()
	expected := []string{
		"📂 Selected folder: /videos",
		"Moved a.mp4 → landscape",
		"❌ Could not read resolution for c.mp4: moov atom not found",
		"Moved c.mp4 → unknown",
		"✅ Done! Files sorted into 'sorted_videos'.",
		"landscape",
		"2 moved, 0 copied, 1 unreadable in 1.5s",
	}
	for _, want := range expected {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, got)
		}
	}
}

func TestPrinterWithProgress(t *testing.T) {
	var out, bar bytes.Buffer
	p := NewPrinter(&out).WithProgress(&bar)
	for _, e := range testEvents() {
		p.Handle(e)
	}

	if bar.Len() == 0 {
		t.Error("Expected progress bar output")
	}
	if !strings.Contains(out.String(), "Moved a.mp4 → landscape") {
		t.Errorf("Expected file lines on the main writer, got:\n%s", out.String())
	}
	if strings.Contains(out.String(), "Sorting") {
		t.Error("Progress bar should not write to the main writer")
	}
}

func TestPrintSummaryDryRun(t *testing.T) {
	var out bytes.Buffer
	PrintSummary(&out, &sorter.Summary{Planned: 3, Skipped: 1, ByKey: map[string]int{"1920x1080": 3}})

	if !strings.Contains(out.String(), "3 planned (dry run), 1 skipped") {
		t.Errorf("Unexpected summary: %s", out.String())
	}
	if !strings.Contains(out.String(), "1920x1080") {
		t.Errorf("Expected key in summary: %s", out.String())
	}
}

func TestStyleLinePreservesText(t *testing.T) {
	for _, line := range []string{"❌ bad", "⚠️ careful", "✅ good", "📂 folder", "plain"} {
		if !strings.Contains(StyleLine(line), line) {
			t.Errorf("StyleLine(%q) lost the text", line)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		max      int
		expected string
	}{
		{"short.mp4", 30, "short.mp4"},
		{"abcdef", 3, "abc..."},
		{"äitienpäivä_juhla.mp4", 3, "äit..."},
		{"ääää", 4, "ääää"},
		{"日本語のビデオ.mp4", 2, "日本..."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := truncate(tt.input, tt.max)
			if got != tt.expected {
				t.Errorf("truncate(%q, %d) = %q, expected %q", tt.input, tt.max, got, tt.expected)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) returned invalid UTF-8", tt.input, tt.max)
			}
		})
	}
}
