package sorter

import (
	"sort"
	"time"

	"github.com/lepinkainen/videosorter/video"
)

// Summary is the result of a sort run
type Summary struct {
	SourceDir     string         `json:"source_dir"`
	DestRoot      string         `json:"dest_root"`
	Mode          video.Mode     `json:"mode"`
	Total         int            `json:"total"`
	Moved         int            `json:"moved"`
	Copied        int            `json:"copied"`
	Skipped       int            `json:"skipped"`
	Planned       int            `json:"planned"`
	Failed        int            `json:"failed"`
	ProbeFailures int            `json:"probe_failures"`
	ByKey         map[string]int `json:"by_key"`
	Aborted       bool           `json:"aborted"`
	Duration      time.Duration  `json:"duration_ns"`
}

func newSummary(cfg Config) *Summary {
	return &Summary{
		SourceDir: cfg.SourceDir,
		DestRoot:  cfg.DestRoot(),
		Mode:      cfg.Mode,
		ByKey:     make(map[string]int),
	}
}

func (s *Summary) record(action Action, key string) {
	switch action {
	case ActionMoved:
		s.Moved++
	case ActionCopied:
		s.Copied++
	case ActionSkipped:
		s.Skipped++
	case ActionPlanned:
		s.Planned++
	case ActionFailed:
		s.Failed++
	}
	if action == ActionMoved || action == ActionCopied || action == ActionPlanned {
		s.ByKey[key]++
	}
}

// Processed is the number of files that got an EventFile
func (s *Summary) Processed() int {
	return s.Moved + s.Copied + s.Skipped + s.Planned + s.Failed
}

// Keys returns the classification keys that received files, sorted
func (s *Summary) Keys() []string {
	keys := make([]string, 0, len(s.ByKey))
	for k := range s.ByKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
