package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/lepinkainen/videosorter/sorter"
)

// Recorder turns sort events into Prometheus metrics
type Recorder struct {
	Files         *prometheus.CounterVec
	ProbeFailures prometheus.Counter
	Runs          *prometheus.CounterVec
	RunDuration   prometheus.Histogram
}

// NewRecorder creates and registers the sorter metrics with reg
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		Files: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "videosorter",
			Name:      "files_total",
			Help:      "Files handled, by action and destination folder.",
		}, []string{"action", "key"}),
		ProbeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "videosorter",
			Name:      "probe_failures_total",
			Help:      "Files whose resolution could not be read.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "videosorter",
			Name:      "runs_total",
			Help:      "Sort runs by result (completed, aborted).",
		}, []string{"result"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "videosorter",
			Name:      "run_duration_seconds",
			Help:      "Duration of sort runs.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 15, 30, 60, 300, 900, 3600},
		}),
	}

	reg.MustRegister(r.Files, r.ProbeFailures, r.Runs, r.RunDuration)
	return r
}

// Handle implements sorter.Observer
func (r *Recorder) Handle(e sorter.Event) {
	switch e.Kind {
	case sorter.EventFile:
		r.Files.WithLabelValues(string(e.Action), e.Key).Inc()
		if e.ProbeErr != nil {
			r.ProbeFailures.Inc()
		}
	case sorter.EventDone:
		result := "completed"
		if e.Summary == nil || e.Summary.Aborted {
			result = "aborted"
		}
		r.Runs.WithLabelValues(result).Inc()
		if e.Summary != nil {
			r.RunDuration.Observe(e.Summary.Duration.Seconds())
		}
	}
}
