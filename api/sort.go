package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lepinkainen/videosorter/sorter"
	"github.com/lepinkainen/videosorter/video"
)

// SortRequest starts a sort run
type SortRequest struct {
	Source    string `json:"source" binding:"required"`
	Copy      bool   `json:"copy"`
	Mode      string `json:"mode"`
	Extension string `json:"ext"`
	Collision string `json:"collision"`
	DryRun    bool   `json:"dry_run"`
	KeepGoing bool   `json:"keep_going"`
}

// Config converts the request into a sorter config
func (r SortRequest) Config() sorter.Config {
	cfg := sorter.DefaultConfig()
	cfg.SourceDir = r.Source
	cfg.MoveFiles = !r.Copy
	if r.Mode != "" {
		cfg.Mode = video.Mode(r.Mode)
	}
	if r.Extension != "" {
		cfg.Extension = r.Extension
	}
	if r.Collision != "" {
		cfg.Collision = sorter.CollisionPolicy(r.Collision)
	}
	cfg.DryRun = r.DryRun
	cfg.KeepGoing = r.KeepGoing
	return cfg
}

// StatusResponse describes the server state
type StatusResponse struct {
	Running bool            `json:"running"`
	Last    *sorter.Summary `json:"last"`
}

type runResult struct {
	summary *sorter.Summary
	err     error
}

// sort runs a batch and streams its events as server-sent events:
// "start", one "log" per line, then "summary" and, for aborted runs, "error".
// Closing the connection cancels the run before its next file.
// POST /api/sort
func (s *Server) sort(c *gin.Context) {
	var req SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cfg := req.Config()
	if err := cfg.Validate(); err != nil {
		errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if !s.tryStart() {
		errorResponse(c, http.StatusConflict, "a sort is already running")
		return
	}

	events := make(chan sorter.Event)
	done := make(chan runResult, 1)
	go func() {
		defer close(events)
		summary, err := s.sorter.Run(c.Request.Context(), cfg, sorter.Observers(s.observer, sorter.ChannelObserver(events)))
		done <- runResult{summary: summary, err: err}
	}()

	first, ok := <-events
	if !ok {
		// the run never started
		res := <-done
		s.finish(res.summary)
		status := http.StatusInternalServerError
		if sorter.IsConfigurationError(res.err) {
			status = http.StatusBadRequest
		}
		errorResponse(c, status, res.err.Error())
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)

	// keep draining after a disconnect so the run can finish
	s.writeEvent(c, first)
	for e := range events {
		s.writeEvent(c, e)
	}

	res := <-done
	s.finish(res.summary)
	if res.err != nil {
		c.SSEvent("error", res.err.Error())
		c.Writer.Flush()
	}
}

func (s *Server) writeEvent(c *gin.Context, e sorter.Event) {
	if e.Kind == sorter.EventStart {
		c.SSEvent("start", gin.H{"source": e.Source, "total": e.Total})
	}
	for _, line := range e.Lines() {
		c.SSEvent("log", line)
	}
	if e.Kind == sorter.EventDone && e.Summary != nil {
		c.SSEvent("summary", e.Summary)
	}
	c.Writer.Flush()
}

// getStatus reports whether a sort is running and the last summary
// GET /api/status
func (s *Server) getStatus(c *gin.Context) {
	s.mu.Lock()
	resp := StatusResponse{Running: s.running, Last: s.last}
	s.mu.Unlock()

	c.JSON(http.StatusOK, resp)
}
