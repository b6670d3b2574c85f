package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultProbeTimeout bounds a single ffprobe invocation
const DefaultProbeTimeout = 30 * time.Second

var resolutionRegex = regexp.MustCompile(`^(\d+)x(\d+)$`)

// Prober reads the resolution of a video file
type Prober interface {
	Probe(ctx context.Context, path string) (Resolution, error)
}

// ProbeError is returned when the resolution of a file could not be read.
// It is never fatal for a sort run: the file is classified as unknown.
type ProbeError struct {
	Path  string
	Cause string
	Err   error
}

func (e *ProbeError) Error() string {
	return e.Cause
}

func (e *ProbeError) Unwrap() error { return e.Err }

// IsProbeError reports whether err is a ProbeError
func IsProbeError(err error) bool {
	var pe *ProbeError
	return errors.As(err, &pe)
}

// FFprobe runs the ffprobe binary to read the first video stream's size
type FFprobe struct {
	Path    string        // executable, "ffprobe" from PATH when empty
	Timeout time.Duration // zero disables the deadline
}

// NewFFprobe creates a prober for the given executable and per-file timeout
func NewFFprobe(path string, timeout time.Duration) *FFprobe {
	return &FFprobe{Path: path, Timeout: timeout}
}

func (f *FFprobe) binary() string {
	if f.Path == "" {
		return "ffprobe"
	}
	return f.Path
}

// Args returns the ffprobe arguments used for a file
func (f *FFprobe) Args(path string) []string {
	return []string{"-v", "error", "-select_streams", "v:0",
		"-show_entries", "stream=width,height", "-of", "csv=s=x:p=0", "-i", path}
}

// Probe extracts the video resolution using ffprobe
func (f *FFprobe) Probe(ctx context.Context, path string) (Resolution, error) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, f.binary(), f.Args(path)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// children of a killed ffprobe must not keep the output pipes open forever
	cmd.WaitDelay = 2 * time.Second

	if err := cmd.Run(); err != nil {
		return Resolution{}, &ProbeError{Path: path, Cause: describeRunError(ctx, f, err, stderr.String()), Err: err}
	}

	res, err := ParseResolution(stdout.String())
	if err != nil {
		return Resolution{}, &ProbeError{Path: path, Cause: err.Error(), Err: err}
	}
	return res, nil
}

func describeRunError(ctx context.Context, f *FFprobe, err error, stderr string) string {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Sprintf("ffprobe timed out after %s", f.Timeout)
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return "ffprobe canceled"
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return fmt.Sprintf("ffprobe not available (%s): %v", f.binary(), err)
	}
	if line := extractFirstLine(stderr); line != "" {
		return fmt.Sprintf("ffprobe failed: %v: %s", err, line)
	}
	return fmt.Sprintf("ffprobe failed: %v", err)
}

// ParseResolution parses ffprobe "WxH" csv output.
// Only the first line is considered; ffprobe appends a trailing "x" when the
// stream carries side data, which is tolerated.
func ParseResolution(output string) (Resolution, error) {
	line := extractFirstLine(output)
	if line == "" {
		return Resolution{}, errors.New("ffprobe returned no video stream")
	}
	line = strings.TrimSuffix(line, "x")

	m := resolutionRegex.FindStringSubmatch(line)
	if m == nil {
		return Resolution{}, fmt.Errorf("invalid resolution format: %q", line)
	}

	width, err := strconv.Atoi(m[1])
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid width %q: %w", m[1], err)
	}
	height, err := strconv.Atoi(m[2])
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid height %q: %w", m[2], err)
	}

	res := Resolution{Width: width, Height: height}
	if !res.Valid() {
		return Resolution{}, fmt.Errorf("invalid resolution %s", res)
	}
	return res, nil
}

// extractFirstLine returns the first non-empty line, trimmed
func extractFirstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
