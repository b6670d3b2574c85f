package utils

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// ErrFFprobeNotFound is returned when the ffprobe executable cannot be located
var ErrFFprobeNotFound = errors.New("ffprobe not found")

// ValidateProbeDependency checks that ffprobe is available and returns the
// resolved executable path. An empty path means "ffprobe" from PATH.
func ValidateProbeDependency(path string) (string, error) {
	if path == "" {
		path = "ffprobe"
	}

	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", fmt.Errorf("%w (%s). %s", ErrFFprobeNotFound, path, getInstallationInstructions())
	}
	return resolved, nil
}

// ProbeVersion returns the first line of `ffprobe -version`
func ProbeVersion(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = "ffprobe"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, path, "-version")
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s -version: %w", path, err)
	}

	line, _, _ := strings.Cut(out.String(), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("%s -version printed nothing", path)
	}
	return line, nil
}

// getInstallationInstructions returns platform-specific installation instructions
func getInstallationInstructions() string {
	switch runtime.GOOS {
	case "darwin":
		return "Install with: brew install ffmpeg"
	case "linux":
		return "Install with: apt-get install ffmpeg (Ubuntu/Debian) or yum install ffmpeg (CentOS/RHEL)"
	case "windows":
		return "Download from https://ffmpeg.org/download.html and add to PATH"
	default:
		return "Download from https://ffmpeg.org/download.html"
	}
}
