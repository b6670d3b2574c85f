package cmd

import (
	"fmt"
	"time"

	"github.com/lepinkainen/videosorter/sorter"
	"github.com/lepinkainen/videosorter/ui"
	"github.com/lepinkainen/videosorter/utils"
	"github.com/lepinkainen/videosorter/video"
)

// ProbeFlags configure the ffprobe subprocess
type ProbeFlags struct {
	FFprobe string        `name:"ffprobe" help:"Path to the ffprobe executable" default:"ffprobe"`
	Timeout time.Duration `help:"Per-file probe timeout, 0 disables it" default:"30s"`
}

// Prober builds the ffprobe prober. Sources on network drives get twice the
// default timeout since reading the container header is much slower there.
func (f ProbeFlags) Prober(source string) *video.FFprobe {
	timeout, raised := utils.ProbeTimeoutFor(source, f.Timeout, video.DefaultProbeTimeout)
	if raised {
		fmt.Println(ui.WarningStyle.Render(fmt.Sprintf("⚠️  Network drive detected, probe timeout raised to %s", timeout)))
	}
	return video.NewFFprobe(f.FFprobe, timeout)
}

// SortFlags are shared by the sort and watch commands
type SortFlags struct {
	Copy      bool   `help:"Copy files instead of moving them"`
	Mode      string `help:"Folder naming: resolution (1920x1080) or orientation (landscape/portrait/square)" enum:"resolution,orientation,by-resolution,by-orientation,type" default:"resolution"`
	Ext       string `help:"Container extension to sort" default:".mp4"`
	Collision string `help:"When the destination exists: overwrite, skip or rename" enum:"overwrite,skip,rename" default:"overwrite"`
	KeepGoing bool   `help:"Log filesystem errors and continue with the next file"`
	DryRun    bool   `help:"Show where files would go without touching them"`
}

// SortConfig builds the sorter configuration for source
func (f SortFlags) SortConfig(source string) sorter.Config {
	cfg := sorter.DefaultConfig()
	cfg.SourceDir = source
	cfg.MoveFiles = !f.Copy
	cfg.Mode = video.Mode(f.Mode)
	cfg.Extension = f.Ext
	cfg.Collision = sorter.CollisionPolicy(f.Collision)
	cfg.KeepGoing = f.KeepGoing
	cfg.DryRun = f.DryRun
	return cfg
}

// warnIfProbeMissing prints a warning when ffprobe cannot be found.
// The run still goes ahead and every file ends up in "unknown".
func warnIfProbeMissing(path string) {
	if _, err := utils.ValidateProbeDependency(path); err != nil {
		fmt.Println(ui.WarningStyle.Render(fmt.Sprintf("⚠️  %v", err)))
	}
}
