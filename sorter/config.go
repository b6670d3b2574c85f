package sorter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lepinkainen/videosorter/video"
)

// DefaultDestName is the folder created inside the source directory
const DefaultDestName = "sorted_videos"

// CollisionPolicy decides what happens when the destination file already exists
type CollisionPolicy string

const (
	CollisionOverwrite CollisionPolicy = "overwrite"
	CollisionSkip      CollisionPolicy = "skip"
	CollisionRename    CollisionPolicy = "rename"
)

// CollisionPolicies lists the accepted policies
var CollisionPolicies = []CollisionPolicy{CollisionOverwrite, CollisionSkip, CollisionRename}

// ParseCollisionPolicy converts user input into a CollisionPolicy
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	p := CollisionPolicy(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range CollisionPolicies {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown collision policy %q (want overwrite, skip or rename)", s)
}

// Config describes one sort run. It is passed by value and never modified
// by the sorter.
type Config struct {
	SourceDir string
	MoveFiles bool // copy when false
	Mode      video.Mode
	Extension string
	DestName  string
	Collision CollisionPolicy
	KeepGoing bool // log filesystem errors per file instead of aborting
	DryRun    bool // classify only, touch nothing
}

// DefaultConfig returns a config for moving .mp4 files by resolution.
// SourceDir still has to be set.
func DefaultConfig() Config {
	return Config{
		MoveFiles: true,
		Mode:      video.ModeResolution,
		Extension: video.DefaultExtension,
		DestName:  DefaultDestName,
		Collision: CollisionOverwrite,
	}
}

// withDefaults fills empty optional fields
func (c Config) withDefaults() Config {
	if c.Mode == "" {
		c.Mode = video.ModeResolution
	}
	if c.Extension == "" {
		c.Extension = video.DefaultExtension
	}
	if c.DestName == "" {
		c.DestName = DefaultDestName
	}
	if c.Collision == "" {
		c.Collision = CollisionOverwrite
	}
	return c
}

// Validate checks the config without touching the filesystem
func (c Config) Validate() error {
	_, err := c.normalize()
	return err
}

func (c Config) normalize() (Config, error) {
	c = c.withDefaults()

	if strings.TrimSpace(c.SourceDir) == "" {
		return c, &ConfigurationError{Field: "source", Reason: "no source directory given"}
	}

	mode, err := video.ParseMode(string(c.Mode))
	if err != nil {
		return c, &ConfigurationError{Field: "mode", Reason: err.Error()}
	}
	c.Mode = mode

	ext, err := video.NormalizeExtension(c.Extension)
	if err != nil {
		return c, &ConfigurationError{Field: "extension", Reason: err.Error()}
	}
	c.Extension = ext

	if c.DestName == "." || c.DestName == ".." || strings.ContainsAny(c.DestName, `/\`) {
		return c, &ConfigurationError{Field: "dest", Reason: fmt.Sprintf("%q must be a plain folder name", c.DestName)}
	}

	policy, err := ParseCollisionPolicy(string(c.Collision))
	if err != nil {
		return c, &ConfigurationError{Field: "collision", Reason: err.Error()}
	}
	c.Collision = policy

	return c, nil
}

// DestRoot returns the directory the key folders are created in
func (c Config) DestRoot() string {
	name := c.DestName
	if name == "" {
		name = DefaultDestName
	}
	return filepath.Join(c.SourceDir, name)
}
