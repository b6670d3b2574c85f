package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"
)

type testCLI struct {
	Config  kong.ConfigFlag `help:"Config file"`
	FFprobe string          `name:"ffprobe" default:"ffprobe"`
	Verbose bool

	Sort struct {
		Source    string        `arg:"" optional:""`
		Mode      string        `default:"resolution"`
		KeepGoing bool          `name:"keep-going"`
		Timeout   time.Duration `default:"30s"`
	} `cmd:""`

	Probe struct {
		Files []string `arg:"" optional:""`
		Mode  string   `default:"resolution"`
	} `cmd:""`
}

func parse(t *testing.T, yamlText string, args ...string) (*testCLI, *kong.Context) {
	t.Helper()
	resolver, err := YAML(strings.NewReader(yamlText))
	require.NoError(t, err)

	var cli testCLI
	parser, err := kong.New(&cli, kong.Resolvers(resolver), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, ctx
}

func TestYAML_TopLevelAndSection(t *testing.T) {
	cfg := `
ffprobe: /opt/ffmpeg/bin/ffprobe
verbose: true
sort:
  mode: orientation
  keep_going: true
  timeout: 1m
`
	cli, _ := parse(t, cfg, "sort", "/videos")

	require.Equal(t, "/opt/ffmpeg/bin/ffprobe", cli.FFprobe)
	require.True(t, cli.Verbose)
	require.Equal(t, "orientation", cli.Sort.Mode)
	require.True(t, cli.Sort.KeepGoing)
	require.Equal(t, time.Minute, cli.Sort.Timeout)
}

func TestYAML_SectionOnlyAppliesToItsCommand(t *testing.T) {
	cfg := `
sort:
  mode: orientation
`
	cli, _ := parse(t, cfg, "probe", "a.mp4")
	require.Equal(t, "resolution", cli.Probe.Mode)
}

func TestYAML_TopLevelKeyForCommandFlag(t *testing.T) {
	cli, _ := parse(t, "mode: orientation\n", "probe", "a.mp4")
	require.Equal(t, "orientation", cli.Probe.Mode)
}

func TestYAML_CommandLineWins(t *testing.T) {
	cli, _ := parse(t, "sort:\n  mode: orientation\n", "sort", "--mode", "resolution", "/videos")
	require.Equal(t, "resolution", cli.Sort.Mode)
}

func TestYAML_Empty(t *testing.T) {
	cli, _ := parse(t, "", "sort")
	require.Equal(t, "resolution", cli.Sort.Mode)
	require.Equal(t, "ffprobe", cli.FFprobe)
}

func TestYAML_Invalid(t *testing.T) {
	_, err := YAML(strings.NewReader("sort: [unterminated"))
	require.Error(t, err)
}

func TestYAML_ConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "videosorter.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sort:\n  mode: orientation\n"), 0644))

	var cli testCLI
	parser, err := kong.New(&cli, kong.Configuration(YAML), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--config", path, "sort", "/videos"})
	require.NoError(t, err)
	require.Equal(t, "orientation", cli.Sort.Mode)
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()
	require.Len(t, paths, 2)
	require.Equal(t, "./videosorter.yaml", paths[0])
}
