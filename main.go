package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/lepinkainen/videosorter/cmd"
	"github.com/lepinkainen/videosorter/config"
	"github.com/lepinkainen/videosorter/types"
	"github.com/lepinkainen/videosorter/utils"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = types.DefaultVersion

type CLI struct {
	Config  kong.ConfigFlag  `help:"Load flag values from a YAML file" placeholder:"FILE"`
	LogFile string           `name:"log-file" help:"Also write JSON logs to this file (rotated)" type:"path"`
	Verbose bool             `short:"v" help:"Show debug logs on stderr"`
	Version kong.VersionFlag `help:"Print version and exit"`

	Sort  cmd.SortCmd  `cmd:"" default:"withargs" help:"Sort videos into folders by resolution or orientation"`
	Probe cmd.ProbeCmd `cmd:"" help:"Show the resolution of video files"`
	Check cmd.CheckCmd `cmd:"" help:"Check that ffprobe is installed"`
	Serve cmd.ServeCmd `cmd:"" help:"Run the HTTP API"`
	Watch cmd.WatchCmd `cmd:"" help:"Keep a folder sorted as new videos arrive"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("videosorter"),
		kong.Description("Sort video files into folders by resolution or orientation using ffprobe."),
		kong.UsageOnError(),
		kong.Configuration(config.YAML, config.DefaultPaths()...),
		kong.Vars{"version": Version},
	)

	appCtx := &types.AppContext{
		Version: Version,
		Logger:  utils.NewLogger(utils.LogOptions{Verbose: cli.Verbose, File: cli.LogFile}),
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx.BindTo(runCtx, (*context.Context)(nil))

	err := ctx.Run(appCtx)
	ctx.FatalIfErrorf(err)
}
