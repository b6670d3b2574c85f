package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"

	"github.com/lepinkainen/videosorter/sorter"
	"github.com/lepinkainen/videosorter/types"
	"github.com/lepinkainen/videosorter/ui"
	"github.com/lepinkainen/videosorter/watch"
)

// WatchCmd keeps a folder sorted until interrupted.
// With --copy the originals stay put, so after the first sort an existing
// copy is never overwritten: --collision overwrite acts as skip on reruns.
type WatchCmd struct {
	Source string        `arg:"" name:"source" help:"Folder to watch" type:"existingdir"`
	Settle time.Duration `help:"Quiet period before new files are sorted" default:"5s"`

	SortFlags  `embed:""`
	ProbeFlags `embed:""`
}

func (cmd *WatchCmd) Run(ctx context.Context, appCtx *types.AppContext) error {
	cfg := cmd.SortConfig(cmd.Source)
	if err := cfg.Validate(); err != nil {
		return err
	}
	warnIfProbeMissing(cmd.FFprobe)

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("VideoSorter %s", appCtx.VersionOrDefault())))
	fmt.Println(ui.InfoStyle.Render(fmt.Sprintf("Watching %s, press Ctrl+C to stop", cmd.Source)))

	w := &watch.Watcher{
		Sorter:   sorter.New(afero.NewOsFs(), cmd.Prober(cmd.Source), appCtx.Log()),
		Config:   cfg,
		Settle:   cmd.Settle,
		Observer: ui.NewPrinter(os.Stdout),
		Logger:   appCtx.Log(),
	}
	return w.Run(ctx)
}
