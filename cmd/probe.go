package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lepinkainen/videosorter/types"
	"github.com/lepinkainen/videosorter/ui"
	"github.com/lepinkainen/videosorter/video"
)

// ProbeCmd prints the resolution of files and the folder each sort mode
// would put them in, without moving anything
type ProbeCmd struct {
	Files []string `arg:"" name:"files" help:"Video files to probe" type:"existingfile"`

	ProbeFlags `embed:""`
}

// Run probes every file in order; unreadable files are reported, not fatal
func (cmd *ProbeCmd) Run(ctx context.Context, appCtx *types.AppContext) error {
	log := appCtx.Log().With().Str("component", "probe").Logger()
	prober := cmd.Prober("")

	var readable, failed int
	for _, file := range cmd.Files {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := filepath.Base(file)
		res, err := prober.Probe(ctx, file)
		if err != nil {
			log.Debug().Str("file", file).Err(err).Msg("probe failed")
			fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("❌ %s: %v", name, err)))
			failed++
			continue
		}

		fmt.Printf("%s %s → %s, %s\n",
			ui.SuccessStyle.Render("✅"),
			name,
			video.Classify(&res, video.ModeResolution),
			video.Classify(&res, video.ModeOrientation))
		readable++
	}

	fmt.Printf("\n%s\n", ui.InfoStyle.Render(fmt.Sprintf("✅ Readable: %d, ❌ Unreadable: %d", readable, failed)))
	return nil
}
