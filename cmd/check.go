package cmd

import (
	"context"
	"fmt"

	"github.com/lepinkainen/videosorter/types"
	"github.com/lepinkainen/videosorter/ui"
	"github.com/lepinkainen/videosorter/utils"
)

// CheckCmd verifies that ffprobe can be found and runs
type CheckCmd struct {
	FFprobe string `name:"ffprobe" help:"Path to the ffprobe executable" default:"ffprobe"`
}

func (cmd *CheckCmd) Run(ctx context.Context, appCtx *types.AppContext) error {
	path, err := utils.ValidateProbeDependency(cmd.FFprobe)
	if err != nil {
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("❌ %v", err)))
		return err
	}

	version, err := utils.ProbeVersion(ctx, path)
	if err != nil {
		fmt.Println(ui.ErrorStyle.Render(fmt.Sprintf("❌ %s found but failed to run: %v", path, err)))
		return err
	}

	fmt.Println(ui.SuccessStyle.Render(fmt.Sprintf("✅ %s", path)))
	fmt.Println(ui.InfoStyle.Render(version))
	return nil
}
