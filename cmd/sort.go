package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"

	"github.com/lepinkainen/videosorter/sorter"
	"github.com/lepinkainen/videosorter/types"
	"github.com/lepinkainen/videosorter/ui"
)

// SortCmd moves or copies the videos of a folder into
// sorted_videos/<resolution or orientation>/
type SortCmd struct {
	Source string `arg:"" optional:"" name:"source" help:"Folder containing the videos" type:"path"`

	SortFlags  `embed:""`
	ProbeFlags `embed:""`

	TUI      bool `name:"tui" help:"Show an interactive progress view"`
	Progress bool `help:"Show a progress bar on stderr"`
}

// Run sorts the folder. Unreadable files go to "unknown" and do not fail
// the command; configuration and filesystem errors do.
func (cmd *SortCmd) Run(ctx context.Context, appCtx *types.AppContext) error {
	cfg := cmd.SortConfig(cmd.Source)
	if err := cfg.Validate(); err != nil {
		return err
	}

	warnIfProbeMissing(cmd.FFprobe)
	s := sorter.New(afero.NewOsFs(), cmd.Prober(cmd.Source), appCtx.Log())

	if cmd.TUI {
		return cmd.runWithTUI(ctx, s, cfg, appCtx.VersionOrDefault())
	}

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("VideoSorter %s", appCtx.VersionOrDefault())))
	if cfg.DryRun {
		fmt.Println(ui.InfoStyle.Render("Dry run: nothing will be moved or copied"))
	}

	printer := ui.NewPrinter(os.Stdout)
	if cmd.Progress {
		printer.WithProgress(os.Stderr)
	}

	_, err := s.Run(ctx, cfg, printer)
	return err
}

// runWithTUI runs the sort in the background while the TUI renders its events
func (cmd *SortCmd) runWithTUI(ctx context.Context, s *sorter.Sorter, cfg sorter.Config, version string) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(ui.NewSortModel(version, cancel), tea.WithContext(ctx))

	errCh := make(chan error, 1)
	go func() {
		summary, err := s.Run(runCtx, cfg, ui.TeaObserver(p))
		if summary == nil {
			// no events were sent, the TUI still waits for a result
			p.Send(ui.SortFinishedMsg{Err: err})
		}
		errCh <- err
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-errCh
		return fmt.Errorf("running TUI: %w", err)
	}
	return <-errCh
}
