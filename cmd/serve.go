package cmd

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/afero"

	"github.com/lepinkainen/videosorter/api"
	"github.com/lepinkainen/videosorter/metrics"
	"github.com/lepinkainen/videosorter/sorter"
	"github.com/lepinkainen/videosorter/types"
	"github.com/lepinkainen/videosorter/ui"
)

// ServeCmd exposes sorting over HTTP
type ServeCmd struct {
	Listen string `help:"Address to listen on" default:":8089"`

	ProbeFlags `embed:""`
}

func (cmd *ServeCmd) Run(ctx context.Context, appCtx *types.AppContext) error {
	warnIfProbeMissing(cmd.FFprobe)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(reg)

	s := sorter.New(afero.NewOsFs(), cmd.Prober(""), appCtx.Log())
	srv := api.NewServer(s, recorder, reg, appCtx.Log())

	fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("VideoSorter %s", appCtx.VersionOrDefault())))
	fmt.Println(ui.InfoStyle.Render(fmt.Sprintf("Listening on %s (POST /api/sort, GET /api/status, GET /metrics)", cmd.Listen)))

	return srv.ListenAndServe(ctx, cmd.Listen)
}
