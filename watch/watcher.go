// Package watch keeps a folder sorted: it sorts once, then again whenever
// new matching files have settled.
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/lepinkainen/videosorter/sorter"
	"github.com/lepinkainen/videosorter/video"
)

// DefaultSettle is how long a folder must be quiet before sorting again
const DefaultSettle = 5 * time.Second

// Watcher reruns a sort when files are added to the source directory.
// Only the source directory itself is watched, never subdirectories.
type Watcher struct {
	Sorter   *sorter.Sorter
	Config   sorter.Config
	Settle   time.Duration
	Observer sorter.Observer
	Logger   zerolog.Logger
}

// Run sorts once and then watches until ctx is cancelled.
// Configuration errors are returned immediately; failed runs are logged and
// the watch goes on.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.Config.Validate(); err != nil {
		return err
	}
	settle := w.Settle
	if settle <= 0 {
		settle = DefaultSettle
	}
	ext, _ := video.NormalizeExtension(w.Config.Extension)
	log := w.Logger.With().Str("component", "watch").Str("source", w.Config.SourceDir).Logger()

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.Config.SourceDir); err != nil {
		return &sorter.ConfigurationError{Field: "source", Reason: err.Error()}
	}

	if err := w.sortOnce(ctx, w.Config, log); err != nil {
		return err
	}
	rerun := rerunConfig(w.Config)

	// armed by the first matching change
	timer := time.NewTimer(settle)
	timer.Stop()
	defer timer.Stop()

	log.Info().Dur("settle", settle).Msg("watching for new files")
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !video.HasExtension(event.Name, ext) {
				continue
			}
			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			timer.Reset(settle)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watch error")

		case <-timer.C:
			if err := w.sortOnce(ctx, rerun, log); err != nil {
				return err
			}
		}
	}
}

// rerunConfig is the config for runs after the first one. When copying, the
// originals stay in the source, so overwriting would copy every file again
// on each change; reruns skip files that already have a copy instead.
func rerunConfig(cfg sorter.Config) sorter.Config {
	if !cfg.MoveFiles && (cfg.Collision == "" || cfg.Collision == sorter.CollisionOverwrite) {
		cfg.Collision = sorter.CollisionSkip
	}
	return cfg
}

// sortOnce runs the sorter; only configuration errors are returned
func (w *Watcher) sortOnce(ctx context.Context, cfg sorter.Config, log zerolog.Logger) error {
	_, err := w.Sorter.Run(ctx, cfg, w.Observer)
	switch {
	case err == nil, ctx.Err() != nil:
		return nil
	case sorter.IsConfigurationError(err):
		return err
	default:
		log.Error().Err(err).Msg("sort failed, still watching")
		return nil
	}
}
