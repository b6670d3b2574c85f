package sorter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/lepinkainen/videosorter/utils"
	"github.com/lepinkainen/videosorter/video"
)

// Sorter moves or copies video files into per-resolution folders.
// Files are handled one at a time; a Sorter may be reused for many runs but
// runs must not overlap on the same source directory.
type Sorter struct {
	fs     afero.Fs
	prober video.Prober
	log    zerolog.Logger
}

// New creates a Sorter working on fs and reading resolutions with prober
func New(fs afero.Fs, prober video.Prober, logger zerolog.Logger) *Sorter {
	return &Sorter{
		fs:     fs,
		prober: prober,
		log:    logger.With().Str("component", "sorter").Logger(),
	}
}

type run struct {
	*Sorter
	ctx     context.Context
	cfg     Config
	obs     Observer
	summary *Summary
	started time.Time
	dirs    map[string]bool
}

// Run sorts the files directly inside cfg.SourceDir.
//
// A *ConfigurationError is returned before anything on disk is touched.
// Files whose resolution cannot be read go to the "unknown" folder and never
// stop the run. Filesystem errors stop the run with a *FilesystemError unless
// cfg.KeepGoing is set. Cancelling ctx stops the run before the next file.
// Once the source is validated an EventDone is always emitted, and the
// summary is returned together with any error.
func (s *Sorter) Run(ctx context.Context, cfg Config, obs Observer) (*Summary, error) {
	cfg, err := cfg.normalize()
	if err != nil {
		return nil, err
	}
	if obs == nil {
		obs = Observers()
	}

	info, err := s.fs.Stat(cfg.SourceDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigurationError{Field: "source", Reason: fmt.Sprintf("directory %s does not exist", cfg.SourceDir)}
		}
		return nil, &ConfigurationError{Field: "source", Reason: err.Error()}
	}
	if !info.IsDir() {
		return nil, &ConfigurationError{Field: "source", Reason: fmt.Sprintf("%s is not a directory", cfg.SourceDir)}
	}

	r := &run{
		Sorter:  s,
		ctx:     ctx,
		cfg:     cfg,
		obs:     obs,
		summary: newSummary(cfg),
		started: time.Now(),
		dirs:    make(map[string]bool),
	}
	return r.finish(r.sortAll())
}

func (r *run) sortAll() error {
	destRoot := r.cfg.DestRoot()
	log := r.log.With().Str("source", r.cfg.SourceDir).Logger()

	if !r.cfg.DryRun {
		if err := r.ensureDir(destRoot); err != nil {
			return err
		}
	}

	files, err := video.FindCandidates(r.fs, r.cfg.SourceDir, r.cfg.Extension)
	if err != nil {
		return &FilesystemError{Op: "list", Path: r.cfg.SourceDir, Err: err}
	}
	r.summary.Total = len(files)

	log.Info().
		Int("files", len(files)).
		Str("mode", string(r.cfg.Mode)).
		Bool("move", r.cfg.MoveFiles).
		Bool("dry_run", r.cfg.DryRun).
		Msg("sort started")
	r.emit(Event{Kind: EventStart, Source: r.cfg.SourceDir, Total: len(files)})

	for _, path := range files {
		if err := r.ctx.Err(); err != nil {
			return err
		}
		if err := r.sortFile(path); err != nil {
			return err
		}
	}
	return nil
}

// sortFile handles a single candidate. The returned error aborts the run.
func (r *run) sortFile(path string) error {
	name := filepath.Base(path)
	ev := Event{Kind: EventFile, File: name, Path: path}

	var res *video.Resolution
	probed, err := r.prober.Probe(r.ctx, path)
	if err != nil {
		// a probe interrupted by cancellation says nothing about the file
		if ctxErr := r.ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		r.summary.ProbeFailures++
		ev.ProbeErr = err
		r.log.Warn().Str("file", name).Err(err).Msg("could not read resolution")
	} else {
		res = &probed
	}

	ev.Key = video.Classify(res, r.cfg.Mode)
	keyDir := filepath.Join(r.cfg.DestRoot(), ev.Key)

	if r.cfg.DryRun {
		ev.Dest = filepath.Join(keyDir, name)
		ev.Action = ActionPlanned
		r.done(ev)
		return nil
	}

	if err := r.ensureDir(keyDir); err != nil {
		return r.fail(ev, err)
	}

	dest, proceed, err := resolveDest(r.fs, r.cfg.Collision, keyDir, name)
	ev.Dest = dest
	if err != nil {
		return r.fail(ev, &FilesystemError{Op: "stat", Path: dest, Err: err})
	}
	if !proceed {
		ev.Action = ActionSkipped
		r.done(ev)
		return nil
	}

	if r.cfg.MoveFiles {
		if err := utils.MoveFile(r.fs, path, dest); err != nil {
			return r.fail(ev, &FilesystemError{Op: "move", Path: path, Err: err})
		}
		ev.Action = ActionMoved
	} else {
		if err := utils.CopyFile(r.fs, path, dest); err != nil {
			return r.fail(ev, &FilesystemError{Op: "copy", Path: path, Err: err})
		}
		ev.Action = ActionCopied
	}

	r.done(ev)
	return nil
}

func (r *run) ensureDir(dir string) error {
	if r.dirs[dir] {
		return nil
	}
	if err := r.fs.MkdirAll(dir, 0755); err != nil {
		return &FilesystemError{Op: "mkdir", Path: dir, Err: err}
	}
	r.dirs[dir] = true
	return nil
}

func (r *run) done(ev Event) {
	r.summary.record(ev.Action, ev.Key)
	r.log.Debug().
		Str("file", ev.File).
		Str("key", ev.Key).
		Str("action", string(ev.Action)).
		Str("dest", ev.Dest).
		Msg("file sorted")
	r.emit(ev)
}

// fail records a filesystem error for ev and returns it when the run
// has to stop
func (r *run) fail(ev Event, err error) error {
	ev.Action = ActionFailed
	ev.Err = err
	r.summary.record(ev.Action, ev.Key)
	r.log.Error().Str("file", ev.File).Err(err).Msg("filesystem error")
	r.emit(ev)

	if r.cfg.KeepGoing {
		return nil
	}
	return err
}

func (r *run) finish(err error) (*Summary, error) {
	r.summary.Duration = time.Since(r.started)
	r.summary.Aborted = err != nil

	ev := r.log.Info()
	if err != nil {
		ev = r.log.Warn().Err(err)
	}
	ev.Int("processed", r.summary.Processed()).
		Int("probe_failures", r.summary.ProbeFailures).
		Dur("duration", r.summary.Duration).
		Msg("sort finished")

	r.emit(Event{Kind: EventDone, Summary: r.summary, Err: err})
	return r.summary, err
}

func (r *run) emit(ev Event) {
	ev.Time = time.Now()
	r.obs.Handle(ev)
}
