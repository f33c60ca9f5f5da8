// Package ioconvert implements the Converter interface. It reads the inputs
// of a plan from disk, runs the normalization steps and writes every output
// file of the plan.
package ioconvert

import (
	"context"
	"log/slog"
	"maps"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gncurie/internal/iosource"
	"github.com/gnames/gncurie/internal/iotable"
	"github.com/gnames/gncurie/internal/iotsv"
	"github.com/gnames/gncurie/pkg/config"
	"github.com/gnames/gncurie/pkg/lifecycle"
	"github.com/gnames/gncurie/pkg/plan"
	"github.com/gnames/gncurie/pkg/tabular"
	"github.com/gnames/gnfmt"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// Engine runs plans against files.
type Engine struct {
	cfg    *config.Config
	fs     afero.Fs
	reader *iotable.Reader
	loader *iosource.Loader
	writer *iotsv.Writer
}

// New creates an Engine. Outputs are written to fs, nil means the operating
// system file system. Inputs are always read from disk.
func New(cfg *config.Config, fs afero.Fs) *Engine {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Engine{
		cfg:    cfg,
		fs:     fs,
		reader: iotable.New(cfg.Convert.Strict),
		loader: iosource.New(cfg.Convert.Strict),
		writer: iotsv.New(fs),
	}
}

// Convert runs plan p. Inputs are loaded one after another, outputs are
// rendered and written concurrently from the same prepared table.
func (e *Engine) Convert(
	ctx context.Context,
	p plan.Plan,
	paths map[string]string,
) (*lifecycle.Report, error) {
	start := time.Now()

	if err := p.Validate(); err != nil {
		return nil, InvalidPlanError(err)
	}
	if err := e.checkPaths(p, paths); err != nil {
		return nil, err
	}

	slog.Info("Starting conversion", "converter", p.Name)
	res := &lifecycle.Report{
		Plan:    p.Name,
		Outputs: make(map[string]int),
	}

	tables := make([]*tabular.Table, len(p.Inputs))
	for i, in := range p.Inputs {
		if err := ctx.Err(); err != nil {
			return nil, CancelledError(err)
		}
		loaded, err := e.load(paths[in.Flag], in)
		if err != nil {
			return nil, err
		}
		tables[i] = loaded.Table
		res.Skipped += loaded.Skipped
		res.Replaced += loaded.Replaced
	}

	t, err := p.Prepare(tables)
	if err != nil {
		return nil, err
	}
	res.Rows = t.Len()
	slog.Info("Inputs normalized", "converter", p.Name, "rows", res.Rows)

	if err = e.writeOutputs(ctx, p, t, paths, res); err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	e.report(res)
	return res, nil
}

func (e *Engine) load(path string, in plan.Input) (*iotable.Result, error) {
	if in.Format.IsDelimited() {
		return e.reader.Read(path, in)
	}
	return e.loader.Load(path, in)
}

// checkPaths makes sure that every flag has a path, that no output
// overwrites an input or another output, and that every output can be
// created, so a run does not fail after part of its files are written.
func (e *Engine) checkPaths(p plan.Plan, paths map[string]string) error {
	for _, v := range p.Flags() {
		if paths[v] == "" {
			return MissingPathError(p.Name, v)
		}
	}
	seen := make(map[string]string)
	for _, v := range p.Inputs {
		seen[filepath.Clean(paths[v.Flag])] = v.Flag
	}
	for _, v := range p.Outputs {
		path := paths[v.Flag]
		if flag, ok := seen[filepath.Clean(path)]; ok {
			return DuplicatePathError(path, flag, v.Flag)
		}
		seen[filepath.Clean(path)] = v.Flag

		dir := filepath.Dir(path)
		ok, err := afero.DirExists(e.fs, dir)
		if err != nil {
			return OutputDirError(path, err)
		}
		if !ok {
			return OutputDirError(path, afero.ErrFileNotFound)
		}
	}
	return nil
}

func (e *Engine) writeOutputs(
	ctx context.Context,
	p plan.Plan,
	t *tabular.Table,
	paths map[string]string,
	res *lifecycle.Report,
) error {
	jobs := e.cfg.JobsNumber
	if jobs < 1 {
		jobs = 1
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for _, out := range p.Outputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return CancelledError(err)
			}
			rendered, err := out.Render(t)
			if err != nil {
				return err
			}
			path := paths[out.Flag]
			n, err := e.writer.Write(path, rendered, out.Header)
			if err != nil {
				return err
			}

			slog.Info("Output written", "flag", out.Flag, "path", path, "rows", n)
			mu.Lock()
			res.Outputs[out.Flag] = n
			mu.Unlock()
			return nil
		})
	}
	return g.Wait()
}

func (e *Engine) report(res *lifecycle.Report) {
	dur := gnfmt.TimeString(res.Duration.Seconds())
	slog.Info("Conversion complete",
		"converter", res.Plan,
		"rows", res.Rows,
		"skipped", res.Skipped,
		"replaced", res.Replaced,
		"duration", dur,
	)

	for _, v := range slices.Sorted(maps.Keys(res.Outputs)) {
		gn.Message("<em>%s</em>: %s rows", v, humanize.Comma(int64(res.Outputs[v])))
	}
	if res.Skipped > 0 {
		gn.Warn("Skipped %s malformed rows", humanize.Comma(int64(res.Skipped)))
	}
	if res.Replaced > 0 {
		slog.Debug("Repaired invalid UTF-8", "rows", res.Replaced)
	}
	gn.Info("Converted <em>%s</em> in %s", res.Plan, dur)
}
