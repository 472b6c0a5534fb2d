// Package generator turns input strings into identicon files.
package generator

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/asteroid-belt/identicon/internal/hash"
	"github.com/asteroid-belt/identicon/internal/identicon"
	"github.com/asteroid-belt/identicon/internal/log"
	"github.com/asteroid-belt/identicon/internal/models"
	"github.com/asteroid-belt/identicon/internal/render"
	"github.com/asteroid-belt/identicon/internal/storage"
)

// Recorder keeps a history of generated identicons.
type Recorder interface {
	RecordGeneration(g models.Generation) error
}

// Result describes one written identicon.
type Result struct {
	Input  string
	Path   string
	Digest string
	Color  identicon.Color
	Filled int
}

// Service generates identicons and hands them to a storage.Writer.
type Service struct {
	writer   storage.Writer
	canvas   render.CanvasFactory
	recorder Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithCanvas overrides the canvas used for rasterizing.
func WithCanvas(f render.CanvasFactory) Option {
	return func(s *Service) { s.canvas = f }
}

// WithRecorder records every successful generation. Recording failures are
// logged and do not fail the generation.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// New creates a Service writing through w.
func New(w storage.Writer, opts ...Option) *Service {
	s := &Service{writer: w, canvas: render.NewPNGCanvas}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate builds the identicon for input and writes it as <input>.png.
// The image is fully encoded before anything is written. Write errors are
// returned unchanged.
func (s *Service) Generate(ctx context.Context, input string) (Result, error) {
	img := identicon.New(input)

	data, err := render.Rasterize(img, s.canvas)
	if err != nil {
		return Result{}, fmt.Errorf("rasterize %q: %w", input, err)
	}

	path, err := s.writer.Write(ctx, input, data)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Input:  input,
		Path:   path,
		Digest: hash.Sum(input).Hex(),
		Color:  img.Color,
		Filled: len(img.Grid),
	}
	log.Debugf("generated %s (%s, %d cells)", res.Path, res.Color.Hex(), res.Filled)

	s.record(res)
	return res, nil
}

func (s *Service) record(res Result) {
	if s.recorder == nil {
		return
	}
	err := s.recorder.RecordGeneration(models.Generation{
		Input:  res.Input,
		Digest: res.Digest,
		Color:  res.Color.Hex(),
		Filled: res.Filled,
		Path:   res.Path,
	})
	if err != nil {
		log.Warnf("record %s: %v", res.Path, err)
	}
}

// BatchOptions controls GenerateAll.
type BatchOptions struct {
	// Jobs is the maximum number of identicons generated at once. Values
	// below 1 mean 1.
	Jobs int

	// OnProgress is called after each identicon is written with the number
	// completed so far. It may be called from several goroutines.
	OnProgress func(done, total int, res Result)
}

// GenerateAll generates every input in parallel. Results are in input order.
// The first failure cancels the remaining work and is returned.
func (s *Service) GenerateAll(ctx context.Context, inputs []string, opts BatchOptions) ([]Result, error) {
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	results := make([]Result, len(inputs))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := s.Generate(ctx, input)
			if err != nil {
				return err
			}
			results[i] = res
			n := done.Add(1)
			if opts.OnProgress != nil {
				opts.OnProgress(int(n), len(inputs), res)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	log.Infof("generated %d identicons with %d jobs", len(inputs), jobs)
	return results, nil
}
