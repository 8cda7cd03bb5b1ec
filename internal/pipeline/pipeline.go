// Package pipeline orchestrates the per-file extract-transform-load loop.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/marine-obs-etl/internal/domain"
	"github.com/couchcryptid/marine-obs-etl/internal/observability"
)

// Extractor parses one source file into a column table.
type Extractor interface {
	Extract(ctx context.Context, path string) (domain.ColumnTable, error)
}

// Transformer converts a parsed table into a fully annotated dataset.
type Transformer interface {
	Transform(ctx context.Context, table domain.ColumnTable, outPath string) (*domain.Dataset, error)
}

// Loader persists a dataset to the given artifact path.
type Loader interface {
	Load(ctx context.Context, ds *domain.Dataset, path string) error
}

// Pipeline converts a fixed list of input files sequentially, one artifact
// per input. Files are independent: no state crosses from one conversion to
// the next, and a per-file failure never corrupts another file's output.
type Pipeline struct {
	extractor       Extractor
	transformer     Transformer
	loader          Loader
	logger          *slog.Logger
	metrics         *observability.Metrics
	inputs          []string
	outputDir       string
	continueOnError bool
	ready           atomic.Bool
}

// New creates a Pipeline over the given inputs. continueOnError selects the
// batch boundary policy: true logs a failed file and moves on, false stops
// the batch at the first failure.
func New(e Extractor, t Transformer, l Loader, logger *slog.Logger, metrics *observability.Metrics,
	inputs []string, outputDir string, continueOnError bool) *Pipeline {
	return &Pipeline{
		extractor:       e,
		transformer:     t,
		loader:          l,
		logger:          logger,
		metrics:         metrics,
		inputs:          inputs,
		outputDir:       outputDir,
		continueOnError: continueOnError,
	}
}

// CheckReadiness returns nil once at least one file has been converted.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no file converted yet")
	}
	return nil
}

// Run converts every input file in list order. It returns the first
// conversion error when the batch policy is abort-on-failure, or an error
// summarizing the failure count otherwise. Context cancellation stops the
// batch between files; an in-flight conversion runs to completion.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("conversion started", "files", len(p.inputs), "output_dir", p.outputDir)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	failed := 0
	for _, input := range p.inputs {
		if err := ctx.Err(); err != nil {
			p.logger.Info("conversion stopping", "reason", err)
			return err
		}

		if err := p.convertFile(ctx, input); err != nil {
			p.metrics.FileFailures.Inc()
			if !p.continueOnError {
				return fmt.Errorf("convert %s: %w", input, err)
			}
			p.logger.Error("file conversion failed, continuing", "path", input, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to convert", failed, len(p.inputs))
	}
	p.logger.Info("conversion finished", "files", len(p.inputs))
	return nil
}

// convertFile runs one extract-transform-load cycle.
func (p *Pipeline) convertFile(ctx context.Context, input string) error {
	start := time.Now()
	outPath := filepath.Join(p.outputDir, ArtifactName(input))

	table, err := p.extractor.Extract(ctx, input)
	if err != nil {
		var fe *domain.FormatError
		if errors.As(err, &fe) {
			p.metrics.FormatErrors.Inc()
		}
		return err
	}
	p.metrics.RowsParsed.Add(float64(table.Rows))

	ds, err := p.transformer.Transform(ctx, table, outPath)
	if err != nil {
		return err
	}

	if err := p.loader.Load(ctx, ds, outPath); err != nil {
		return err
	}

	p.metrics.FilesConverted.Inc()
	p.metrics.ConvertDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	p.logger.Info("converted file", "input", input, "output", outPath, "rows", table.Rows)
	return nil
}

// ArtifactName derives the output artifact name from an input path:
// the base name with its extension replaced by ".nc".
func ArtifactName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".nc"
}

// Title derives the dataset title from an input path: the base name with
// the extension stripped.
func Title(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
