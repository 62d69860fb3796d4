package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/afero"

	"github.com/heartmarshall/tokipona-words/internal/config"
	"github.com/heartmarshall/tokipona-words/internal/domain"
	"github.com/heartmarshall/tokipona-words/pkg/ctxutil"
)

// Stats summarizes one transformer run.
type Stats struct {
	Rows        int
	Words       int
	Definitions int
	Written     bool
	Duration    time.Duration
}

// Transformer reads the CSV source, groups it by word and writes the JSON
// destination. All file access goes through fs.
type Transformer struct {
	log *slog.Logger
	fs  afero.Fs
	cfg config.CatalogConfig
}

// NewTransformer creates a new Transformer.
func NewTransformer(log *slog.Logger, fs afero.Fs, cfg config.CatalogConfig) *Transformer {
	return &Transformer{
		log: log,
		fs:  fs,
		cfg: cfg,
	}
}

// Run performs one full conversion. The first error aborts the run and the
// destination is left untouched. ctx is checked between stages only.
func (t *Transformer) Run(ctx context.Context) (Stats, error) {
	start := time.Now()
	log := t.log
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		log = log.With(slog.String("run_id", id.String()))
	}

	rows, err := t.readSource()
	if err != nil {
		return Stats{}, err
	}
	log.Debug("source read", slog.String("path", t.cfg.SourcePath), slog.Int("rows", len(rows)))

	if err := ctx.Err(); err != nil {
		return Stats{}, fmt.Errorf("build catalog: %w", err)
	}

	c := fold(rows)
	stats := Stats{
		Rows:        len(rows),
		Words:       c.Len(),
		Definitions: c.DefinitionCount(),
	}

	if t.cfg.DryRun {
		stats.Duration = time.Since(start)
		log.Info("dry run, destination not written",
			slog.String("destination", t.cfg.DestinationPath),
			slog.Int("rows", stats.Rows),
			slog.Int("words", stats.Words),
		)
		return stats, nil
	}

	if err := ctx.Err(); err != nil {
		return Stats{}, fmt.Errorf("write catalog: %w", err)
	}

	if err := WriteFile(t.fs, t.cfg.DestinationPath, c.Entries(), t.cfg.Indent); err != nil {
		return Stats{}, fmt.Errorf("write %s: %w", t.cfg.DestinationPath, err)
	}
	stats.Written = true
	stats.Duration = time.Since(start)

	log.Info("catalog written",
		slog.String("source", t.cfg.SourcePath),
		slog.String("destination", t.cfg.DestinationPath),
		slog.Int("rows", stats.Rows),
		slog.Int("words", stats.Words),
		slog.Int("definitions", stats.Definitions),
		slog.Duration("duration", stats.Duration),
	)
	return stats, nil
}

func (t *Transformer) readSource() ([]domain.Row, error) {
	f, err := t.fs.Open(t.cfg.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", domain.ErrSourceNotFound, t.cfg.SourcePath, err)
	}
	defer f.Close()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", t.cfg.SourcePath, err)
	}
	return rows, nil
}
