package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

const (
	phaseCategories = "categories"
	phaseProducts   = "products"
)

// allPhases defines the canonical execution order. Categories must exist
// before any product referencing them is written.
var allPhases = []string{phaseCategories, phaseProducts}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Written   int
	Unchanged int
	Skipped   int
	Duration  time.Duration
	Err       error
}

// Pipeline validates a seed set and applies it in a single transaction.
type Pipeline struct {
	log        *slog.Logger
	categories CategoryBulkRepo
	products   ProductBulkRepo
	txm        TxManager
	cfg        Config
	results    map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, categories CategoryBulkRepo, products ProductBulkRepo, txm TxManager, cfg Config) *Pipeline {
	return &Pipeline{
		log:        log.With("component", "seeder"),
		categories: categories,
		products:   products,
		txm:        txm,
		cfg:        cfg,
		results:    make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run validates d and writes it. A *ConfigurationError means the seed set
// itself is broken and nothing was written. Re-running with the same set
// writes nothing and succeeds.
func (p *Pipeline) Run(ctx context.Context, d Descriptors) error {
	if err := Validate(d); err != nil {
		return err
	}

	if p.cfg.DryRun {
		p.results[phaseCategories] = PhaseResult{Skipped: len(d.Categories)}
		p.results[phaseProducts] = PhaseResult{Skipped: len(d.Products)}
		p.log.InfoContext(ctx, "dry run: seed set is valid",
			slog.Int("categories", len(d.Categories)),
			slog.Int("products", len(d.Products)),
		)
		return nil
	}

	err := p.txm.RunInTx(ctx, func(ctx context.Context) error {
		for _, phase := range allPhases {
			start := time.Now()
			p.log.InfoContext(ctx, "starting phase", slog.String("phase", phase))

			var result PhaseResult
			switch phase {
			case phaseCategories:
				result = p.runCategories(ctx, d.Categories)
			case phaseProducts:
				result = p.runProducts(ctx, d.Products)
			}
			result.Duration = time.Since(start)
			p.results[phase] = result

			if result.Err != nil {
				p.log.ErrorContext(ctx, "phase failed",
					slog.String("phase", phase),
					slog.String("error", result.Err.Error()),
					slog.Duration("duration", result.Duration),
				)
				return fmt.Errorf("seed %s: %w", phase, result.Err)
			}

			p.log.InfoContext(ctx, "phase completed",
				slog.String("phase", phase),
				slog.Int("written", result.Written),
				slog.Int("unchanged", result.Unchanged),
				slog.Duration("duration", result.Duration),
			)
		}
		return nil
	})
	if err != nil {
		return err
	}

	p.log.InfoContext(ctx, "seed completed", slog.Int("phases_run", len(allPhases)))
	return nil
}

func (p *Pipeline) runCategories(ctx context.Context, in []CategoryDescriptor) PhaseResult {
	written, err := batchProcess(toDomainCategories(in), p.cfg.BatchSize, func(batch []domain.Category) (int, error) {
		return p.categories.Upsert(ctx, batch)
	})
	if err != nil {
		return PhaseResult{Written: written, Err: err}
	}
	return PhaseResult{Written: written, Unchanged: len(in) - written}
}

func (p *Pipeline) runProducts(ctx context.Context, in []ProductDescriptor) PhaseResult {
	written, err := batchProcess(toDomainProducts(in), p.cfg.BatchSize, func(batch []domain.Product) (int, error) {
		return p.products.Upsert(ctx, batch)
	})
	if err != nil {
		return PhaseResult{Written: written, Err: err}
	}
	return PhaseResult{Written: written, Unchanged: len(in) - written}
}

func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
