package ports

import (
	"context"
	"time"

	"svw.info/brainbreak/internal/domain"
)

// Stats captures search effort for a solve or generate call.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes grids and answers legality queries. The engine is
// synchronous: calls run to completion on the calling goroutine with no
// cancellation primitive, so no context is threaded through.
type Solver interface {
	// Solve returns a completion of g, or an error when none exists.
	// The input grid is never mutated.
	Solve(g domain.Grid) (domain.Grid, Stats, error)
	// Unique reports whether g has exactly one completion. Diagnostic
	// only; generation does not enforce uniqueness.
	Unique(g domain.Grid) (bool, Stats)
}

// Generator creates puzzle instances at a target difficulty. A given seed
// reproduces the same instance.
type Generator interface {
	Generate(seed int64, difficulty domain.Difficulty) (*domain.PuzzleInstance, Stats)
}

// Validator performs fast duplicate scans and reports conflict locations
// for UI highlighting.
type Validator interface {
	Validate(g *domain.Grid) (ok bool, conflicts []domain.CellCoord)
}

// Hinter suggests the next forced placement, if one exists.
type Hinter interface {
	Hint(g *domain.Grid) (domain.Placement, bool)
}

// Storage archives generated puzzle instances. Only generator output is
// persisted; in-progress player grids never are.
type Storage interface {
	Save(ctx context.Context, p *domain.PuzzleInstance) error
	Load(ctx context.Context, id string) (*domain.PuzzleInstance, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
	Close() error
}
