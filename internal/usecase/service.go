package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"svw.info/brainbreak/internal/domain"
	"svw.info/brainbreak/internal/observability"
	"svw.info/brainbreak/internal/ports"
	"svw.info/brainbreak/internal/solver"
)

// Service fronts the engine for the transport layer: it delegates to the
// wired ports, stamps IDs on generated puzzles, archives them, and records
// metrics. Engine calls themselves are synchronous; the context only covers
// storage access.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Storage   ports.Storage
	Metrics   *observability.Metrics
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage, m *observability.Metrics) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Storage: st, Metrics: m}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// NewPuzzle generates, stamps, archives, and returns a puzzle instance.
func (u *Service) NewPuzzle(ctx context.Context, seed int64, d domain.Difficulty) (*domain.PuzzleInstance, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, st := u.Generator.Generate(seed, d)
	p.ID = uuid.NewString()
	if u.Metrics != nil {
		u.Metrics.PuzzlesGenerated.WithLabelValues(d.String()).Inc()
		u.Metrics.GenerateSeconds.Observe(st.Duration.Seconds())
	}
	if u.Storage != nil {
		if err := u.Storage.Save(ctx, p); err != nil {
			return nil, st, fmt.Errorf("archiving puzzle: %w", err)
		}
	}
	return p, st, nil
}

// CheckPlacement answers whether the placement is legal on the grid.
// Range validation happens at the transport edge; by the time this runs the
// placement is well-formed.
func (u *Service) CheckPlacement(g *domain.Grid, pl domain.Placement) bool {
	return solver.IsPlacementLegal(g, pl.Row, pl.Col, pl.Digit)
}

// CheckWin reports whether the grid is complete and fully legal.
func (u *Service) CheckWin(g *domain.Grid) bool {
	won := solver.CheckWin(g)
	if u.Metrics != nil {
		outcome := "not_won"
		if won {
			outcome = "won"
		}
		u.Metrics.WinChecks.WithLabelValues(outcome).Inc()
	}
	return won
}

// Solve returns a completion of the grid, or an error when none exists.
func (u *Service) Solve(g domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	out, st, err := u.Solver.Solve(g)
	if u.Metrics != nil {
		u.Metrics.SolveSeconds.Observe(st.Duration.Seconds())
		u.Metrics.SolveNodes.Observe(float64(st.Nodes))
	}
	return out, st, err
}

// Unique reports whether the grid has exactly one completion.
func (u *Service) Unique(g domain.Grid) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	unique, st := u.Solver.Unique(g)
	return unique, st, nil
}

// Validate lists duplicate-digit conflicts for UI highlighting.
func (u *Service) Validate(g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	ok, conflicts := u.Validator.Validate(g)
	return ok, conflicts, nil
}

// Hint suggests the next forced placement, if any.
func (u *Service) Hint(g *domain.Grid) (domain.Placement, bool, error) {
	if u.Hinter == nil {
		return domain.Placement{}, false, errNotConfigured
	}
	pl, ok := u.Hinter.Hint(g)
	return pl, ok, nil
}

// Load fetches an archived puzzle by ID.
func (u *Service) Load(ctx context.Context, id string) (*domain.PuzzleInstance, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

// List returns metadata for every archived puzzle.
func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
