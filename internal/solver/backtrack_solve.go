package solver

import (
	"errors"
	"time"

	"svw.info/brainbreak/internal/domain"
	"svw.info/brainbreak/internal/ports"
)

// ErrUnsolvable is returned when a grid admits no completion.
var ErrUnsolvable = errors.New("grid has no completion")

// BacktrackingSolver wraps the in-place search with node and duration
// accounting for the service layer. It works on a copy, so callers keep
// their grid untouched either way.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	if !solve(&g, &nodes, 0) {
		return domain.Grid{}, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ErrUnsolvable
	}
	return g, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
