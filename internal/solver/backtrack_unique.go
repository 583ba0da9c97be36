package solver

import (
	"time"

	"svw.info/brainbreak/internal/domain"
	"svw.info/brainbreak/internal/ports"
)

// Unique counts completions of g up to 2 and reports whether exactly one
// exists. Carving does not preserve uniqueness, so this is informational:
// the CLI and API surface it, the generator never acts on it.
func (s *BacktrackingSolver) Unique(g domain.Grid) (bool, ports.Stats) {
	start := time.Now()
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		row, col, ok := findEmpty(&g)
		if !ok {
			count++
			return count >= 2 // stop early
		}
		for digit := uint8(1); digit <= 9; digit++ {
			nodes++
			if !IsPlacementLegal(&g, row, col, digit) {
				continue
			}
			g[row][col] = digit
			if dfs() {
				return true
			}
			g[row][col] = domain.Empty
		}
		return false
	}
	_ = dfs()
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}
