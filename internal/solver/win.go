package solver

import "svw.info/brainbreak/internal/domain"

// CheckWin reports whether g is a completed, fully legal grid: every cell
// holds a digit and every digit passes IsPlacementLegal against the rest of
// the grid. Because legality excludes the cell's own value, filled cells are
// re-validated without mutating the grid. Roughly 20 peer comparisons per
// cell, cheap enough to run after every player move.
func CheckWin(g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			digit := g[r][c]
			if digit == domain.Empty {
				return false
			}
			if !IsPlacementLegal(g, r, c, digit) {
				return false
			}
		}
	}
	return true
}
