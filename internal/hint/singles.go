package hint

import (
	"svw.info/brainbreak/internal/domain"
	"svw.info/brainbreak/internal/solver"
)

// Singles suggests naked singles: empty cells where exactly one digit is
// legal against the current grid state.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single in row-major order.
func (h *Singles) Hint(g *domain.Grid) (domain.Placement, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != domain.Empty {
				continue
			}
			if digit, ok := soleCandidate(g, r, c); ok {
				return domain.Placement{Row: r, Col: c, Digit: digit}, true
			}
		}
	}
	return domain.Placement{}, false
}

func soleCandidate(g *domain.Grid, r, c int) (uint8, bool) {
	var last uint8
	count := 0
	for digit := uint8(1); digit <= 9; digit++ {
		if solver.IsPlacementLegal(g, r, c, digit) {
			count++
			last = digit
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}
