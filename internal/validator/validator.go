package validator

import "svw.info/brainbreak/internal/domain"

// FastValidator scans rows, columns, and boxes with digit bitmasks and
// reports the coordinates of duplicated cells. It complements the boolean
// win check by telling the UI which cells to highlight.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(g *domain.Grid) (bool, []domain.CellCoord) {
	conflicts := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		seen := 0
		for c := 0; c < 9; c++ {
			seen, conflicts = mark(g[r][c], r, c, seen, conflicts)
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		seen := 0
		for r := 0; r < 9; r++ {
			seen, conflicts = mark(g[r][c], r, c, seen, conflicts)
		}
	}
	// boxes
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			seen := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r, c := br+dr, bc+dc
					seen, conflicts = mark(g[r][c], r, c, seen, conflicts)
				}
			}
		}
	}
	return len(conflicts) == 0, conflicts
}

// mark records digit in the seen bitmask and appends a conflict when the
// digit was already present in the group.
func mark(digit uint8, r, c, seen int, conflicts []domain.CellCoord) (int, []domain.CellCoord) {
	if digit == domain.Empty {
		return seen, conflicts
	}
	bit := 1 << digit
	if seen&bit != 0 {
		conflicts = append(conflicts, domain.CellCoord{Row: r, Col: c})
	}
	return seen | bit, conflicts
}
