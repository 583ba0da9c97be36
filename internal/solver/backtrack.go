package solver

import (
	"fmt"

	"svw.info/brainbreak/internal/domain"
)

// maxDepth bounds the recursion; one decision per cell.
const maxDepth = 81

// IsPlacementLegal reports whether digit may occupy (row, col) given the
// current grid state. It is false iff the digit already appears in the other
// eight cells of the row, the column, or the containing 3x3 box. The cell's
// own current value never counts as a conflict, so a filled cell can be
// re-validated against its own digit without clearing it first.
//
// The function has no side effects and is the single source of truth for
// legality, shared by the solver, the generator, and live input validation.
// Out-of-range arguments are a programmer error and panic.
func IsPlacementLegal(g *domain.Grid, row, col int, digit uint8) bool {
	mustCell(row, col)
	mustDigit(digit)
	for i := 0; i < 9; i++ {
		if i != col && g[row][i] == digit {
			return false
		}
		if i != row && g[i][col] == digit {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if (r != row || c != col) && g[r][c] == digit {
				return false
			}
		}
	}
	return true
}

// Solve completes g in place by recursive backtracking and reports success.
// Empty cells are visited in row-major order and digits tried 1-9 ascending,
// so solving an identical grid twice yields the identical completion. On a
// false return g is restored exactly to its state at the call.
func Solve(g *domain.Grid) bool {
	nodes := 0
	return solve(g, &nodes, 0)
}

func solve(g *domain.Grid, nodes *int, depth int) bool {
	if depth > maxDepth {
		return false
	}
	row, col, ok := findEmpty(g)
	if !ok {
		return true
	}
	for digit := uint8(1); digit <= 9; digit++ {
		*nodes++
		if !IsPlacementLegal(g, row, col, digit) {
			continue
		}
		g[row][col] = digit
		if solve(g, nodes, depth+1) {
			return true
		}
		g[row][col] = domain.Empty
	}
	return false
}

// findEmpty returns the first empty cell in row-major order.
func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == domain.Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func mustCell(row, col int) {
	if row < 0 || row > 8 || col < 0 || col > 8 {
		panic(fmt.Sprintf("solver: cell (%d,%d) out of range", row, col))
	}
}

func mustDigit(digit uint8) {
	if digit < 1 || digit > 9 {
		panic(fmt.Sprintf("solver: digit %d out of range", digit))
	}
}
