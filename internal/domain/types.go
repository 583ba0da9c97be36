package domain

// Grid is a 9x9 board in row-major order. A cell holds a digit 1-9 or
// Empty (0). Rows, columns, and the nine 3x3 boxes are the constraint groups.
type Grid [9][9]uint8

// Empty marks a cell with no digit.
const Empty uint8 = 0

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Placement is a candidate fill of a single cell, checked against the
// current grid state rather than the answer key.
type Placement struct {
	Row   int   `json:"row"`
	Col   int   `json:"col"`
	Digit uint8 `json:"digit"`
}

// PuzzleInstance pairs an answer key with the puzzle carved from it.
// Solution never changes after generation; Puzzle is the working copy
// handed to the player, and every clue in it matches Solution.
type PuzzleInstance struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Solution   Grid       `json:"solution"`
	Puzzle     Grid       `json:"puzzle"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry for the archive.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Difficulty Difficulty `json:"difficulty"`
	Seed       int64      `json:"seed,omitempty"`
	CreatedAt  int64      `json:"createdAt"`
}

// Clues counts the non-empty cells of the puzzle grid.
func (p *PuzzleInstance) Clues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if p.Puzzle[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// Meta returns the listing entry for this instance.
func (p *PuzzleInstance) Meta() PuzzleMeta {
	return PuzzleMeta{ID: p.ID, Difficulty: p.Difficulty, Seed: p.Seed, CreatedAt: p.CreatedAt}
}
