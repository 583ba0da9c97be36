package generator

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/brainbreak/internal/domain"
	"svw.info/brainbreak/internal/solver"
)

// assertPermutation checks that the 9 digits seen form exactly 1-9.
func assertPermutation(t *testing.T, seen [10]int, what string) {
	t.Helper()
	for d := 1; d <= 9; d++ {
		assert.Equal(t, 1, seen[d], "%s: digit %d appears %d times", what, d, seen[d])
	}
}

func assertValidSolution(t *testing.T, g *domain.Grid) {
	t.Helper()
	for r := 0; r < 9; r++ {
		var seen [10]int
		for c := 0; c < 9; c++ {
			seen[g[r][c]]++
		}
		assertPermutation(t, seen, "row")
	}
	for c := 0; c < 9; c++ {
		var seen [10]int
		for r := 0; r < 9; r++ {
			seen[g[r][c]]++
		}
		assertPermutation(t, seen, "column")
	}
	for br := 0; br < 9; br += 3 {
		for bc := 0; bc < 9; bc += 3 {
			var seen [10]int
			for r := br; r < br+3; r++ {
				for c := bc; c < bc+3; c++ {
					seen[g[r][c]]++
				}
			}
			assertPermutation(t, seen, "box")
		}
	}
}

func TestGenerateAllDifficulties(t *testing.T) {
	g := NewDiagonalGenerator(solver.NewBacktrackingSolver())

	cases := []struct {
		name  string
		diff  domain.Difficulty
		clues int
	}{
		{"easy", domain.Easy, 51},
		{"medium", domain.Medium, 36},
		{"hard", domain.Hard, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, st := g.Generate(42, tc.diff)
			require.NotNil(t, p)
			assert.Positive(t, st.Nodes)

			assertValidSolution(t, &p.Solution)
			assert.True(t, solver.CheckWin(&p.Solution))

			assert.Equal(t, tc.clues, p.Clues())

			// every clue matches the answer key; carving only removes
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if p.Puzzle[r][c] != domain.Empty {
						assert.Equal(t, p.Solution[r][c], p.Puzzle[r][c], "clue (%d,%d) diverges from the answer key", r, c)
					}
				}
			}
		})
	}
}

func TestGenerateIsReproducibleBySeed(t *testing.T) {
	g := NewDiagonalGenerator(solver.NewBacktrackingSolver())

	a, _ := g.Generate(7, domain.Medium)
	b, _ := g.Generate(7, domain.Medium)
	assert.Equal(t, a.Solution, b.Solution)
	assert.Equal(t, a.Puzzle, b.Puzzle)

	c, _ := g.Generate(8, domain.Medium)
	assert.NotEqual(t, a.Solution, c.Solution)
}

func TestSeededDiagonalAlwaysSolves(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		var g domain.Grid
		seedDiagonalBoxes(rng, &g)

		// the three diagonal boxes each hold a permutation of 1-9
		for _, anchor := range []int{0, 3, 6} {
			var seen [10]int
			for r := anchor; r < anchor+3; r++ {
				for c := anchor; c < anchor+3; c++ {
					seen[g[r][c]]++
				}
			}
			assertPermutation(t, seen, "diagonal box")
		}

		require.True(t, solver.Solve(&g), "seed %d", seed)
		for r := 0; r < 9; r++ {
			for c := 0; c < 9; c++ {
				assert.NotEqual(t, domain.Empty, g[r][c])
			}
		}
	}
}

func TestCarveBudget(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var g domain.Grid
	seedDiagonalBoxes(rng, &g)
	require.True(t, solver.Solve(&g))

	carve(rng, &g, 56)

	filled := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] != domain.Empty {
				filled++
			}
		}
	}
	assert.Equal(t, 25, filled)
}
