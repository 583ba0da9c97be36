package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/brainbreak/internal/domain"
	"svw.info/brainbreak/internal/generator"
	"svw.info/brainbreak/internal/solver"
)

func newGenCmd() *cobra.Command {
	var (
		difficulty   string
		seed         int64
		count        int
		showSolution bool
		checkUnique  bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate puzzles and print them to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := domain.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			s := solver.NewBacktrackingSolver()
			g := generator.NewDiagonalGenerator(s)
			out := cmd.OutOrStdout()

			for i := 0; i < count; i++ {
				p, st := g.Generate(seed+int64(i), diff)
				fmt.Fprintf(out, "# %s seed=%d clues=%d nodes=%d dur=%s\n",
					p.Difficulty, p.Seed, p.Clues(), st.Nodes, st.Duration.Round(time.Microsecond))
				if checkUnique {
					unique, _ := s.Unique(p.Puzzle)
					fmt.Fprintf(out, "# unique=%t\n", unique)
				}
				fmt.Fprintln(out, FormatGrid(&p.Puzzle))
				if showSolution {
					fmt.Fprintln(out, "# solution")
					fmt.Fprintln(out, FormatGrid(&p.Solution))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "medium", "easy|medium|hard")
	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed (0 picks one from the clock)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of puzzles")
	cmd.Flags().BoolVar(&showSolution, "solution", false, "also print the answer key")
	cmd.Flags().BoolVar(&checkUnique, "check-unique", false, "report whether each puzzle's solution is unique")

	return cmd
}

// FormatGrid renders a grid with box separators, dots for empty cells.
func FormatGrid(g *domain.Grid) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 {
				b.WriteByte(' ')
				if c%3 == 0 {
					b.WriteString("| ")
				}
			}
			if g[r][c] == domain.Empty {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + g[r][c])
			}
		}
		if r < 8 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
