package usecase

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/brainbreak/internal/domain"
	"svw.info/brainbreak/internal/generator"
	"svw.info/brainbreak/internal/hint"
	"svw.info/brainbreak/internal/infrastructure/storage"
	"svw.info/brainbreak/internal/observability"
	"svw.info/brainbreak/internal/solver"
	"svw.info/brainbreak/internal/validator"
)

func newTestService(t *testing.T) (*Service, *observability.Metrics) {
	t.Helper()
	st, err := storage.NewInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	metrics := observability.NewMetrics(prometheus.NewRegistry())
	s := solver.NewBacktrackingSolver()
	return NewService(s, generator.NewDiagonalGenerator(s), validator.New(), hint.NewSingles(), st, metrics), metrics
}

func TestNewPuzzleStampsAndArchives(t *testing.T) {
	uc, metrics := newTestService(t)
	ctx := context.Background()

	p, st, err := uc.NewPuzzle(ctx, 42, domain.Easy)
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 51, p.Clues())
	assert.Positive(t, st.Nodes)

	loaded, err := uc.Load(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Solution, loaded.Solution)

	metas, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, p.ID, metas[0].ID)

	got := testutil.ToFloat64(metrics.PuzzlesGenerated.WithLabelValues("easy"))
	assert.Equal(t, 1.0, got)
}

func TestCheckPlacementAndWin(t *testing.T) {
	uc, metrics := newTestService(t)

	p, _, err := uc.NewPuzzle(context.Background(), 7, domain.Medium)
	require.NoError(t, err)

	// the answer key wins, and every clue re-validates against itself
	g := p.Solution
	assert.True(t, uc.CheckWin(&g))
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			assert.True(t, uc.CheckPlacement(&g, domain.Placement{Row: r, Col: c, Digit: g[r][c]}))
		}
	}

	// the carved puzzle does not win yet
	g = p.Puzzle
	assert.False(t, uc.CheckWin(&g))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WinChecks.WithLabelValues("won")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WinChecks.WithLabelValues("not_won")))
}

func TestSolveDelegation(t *testing.T) {
	uc, _ := newTestService(t)

	p, _, err := uc.NewPuzzle(context.Background(), 9, domain.Hard)
	require.NoError(t, err)

	out, _, err := uc.Solve(p.Puzzle)
	require.NoError(t, err)
	assert.True(t, uc.CheckWin(&out))
}

func TestUnconfiguredDependencies(t *testing.T) {
	uc := &Service{}

	_, _, err := uc.NewPuzzle(context.Background(), 1, domain.Easy)
	assert.ErrorIs(t, err, errNotConfigured)

	_, _, err = uc.Solve(domain.Grid{})
	assert.ErrorIs(t, err, errNotConfigured)

	_, err = uc.List(context.Background())
	assert.ErrorIs(t, err, errNotConfigured)
}
