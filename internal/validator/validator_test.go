package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"svw.info/brainbreak/internal/domain"
)

var solved = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestValidateCleanGrids(t *testing.T) {
	v := New()

	ok, conflicts := v.Validate(&solved)
	assert.True(t, ok)
	assert.Empty(t, conflicts)

	var empty domain.Grid
	ok, conflicts = v.Validate(&empty)
	assert.True(t, ok, "empty cells are not conflicts")
	assert.Empty(t, conflicts)
}

func TestValidateFlagsDuplicates(t *testing.T) {
	v := New()

	g := solved
	g[0][1] = g[0][0] // duplicate 5 in row 0 and box 0

	ok, conflicts := v.Validate(&g)
	assert.False(t, ok)
	assert.Contains(t, conflicts, domain.CellCoord{Row: 0, Col: 1})
}

func TestValidateFlagsColumnDuplicate(t *testing.T) {
	v := New()

	var g domain.Grid
	g[0][0] = 7
	g[8][0] = 7

	ok, conflicts := v.Validate(&g)
	assert.False(t, ok)
	assert.Equal(t, []domain.CellCoord{{Row: 8, Col: 0}}, conflicts)
}
