package algo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elektrokombinacija/mapf-core/internal/core"
)

func TestFindFirstConflict_NoConflict(t *testing.T) {
	paths := map[int]core.Path{
		0: {{0, 0}, {1, 0}, {2, 0}},
		1: {{0, 5}, {1, 5}, {2, 5}},
	}
	assert.Nil(t, FindFirstConflict(paths))
}

func TestFindFirstConflict_VertexConflict(t *testing.T) {
	paths := map[int]core.Path{
		0: {{0, 0}, {1, 0}, {2, 0}},
		1: {{5, 5}, {1, 0}, {6, 6}},
	}
	c := FindFirstConflict(paths)
	require.NotNil(t, c)
	assert.Equal(t, VertexConflict, c.Kind)
	assert.Equal(t, 1, c.T)
	assert.Equal(t, core.Position{1, 0}, c.Pos)
	assert.Equal(t, 0, c.A1)
	assert.Equal(t, 1, c.A2)
}

func TestFindFirstConflict_EdgeSwap(t *testing.T) {
	paths := map[int]core.Path{
		0: {{0, 0}, {1, 0}},
		1: {{1, 0}, {0, 0}},
	}
	c := FindFirstConflict(paths)
	require.NotNil(t, c)
	assert.Equal(t, EdgeConflict, c.Kind)
	assert.Equal(t, 1, c.T)
	assert.Equal(t, core.Position{0, 0}, c.U)
	assert.Equal(t, core.Position{1, 0}, c.V)
}

func TestFindFirstConflict_VertexBeatsEdgeAtSameTime(t *testing.T) {
	// Two agents share a cell at t=1; a second pair swaps at t=1 too. The
	// vertex conflict must win since it is checked first at each t.
	paths := map[int]core.Path{
		0: {{0, 0}, {1, 0}},
		1: {{2, 2}, {1, 0}},
		2: {{3, 0}, {4, 0}},
		3: {{4, 0}, {3, 0}},
	}
	c := FindFirstConflict(paths)
	require.NotNil(t, c)
	assert.Equal(t, VertexConflict, c.Kind)
}

func TestFindFirstConflict_ShorterPathHoldsAtGoal(t *testing.T) {
	paths := map[int]core.Path{
		0: {{0, 0}},
		1: {{1, 0}, {0, 0}},
	}
	c := FindFirstConflict(paths)
	require.NotNil(t, c)
	assert.Equal(t, VertexConflict, c.Kind)
	assert.Equal(t, 1, c.T)
}
