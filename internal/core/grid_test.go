package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openGrid(n int) *Grid {
	cells := make([][]int, n)
	for y := range cells {
		cells[y] = make([]int, n)
	}
	g, err := NewGrid(cells)
	if err != nil {
		panic(err)
	}
	return g
}

func TestNewGrid_RejectsEmpty(t *testing.T) {
	_, err := NewGrid(nil)
	assert.ErrorIs(t, err, ErrEmptyGrid)

	_, err = NewGrid([][]int{{}})
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestNewGrid_RejectsNonRectangular(t *testing.T) {
	_, err := NewGrid([][]int{{0, 0}, {0}})
	assert.ErrorIs(t, err, ErrNonRectangular)
}

func TestGrid_InBoundsAndFree(t *testing.T) {
	g, err := NewGrid([][]int{
		{0, 0, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)

	assert.True(t, g.InBounds(Position{0, 0}))
	assert.False(t, g.InBounds(Position{3, 0}))
	assert.False(t, g.InBounds(Position{0, -1}))

	assert.True(t, g.IsFree(Position{0, 0}))
	assert.False(t, g.IsFree(Position{2, 0})) // obstacle
	assert.False(t, g.IsFree(Position{5, 5})) // out of bounds
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 4, Manhattan(Position{0, 0}, Position{2, 2}))
	assert.Equal(t, 0, Manhattan(Position{1, 1}, Position{1, 1}))
}

func TestValidateAgents(t *testing.T) {
	g := openGrid(3)

	err := ValidateAgents(g, []AgentSpec{
		{ID: 0, Start: Position{0, 0}, Goal: Position{2, 2}},
	})
	assert.NoError(t, err)

	err = ValidateAgents(g, []AgentSpec{
		{ID: 0, Start: Position{0, 0}, Goal: Position{2, 2}},
		{ID: 0, Start: Position{1, 0}, Goal: Position{1, 2}},
	})
	assert.ErrorIs(t, err, ErrDuplicateAgentID)

	err = ValidateAgents(g, []AgentSpec{
		{ID: 0, Start: Position{5, 5}, Goal: Position{2, 2}},
	})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	blocked, err := NewGrid([][]int{{0, 1}, {0, 0}})
	require.NoError(t, err)
	err = ValidateAgents(blocked, []AgentSpec{
		{ID: 0, Start: Position{1, 0}, Goal: Position{0, 0}},
	})
	assert.ErrorIs(t, err, ErrObstacle)
}
