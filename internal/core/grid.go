// Package core defines the shared grid, position, agent, task, and
// reservation-table primitives that every planner in internal/algo builds on.
package core

import "fmt"

// Position is an integer grid cell (x, y) with 0 <= x < Width, 0 <= y < Height.
type Position struct {
	X, Y int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// cardinal moves plus the wait action, in a fixed iteration order so that
// tie-broken search results are reproducible across runs.
var moves = [5]Position{
	{0, 0},  // wait
	{0, -1}, // north
	{1, 0},  // east
	{0, 1},  // south
	{-1, 0}, // west
}

// Moves returns the 4-connected neighbor offsets plus the wait action.
func Moves() [5]Position { return moves }

// Grid is a rectangular occupancy matrix indexed [y][x]; 0 is free, 1 is an
// obstacle. A Grid is immutable once constructed and safe to share across
// concurrent planning calls, which never mutate it.
type Grid struct {
	cells  [][]int
	width  int
	height int
}

// NewGrid validates and wraps a [y][x] occupancy matrix.
func NewGrid(cells [][]int) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(cells[0])
	for _, row := range cells {
		if len(row) != width {
			return nil, ErrNonRectangular
		}
	}
	return &Grid{cells: cells, width: width, height: len(cells)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid's extent.
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// IsFree reports whether p is in bounds and not an obstacle.
func (g *Grid) IsFree(p Position) bool {
	return g.InBounds(p) && g.cells[p.Y][p.X] == 0
}

// Manhattan returns the L1 distance between two positions, admissible and
// consistent as a heuristic under unit-cost 4-connected moves.
func Manhattan(a, b Position) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ValidateAgents checks that every agent's start and goal are in bounds and
// free, and that agent IDs are unique. It never repairs bad input; it only
// reports it, per the InvalidInput policy.
func ValidateAgents(g *Grid, agents []AgentSpec) error {
	seen := make(map[int]struct{}, len(agents))
	for _, a := range agents {
		if _, dup := seen[a.ID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateAgentID, a.ID)
		}
		seen[a.ID] = struct{}{}

		for _, p := range [2]Position{a.Start, a.Goal} {
			if !g.InBounds(p) {
				return fmt.Errorf("%w: agent %d at %s", ErrOutOfBounds, a.ID, p)
			}
			if !g.IsFree(p) {
				return fmt.Errorf("%w: agent %d at %s", ErrObstacle, a.ID, p)
			}
		}
	}
	return nil
}
