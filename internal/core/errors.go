package core

import "errors"

// Sentinel errors surfaced to callers. Per design, the "budget" family
// (no path for an agent, CBS time/node exhaustion) never reaches this layer
// as an error — those resolve into a valid, if degraded, plan instead.
var (
	// ErrEmptyGrid indicates the grid has zero rows or zero columns.
	ErrEmptyGrid = errors.New("mapf: grid must have at least one row and one column")
	// ErrNonRectangular indicates grid rows of differing lengths.
	ErrNonRectangular = errors.New("mapf: all grid rows must have the same length")
	// ErrOutOfBounds indicates a position outside the grid's bounds.
	ErrOutOfBounds = errors.New("mapf: position out of bounds")
	// ErrObstacle indicates a position that sits on a blocked cell.
	ErrObstacle = errors.New("mapf: position is on an obstacle")
	// ErrDuplicateAgentID indicates two agents share an ID within one plan.
	ErrDuplicateAgentID = errors.New("mapf: duplicate agent id")
	// ErrInvalidPlanner indicates an unknown planner name was requested.
	ErrInvalidPlanner = errors.New("mapf: unknown planner")
	// ErrInvalidMethod indicates an unknown task-allocation method was requested.
	ErrInvalidMethod = errors.New("mapf: unknown allocation method")
)
