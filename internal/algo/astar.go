package algo

import (
	"container/heap"

	"github.com/elektrokombinacija/mapf-core/internal/core"
)

// spaceTimeState is a search state (x, y, t).
type spaceTimeState struct {
	pos Position
	t   int
}

// astarNode is a priority-queue entry; parent lets us reconstruct the path
// by walking back-pointers once the goal is popped.
type astarNode struct {
	state  spaceTimeState
	g      int
	f      int
	parent *astarNode
	index  int
}

type astarHeap []*astarNode

func (h astarHeap) Len() int { return len(h) }

// Less breaks ties on f by preferring the deeper node (larger g): under a
// consistent heuristic a larger g means closer to goal, per spec.md §4.2.
func (h astarHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].g > h[j].g
}
func (h astarHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *astarHeap) Push(x any) {
	n := x.(*astarNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *astarHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

// SpaceTimeAStar finds the shortest time-indexed path from start (at t=0) to
// goal under vertex/edge reservations and an optional per-agent constraint
// map, or reports no path was found within maxT steps (spec.md §4.2).
func SpaceTimeAStar(
	grid *core.Grid,
	start, goal Position,
	reserved *core.ReservationTable,
	constraints ConstraintMap,
	maxT int,
) (core.Path, bool) {
	if reserved == nil {
		reserved = core.NewReservationTable()
	}

	open := &astarHeap{}
	heap.Init(open)
	heap.Push(open, &astarNode{
		state: spaceTimeState{pos: start, t: 0},
		g:     0,
		f:     core.Manhattan(start, goal),
	})

	visited := make(map[spaceTimeState]bool)

	for open.Len() > 0 {
		current := heap.Pop(open).(*astarNode)

		if current.state.pos == goal {
			return reconstructPath(current), true
		}
		if visited[current.state] {
			continue
		}
		visited[current.state] = true
		if current.state.t >= maxT {
			continue
		}

		nextT := current.state.t + 1
		for _, d := range core.Moves() {
			next := Position{X: current.state.pos.X + d.X, Y: current.state.pos.Y + d.Y}

			if !grid.IsFree(next) {
				continue
			}
			if reserved.VertexBlocked(nextT, next) {
				continue
			}
			if reserved.EdgeBlocked(nextT, current.state.pos, next) {
				continue
			}
			if constraints.Blocked(nextT, next) {
				continue
			}

			nextState := spaceTimeState{pos: next, t: nextT}
			if visited[nextState] {
				continue
			}

			g := current.g + 1
			heap.Push(open, &astarNode{
				state:  nextState,
				g:      g,
				f:      g + core.Manhattan(next, goal),
				parent: current,
			})
		}
	}

	return nil, false
}

func reconstructPath(n *astarNode) core.Path {
	path := make(core.Path, 0, n.g+1)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur.state.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
