package algo

import (
	"fmt"
	"sort"

	"github.com/elektrokombinacija/mapf-core/internal/core"
)

// Method selects the task-allocation strategy (spec.md §4.6).
type Method string

const (
	MethodHungarian Method = "hungarian"
	MethodGreedy    Method = "greedy"
	// MethodCBBA is, per spec.md §9, an alias of greedy: the source this
	// system is derived from only stubs consensus-based bundle allocation.
	MethodCBBA Method = "cbba"
)

// AgentPos is the minimal agent view task allocation needs: an id and a
// current position.
type AgentPos struct {
	ID  int
	Pos core.Position
}

// Assign maps agents to tasks by Manhattan-distance cost, using the
// requested method. Agents or tasks left out of the returned map are
// unassigned. Empty input yields an empty assignment.
func Assign(agents []AgentPos, tasks []core.Task, method Method) (map[int]int, error) {
	switch method {
	case MethodHungarian:
		return hungarianAssign(agents, tasks), nil
	case MethodGreedy, MethodCBBA:
		return greedyAssign(agents, tasks), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidMethod, method)
	}
}

// greedyAssign iterates agents in index order, claiming the nearest
// still-unclaimed, uncompleted task each time; ties break by ascending task
// ID (spec.md §4.6).
func greedyAssign(agents []AgentPos, tasks []core.Task) map[int]int {
	available := make([]core.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			available = append(available, t)
		}
	}
	sort.Slice(available, func(i, j int) bool { return available[i].ID < available[j].ID })

	claimed := make(map[int]bool, len(available))
	result := make(map[int]int, len(agents))

	for _, a := range agents {
		// available is sorted ascending by ID, so the first minimal-distance
		// entry encountered is already the tie-break winner.
		best := -1
		bestDist := 0
		for _, t := range available {
			if claimed[t.ID] {
				continue
			}
			d := core.Manhattan(a.Pos, t.Pos)
			if best == -1 || d < bestDist {
				best = t.ID
				bestDist = d
			}
		}
		if best != -1 {
			result[a.ID] = best
			claimed[best] = true
		}
	}
	return result
}

// hungarianAssign computes an exact minimum-cost one-to-one assignment over
// a possibly-rectangular cost matrix via the classic O(n^3) Hungarian
// algorithm (Kuhn-Munkres), on the Jonker-Volgenant-style potentials used by
// most textbook implementations. Unequal agent/task counts are handled by
// padding the smaller side with a sentinel cost high enough that it is never
// preferred over a real pairing, then dropping pad-assignments from the
// result (spec.md §4.6, "Hungarian").
func hungarianAssign(agents []AgentPos, tasks []core.Task) map[int]int {
	available := make([]core.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.Completed {
			available = append(available, t)
		}
	}
	if len(agents) == 0 || len(available) == 0 {
		return map[int]int{}
	}
	sort.Slice(available, func(i, j int) bool { return available[i].ID < available[j].ID })

	n := len(agents)
	m := len(available)
	size := n
	if m > size {
		size = m
	}

	const sentinel = 1 << 28
	cost := make([][]int, size)
	for i := range cost {
		cost[i] = make([]int, size)
		for j := range cost[i] {
			switch {
			case i < n && j < m:
				cost[i][j] = core.Manhattan(agents[i].Pos, available[j].Pos)
			default:
				cost[i][j] = sentinel
			}
		}
	}

	colForRow := solveAssignment(cost)

	result := make(map[int]int, n)
	for i := 0; i < n; i++ {
		j := colForRow[i]
		if j < m {
			result[agents[i].ID] = available[j].ID
		}
	}
	return result
}

// solveAssignment is the Hungarian algorithm in its potentials/shortest-
// augmenting-path form: for each row it grows an alternating tree over
// reduced costs until it can augment, in O(n^3) overall. Returns, for each
// row, the column it is matched to.
func solveAssignment(cost [][]int) []int {
	n := len(cost)
	const inf = 1 << 30

	u := make([]int, n+1)
	v := make([]int, n+1)
	p := make([]int, n+1) // p[j] = row matched to column j (1-indexed columns)
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		minv := make([]int, n+1)
		used := make([]bool, n+1)
		for j := range minv {
			minv[j] = inf
		}

		for {
			used[j0] = true
			i0, delta, j1 := p[j0], inf, -1
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	colForRow := make([]int, n)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			colForRow[p[j]-1] = j - 1
		}
	}
	return colForRow
}
