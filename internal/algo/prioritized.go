package algo

import (
	"math/rand"
	"sort"

	"github.com/elektrokombinacija/mapf-core/internal/core"
)

// Priority selects how PrioritizedPlan orders agents before planning them.
type Priority string

const (
	// PriorityID orders agents ascending by AgentSpec.ID.
	PriorityID Priority = "id"
	// PriorityDistance orders agents ascending by Manhattan(start, goal).
	PriorityDistance Priority = "distance"
	// PriorityRandom orders agents by a seeded deterministic shuffle.
	PriorityRandom Priority = "random"
)

const defaultMaxT = 500

// orderAgents returns agents sorted per priority. It never mutates the
// input slice (spec.md §8, "Permutation" law: re-ordering the input agents
// list cannot change the plan under priority="id").
func orderAgents(agents []core.AgentSpec, priority Priority, seed int64) []core.AgentSpec {
	ordered := make([]core.AgentSpec, len(agents))
	copy(ordered, agents)

	switch priority {
	case PriorityDistance:
		sort.SliceStable(ordered, func(i, j int) bool {
			return core.Manhattan(ordered[i].Start, ordered[i].Goal) < core.Manhattan(ordered[j].Start, ordered[j].Goal)
		})
	case PriorityRandom:
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(len(ordered), func(i, j int) { ordered[i], ordered[j] = ordered[j], ordered[i] })
	default: // PriorityID and anything unrecognized fall back to id order
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })
	}
	return ordered
}

// PrioritizedPlan plans each agent in priority order with a fresh
// space-time A* search against the reservations accumulated by
// higher-priority agents, then reserves that agent's path before moving on
// (spec.md §4.3). An agent C2 cannot route stays put at its start cell —
// prioritized planning is not complete, by design; CBS's fallback relies on
// exactly this behavior.
func PrioritizedPlan(grid *core.Grid, agents []core.AgentSpec, priority Priority, seed int64, maxT int) map[int]core.Path {
	if maxT <= 0 {
		maxT = defaultMaxT
	}
	ordered := orderAgents(agents, priority, seed)

	reserved := core.NewReservationTable()
	paths := make(map[int]core.Path, len(agents))

	for _, agent := range ordered {
		path, ok := SpaceTimeAStar(grid, agent.Start, agent.Goal, reserved, nil, maxT)
		if !ok {
			path = core.Path{agent.Start}
		}
		paths[agent.ID] = path
		reserved.ReservePath(path)
	}

	return core.PadPaths(paths)
}

// Cooperative is kept as a distinct type so the cooperative planner can be
// named separately from Prioritized for benchmarking, even though it is the
// same algorithm fixed to priority="id" (spec.md §4.3, §9). Plan's
// "cooperative" case calls PrioritizedPlan directly rather than this type.
type Cooperative struct {
	MaxT int
}

func (c Cooperative) Name() string { return "cooperative" }

func (c Cooperative) Solve(grid *core.Grid, agents []core.AgentSpec, seed int64) map[int]core.Path {
	return PrioritizedPlan(grid, agents, PriorityID, seed, c.MaxT)
}
