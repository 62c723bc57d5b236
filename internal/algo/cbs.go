package algo

import (
	"container/heap"
	"time"

	"github.com/elektrokombinacija/mapf-core/internal/core"
)

// CBSOptions configures the high-level search's termination guards and its
// fallback policy (spec.md §4.5, §6).
type CBSOptions struct {
	TimeLimit              time.Duration // default 5s
	NodeLimit              int           // default 1000
	MaxConstraintsPerAgent int           // default 50
	Fallback               string        // "prioritized" or anything else = best-so-far
	PPPriority             Priority      // used when Fallback == "prioritized"
	Seed                   int64
	MaxT                   int
}

// DefaultCBSOptions mirrors the host-supplied defaults of spec.md §6.
func DefaultCBSOptions() CBSOptions {
	return CBSOptions{
		TimeLimit:              5 * time.Second,
		NodeLimit:              1000,
		MaxConstraintsPerAgent: 50,
		Fallback:               "prioritized",
		PPPriority:             PriorityID,
		MaxT:                   defaultMaxT,
	}
}

// cbsNode is one node of the constraint tree. Constraints are shared via a
// parent pointer plus the single constraint this node adds, rather than a
// copied list, to avoid quadratic blow-up as the tree deepens (spec.md §9).
// conflictCount is tracked but, mirroring the source this system is derived
// from, is never recomputed past the root — see DESIGN.md's decision on the
// corresponding Open Question — so in practice the priority key reduces to
// cost alone.
type cbsNode struct {
	parent        *cbsNode
	constraint    *Constraint
	paths         map[int]core.Path
	cost          int
	conflictCount int
	counter       int64
	index         int
}

type cbsHeap []*cbsNode

func (h cbsHeap) Len() int { return len(h) }
func (h cbsHeap) Less(i, j int) bool {
	if h[i].cost != h[j].cost {
		return h[i].cost < h[j].cost
	}
	if h[i].conflictCount != h[j].conflictCount {
		return h[i].conflictCount < h[j].conflictCount
	}
	return h[i].counter < h[j].counter
}
func (h cbsHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *cbsHeap) Push(x any) {
	n := x.(*cbsNode)
	n.index = len(*h)
	*h = append(*h, n)
}
func (h *cbsHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[0 : n-1]
	return x
}

func pathCost(paths map[int]core.Path) int {
	sum := 0
	for _, p := range paths {
		sum += len(p)
	}
	return sum
}

// CBS runs Conflict-Based Search: a best-first expansion of a tree of
// constraint sets, splitting on the first detected conflict, bounded by
// wall-clock time, node count, and per-agent constraint depth, and falling
// back to a conservative plan whenever a bound is hit (spec.md §4.5).
func CBS(grid *core.Grid, agents []core.AgentSpec, opts CBSOptions) map[int]core.Path {
	if opts.TimeLimit <= 0 {
		opts.TimeLimit = 5 * time.Second
	}
	if opts.NodeLimit <= 0 {
		opts.NodeLimit = 1000
	}
	if opts.MaxConstraintsPerAgent <= 0 {
		opts.MaxConstraintsPerAgent = 50
	}
	if opts.MaxT <= 0 {
		opts.MaxT = defaultMaxT
	}

	agentByID := make(map[int]core.AgentSpec, len(agents))
	for _, a := range agents {
		agentByID[a.ID] = a
	}

	root := &cbsNode{paths: make(map[int]core.Path, len(agents))}
	for _, a := range agents {
		path, ok := SpaceTimeAStar(grid, a.Start, a.Goal, nil, nil, opts.MaxT)
		if !ok {
			return fallbackPlan(grid, agents, opts, nil)
		}
		root.paths[a.ID] = path
	}
	root.cost = pathCost(root.paths)

	open := &cbsHeap{}
	heap.Init(open)
	heap.Push(open, root)

	start := time.Now()
	nodesExpanded := 0

	for open.Len() > 0 {
		if time.Since(start) >= opts.TimeLimit {
			return fallbackPlan(grid, agents, opts, (*open)[0])
		}
		if nodesExpanded >= opts.NodeLimit {
			return fallbackPlan(grid, agents, opts, (*open)[0])
		}

		node := heap.Pop(open).(*cbsNode)
		nodesExpanded++

		conflict := FindFirstConflict(node.paths)
		if conflict == nil {
			return core.PadPaths(node.paths)
		}

		for _, childSpec := range splitConstraints(*conflict) {
			childSpec := childSpec
			child := &cbsNode{parent: node, constraint: &childSpec}
			if countForAgent(child, childSpec.AgentID, childSpec.Kind) > opts.MaxConstraintsPerAgent {
				continue
			}

			agent, ok := agentByID[childSpec.AgentID]
			if !ok {
				continue
			}
			cm := BuildConstraintMap(collectConstraints(child), agent.ID)
			path, ok := SpaceTimeAStar(grid, agent.Start, agent.Goal, nil, cm, opts.MaxT)
			if !ok {
				continue
			}

			child.paths = make(map[int]core.Path, len(node.paths))
			for id, p := range node.paths {
				child.paths[id] = p
			}
			child.paths[agent.ID] = path
			child.cost = pathCost(child.paths)
			child.conflictCount = 0 // see cbsNode doc: never recomputed past root
			child.counter = int64(nodesExpanded)*2 + int64(len(*open))

			heap.Push(open, child)
		}
	}

	return fallbackPlan(grid, agents, opts, nil)
}

// splitConstraints turns a conflict into the two per-agent constraints CBS
// branches on: for an edge conflict, each agent is forbidden its own
// direction of the swap (spec.md §4.5).
func splitConstraints(c Conflict) []Constraint {
	if c.Kind == VertexConflict {
		return []Constraint{
			{AgentID: c.A1, Kind: VertexConstraint, Pos: c.Pos, T: c.T},
			{AgentID: c.A2, Kind: VertexConstraint, Pos: c.Pos, T: c.T},
		}
	}
	return []Constraint{
		{AgentID: c.A1, Kind: EdgeConstraint, U: c.U, V: c.V, T: c.T},
		{AgentID: c.A2, Kind: EdgeConstraint, U: c.V, V: c.U, T: c.T},
	}
}

// fallbackPlan resolves CBS's conservative exit: "prioritized" invokes the
// prioritized planner outright; anything else is best-so-far, either the
// current open-set top or each agent left at its start (spec.md §4.5).
func fallbackPlan(grid *core.Grid, agents []core.AgentSpec, opts CBSOptions, best *cbsNode) map[int]core.Path {
	if opts.Fallback == "prioritized" {
		return PrioritizedPlan(grid, agents, opts.PPPriority, opts.Seed, opts.MaxT)
	}
	if best != nil {
		return core.PadPaths(best.paths)
	}
	paths := make(map[int]core.Path, len(agents))
	for _, a := range agents {
		paths[a.ID] = core.Path{a.Start}
	}
	return core.PadPaths(paths)
}
