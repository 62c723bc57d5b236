package algo

import (
	"fmt"

	"github.com/elektrokombinacija/mapf-core/internal/core"
)

// PlannerName selects which high-level strategy Plan dispatches to.
type PlannerName string

const (
	PlannerCooperative PlannerName = "cooperative"
	PlannerPrioritized PlannerName = "prioritized"
	PlannerCBS         PlannerName = "cbs"
)

// PlanOptions bundles every planner's tunables behind one struct so the
// façade stays a single entry point regardless of which planner runs.
type PlanOptions struct {
	Priority Priority // used by "prioritized" and "cooperative" (fixed to id)
	Seed     int64
	MaxT     int
	CBS      CBSOptions // used by "cbs"
}

// DefaultPlanOptions mirrors spec.md §6's host-supplied defaults.
func DefaultPlanOptions() PlanOptions {
	return PlanOptions{
		Priority: PriorityID,
		MaxT:     defaultMaxT,
		CBS:      DefaultCBSOptions(),
	}
}

// Plan is the uniform entry point every host calls: it validates input,
// dispatches to the requested planner, and always returns a map with one
// equal-length path per agent (spec.md §4.7, §6).
func Plan(grid *core.Grid, agents []core.AgentSpec, planner PlannerName, opts PlanOptions) (map[int]core.Path, error) {
	if err := core.ValidateAgents(grid, agents); err != nil {
		return nil, err
	}
	if opts.MaxT <= 0 {
		opts.MaxT = defaultMaxT
	}

	switch planner {
	case PlannerCooperative:
		return PrioritizedPlan(grid, agents, PriorityID, opts.Seed, opts.MaxT), nil
	case PlannerPrioritized:
		return PrioritizedPlan(grid, agents, opts.Priority, opts.Seed, opts.MaxT), nil
	case PlannerCBS:
		cbsOpts := opts.CBS
		if cbsOpts.MaxT <= 0 {
			cbsOpts.MaxT = opts.MaxT
		}
		if cbsOpts.Seed == 0 {
			cbsOpts.Seed = opts.Seed
		}
		return CBS(grid, agents, cbsOpts), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrInvalidPlanner, planner)
	}
}

// SoC returns the sum-of-costs of a plan: the total number of time steps
// across every agent's path.
func SoC(paths map[int]core.Path) int {
	total := 0
	for _, p := range paths {
		total += len(p)
	}
	return total
}

// Makespan returns the length of the longest path in a plan.
func Makespan(paths map[int]core.Path) int {
	max := 0
	for _, p := range paths {
		if len(p) > max {
			max = len(p)
		}
	}
	return max
}
