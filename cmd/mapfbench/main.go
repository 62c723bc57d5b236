// Command mapfbench runs the three path planners and both task-allocation
// methods on a built-in scenario and prints a cost/makespan comparison.
//
// It is a host program in the sense of spec.md §6: it owns the grid,
// scenario construction, and CLI/env configuration, none of which are part
// of the core's contract.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/mapf-core/internal/algo"
	"github.com/elektrokombinacija/mapf-core/internal/core"
)

func envOrDefaultInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	var v int
	if _, err := fmt.Sscanf(raw, "%d", &v); err != nil {
		return fallback
	}
	return v
}

func main() {
	_ = godotenv.Load(".env") // optional; defaults below apply if absent

	gridSize := flag.Int("grid", 8, "side length of the built-in square grid")
	seed := flag.Int64("seed", 7, "seed for priority=\"random\" and CBS fallback")
	nodeLimit := flag.Int("node-limit", envOrDefaultInt("MAPF_NODE_LIMIT", 1000), "CBS node budget")
	timeLimitMs := flag.Int("time-limit-ms", envOrDefaultInt("MAPF_TIME_LIMIT_MS", 5000), "CBS wall-clock budget, milliseconds")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	sugar := logger.Sugar()

	runID := uuid.New()
	sugar.Infow("starting benchmark run", "run_id", runID.String(), "grid", *gridSize)

	grid, agents, tasks := builtinScenario(*gridSize)

	runAllocation(sugar, agents, tasks)
	runPlanners(sugar, grid, agents, *seed, *nodeLimit, *timeLimitMs)
}

func builtinScenario(n int) (*core.Grid, []core.AgentSpec, []core.Task) {
	cells := make([][]int, n)
	for y := range cells {
		cells[y] = make([]int, n)
	}
	// A thin wall down the middle column, open only at the top row, the
	// bottom row and the centre cell, so agents crossing sides share those
	// openings.
	if n > 3 {
		for y := 1; y < n-1; y++ {
			cells[y][n/2] = 1
		}
		cells[n/2][n/2] = 0
	}
	grid, err := core.NewGrid(cells)
	if err != nil {
		panic(err)
	}

	agents := []core.AgentSpec{
		{ID: 0, Start: core.Position{X: 0, Y: 0}, Goal: core.Position{X: n - 1, Y: n - 1}},
		{ID: 1, Start: core.Position{X: n - 1, Y: 0}, Goal: core.Position{X: 0, Y: n - 1}},
		{ID: 2, Start: core.Position{X: 0, Y: n - 1}, Goal: core.Position{X: n - 1, Y: 0}},
	}
	tasks := []core.Task{
		{ID: 0, Pos: core.Position{X: n - 1, Y: n - 1}},
		{ID: 1, Pos: core.Position{X: 0, Y: n - 1}},
		{ID: 2, Pos: core.Position{X: n - 1, Y: 0}},
	}
	return grid, agents, tasks
}

func runAllocation(sugar *zap.SugaredLogger, agents []core.AgentSpec, tasks []core.Task) {
	positions := make([]algo.AgentPos, len(agents))
	for i, a := range agents {
		positions[i] = algo.AgentPos{ID: a.ID, Pos: a.Start}
	}

	fmt.Println("=== Task allocation ===")
	for _, method := range []algo.Method{algo.MethodGreedy, algo.MethodHungarian} {
		assignment, err := algo.Assign(positions, tasks, method)
		if err != nil {
			sugar.Warnw("assignment failed", "method", method, "err", err)
			continue
		}
		fmt.Printf("%-10s %v\n", method, assignment)
	}
}

func runPlanners(sugar *zap.SugaredLogger, grid *core.Grid, agents []core.AgentSpec, seed int64, nodeLimit, timeLimitMs int) {
	opts := algo.DefaultPlanOptions()
	opts.Seed = seed
	opts.CBS.NodeLimit = nodeLimit
	opts.CBS.TimeLimit = time.Duration(timeLimitMs) * time.Millisecond
	opts.CBS.Seed = seed

	fmt.Println("\n=== Planner comparison ===")
	for _, planner := range []algo.PlannerName{algo.PlannerCooperative, algo.PlannerPrioritized, algo.PlannerCBS} {
		start := time.Now()
		paths, err := algo.Plan(grid, agents, planner, opts)
		elapsed := time.Since(start)
		if err != nil {
			sugar.Errorw("plan failed", "planner", planner, "err", err)
			continue
		}
		fmt.Printf("%-12s SoC=%-4d Makespan=%-4d conflicts=%-4v elapsed=%v\n",
			planner, algo.SoC(paths), algo.Makespan(paths), algo.FindFirstConflict(paths) != nil, elapsed)
	}
}
