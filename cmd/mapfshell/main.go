// Command mapfshell is an interactive console for building a small grid
// scenario by hand and re-running the three planners against it. The REPL
// idiom — readline config, history file, Ctrl-C-vs-Ctrl-D handling — follows
// haricheung-agentic-shell/cmd/agsh/main.go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"

	"github.com/elektrokombinacija/mapf-core/internal/algo"
	"github.com/elektrokombinacija/mapf-core/internal/core"
)

type session struct {
	grid   *core.Grid
	agents []core.AgentSpec
	nextID int
}

func newSession() *session {
	cells := make([][]int, 8)
	for y := range cells {
		cells[y] = make([]int, 8)
	}
	g, _ := core.NewGrid(cells)
	return &session{grid: g}
}

func (s *session) addAgent(sx, sy, gx, gy int) {
	s.agents = append(s.agents, core.AgentSpec{
		ID:    s.nextID,
		Start: core.Position{X: sx, Y: sy},
		Goal:  core.Position{X: gx, Y: gy},
	})
	s.nextID++
}

func (s *session) listAgents() {
	ids := make([]int, 0, len(s.agents))
	byID := make(map[int]core.AgentSpec, len(s.agents))
	for _, a := range s.agents {
		ids = append(ids, a.ID)
		byID[a.ID] = a
	}
	sort.Ints(ids)
	for _, id := range ids {
		a := byID[id]
		fmt.Printf("  agent %d: %s -> %s\n", a.ID, a.Start, a.Goal)
	}
}

func (s *session) run(plannerName string) {
	planner := algo.PlannerName(plannerName)
	paths, err := algo.Plan(s.grid, s.agents, planner, algo.DefaultPlanOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("SoC=%d Makespan=%d\n", algo.SoC(paths), algo.Makespan(paths))
	ids := make([]int, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Printf("  agent %d: %v\n", id, paths[id])
	}
}

func dispatch(s *session, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	switch fields[0] {
	case "agent":
		if len(fields) != 5 {
			fmt.Println("usage: agent <sx> <sy> <gx> <gy>")
			return
		}
		nums := make([]int, 4)
		for i, f := range fields[1:] {
			v, err := strconv.Atoi(f)
			if err != nil {
				fmt.Println("bad coordinate:", f)
				return
			}
			nums[i] = v
		}
		s.addAgent(nums[0], nums[1], nums[2], nums[3])
	case "agents":
		s.listAgents()
	case "plan":
		if len(fields) != 2 {
			fmt.Println("usage: plan <cooperative|prioritized|cbs>")
			return
		}
		s.run(fields[1])
	case "help":
		fmt.Println("commands: agent <sx> <sy> <gx> <gy> | agents | plan <planner> | exit")
	default:
		fmt.Println("unknown command, try 'help'")
	}
}

func main() {
	_ = godotenv.Load(".env")

	homeDir, _ := os.UserHomeDir()
	historyFile := filepath.Join(homeDir, ".mapfshell_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "\033[36mmapf>\033[0m ",
		HistoryFile:       historyFile,
		HistorySearchFold: true,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init error: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	fmt.Println("mapfshell — build a scenario and compare planners (type 'help')")
	s := newSession()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		}
		if err != nil { // io.EOF, Ctrl-D
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" || line == "quit" {
			break
		}
		dispatch(s, line)
	}
}
