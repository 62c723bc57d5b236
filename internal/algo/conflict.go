package algo

import (
	"sort"

	"github.com/elektrokombinacija/mapf-core/internal/core"
)

// ConflictKind tags a Conflict as a shared-cell collision or a swap.
type ConflictKind int

const (
	// VertexConflict means two agents occupy the same cell at the same time.
	VertexConflict ConflictKind = iota
	// EdgeConflict means two agents exchange adjacent cells between t-1 and t.
	EdgeConflict
)

// Conflict is the first collision FindFirstConflict locates.
type Conflict struct {
	Kind   ConflictKind
	T      int
	A1, A2 int
	Pos    Position // VertexConflict
	U, V   Position // EdgeConflict: A1 goes U->V, A2 goes V->U
}

func posAt(p core.Path, t int) Position {
	if t < len(p) {
		return p[t]
	}
	return p[len(p)-1]
}

// FindFirstConflict scans a set of time-indexed paths for the first
// collision, vertex conflicts taking priority over edge conflicts at the
// same time step, and returns nil if none exists (spec.md §4.4).
func FindFirstConflict(paths map[int]core.Path) *Conflict {
	ids := make([]int, 0, len(paths))
	for id := range paths {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	maxLen := 0
	for _, p := range paths {
		if len(p) > maxLen {
			maxLen = len(p)
		}
	}

	for t := 0; t < maxLen; t++ {
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a1, a2 := ids[i], ids[j]
				p1, p2 := posAt(paths[a1], t), posAt(paths[a2], t)
				if p1 == p2 {
					return &Conflict{Kind: VertexConflict, T: t, A1: a1, A2: a2, Pos: p1}
				}
			}
		}

		if t == 0 {
			continue
		}
		for i := 0; i < len(ids); i++ {
			for j := i + 1; j < len(ids); j++ {
				a1, a2 := ids[i], ids[j]
				u1, v1 := posAt(paths[a1], t-1), posAt(paths[a1], t)
				u2, v2 := posAt(paths[a2], t-1), posAt(paths[a2], t)
				if u1 == v2 && v1 == u2 && u1 != v1 {
					return &Conflict{Kind: EdgeConflict, T: t, A1: a1, A2: a2, U: u1, V: v1}
				}
			}
		}
	}
	return nil
}
