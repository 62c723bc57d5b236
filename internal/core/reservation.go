package core

// vertexKey and edgeKey give O(1)-average reservation lookups keyed
// directly by (t, pos) / (t, u, v), per spec.md §9, instead of nesting a
// map<t, set<Position>> (which would require two lookups per query).
type vertexKey struct {
	t int
	p Position
}

type edgeKey struct {
	t    int
	u, v Position
}

// ReservationTable records space-time claims made by already-planned
// agents. It has no upper bound on t; callers bound search depth via
// max_t instead. It is not safe for concurrent mutation — each planning
// call owns exactly one table.
type ReservationTable struct {
	vertices map[vertexKey]struct{}
	edges    map[edgeKey]struct{}
}

// NewReservationTable returns an empty table.
func NewReservationTable() *ReservationTable {
	return &ReservationTable{
		vertices: make(map[vertexKey]struct{}),
		edges:    make(map[edgeKey]struct{}),
	}
}

// AddVertex reserves cell p at time t.
func (rt *ReservationTable) AddVertex(t int, p Position) {
	rt.vertices[vertexKey{t, p}] = struct{}{}
}

// AddEdge reserves the directed transition u->v arriving at time t.
func (rt *ReservationTable) AddEdge(t int, u, v Position) {
	rt.edges[edgeKey{t, u, v}] = struct{}{}
}

// VertexBlocked reports whether cell p is reserved at time t.
func (rt *ReservationTable) VertexBlocked(t int, p Position) bool {
	_, blocked := rt.vertices[vertexKey{t, p}]
	return blocked
}

// EdgeBlocked reports whether moving u->v arriving at time t is blocked by a
// swap conflict. An agent moving u->v at t is blocked by any reservation of
// the *opposing* transition v->u at t — the table stores each agent's own
// traversal as u->v at t, so the swap test deliberately reads the flipped
// key (spec.md §4.2, "edge-swap direction").
func (rt *ReservationTable) EdgeBlocked(t int, u, v Position) bool {
	_, blocked := rt.edges[edgeKey{t, v, u}]
	return blocked
}

// ReservePath adds vertex and edge reservations for every step of a
// completed path, following the convention that path[i] is the agent's
// position at time i.
func (rt *ReservationTable) ReservePath(p Path) {
	for i, pos := range p {
		rt.AddVertex(i, pos)
		if i > 0 {
			rt.AddEdge(i, p[i-1], pos)
		}
	}
}
