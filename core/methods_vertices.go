// File: methods_vertices.go
// Role: vertex lifecycle & queries.
//
// Determinism: Vertices() returns NodeIDs sorted byte-lexicographically.
package core

import (
	"sort"

	"github.com/lnpathfind/pathfind/lnwire"
)

// AddVertex inserts a node if missing (idempotent).
func (g *DirectedGraph) AddVertex(n lnwire.NodeID) {
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[n]; exists {
		return
	}
	g.vertices[n] = struct{}{}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, n)
	g.muEdgeAdj.Unlock()
}

// ContainsVertex reports whether n is present in the graph.
func (g *DirectedGraph) ContainsVertex(n lnwire.NodeID) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[n]

	return ok
}

// RemoveVertex deletes n, provided it has no incident edges in either
// direction. The core only supports removing an isolated vertex; callers
// express "avoid this node" via a per-search ignore-set (see Restrictions
// in routing) rather than by removing it from the graph.
func (g *DirectedGraph) RemoveVertex(n lnwire.NodeID) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[n]; !exists {
		return ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if len(g.out[n]) > 0 || len(g.in[n]) > 0 {
		return ErrVertexHasEdges
	}

	delete(g.vertices, n)
	delete(g.out, n)
	delete(g.in, n)

	return nil
}

// Vertices returns all node IDs in byte-lexicographic ascending order.
func (g *DirectedGraph) Vertices() []lnwire.NodeID {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]lnwire.NodeID, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// VertexCount returns the number of vertices in the graph.
func (g *DirectedGraph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}
