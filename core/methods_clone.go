// File: methods_clone.go
// Role: cloning graph instances. A search must never mutate the graph it
// runs over; Clone gives callers copy-on-write isolation so a search can
// run against a private snapshot while gossip ingestion keeps mutating the
// live graph.
package core

// CloneEmpty returns a new DirectedGraph with the same vertex set but no
// edges.
func (g *DirectedGraph) CloneEmpty() *DirectedGraph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	clone := New()
	for v := range g.vertices {
		clone.vertices[v] = struct{}{}
		ensureAdjacency(clone, v)
	}

	return clone
}

// Clone returns a deep copy of the graph: vertices, edges and both
// adjacency indices. The receiver is left byte-identical.
func (g *DirectedGraph) Clone() *DirectedGraph {
	clone := g.CloneEmpty()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for desc, e := range g.edges {
		val := *e
		ne := &val
		clone.edges[desc] = ne
		ensureAdjacency(clone, desc.From)
		ensureAdjacency(clone, desc.To)
		clone.out[desc.From][desc] = ne
		clone.in[desc.To][desc] = ne
	}

	return clone
}
