// File: view.go
// Role: non-mutating graph views: Subgraph copies the part of a graph
// induced by a chosen vertex set, without touching the live graph.
package core

import "github.com/lnpathfind/pathfind/lnwire"

// Subgraph returns a new DirectedGraph containing only the vertices in
// keep and the edges whose endpoints are both kept. The receiver is not
// mutated.
func Subgraph(g *DirectedGraph, keep map[lnwire.NodeID]bool) *DirectedGraph {
	out := New()

	g.muVert.RLock()
	for v := range g.vertices {
		if keep[v] {
			out.vertices[v] = struct{}{}
			ensureAdjacency(out, v)
		}
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for desc, e := range g.edges {
		if !keep[desc.From] || !keep[desc.To] {
			continue
		}
		val := *e
		ne := &val
		out.edges[desc] = ne
		ensureAdjacency(out, desc.From)
		ensureAdjacency(out, desc.To)
		out.out[desc.From][desc] = ne
		out.in[desc.To][desc] = ne
	}

	return out
}
