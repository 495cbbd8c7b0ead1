// File: methods_edges.go
// Role: edge lifecycle & queries: AddEdge/RemoveEdge/ContainsEdge/GetEdge/
// Edges/EdgeCount plus the adjacency-index bookkeeping AddEdge and
// RemoveEdge share.
//
// Determinism: Outgoing/Incoming/Edges all return slices sorted by
// ChannelDesc (ChannelID, then From, then To) so golden-output tests and
// Yen's deterministic tie-break see a stable order.
package core

import (
	"sort"

	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/lnwire"
)

// AddEdge inserts or replaces the directed edge identified by desc,
// ensuring both endpoints are present in the graph. Adding an edge whose
// desc already exists replaces the prior update in place.
func (g *DirectedGraph) AddEdge(desc channeldb.ChannelDesc, update channeldb.ChannelUpdate, capacity lnwire.MilliSatoshi) {
	g.AddVertex(desc.From)
	g.AddVertex(desc.To)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	ge := &channeldb.GraphEdge{Desc: desc, Update: update, Capacity: capacity}
	g.edges[desc] = ge
	ensureAdjacency(g, desc.From)
	ensureAdjacency(g, desc.To)
	g.out[desc.From][desc] = ge
	g.in[desc.To][desc] = ge
}

// RemoveEdge deletes exactly the edge identified by desc; endpoints remain
// in the graph even if left with degree zero.
func (g *DirectedGraph) RemoveEdge(desc channeldb.ChannelDesc) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, ok := g.edges[desc]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, desc)
	delete(g.out[desc.From], desc)
	delete(g.in[desc.To], desc)

	return nil
}

// ContainsEdge reports whether desc is present in the graph.
func (g *DirectedGraph) ContainsEdge(desc channeldb.ChannelDesc) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.edges[desc]

	return ok
}

// GetEdge returns the GraphEdge for desc, or ErrEdgeNotFound.
func (g *DirectedGraph) GetEdge(desc channeldb.ChannelDesc) (*channeldb.GraphEdge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[desc]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Outgoing returns all edges with Desc.From == n, sorted by ChannelDesc.
func (g *DirectedGraph) Outgoing(n lnwire.NodeID) []*channeldb.GraphEdge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedEdges(g.out[n])
}

// Incoming returns all edges with Desc.To == n, sorted by ChannelDesc.
// This is the convenience incoming-edge adjacency that a backward search
// walks instead of scanning the whole edge catalog.
func (g *DirectedGraph) Incoming(n lnwire.NodeID) []*channeldb.GraphEdge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedEdges(g.in[n])
}

// Edges returns every edge in the graph, sorted by ChannelDesc.
func (g *DirectedGraph) Edges() []*channeldb.GraphEdge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedEdges(g.edges)
}

// EdgeCount returns the total number of edges in the graph.
func (g *DirectedGraph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

func sortedEdges(m map[channeldb.ChannelDesc]*channeldb.GraphEdge) []*channeldb.GraphEdge {
	out := make([]*channeldb.GraphEdge, 0, len(m))
	for _, e := range m {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		return descLess(out[i].Desc, out[j].Desc)
	})

	return out
}

// descLess imposes a total, deterministic order on ChannelDesc values:
// by ChannelID, then From, then To.
func descLess(a, b channeldb.ChannelDesc) bool {
	if a.ChannelID != b.ChannelID {
		return a.ChannelID < b.ChannelID
	}
	if a.From != b.From {
		return a.From.Less(b.From)
	}

	return a.To.Less(b.To)
}
