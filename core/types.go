package core

import (
	"errors"
	"sync"

	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/lnwire"
)

// Sentinel errors for DirectedGraph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a node absent
	// from the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a ChannelDesc
	// absent from the graph.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrVertexHasEdges indicates RemoveVertex was called on a node that
	// still has incident edges; only a degree-0 vertex can be removed.
	ErrVertexHasEdges = errors.New("core: vertex still has incident edges")
)

// DirectedGraph is the directed multigraph of (channel-id, direction)
// edges: a vertex set plus, per vertex, an outgoing and incoming adjacency
// of GraphEdges.
//
// Concurrency: muVert guards the vertex catalog; muEdgeAdj guards the edge
// catalog and both adjacency indices. Callers must not mutate a
// DirectedGraph concurrently with a search running over it; the core does
// not provide that lock itself, only the two internal ones that keep a
// single mutation or a single read-only traversal internally consistent.
type DirectedGraph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	vertices map[lnwire.NodeID]struct{}

	// edges is the global catalog; ChannelDesc is unique across the
	// whole graph: adding an edge with an existing desc replaces the
	// prior update.
	edges map[channeldb.ChannelDesc]*channeldb.GraphEdge

	// out[v][desc] / in[v][desc] index edges by endpoint for O(1)
	// neighbor enumeration in either direction.
	out map[lnwire.NodeID]map[channeldb.ChannelDesc]*channeldb.GraphEdge
	in  map[lnwire.NodeID]map[channeldb.ChannelDesc]*channeldb.GraphEdge
}

// New returns an empty DirectedGraph.
func New() *DirectedGraph {
	return &DirectedGraph{
		vertices: make(map[lnwire.NodeID]struct{}),
		edges:    make(map[channeldb.ChannelDesc]*channeldb.GraphEdge),
		out:      make(map[lnwire.NodeID]map[channeldb.ChannelDesc]*channeldb.GraphEdge),
		in:       make(map[lnwire.NodeID]map[channeldb.ChannelDesc]*channeldb.GraphEdge),
	}
}

// ensureAdjacency lazily allocates the out/in buckets for v.
// Caller must hold muEdgeAdj for writing.
func ensureAdjacency(g *DirectedGraph, v lnwire.NodeID) {
	if _, ok := g.out[v]; !ok {
		g.out[v] = make(map[channeldb.ChannelDesc]*channeldb.GraphEdge)
	}
	if _, ok := g.in[v]; !ok {
		g.in[v] = make(map[channeldb.ChannelDesc]*channeldb.GraphEdge)
	}
}
