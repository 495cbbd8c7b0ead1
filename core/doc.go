// Package core implements DirectedGraph, the directed multigraph of
// (channel-id, direction) edges that the routing search operates over.
//
// Vertices are lnwire.NodeID and edges are keyed by channeldb.ChannelDesc,
// with a split-lock discipline (muVert for the vertex catalog, muEdgeAdj
// for the edge catalog and adjacency indices) and deterministic, sorted
// enumeration throughout.
//
//	core/       — DirectedGraph, vertex & edge lifecycle, clone/view, blacklist expansion
//
// Construction from a snapshot lives in internal/graphio; this package
// only holds the mutable graph itself.
package core
