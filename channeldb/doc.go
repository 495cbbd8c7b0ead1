// Package channeldb defines the per-direction channel policy
// (ChannelUpdate), the directed edge key (ChannelDesc) and the combined
// GraphEdge that the routing core relaxes during search.
//
// Nothing here touches gossip validation, signatures or persistence —
// those stay external collaborators. This package only holds the shapes
// the core operates on and the pure helpers (FeeFor, EdgeFeasible)
// defined over them.
package channeldb
