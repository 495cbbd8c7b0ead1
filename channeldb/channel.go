package channeldb

import (
	"github.com/lnpathfind/pathfind/lnwire"
)

// ChannelUpdate is the per-direction policy announced for one side of a
// channel.
type ChannelUpdate struct {
	// FeeBase is the flat component of the routing fee.
	FeeBase lnwire.MilliSatoshi

	// FeeProportionalPPM is the proportional component of the routing
	// fee, expressed in parts-per-million of the forwarded amount.
	FeeProportionalPPM uint32

	// CltvDelta is this hop's contribution to the route's total
	// timelock budget.
	CltvDelta lnwire.CltvDelta

	// HtlcMinMsat is the smallest amount this direction will forward.
	HtlcMinMsat lnwire.MilliSatoshi

	// HtlcMaxMsat is the largest amount this direction will forward.
	// HasMax reports whether a cap was announced at all; an announced
	// max below the advertised min is resolved by EdgeFeasible treating
	// such an edge as infeasible for every amount (see below).
	HtlcMaxMsat lnwire.MilliSatoshi
	HasMax      bool

	// Timestamp is seconds since epoch. The age heuristic does not read
	// it; channel age comes from the block height encoded in ChannelID.
	Timestamp uint64

	// DirectionBit is 0 for node1->node2, 1 for node2->node1, under
	// lexicographic NodeID order.
	DirectionBit uint8
}

// ChannelDesc is a directed edge key: (ChannelID, FromNode, ToNode). The
// same ChannelID may appear at most twice in a graph, once per direction;
// two ChannelDescs collide (and therefore refer to the same graph slot)
// iff all three fields match.
type ChannelDesc struct {
	ChannelID lnwire.ChannelID
	From      lnwire.NodeID
	To        lnwire.NodeID
}

// GraphEdge pairs a directed edge key with its announced policy and the
// channel's capacity, needed by the capacity_score term of the weight
// heuristic. Capacity is a property of the channel, not of either
// direction's policy, so it lives on the edge rather than on
// ChannelUpdate.
type GraphEdge struct {
	Desc     ChannelDesc
	Update   ChannelUpdate
	Capacity lnwire.MilliSatoshi
}

// ChannelEdge groups both possible directions of a single physical channel,
// as produced by a gossip snapshot before it is split into 0, 1 or 2
// GraphEdges.
type ChannelEdge struct {
	ChannelID lnwire.ChannelID
	Node1     lnwire.NodeID
	Node2     lnwire.NodeID
	Capacity  lnwire.MilliSatoshi

	// Policy1 is node1's outgoing policy (node1->node2); nil if never
	// announced. Policy2 is node2's outgoing policy (node2->node1).
	Policy1 *ChannelUpdate
	Policy2 *ChannelUpdate
}
