// Package route assembles the edge sequence the search layer discovers
// into the externally-visible Hop sequence and validates it end-to-end.
package route

import (
	"errors"

	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/lnwire"
)

// ErrEmptyPath indicates Assemble was called with no edges.
var ErrEmptyPath = errors.New("route: empty edge sequence")

// ErrInfeasibleHop indicates a hop's forwarded amount falls outside that
// hop's advertised HTLC bounds; Assemble refuses to build a Route that
// would forward an amount a hop cannot actually carry.
var ErrInfeasibleHop = errors.New("route: hop amount outside htlc bounds")

// Hop is one directed edge traversal in the assembled route.
type Hop struct {
	From       lnwire.NodeID
	To         lnwire.NodeID
	ChannelID  lnwire.ChannelID
	LastUpdate channeldb.ChannelUpdate

	// AmtToForward is the amount this hop forwards onward (i.e. the
	// amount arriving at To), used to re-derive per-hop fees without
	// walking the whole route again.
	AmtToForward lnwire.MilliSatoshi
}

// Route is the fully assembled, validated path plus its summary figures.
type Route struct {
	Hops        []Hop
	TotalAmount lnwire.MilliSatoshi // amount delivered to the final hop's To
	TotalCltv   lnwire.CltvDelta
	SourceAmt   lnwire.MilliSatoshi // amount that must leave the source
}

// TotalFees returns SourceAmt - TotalAmount: the sum of fees charged by
// every hop after the source's own outgoing edge. The source itself
// pays no fee on its own outgoing edge.
func (r *Route) TotalFees() lnwire.MilliSatoshi {
	return r.SourceAmt - r.TotalAmount
}

// Assemble converts an ordered edge sequence (source -> target, each
// entry carrying the amount that flows across it) into a validated
// Route. It is the sole place per-hop HTLC feasibility is checked
// against the final, concrete amounts rather than the search-time
// accumulator.
func Assemble(amount lnwire.MilliSatoshi, edges []*channeldb.GraphEdge, amounts []lnwire.MilliSatoshi) (*Route, error) {
	if len(edges) == 0 {
		return nil, ErrEmptyPath
	}
	if len(edges) != len(amounts) {
		panic("route: edges and amounts length mismatch")
	}

	hops := make([]Hop, 0, len(edges))
	var totalCltv lnwire.CltvDelta
	for i, e := range edges {
		amt := amounts[i]
		if !channeldb.EdgeFeasible(e.Update, amt) {
			return nil, ErrInfeasibleHop
		}
		// The source's own outgoing edge contributes no cltv_delta to
		// the route's timelock budget, matching the search accumulator
		// (see edgeContext.predecessorIsSource in routing/weight.go).
		if i > 0 {
			totalCltv += e.Update.CltvDelta
		}

		hops = append(hops, Hop{
			From:         e.Desc.From,
			To:           e.Desc.To,
			ChannelID:    e.Desc.ChannelID,
			LastUpdate:   e.Update,
			AmtToForward: amt,
		})
	}

	return &Route{
		Hops:        hops,
		TotalAmount: amount,
		TotalCltv:   totalCltv,
		SourceAmt:   amounts[0],
	}, nil
}
