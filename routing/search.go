// File: search.go
// Role: the package's external surface: the single-path entry point that
// the rest of the node calls, plus the assisted-route hint conversion it
// composes with.
package routing

import (
	"context"
	"time"

	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/core"
	"github.com/lnpathfind/pathfind/lnwire"
	"github.com/lnpathfind/pathfind/routing/route"
)

// Session bundles the optional, non-semantic instrumentation threaded
// through a search: metrics are never required and never change which
// route is returned.
type Session struct {
	Metrics *Metrics
}

// FindRoute is the primary entry point: it runs the backward search via
// YenKShortestPaths with k = numRoutes candidates, then returns exactly
// one of them as a Hop sequence. With
// params.Randomize == false the choice is deterministic (the cheapest
// candidate); with it true, uniform over the candidates actually returned.
func (s *Session) FindRoute(
	ctx context.Context,
	g *core.DirectedGraph,
	src, dst lnwire.NodeID,
	amt lnwire.MilliSatoshi,
	numRoutes int,
	restrictions *Restrictions,
	params *RouteParams,
) ([]route.Hop, error) {

	start := time.Now()
	if numRoutes <= 0 {
		numRoutes = 1
	}

	paths, err := YenKShortestPaths(ctx, g, src, dst, amt, numRoutes, restrictions, params)
	if err != nil {
		s.metrics().observeSearch("error", start)
		return nil, err
	}
	if len(paths) == 0 {
		s.metrics().observeSearch("not_found", start)
		return nil, ErrRouteNotFound
	}

	s.metrics().observeSearch("success", start)
	s.metrics().observeRoutesReturned(len(paths))

	chosen := paths[0]
	if params.Randomize && params.Rng != nil && len(paths) > 1 {
		chosen = paths[params.Rng.Intn(len(paths))]
	}

	return chosen.Route.Hops, nil
}

func (s *Session) metrics() *Metrics {
	if s == nil {
		return nil
	}

	return s.Metrics
}

// FindRoute is the package-level convenience wrapper over a zero-value
// Session, for callers that don't need metrics.
func FindRoute(
	ctx context.Context,
	g *core.DirectedGraph,
	src, dst lnwire.NodeID,
	amt lnwire.MilliSatoshi,
	numRoutes int,
	restrictions *Restrictions,
	params *RouteParams,
) ([]route.Hop, error) {
	var s *Session

	return s.FindRoute(ctx, g, src, dst, amt, numRoutes, restrictions, params)
}

// HopHint is a single entry of an invoice's routing hint: one private or
// unadvertised channel a payer may use to reach the invoice's destination.
type HopHint struct {
	NodeID                    lnwire.NodeID
	ChannelID                 lnwire.ChannelID
	FeeBaseMsat               lnwire.MilliSatoshi
	FeeProportionalMillionths uint32
	CltvExpiryDelta           lnwire.CltvDelta
}

// AssistedChannelsFromHints converts a decoded invoice's routing hints
// (one slice per alternate hint path, each a chain of hops ending at
// target) into channeldb.ChannelEdge records keyed by short channel ID,
// chaining each hint's hops so that hint[i].NodeID is the *sender* of the
// edge leading to hint[i+1], and the final hop in each chain leads to
// target. The result is not in the ChannelDesc-keyed GraphEdge form that
// Restrictions.ExtraEdges takes; this package does not convert it.
func AssistedChannelsFromHints(hints [][]HopHint, target lnwire.NodeID) map[lnwire.ShortChannelID]*channeldb.ChannelEdge {
	out := make(map[lnwire.ShortChannelID]*channeldb.ChannelEdge)

	for _, chain := range hints {
		to := target
		for i := len(chain) - 1; i >= 0; i-- {
			hop := chain[i]
			update := channeldb.ChannelUpdate{
				FeeBase:            hop.FeeBaseMsat,
				FeeProportionalPPM: hop.FeeProportionalMillionths,
				CltvDelta:          hop.CltvExpiryDelta,
				HtlcMinMsat:        0,
				HasMax:             false,
			}

			scid := lnwire.NewShortChanIDFromInt(hop.ChannelID)
			out[scid] = &channeldb.ChannelEdge{
				ChannelID: hop.ChannelID,
				Node1:     hop.NodeID,
				Node2:     to,
				Policy1:   &update,
			}

			to = hop.NodeID
		}
	}

	return out
}
