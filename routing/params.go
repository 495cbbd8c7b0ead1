package routing

import (
	"math/rand"

	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/lnwire"
)

// routeMaxLengthHardCap is the absolute ceiling on hop count regardless of
// what RouteParams.RouteMaxLength requests.
const routeMaxLengthHardCap = 20

// RouteParams is the per-query configuration.
type RouteParams struct {
	// Randomize, when true, draws Yen's next candidate uniformly from
	// the top candidates of the candidate heap instead of always taking
	// the minimum. Rng must be set when Randomize is true; it is the
	// caller-supplied seeded source needed for reproducible tests.
	Randomize bool
	Rng       *rand.Rand

	// MaxFeeBase and MaxFeePct gate fee acceptance: a route is
	// acceptable if its total fee <= MaxFeeBase OR fee/amount <=
	// MaxFeePct. The search never reads these fields itself — per
	// spec, applying the ceiling is the caller's discretion, done
	// after assembly. Callers enforcing it should call
	// YenKShortestPaths directly and check WeightedPath.Route.TotalFees()
	// against these fields; Session.FindRoute/FindRoute discard the
	// assembled Route and so cannot apply this check themselves.
	MaxFeeBase lnwire.MilliSatoshi
	MaxFeePct  float64

	// RouteMaxCltv upper-bounds summed cltv_delta.
	RouteMaxCltv lnwire.CltvDelta

	// RouteMaxLength upper-bounds hop count; always additionally capped
	// at 20 (EffectiveMaxLength).
	RouteMaxLength int

	// Ratios, if non-nil, enables the multi-factor weight heuristic.
	Ratios *WeightRatios

	// CurrentBlockHeight is the explicit chain tip used by the age
	// heuristic. The core never reads a package-level block height.
	CurrentBlockHeight lnwire.BlockHeight
}

// EffectiveMaxLength returns min(RouteMaxLength, 20); a zero or negative
// RouteMaxLength is treated as "use the hard cap".
func (p *RouteParams) EffectiveMaxLength() int {
	if p.RouteMaxLength <= 0 || p.RouteMaxLength > routeMaxLengthHardCap {
		return routeMaxLengthHardCap
	}

	return p.RouteMaxLength
}

// Restrictions bundles the per-search blacklists and hints passed into
// the search: ignored edges/vertices/channels and extra ("assisted")
// edges that override same-keyed graph edges for this search only.
type Restrictions struct {
	IgnoredEdges    map[channeldb.ChannelDesc]struct{}
	IgnoredVertices map[lnwire.NodeID]struct{}
	IgnoredChannels map[lnwire.ChannelID]struct{}
	ExtraEdges      map[channeldb.ChannelDesc]*channeldb.GraphEdge
}

// isRejected reports whether desc/channel/fromVertex are blacklisted for
// this search, or whether u == v (a self-referencing edge is always
// rejected).
func (r *Restrictions) isRejected(desc channeldb.ChannelDesc) bool {
	if desc.From == desc.To {
		return true
	}
	if r == nil {
		return false
	}
	if _, ok := r.IgnoredEdges[desc]; ok {
		return true
	}
	if _, ok := r.IgnoredChannels[desc.ChannelID]; ok {
		return true
	}
	if _, ok := r.IgnoredVertices[desc.From]; ok {
		return true
	}

	return false
}

// candidateEdges returns the union of g.Incoming(v) and any extra edge
// targeting v, with extra edges overriding same-keyed graph edges.
func candidateEdges(incoming []*channeldb.GraphEdge, v lnwire.NodeID, r *Restrictions) []*channeldb.GraphEdge {
	if r == nil || len(r.ExtraEdges) == 0 {
		return incoming
	}

	byDesc := make(map[channeldb.ChannelDesc]*channeldb.GraphEdge, len(incoming))
	for _, e := range incoming {
		byDesc[e.Desc] = e
	}
	for desc, e := range r.ExtraEdges {
		if desc.To == v {
			byDesc[desc] = e
		}
	}

	out := make([]*channeldb.GraphEdge, 0, len(byDesc))
	for _, e := range byDesc {
		out = append(out, e)
	}

	return out
}
