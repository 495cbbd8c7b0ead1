// File: yen.go
// Role: Yen's loopless K-shortest-paths enumerator, built on top of
// backwardSearch as its "shortest path with restrictions" subroutine, in
// the same root/spur decomposition the algorithm is always described
// with.
package routing

import (
	"context"
	"sort"

	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/core"
	"github.com/lnpathfind/pathfind/lnwire"
	"github.com/lnpathfind/pathfind/routing/route"
)

// candidatePath is one entry in Yen's B heap: a full source->target edge
// sequence plus the per-edge forwarded amounts and its total weight.
type candidatePath struct {
	edges   []*channeldb.GraphEdge
	amounts []lnwire.MilliSatoshi
	weight  float64
}

// yenKey returns a deterministic, comparable signature for a path so
// duplicate candidates can be recognized regardless of slice identity.
func yenKey(edges []*channeldb.GraphEdge) string {
	buf := make([]byte, 0, len(edges)*9)
	for _, e := range edges {
		id := uint64(e.Desc.ChannelID)
		buf = append(buf,
			byte(id>>56), byte(id>>48), byte(id>>40), byte(id>>32),
			byte(id>>24), byte(id>>16), byte(id>>8), byte(id), ':')
	}

	return string(buf)
}

// YenKShortestPaths enumerates up to numRoutes loopless paths from source
// to target in increasing weight order. The first path (A0) is the
// unrestricted shortest path; each subsequent path is obtained by
// taking a "spur" off a previously accepted path's prefix with that
// prefix's edges excluded from the graph view for that one sub-search.
func YenKShortestPaths(
	ctx context.Context,
	g *core.DirectedGraph,
	source, target lnwire.NodeID,
	amount lnwire.MilliSatoshi,
	numRoutes int,
	restrictions *Restrictions,
	params *RouteParams,
) ([]WeightedPath, error) {

	if numRoutes <= 0 {
		return nil, nil
	}

	first, err := backwardSearch(ctx, g, source, target, amount, restrictions, nil, params)
	if err != nil {
		return nil, err
	}

	accepted := []*candidatePath{{edges: first.edges, amounts: first.amounts, weight: first.weight}}
	seen := map[string]struct{}{yenKey(first.edges): {}}

	var candidates []*candidatePath

	for len(accepted) < numRoutes {
		select {
		case <-ctx.Done():
			return nil, ErrCancelled
		default:
		}

		prev := accepted[len(accepted)-1]

		for spurIdx := 0; spurIdx < len(prev.edges); spurIdx++ {
			spurNode := prev.edges[spurIdx].Desc.From
			rootEdges := prev.edges[:spurIdx]
			rootKey := yenKey(rootEdges)

			spurRestrictions := restrictionsWithRoot(restrictions, accepted, rootEdges, rootKey, rootEdgeVertices(rootEdges, source, spurNode))

			spurResult, err := backwardSearch(ctx, g, spurNode, target, amount, spurRestrictions, nil, params)
			if err != nil {
				if err == ErrCancelled {
					return nil, err
				}
				continue
			}

			fullEdges := append(append([]*channeldb.GraphEdge{}, rootEdges...), spurResult.edges...)
			key := yenKey(fullEdges)
			if _, dup := seen[key]; dup {
				continue
			}

			fullAmounts := assembleRootAmounts(rootEdges, spurResult)
			candidates = append(candidates, &candidatePath{
				edges:   fullEdges,
				amounts: fullAmounts,
				weight:  recomputeWeight(fullEdges, amount, source, params),
			})
			seen[key] = struct{}{}
		}

		if len(candidates) == 0 {
			break
		}

		next := pickCandidate(candidates, params)
		accepted = append(accepted, next)
		candidates = removeCandidate(candidates, next)
	}

	return routesFrom(amount, accepted), nil
}

// pickCandidate selects the next accepted path from the candidate list: the
// strict minimum-weight entry when params.Randomize is false, or a uniform
// draw among the lowest-weight candidates (capped at 3) when true.
func pickCandidate(candidates []*candidatePath, params *RouteParams) *candidatePath {
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].weight != candidates[j].weight {
			return candidates[i].weight < candidates[j].weight
		}

		return yenKey(candidates[i].edges) < yenKey(candidates[j].edges)
	})

	if !params.Randomize || params.Rng == nil || len(candidates) == 1 {
		return candidates[0]
	}

	top := len(candidates)
	if top > 3 {
		top = 3
	}

	return candidates[params.Rng.Intn(top)]
}

func removeCandidate(candidates []*candidatePath, target *candidatePath) []*candidatePath {
	out := make([]*candidatePath, 0, len(candidates)-1)
	for _, c := range candidates {
		if c != target {
			out = append(out, c)
		}
	}

	return out
}

// restrictionsWithRoot builds the per-spur Restrictions: for every
// previously accepted path sharing this root, the edge it takes right after
// the root (out of the spur node) is blacklisted, and every vertex already
// used in the root (besides the spur node) is blacklisted, enforcing
// Yen's loopless guarantee.
func restrictionsWithRoot(
	base *Restrictions,
	accepted []*candidatePath,
	rootEdges []*channeldb.GraphEdge,
	rootKey string,
	rootVertices map[lnwire.NodeID]struct{},
) *Restrictions {

	out := &Restrictions{
		IgnoredEdges:    make(map[channeldb.ChannelDesc]struct{}),
		IgnoredVertices: make(map[lnwire.NodeID]struct{}),
		IgnoredChannels: make(map[lnwire.ChannelID]struct{}),
		ExtraEdges:      make(map[channeldb.ChannelDesc]*channeldb.GraphEdge),
	}
	if base != nil {
		for k, v := range base.IgnoredEdges {
			out.IgnoredEdges[k] = v
		}
		for k, v := range base.IgnoredVertices {
			out.IgnoredVertices[k] = v
		}
		for k, v := range base.IgnoredChannels {
			out.IgnoredChannels[k] = v
		}
		for k, v := range base.ExtraEdges {
			out.ExtraEdges[k] = v
		}
	}

	for v := range rootVertices {
		out.IgnoredVertices[v] = struct{}{}
	}

	for _, p := range accepted {
		if len(p.edges) <= len(rootEdges) {
			continue
		}
		if yenKey(p.edges[:len(rootEdges)]) != rootKey {
			continue
		}
		out.IgnoredEdges[p.edges[len(rootEdges)].Desc] = struct{}{}
	}

	return out
}

// rootEdgeVertices returns every vertex strictly inside the root path
// (source plus each intermediate hop's To), excluding spurNode itself:
// spurNode is the spur sub-search's own source, so it must stay eligible
// as the first vertex that search relaxes away from.
func rootEdgeVertices(rootEdges []*channeldb.GraphEdge, source, spurNode lnwire.NodeID) map[lnwire.NodeID]struct{} {
	out := map[lnwire.NodeID]struct{}{source: {}}
	for _, e := range rootEdges {
		out[e.Desc.To] = struct{}{}
	}
	delete(out, spurNode)

	return out
}

// assembleRootAmounts returns the per-edge forwarded amounts of a spliced
// root+spur path: the spur's amounts as its search found them, and each
// root edge's amount re-derived backward from the spur by adding the fee
// charged on the edge that follows it.
func assembleRootAmounts(rootEdges []*channeldb.GraphEdge, spur *searchResult) []lnwire.MilliSatoshi {
	out := make([]lnwire.MilliSatoshi, len(rootEdges)+len(spur.amounts))
	copy(out[len(rootEdges):], spur.amounts)
	for i := len(rootEdges) - 1; i >= 0; i-- {
		next := spur.edges[0]
		if i+1 < len(rootEdges) {
			next = rootEdges[i+1]
		}
		out[i] = out[i+1] + channeldb.FeeFor(next.Update, out[i+1])
	}

	return out
}

// recomputeWeight re-derives a spliced root+spur path's total weight by
// replaying relax across its edges from target back to source, exactly as
// backwardSearch would have, rather than trying to sum two partial
// accumulators that were never on the same RichWeight chain.
func recomputeWeight(edges []*channeldb.GraphEdge, amount lnwire.MilliSatoshi, source lnwire.NodeID, params *RouteParams) float64 {
	acc := RichWeight{Cost: amount}
	for i := len(edges) - 1; i >= 0; i-- {
		e := edges[i]
		ctx := edgeContext{
			predecessorIsSource: e.Desc.From == source,
			currentBlockHeight:  params.CurrentBlockHeight,
			ratios:              params.Ratios,
		}
		acc = relax(e, acc, ctx)
	}

	return acc.Weight
}

// WeightedPath pairs an assembled Route with the search weight that
// ordered it among its siblings, so callers comparing candidates don't
// need to re-derive RichWeight from the Route alone.
type WeightedPath struct {
	Route  *route.Route
	Weight float64
}

func routesFrom(amount lnwire.MilliSatoshi, candidates []*candidatePath) []WeightedPath {
	out := make([]WeightedPath, 0, len(candidates))
	for _, c := range candidates {
		r, err := route.Assemble(amount, c.edges, c.amounts)
		if err != nil {
			continue
		}
		out = append(out, WeightedPath{Route: r, Weight: c.weight})
	}

	return out
}
