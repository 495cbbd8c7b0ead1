package routing

import (
	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/lnwire"
)

// Reference constants for the multi-factor weight heuristic: these exact
// values must match the reference implementation; changing them needs
// accompanying regression tests.
const (
	// CLTVMax normalizes cltv_delta into a [0,1] score.
	CLTVMax = 2016

	// BlockMax approximates two years of blocks, normalizing channel
	// age into a [0,1] score.
	BlockMax = 105_120

	// CapacityMax normalizes channel capacity into a [0,1] score.
	CapacityMax lnwire.MilliSatoshi = 8_000_000_000
)

// minPositiveWeight is the epsilon substituted for a relaxation that would
// otherwise produce a non-positive weight increment, preserving the
// monotonicity invariant the priority queue relies on.
const minPositiveWeight = 1e-9

// WeightRatios are the three non-negative factors that, when present,
// enable the multi-factor edge-cost heuristic instead of pure fee-cost
// ordering.
type WeightRatios struct {
	AgeFactor      float64
	CltvDeltaFactor float64
	CapacityFactor float64
}

// RichWeight is the path accumulator carried by the backward search.
type RichWeight struct {
	// Cost is the amount that must enter this vertex to deliver the
	// payment to the target along the partial path already explored.
	Cost lnwire.MilliSatoshi

	// Cltv is the sum of downstream cltv_delta values.
	Cltv lnwire.CltvDelta

	// Length is the number of hops from this vertex to the target.
	Length int

	// Weight is the Dijkstra priority key.
	Weight float64
}

// edgeContext carries the information relax needs beyond the edge and the
// current accumulator: whether the relaxed predecessor is the query's
// source (which pays no fee on its own outgoing edge) and the current
// block height for the age heuristic.
type edgeContext struct {
	predecessorIsSource bool
	currentBlockHeight  lnwire.BlockHeight
	ratios              *WeightRatios
}

// relax computes the tentative accumulator at the edge's "from" vertex
// (upstream, since the search runs backward) given the current
// accumulator at the edge's "to" vertex.
func relax(edge *channeldb.GraphEdge, acc RichWeight, ctx edgeContext) RichWeight {
	var fee lnwire.MilliSatoshi
	var cltvDelta lnwire.CltvDelta
	if !ctx.predecessorIsSource {
		fee = channeldb.FeeFor(edge.Update, acc.Cost)
		cltvDelta = edge.Update.CltvDelta
	}

	next := RichWeight{
		Cost:   acc.Cost + fee,
		Cltv:   acc.Cltv + cltvDelta,
		Length: acc.Length + 1,
	}

	switch {
	case ctx.ratios == nil:
		next.Weight = acc.Weight + float64(fee)
		if ctx.predecessorIsSource && fee == 0 {
			next.Weight = acc.Weight + minPositiveWeight
		}
	default:
		hopWeight := 1 +
			ageScore(edge.Desc.ChannelID, ctx.currentBlockHeight)*ctx.ratios.AgeFactor +
			cltvScore(edge.Update.CltvDelta)*ctx.ratios.CltvDeltaFactor +
			capacityScore(edge.Capacity)*ctx.ratios.CapacityFactor

		increment := hopWeight * float64(fee)
		if increment <= 0 {
			increment = minPositiveWeight
		}
		next.Weight = acc.Weight + increment
	}

	// Enforce monotonicity regardless of how degenerate the inputs were;
	// a non-increasing key would make Dijkstra loop.
	if next.Weight <= acc.Weight {
		next.Weight = acc.Weight + minPositiveWeight
	}

	return next
}

// cltvScore normalizes a hop's timelock contribution into [0,1].
func cltvScore(delta lnwire.CltvDelta) float64 {
	score := float64(delta) / float64(CLTVMax)
	if score > 1 {
		return 1
	}

	return score
}

// ageScore rewards older channels with a lower penalty: younger channels
// score higher (closer to 1), older channels score lower (closer to 0),
// so that — combined with relax's hop_weight formula — an older channel
// wins all else equal.
func ageScore(id lnwire.ChannelID, currentHeight lnwire.BlockHeight) float64 {
	channelHeight := lnwire.BlockHeight(lnwire.NewShortChanIDFromInt(id).BlockHeight)
	if channelHeight > currentHeight {
		return 0
	}
	blockAge := currentHeight - channelHeight
	ratio := float64(blockAge) / float64(BlockMax)
	if ratio > 1 {
		ratio = 1
	}

	return 1 - ratio
}

// capacityScore rewards larger-capacity channels with a lower penalty.
func capacityScore(capacity lnwire.MilliSatoshi) float64 {
	ratio := float64(capacity) / float64(CapacityMax)
	if ratio > 1 {
		ratio = 1
	}

	return 1 - ratio
}
