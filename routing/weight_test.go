package routing

import (
	"testing"

	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/lnwire"
)

func TestRelaxSourceEdgeIsFeeFree(t *testing.T) {
	edge := &channeldb.GraphEdge{
		Update: channeldb.ChannelUpdate{FeeBase: 500, FeeProportionalPPM: 1000, CltvDelta: 40},
	}
	acc := RichWeight{Cost: 100_000}
	next := relax(edge, acc, edgeContext{predecessorIsSource: true})

	if next.Cost != acc.Cost {
		t.Fatalf("source's own edge must not add a fee, got cost %d from %d", next.Cost, acc.Cost)
	}
	if next.Cltv != 0 {
		t.Fatalf("source's own edge must not add cltv, got %d", next.Cltv)
	}
}

func TestRelaxNonSourceEdgeChargesFee(t *testing.T) {
	edge := &channeldb.GraphEdge{
		Update: channeldb.ChannelUpdate{FeeBase: 500, FeeProportionalPPM: 1000, CltvDelta: 40},
	}
	acc := RichWeight{Cost: 100_000}
	next := relax(edge, acc, edgeContext{predecessorIsSource: false})

	wantFee := channeldb.FeeFor(edge.Update, acc.Cost)
	if next.Cost != acc.Cost+wantFee {
		t.Fatalf("expected cost %d, got %d", acc.Cost+wantFee, next.Cost)
	}
	if next.Cltv != 40 {
		t.Fatalf("expected cltv 40, got %d", next.Cltv)
	}
}

func TestRelaxEnforcesMonotonicity(t *testing.T) {
	edge := &channeldb.GraphEdge{
		Update: channeldb.ChannelUpdate{FeeBase: 0, FeeProportionalPPM: 0, CltvDelta: 0},
	}
	acc := RichWeight{Cost: 0, Weight: 10}
	next := relax(edge, acc, edgeContext{predecessorIsSource: false})

	if next.Weight <= acc.Weight {
		t.Fatalf("monotonicity violated: next weight %v must exceed %v", next.Weight, acc.Weight)
	}
}

func TestRelaxWithRatiosProducesPositiveIncrement(t *testing.T) {
	edge := &channeldb.GraphEdge{
		Desc:     channeldb.ChannelDesc{ChannelID: lnwire.ChannelID(uint64(500000) << 40)},
		Update:   channeldb.ChannelUpdate{FeeBase: 100, CltvDelta: 80},
		Capacity: 2_000_000,
	}
	ratios := &WeightRatios{AgeFactor: 0.5, CltvDeltaFactor: 0.3, CapacityFactor: 0.2}
	acc := RichWeight{Cost: 50_000}
	next := relax(edge, acc, edgeContext{ratios: ratios, currentBlockHeight: 600_000})

	if next.Weight <= acc.Weight {
		t.Fatalf("expected weight to increase, got %v -> %v", acc.Weight, next.Weight)
	}
}

func TestCapacityScoreBounds(t *testing.T) {
	if got := capacityScore(0); got != 1 {
		t.Fatalf("zero-capacity channels should score the full penalty 1, got %v", got)
	}
	if got := capacityScore(CapacityMax * 2); got != 0 {
		t.Fatalf("capacity at/above CapacityMax should score 0, got %v", got)
	}
}

func TestCltvScoreBounds(t *testing.T) {
	if got := cltvScore(0); got != 0 {
		t.Fatalf("zero cltv should score 0, got %v", got)
	}
	if got := cltvScore(CLTVMax * 2); got != 1 {
		t.Fatalf("cltv at/above CLTVMax should score 1, got %v", got)
	}
}
