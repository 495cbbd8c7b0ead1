package route_test

import (
	"errors"
	"testing"

	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/lnwire"
	"github.com/lnpathfind/pathfind/routing/route"
)

func node(b byte) lnwire.NodeID {
	var raw [33]byte
	raw[32] = b

	return lnwire.NodeID(raw)
}

func TestAssembleRejectsEmptyPath(t *testing.T) {
	_, err := route.Assemble(1000, nil, nil)
	if !errors.Is(err, route.ErrEmptyPath) {
		t.Fatalf("expected ErrEmptyPath, got %v", err)
	}
}

func TestAssembleComputesTotalFees(t *testing.T) {
	a, b, c := node(1), node(2), node(3)
	edges := []*channeldb.GraphEdge{
		{Desc: channeldb.ChannelDesc{ChannelID: 1, From: a, To: b}, Update: channeldb.ChannelUpdate{HtlcMinMsat: 0}},
		{Desc: channeldb.ChannelDesc{ChannelID: 2, From: b, To: c}, Update: channeldb.ChannelUpdate{HtlcMinMsat: 0}},
	}
	amounts := []lnwire.MilliSatoshi{1200, 1000}

	r, err := route.Assemble(1000, edges, amounts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.SourceAmt != 1200 {
		t.Fatalf("expected SourceAmt 1200, got %d", r.SourceAmt)
	}
	if r.TotalAmount != 1000 {
		t.Fatalf("expected TotalAmount 1000, got %d", r.TotalAmount)
	}
	if r.TotalFees() != 200 {
		t.Fatalf("expected total fees 200, got %d", r.TotalFees())
	}
}

func TestAssembleRejectsInfeasibleHop(t *testing.T) {
	a, b := node(1), node(2)
	edges := []*channeldb.GraphEdge{
		{Desc: channeldb.ChannelDesc{ChannelID: 1, From: a, To: b}, Update: channeldb.ChannelUpdate{HtlcMinMsat: 5000}},
	}
	amounts := []lnwire.MilliSatoshi{100}

	_, err := route.Assemble(1000, edges, amounts)
	if !errors.Is(err, route.ErrInfeasibleHop) {
		t.Fatalf("expected ErrInfeasibleHop, got %v", err)
	}
}
