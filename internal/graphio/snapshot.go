// Package graphio decodes a gossip-style channel snapshot into the
// in-memory channel graph the search layer operates on. It is the
// boundary that lets core.DirectedGraph stay a pure in-memory structure
// with no notion of a database or wire format of its own.
package graphio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lnpathfind/pathfind/channeldb"
	"github.com/lnpathfind/pathfind/core"
	"github.com/lnpathfind/pathfind/lnwire"
)

// policyRecord mirrors one direction's announced channel_update fields in
// the JSON snapshot.
type policyRecord struct {
	FeeBaseMsat               uint64 `json:"fee_base_msat"`
	FeeProportionalMillionths uint32 `json:"fee_proportional_millionths"`
	CltvExpiryDelta           uint32 `json:"cltv_expiry_delta"`
	HtlcMinimumMsat           uint64 `json:"htlc_minimum_msat"`
	HtlcMaximumMsat           *uint64 `json:"htlc_maximum_msat,omitempty"`
	LastUpdate                uint64 `json:"last_update"`
}

// channelRecord is one entry of the snapshot array: a channel and up to
// two directional policies.
type channelRecord struct {
	ChannelID    uint64        `json:"channel_id"`
	Node1        string        `json:"node1"`
	Node2        string        `json:"node2"`
	CapacityMsat uint64        `json:"capacity_msat"`
	Node1Policy  *policyRecord `json:"node1_policy,omitempty"`
	Node2Policy  *policyRecord `json:"node2_policy,omitempty"`
}

// LoadSnapshot decodes a JSON array of channelRecord into a freshly built
// graph. Each record contributes 0, 1 or 2 directed edges depending on
// which policies are present; direction bits follow lexicographic NodeID
// order, independent of which field in the JSON is labeled node1/node2.
func LoadSnapshot(r io.Reader) (*core.DirectedGraph, error) {
	var records []channelRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("graphio: decode snapshot: %w", err)
	}

	g := core.New()

	for _, rec := range records {
		node1, err := lnwire.NodeIDFromHex(rec.Node1)
		if err != nil {
			return nil, fmt.Errorf("graphio: channel %d node1: %w", rec.ChannelID, err)
		}
		node2, err := lnwire.NodeIDFromHex(rec.Node2)
		if err != nil {
			return nil, fmt.Errorf("graphio: channel %d node2: %w", rec.ChannelID, err)
		}

		lo, hi := node1, node2
		loPolicy, hiPolicy := rec.Node1Policy, rec.Node2Policy
		if !node1.Less(node2) {
			lo, hi = node2, node1
			loPolicy, hiPolicy = rec.Node2Policy, rec.Node1Policy
		}

		capacity := lnwire.MilliSatoshi(rec.CapacityMsat)
		cid := lnwire.ChannelID(rec.ChannelID)

		if loPolicy != nil {
			desc := channeldb.ChannelDesc{ChannelID: cid, From: lo, To: hi}
			g.AddEdge(desc, toChannelUpdate(loPolicy, 0), capacity)
		}
		if hiPolicy != nil {
			desc := channeldb.ChannelDesc{ChannelID: cid, From: hi, To: lo}
			g.AddEdge(desc, toChannelUpdate(hiPolicy, 1), capacity)
		}
		if loPolicy == nil && hiPolicy == nil {
			g.AddVertex(lo)
			g.AddVertex(hi)
		}
	}

	return g, nil
}

func toChannelUpdate(p *policyRecord, directionBit uint8) channeldb.ChannelUpdate {
	u := channeldb.ChannelUpdate{
		FeeBase:            lnwire.MilliSatoshi(p.FeeBaseMsat),
		FeeProportionalPPM: p.FeeProportionalMillionths,
		CltvDelta:          lnwire.CltvDelta(p.CltvExpiryDelta),
		HtlcMinMsat:        lnwire.MilliSatoshi(p.HtlcMinimumMsat),
		Timestamp:          p.LastUpdate,
		DirectionBit:       directionBit,
	}
	if p.HtlcMaximumMsat != nil {
		u.HasMax = true
		u.HtlcMaxMsat = lnwire.MilliSatoshi(*p.HtlcMaximumMsat)
	}

	return u
}
