package graphio_test

import (
	"strings"
	"testing"

	"github.com/lnpathfind/pathfind/internal/graphio"
)

const nodeA = "020000000000000000000000000000000000000000000000000000000000000001"
const nodeB = "030000000000000000000000000000000000000000000000000000000000000002"

func TestLoadSnapshotBuildsBothDirections(t *testing.T) {
	snapshot := `[{
		"channel_id": 12345,
		"node1": "` + nodeA + `",
		"node2": "` + nodeB + `",
		"capacity_msat": 5000000,
		"node1_policy": {"fee_base_msat": 1000, "fee_proportional_millionths": 1, "cltv_expiry_delta": 40, "htlc_minimum_msat": 1},
		"node2_policy": {"fee_base_msat": 2000, "fee_proportional_millionths": 2, "cltv_expiry_delta": 80, "htlc_minimum_msat": 1}
	}]`

	g, err := graphio.LoadSnapshot(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Fatalf("expected 2 directed edges, got %d", g.EdgeCount())
	}
	if g.VertexCount() != 2 {
		t.Fatalf("expected 2 vertices, got %d", g.VertexCount())
	}
}

func TestLoadSnapshotSingleDirection(t *testing.T) {
	snapshot := `[{
		"channel_id": 1,
		"node1": "` + nodeA + `",
		"node2": "` + nodeB + `",
		"capacity_msat": 1000000,
		"node1_policy": {"fee_base_msat": 1000, "fee_proportional_millionths": 1, "cltv_expiry_delta": 40, "htlc_minimum_msat": 1}
	}]`

	g, err := graphio.LoadSnapshot(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("expected 1 directed edge, got %d", g.EdgeCount())
	}
}

func TestLoadSnapshotNoPolicyKeepsVerticesOnly(t *testing.T) {
	snapshot := `[{
		"channel_id": 1,
		"node1": "` + nodeA + `",
		"node2": "` + nodeB + `",
		"capacity_msat": 1000000
	}]`

	g, err := graphio.LoadSnapshot(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("expected 0 edges, got %d", g.EdgeCount())
	}
	if g.VertexCount() != 2 {
		t.Fatalf("expected 2 vertices, got %d", g.VertexCount())
	}
}

func TestLoadSnapshotRejectsMalformedNodeID(t *testing.T) {
	snapshot := `[{"channel_id": 1, "node1": "nothex", "node2": "` + nodeB + `", "capacity_msat": 1}]`

	if _, err := graphio.LoadSnapshot(strings.NewReader(snapshot)); err == nil {
		t.Fatalf("expected an error for a malformed node1 hex string")
	}
}
