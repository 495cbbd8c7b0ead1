package lnwire

import (
	"bytes"
	"encoding/hex"
	"errors"

	"github.com/btcsuite/btcd/btcec/v2"
)

// ErrInvalidNodeID indicates that a byte slice is not a valid compressed
// secp256k1 public key and therefore cannot identify a node.
var ErrInvalidNodeID = errors.New("lnwire: invalid 33-byte node public key")

// NodeID is an opaque 33-byte compressed public key identifying a node in
// the channel graph. Equality is byte comparison; total order is
// byte-lexicographic, used to disambiguate channel direction.
type NodeID [33]byte

// NewNodeID parses a 33-byte compressed secp256k1 public key into a NodeID.
// Parsing (not signature verification) is performed so malformed gossip
// input is rejected the same way a real node rejects it before the key
// ever reaches the graph.
func NewNodeID(pubKey [33]byte) (NodeID, error) {
	if _, err := btcec.ParsePubKey(pubKey[:]); err != nil {
		return NodeID{}, ErrInvalidNodeID
	}

	return NodeID(pubKey), nil
}

// MustNodeID is like NewNodeID but panics on invalid input. Intended for
// table-driven tests and static fixtures only.
func MustNodeID(pubKey [33]byte) NodeID {
	n, err := NewNodeID(pubKey)
	if err != nil {
		panic(err)
	}

	return n
}

// NodeIDFromHex decodes a hex-encoded compressed public key.
func NodeIDFromHex(s string) (NodeID, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return NodeID{}, err
	}
	if len(b) != 33 {
		return NodeID{}, ErrInvalidNodeID
	}
	var raw [33]byte
	copy(raw[:], b)

	return NewNodeID(raw)
}

// Less reports whether n sorts strictly before other under byte-lexicographic
// order. This order is authoritative for the "node1/node2" direction-bit
// disambiguation used when a channel snapshot is loaded into the graph.
func (n NodeID) Less(other NodeID) bool {
	return bytes.Compare(n[:], other[:]) < 0
}

// String returns the lowercase hex encoding of the node's public key.
func (n NodeID) String() string {
	return hex.EncodeToString(n[:])
}

// IsZero reports whether n is the zero value (no node set).
func (n NodeID) IsZero() bool {
	return n == NodeID{}
}
