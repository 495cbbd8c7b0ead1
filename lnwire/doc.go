// Package lnwire defines the numeric and identity primitives shared by the
// routing core: NodeID (an opaque compressed public key), ShortChannelID
// (the block-height/tx-index/output-index encoding of a channel ID),
// MilliSatoshi amounts, CltvDelta and BlockHeight.
//
// None of these types know about the channel graph or the search
// algorithms; they exist so that every other package can talk about
// "a node", "a channel" and "an amount" without reaching for bare strings
// or untyped integers.
package lnwire
