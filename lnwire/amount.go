package lnwire

// MilliSatoshi is an amount expressed in integer millionths of a base
// unit. All routing arithmetic is performed on MilliSatoshi directly;
// there is no implicit conversion to a floating-point unit anywhere in
// the core.
type MilliSatoshi uint64

// CltvDelta is a relative timelock expressed in blocks.
type CltvDelta uint32

// BlockHeight is an absolute chain height.
type BlockHeight uint32

// FeeForAmount computes fee_base + floor(amount * feeProportionalPPM / 1e6),
// truncating toward zero. Arithmetic is done in uint64 to avoid overflow on
// realistic amounts; callers needing saturating behavior on pathological
// inputs should pre-validate amount bounds (see RouteParams.RouteMaxLength/
// RouteMaxCltv for analogous caps).
func FeeForAmount(feeBase MilliSatoshi, feeProportionalPPM uint32, amount MilliSatoshi) MilliSatoshi {
	proportional := (uint64(amount) * uint64(feeProportionalPPM)) / 1_000_000

	return feeBase + MilliSatoshi(proportional)
}
