package channeldb

import "github.com/lnpathfind/pathfind/lnwire"

// FeeFor computes the fee this direction charges to forward amount:
// fee_base + floor(amount * fee_prop_ppm / 1_000_000).
func FeeFor(update ChannelUpdate, amount lnwire.MilliSatoshi) lnwire.MilliSatoshi {
	return lnwire.FeeForAmount(update.FeeBase, update.FeeProportionalPPM, amount)
}

// EdgeFeasible reports whether amount lies within this direction's
// advertised HTLC bounds:
//
//	amount >= htlc_min && (no htlc_max || amount <= htlc_max)
//
// An edge whose HtlcMaxMsat is present but below HtlcMinMsat is always
// infeasible, regardless of amount: this is treated as a malformed edge
// rather than an attempt to infer the announcer's intent.
func EdgeFeasible(update ChannelUpdate, amount lnwire.MilliSatoshi) bool {
	if update.HasMax && update.HtlcMaxMsat < update.HtlcMinMsat {
		return false
	}
	if amount < update.HtlcMinMsat {
		return false
	}
	if update.HasMax && amount > update.HtlcMaxMsat {
		return false
	}

	return true
}
