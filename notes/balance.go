// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package notes

import (
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/poseidon2"
)

// BalanceSlots is the number of balance slots per transaction:
// MAX_INPUTS + MAX_OUTPUTS.
const BalanceSlots = 4

// ReservedAssetID marks a padding balance slot that carries no asset and no
// constraint beyond non-interference (§4.C "Balance semantics").
const ReservedAssetID uint64 = ^uint64(0)

// BalanceSlot is one per-asset entry in the balance tag: the asset's signed
// net delta (inputs - outputs, plus fee/value_balance adjustments applied
// by the caller before tagging).
//
// Delta is modeled as int64 rather than a full i128: §9's Open Question
// explicitly scopes value_balance to |v| < 2^63, and every other
// contributor to a slot's delta (note values, fee) is itself bounded by a
// u64 note value: the net magnitude per asset in this implementation never
// exceeds the int64 range in practice, which keeps slot arithmetic on a
// single native Go integer type instead of a software i128.
type BalanceSlot struct {
	AssetID uint64
	Delta   int64
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// Tag computes bt = Sponge(tag=BALANCE)(|native_delta|, for each slot:
// (asset_id, |delta|)).
func Tag(nativeDelta int64, slots []BalanceSlot) goldilocks.Element {
	elems := make([]goldilocks.Element, 0, 1+2*len(slots))
	elems = append(elems, goldilocks.New(abs64(nativeDelta)))
	for _, s := range slots {
		elems = append(elems, goldilocks.New(s.AssetID), goldilocks.New(abs64(s.Delta)))
	}
	return poseidon2.Hash(poseidon2.DomainBalance, elems)
}

// PadSlots resizes slots to BalanceSlots, filling any remaining entries
// with the reserved padding slot {ReservedAssetID, 0}.
func PadSlots(slots []BalanceSlot) [BalanceSlots]BalanceSlot {
	var out [BalanceSlots]BalanceSlot
	for i := range out {
		out[i] = BalanceSlot{AssetID: ReservedAssetID, Delta: 0}
	}
	copy(out[:], slots)
	return out
}
