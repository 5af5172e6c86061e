// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txcircuit

import (
	"sort"

	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/notes"
	"github.com/hegemon/zkstack/version"
)

// InputNoteWitness is one spent note: the note itself, its Merkle
// authentication path against the transaction's anchor, its tree position
// (fed into the nullifier derivation), and the spending key whose PRF
// derives the nullifier.
type InputNoteWitness struct {
	Note     notes.Note
	Path     notes.AuthPath
	Position uint64
	SkSpend  [32]byte
}

// OutputNoteWitness is one newly created note.
type OutputNoteWitness struct {
	Note notes.Note
}

// Witness is the complete private input to a single transaction proof
// (§3's "Note" and witness-invariants subsections).
type Witness struct {
	MerkleRoot   goldilocks.Element
	Inputs       []InputNoteWitness
	Outputs      []OutputNoteWitness
	Fee          uint64
	ValueBalance int64
	Version      version.Binding
}

// FromWitness validates w against every invariant named in §4.C and
// original_source/circuits/transaction/src/error.rs, then derives the
// Trace and PublicInputs a proof publishes. It is the Go analogue of
// original_source's check_constraints: all cryptographic and arithmetic
// re-derivation happens here, in ordinary Go control flow, rather than as
// a degree-bounded polynomial constraint — a deliberate, documented
// simplification (see the txcircuit package doc comment).
func FromWitness(w Witness) (*Trace, PublicInputs, error) {
	if len(w.Inputs) > MaxInputs {
		return nil, PublicInputs{}, &Error{Kind: TooManyInputs, Index: len(w.Inputs)}
	}
	if len(w.Outputs) > MaxOutputs {
		return nil, PublicInputs{}, &Error{Kind: TooManyOutputs, Index: len(w.Outputs)}
	}
	if w.ValueBalance == -1<<63 {
		return nil, PublicInputs{}, &Error{Kind: ValueBalanceOutOfRange, Detail: "value_balance == -2^63 is rejected"}
	}

	for i, in := range w.Inputs {
		if in.Note.Value >= goldilocks.Modulus {
			return nil, PublicInputs{}, &Error{Kind: ValueOutOfRange, Index: i, Detail: "input note value exceeds the field"}
		}
	}
	for i, out := range w.Outputs {
		if out.Note.Value >= goldilocks.Modulus {
			return nil, PublicInputs{}, &Error{Kind: ValueOutOfRange, Index: i, Detail: "output note value exceeds the field"}
		}
	}

	nullifiers := make([]goldilocks.Element, len(w.Inputs))
	for i, in := range w.Inputs {
		leaf := notes.Commitment(in.Note)
		if root := notes.Reconstruct(leaf, in.Path); root != w.MerkleRoot {
			return nil, PublicInputs{}, &Error{Kind: ConstraintViolation, Detail: "input note not present under the transaction's anchor"}
		}
		prfKey := notes.PRFKey(in.SkSpend)
		nf := notes.Nullifier(prfKey, in.Position, in.Note.Rho)
		if nf.IsZero() {
			return nil, PublicInputs{}, &Error{Kind: ZeroNullifier, Index: i}
		}
		nullifiers[i] = nf
	}

	commitments := make([]goldilocks.Element, len(w.Outputs))
	for i, out := range w.Outputs {
		commitments[i] = notes.Commitment(out.Note)
	}

	deltas := map[uint64]int64{}
	for _, in := range w.Inputs {
		deltas[in.Note.AssetID] += int64(in.Note.Value)
	}
	for _, out := range w.Outputs {
		deltas[out.Note.AssetID] -= int64(out.Note.Value)
	}
	if len(deltas) > BalanceSlots {
		var overflowAsset uint64
		for id := range deltas {
			overflowAsset = id
			break
		}
		return nil, PublicInputs{}, &Error{Kind: BalanceSlotOverflow, AssetID: overflowAsset}
	}

	ids := make([]uint64, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	nativeDelta := deltas[NativeAssetID]
	if nativeDelta != int64(w.Fee) {
		return nil, PublicInputs{}, &Error{Kind: BalanceMismatch, AssetID: NativeAssetID}
	}

	// value_balance applies to at most one non-native asset (§4.C "Balance
	// semantics"): every other non-native asset must balance to zero, and
	// the single asset it does apply to (if any) must match it exactly.
	imbalancedAssigned := false
	for _, id := range ids {
		if id == NativeAssetID {
			continue
		}
		delta := deltas[id]
		if delta == 0 {
			continue
		}
		if w.ValueBalance == 0 || imbalancedAssigned || delta != w.ValueBalance {
			return nil, PublicInputs{}, &Error{Kind: BalanceMismatch, AssetID: id}
		}
		imbalancedAssigned = true
	}
	if w.ValueBalance != 0 && !imbalancedAssigned {
		return nil, PublicInputs{}, &Error{Kind: BalanceMismatch, AssetID: NativeAssetID, Detail: "value_balance does not match any non-native asset's delta"}
	}

	slots := make([]notes.BalanceSlot, 0, len(ids))
	for _, id := range ids {
		slots = append(slots, notes.BalanceSlot{AssetID: id, Delta: deltas[id]})
	}

	trace := &Trace{
		MerkleRoot:   w.MerkleRoot,
		Nullifiers:   nullifiers,
		Commitments:  commitments,
		BalanceSlots: slots,
		NativeDelta:  nativeDelta,
		Fee:          w.Fee,
	}
	pub := PublicInputs{
		MerkleRoot:   w.MerkleRoot,
		Fee:          w.Fee,
		ValueBalance: w.ValueBalance,
		Version:      w.Version,
	}
	return trace, pub, nil
}
