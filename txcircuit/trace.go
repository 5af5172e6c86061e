// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txcircuit

import (
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/notes"
	"github.com/hegemon/zkstack/version"
)

// Trace is the validated, unpadded transaction record produced by
// FromWitness, mirroring original_source's TransactionTrace.
type Trace struct {
	MerkleRoot   goldilocks.Element
	Nullifiers   []goldilocks.Element
	Commitments  []goldilocks.Element
	BalanceSlots []notes.BalanceSlot
	NativeDelta  int64
	Fee          uint64
}

// PaddedNullifiers right-pads the nullifier list to MaxInputs with Zero.
func (t *Trace) PaddedNullifiers() [MaxInputs]goldilocks.Element {
	var out [MaxInputs]goldilocks.Element
	copy(out[:], t.Nullifiers)
	return out
}

// PaddedCommitments right-pads the commitment list to MaxOutputs with Zero.
func (t *Trace) PaddedCommitments() [MaxOutputs]goldilocks.Element {
	var out [MaxOutputs]goldilocks.Element
	copy(out[:], t.Commitments)
	return out
}

// PaddedBalanceSlots pads to BalanceSlots using notes.PadSlots.
func (t *Trace) PaddedBalanceSlots() [BalanceSlots]notes.BalanceSlot {
	return notes.PadSlots(t.BalanceSlots)
}

// PublicInputs is everything about a transaction a verifier sees without
// the witness (§3's "Public inputs" table).
type PublicInputs struct {
	MerkleRoot   goldilocks.Element
	Fee          uint64
	ValueBalance int64
	Version      version.Binding
}
