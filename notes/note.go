// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package notes

import (
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/poseidon2"
)

// NativeAssetID identifies the pool's native asset (§6's asset_id == 0 is
// native; any other value is a registered asset).
const NativeAssetID uint64 = 0

// MaxNoteValue is the largest value a note may hold: any field element up
// to p-1.
const MaxNoteValue = goldilocks.Modulus - 1

// Note is a shielded note (a spendable UTXO) as described in §3's DATA
// MODEL table.
type Note struct {
	Value        uint64
	AssetID      uint64
	PkRecipient  [32]byte
	Rho          [32]byte
	R            [32]byte
}

// Commitment computes cm = Sponge(tag=NOTE)(value, asset_id,
// to_field_elements(pk), to_field_elements(rho), to_field_elements(r)).
func Commitment(n Note) goldilocks.Element {
	elems := noteElements(n)
	return poseidon2.Hash(poseidon2.DomainNote, elems)
}

// CommitmentBytes32 is Commitment encoded canonically for wire transport
// (in-wallet / in-AIR width).
func CommitmentBytes32(n Note) [32]byte {
	return Commitment(n).Bytes32()
}

func noteElements(n Note) []goldilocks.Element {
	pk := FieldElementsFrom32(n.PkRecipient)
	rho := FieldElementsFrom32(n.Rho)
	r := FieldElementsFrom32(n.R)
	elems := make([]goldilocks.Element, 0, 2+4+4+4)
	elems = append(elems, goldilocks.New(n.Value), goldilocks.New(n.AssetID))
	elems = append(elems, pk[:]...)
	elems = append(elems, rho[:]...)
	elems = append(elems, r[:]...)
	return elems
}
