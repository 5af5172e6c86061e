// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package notes

import (
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/poseidon2"
)

// PRFKey derives the per-spending-key nullifier PRF key:
// prf_key = Sponge(tag=NULLIFIER)(to_field_elements(sk_spend)).
func PRFKey(skSpend [32]byte) goldilocks.Element {
	elems := FieldElementsFrom32(skSpend)
	return poseidon2.Hash(poseidon2.DomainNullifier, elems[:])
}

// Nullifier derives nf = Sponge(tag=NULLIFIER)(prf_key, position,
// to_field_elements(rho)). A zero nullifier indicates a degenerate witness
// and must be rejected by the caller (ZeroNullifier, §4.C).
func Nullifier(prfKey goldilocks.Element, position uint64, rho [32]byte) goldilocks.Element {
	rhoElems := FieldElementsFrom32(rho)
	elems := make([]goldilocks.Element, 0, 2+4)
	elems = append(elems, prfKey, goldilocks.New(position))
	elems = append(elems, rhoElems[:]...)
	return poseidon2.Hash(poseidon2.DomainNullifier, elems)
}

// SettlementNullifier derives a per-instruction nullifier at the
// consensus-boundary domain tag 19: nf = Sponge(tag=19)(instruction_id,
// index). Distinct from the transaction-level Nullifier above (§6).
func SettlementNullifier(instructionID, index uint64) goldilocks.Element {
	elems := []goldilocks.Element{goldilocks.New(instructionID), goldilocks.New(index)}
	return poseidon2.Hash(poseidon2.DomainSettlementNullifier, elems)
}
