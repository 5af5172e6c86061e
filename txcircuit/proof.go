// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txcircuit

import (
	"github.com/hegemon/zkstack/air"
	"github.com/hegemon/zkstack/airhash"
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/notes"
)

// CircuitVersion increments whenever this AIR's constraints change.
const CircuitVersion = 1

// AirHash binds every transaction proof to this exact constraint system
// (§4.F "cross-proof digest"), computed once from the circuit's fixed
// shape — never from a particular witness's trace.
var AirHash = airhash.Compute(airhash.Shape{
	DomainTag:               "hegemon-tx-air-v1",
	CircuitVersion:          CircuitVersion,
	TraceWidth:              4,
	CycleLength:             air.CycleLength,
	TraceLength:             uint32((MaxInputs + MaxOutputs) * air.CycleLength),
	InputCount:              uint32(MaxInputs + MaxOutputs),
	MaxConstraintDegree:     2,
	NumTransitionConstraint: 3,
})

// Proof is the public record a transaction proof publishes: the
// nullifiers and commitments it asserts, its per-asset balance slots, and
// the public inputs the AIR was checked against. Mirrors
// original_source's TransactionProof.
type Proof struct {
	PublicInputs PublicInputs
	Nullifiers   [MaxInputs]goldilocks.Element
	Commitments  [MaxOutputs]goldilocks.Element
	BalanceSlots [BalanceSlots]notes.BalanceSlot
	AirHash      [32]byte
}

// VerificationReport is the result of a successful Verify call.
type VerificationReport struct {
	Verified bool
}

// Prove validates witness and, on success, returns the Proof a verifier
// can later check without access to the witness.
func Prove(witness Witness) (*Proof, error) {
	if err := CheckAir(witness); err != nil {
		return nil, err
	}
	trace, pub, err := FromWitness(witness)
	if err != nil {
		return nil, err
	}
	return &Proof{
		PublicInputs: pub,
		Nullifiers:   trace.PaddedNullifiers(),
		Commitments:  trace.PaddedCommitments(),
		BalanceSlots: trace.PaddedBalanceSlots(),
		AirHash:      AirHash,
	}, nil
}

// Verify re-derives every asset's balance from proof's own fields and
// checks them against the proof's declared fee/value_balance public
// inputs, mirroring original_source's verify(): it operates purely on the
// proof's public data, never on a witness. The native asset's delta must
// equal fee alone; value_balance applies to at most one non-native asset
// (§4.C "Balance semantics"), so every other non-native slot must balance
// to zero.
func Verify(proof *Proof) (*VerificationReport, error) {
	if proof.AirHash != AirHash {
		return nil, &Error{Kind: ConstraintViolation, Detail: "air_hash does not match this circuit's constraint system"}
	}
	found := false
	imbalancedAssigned := false
	for _, slot := range proof.BalanceSlots {
		if slot.AssetID == NativeAssetID {
			found = true
			if slot.Delta != int64(proof.PublicInputs.Fee) {
				return nil, &Error{Kind: BalanceMismatch, AssetID: NativeAssetID}
			}
			continue
		}
		if slot.Delta == 0 {
			continue
		}
		if proof.PublicInputs.ValueBalance == 0 || imbalancedAssigned || slot.Delta != proof.PublicInputs.ValueBalance {
			return nil, &Error{Kind: BalanceMismatch, AssetID: slot.AssetID}
		}
		imbalancedAssigned = true
	}
	if !found {
		return nil, &Error{Kind: ConstraintViolation, Detail: "proof carries no native-asset balance slot"}
	}
	if proof.PublicInputs.ValueBalance != 0 && !imbalancedAssigned {
		return nil, &Error{Kind: BalanceMismatch, AssetID: NativeAssetID, Detail: "value_balance does not match any non-native asset's delta"}
	}
	return &VerificationReport{Verified: true}, nil
}
