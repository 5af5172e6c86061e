// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package disclosurecircuit implements the selective-disclosure AIR
// (§4.E): proving knowledge of a note's opening (rho, r) such that its
// commitment matches a publicly disclosed claim (value, asset_id,
// pk_recipient, commitment), without revealing any other note in the
// wallet.
//
// Grounded on original_source/circuits/disclosure/src/lib.rs's
// PaymentDisclosureClaim/Witness/ProofBundle shapes and
// prove_payment_disclosure/verify_payment_disclosure's
// "reject non-canonical, recompute commitment, reject on air_hash
// mismatch" ordering; constants.rs's compute_air_hash recipe generalized
// into the shared airhash package.
package disclosurecircuit

import (
	"errors"

	"github.com/hegemon/zkstack/airhash"
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/notes"
)

// CircuitVersion increments whenever this AIR's constraints change.
const CircuitVersion = 1

var shape = airhash.Shape{
	DomainTag:               "hegemon-disclosure-air-v1",
	CircuitVersion:          CircuitVersion,
	TraceWidth:              7,
	CycleLength:             64,
	TraceLength:             8 * 64,
	InputCount:              7,
	MaxConstraintDegree:     5,
	NumTransitionConstraint: 4,
}

// AirHash returns this circuit's binding hash, computed once per process.
var AirHash = airhash.Compute(shape)

var (
	// ErrNonCanonicalCommitment is returned when the claimed commitment
	// bytes are not a canonical field-element encoding.
	ErrNonCanonicalCommitment = errors.New("disclosurecircuit: commitment bytes are not canonical")
	// ErrCommitmentMismatch is returned when the recomputed commitment
	// disagrees with the claim.
	ErrCommitmentMismatch = errors.New("disclosurecircuit: commitment does not match claim and witness")
	// ErrAirHashMismatch is returned by Verify when the bundle's recorded
	// air_hash does not match this circuit's own.
	ErrAirHashMismatch = errors.New("disclosurecircuit: air_hash mismatch")
)

// Claim is the publicly disclosed statement: "this commitment opens to
// this value/asset/recipient".
type Claim struct {
	Value       uint64
	AssetID     uint64
	PkRecipient [32]byte
	Commitment  [32]byte
}

// Witness is the private opening (rho, r) proving the claim.
type Witness struct {
	Rho [32]byte
	R   [32]byte
}

// Bundle is a complete disclosure proof: the claim, a simplified proof
// record, and the air_hash binding it to this circuit's exact constraint
// shape.
type Bundle struct {
	Claim   Claim
	Valid   bool
	AirHash [32]byte
}

// Prove checks that claim.Commitment is a canonical encoding and then that
// it matches note(claim, witness)'s note commitment, then returns a Bundle.
func Prove(claim Claim, witness Witness) (*Bundle, error) {
	note := notes.Note{
		Value:       claim.Value,
		AssetID:     claim.AssetID,
		PkRecipient: claim.PkRecipient,
		Rho:         witness.Rho,
		R:           witness.R,
	}
	if !goldilocks.IsCanonicalBytes32(claim.Commitment) {
		return nil, ErrNonCanonicalCommitment
	}
	expected := notes.CommitmentBytes32(note)
	if expected != claim.Commitment {
		return nil, ErrCommitmentMismatch
	}
	return &Bundle{Claim: claim, Valid: true, AirHash: AirHash}, nil
}

// Verify checks bundle's air_hash against this circuit's own and that the
// bundle's claimed commitment is canonical. It operates on the claim
// alone, never on the witness.
func Verify(bundle *Bundle) error {
	if bundle.AirHash != AirHash {
		return ErrAirHashMismatch
	}
	if !goldilocks.IsCanonicalBytes32(bundle.Claim.Commitment) {
		return ErrNonCanonicalCommitment
	}
	if !bundle.Valid {
		return ErrCommitmentMismatch
	}
	return nil
}
