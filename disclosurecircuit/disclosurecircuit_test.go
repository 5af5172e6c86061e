// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package disclosurecircuit

import (
	"testing"

	"github.com/hegemon/zkstack/notes"
)

func validClaimAndWitness() (Claim, Witness) {
	witness := Witness{Rho: [32]byte{1, 2, 3}, R: [32]byte{4, 5, 6}}
	claim := Claim{Value: 42, AssetID: 0, PkRecipient: [32]byte{7, 8, 9}}
	note := notes.Note{
		Value:       claim.Value,
		AssetID:     claim.AssetID,
		PkRecipient: claim.PkRecipient,
		Rho:         witness.Rho,
		R:           witness.R,
	}
	claim.Commitment = notes.CommitmentBytes32(note)
	return claim, witness
}

func TestProveVerifyRoundTrip(t *testing.T) {
	claim, witness := validClaimAndWitness()
	bundle, err := Prove(claim, witness)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	if err := Verify(bundle); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
}

func TestProveRejectsWrongWitness(t *testing.T) {
	claim, _ := validClaimAndWitness()
	wrongWitness := Witness{Rho: [32]byte{9, 9, 9}, R: [32]byte{9, 9, 9}}
	if _, err := Prove(claim, wrongWitness); err != ErrCommitmentMismatch {
		t.Fatalf("expected ErrCommitmentMismatch, got %v", err)
	}
}

func TestProveRejectsTamperedValue(t *testing.T) {
	claim, witness := validClaimAndWitness()
	claim.Value++
	if _, err := Prove(claim, witness); err != ErrCommitmentMismatch {
		t.Fatalf("expected ErrCommitmentMismatch, got %v", err)
	}
}

func TestProveRejectsTamperedAssetID(t *testing.T) {
	claim, witness := validClaimAndWitness()
	claim.AssetID = 7
	if _, err := Prove(claim, witness); err != ErrCommitmentMismatch {
		t.Fatalf("expected ErrCommitmentMismatch, got %v", err)
	}
}

func TestProveRejectsTamperedRecipient(t *testing.T) {
	claim, witness := validClaimAndWitness()
	claim.PkRecipient[0] ^= 0xFF
	if _, err := Prove(claim, witness); err != ErrCommitmentMismatch {
		t.Fatalf("expected ErrCommitmentMismatch, got %v", err)
	}
}

func TestVerifyRejectsAirHashMismatch(t *testing.T) {
	claim, witness := validClaimAndWitness()
	bundle, err := Prove(claim, witness)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	bundle.AirHash[0] ^= 0xFF
	if err := Verify(bundle); err != ErrAirHashMismatch {
		t.Fatalf("expected ErrAirHashMismatch, got %v", err)
	}
}

func TestVerifyRejectsTamperedCommitment(t *testing.T) {
	claim, witness := validClaimAndWitness()
	bundle, err := Prove(claim, witness)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	bundle.Claim.Commitment[0] ^= 0xFF
	if err := Verify(bundle); err == nil {
		t.Fatalf("expected Verify to reject a tampered commitment")
	}
}
