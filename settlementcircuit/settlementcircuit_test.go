// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package settlementcircuit

import "testing"

func TestProveVerifyRoundTrip(t *testing.T) {
	b := Batch{Instructions: []Instruction{{ID: 1, Index: 0}, {ID: 2, Index: 1}}}
	proof, err := Prove(b)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	if err := Verify(proof, b); err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
}

func TestVerifyRejectsTamperedBatch(t *testing.T) {
	b := Batch{Instructions: []Instruction{{ID: 1, Index: 0}}}
	proof, err := Prove(b)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	b.Instructions[0].ID = 999
	if err := Verify(proof, b); err != ErrCommitmentMismatch {
		t.Fatalf("expected ErrCommitmentMismatch, got %v", err)
	}
}

func TestProveRejectsTooManyInstructions(t *testing.T) {
	instrs := make([]Instruction, MaxInstructions+1)
	_, err := Prove(Batch{Instructions: instrs})
	if err != ErrTooManyInstructions {
		t.Fatalf("expected ErrTooManyInstructions, got %v", err)
	}
}

func TestNullifiersDeterministic(t *testing.T) {
	b := Batch{Instructions: []Instruction{{ID: 7, Index: 3}}}
	n1, err := Nullifiers(b)
	if err != nil {
		t.Fatalf("Nullifiers failed: %v", err)
	}
	n2, err := Nullifiers(b)
	if err != nil {
		t.Fatalf("Nullifiers failed: %v", err)
	}
	if n1[0] != n2[0] {
		t.Fatalf("nullifier derivation is not deterministic")
	}
}
