// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txcircuit

import (
	"testing"

	"github.com/hegemon/zkstack/notes"
)

func buildSimpleWitness(t *testing.T, fee uint64, valueBalance int64) Witness {
	t.Helper()
	sk := [32]byte{9, 9, 9}
	note := notes.Note{Value: 100, AssetID: NativeAssetID, PkRecipient: [32]byte{1}, Rho: [32]byte{2}, R: [32]byte{3}}
	leaf := notes.Commitment(note)

	var path notes.AuthPath // zero siblings, all left children
	root := notes.Reconstruct(leaf, path)

	in := InputNoteWitness{Note: note, Path: path, Position: 0, SkSpend: sk}

	outputValue := note.Value - fee
	out := OutputNoteWitness{Note: notes.Note{Value: outputValue, AssetID: NativeAssetID, PkRecipient: [32]byte{4}, Rho: [32]byte{5}, R: [32]byte{6}}}

	return Witness{
		MerkleRoot:   root,
		Inputs:       []InputNoteWitness{in},
		Outputs:      []OutputNoteWitness{out},
		Fee:          fee,
		ValueBalance: valueBalance,
	}
}

func TestProveVerifyRoundTrip(t *testing.T) {
	w := buildSimpleWitness(t, 2, 0)
	proof, err := Prove(w)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	report, err := Verify(proof)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !report.Verified {
		t.Fatalf("expected a verified report")
	}
}

func TestProveRejectsBadBalance(t *testing.T) {
	w := buildSimpleWitness(t, 2, 3)
	w.Fee = 999
	_, err := Prove(w)
	if err == nil {
		t.Fatalf("expected balance mismatch error")
	}
	txErr, ok := err.(*Error)
	if !ok || txErr.Kind != BalanceMismatch {
		t.Fatalf("expected BalanceMismatch, got %v", err)
	}
}

func TestProveRejectsTooManyInputs(t *testing.T) {
	w := buildSimpleWitness(t, 2, 3)
	w.Inputs = append(w.Inputs, w.Inputs[0], w.Inputs[0])
	_, err := Prove(w)
	txErr, ok := err.(*Error)
	if !ok || txErr.Kind != TooManyInputs {
		t.Fatalf("expected TooManyInputs, got %v", err)
	}
}

func TestProveRejectsExtremeValueBalance(t *testing.T) {
	w := buildSimpleWitness(t, 0, 0)
	w.ValueBalance = -1 << 63
	_, err := Prove(w)
	txErr, ok := err.(*Error)
	if !ok || txErr.Kind != ValueBalanceOutOfRange {
		t.Fatalf("expected ValueBalanceOutOfRange, got %v", err)
	}
}
