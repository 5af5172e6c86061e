// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verifier

import (
	"testing"

	"github.com/luxfi/log"

	"github.com/hegemon/zkstack/notes"
	"github.com/hegemon/zkstack/proofoptions"
	"github.com/hegemon/zkstack/settlementcircuit"
	"github.com/hegemon/zkstack/txcircuit"
	"github.com/hegemon/zkstack/version"
)

func testLogger() log.Logger {
	return log.NewTestLogger(log.InfoLevel)
}

func simpleTxWitness() txcircuit.Witness {
	sk := [32]byte{1, 1, 1}
	note := notes.Note{Value: 100, AssetID: txcircuit.NativeAssetID, PkRecipient: [32]byte{2}, Rho: [32]byte{3}, R: [32]byte{4}}
	leaf := notes.Commitment(note)
	var path notes.AuthPath
	root := notes.Reconstruct(leaf, path)

	in := txcircuit.InputNoteWitness{Note: note, Path: path, Position: 0, SkSpend: sk}
	out := txcircuit.OutputNoteWitness{Note: notes.Note{Value: 99, AssetID: txcircuit.NativeAssetID, PkRecipient: [32]byte{5}, Rho: [32]byte{6}, R: [32]byte{7}}}

	return txcircuit.Witness{
		MerkleRoot:   root,
		Inputs:       []txcircuit.InputNoteWitness{in},
		Outputs:      []txcircuit.OutputNoteWitness{out},
		Fee:          1,
		ValueBalance: 0,
		Version:      version.Default,
	}
}

func TestVerifyTransactionAcceptsValidProof(t *testing.T) {
	proof, err := txcircuit.Prove(simpleTxWitness())
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	accept := proofoptions.NewAcceptableOptions(proofoptions.ProfileProduction)
	opts := proofoptions.Production(proofoptions.ChallengerAlgebraicSponge)
	schedule := version.DefaultSchedule()

	if _, err := VerifyTransaction(testLogger(), accept, opts, schedule, 0, proof); err != nil {
		t.Fatalf("VerifyTransaction failed: %v", err)
	}
}

func TestVerifyTransactionRejectsUnacceptableOptions(t *testing.T) {
	proof, err := txcircuit.Prove(simpleTxWitness())
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	accept := proofoptions.NewAcceptableOptions(proofoptions.ProfileProduction)
	opts := proofoptions.Fast(proofoptions.ChallengerHash)

	if _, err := VerifyTransaction(testLogger(), accept, opts, nil, 0, proof); err != ErrOptionsNotAcceptable {
		t.Fatalf("expected ErrOptionsNotAcceptable, got %v", err)
	}
}

func TestVerifyTransactionRejectsDisallowedVersion(t *testing.T) {
	proof, err := txcircuit.Prove(simpleTxWitness())
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	proof.PublicInputs.Version = version.Binding{Circuit: version.CircuitV1, Crypto: version.CryptoSuiteAlpha}
	accept := proofoptions.NewAcceptableOptions(proofoptions.ProfileProduction)
	opts := proofoptions.Production(proofoptions.ChallengerAlgebraicSponge)
	schedule := version.DefaultSchedule()

	if _, err := VerifyTransaction(testLogger(), accept, opts, schedule, 0, proof); err != ErrVersionNotAllowed {
		t.Fatalf("expected ErrVersionNotAllowed, got %v", err)
	}
}

func TestVerifySettlementRejectsTamperedBatch(t *testing.T) {
	b := settlementcircuit.Batch{Instructions: []settlementcircuit.Instruction{{ID: 1, Index: 0}}}
	proof, err := settlementcircuit.Prove(b)
	if err != nil {
		t.Fatalf("Prove failed: %v", err)
	}
	accept := proofoptions.NewAcceptableOptions(proofoptions.ProfileFast)
	opts := proofoptions.Fast(proofoptions.ChallengerHash)

	b.Instructions[0].ID = 999
	if err := VerifySettlement(testLogger(), accept, opts, proof, b); err == nil {
		t.Fatalf("expected VerifySettlement to reject a tampered batch")
	}
}
