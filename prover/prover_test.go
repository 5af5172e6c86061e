// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prover

import (
	"testing"

	"github.com/luxfi/log"

	"github.com/hegemon/zkstack/notes"
	"github.com/hegemon/zkstack/proofoptions"
	"github.com/hegemon/zkstack/settlementcircuit"
	"github.com/hegemon/zkstack/txcircuit"
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
	}
}

func TestProveTransactionAcceptsProductionOptions(t *testing.T) {
	accept := proofoptions.NewAcceptableOptions(proofoptions.ProfileProduction)
	opts := proofoptions.Production(proofoptions.ChallengerAlgebraicSponge)
	proof, err := ProveTransaction(testLogger(), accept, opts, simpleTxWitness())
	if err != nil {
		t.Fatalf("ProveTransaction failed: %v", err)
	}
	if proof.AirHash != txcircuit.AirHash {
		t.Fatalf("unexpected air_hash on generated proof")
	}
}

func TestProveTransactionRejectsFastOptionsUnderProductionProfile(t *testing.T) {
	accept := proofoptions.NewAcceptableOptions(proofoptions.ProfileProduction)
	opts := proofoptions.Fast(proofoptions.ChallengerHash)
	_, err := ProveTransaction(testLogger(), accept, opts, simpleTxWitness())
	if err != proofoptions.ErrIncompatibleProfile {
		t.Fatalf("expected ErrIncompatibleProfile, got %v", err)
	}
}

func TestProveSettlementAcceptsFastOptionsUnderFastProfile(t *testing.T) {
	accept := proofoptions.NewAcceptableOptions(proofoptions.ProfileFast)
	opts := proofoptions.Fast(proofoptions.ChallengerHash)
	b := settlementcircuit.Batch{Instructions: []settlementcircuit.Instruction{{ID: 1, Index: 0}}}
	proof, err := ProveSettlement(testLogger(), accept, opts, b)
	if err != nil {
		t.Fatalf("ProveSettlement failed: %v", err)
	}
	if proof.AirHash != settlementcircuit.AirHash {
		t.Fatalf("unexpected air_hash on generated proof")
	}
}
