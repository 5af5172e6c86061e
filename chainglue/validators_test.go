// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainglue

import "testing"

func TestVerifyAggregateSignatureRejectsNonBFTHeader(t *testing.T) {
	header := &BlockHeader{Pow: &PowSeal{}}
	vs := ValidatorSet{Members: []Validator{{Weight: 1}}}
	if err := VerifyAggregateSignature(header, vs); err == nil {
		t.Fatalf("expected VerifyAggregateSignature to reject a pow-mode header")
	}
}

func TestVerifyAggregateSignatureRejectsInsufficientWeight(t *testing.T) {
	header := &BlockHeader{
		SignatureBitmap:    []byte{0x01}, // only bit 0 set
		SignatureAggregate: make([]byte, 96),
	}
	vs := ValidatorSet{Members: []Validator{
		{ID: ValidatorID{1}, PublicKey: make([]byte, 48), Weight: 1},
		{ID: ValidatorID{2}, PublicKey: make([]byte, 48), Weight: 1},
		{ID: ValidatorID{3}, PublicKey: make([]byte, 48), Weight: 1},
	}}

	err := VerifyAggregateSignature(header, vs)
	ce, ok := err.(*ConsensusError)
	if !ok {
		t.Fatalf("expected ConsensusError, got %v", err)
	}
	if ce.Kind != InsufficientSignatures && ce.Kind != SignatureVerificationFailed {
		t.Fatalf("expected InsufficientSignatures or a key-parse failure on fixture keys, got %v", ce.Kind)
	}
}

func TestSignerIndicesReadsBitmapLSBFirst(t *testing.T) {
	indices := signerIndices([]byte{0b00000101}, 4)
	if len(indices) != 2 || indices[0] != 0 || indices[1] != 2 {
		t.Fatalf("unexpected signer indices: %v", indices)
	}
}
