// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainglue

import "testing"

func buildBlock(txs []Transaction) (*BlockHeader, []Transaction) {
	header := &BlockHeader{
		Version:         1,
		Height:          10,
		TxCount:         uint32(len(txs)),
		ProofCommitment: ComputeProofCommitment(txs),
		FeeCommitment:   ComputeFeeCommitment(txs),
		SignatureBitmap: []byte{0x01},
	}
	return header, txs
}

func TestVerifyCommitmentsAcceptsConsistentBlock(t *testing.T) {
	txs := []Transaction{NewTransaction([]Nullifier{{1}}, []Commitment{{2}}, BalanceTag{3})}
	header, txs := buildBlock(txs)

	if err := (HashVerifier{}).VerifyBlock(header, txs); err != nil {
		t.Fatalf("VerifyBlock rejected a consistent block: %v", err)
	}
}

func TestVerifyCommitmentsRejectsTamperedProofCommitment(t *testing.T) {
	txs := []Transaction{NewTransaction([]Nullifier{{1}}, []Commitment{{2}}, BalanceTag{3})}
	header, txs := buildBlock(txs)
	header.ProofCommitment[0] ^= 0xFF

	err := HashVerifier{}.VerifyBlock(header, txs)
	pe, ok := err.(*ProofError)
	if !ok || pe.Kind != CommitmentMismatch {
		t.Fatalf("expected CommitmentMismatch, got %v", err)
	}
}

func TestVerifyCommitmentsRejectsWrongTransactionCount(t *testing.T) {
	txs := []Transaction{NewTransaction([]Nullifier{{1}}, []Commitment{{2}}, BalanceTag{3})}
	header, txs := buildBlock(txs)
	header.TxCount = 2

	err := HashVerifier{}.VerifyBlock(header, txs)
	pe, ok := err.(*ProofError)
	if !ok || pe.Kind != TransactionCountMismatch {
		t.Fatalf("expected TransactionCountMismatch, got %v", err)
	}
}

func TestVerifyCommitmentsRejectsTamperedFeeCommitment(t *testing.T) {
	txs := []Transaction{NewTransaction([]Nullifier{{1}}, []Commitment{{2}}, BalanceTag{3})}
	header, txs := buildBlock(txs)
	header.FeeCommitment[0] ^= 0xFF

	err := HashVerifier{}.VerifyBlock(header, txs)
	pe, ok := err.(*ProofError)
	if !ok || pe.Kind != FeeCommitmentMismatch {
		t.Fatalf("expected FeeCommitmentMismatch, got %v", err)
	}
}

func TestEnsureStructureRejectsEmptyBlock(t *testing.T) {
	header := &BlockHeader{TxCount: 0}
	if err := header.EnsureStructure(); err == nil {
		t.Fatalf("expected EnsureStructure to reject an empty block")
	}
}

func TestEnsureStructureRejectsBFTHeaderWithoutBitmap(t *testing.T) {
	header := &BlockHeader{TxCount: 1}
	if err := header.EnsureStructure(); err == nil {
		t.Fatalf("expected EnsureStructure to reject a bft header with no signature bitmap")
	}
}

func TestEnsureStructureAcceptsBFTHeaderWithBitmap(t *testing.T) {
	header := &BlockHeader{TxCount: 1, SignatureBitmap: nil, Pow: nil}
	header.SignatureBitmap = []byte{0x01}
	if err := header.EnsureStructure(); err != nil {
		t.Fatalf("bft header with bitmap should be structurally valid: %v", err)
	}
}

func TestSigningHashExcludesSignatureAggregate(t *testing.T) {
	header := &BlockHeader{TxCount: 1, SignatureBitmap: []byte{0x01}}
	before := header.SigningHash()
	header.SignatureAggregate = []byte{1, 2, 3}
	after := header.SigningHash()
	if before != after {
		t.Fatalf("SigningHash must not depend on SignatureAggregate")
	}
	if header.Hash() == BlockHash(before) {
		t.Fatalf("Hash should differ from SigningHash once a signature aggregate is set")
	}
}
