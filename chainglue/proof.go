// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainglue

// HeaderProofExt exposes the three fields VerifyCommitments needs from a
// header without requiring it to know the header's concrete type. Ported
// from original_source/consensus/src/proof.rs's HeaderProofExt trait.
type HeaderProofExt interface {
	ProofCommitmentField() StarkCommitment
	FeeCommitmentField() FeeCommitment
	TransactionCountField() uint32
}

// ProofCommitmentField, FeeCommitmentField, and TransactionCountField
// implement HeaderProofExt for *BlockHeader.
func (h *BlockHeader) ProofCommitmentField() StarkCommitment { return h.proofCommitment() }
func (h *BlockHeader) FeeCommitmentField() FeeCommitment     { return h.feeCommitment() }
func (h *BlockHeader) TransactionCountField() uint32         { return h.transactionCount() }

// ProofVerifier checks that a block's claimed commitments match what its
// transactions actually hash to. Ported from
// original_source/consensus/src/proof.rs's ProofVerifier trait.
type ProofVerifier interface {
	VerifyBlock(header HeaderProofExt, transactions []Transaction) error
}

// HashVerifier is the reference ProofVerifier: it recomputes both
// commitments with Blake3 and compares them, with no further cryptographic
// proof check (that is txcircuit/batchcircuit/settlementcircuit's job —
// this package only glues their output to a header).
type HashVerifier struct{}

func (HashVerifier) VerifyBlock(header HeaderProofExt, transactions []Transaction) error {
	return VerifyCommitments(header, transactions)
}

// VerifyCommitments checks header's proof commitment, transaction count,
// and fee commitment against what transactions actually compute to.
func VerifyCommitments(header HeaderProofExt, transactions []Transaction) error {
	computedProof := ComputeProofCommitment(transactions)
	if computedProof != header.ProofCommitmentField() {
		return &ProofError{Kind: CommitmentMismatch}
	}
	if uint32(len(transactions)) != header.TransactionCountField() {
		return &ProofError{Kind: TransactionCountMismatch}
	}
	computedFee := ComputeFeeCommitment(transactions)
	if computedFee != header.FeeCommitmentField() {
		return &ProofError{Kind: FeeCommitmentMismatch}
	}
	return nil
}
