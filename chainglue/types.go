// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package chainglue is the narrow seam between this module's proof stack
// and a consensus node (§6, "ProofVerifier"): block headers, the
// transactions a block carries, and the commitments a node checks a
// header's claims against before accepting a block.
//
// Grounded on original_source/consensus/src/{types,header,proof,nullifier}.rs.
// Per §6 the node computes its proof and fee commitments with Blake3; the
// original's Sha384/Sha256 pairing is a pre-distillation implementation
// detail that is documented here but not carried, since §6 controls.
package chainglue

import (
	"bytes"
	"sort"

	"github.com/zeebo/blake3"
)

// Nullifier, Commitment, BalanceTag, FeeCommitment, ValidatorSetCommitment,
// BlockHash, and ValidatorID are all 32-byte Blake3 digests. StarkCommitment
// is also 32 bytes here, unlike the original's 48-byte Sha384 digest, since
// Blake3's native output width is 32 bytes and §6 does not ask for an
// extended-output digest.
type (
	Nullifier              [32]byte
	Commitment             [32]byte
	BalanceTag             [32]byte
	FeeCommitment          [32]byte
	ValidatorSetCommitment [32]byte
	BlockHash              [32]byte
	ValidatorID            [32]byte
	StarkCommitment        [32]byte
)

// Transaction is the node-facing shape a block carries, distinct from the
// witness types txcircuit/settlementcircuit/batchcircuit consume: it
// exposes only what a header's commitments are computed over.
type Transaction struct {
	ID          BlockHash
	Nullifiers  []Nullifier
	Commitments []Commitment
	BalanceTag  BalanceTag
}

// NewTransaction builds a Transaction and fills in its ID via Hash.
func NewTransaction(nullifiers []Nullifier, commitments []Commitment, balanceTag BalanceTag) Transaction {
	tx := Transaction{Nullifiers: nullifiers, Commitments: commitments, BalanceTag: balanceTag}
	tx.ID = tx.Hash()
	return tx
}

// Hash returns tx's content-addressed identifier.
func (tx Transaction) Hash() BlockHash {
	h := blake3.New()
	for _, nf := range tx.Nullifiers {
		h.Write(nf[:])
	}
	for _, cm := range tx.Commitments {
		h.Write(cm[:])
	}
	h.Write(tx.BalanceTag[:])
	var out BlockHash
	copy(out[:], h.Sum(nil))
	return out
}

// Block pairs a header with the transactions it commits to. BH is left as
// a type parameter, as in the original, so a node can evolve its header
// format without this package needing to change.
type Block[BH any] struct {
	Header       BH
	Transactions []Transaction
}

// ComputeFeeCommitment hashes the sorted set of transactions' balance tags,
// so the result does not depend on the order transactions were gossiped in.
func ComputeFeeCommitment(transactions []Transaction) FeeCommitment {
	tags := make([]BalanceTag, len(transactions))
	for i, tx := range transactions {
		tags[i] = tx.BalanceTag
	}
	sort.Slice(tags, func(i, j int) bool { return bytes.Compare(tags[i][:], tags[j][:]) < 0 })

	h := blake3.New()
	for _, tag := range tags {
		h.Write(tag[:])
	}
	var out FeeCommitment
	copy(out[:], h.Sum(nil))
	return out
}

// ComputeProofCommitment hashes transaction hashes in block order, so
// unlike ComputeFeeCommitment it is sensitive to transaction ordering — a
// reordered block is a different block.
func ComputeProofCommitment(transactions []Transaction) StarkCommitment {
	h := blake3.New()
	for _, tx := range transactions {
		id := tx.Hash()
		h.Write(id[:])
	}
	var out StarkCommitment
	copy(out[:], h.Sum(nil))
	return out
}
