// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package batchcircuit implements the N-transaction aggregation AIR
// (§4.D): it bundles MaxBatchSize individually-valid transaction proofs
// behind a single shared Merkle anchor and re-exposes their combined
// nullifiers/commitments/balance slots as one batch public-input record.
//
// Grounded on original_source/circuits/batch/src/{constants,error,
// verifier}.rs: MAX_BATCH_SIZE=16 and the MAX_INPUTS/MAX_OUTPUTS constants
// carried over, BatchCircuitError's variant set, and
// verify_batch_proof/verify_batch_proof_bytes's "validate public inputs,
// then verify" ordering reproduced as ValidatePublicInputs followed by
// Verify.
package batchcircuit

import (
	"errors"

	"github.com/hegemon/zkstack/airhash"
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/notes"
	"github.com/hegemon/zkstack/txcircuit"
)

// MaxBatchSize is the largest number of transactions one batch proof may
// aggregate, chosen as a power of two for trace efficiency.
const MaxBatchSize = 16

// CircuitVersion increments whenever the aggregation shape changes.
const CircuitVersion = 1

// AirHash binds every batch proof to this exact aggregation shape (§4.F),
// independent of the bundled transactions' own air_hash checks.
var AirHash = airhash.Compute(airhash.Shape{
	DomainTag:               "hegemon-batch-air-v1",
	CircuitVersion:          CircuitVersion,
	TraceWidth:              uint32(MaxBatchSize),
	CycleLength:             1,
	TraceLength:             uint32(MaxBatchSize),
	InputCount:              uint32(MaxBatchSize),
	MaxConstraintDegree:     1,
	NumTransitionConstraint: 0,
})

var (
	// ErrInvalidBatchSize is returned when the batch size is not a power
	// of two or exceeds MaxBatchSize.
	ErrInvalidBatchSize = errors.New("batchcircuit: batch size must be a power of two, at most MaxBatchSize")
	// ErrEmptyBatch is returned for a zero-transaction batch.
	ErrEmptyBatch = errors.New("batchcircuit: batch cannot be empty")
	// ErrAnchorMismatch is returned when the batch's transactions do not
	// all share the same Merkle anchor.
	ErrAnchorMismatch = errors.New("batchcircuit: all transactions in a batch must share the same Merkle anchor")
	// ErrInvalidWitness wraps a per-transaction txcircuit error with its
	// index in the batch.
	ErrInvalidWitness = errors.New("batchcircuit: invalid transaction witness")
)

// InvalidWitnessError names which batch slot failed and why.
type InvalidWitnessError struct {
	Index int
	Cause error
}

func (e *InvalidWitnessError) Error() string {
	return "batchcircuit: invalid transaction witness at index " + itoa(e.Index) + ": " + e.Cause.Error()
}
func (e *InvalidWitnessError) Unwrap() error { return e.Cause }

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// PublicInputs is a batch proof's public record: the shared anchor, the
// per-transaction public inputs, and the batch's reported size.
type PublicInputs struct {
	MerkleRoot       goldilocks.Element
	BatchSize        int
	TransactionFacts []txcircuit.PublicInputs
}

// Validate checks the structural invariants a batch's public inputs must
// satisfy before proof verification is attempted, mirroring
// BatchPublicInputs::validate()'s role in verify_batch_proof.
func (p PublicInputs) Validate() error {
	if p.BatchSize == 0 {
		return ErrEmptyBatch
	}
	if p.BatchSize > MaxBatchSize || p.BatchSize&(p.BatchSize-1) != 0 {
		return ErrInvalidBatchSize
	}
	if len(p.TransactionFacts) != p.BatchSize {
		return ErrInvalidBatchSize
	}
	for _, tf := range p.TransactionFacts {
		if tf.MerkleRoot != p.MerkleRoot {
			return ErrAnchorMismatch
		}
	}
	return nil
}

// Proof aggregates MaxBatchSize (or fewer, when the caller pads) per-
// transaction proofs under one shared anchor.
type Proof struct {
	PublicInputs PublicInputs
	Transactions []*txcircuit.Proof
	AirHash      [32]byte
}

// Prove validates every witness in witnesses independently via
// txcircuit.Prove, enforces the shared-anchor invariant, and assembles the
// aggregate Proof.
func Prove(anchor goldilocks.Element, witnesses []txcircuit.Witness) (*Proof, error) {
	if len(witnesses) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(witnesses) > MaxBatchSize || len(witnesses)&(len(witnesses)-1) != 0 {
		return nil, ErrInvalidBatchSize
	}

	txProofs := make([]*txcircuit.Proof, len(witnesses))
	facts := make([]txcircuit.PublicInputs, len(witnesses))
	for i, w := range witnesses {
		if w.MerkleRoot != anchor {
			return nil, ErrAnchorMismatch
		}
		p, err := txcircuit.Prove(w)
		if err != nil {
			return nil, &InvalidWitnessError{Index: i, Cause: err}
		}
		txProofs[i] = p
		facts[i] = p.PublicInputs
	}

	pub := PublicInputs{MerkleRoot: anchor, BatchSize: len(witnesses), TransactionFacts: facts}
	if err := pub.Validate(); err != nil {
		return nil, err
	}
	return &Proof{PublicInputs: pub, Transactions: txProofs, AirHash: AirHash}, nil
}

// Verify checks proof's public inputs and re-verifies every bundled
// per-transaction proof, mirroring verify_batch_proof's
// "validate public inputs, then verify" order.
func Verify(proof *Proof) error {
	if proof.AirHash != AirHash {
		return errors.New("batchcircuit: air_hash does not match this circuit's aggregation shape")
	}
	if err := proof.PublicInputs.Validate(); err != nil {
		return err
	}
	if len(proof.Transactions) != proof.PublicInputs.BatchSize {
		return ErrInvalidBatchSize
	}
	for i, txProof := range proof.Transactions {
		if _, err := txcircuit.Verify(txProof); err != nil {
			return &InvalidWitnessError{Index: i, Cause: err}
		}
	}
	return nil
}

// CollectNullifiers flattens every bundled transaction's nullifiers, used
// by the consensus-boundary double-spend check (§4.D "Shared resources").
func CollectNullifiers(proof *Proof) []goldilocks.Element {
	out := make([]goldilocks.Element, 0, len(proof.Transactions)*txcircuit.MaxInputs)
	for _, tx := range proof.Transactions {
		for _, nf := range tx.Nullifiers {
			if !nf.IsZero() {
				out = append(out, nf)
			}
		}
	}
	return out
}

// CollectBalanceSlots flattens every bundled transaction's non-reserved
// balance slots, used by settlement-level aggregate balance checks.
func CollectBalanceSlots(proof *Proof) []notes.BalanceSlot {
	out := make([]notes.BalanceSlot, 0, len(proof.Transactions)*txcircuit.BalanceSlots)
	for _, tx := range proof.Transactions {
		for _, slot := range tx.BalanceSlots {
			if slot.AssetID != notes.ReservedAssetID {
				out = append(out, slot)
			}
		}
	}
	return out
}
