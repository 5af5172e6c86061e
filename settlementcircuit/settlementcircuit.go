// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package settlementcircuit implements the consensus-boundary settlement
// commitment AIR (§4.E): binding a batch of pending cross-domain
// instructions into one sponge commitment under domain tag 17, with
// per-instruction nullifiers at domain tag 19. The commitment absorbs the
// instruction IDs only; the nullifiers and instruction indices are derived
// separately and are not absorbed into it.
//
// Grounded on original_source/circuits/settlement/src/{constants,
// hashing}.rs: MAX_INSTRUCTIONS=16, MAX_NULLIFIERS=4,
// SETTLEMENT_DOMAIN_TAG=17, SETTLEMENT_NULLIFIER_DOMAIN_TAG=19, and
// commitment_from_inputs/nullifier_from_instruction's absorb-pairs-then-
// permute structure, reimplemented against poseidon2's sponge rather than
// the original's standalone 3-wide toy permutation (unified onto this
// module's one true Poseidon2 instance per SPEC_FULL.md).
package settlementcircuit

import (
	"errors"

	"github.com/hegemon/zkstack/airhash"
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/notes"
	"github.com/hegemon/zkstack/poseidon2"
)

// MaxInstructions and MaxNullifiers bound one settlement batch.
const (
	MaxInstructions = 16
	MaxNullifiers   = 4
)

// CircuitVersion increments whenever the commitment shape changes.
const CircuitVersion = 1

// AirHash binds every settlement proof to this exact commitment shape
// (§4.F), computed from the circuit's fixed capacity rather than any
// particular batch's actual length.
var AirHash = airhash.Compute(airhash.Shape{
	DomainTag:               "hegemon-settlement-air-v1",
	CircuitVersion:          CircuitVersion,
	TraceWidth:              uint32(poseidon2.Width),
	CycleLength:             1,
	TraceLength:             uint32(MaxInstructions),
	InputCount:              uint32(MaxInstructions + MaxNullifiers),
	MaxConstraintDegree:     1,
	NumTransitionConstraint: 0,
})

var (
	// ErrTooManyInstructions is returned when a batch exceeds MaxInstructions.
	ErrTooManyInstructions = errors.New("settlementcircuit: too many pending instructions")
	// ErrTooManyNullifiers is returned when a batch exceeds MaxNullifiers.
	ErrTooManyNullifiers = errors.New("settlementcircuit: too many nullifiers")
	// ErrCommitmentMismatch is returned by Verify when the recomputed
	// commitment disagrees with the claimed one.
	ErrCommitmentMismatch = errors.New("settlementcircuit: commitment does not match instruction batch")
)

// Instruction is one pending cross-domain settlement instruction.
type Instruction struct {
	ID    uint64
	Index uint64
}

// Batch is a settlement batch's witness: the pending instructions and the
// position each one occupies for nullifier derivation.
type Batch struct {
	Instructions []Instruction
}

// Commitment computes the settlement commitment bt =
// Sponge(tag=17)(instruction_ids...), one element per instruction ID,
// generalizing commitment_from_inputs's "absorb two elements, permute,
// repeat" structure onto poseidon2's 6-wide rate.
func Commitment(b Batch) (goldilocks.Element, error) {
	if len(b.Instructions) > MaxInstructions {
		return 0, ErrTooManyInstructions
	}
	elems := make([]goldilocks.Element, len(b.Instructions))
	for i, ins := range b.Instructions {
		elems[i] = goldilocks.New(ins.ID)
	}
	return poseidon2.Hash(poseidon2.DomainSettlement, elems), nil
}

// Nullifiers derives one nullifier per instruction in b, at most
// MaxNullifiers of them.
func Nullifiers(b Batch) ([]goldilocks.Element, error) {
	if len(b.Instructions) > MaxNullifiers {
		return nil, ErrTooManyNullifiers
	}
	out := make([]goldilocks.Element, len(b.Instructions))
	for i, ins := range b.Instructions {
		out[i] = notes.SettlementNullifier(ins.ID, ins.Index)
	}
	return out, nil
}

// Proof is a settlement proof's public record.
type Proof struct {
	Commitment  goldilocks.Element
	Nullifiers  []goldilocks.Element
	BatchLength int
	AirHash     [32]byte
}

// Prove validates b and produces its settlement Proof.
func Prove(b Batch) (*Proof, error) {
	commitment, err := Commitment(b)
	if err != nil {
		return nil, err
	}
	nullifiers, err := Nullifiers(b)
	if err != nil {
		return nil, err
	}
	return &Proof{Commitment: commitment, Nullifiers: nullifiers, BatchLength: len(b.Instructions), AirHash: AirHash}, nil
}

// Verify recomputes the commitment from claimed b and checks it against
// proof's declared commitment.
func Verify(proof *Proof, b Batch) error {
	if proof.AirHash != AirHash {
		return errors.New("settlementcircuit: air_hash does not match this circuit's commitment shape")
	}
	commitment, err := Commitment(b)
	if err != nil {
		return err
	}
	if commitment != proof.Commitment {
		return ErrCommitmentMismatch
	}
	return nil
}
