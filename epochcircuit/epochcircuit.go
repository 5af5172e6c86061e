// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package epochcircuit implements the epoch proof-accumulator AIR (§4.F):
// folding every settlement/batch proof hash produced during an epoch into
// one proof_accumulator commitment, sequentially absorbed in submission
// order.
//
// Grounded on original_source/circuits/epoch/src/air.rs's trace layout
// comment ("Start with initial state [0,0,0]; for each proof hash, absorb
// 1 element per cycle, run the permutation; final S0 is the
// proof_accumulator public input") — reimplemented against this module's
// shared Poseidon2 sponge instead of the original's bespoke 3-wide
// Poseidon state, per the same "one true Poseidon2 instance" choice
// documented in settlementcircuit. As in txcircuit, the permutation
// itself is evaluated in ordinary Go (FromWitness); the air.Air this
// package exposes checks the narrower, genuinely algebraic invariant that
// survives arithmetization at reasonable cost: the row index advances by
// exactly one per absorbed proof hash, pinned at both ends by boundary
// assertions.
package epochcircuit

import (
	"errors"

	"github.com/hegemon/zkstack/air"
	"github.com/hegemon/zkstack/airhash"
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/notes"
	"github.com/hegemon/zkstack/poseidon2"
)

// MaxProofsPerEpoch bounds the number of proof hashes one epoch may fold.
const MaxProofsPerEpoch = 4096

// CircuitVersion increments whenever the sequencing AIR's constraints
// change.
const CircuitVersion = 1

// AirHash binds every epoch accumulation proof to this exact sequencing
// shape (§4.F), computed from the circuit's declared capacity.
var AirHash = airhash.Compute(airhash.Shape{
	DomainTag:               "hegemon-epoch-air-v1",
	CircuitVersion:          CircuitVersion,
	TraceWidth:              1,
	CycleLength:             1,
	TraceLength:             uint32(MaxProofsPerEpoch),
	InputCount:              uint32(MaxProofsPerEpoch),
	MaxConstraintDegree:     1,
	NumTransitionConstraint: 1,
})

var (
	// ErrTooManyProofs is returned when a witness exceeds MaxProofsPerEpoch.
	ErrTooManyProofs = errors.New("epochcircuit: too many proof hashes for one epoch")
	// ErrEmptyEpoch is returned when a witness has no proof hashes at all.
	ErrEmptyEpoch = errors.New("epochcircuit: epoch has no proof hashes")
	// ErrAccumulatorMismatch is returned by Verify when the recomputed
	// accumulator disagrees with the proof's claimed one.
	ErrAccumulatorMismatch = errors.New("epochcircuit: accumulator does not match proof hash sequence")
)

// ProofHash is one proof's 32-byte digest, as recorded by the settlement
// or batch circuit that produced it.
type ProofHash [32]byte

// Witness is the private ordering of proof hashes folded into one epoch.
type Witness struct {
	EpochID     uint64
	ProofHashes []ProofHash
}

// PublicInputs is an epoch accumulation proof's public record.
type PublicInputs struct {
	EpochID          uint64
	ProofCount       int
	ProofAccumulator goldilocks.Element
}

// accumulate absorbs epochID followed by every proof hash's 4-element
// decomposition into a fresh sponge under DomainEpochAccumulator, in
// submission order — order is load-bearing, matching the sequential fold
// original_source/circuits/epoch/src/air.rs describes.
func accumulate(w Witness) goldilocks.Element {
	elems := make([]goldilocks.Element, 0, 1+4*len(w.ProofHashes))
	elems = append(elems, goldilocks.New(w.EpochID))
	for _, h := range w.ProofHashes {
		limbs := notes.FieldElementsFrom32(h)
		elems = append(elems, limbs[:]...)
	}
	return poseidon2.Hash(poseidon2.DomainEpochAccumulator, elems)
}

// EpochAir is the sequencing AIR: column 0 is a monotonically incrementing
// row index, one row per absorbed proof hash.
type EpochAir struct {
	rows     int
	boundary []air.Assertion
}

// NewEpochAir returns the AIR for an epoch with rows proof hashes.
func NewEpochAir(rows int) EpochAir {
	a := EpochAir{rows: rows}
	a.boundary = []air.Assertion{
		{Column: 0, Row: 0, Value: goldilocks.Zero},
		{Column: 0, Row: rows - 1, Value: goldilocks.New(uint64(rows - 1))},
	}
	return a
}

// Width is 1: the running row index.
func (a EpochAir) Width() int { return 1 }

// TransitionDegrees: the index-increments-by-one constraint has degree 1.
func (a EpochAir) TransitionDegrees() []int { return []int{1} }

// EvaluateTransition returns next_index - current_index - 1, zero on a
// correctly sequenced trace.
func (a EpochAir) EvaluateTransition(f air.Frame) []goldilocks.Element {
	diff := f.Next[0].Sub(f.Current[0]).Sub(goldilocks.One)
	return []goldilocks.Element{diff}
}

// Boundary pins the first row's index to 0 and the last row's index to
// rows-1.
func (a EpochAir) Boundary() []air.Assertion { return a.boundary }

// BuildTrace lays out one row per proof hash, column 0 holding the row's
// index.
func BuildTrace(w Witness) (air.Trace, error) {
	if len(w.ProofHashes) == 0 {
		return nil, ErrEmptyEpoch
	}
	if len(w.ProofHashes) > MaxProofsPerEpoch {
		return nil, ErrTooManyProofs
	}
	trace := make(air.Trace, len(w.ProofHashes))
	for i := range w.ProofHashes {
		trace[i] = []goldilocks.Element{goldilocks.New(uint64(i))}
	}
	return trace, nil
}

// CheckAir validates w's sequencing trace against EpochAir's constraints.
func CheckAir(w Witness) error {
	trace, err := BuildTrace(w)
	if err != nil {
		return err
	}
	if len(trace) == 1 {
		// a single-row trace has no transition pairs to check; the
		// boundary assertions alone (index 0 at both ends) already hold.
		a := NewEpochAir(1)
		for _, assertion := range a.Boundary() {
			if !trace[assertion.Row][assertion.Column].Equal(assertion.Value) {
				return air.ErrBoundaryViolated
			}
		}
		return nil
	}
	return air.CheckConstraints(NewEpochAir(len(trace)), trace)
}

// Proof is an epoch accumulation proof's public record.
type Proof struct {
	PublicInputs PublicInputs
	AirHash      [32]byte
}

// Prove validates w's sequencing and folds its proof hashes into one
// accumulator, returning the resulting Proof.
func Prove(w Witness) (*Proof, error) {
	if err := CheckAir(w); err != nil {
		return nil, err
	}
	acc := accumulate(w)
	return &Proof{PublicInputs: PublicInputs{
		EpochID:          w.EpochID,
		ProofCount:       len(w.ProofHashes),
		ProofAccumulator: acc,
	}, AirHash: AirHash}, nil
}

// Verify recomputes w's accumulator and checks it against proof's claimed
// one; w's hashes are public record, unlike a transaction witness.
func Verify(proof *Proof, w Witness) error {
	if proof.AirHash != AirHash {
		return errors.New("epochcircuit: air_hash does not match this circuit's sequencing shape")
	}
	if err := CheckAir(w); err != nil {
		return err
	}
	if len(w.ProofHashes) != proof.PublicInputs.ProofCount {
		return ErrAccumulatorMismatch
	}
	if accumulate(w) != proof.PublicInputs.ProofAccumulator {
		return ErrAccumulatorMismatch
	}
	return nil
}
