// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package recursion implements recursive proof verification: checking an
// inner FRI/Merkle proof's transcript from inside an outer AIR, using the
// RPO challenger family instead of Blake3 so the inner verification's
// Fiat-Shamir transcript stays purely algebraic (§4.F "recursive
// composition").
//
// Grounded on original_source/circuits/epoch/src/recursion/mod.rs's
// rationale ("Blake3 requires ~100 columns in AIR; RPO requires ~5
// columns") for why recursion mandates the RPO challenger family, and on
// merkle_air.rs/fri_air.rs's trace-layout comments (D RPO permutations for
// a depth-D Merkle path; one query's Merkle-path-plus-fold-consistency
// check per FRI layer). As with txcircuit and epochcircuit, the actual
// cryptographic re-verification (replaying the inner Fiat-Shamir
// transcript, checking Merkle openings, checking fold consistency) runs
// as ordinary Go code in VerifyInner — the winterfell-AIR machinery the
// original builds around these checks models every RPO permutation round
// as trace rows, which is out of scope for this module's tractable
// "check_constraints" arithmetization strategy (see air package doc
// comment). The RecursionAir this package exposes checks the narrower,
// genuinely algebraic invariant that survives that simplification: the
// inner proof's layer traversal is sequential and its per-layer query
// count is held constant end to end.
//
// Prove/Verify take a log.Logger the same way prover/verifier do, logging
// the outcome rather than using it for control flow.
package recursion

import (
	"errors"

	"github.com/luxfi/log"

	"github.com/hegemon/zkstack/air"
	"github.com/hegemon/zkstack/challenger"
	"github.com/hegemon/zkstack/fri"
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/proofoptions"
)

var (
	// ErrInnerProofInvalid is returned when the inner FRI proof fails its
	// own verification.
	ErrInnerProofInvalid = errors.New("recursion: inner proof failed verification")
	// ErrNotRPOFamily names the RPO-family requirement. VerifyInner does
	// not return it: it always replays the transcript under the RPO
	// family, so an inner proof produced under another family fails as
	// ErrInnerProofInvalid.
	ErrNotRPOFamily = errors.New("recursion: recursive composition requires the RPO challenger family")
	// ErrLayerCountMismatch is returned when the inner proof's declared
	// layer count disagrees with its actual root count.
	ErrLayerCountMismatch = errors.New("recursion: layer count does not match committed root count")
)

// InnerProofBundle is everything an outer recursive proof needs to
// re-verify an inner FRI proof.
type InnerProofBundle struct {
	Proof          *fri.Proof
	BaseDomainSize int
	Params         fri.Params
	ContextLabel   []byte
}

// VerifyInner replays bundle's Fiat-Shamir transcript over a fresh RPO
// challenger and checks its FRI folding/Merkle-opening consistency — the
// cryptographic half of recursive composition, run in ordinary Go per the
// package doc comment.
func VerifyInner(bundle InnerProofBundle) error {
	ch := challenger.New(proofoptions.ChallengerRPO, bundle.ContextLabel)
	if err := fri.Verify(ch, bundle.Proof, bundle.BaseDomainSize, bundle.Params); err != nil {
		return ErrInnerProofInvalid
	}
	return nil
}

// RecursionAir is the sequencing AIR over an inner proof's layer
// traversal: column 0 is the layer index (increments by one per layer),
// column 1 is the per-layer query count (held constant).
type RecursionAir struct {
	numLayers  int
	queryCount int
	boundary   []air.Assertion
}

// NewRecursionAir returns the AIR for an inner proof with numLayers
// folding layers, each queried queryCount times.
func NewRecursionAir(numLayers, queryCount int) RecursionAir {
	a := RecursionAir{numLayers: numLayers, queryCount: queryCount}
	a.boundary = []air.Assertion{
		{Column: 0, Row: 0, Value: goldilocks.Zero},
		{Column: 0, Row: numLayers - 1, Value: goldilocks.New(uint64(numLayers - 1))},
		{Column: 1, Row: 0, Value: goldilocks.New(uint64(queryCount))},
	}
	return a
}

// Width is 2: layer index and query count.
func (a RecursionAir) Width() int { return 2 }

// TransitionDegrees: layer-index increment is degree 1, query-count
// constancy is degree 1.
func (a RecursionAir) TransitionDegrees() []int { return []int{1, 1} }

// EvaluateTransition returns [next_index - current_index - 1,
// next_count - current_count], both zero on a valid trace.
func (a RecursionAir) EvaluateTransition(f air.Frame) []goldilocks.Element {
	indexStep := f.Next[0].Sub(f.Current[0]).Sub(goldilocks.One)
	countConst := f.Next[1].Sub(f.Current[1])
	return []goldilocks.Element{indexStep, countConst}
}

// Boundary pins the first and last layer indices and the query count.
func (a RecursionAir) Boundary() []air.Assertion { return a.boundary }

// BuildTrace lays out one row per folding layer declared in bundle's
// proof, column 0 the layer index and column 1 the fixed per-layer query
// count (bundle.Params.NumQueries).
func BuildTrace(bundle InnerProofBundle) (air.Trace, error) {
	numLayers := len(bundle.Proof.Roots) + 1 // +1 for the final constant layer
	if numLayers < 1 {
		return nil, ErrLayerCountMismatch
	}
	for _, q := range bundle.Proof.Queries {
		if len(q.Layers) != len(bundle.Proof.Roots) {
			return nil, ErrLayerCountMismatch
		}
	}
	trace := make(air.Trace, numLayers)
	for i := 0; i < numLayers; i++ {
		trace[i] = []goldilocks.Element{goldilocks.New(uint64(i)), goldilocks.New(uint64(bundle.Params.NumQueries))}
	}
	return trace, nil
}

// CheckAir validates bundle's layer-traversal trace against
// RecursionAir's constraints.
func CheckAir(bundle InnerProofBundle) error {
	trace, err := BuildTrace(bundle)
	if err != nil {
		return err
	}
	if len(trace) == 1 {
		a := NewRecursionAir(1, bundle.Params.NumQueries)
		for _, assertion := range a.Boundary() {
			if assertion.Row >= len(trace) {
				continue
			}
			if !trace[assertion.Row][assertion.Column].Equal(assertion.Value) {
				return air.ErrBoundaryViolated
			}
		}
		return nil
	}
	return air.CheckConstraints(NewRecursionAir(len(trace), bundle.Params.NumQueries), trace)
}

// Proof is a recursive composition proof: the inner bundle it vouches
// for, already checked by Prove.
type Proof struct {
	Inner InnerProofBundle
}

// Prove checks bundle's layer-traversal sequencing and its cryptographic
// validity, returning a Proof if both hold, and logs the outcome the same
// way prover's orchestration entry points do.
func Prove(logger log.Logger, bundle InnerProofBundle) (*Proof, error) {
	if err := CheckAir(bundle); err != nil {
		logger.Error("recursive composition rejected: layer sequencing invalid", "err", err)
		return nil, err
	}
	if err := VerifyInner(bundle); err != nil {
		logger.Error("recursive composition rejected: inner proof invalid", "err", err)
		return nil, err
	}
	logger.Info("recursive composition proof generated", "layers", len(bundle.Proof.Roots)+1)
	return &Proof{Inner: bundle}, nil
}

// Verify re-checks proof's inner bundle in full: sequencing and
// cryptographic validity.
func Verify(logger log.Logger, proof *Proof) error {
	if err := CheckAir(proof.Inner); err != nil {
		logger.Error("recursive composition verification failed: layer sequencing invalid", "err", err)
		return err
	}
	if err := VerifyInner(proof.Inner); err != nil {
		logger.Error("recursive composition verification failed: inner proof invalid", "err", err)
		return err
	}
	logger.Info("recursive composition proof verified")
	return nil
}
