// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package air implements the shared algebraic-intermediate-representation
// abstraction every circuit package (txcircuit, batchcircuit,
// settlementcircuit, disclosurecircuit, epochcircuit, recursion) builds its
// constraint system against: an execution trace laid out in
// CycleLength-row windows, a Frame giving a constraint access to the
// current and next row, transition constraints evaluated at every row
// pair, and boundary assertions pinning specific cells at specific rows to
// public-input values (§4.C/4.D/4.E, §8 "arithmetization correctness").
//
// Grounded on original_source/circuits/transaction/src/stark_air.rs's
// winterfell-based AIR ("Air, AirContext, Assertion, EvaluationFrame,
// TransitionConstraintDegree"), reimplemented from scratch since no Go
// equivalent of winterfell exists in the example pack. Rather than a full
// polynomial IOP (LDE, constraint composition, DEEP-ALI), this package
// implements the "check_constraints" trace-level verification strategy
// from original_source/circuits/transaction/src/proof.rs's prove()/verify()
// — arithmetic re-evaluation of every constraint over the concrete trace —
// which the specification's Non-goals explicitly leave as an
// implementation choice (SPEC_FULL.md "Open Question resolutions").
package air

import (
	"errors"

	"github.com/hegemon/zkstack/goldilocks"
)

// CycleLength is the number of trace rows allotted to one Poseidon2
// permutation window. It must be a power of two (so the eventual FRI
// low-degree extension has a clean evaluation domain) and at least
// poseidon2.Steps; rows beyond the permutation's own step count within a
// cycle are inert continuation rows that repeat the final state
// (SPEC_FULL.md's CYCLE_LENGTH/POSEIDON2_STEPS Open Question resolution).
const CycleLength = 64

// Frame gives a transition constraint access to two adjacent trace rows.
type Frame struct {
	Current []goldilocks.Element
	Next    []goldilocks.Element
}

// Assertion pins trace column Column at row Row to Value — a boundary
// constraint binding the trace to a public input (§4.C "Boundary
// constraints").
type Assertion struct {
	Column int
	Row    int
	Value  goldilocks.Element
}

// Air is implemented by every circuit package's concrete constraint
// system.
type Air interface {
	// Width is the number of trace columns.
	Width() int
	// TransitionDegrees returns the maximum algebraic degree of each
	// transition constraint, in order, used by air_hash to bind a proof to its
	// exact constraint system (§4.F).
	TransitionDegrees() []int
	// EvaluateTransition returns one value per transition constraint for
	// the given frame; a valid trace makes every value zero at every row
	// but the last.
	EvaluateTransition(frame Frame) []goldilocks.Element
	// Boundary returns every boundary assertion the trace must satisfy.
	Boundary() []Assertion
}

var (
	// ErrTransitionViolated is returned by CheckConstraints when some
	// transition constraint evaluates to a non-zero value.
	ErrTransitionViolated = errors.New("air: transition constraint violated")
	// ErrBoundaryViolated is returned by CheckConstraints when a boundary
	// assertion does not hold.
	ErrBoundaryViolated = errors.New("air: boundary assertion violated")
	// ErrTraceShape is returned when the trace's row width does not match
	// the AIR's declared Width.
	ErrTraceShape = errors.New("air: trace width does not match AIR width")
)

// Trace is a dense row-major execution trace: Trace[row][col].
type Trace [][]goldilocks.Element

// CheckConstraints re-evaluates every transition constraint at every
// adjacent row pair and every boundary assertion against trace, returning
// the first violation found. This is the trace-level analogue of what a
// full STARK would instead prove via a low-degree-extension polynomial
// IOP; see the package doc comment for why this module implements the
// former.
func CheckConstraints(a Air, trace Trace) error {
	width := a.Width()
	for _, row := range trace {
		if len(row) != width {
			return ErrTraceShape
		}
	}
	for i := 0; i+1 < len(trace); i++ {
		frame := Frame{Current: trace[i], Next: trace[i+1]}
		for _, v := range a.EvaluateTransition(frame) {
			if !v.IsZero() {
				return ErrTransitionViolated
			}
		}
	}
	for _, assertion := range a.Boundary() {
		if assertion.Row < 0 || assertion.Row >= len(trace) {
			return ErrBoundaryViolated
		}
		if assertion.Column < 0 || assertion.Column >= width {
			return ErrBoundaryViolated
		}
		if !trace[assertion.Row][assertion.Column].Equal(assertion.Value) {
			return ErrBoundaryViolated
		}
	}
	return nil
}
