// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package air

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hegemon/zkstack/goldilocks"
)

// incrementAir is a minimal AIR whose only rule is "next == current + 1",
// used to exercise CheckConstraints without pulling in a real circuit
// package.
type incrementAir struct {
	finalValue goldilocks.Element
	rows       int
}

func (incrementAir) Width() int                  { return 1 }
func (incrementAir) TransitionDegrees() []int     { return []int{1} }
func (a incrementAir) EvaluateTransition(f Frame) []goldilocks.Element {
	return []goldilocks.Element{f.Next[0].Sub(f.Current[0]).Sub(goldilocks.One)}
}
func (a incrementAir) Boundary() []Assertion {
	return []Assertion{
		{Column: 0, Row: 0, Value: goldilocks.Zero},
		{Column: 0, Row: a.rows - 1, Value: a.finalValue},
	}
}

func buildTrace(rows int) Trace {
	t := make(Trace, rows)
	for i := range t {
		t[i] = []goldilocks.Element{goldilocks.New(uint64(i))}
	}
	return t
}

func TestCheckConstraintsAcceptsValidTrace(t *testing.T) {
	trace := buildTrace(8)
	a := incrementAir{finalValue: goldilocks.New(7), rows: 8}
	require.NoError(t, CheckConstraints(a, trace))
}

func TestCheckConstraintsRejectsBrokenTransition(t *testing.T) {
	trace := buildTrace(8)
	trace[4][0] = trace[4][0].Add(goldilocks.One)
	a := incrementAir{finalValue: goldilocks.New(8), rows: 8}
	require.ErrorIs(t, CheckConstraints(a, trace), ErrTransitionViolated)
}

func TestCheckConstraintsRejectsBadBoundary(t *testing.T) {
	trace := buildTrace(8)
	a := incrementAir{finalValue: goldilocks.New(99), rows: 8}
	require.ErrorIs(t, CheckConstraints(a, trace), ErrBoundaryViolated)
}

func TestCheckConstraintsRejectsWidthMismatch(t *testing.T) {
	trace := Trace{
		{goldilocks.Zero, goldilocks.Zero},
		{goldilocks.One},
	}
	a := incrementAir{finalValue: goldilocks.One, rows: 2}
	require.ErrorIs(t, CheckConstraints(a, trace), ErrTraceShape)
}
