// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package txcircuit

import (
	"github.com/hegemon/zkstack/air"
	"github.com/hegemon/zkstack/goldilocks"
)

// TxAir is the algebraic constraint system layered on top of the witness
// validation FromWitness already performs: it checks that the anchor is
// carried unchanged across every slot row and that the native-asset
// running delta accumulates each slot's signed value correctly. The
// heavier cryptographic checks (hash recomputation, Merkle path,
// multi-asset balance matching) are business logic performed once in
// FromWitness rather than re-expressed as degree-bounded polynomial
// constraints — see the package doc comment for why.
//
// Columns: [0] merkle root echo, [1] running native-asset delta,
// [2] slot value, [3] slot sign (+1 for an input, -1 for an output).
type TxAir struct {
	numSlots int
}

// NewTxAir returns the AIR for a transaction with the given total slot
// count (inputs + outputs).
func NewTxAir(numSlots int) TxAir { return TxAir{numSlots: numSlots} }

func (TxAir) Width() int { return 4 }

func (TxAir) TransitionDegrees() []int { return []int{1, 2, 2} }

func (TxAir) EvaluateTransition(f air.Frame) []goldilocks.Element {
	anchorConstant := f.Next[0].Sub(f.Current[0])
	sign := f.Next[3]
	signIsUnit := sign.Mul(sign).Sub(goldilocks.One)
	deltaUpdate := f.Next[1].Sub(f.Current[1].Add(sign.Mul(f.Next[2])))
	return []goldilocks.Element{anchorConstant, signIsUnit, deltaUpdate}
}

func (a TxAir) Boundary() []air.Assertion {
	return nil // populated per-instance by BuildAirTrace's caller via boundaryFor
}

// boundaryFor returns the boundary assertions for a trace built from the
// given merkle root, first-row value/sign, and final native delta.
func boundaryFor(merkleRoot goldilocks.Element, firstValue, firstSign goldilocks.Element, lastRow int, nativeDelta goldilocks.Element) []air.Assertion {
	return []air.Assertion{
		{Column: 0, Row: 0, Value: merkleRoot},
		{Column: 1, Row: 0, Value: firstSign.Mul(firstValue)},
		{Column: 1, Row: lastRow, Value: nativeDelta},
	}
}

// BuildAirTrace lays out the native-asset running-sum trace for w: one row
// per input (sign +1) followed by one row per output (sign -1), each
// carrying the transaction's anchor unchanged.
func BuildAirTrace(w Witness) (air.Trace, []air.Assertion, error) {
	rows := len(w.Inputs) + len(w.Outputs)
	if rows == 0 {
		return nil, nil, &Error{Kind: ConstraintViolation, Detail: "transaction has no inputs or outputs"}
	}
	trace := make(air.Trace, rows)
	runningDelta := goldilocks.Zero
	row := 0
	var firstValue, firstSign goldilocks.Element
	for _, in := range w.Inputs {
		if in.Note.AssetID != NativeAssetID {
			trace[row] = []goldilocks.Element{w.MerkleRoot, runningDelta, goldilocks.Zero, goldilocks.One}
			row++
			continue
		}
		value := goldilocks.New(in.Note.Value)
		runningDelta = runningDelta.Add(value)
		trace[row] = []goldilocks.Element{w.MerkleRoot, runningDelta, value, goldilocks.One}
		if row == 0 {
			firstValue, firstSign = value, goldilocks.One
		}
		row++
	}
	negOne := goldilocks.One.Neg()
	for _, out := range w.Outputs {
		if out.Note.AssetID != NativeAssetID {
			trace[row] = []goldilocks.Element{w.MerkleRoot, runningDelta, goldilocks.Zero, negOne}
			row++
			continue
		}
		value := goldilocks.New(out.Note.Value)
		runningDelta = runningDelta.Sub(value)
		trace[row] = []goldilocks.Element{w.MerkleRoot, runningDelta, value, negOne}
		if row == 0 {
			firstValue, firstSign = value, negOne
		}
		row++
	}
	assertions := boundaryFor(w.MerkleRoot, firstValue, firstSign, rows-1, runningDelta)
	return trace, assertions, nil
}

// assertedTxAir wraps TxAir with a fixed set of boundary assertions
// produced by BuildAirTrace, since Boundary() must be derived per
// transaction rather than being a compile-time constant.
type assertedTxAir struct {
	TxAir
	assertions []air.Assertion
}

func (a assertedTxAir) Boundary() []air.Assertion { return a.assertions }

// CheckAir runs air.CheckConstraints against w's derived trace.
func CheckAir(w Witness) error {
	trace, assertions, err := BuildAirTrace(w)
	if err != nil {
		return err
	}
	a := assertedTxAir{TxAir: NewTxAir(len(trace)), assertions: assertions}
	if err := air.CheckConstraints(a, trace); err != nil {
		return &Error{Kind: ConstraintViolation, Detail: err.Error()}
	}
	return nil
}
