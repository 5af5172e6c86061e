// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poseidon2

import "github.com/hegemon/zkstack/goldilocks"

// State is the 12-element Poseidon2 sponge state.
type State [Width]goldilocks.Element

// sbox applies the x^7 S-box: x^7 = x * (x^2)^3.
func sbox(x goldilocks.Element) goldilocks.Element {
	x2 := x.Square()
	x4 := x2.Square()
	x6 := x4.Mul(x2)
	return x6.Mul(x)
}

// applyMDS4 applies the fixed 4x4 MDS matrix used within each 4-element
// block of mds_light: the standard Poseidon2 M4 circulant
// [[2,3,1,1],[1,2,3,1],[1,1,2,3],[3,1,1,2]], evaluated with additions
// alone via the t01/t23/t0123 formulation.
func applyMDS4(s *[4]goldilocks.Element) {
	x0, x1, x2, x3 := s[0], s[1], s[2], s[3]

	t01 := x0.Add(x1)
	t23 := x2.Add(x3)
	t0123 := t01.Add(t23)
	t01123 := t0123.Add(x1)
	t01233 := t0123.Add(x3)

	s[3] = t01233.Add(x0.Add(x0))
	s[1] = t01123.Add(x2.Add(x2))
	s[0] = t01123.Add(t01)
	s[2] = t01233.Add(t23)
}

// mdsLight applies applyMDS4 to each of the three 4-element blocks of the
// 12-wide state, then broadcasts a cross-block sum: for each position idx
// within a block, every block's cell at that position is incremented by
// the sum of all three blocks' cells at that position.
func mdsLight(s *State) {
	var blocks [3][4]goldilocks.Element
	for b := 0; b < 3; b++ {
		copy(blocks[b][:], s[b*4:b*4+4])
		applyMDS4(&blocks[b])
	}
	var sums [4]goldilocks.Element
	for pos := 0; pos < 4; pos++ {
		sums[pos] = blocks[0][pos].Add(blocks[1][pos]).Add(blocks[2][pos])
	}
	for b := 0; b < 3; b++ {
		for pos := 0; pos < 4; pos++ {
			s[b*4+pos] = blocks[b][pos].Add(sums[pos])
		}
	}
}

// matmulInternal applies the internal round's linear layer: a diagonal
// matrix plus a rank-1 sum broadcast. sum = sum(state); state[i] =
// state[i]*diag[i] + sum.
func matmulInternal(s *State, diag *[Width]goldilocks.Element) {
	sum := goldilocks.Zero
	for i := 0; i < Width; i++ {
		sum = sum.Add(s[i])
	}
	for i := 0; i < Width; i++ {
		s[i] = s[i].Mul(diag[i]).Add(sum)
	}
}

// externalRound adds round constants to every cell, applies the S-box to
// every cell, then the MDS-light linear layer.
func externalRound(s *State, rc *[Width]goldilocks.Element) {
	for i := 0; i < Width; i++ {
		s[i] = sbox(s[i].Add(rc[i]))
	}
	mdsLight(s)
}

// internalRound adds a single round constant and applies the S-box to cell
// 0 only, then the diagonal-plus-sum-broadcast linear layer.
func internalRound(s *State, rc goldilocks.Element, diag *[Width]goldilocks.Element) {
	s[0] = sbox(s[0].Add(rc))
	matmulInternal(s, diag)
}

// step applies the idx-th permutation step (0 <= idx < Steps) to s:
// step 0 is the initial MDS-light linear layer; the next ExternalRounds
// steps are external rounds from bank 0; the next InternalRounds steps are
// internal rounds; the final ExternalRounds steps are external rounds from
// bank 1.
func step(s *State, idx int, rc *roundConstants) {
	if idx == 0 {
		mdsLight(s)
		return
	}
	idx--
	if idx < ExternalRounds {
		externalRound(s, &rc.external[0][idx])
		return
	}
	idx -= ExternalRounds
	if idx < InternalRounds {
		internalRound(s, rc.internal[idx], &rc.diag)
		return
	}
	idx -= InternalRounds
	externalRound(s, &rc.external[1][idx])
}

// Permute runs the full Poseidon2 permutation (all Steps steps) over s
// in place.
func Permute(s *State) {
	rc := constants()
	for i := 0; i < Steps; i++ {
		step(s, i, rc)
	}
}
