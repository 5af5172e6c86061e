// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpo

import (
	"testing"

	"github.com/hegemon/zkstack/goldilocks"
)

func TestPermuteDistinguishesInputs(t *testing.T) {
	var a, b State
	a[0] = a[0].Add(goldilocks.One)
	Permute(&a)
	Permute(&b)
	if a == b {
		t.Fatalf("distinct initial states produced equal permutation outputs")
	}
}

func TestPermuteChangesState(t *testing.T) {
	var s State
	before := s
	Permute(&s)
	if s == before {
		t.Fatalf("Permute must change the state")
	}
}

func TestSboxRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 12345, 0xFFFFFFFF} {
		in := goldilocks.New(v)
		x := sboxFwd(in)
		y := sboxInv(x)
		if y != in {
			t.Fatalf("sbox round trip failed for %d: got %v", v, y)
		}
	}
}
