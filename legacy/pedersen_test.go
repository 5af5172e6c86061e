// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package legacy

import "testing"

func TestCommitVerifyRoundTrip(t *testing.T) {
	p := NewPedersenCommitter()
	value := [32]byte{1, 2, 3}
	blinding := [32]byte{4, 5, 6}

	commitment, err := p.Commit(value, blinding)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	ok, err := p.Verify(commitment, value, blinding)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Fatalf("Verify rejected a valid opening")
	}
}

func TestVerifyRejectsWrongValue(t *testing.T) {
	p := NewPedersenCommitter()
	commitment, err := p.Commit([32]byte{1}, [32]byte{2})
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	ok, err := p.Verify(commitment, [32]byte{9}, [32]byte{2})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatalf("Verify accepted an opening with a tampered value")
	}
}

func TestAddIsHomomorphic(t *testing.T) {
	p := NewPedersenCommitter()

	var v1, v2 [32]byte
	v1[31] = 3
	v2[31] = 4
	var r1, r2 [32]byte
	r1[31] = 7
	r2[31] = 8

	c1, err := p.Commit(v1, r1)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	c2, err := p.Commit(v2, r2)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	sum, err := p.Add(c1, c2)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	var vSum, rSum [32]byte
	vSum[31] = 7
	rSum[31] = 15
	expected, err := p.Commit(vSum, rSum)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	if sum != expected {
		t.Fatalf("Add(Commit(v1,r1), Commit(v2,r2)) should equal Commit(v1+v2, r1+r2)")
	}
}

func TestVerifyBalanceAcceptsConservedValue(t *testing.T) {
	p := NewPedersenCommitter()

	var in1, in2, out [32]byte
	in1[31] = 3
	in2[31] = 4
	out[31] = 7
	var r1, r2, r3 [32]byte
	r1[31] = 1
	r2[31] = 2
	r3[31] = 3

	c1, _ := p.Commit(in1, r1)
	c2, _ := p.Commit(in2, r2)
	co, _ := p.Commit(out, r3)

	ok, err := p.VerifyBalance([][32]byte{c1, c2}, [][32]byte{co})
	if err != nil {
		t.Fatalf("VerifyBalance failed: %v", err)
	}
	if ok {
		t.Fatalf("VerifyBalance should fail unless blinding factors also cancel (r1+r2 != r3 here)")
	}

	var r3Matched [32]byte
	r3Matched[31] = r1[31] + r2[31]
	coMatched, _ := p.Commit(out, r3Matched)
	ok, err = p.VerifyBalance([][32]byte{c1, c2}, [][32]byte{coMatched})
	if err != nil {
		t.Fatalf("VerifyBalance failed: %v", err)
	}
	if !ok {
		t.Fatalf("VerifyBalance should accept when both values and blindings balance")
	}
}
