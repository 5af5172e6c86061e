// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package challenger

import (
	"testing"

	"github.com/hegemon/zkstack/proofoptions"
)

func TestDeterministicAcrossFamilies(t *testing.T) {
	for _, fam := range []proofoptions.ChallengerFamily{
		proofoptions.ChallengerHash,
		proofoptions.ChallengerAlgebraicSponge,
		proofoptions.ChallengerRPO,
	} {
		c1 := New(fam, []byte("context"))
		c1.Observe([]byte("root-a"))
		d1 := c1.DrawElement()

		c2 := New(fam, []byte("context"))
		c2.Observe([]byte("root-a"))
		d2 := c2.DrawElement()

		if d1 != d2 {
			t.Fatalf("family %d: draws diverged: %v != %v", fam, d1, d2)
		}
	}
}

func TestConsecutiveDrawsDiffer(t *testing.T) {
	c := New(proofoptions.ChallengerAlgebraicSponge, []byte("ctx"))
	a := c.DrawElement()
	b := c.DrawElement()
	if a == b {
		t.Fatalf("consecutive draws must differ")
	}
}

func TestObserveOrderMatters(t *testing.T) {
	c1 := New(proofoptions.ChallengerHash, nil)
	c1.Observe([]byte("a"))
	c1.Observe([]byte("b"))
	d1 := c1.DrawElement()

	c2 := New(proofoptions.ChallengerHash, nil)
	c2.Observe([]byte("b"))
	c2.Observe([]byte("a"))
	d2 := c2.DrawElement()

	if d1 == d2 {
		t.Fatalf("swapping observe order should change the draw")
	}
}

func TestDrawQueryIndexInRange(t *testing.T) {
	c := New(proofoptions.ChallengerRPO, []byte("q"))
	for i := 0; i < 50; i++ {
		idx := c.DrawQueryIndex(1024)
		if idx >= 1024 {
			t.Fatalf("query index %d out of range", idx)
		}
	}
}

func TestFamilyRoundTrip(t *testing.T) {
	c := New(proofoptions.ChallengerRPO, nil)
	if c.Family() != proofoptions.ChallengerRPO {
		t.Fatalf("Family() did not report the constructed family")
	}
}
