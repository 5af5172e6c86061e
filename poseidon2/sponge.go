// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package poseidon2

import "github.com/hegemon/zkstack/goldilocks"

// DomainTag separates independent uses of the same permutation so that a
// digest computed for one purpose can never collide with a digest computed
// for another, even given identical input elements.
type DomainTag uint64

// Transaction-level domain tags (§3, §6).
const (
	DomainNote      DomainTag = 1
	DomainNullifier DomainTag = 2
	DomainBalance   DomainTag = 3
	DomainMerkle    DomainTag = 4
)

// Consensus-boundary (settlement) domain tags, distinct from the
// transaction-level tags above (§6).
const (
	DomainSettlement          DomainTag = 17
	DomainSettlementNullifier DomainTag = 19
)

// Epoch proof-accumulation domain tag (§4.F), distinct from every
// transaction-level and settlement-level tag above.
const DomainEpochAccumulator DomainTag = 23

// InitialState returns a fresh sponge state for the given domain: the
// capacity's low cell holds the domain tag, every other cell is zero.
func InitialState(tag DomainTag) State {
	var s State
	s[Rate] = goldilocks.New(uint64(tag))
	return s
}

// Absorb consumes elems in Rate-sized chunks, permuting after each full
// chunk (the last partial chunk is right-padded with zeros before its
// permutation). Input order is load-bearing: absorbing the same elements
// in a different order produces a different digest.
func Absorb(s *State, elems []goldilocks.Element) {
	for len(elems) > 0 {
		n := Rate
		if n > len(elems) {
			n = len(elems)
		}
		for i := 0; i < n; i++ {
			s[i] = s[i].Add(elems[i])
		}
		for i := n; i < Rate; i++ {
			// zero padding: adding Zero is a no-op, kept explicit for
			// readability of the absorb schedule.
			s[i] = s[i].Add(goldilocks.Zero)
		}
		Permute(s)
		elems = elems[n:]
	}
}

// Squeeze returns the Rate rate-cells of the current state as the squeeze
// output. Every helper in this module needs at most one squeeze call — the
// first rate cell is the "digest" referred to throughout the specification.
func Squeeze(s *State) [Rate]goldilocks.Element {
	var out [Rate]goldilocks.Element
	copy(out[:], s[:Rate])
	return out
}

// Hash computes Sponge(tag)(elems) and returns the first rate cell (the
// digest), matching the specification's
// hash(domain, elems) = first_rate_cell_after(absorb_all(initial_state(domain), elems)).
func Hash(tag DomainTag, elems []goldilocks.Element) goldilocks.Element {
	s := InitialState(tag)
	Absorb(&s, elems)
	return Squeeze(&s)[0]
}

// HashFull is like Hash but returns the entire rate-width squeeze output,
// used where a wider digest is needed (e.g. a 48-byte / 6-limb consensus
// commitment).
func HashFull(tag DomainTag, elems []goldilocks.Element) [Rate]goldilocks.Element {
	s := InitialState(tag)
	Absorb(&s, elems)
	return Squeeze(&s)
}
