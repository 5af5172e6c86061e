// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package challenger implements the Fiat-Shamir transcript every
// prove()/verify() call drives to derive constraint-composition
// coefficients, FRI folding challenges, and query indices (§4.F point 3,
// §4.G point 3).
//
// Grounded on zk/stark.go's Transcript (sha256-based Append/Challenge),
// generalized into three interchangeable families: Hash (Blake3, the
// default for non-recursive proofs), AlgebraicSponge (Poseidon2, mandatory
// once proofs compose per §4.H), and the optional RPO family named in §9's
// Open Question. All three sit behind the single concrete Challenger type,
// which switches on its proofoptions.ChallengerFamily at run time on every
// call, including the calls made from fri's folding and query loops; there
// is no generic, per-family challenger type.
package challenger

import (
	"encoding/binary"

	"github.com/zeebo/blake3"

	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/poseidon2"
	"github.com/hegemon/zkstack/proofoptions"
	"github.com/hegemon/zkstack/rpo"
)

// sponge is a minimal absorb/squeeze interface. Nothing in this package
// implements or uses it: the Poseidon2 and RPO families call
// poseidon2.Absorb and absorbRPO directly.
type sponge interface {
	absorb(elems []goldilocks.Element)
	squeeze() goldilocks.Element
}

// Challenger is a Fiat-Shamir transcript. The zero value is invalid; use
// New.
type Challenger struct {
	family proofoptions.ChallengerFamily

	// Hash family state.
	blakeHasher *blake3.Hasher

	// AlgebraicSponge family state.
	poseidonState poseidon2.State

	// RPO family state.
	rpoState rpo.State
}

// New returns a fresh Challenger seeded with the given domain-separation
// context (typically the air_hash plus the public inputs), under the given
// family.
func New(family proofoptions.ChallengerFamily, context []byte) *Challenger {
	c := &Challenger{family: family}
	switch family {
	case proofoptions.ChallengerHash:
		c.blakeHasher = blake3.New()
		c.blakeHasher.Write(context)
	case proofoptions.ChallengerAlgebraicSponge:
		c.poseidonState = poseidon2.InitialState(poseidon2.DomainMerkle)
		poseidon2.Absorb(&c.poseidonState, goldilocksElementsFromBytes(context))
	case proofoptions.ChallengerRPO:
		c.rpoState = rpo.State{}
		absorbRPO(&c.rpoState, goldilocksElementsFromBytes(context))
	default:
		panic("challenger: unknown family")
	}
	return c
}

// Family reports which family this transcript uses. Proofs in this module
// have no serialized form, so no proof header records it.
func (c *Challenger) Family() proofoptions.ChallengerFamily { return c.family }

// Observe appends commitment bytes (a Merkle root, an OOD evaluation, a
// batch of query responses) to the transcript. Order is load-bearing:
// observing the same bytes in a different order yields different
// challenges.
func (c *Challenger) Observe(data []byte) {
	switch c.family {
	case proofoptions.ChallengerHash:
		c.blakeHasher.Write(data)
	case proofoptions.ChallengerAlgebraicSponge:
		poseidon2.Absorb(&c.poseidonState, goldilocksElementsFromBytes(data))
	case proofoptions.ChallengerRPO:
		absorbRPO(&c.rpoState, goldilocksElementsFromBytes(data))
	}
}

// ObserveElement absorbs a single field element directly, avoiding a
// byte round-trip in the algebraic families' hot paths.
func (c *Challenger) ObserveElement(e goldilocks.Element) {
	switch c.family {
	case proofoptions.ChallengerHash:
		b := e.Bytes8()
		c.blakeHasher.Write(b[:])
	case proofoptions.ChallengerAlgebraicSponge:
		poseidon2.Absorb(&c.poseidonState, []goldilocks.Element{e})
	case proofoptions.ChallengerRPO:
		absorbRPO(&c.rpoState, []goldilocks.Element{e})
	}
}

// DrawElement derives the next field-element challenge deterministically
// from everything observed so far, then folds the draw back into the
// transcript so consecutive draws differ.
func (c *Challenger) DrawElement() goldilocks.Element {
	switch c.family {
	case proofoptions.ChallengerHash:
		sum := c.blakeHasher.Sum(nil)
		v := binary.LittleEndian.Uint64(sum[:8])
		c.blakeHasher.Write(sum)
		return goldilocks.New(v)
	case proofoptions.ChallengerAlgebraicSponge:
		out := poseidon2.Squeeze(&c.poseidonState)
		poseidon2.Permute(&c.poseidonState)
		return out[0]
	case proofoptions.ChallengerRPO:
		out := squeezeRPO(&c.rpoState)
		rpo.Permute(&c.rpoState)
		return out
	default:
		panic("challenger: unknown family")
	}
}

// DrawQueryIndex derives a query index in [0, domainSize) by reducing a
// fresh draw modulo the domain size. domainSize must be a power of two, so
// the reduction introduces no measurable bias for the domain sizes this
// module uses (2^20 or smaller, versus a 64-bit draw).
func (c *Challenger) DrawQueryIndex(domainSize uint64) uint64 {
	return c.DrawElement().Uint64() % domainSize
}

func goldilocksElementsFromBytes(data []byte) []goldilocks.Element {
	elems := make([]goldilocks.Element, 0, (len(data)+7)/8)
	for i := 0; i < len(data); i += 8 {
		var chunk [8]byte
		n := copy(chunk[:], data[i:])
		_ = n
		v := binary.BigEndian.Uint64(chunk[:])
		elems = append(elems, goldilocks.New(v))
	}
	if len(elems) == 0 {
		elems = append(elems, goldilocks.Zero)
	}
	return elems
}

func absorbRPO(s *rpo.State, elems []goldilocks.Element) {
	for len(elems) > 0 {
		n := rpo.Rate
		if n > len(elems) {
			n = len(elems)
		}
		for i := 0; i < n; i++ {
			s[rpo.Capacity+i] = s[rpo.Capacity+i].Add(elems[i])
		}
		rpo.Permute(s)
		elems = elems[n:]
	}
}

func squeezeRPO(s *rpo.State) goldilocks.Element {
	return s[rpo.Capacity]
}
