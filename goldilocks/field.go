// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package goldilocks implements arithmetic over the Goldilocks prime field
// p = 2^64 - 2^32 + 1, the field every AIR and the Poseidon2 permutation in
// this module is defined over.
//
// Grounded on the teacher's zk/stark.go GoldilocksField, generalized from a
// math/big reduction to a fixed-width uint256 reduction for the 128-bit
// intermediate product a Mul produces.
package goldilocks

import (
	"errors"
	"math/bits"

	"github.com/holiman/uint256"
)

// Modulus is the Goldilocks prime p = 2^64 - 2^32 + 1.
const Modulus uint64 = 0xFFFFFFFF00000001

// Generator is a primitive element of F_p^*; its order is p-1, which is
// divisible by 2^32 (TwoAdicity), making it usable as the base for
// power-of-two roots of unity.
const Generator uint64 = 7

// TwoAdicity is the largest k such that 2^k | (p-1).
const TwoAdicity = 32

var modulus256 = uint256.NewInt(Modulus)

// Element is a field element in canonical form: always < Modulus.
type Element uint64

// Zero and One are the additive and multiplicative identities.
const (
	Zero Element = 0
	One  Element = 1
)

var (
	// ErrNonCanonical is returned by the Decode* functions when the input
	// byte string is not the unique canonical encoding of a field element:
	// either the zero-prefix is not exact or the low 8 bytes encode a value
	// >= Modulus.
	ErrNonCanonical = errors.New("goldilocks: non-canonical field element encoding")
)

// New reduces a raw uint64 into canonical form.
func New(v uint64) Element {
	if v >= Modulus {
		v -= Modulus
	}
	return Element(v)
}

// Add returns a+b mod p.
func (a Element) Add(b Element) Element {
	sum, carry := bits.Add64(uint64(a), uint64(b), 0)
	if carry != 0 {
		// sum overflowed 2^64; true value is sum + 2^64 = sum + (p + (2^32-1))
		sum, carry = bits.Add64(sum, epsilon, 0)
		if carry != 0 {
			sum += epsilon
		}
	}
	if sum >= Modulus {
		sum -= Modulus
	}
	return Element(sum)
}

// Sub returns a-b mod p.
func (a Element) Sub(b Element) Element {
	diff, borrow := bits.Sub64(uint64(a), uint64(b), 0)
	if borrow != 0 {
		diff -= epsilon
	}
	return Element(diff)
}

// Neg returns -a mod p.
func (a Element) Neg() Element {
	if a == 0 {
		return 0
	}
	return Element(Modulus - uint64(a))
}

// epsilon = 2^64 - p = 2^32 - 1.
const epsilon uint64 = (1 << 32) - 1

// Mul returns a*b mod p, reducing the 128-bit product via a uint256 divmod
// against the Goldilocks modulus.
func (a Element) Mul(b Element) Element {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	var wide uint256.Int
	wide.SetUint64(hi)
	wide.Lsh(&wide, 64)
	var loInt uint256.Int
	loInt.SetUint64(lo)
	wide.Or(&wide, &loInt)
	var rem uint256.Int
	rem.Mod(&wide, modulus256)
	return Element(rem.Uint64())
}

// Square returns a^2 mod p.
func (a Element) Square() Element { return a.Mul(a) }

// Exp returns a^e mod p via square-and-multiply.
func (a Element) Exp(e uint64) Element {
	result := One
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
		e >>= 1
	}
	return result
}

// Inv returns the multiplicative inverse of a via Fermat's little theorem
// (a^(p-2)). Panics on a==0: callers at the boundary (trace/witness
// construction) must never invert zero; that is a prover bug, not a runtime
// condition to recover from.
func (a Element) Inv() Element {
	if a == 0 {
		panic("goldilocks: inverse of zero")
	}
	return a.Exp(Modulus - 2)
}

// IsZero reports whether a is the additive identity.
func (a Element) IsZero() bool { return a == 0 }

// Equal reports value equality (both operands are always kept canonical).
func (a Element) Equal(b Element) bool { return a == b }

// Uint64 returns the canonical uint64 representation.
func (a Element) Uint64() uint64 { return uint64(a) }

// RootOfUnity returns a primitive n-th root of unity for n a power of two
// with n <= 2^TwoAdicity. Used by the FRI low-degree extension to build the
// evaluation domain.
func RootOfUnity(n uint64) Element {
	if n == 0 || n&(n-1) != 0 {
		panic("goldilocks: RootOfUnity requires a power-of-two order")
	}
	log2n := bits.TrailingZeros64(n)
	if log2n > TwoAdicity {
		panic("goldilocks: requested root of unity exceeds field's two-adicity")
	}
	// generator^((p-1) / n)
	exp := (Modulus - 1) / n
	return Element(Generator).Exp(exp)
}
