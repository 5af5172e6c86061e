// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rpo implements the optional algebraic challenger family named in
// the specification's Open Questions (§9): "Implementations MAY offer an
// optional RPO-based challenger behind a feature flag, but interoperability
// requires announcing the family in the proof header." It is never the
// default; proofoptions.ChallengerRPO opts into it explicitly. Proofs in
// this module have no serialized form and no header naming their family: a
// verifier uses the family of the challenger its caller constructs.
//
// Parameters are grounded on
// original_source/circuits/epoch/src/recursion/rpo_air.rs: state width 12
// over Goldilocks, rate = 8 (indices 4-11), capacity = 4 (indices 0-3),
// 7 rounds, forward S-box x^7 / inverse S-box x^e with 7*e = 1 mod (p-1).
// Round constants are generated the same way as poseidon2's (ChaCha20 over a
// fixed seed) rather than Miden's published RPO256 constants: the spec does
// not require byte-exact interoperability with any external RPO
// implementation, only internal determinism and an announced family.
package rpo

import (
	"math/big"
	"sync"

	"golang.org/x/crypto/chacha20"

	"github.com/hegemon/zkstack/goldilocks"
)

// Width, Rate, Capacity mirror the parameters in original_source's
// rpo_air.rs.
const (
	Width    = 12
	Rate     = 8
	Capacity = Width - Rate
	Rounds   = 7
)

// Seed is the fixed seed RPO's round constants are derived from, distinct
// from poseidon2.Seed so the two permutations never share constants.
const Seed = "hegemon-tx-rpo-seed-2026!!!!!!!!"

// inverseExponent is the S-box inverse exponent: the unique e such that
// x -> x^7 and x -> x^e are mutual inverses over F_p^*, i.e. 7*e = 1 mod
// (p-1).
var inverseExponent = func() uint64 {
	// 7 * e ≡ 1 (mod p-1); p-1 = 2^32 * (2^32-1) is not divisible by 7 so 7
	// is invertible mod p-1. Computed once with math/big, since p-1 does
	// not fit in an int64.
	pMinus1 := new(big.Int).SetUint64(goldilocks.Modulus - 1)
	return new(big.Int).ModInverse(big.NewInt(7), pMinus1).Uint64()
}()

type State [Width]goldilocks.Element

var (
	rcOnce sync.Once
	rc     [2 * Rounds][Width]goldilocks.Element // even index = forward-round constants, odd = inverse-round constants
)

func constants() *[2 * Rounds][Width]goldilocks.Element {
	rcOnce.Do(func() {
		key := [32]byte{}
		copy(key[:], Seed)
		var nonce [chacha20.NonceSize]byte
		cipher, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
		if err != nil {
			panic("rpo: chacha20 init: " + err.Error())
		}
		buf := make([]byte, 2*Rounds*Width*8)
		cipher.XORKeyStream(buf, buf)
		idx := 0
		for r := 0; r < 2*Rounds; r++ {
			for c := 0; c < Width; c++ {
				v := uint64(0)
				for k := 0; k < 8; k++ {
					v = v<<8 | uint64(buf[idx])
					idx++
				}
				rc[r][c] = goldilocks.New(v)
			}
		}
	})
	return &rc
}

func sboxFwd(x goldilocks.Element) goldilocks.Element {
	x2 := x.Square()
	x4 := x2.Square()
	return x4.Mul(x2).Mul(x)
}

func sboxInv(x goldilocks.Element) goldilocks.Element {
	return x.Exp(inverseExponent)
}

// mds applies a 12x12 circulant MDS matrix: out[i] = sum_j state[(i-j) mod
// Width] * circ[j], with the first row generated from small distinct
// coefficients so the matrix has full rank.
var circ = func() [Width]goldilocks.Element {
	var c [Width]goldilocks.Element
	for i := range c {
		c[i] = goldilocks.New(uint64(i*2 + 3))
	}
	return c
}()

func mds(s *State) {
	var out State
	for i := 0; i < Width; i++ {
		acc := goldilocks.Zero
		for j := 0; j < Width; j++ {
			acc = acc.Add(s[(i-j+Width)%Width].Mul(circ[j]))
		}
		out[i] = acc
	}
	*s = out
}

// Permute runs the Rounds-round RPO permutation over s in place: each round
// adds a constant bank, applies the forward S-box to every cell, mixes via
// MDS, then repeats with the inverse S-box and the round's second constant
// bank.
func Permute(s *State) {
	k := constants()
	for r := 0; r < Rounds; r++ {
		for i := range s {
			s[i] = s[i].Add(k[2*r][i])
		}
		for i := range s {
			s[i] = sboxFwd(s[i])
		}
		mds(s)
		for i := range s {
			s[i] = s[i].Add(k[2*r+1][i])
		}
		for i := range s {
			s[i] = sboxInv(s[i])
		}
		mds(s)
	}
}
