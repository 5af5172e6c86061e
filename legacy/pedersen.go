// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package legacy keeps the teacher's BN254 Pedersen commitment scheme
// (zk/commitment.go's PedersenScheme / zk/pedersen.go's PedersenCommitter)
// available as an explicitly opt-in, non-default commitment path. It is
// NOT wired into txcircuit/batchcircuit/settlementcircuit: those operate
// over the Goldilocks field with Poseidon2, and a discrete-log commitment
// over a different curve's scalar field cannot be folded into that
// arithmetization without a costly field-switching gadget this module does
// not implement. Pedersen commitments also break under a quantum adversary
// (Shor's algorithm solves the discrete log they rely on), which is why
// §1 scopes the default note-commitment scheme to Poseidon2 hashing.
//
// What is kept here is useful on its own: a homomorphic commitment an
// operator can use outside the PQ proof pipeline (e.g. auditing balances
// without Poseidon2), exercising consensys/gnark-crypto the same way the
// teacher does. Unlike the teacher's compressG1WithCache/decompressG1
// pair — which "compresses" a point by hashing it into a process-local
// cache, so a commitment cannot be opened after a restart or on another
// process — this version uses gnark-crypto's own compressed point
// encoding (bn254.G1Affine.Bytes/SetBytes), so a commitment is a real,
// portable 32-byte EC point.
package legacy

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

var (
	ErrInvalidCommitmentInput = errors.New("legacy: invalid commitment input")
	ErrPointNotOnCurve        = errors.New("legacy: point not on curve")
)

// PedersenCommitter commits to a 32-byte value with a 32-byte blinding
// factor: C = v*G + r*H, where G and H are nothing-up-my-sleeve generators.
type PedersenCommitter struct {
	G bn254.G1Affine
	H bn254.G1Affine
}

// NewPedersenCommitter builds a committer with the BN254 base generator
// for G and a hash-derived generator for H.
func NewPedersenCommitter() *PedersenCommitter {
	_, _, g1Gen, _ := bn254.Generators()
	return &PedersenCommitter{
		G: g1Gen,
		H: hashToG1("hegemon-legacy-pedersen-h"),
	}
}

// Commit returns the compressed encoding of v*G + r*H.
func (p *PedersenCommitter) Commit(value, blindingFactor [32]byte) ([32]byte, error) {
	var v, r fr.Element
	v.SetBytes(value[:])
	r.SetBytes(blindingFactor[:])

	var vG, rH bn254.G1Affine
	vG.ScalarMultiplication(&p.G, v.BigInt(new(big.Int)))
	rH.ScalarMultiplication(&p.H, r.BigInt(new(big.Int)))

	var commitment bn254.G1Affine
	commitment.Add(&vG, &rH)
	return commitment.Bytes(), nil
}

// Verify recomputes value*G + blindingFactor*H and compares it to
// commitment's decompressed point.
func (p *PedersenCommitter) Verify(commitment, value, blindingFactor [32]byte) (bool, error) {
	var c bn254.G1Affine
	if _, err := c.SetBytes(commitment[:]); err != nil {
		return false, ErrPointNotOnCurve
	}

	expectedBytes, err := p.Commit(value, blindingFactor)
	if err != nil {
		return false, err
	}
	var expected bn254.G1Affine
	if _, err := expected.SetBytes(expectedBytes[:]); err != nil {
		return false, ErrPointNotOnCurve
	}

	return c.Equal(&expected), nil
}

// Add combines two commitments homomorphically: Commit(v1,r1) + Commit(v2,r2)
// decompresses to a commitment to v1+v2 under blinding r1+r2.
func (p *PedersenCommitter) Add(c1, c2 [32]byte) ([32]byte, error) {
	p1, err := decompress(c1)
	if err != nil {
		return [32]byte{}, err
	}
	p2, err := decompress(c2)
	if err != nil {
		return [32]byte{}, err
	}
	var sum bn254.G1Affine
	sum.Add(&p1, &p2)
	return sum.Bytes(), nil
}

// Sub subtracts c2 from c1 homomorphically.
func (p *PedersenCommitter) Sub(c1, c2 [32]byte) ([32]byte, error) {
	p1, err := decompress(c1)
	if err != nil {
		return [32]byte{}, err
	}
	p2, err := decompress(c2)
	if err != nil {
		return [32]byte{}, err
	}
	var neg, diff bn254.G1Affine
	neg.Neg(&p2)
	diff.Add(&p1, &neg)
	return diff.Bytes(), nil
}

// VerifyBalance checks sum(inputs) == sum(outputs) using the homomorphic
// property of Pedersen commitments, the same way a confidential-transaction
// scheme would check value conservation without revealing amounts.
func (p *PedersenCommitter) VerifyBalance(inputs, outputs [][32]byte) (bool, error) {
	var inputSum, outputSum bn254.G1Jac
	for _, c := range inputs {
		pt, err := decompress(c)
		if err != nil {
			return false, err
		}
		var jac bn254.G1Jac
		jac.FromAffine(&pt)
		inputSum.AddAssign(&jac)
	}
	for _, c := range outputs {
		pt, err := decompress(c)
		if err != nil {
			return false, err
		}
		var jac bn254.G1Jac
		jac.FromAffine(&pt)
		outputSum.AddAssign(&jac)
	}

	var inputAff, outputAff bn254.G1Affine
	inputAff.FromJacobian(&inputSum)
	outputAff.FromJacobian(&outputSum)
	return inputAff.Equal(&outputAff), nil
}

func decompress(data [32]byte) (bn254.G1Affine, error) {
	var p bn254.G1Affine
	if _, err := p.SetBytes(data[:]); err != nil {
		return bn254.G1Affine{}, ErrPointNotOnCurve
	}
	return p, nil
}

// hashToG1 derives a generator from seed by try-and-increment: hash the
// seed and a counter until the result is a valid curve x-coordinate.
func hashToG1(seed string) bn254.G1Affine {
	seedBytes := []byte(seed)
	var counter byte
	for {
		hash := sha256.Sum256(append(seedBytes, counter))

		var x fp.Element
		x.SetBytes(hash[:])

		var x2, x3, rhs, three fp.Element
		x2.Square(&x)
		x3.Mul(&x2, &x)
		three.SetInt64(3)
		rhs.Add(&x3, &three)

		var y fp.Element
		if y.Sqrt(&rhs) != nil {
			point := bn254.G1Affine{X: x, Y: y}
			if point.IsOnCurve() && !point.IsInfinity() {
				return point
			}
		}
		counter++
		if counter == 0 {
			break
		}
	}
	_, _, g1, _ := bn254.Generators()
	return g1
}
