// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package version implements the VersionBinding every proof and block
// header carries (§6 "VersionBinding"): which circuit revision and which
// cryptographic suite (hash/challenger family, signature scheme) produced
// it, so a verifier never has to infer compatibility from proof bytes
// alone.
//
// Grounded on original_source/protocol/versioning/src/lib.rs's
// VersionBinding{circuit: CircuitVersion(u16), crypto: CryptoSuiteId(u16)}
// and its VersionMatrix/compute_version_commitment, carried over field for
// field.
package version

import (
	"crypto/sha512"
	"encoding/binary"
)

// CircuitVersion identifies a circuit's constraint-system revision.
type CircuitVersion uint16

// CryptoSuiteID identifies the cryptographic suite (hash/challenger
// family, signature scheme) a proof or header was produced under.
type CryptoSuiteID uint16

// Circuit and crypto-suite identifiers, carried over verbatim from
// original_source/protocol/versioning/src/lib.rs.
const (
	CircuitV1 CircuitVersion = 1
	CircuitV2 CircuitVersion = 2

	CryptoSuiteAlpha CryptoSuiteID = 1
	CryptoSuiteBeta  CryptoSuiteID = 2
	CryptoSuiteGamma CryptoSuiteID = 3
)

// Binding pairs a circuit version with a crypto suite.
type Binding struct {
	Circuit CircuitVersion
	Crypto  CryptoSuiteID
}

// Default is the binding new proofs are produced under absent an explicit
// override.
var Default = Binding{Circuit: CircuitV2, Crypto: CryptoSuiteGamma}

// Matrix counts how many observations were made of each distinct binding,
// e.g. across a block's transaction set, mirroring
// VersionMatrix{counts: BTreeMap<VersionBinding, u32>}.
type Matrix struct {
	counts map[Binding]uint32
}

// NewMatrix returns an empty Matrix.
func NewMatrix() *Matrix {
	return &Matrix{counts: make(map[Binding]uint32)}
}

// Observe records one occurrence of b.
func (m *Matrix) Observe(b Binding) { m.ObserveN(b, 1) }

// ObserveN records n occurrences of b.
func (m *Matrix) ObserveN(b Binding, n uint32) {
	m.counts[b] += n
}

// Counts returns a defensive copy of the binding -> count map.
func (m *Matrix) Counts() map[Binding]uint32 {
	out := make(map[Binding]uint32, len(m.counts))
	for k, v := range m.counts {
		out[k] = v
	}
	return out
}

// Commitment returns a 48-byte digest binding the whole matrix, in
// ascending (circuit, crypto) order so the digest is independent of
// observation order.
func (m *Matrix) Commitment() [48]byte {
	type pair struct {
		b Binding
		n uint32
	}
	pairs := make([]pair, 0, len(m.counts))
	for b, n := range m.counts {
		pairs = append(pairs, pair{b, n})
	}
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0; j-- {
			a, b := pairs[j-1].b, pairs[j].b
			if a.Circuit > b.Circuit || (a.Circuit == b.Circuit && a.Crypto > b.Crypto) {
				pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
			} else {
				break
			}
		}
	}
	return computeCommitment(pairs)
}

func computeCommitment(pairs []struct {
	b Binding
	n uint32
}) [48]byte {
	h := sha512.New384()
	var buf [8]byte
	for _, p := range pairs {
		binary.LittleEndian.PutUint16(buf[:2], uint16(p.b.Circuit))
		h.Write(buf[:2])
		binary.LittleEndian.PutUint16(buf[:2], uint16(p.b.Crypto))
		h.Write(buf[:2])
		binary.LittleEndian.PutUint32(buf[:4], p.n)
		h.Write(buf[:4])
	}
	var out [48]byte
	copy(out[:], h.Sum(nil))
	return out
}
