// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package airhash computes the air_hash that binds a proof to the exact
// constraint system that produced it (§3 "Lifecycle", §4.F "Cross-proof
// digest"): Blake3 over a domain tag, the circuit version, the trace's
// shape parameters, and its constraint-degree/count.
//
// Grounded on original_source/circuits/disclosure/src/constants.rs's
// compute_air_hash, generalized from one AIR's literal byte sequence into a
// shared recipe every AIR in this module calls with its own Shape.
package airhash

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Shape describes the parameters an AIR's air_hash binds to. Any change to
// these values for a given AIR must be accompanied by a CircuitVersion
// bump, or the resulting proofs silently become non-interoperable with
// older verifiers that still accept the old air_hash.
type Shape struct {
	DomainTag               string
	CircuitVersion          uint32
	TraceWidth              uint32
	CycleLength             uint32
	TraceLength             uint32
	InputCount              uint32
	MaxConstraintDegree     uint32
	NumTransitionConstraint uint32
}

// Compute returns the 32-byte air_hash for shape.
func Compute(shape Shape) [32]byte {
	h := blake3.New()
	h.Write([]byte(shape.DomainTag))

	var u32 [4]byte
	writeU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(u32[:], v)
		h.Write(u32[:])
	}

	writeU32(shape.CircuitVersion)
	writeU32(shape.TraceWidth)
	writeU32(shape.CycleLength)
	writeU32(shape.TraceLength)
	writeU32(shape.InputCount)
	writeU32(shape.MaxConstraintDegree)
	writeU32(shape.NumTransitionConstraint)

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
