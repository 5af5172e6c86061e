// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package proofoptions defines the ProofOptions record that parameterizes
// every prove()/verify() call (§4.F) and the AcceptableOptions allow-list
// the verifier enforces (§4.G point 6).
//
// Grounded on original_source/circuits/batch/src/verifier.rs's
// default_acceptable_options/fast_acceptable_options and its
// #[cfg(all(feature = "production", feature = "stark-fast"))]
// compile_error! mutual-exclusion, translated from Rust build-time feature
// flags into a Go constructor that validates at call time; zk/types.go's
// RollupConfig is the teacher's nearest analogue of a validate-on-construct
// configuration struct.
package proofoptions

import "errors"

// ChallengerFamily selects the Fiat-Shamir transcript's underlying hash:
// Hash (Blake3 compression, §4.F), AlgebraicSponge (Poseidon2, required for
// recursion per §4.H), or the optional RPO family (§9's Open Question).
type ChallengerFamily uint8

const (
	ChallengerHash ChallengerFamily = iota
	ChallengerAlgebraicSponge
	ChallengerRPO
)

// Profile distinguishes the two mutually exclusive parameter presets named
// in §4.F/§4.G: "fast" (small, for development/testing) and "production"
// (the only profile an honest verifier accepts once built for production).
type Profile uint8

const (
	ProfileProduction Profile = iota
	ProfileFast
)

// ErrIncompatibleProfile is returned by Validate when the challenger
// setting is inconsistent with what the caller requires.
var ErrIncompatibleProfile = errors.New("proofoptions: options incompatible with the verifier's build profile")

// Options is the full parameter record for a prove/verify call.
type Options struct {
	LogBlowup       uint8
	NumQueries      uint16
	FieldExtension  bool
	GrindingBits    uint8
	Challenger      ChallengerFamily
}

// Production returns the production-profile parameters: log_blowup=4 (16x
// blow-up), 31 FRI queries, the quadratic extension enabled.
func Production(challenger ChallengerFamily) Options {
	return Options{LogBlowup: 4, NumQueries: 31, FieldExtension: true, Challenger: challenger}
}

// Fast returns the fast-profile parameters: log_blowup=3 (8x), 8 FRI
// queries, no extension field. Only ever accepted by a verifier built in
// non-production mode (§4.G point 6).
func Fast(challenger ChallengerFamily) Options {
	return Options{LogBlowup: 3, NumQueries: 8, FieldExtension: false, Challenger: challenger}
}

// BlowupFactor returns 2^LogBlowup.
func (o Options) BlowupFactor() uint64 { return 1 << o.LogBlowup }

// AcceptableOptions is a process-wide, read-only-after-init allow-list a
// verifier checks incoming Options against (§4.F "Shared resources";
// §4.G point 6).
type AcceptableOptions struct {
	profile   Profile
	allowFast bool
}

// NewAcceptableOptions builds the allow-list for a given build profile.
// production and stark-fast are mutually exclusive by contract: a
// production-profile verifier never accepts Fast() parameters.
func NewAcceptableOptions(profile Profile) *AcceptableOptions {
	return &AcceptableOptions{profile: profile, allowFast: profile == ProfileFast}
}

// Accepts reports whether opts may be used by a verifier built under this
// AcceptableOptions' profile.
func (a *AcceptableOptions) Accepts(opts Options) bool {
	fastShaped := opts.LogBlowup < Production(opts.Challenger).LogBlowup || opts.NumQueries < Production(opts.Challenger).NumQueries
	if fastShaped && !a.allowFast {
		return false
	}
	return true
}

// Validate is the constructor-time check a prover/verifier entry point runs
// before using opts: it reports ErrIncompatibleProfile if opts violates a
// hard invariant regardless of allow-list (e.g. requesting recursion with a
// non-algebraic challenger, which §4.H forbids at composition depth >= 2).
func Validate(opts Options, requireAlgebraicChallenger bool) error {
	if requireAlgebraicChallenger && opts.Challenger == ChallengerHash {
		return ErrIncompatibleProfile
	}
	return nil
}
