// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package verifier implements the proof-verification orchestration layer
// (§4.G). Each Verify* function checks, in this order: the proof's version
// binding against the schedule (VerifyTransaction only), the caller's
// AcceptableOptions allow-list, and then the circuit's own Verify, which
// compares air_hash and re-runs that circuit's checks. No challenger is
// instantiated here, and public inputs are not validated beyond what each
// circuit's Verify does. Proof parsing ("InvalidProofFormat") is a no-op
// here since this
// module's Proof types are Go values, never a wire byte string needing
// re-parsing — SPEC_FULL.md's wire-codec Non-goal.
//
// Grounded on zk/stark.go's STARKVerifier.Verify replay pattern (observe
// commitments, draw challenges, check query consistency) and
// original_source/consensus/src/error.rs's error taxonomy, reworked onto
// this module's ProofOptions/AcceptableOptions machinery. Wrapped failure
// causes use cockroachdb/errors so a caller can unwrap down to the
// originating circuit's own sentinel error.
package verifier

import (
	"github.com/cockroachdb/errors"
	"github.com/luxfi/log"

	"github.com/hegemon/zkstack/batchcircuit"
	"github.com/hegemon/zkstack/disclosurecircuit"
	"github.com/hegemon/zkstack/epochcircuit"
	"github.com/hegemon/zkstack/proofoptions"
	"github.com/hegemon/zkstack/settlementcircuit"
	"github.com/hegemon/zkstack/txcircuit"
	"github.com/hegemon/zkstack/version"
)

// ErrOptionsNotAcceptable is returned when a proof's declared ProofOptions
// is not in the verifier's AcceptableOptions allow-list (§4.G step 6).
var ErrOptionsNotAcceptable = errors.New("verifier: proof options not in the acceptable allow-list")

// ErrVersionNotAllowed is returned when a proof's version binding is not
// currently allowed (§4.G step 2, "version binding is in the allowed
// matrix").
var ErrVersionNotAllowed = errors.New("verifier: version binding not allowed at this height")

// checkVersion enforces §4.G step 2's version-binding check against
// schedule at height, when schedule is non-nil; callers that do not track
// a version schedule may pass nil to skip this check.
func checkVersion(schedule *version.VersionSchedule, height uint64, binding version.Binding) error {
	if schedule == nil {
		return nil
	}
	if !schedule.IsAllowed(binding, height) {
		return ErrVersionNotAllowed
	}
	return nil
}

// VerifyTransaction runs txcircuit.Verify over proof after checking
// opts against accept and binding against schedule at height.
func VerifyTransaction(logger log.Logger, accept *proofoptions.AcceptableOptions, opts proofoptions.Options, schedule *version.VersionSchedule, height uint64, proof *txcircuit.Proof) (*txcircuit.VerificationReport, error) {
	if err := checkVersion(schedule, height, proof.PublicInputs.Version); err != nil {
		logger.Error("transaction verification rejected: version not allowed", "err", err)
		return nil, err
	}
	if !accept.Accepts(opts) {
		logger.Error("transaction verification rejected: options not in allow-list")
		return nil, ErrOptionsNotAcceptable
	}
	report, err := txcircuit.Verify(proof)
	if err != nil {
		logger.Error("transaction verification failed", "err", err)
		return nil, errors.Wrap(err, "verifier: transaction verification failed")
	}
	logger.Info("transaction proof verified", "air_hash", proof.AirHash)
	return report, nil
}

// VerifyBatch runs batchcircuit.Verify over proof after checking opts
// against accept.
func VerifyBatch(logger log.Logger, accept *proofoptions.AcceptableOptions, opts proofoptions.Options, proof *batchcircuit.Proof) error {
	if !accept.Accepts(opts) {
		logger.Error("batch verification rejected: options not in allow-list")
		return ErrOptionsNotAcceptable
	}
	if err := batchcircuit.Verify(proof); err != nil {
		logger.Error("batch verification failed", "err", err)
		return errors.Wrap(err, "verifier: batch verification failed")
	}
	logger.Info("batch proof verified", "air_hash", proof.AirHash, "batch_size", proof.PublicInputs.BatchSize)
	return nil
}

// VerifySettlement runs settlementcircuit.Verify over proof and b after
// checking opts against accept.
func VerifySettlement(logger log.Logger, accept *proofoptions.AcceptableOptions, opts proofoptions.Options, proof *settlementcircuit.Proof, b settlementcircuit.Batch) error {
	if !accept.Accepts(opts) {
		logger.Error("settlement verification rejected: options not in allow-list")
		return ErrOptionsNotAcceptable
	}
	if err := settlementcircuit.Verify(proof, b); err != nil {
		logger.Error("settlement verification failed", "err", err)
		return errors.Wrap(err, "verifier: settlement verification failed")
	}
	logger.Info("settlement proof verified", "air_hash", proof.AirHash)
	return nil
}

// VerifyDisclosure runs disclosurecircuit.Verify over bundle after
// checking opts against accept.
func VerifyDisclosure(logger log.Logger, accept *proofoptions.AcceptableOptions, opts proofoptions.Options, bundle *disclosurecircuit.Bundle) error {
	if !accept.Accepts(opts) {
		logger.Error("disclosure verification rejected: options not in allow-list")
		return ErrOptionsNotAcceptable
	}
	if err := disclosurecircuit.Verify(bundle); err != nil {
		logger.Error("disclosure verification failed", "err", err)
		return errors.Wrap(err, "verifier: disclosure verification failed")
	}
	logger.Info("disclosure proof verified", "air_hash", bundle.AirHash)
	return nil
}

// VerifyEpoch runs epochcircuit.Verify over proof and w after checking
// opts against accept.
func VerifyEpoch(logger log.Logger, accept *proofoptions.AcceptableOptions, opts proofoptions.Options, proof *epochcircuit.Proof, w epochcircuit.Witness) error {
	if !accept.Accepts(opts) {
		logger.Error("epoch verification rejected: options not in allow-list")
		return ErrOptionsNotAcceptable
	}
	if err := epochcircuit.Verify(proof, w); err != nil {
		logger.Error("epoch verification failed", "err", err)
		return errors.Wrap(err, "verifier: epoch verification failed")
	}
	logger.Info("epoch proof verified", "air_hash", proof.AirHash, "epoch_id", proof.PublicInputs.EpochID)
	return nil
}
