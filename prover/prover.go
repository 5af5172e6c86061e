// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package prover implements the proof-generation orchestration layer
// (§4.F): one entry point per circuit (prove_transaction, prove_batch,
// prove_settlement, prove_disclosure, prove_epoch), each validating its
// ProofOptions against the caller's AcceptableOptions allow-list before
// invoking the circuit's own Prove, and logging the outcome.
//
// Grounded on zk/stark.go's STARKVerifier-style registry/dispatch
// structure (the teacher's nearest analogue of a single orchestration
// surface fronting several proof kinds), reworked into a set of
// independent entry points since each circuit here already owns its own
// Prove. Structured logging follows threshold/client.go's `log.Logger`
// field injection (never constructed internally — callers inject their
// own logger, as that file's NewTestLogger call does for tests).
package prover

import (
	"github.com/luxfi/log"

	"github.com/hegemon/zkstack/batchcircuit"
	"github.com/hegemon/zkstack/disclosurecircuit"
	"github.com/hegemon/zkstack/epochcircuit"
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/proofoptions"
	"github.com/hegemon/zkstack/settlementcircuit"
	"github.com/hegemon/zkstack/txcircuit"
)

// ProveTransaction validates opts against accept, then runs
// txcircuit.Prove over witness, logging the outcome.
func ProveTransaction(logger log.Logger, accept *proofoptions.AcceptableOptions, opts proofoptions.Options, witness txcircuit.Witness) (*txcircuit.Proof, error) {
	if !accept.Accepts(opts) {
		logger.Error("transaction proof rejected: options not in allow-list", "challenger", opts.Challenger)
		return nil, proofoptions.ErrIncompatibleProfile
	}
	proof, err := txcircuit.Prove(witness)
	if err != nil {
		logger.Error("transaction proof generation failed", "err", err)
		return nil, err
	}
	logger.Info("transaction proof generated", "air_hash", proof.AirHash)
	return proof, nil
}

// ProveBatch validates opts against accept, then runs batchcircuit.Prove
// over anchor and witnesses.
func ProveBatch(logger log.Logger, accept *proofoptions.AcceptableOptions, opts proofoptions.Options, anchor goldilocks.Element, witnesses []txcircuit.Witness) (*batchcircuit.Proof, error) {
	if !accept.Accepts(opts) {
		logger.Error("batch proof rejected: options not in allow-list", "challenger", opts.Challenger)
		return nil, proofoptions.ErrIncompatibleProfile
	}
	proof, err := batchcircuit.Prove(anchor, witnesses)
	if err != nil {
		logger.Error("batch proof generation failed", "err", err, "batch_size", len(witnesses))
		return nil, err
	}
	logger.Info("batch proof generated", "air_hash", proof.AirHash, "batch_size", proof.PublicInputs.BatchSize)
	return proof, nil
}

// ProveSettlement validates opts against accept, then runs
// settlementcircuit.Prove over b.
func ProveSettlement(logger log.Logger, accept *proofoptions.AcceptableOptions, opts proofoptions.Options, b settlementcircuit.Batch) (*settlementcircuit.Proof, error) {
	if !accept.Accepts(opts) {
		logger.Error("settlement proof rejected: options not in allow-list", "challenger", opts.Challenger)
		return nil, proofoptions.ErrIncompatibleProfile
	}
	proof, err := settlementcircuit.Prove(b)
	if err != nil {
		logger.Error("settlement proof generation failed", "err", err)
		return nil, err
	}
	logger.Info("settlement proof generated", "air_hash", proof.AirHash, "instruction_count", proof.BatchLength)
	return proof, nil
}

// ProveDisclosure validates opts against accept, then runs
// disclosurecircuit.Prove over claim and witness.
func ProveDisclosure(logger log.Logger, accept *proofoptions.AcceptableOptions, opts proofoptions.Options, claim disclosurecircuit.Claim, witness disclosurecircuit.Witness) (*disclosurecircuit.Bundle, error) {
	if !accept.Accepts(opts) {
		logger.Error("disclosure proof rejected: options not in allow-list", "challenger", opts.Challenger)
		return nil, proofoptions.ErrIncompatibleProfile
	}
	bundle, err := disclosurecircuit.Prove(claim, witness)
	if err != nil {
		logger.Error("disclosure proof generation failed", "err", err)
		return nil, err
	}
	logger.Info("disclosure proof generated", "air_hash", bundle.AirHash)
	return bundle, nil
}

// ProveEpoch validates opts against accept, then runs epochcircuit.Prove
// over w.
func ProveEpoch(logger log.Logger, accept *proofoptions.AcceptableOptions, opts proofoptions.Options, w epochcircuit.Witness) (*epochcircuit.Proof, error) {
	if !accept.Accepts(opts) {
		logger.Error("epoch proof rejected: options not in allow-list", "challenger", opts.Challenger)
		return nil, proofoptions.ErrIncompatibleProfile
	}
	proof, err := epochcircuit.Prove(w)
	if err != nil {
		logger.Error("epoch proof generation failed", "err", err, "epoch_id", w.EpochID)
		return nil, err
	}
	logger.Info("epoch proof generated", "air_hash", proof.AirHash, "epoch_id", proof.PublicInputs.EpochID)
	return proof, nil
}
