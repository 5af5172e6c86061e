// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package txcircuit implements the per-transaction shielded-transfer AIR
// (§4.C): witness validation (hash recomputation, balance conservation,
// range checks), a trace-level constraint check standing in for a full
// polynomial IOP, and the Prove/Verify entry points an orchestration layer
// drives per transaction.
//
// Grounded on original_source/circuits/transaction/src/{constants,error,
// hashing,trace,proof}.rs: prove() builds a trace+public-inputs pair via
// witness validation (there named check_constraints), verify() rebuilds a
// trace from the proof's own public fields and re-runs the AIR's
// consistency checks against the claimed public inputs. air.rs and
// witness.rs are absent from the retrieved original_source snapshot; their
// shapes are reconstructed here from the sibling files' usage (trace.rs's
// TransactionTrace fields, proof.rs's Proof/VerificationReport, §3's DATA
// MODEL table for the witness fields only the original source implies).
package txcircuit

import "github.com/hegemon/zkstack/notes"

// MaxInputs and MaxOutputs bound a single transaction's note fan-in/out.
const (
	MaxInputs  = 2
	MaxOutputs = 2
)

// BalanceSlots equals MaxInputs + MaxOutputs, reused from notes for the
// shared slot-padding convention.
const BalanceSlots = notes.BalanceSlots

// NativeAssetID is the MASP's reserved native-asset identifier.
const NativeAssetID = notes.NativeAssetID
