// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainglue

import "fmt"

// ConsensusError is chainglue's closed error taxonomy, ported field-for-field
// in meaning from original_source/consensus/src/error.rs's ConsensusError
// enum (a thiserror sum type there, a Kind-tagged struct here, matching the
// style txcircuit.Error already established in this module).
type ConsensusError struct {
	Kind       ConsensusErrorKind
	Detail     string
	Validator  ValidatorID
	Nullifier  Nullifier
	Got, Need  uint64
	ProofCause *ProofError
}

type ConsensusErrorKind int

const (
	InvalidHeader ConsensusErrorKind = iota
	ValidatorSetMismatch
	InsufficientSignatures
	SignatureVerificationFailed
	DuplicateNullifier
	WrappedProofError
	ForkChoice
	BadTimestamp
	ProofOfWork
)

func (e *ConsensusError) Error() string {
	switch e.Kind {
	case InvalidHeader:
		return fmt.Sprintf("chainglue: invalid header: %s", e.Detail)
	case ValidatorSetMismatch:
		return "chainglue: validator set commitment does not match"
	case InsufficientSignatures:
		return fmt.Sprintf("chainglue: insufficient signatures: got %d, need %d", e.Got, e.Need)
	case SignatureVerificationFailed:
		return fmt.Sprintf("chainglue: signature verification failed for validator %x", e.Validator)
	case DuplicateNullifier:
		return fmt.Sprintf("chainglue: duplicate nullifier %x", e.Nullifier)
	case WrappedProofError:
		return fmt.Sprintf("chainglue: %v", e.ProofCause)
	case ForkChoice:
		return fmt.Sprintf("chainglue: fork choice rejected block: %s", e.Detail)
	case BadTimestamp:
		return "chainglue: block timestamp is out of the acceptable range"
	case ProofOfWork:
		return fmt.Sprintf("chainglue: proof of work rejected: %s", e.Detail)
	default:
		return "chainglue: unknown error"
	}
}

func (e *ConsensusError) Unwrap() error {
	if e.Kind == WrappedProofError {
		return e.ProofCause
	}
	return nil
}

// ProofError is the narrower taxonomy a ProofVerifier returns, ported from
// original_source/consensus/src/error.rs's ProofError.
type ProofError struct {
	Kind   ProofErrorKind
	Detail string
}

type ProofErrorKind int

const (
	CommitmentMismatch ProofErrorKind = iota
	TransactionCountMismatch
	FeeCommitmentMismatch
	ProofInternal
)

func (e *ProofError) Error() string {
	switch e.Kind {
	case CommitmentMismatch:
		return "chainglue: proof commitment does not match header"
	case TransactionCountMismatch:
		return "chainglue: transaction count does not match header"
	case FeeCommitmentMismatch:
		return "chainglue: fee commitment does not match header"
	case ProofInternal:
		return fmt.Sprintf("chainglue: internal proof verification error: %s", e.Detail)
	default:
		return "chainglue: unknown proof error"
	}
}
