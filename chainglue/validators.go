// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainglue

import (
	"github.com/luxfi/crypto/bls"
)

// Validator is one member of a BFT validator set: its BLS12-381 public key
// and the voting weight it carries. ValidatorSetCommitment binds a set of
// these the same way a header's SignatureBitmap selects the subset that
// actually signed.
type Validator struct {
	ID        ValidatorID
	PublicKey []byte
	Weight    uint64
}

// ValidatorSet is the committee a BFT-sealed header is checked against.
type ValidatorSet struct {
	Members []Validator
}

// TotalWeight sums every member's voting weight.
func (vs ValidatorSet) TotalWeight() uint64 {
	var total uint64
	for _, m := range vs.Members {
		total += m.Weight
	}
	return total
}

// signerIndices returns the positions bitmap marks as having signed.
func signerIndices(bitmap []byte, n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		byteIdx, bitIdx := i/8, uint(i%8)
		if byteIdx >= len(bitmap) {
			break
		}
		if bitmap[byteIdx]&(1<<bitIdx) != 0 {
			out = append(out, i)
		}
	}
	return out
}

// VerifyAggregateSignature checks header's BLS aggregate signature against
// the subset of vs its SignatureBitmap marks as signers, requiring their
// combined weight to reach at least 2/3 of vs's total weight. Grounded on
// quantum/verifier.go's verifyAggregateBLS same-message fast path (every
// signer here signs the same SigningHash, so no multi-pairing is needed).
func VerifyAggregateSignature(header *BlockHeader, vs ValidatorSet) error {
	if header.Mode() != ModeBFT {
		return &ConsensusError{Kind: InvalidHeader, Detail: "aggregate signature verification requires a bft header"}
	}

	indices := signerIndices(header.SignatureBitmap, len(vs.Members))
	var signedWeight uint64
	pubKeys := make([]*bls.PublicKey, 0, len(indices))
	for _, idx := range indices {
		member := vs.Members[idx]
		pk, err := bls.PublicKeyFromCompressedBytes(member.PublicKey)
		if err != nil {
			return &ConsensusError{Kind: SignatureVerificationFailed, Validator: member.ID}
		}
		pubKeys = append(pubKeys, pk)
		signedWeight += member.Weight
	}

	needed := (vs.TotalWeight()*2 + 2) / 3
	if signedWeight < needed {
		return &ConsensusError{Kind: InsufficientSignatures, Got: signedWeight, Need: needed}
	}

	aggKey, err := bls.AggregatePublicKeys(pubKeys)
	if err != nil {
		return &ConsensusError{Kind: ValidatorSetMismatch}
	}
	sig, err := bls.SignatureFromBytes(header.SignatureAggregate)
	if err != nil {
		return &ConsensusError{Kind: InvalidHeader, Detail: "malformed signature aggregate"}
	}

	digest := header.SigningHash()
	if !bls.Verify(aggKey, sig, digest[:]) {
		return &ConsensusError{Kind: ValidatorSetMismatch}
	}
	return nil
}
