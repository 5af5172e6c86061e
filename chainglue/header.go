// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainglue

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// ConsensusMode distinguishes a header sealed by BFT validator signatures
// from one sealed by proof-of-work, per original_source's header.rs.
type ConsensusMode int

const (
	ModeBFT ConsensusMode = iota
	ModePoW
)

// PowSeal carries the proof-of-work nonce and difficulty target for a
// PoW-sealed header.
type PowSeal struct {
	Nonce  [32]byte
	Target uint32
}

// BlockHeader is this module's node-facing header shape, carrying the
// commitments a ProofVerifier checks a block's transactions against plus
// the fields needed to identify and seal a block. Field-for-field from
// original_source/consensus/src/header.rs's BlockHeader, with
// StarkCommitment narrowed to 32 bytes to match Blake3's native width.
type BlockHeader struct {
	Version                uint32
	Height                 uint64
	View                   uint64
	TimestampMs            uint64
	ParentHash             BlockHash
	StateRoot              [32]byte
	NullifierRoot          [32]byte
	ProofCommitment        StarkCommitment
	TxCount                uint32
	FeeCommitment          FeeCommitment
	ValidatorSetCommitment ValidatorSetCommitment
	SignatureAggregate     []byte
	SignatureBitmap        []byte
	Pow                    *PowSeal
}

// Mode reports whether h is PoW-sealed or BFT-sealed.
func (h *BlockHeader) Mode() ConsensusMode {
	if h.Pow != nil {
		return ModePoW
	}
	return ModeBFT
}

// proofCommitment, feeCommitment, and transactionCount read *BlockHeader's
// commitment fields; the exported HeaderProofExt methods are in proof.go.
func (h *BlockHeader) proofCommitment() StarkCommitment { return h.ProofCommitment }
func (h *BlockHeader) feeCommitment() FeeCommitment     { return h.FeeCommitment }
func (h *BlockHeader) transactionCount() uint32         { return h.TxCount }

// encodeSigningFields writes every field that a validator signs over:
// everything except the signature aggregate and bitmap themselves.
func (h *BlockHeader) encodeSigningFields() []byte {
	var buf []byte
	var u64 [8]byte
	var u32 [4]byte

	binary.LittleEndian.PutUint32(u32[:], h.Version)
	buf = append(buf, u32[:]...)
	binary.LittleEndian.PutUint64(u64[:], h.Height)
	buf = append(buf, u64[:]...)
	binary.LittleEndian.PutUint64(u64[:], h.View)
	buf = append(buf, u64[:]...)
	binary.LittleEndian.PutUint64(u64[:], h.TimestampMs)
	buf = append(buf, u64[:]...)
	buf = append(buf, h.ParentHash[:]...)
	buf = append(buf, h.StateRoot[:]...)
	buf = append(buf, h.NullifierRoot[:]...)
	buf = append(buf, h.ProofCommitment[:]...)
	binary.LittleEndian.PutUint32(u32[:], h.TxCount)
	buf = append(buf, u32[:]...)
	buf = append(buf, h.FeeCommitment[:]...)
	buf = append(buf, h.ValidatorSetCommitment[:]...)
	if h.Pow != nil {
		buf = append(buf, h.Pow.Nonce[:]...)
		binary.LittleEndian.PutUint32(u32[:], h.Pow.Target)
		buf = append(buf, u32[:]...)
	}
	return buf
}

// SigningHash is the digest validators sign: Blake3 over a fixed domain
// prefix and every field up to but excluding the aggregate signature.
func (h *BlockHeader) SigningHash() [32]byte {
	hasher := blake3.New()
	hasher.Write([]byte("hegemon-block"))
	hasher.Write(h.encodeSigningFields())
	var out [32]byte
	copy(out[:], hasher.Sum(nil))
	return out
}

// Hash is the block's full content hash, including the signature
// aggregate and bitmap, so a post-sealing mutation of either changes it.
func (h *BlockHeader) Hash() BlockHash {
	hasher := blake3.New()
	hasher.Write(h.encodeSigningFields())
	hasher.Write(h.SignatureAggregate)
	hasher.Write(h.SignatureBitmap)
	var out BlockHash
	copy(out[:], hasher.Sum(nil))
	return out
}

// EnsureStructure rejects headers that are structurally invalid regardless
// of signature or proof content: an empty block, a BFT header with no
// signer bitmap, or a PoW header missing its seal.
func (h *BlockHeader) EnsureStructure() error {
	if h.TxCount == 0 {
		return &ConsensusError{Kind: InvalidHeader, Detail: "block must contain at least one transaction"}
	}
	switch h.Mode() {
	case ModeBFT:
		if len(h.SignatureBitmap) == 0 {
			return &ConsensusError{Kind: InvalidHeader, Detail: "bft header requires a non-empty signature bitmap"}
		}
	case ModePoW:
		if h.Pow == nil {
			return &ConsensusError{Kind: InvalidHeader, Detail: "pow header requires a seal"}
		}
	}
	return nil
}
