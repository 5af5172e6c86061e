// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package notes implements the commitment, nullifier, balance-tag, and
// Merkle-node helpers that sit directly on top of the Poseidon2 sponge
// (§3), plus the byte<->field codecs every AIR's witness construction
// shares.
//
// Grounded on zk/commitment.go's Note/TransactionWitness/ComputeReceiptID
// shapes (adapted from BN254 *big.Int amounts to Goldilocks elements) and
// original_source/circuits/transaction/src/hashing.rs's function
// signatures (note_commitment, nullifier, prf_key, balance_commitment,
// bytes_to_field_elements).
package notes

import (
	"encoding/binary"

	"github.com/hegemon/zkstack/goldilocks"
)

// BytesToFieldElements splits data into 8-byte big-endian chunks (the last
// chunk right-padded with zero bytes), each reduced modulo p. Mirrors
// original_source's bytes_to_field_elements, generalized from the
// fixed-32-byte case to arbitrary-length buffers for ComputeReceiptID-style
// variable-length hashing.
func BytesToFieldElements(data []byte) []goldilocks.Element {
	n := (len(data) + 7) / 8
	out := make([]goldilocks.Element, n)
	padded := make([]byte, n*8)
	copy(padded, data)
	for i := 0; i < n; i++ {
		out[i] = goldilocks.New(binary.BigEndian.Uint64(padded[i*8 : i*8+8]))
	}
	return out
}

// FieldElementsFrom32 returns the canonical 4-element decomposition of a
// 32-byte value (pk_recipient, rho, r, or a 32-byte commitment) used
// throughout the note/disclosure circuits' "to_field_elements" calls.
func FieldElementsFrom32(b [32]byte) [4]goldilocks.Element {
	return goldilocks.ElementsFromBytesBE32(b)
}
