// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package spendauth binds the distilled spec's opaque 32-byte `sk_spend`
// witness secret (§3) to a concrete post-quantum spend-authorization
// signature scheme: ML-DSA-65, the same FIPS 204 scheme the teacher already
// wires for precompile-level signature verification in quantum/verifier.go
// and mldsa/contract.go, called here directly rather than through an EVM
// precompile wrapper.
//
// sk_spend itself stays the in-circuit secret nullifier/commitment witness;
// GenerateKey deterministically derives an ML-DSA keypair from it with a
// ChaCha20 keystream, the same deterministic-constant-generation technique
// poseidon2/constants.go uses, so a note's spend-authorization key is
// reproducible from sk_spend alone without needing extra randomness stored
// in the witness.
package spendauth

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/chacha20"

	"github.com/luxfi/crypto/mldsa"
)

// Mode is the ML-DSA parameter set this package authorizes spends with.
// MLDSA65 (192-bit security, NIST level 3) matches the level quantum's
// default mode in the teacher's precompile gas table.
const Mode = mldsa.MLDSA65

// Key is a note's spend-authorization keypair: sk_spend plus the ML-DSA
// keypair deterministically derived from it.
type Key struct {
	SkSpend [32]byte
	Private *mldsa.PrivateKey
}

// keyStreamReader adapts a chacha20.Cipher (a cipher.Stream) into an
// io.Reader by keystreaming over a caller-supplied zero buffer, which is
// what mldsa.GenerateKey needs as its entropy source.
type keyStreamReader struct {
	cipher *chacha20.Cipher
}

func (r *keyStreamReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	r.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// deterministicEntropy returns an io.Reader that deterministically expands
// skSpend into as many pseudorandom bytes as GenerateKey asks for.
func deterministicEntropy(skSpend [32]byte) (io.Reader, error) {
	var nonce [chacha20.NonceSize]byte
	copy(nonce[:], []byte("hegemon-spendauth-derive"))
	cipher, err := chacha20.NewUnauthenticatedCipher(skSpend[:], nonce[:])
	if err != nil {
		return nil, err
	}
	return &keyStreamReader{cipher: cipher}, nil
}

// GenerateKey derives a spend-authorization keypair deterministically from
// skSpend: the same skSpend always yields the same ML-DSA keypair.
func GenerateKey(skSpend [32]byte) (*Key, error) {
	entropy, err := deterministicEntropy(skSpend)
	if err != nil {
		return nil, err
	}
	priv, err := mldsa.GenerateKey(entropy, Mode)
	if err != nil {
		return nil, err
	}
	return &Key{SkSpend: skSpend, Private: priv}, nil
}

// Sign authorizes message (typically a transaction's binding signature
// hash) under k's ML-DSA private key.
func (k *Key) Sign(message []byte) ([]byte, error) {
	return k.Private.Sign(rand.Reader, message, nil)
}

// PublicKeyBytes returns k's ML-DSA public key in its wire encoding, the
// form a verifier reconstructs a public key from.
func (k *Key) PublicKeyBytes() []byte {
	return k.Private.PublicKey.Bytes()
}

// Verify checks signature over message against the ML-DSA public key
// encoded in publicKey.
func Verify(publicKey, message, signature []byte) (bool, error) {
	pub, err := mldsa.PublicKeyFromBytes(publicKey, Mode)
	if err != nil {
		return false, err
	}
	return pub.Verify(message, signature, nil), nil
}
