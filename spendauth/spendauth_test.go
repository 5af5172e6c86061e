// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package spendauth

import (
	"bytes"
	"testing"
)

func TestGenerateKeyIsDeterministic(t *testing.T) {
	skSpend := [32]byte{9, 8, 7}

	a, err := GenerateKey(skSpend)
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	b, err := GenerateKey(skSpend)
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}

	if !bytes.Equal(a.PublicKeyBytes(), b.PublicKeyBytes()) {
		t.Fatalf("GenerateKey(skSpend) must be deterministic in skSpend")
	}
}

func TestGenerateKeyDiffersAcrossSkSpend(t *testing.T) {
	a, err := GenerateKey([32]byte{1})
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	b, err := GenerateKey([32]byte{2})
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}

	if bytes.Equal(a.PublicKeyBytes(), b.PublicKeyBytes()) {
		t.Fatalf("different skSpend values should not collide")
	}
}

func TestSignVerifyRoundTrip(t *testing.T) {
	key, err := GenerateKey([32]byte{42})
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}

	message := []byte("binding signature hash over a spend")
	sig, err := key.Sign(message)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	ok, err := Verify(key.PublicKeyBytes(), message, sig)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Fatalf("Verify rejected a validly-signed message")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	key, err := GenerateKey([32]byte{42})
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}

	sig, err := key.Sign([]byte("original message"))
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	ok, err := Verify(key.PublicKeyBytes(), []byte("tampered message"), sig)
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatalf("Verify accepted a signature over a different message")
	}
}
