// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package epochcircuit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleWitness() Witness {
	return Witness{
		EpochID: 7,
		ProofHashes: []ProofHash{
			{1, 2, 3},
			{4, 5, 6},
			{7, 8, 9},
		},
	}
}

func TestProveVerifyRoundTrip(t *testing.T) {
	w := sampleWitness()
	proof, err := Prove(w)
	require.NoError(t, err)
	require.Equal(t, len(w.ProofHashes), proof.PublicInputs.ProofCount)
	require.NoError(t, Verify(proof, w))
}

func TestProveRejectsEmptyEpoch(t *testing.T) {
	_, err := Prove(Witness{EpochID: 1})
	require.ErrorIs(t, err, ErrEmptyEpoch)
}

func TestProveRejectsTooManyProofs(t *testing.T) {
	hashes := make([]ProofHash, MaxProofsPerEpoch+1)
	_, err := Prove(Witness{EpochID: 1, ProofHashes: hashes})
	require.ErrorIs(t, err, ErrTooManyProofs)
}

func TestVerifyRejectsReorderedHashes(t *testing.T) {
	w := sampleWitness()
	proof, err := Prove(w)
	require.NoError(t, err)
	reordered := Witness{EpochID: w.EpochID, ProofHashes: []ProofHash{w.ProofHashes[1], w.ProofHashes[0], w.ProofHashes[2]}}
	require.ErrorIs(t, Verify(proof, reordered), ErrAccumulatorMismatch)
}

func TestVerifyRejectsDifferentEpochID(t *testing.T) {
	w := sampleWitness()
	proof, err := Prove(w)
	require.NoError(t, err)
	tampered := w
	tampered.EpochID = w.EpochID + 1
	require.ErrorIs(t, Verify(proof, tampered), ErrAccumulatorMismatch)
}

func TestSingleProofEpoch(t *testing.T) {
	w := Witness{EpochID: 1, ProofHashes: []ProofHash{{1}}}
	proof, err := Prove(w)
	require.NoError(t, err)
	require.NoError(t, Verify(proof, w))
}
