// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package notes

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hegemon/zkstack/goldilocks"
)

func sampleNote() Note {
	return Note{
		Value:       8,
		AssetID:     0,
		PkRecipient: [32]byte{1, 2, 3},
		Rho:         [32]byte{4, 5, 6},
		R:           [32]byte{7, 8, 9},
	}
}

func TestCommitmentChangesWithEveryField(t *testing.T) {
	n := sampleNote()
	base := Commitment(n)

	variants := []Note{n, n, n, n, n}
	variants[0].Value++
	variants[1].AssetID = 1
	variants[2].Rho[0] ^= 0xFF
	variants[3].R[31] ^= 0x01
	variants[4].PkRecipient[0] ^= 0xFF

	for i, v := range variants {
		require.NotEqual(t, base, Commitment(v), "variant %d did not change the commitment", i)
	}
}

func TestNullifierNonZeroAndDeterministic(t *testing.T) {
	sk := [32]byte{42, 42, 42}
	key := PRFKey(sk)
	rho := [32]byte{1}
	nf1 := Nullifier(key, 3, rho)
	nf2 := Nullifier(key, 3, rho)
	require.Equal(t, nf1, nf2, "nullifier is not deterministic")
	require.False(t, nf1.IsZero(), "nullifier must not be zero for a well-formed witness")
	require.NotEqual(t, nf1, Nullifier(key, 4, rho), "changing position must change the nullifier")
}

func TestMerkleReconstructMatchesManual(t *testing.T) {
	leaf := goldilocks.New(100)
	var path AuthPath
	for i := range path.Siblings {
		path.Siblings[i] = goldilocks.New(uint64(i + 1))
		path.IsRight[i] = i%2 == 0
	}
	got := Reconstruct(leaf, path)

	cur := leaf
	for i := 0; i < MerkleDepth; i++ {
		if path.IsRight[i] {
			cur = MerkleNode(path.Siblings[i], cur)
		} else {
			cur = MerkleNode(cur, path.Siblings[i])
		}
	}
	require.Equal(t, cur, got, "Reconstruct diverged from manual replay")
}

func TestBalanceTagPadding(t *testing.T) {
	slots := []BalanceSlot{{AssetID: 1, Delta: -5}}
	padded := PadSlots(slots)
	require.Equal(t, uint64(1), padded[0].AssetID)
	require.Equal(t, int64(-5), padded[0].Delta)
	for i := 1; i < BalanceSlots; i++ {
		require.Equal(t, ReservedAssetID, padded[i].AssetID, "slot %d not padded with reserved entry", i)
		require.Zero(t, padded[i].Delta, "slot %d not padded with reserved entry", i)
	}
}

func TestBytesToFieldElementsPadding(t *testing.T) {
	data := []byte{1, 2, 3}
	elems := BytesToFieldElements(data)
	require.Len(t, elems, 1)
	want := goldilocks.New(0x0102030000000000)
	require.Equal(t, want, elems[0])
}
