// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package notes

import (
	"github.com/hegemon/zkstack/goldilocks"
	"github.com/hegemon/zkstack/poseidon2"
)

// MerkleDepth is the note commitment tree's fixed depth (§6).
const MerkleDepth = 32

// MerkleNode computes n = Sponge(tag=MERKLE)(left, right).
func MerkleNode(left, right goldilocks.Element) goldilocks.Element {
	return poseidon2.Hash(poseidon2.DomainMerkle, []goldilocks.Element{left, right})
}

// AuthPath is a MerkleDepth-length authentication path: siblings[i] is the
// sibling at level i, isRight[i] reports whether the path element being
// authenticated is the right child at that level.
type AuthPath struct {
	Siblings [MerkleDepth]goldilocks.Element
	IsRight  [MerkleDepth]bool
}

// Reconstruct replays the authentication path from leaf to root.
func Reconstruct(leaf goldilocks.Element, path AuthPath) goldilocks.Element {
	cur := leaf
	for i := 0; i < MerkleDepth; i++ {
		if path.IsRight[i] {
			cur = MerkleNode(path.Siblings[i], cur)
		} else {
			cur = MerkleNode(cur, path.Siblings[i])
		}
	}
	return cur
}
