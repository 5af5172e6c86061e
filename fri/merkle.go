// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package fri

import (
	"github.com/zeebo/blake3"

	"github.com/hegemon/zkstack/goldilocks"
)

// leafDigest hashes a single field element into a Merkle leaf.
func leafDigest(e goldilocks.Element) [32]byte {
	b := e.Bytes8()
	var out [32]byte
	sum := blake3.Sum256(b[:])
	copy(out[:], sum[:])
	return out
}

func nodeDigest(left, right [32]byte) [32]byte {
	h := blake3.New()
	h.Write(left[:])
	h.Write(right[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Tree is a binary Merkle tree over a power-of-two number of field-element
// leaves, committing each FRI layer's evaluation vector (§4.F "commitment
// scheme": the teacher's zk/stark.go FRICommitment names a root without
// specifying a construction; this is a straightforward Blake3 binary tree).
type Tree struct {
	layers [][][32]byte
}

// BuildTree commits to evals, which must have a power-of-two length.
func BuildTree(evals []goldilocks.Element) *Tree {
	if len(evals) == 0 || len(evals)&(len(evals)-1) != 0 {
		panic("fri: Merkle tree requires a non-zero power-of-two leaf count")
	}
	leaves := make([][32]byte, len(evals))
	for i, e := range evals {
		leaves[i] = leafDigest(e)
	}
	t := &Tree{layers: [][][32]byte{leaves}}
	cur := leaves
	for len(cur) > 1 {
		next := make([][32]byte, len(cur)/2)
		for i := range next {
			next[i] = nodeDigest(cur[2*i], cur[2*i+1])
		}
		t.layers = append(t.layers, next)
		cur = next
	}
	return t
}

// Root returns the tree's commitment.
func (t *Tree) Root() [32]byte {
	return t.layers[len(t.layers)-1][0]
}

// Path is an authentication path from a leaf to the root.
type Path struct {
	Siblings [][32]byte
}

// Open returns the authentication path for leaf index.
func (t *Tree) Open(index int) Path {
	var p Path
	for l := 0; l < len(t.layers)-1; l++ {
		sibling := index ^ 1
		p.Siblings = append(p.Siblings, t.layers[l][sibling])
		index >>= 1
	}
	return p
}

// VerifyPath checks that leaf at index opens to root under path.
func VerifyPath(root [32]byte, index int, leaf goldilocks.Element, path Path) bool {
	cur := leafDigest(leaf)
	for _, sibling := range path.Siblings {
		if index&1 == 0 {
			cur = nodeDigest(cur, sibling)
		} else {
			cur = nodeDigest(sibling, cur)
		}
		index >>= 1
	}
	return cur == root
}
