// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chainglue

import (
	"bytes"
	"sort"

	"github.com/zeebo/blake3"
)

// NullifierSet tracks every nullifier a node has seen so far and rejects a
// second spend of the same note. Ported from
// original_source/consensus/src/nullifier.rs's BTreeSet-backed set; Go has
// no ordered set type, so Commitment sorts its entries itself rather than
// relying on insertion or map order.
type NullifierSet struct {
	entries map[Nullifier]struct{}
}

// NewNullifierSet returns an empty set.
func NewNullifierSet() *NullifierSet {
	return &NullifierSet{entries: make(map[Nullifier]struct{})}
}

// Contains reports whether nf has already been inserted.
func (s *NullifierSet) Contains(nf Nullifier) bool {
	_, ok := s.entries[nf]
	return ok
}

// Insert records nf, returning a DuplicateNullifier ConsensusError if it
// was already present.
func (s *NullifierSet) Insert(nf Nullifier) error {
	if _, ok := s.entries[nf]; ok {
		return &ConsensusError{Kind: DuplicateNullifier, Nullifier: nf}
	}
	s.entries[nf] = struct{}{}
	return nil
}

// Extend inserts every nullifier in nfs, stopping at the first duplicate.
func (s *NullifierSet) Extend(nfs []Nullifier) error {
	for _, nf := range nfs {
		if err := s.Insert(nf); err != nil {
			return err
		}
	}
	return nil
}

// Commitment returns a Blake3 digest over every nullifier in sorted order,
// so two sets with the same members commit to the same value regardless of
// insertion order.
func (s *NullifierSet) Commitment() [32]byte {
	sorted := make([]Nullifier, 0, len(s.entries))
	for nf := range s.entries {
		sorted = append(sorted, nf)
	}
	sort.Slice(sorted, func(i, j int) bool { return bytes.Compare(sorted[i][:], sorted[j][:]) < 0 })

	h := blake3.New()
	for _, nf := range sorted {
		h.Write(nf[:])
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Len reports how many nullifiers s holds.
func (s *NullifierSet) Len() int { return len(s.entries) }
