// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "sort"

// UpgradeDirective schedules a circuit-version upgrade: at
// ActivationHeight, Circuit becomes an additionally allowed binding
// alongside whatever From/To bindings a governing proposal names.
//
// Grounded on original_source/consensus/src/version_policy.rs's
// UpgradeDirective, field for field.
type UpgradeDirective struct {
	From             Binding
	To               Binding
	Circuit          Binding
	ActivationHeight uint64
}

// VersionProposal activates Binding at ActivatesAt, optionally retiring it
// at RetiresAt, optionally carrying an UpgradeDirective that activates a
// further binding at its own height.
//
// Grounded on original_source/consensus/src/version_policy.rs's
// VersionProposal.
type VersionProposal struct {
	Binding     Binding
	ActivatesAt uint64
	RetiresAt   *uint64
	Upgrade     *UpgradeDirective
}

// VersionSchedule tracks which bindings are allowed at a given chain
// height: an initial set, plus activation/retirement heights registered
// via proposals (§6 "version binding is in the allowed matrix",
// SPEC_FULL.md verifier step 2).
//
// Grounded on original_source/consensus/src/version_policy.rs's
// VersionSchedule{initial, activations, retirements, proposals}, with its
// BTreeMap<u64, Vec<VersionBinding>> ordered-iteration behavior
// reproduced via explicit sorted-key iteration (Go has no ordered map).
type VersionSchedule struct {
	initial      map[Binding]struct{}
	activations  map[uint64][]Binding
	retirements  map[uint64][]Binding
	proposalList []VersionProposal
}

// NewSchedule returns a VersionSchedule whose initial allow-list is
// initial.
func NewSchedule(initial ...Binding) *VersionSchedule {
	s := &VersionSchedule{
		initial:     make(map[Binding]struct{}, len(initial)),
		activations: make(map[uint64][]Binding),
		retirements: make(map[uint64][]Binding),
	}
	for _, b := range initial {
		s.initial[b] = struct{}{}
	}
	return s
}

// DefaultSchedule returns a VersionSchedule whose only initially allowed
// binding is Default.
func DefaultSchedule() *VersionSchedule { return NewSchedule(Default) }

// Register records proposal: its binding activates (and, if set, retires)
// at the declared heights; a carried UpgradeDirective additionally
// activates its own circuit binding at its activation height.
func (s *VersionSchedule) Register(proposal VersionProposal) {
	s.activations[proposal.ActivatesAt] = append(s.activations[proposal.ActivatesAt], proposal.Binding)
	if proposal.RetiresAt != nil {
		s.retirements[*proposal.RetiresAt] = append(s.retirements[*proposal.RetiresAt], proposal.Binding)
	}
	if proposal.Upgrade != nil {
		h := proposal.Upgrade.ActivationHeight
		s.activations[h] = append(s.activations[h], proposal.Upgrade.Circuit)
	}
	s.proposalList = append(s.proposalList, proposal)
}

// AllowedAt returns every binding allowed at height: the initial set plus
// every activation at or before height, minus every retirement at or
// before height.
func (s *VersionSchedule) AllowedAt(height uint64) map[Binding]struct{} {
	allowed := make(map[Binding]struct{}, len(s.initial))
	for b := range s.initial {
		allowed[b] = struct{}{}
	}
	for _, h := range sortedHeightsUpTo(s.activations, height) {
		for _, b := range s.activations[h] {
			allowed[b] = struct{}{}
		}
	}
	for _, h := range sortedHeightsUpTo(s.retirements, height) {
		for _, b := range s.retirements[h] {
			delete(allowed, b)
		}
	}
	return allowed
}

// IsAllowed reports whether version is allowed at height.
func (s *VersionSchedule) IsAllowed(v Binding, height uint64) bool {
	_, ok := s.AllowedAt(height)[v]
	return ok
}

// Proposals returns every proposal registered so far, in registration
// order.
func (s *VersionSchedule) Proposals() []VersionProposal {
	out := make([]VersionProposal, len(s.proposalList))
	copy(out, s.proposalList)
	return out
}

// FirstUnsupported scans versions in order and returns the first one not
// allowed at height, or nil if every version is allowed.
func (s *VersionSchedule) FirstUnsupported(height uint64, versions []Binding) *Binding {
	allowed := s.AllowedAt(height)
	for _, v := range versions {
		if _, ok := allowed[v]; !ok {
			b := v
			return &b
		}
	}
	return nil
}

func sortedHeightsUpTo(m map[uint64][]Binding, height uint64) []uint64 {
	heights := make([]uint64, 0, len(m))
	for h := range m {
		if h <= height {
			heights = append(heights, h)
		}
	}
	sort.Slice(heights, func(i, j int) bool { return heights[i] < heights[j] })
	return heights
}
