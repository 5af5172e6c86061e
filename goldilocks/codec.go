// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package goldilocks

import "encoding/binary"

// Bytes8 returns the canonical 8-byte big-endian encoding of a.
func (a Element) Bytes8() [8]byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], uint64(a))
	return out
}

// Bytes32 returns the canonical 32-byte encoding: 24 zero bytes followed by
// the 8-byte big-endian value. Used for transaction-level (in-wallet,
// in-AIR) field encodings per SPEC_FULL.md's Open Question resolution.
func (a Element) Bytes32() [32]byte {
	var out [32]byte
	binary.BigEndian.PutUint64(out[24:], uint64(a))
	return out
}

// Bytes48 returns the canonical 48-byte encoding: 40 zero bytes followed by
// the 8-byte big-endian value. Only this package's tests call it; the
// settlement, epoch and block-header code does not use the 48-byte form.
func (a Element) Bytes48() [48]byte {
	var out [48]byte
	binary.BigEndian.PutUint64(out[40:], uint64(a))
	return out
}

// DecodeBytes8 parses a raw 8-byte big-endian value, rejecting values that
// exceed Modulus (non-canonical).
func DecodeBytes8(b [8]byte) (Element, error) {
	v := binary.BigEndian.Uint64(b[:])
	if v >= Modulus {
		return 0, ErrNonCanonical
	}
	return Element(v), nil
}

// DecodeBytes32 parses the 32-byte canonical encoding, rejecting any input
// whose first 24 bytes are not all zero, or whose low 8 bytes encode a
// value >= Modulus. The encoding is therefore a bijection onto {0,...,p-1}.
func DecodeBytes32(b [32]byte) (Element, error) {
	for _, z := range b[:24] {
		if z != 0 {
			return 0, ErrNonCanonical
		}
	}
	var low [8]byte
	copy(low[:], b[24:])
	return DecodeBytes8(low)
}

// DecodeBytes48 parses the 48-byte canonical encoding (consensus-boundary
// width), with the same exact-zero-prefix requirement as DecodeBytes32.
func DecodeBytes48(b [48]byte) (Element, error) {
	for _, z := range b[:40] {
		if z != 0 {
			return 0, ErrNonCanonical
		}
	}
	var low [8]byte
	copy(low[:], b[40:])
	return DecodeBytes8(low)
}

// IsCanonicalBytes32 reports whether b is the exact canonical encoding of
// some field element, without returning the element.
func IsCanonicalBytes32(b [32]byte) bool {
	_, err := DecodeBytes32(b)
	return err == nil
}

// IsCanonicalBytes48 reports whether b is the exact canonical encoding of
// some field element, without returning the element.
func IsCanonicalBytes48(b [48]byte) bool {
	_, err := DecodeBytes48(b)
	return err == nil
}

// ElementsFromBytesBE32 splits a 32-byte buffer into four field elements by
// taking successive 8-byte big-endian chunks, each reduced modulo p. Used to
// embed arbitrary 32-byte values (pk_recipient, rho, r, commitments) into
// sponge input vectors.
func ElementsFromBytesBE32(b [32]byte) [4]Element {
	var out [4]Element
	for i := 0; i < 4; i++ {
		out[i] = New(binary.BigEndian.Uint64(b[i*8 : i*8+8]))
	}
	return out
}
