// Package swar provides byte-scanning primitives using the SWAR
// (SIMD Within A Register) technique: eight bytes are examined per step
// with uint64 bitwise operations.
//
// These are the hot-path kernels behind the ascii package:
//   - FirstNonASCII: locate the first byte >= 0x80 (the validation scan)
//   - IndexByte: first occurrence of a byte (memchr)
//   - CountByte: occurrence count of a byte
//   - Index: first occurrence of a substring (rare-byte heuristic)
//
// All functions are pure Go and portable. Throughput on the 8-byte word
// path is memory-bandwidth limited on modern CPUs.
package swar

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// IsASCII reports whether every byte in data is < 0x80.
func IsASCII(data []byte) bool {
	return FirstNonASCII(data) == -1
}

// FirstNonASCII returns the index of the first byte >= 0x80 in data,
// or -1 if all bytes are ASCII.
//
// ASCII bytes have bit 7 clear, so ANDing an 8-byte chunk with
// 0x8080808080808080 leaves a set bit exactly at each non-ASCII byte.
// The lowest set bit of that mask identifies the first offender.
func FirstNonASCII(data []byte) int {
	n := len(data)
	i := 0

	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(data[i:])
		if m := chunk & hi8; m != 0 {
			return i + bits.TrailingZeros64(m)/8
		}
		i += 8
	}

	for ; i < n; i++ {
		if data[i] >= 0x80 {
			return i
		}
	}
	return -1
}

// IndexByte returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// The scan broadcasts needle into every byte of a uint64, XORs each 8-byte
// chunk against it (matching bytes become zero), and applies the zero-byte
// detection formula (v - 0x01..01) & ^v & 0x80..80. The lowest flagged
// position is the first match.
func IndexByte(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	mask := uint64(needle) * lo8

	i := 0
	for i+8 <= n {
		chunk := binary.LittleEndian.Uint64(haystack[i:])
		xor := chunk ^ mask
		if z := (xor - lo8) & ^xor & hi8; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
		i += 8
	}

	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// CountByte returns the number of occurrences of needle in haystack.
func CountByte(haystack []byte, needle byte) int {
	count := 0
	for _, b := range haystack {
		if b == needle {
			count++
		}
	}
	return count
}

// Index returns the index of the first instance of needle in haystack, or
// -1 if needle is not present. Equivalent to bytes.Index.
//
// The search uses a rare-byte heuristic: the needle byte with the lowest
// empirical frequency rank is located with IndexByte, and each candidate
// position is verified against the full needle. This keeps the scan on the
// fast single-byte path for the vast majority of positions.
func Index(haystack, needle []byte) int {
	n := len(haystack)
	m := len(needle)

	if m == 0 {
		return 0
	}
	if m > n {
		return -1
	}
	if m == 1 {
		return IndexByte(haystack, needle[0])
	}

	// Pick the rarest byte in the needle as the scan anchor.
	off := 0
	for i := 1; i < m; i++ {
		if rank(needle[i]) < rank(needle[off]) {
			off = i
		}
	}
	anchor := needle[off]

	pos := off
	for pos <= n-m+off {
		i := IndexByte(haystack[pos:], anchor)
		if i < 0 {
			return -1
		}
		pos += i
		start := pos - off
		if start+m <= n && bytes.Equal(haystack[start:start+m], needle) {
			return start
		}
		pos++
	}
	return -1
}

// rank returns the frequency rank of b. Bytes outside the ASCII range do
// not occur in validated needles; they rank as rarest.
func rank(b byte) byte {
	if b >= 0x80 {
		return 0
	}
	return frequencyRanks[b]
}
