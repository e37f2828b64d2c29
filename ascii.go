// Package ascii provides a validated text type restricted to the 7-bit
// ASCII range, layered over a raw byte slice.
//
// The package is built around two value types:
//   - Char: a single validated code unit (0x00-0x7F)
//   - Text: an immutable sequence of Chars backed by a byte slice
//
// Validation happens exactly once, at the construction boundary
// (FromBytes, FromString). Every operation in the
// algorithm library preserves the ASCII invariant by construction: structural
// transforms (slicing, splitting, filtering, reversing, zipping) only
// rearrange or remove existing bytes, and higher-order transforms (Map, Scanl,
// Unfoldr) are typed so their callbacks can only produce validated Chars.
// No operation ever re-validates on the hot path.
//
// Basic usage:
//
//	t, err := ascii.FromBytes([]byte("hello"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	head, rest, ok := t.Uncons()
//	parts := t.Split(func(c ascii.Char) bool { return c.Byte() == ',' })
//
// Known-good literals use the panic-on-error constructor:
//
//	var greeting = ascii.MustFromString("hello")
//
// Performance characteristics:
//   - Validation: one linear SWAR-accelerated scan per input buffer
//   - Take/Drop/SplitAt/Uncons: O(1), structural sharing of the backing array
//   - All other operations: linear in the inputs they touch
//
// Concurrency: Char and Text are immutable after construction and safe for
// concurrent use without locking.
package ascii

import (
	"bytes"
	"strconv"

	"github.com/coregx/ascii/internal/swar"
)

// Text is an immutable sequence of ASCII characters backed by a byte slice.
// Every byte of the backing slice is guaranteed to be in 0x00-0x7F for the
// full lifetime of the value.
//
// The zero value is the empty text. Texts produced by slicing operations
// (Take, Drop, SplitAt, Split, ...) share the backing array of their source;
// no operation mutates a backing array after construction.
type Text struct {
	b []byte
}

// FromBytes validates buf and wraps it as Text.
//
// The scan is a single linear pass; on failure the returned error is a
// *ValidationError reporting the index of the first byte > 0x7F.
//
// On success buf is wrapped without copying. The caller must not modify buf
// afterwards; hand over ownership or pass a copy.
//
// Example:
//
//	t, err := ascii.FromBytes([]byte{0x63, 0x61, 0x74})
//	// t = "cat", err = nil
//
//	_, err = ascii.FromBytes([]byte{0x63, 0xFF})
//	// err reports position 1
func FromBytes(buf []byte) (Text, error) {
	if i := swar.FirstNonASCII(buf); i >= 0 {
		return Text{}, &ValidationError{Position: i}
	}
	return Text{b: buf}, nil
}

// FromString validates the Unicode text s and converts it to Text.
//
// The scan walks the decoded runes of s; the first rune outside the ASCII
// range (this includes code points 0x80-0xFF, which are valid bytes but not
// valid ASCII characters) fails validation with a *ValidationError whose
// position is the rune index, not the byte offset. On success the content is
// copied into a fresh buffer.
func FromString(s string) (Text, error) {
	// All-ASCII strings are byte-per-rune; the SWAR scan both validates
	// and proves the rune loop unnecessary.
	if swar.IsASCII([]byte(s)) {
		return Text{b: []byte(s)}, nil
	}
	pos := 0
	for _, r := range s {
		// Both non-ASCII code points and invalid UTF-8 (decoded as
		// U+FFFD) land here.
		if r >= 0x80 {
			return Text{}, &ValidationError{Position: pos}
		}
		pos++
	}
	// Unreachable for well-formed input: a non-ASCII byte implies a
	// non-ASCII or invalid rune.
	return Text{}, &ValidationError{Position: pos}
}

// MustFromString is like FromString but panics on non-ASCII input.
//
// This is the runtime counterpart of build-time literal validation: use it
// for literals known to be valid, the same way regexp users reach for
// MustCompile.
//
//	var sep = ascii.MustFromString(", ")
func MustFromString(s string) Text {
	t, err := FromString(s)
	if err != nil {
		panic("ascii: MustFromString(" + strconv.Quote(s) + "): " + err.Error())
	}
	return t
}

// ValidateLiteral applies the same predicate as FromString to a source
// literal and returns its encoded bytes. It is intended for build tooling
// (code generators, linters) that wants to reject invalid literals before
// the program runs; at runtime it is equivalent to FromString followed by
// Bytes.
func ValidateLiteral(s string) ([]byte, error) {
	t, err := FromString(s)
	if err != nil {
		return nil, err
	}
	return t.Bytes(), nil
}

// Valid reports whether every byte of buf is in the ASCII range.
func Valid(buf []byte) bool {
	return swar.IsASCII(buf)
}

// ValidString reports whether s contains only ASCII code points.
func ValidString(s string) bool {
	return swar.IsASCII([]byte(s))
}

// Bytes returns the backing byte slice of t. O(1), no copy, no validation.
//
// The slice is shared with t and with every Text derived from the same
// source; it must not be modified.
func (t Text) Bytes() []byte {
	return t.b
}

// String returns the content of t as a Go string. O(n), copies.
// Always succeeds: every ASCII byte sequence is valid UTF-8.
func (t Text) String() string {
	return string(t.b)
}

// Len returns the number of characters in t. Characters and bytes coincide,
// so this is also the byte length.
func (t Text) Len() int {
	return len(t.b)
}

// IsEmpty reports whether t has no characters.
func (t Text) IsEmpty() bool {
	return len(t.b) == 0
}

// At returns the character at index i. Panics if i is out of range, like
// slice indexing.
func (t Text) At(i int) Char {
	return Char{t.b[i]}
}

// Equal reports whether t and u have identical content.
func (t Text) Equal(u Text) bool {
	return bytes.Equal(t.b, u.b)
}

// Compare returns -1, 0, or +1 ordering t and u bytewise.
func (t Text) Compare(u Text) int {
	return bytes.Compare(t.b, u.b)
}
