package ascii

import "github.com/coregx/ascii/internal/swar"

// Find returns the first character of t satisfying pred, left to right,
// with ok reporting whether any matched.
func (t Text) Find(pred func(Char) bool) (Char, bool) {
	if i := t.FindIndex(pred); i >= 0 {
		return Char{t.b[i]}, true
	}
	return Char{}, false
}

// FindIndex returns the index of the first character satisfying pred, or
// -1 if none does.
func (t Text) FindIndex(pred func(Char) bool) int {
	for i := 0; i < len(t.b); i++ {
		if pred(Char{t.b[i]}) {
			return i
		}
	}
	return -1
}

// IndexChar returns the index of the first occurrence of c, or -1.
// SWAR-accelerated.
func (t Text) IndexChar(c Char) int {
	return swar.IndexByte(t.b, c.b)
}

// ContainsChar reports whether c occurs in t.
func (t Text) ContainsChar(c Char) bool {
	return swar.IndexByte(t.b, c.b) >= 0
}

// CountChar returns the number of occurrences of c in t.
func (t Text) CountChar(c Char) int {
	return swar.CountByte(t.b, c.b)
}

// Count returns the number of characters satisfying pred.
func (t Text) Count(pred func(Char) bool) int {
	n := 0
	for i := 0; i < len(t.b); i++ {
		if pred(Char{t.b[i]}) {
			n++
		}
	}
	return n
}

// Any reports whether any character of t satisfies pred.
// Vacuously false on empty input.
func (t Text) Any(pred func(Char) bool) bool {
	return t.FindIndex(pred) >= 0
}

// All reports whether every character of t satisfies pred.
// Vacuously true on empty input.
func (t Text) All(pred func(Char) bool) bool {
	for i := 0; i < len(t.b); i++ {
		if !pred(Char{t.b[i]}) {
			return false
		}
	}
	return true
}

// Index returns the index of the first occurrence of sub in t, or -1.
// Uses rare-byte accelerated substring search; the empty text occurs at
// index 0.
func (t Text) Index(sub Text) int {
	return swar.Index(t.b, sub.b)
}

// Contains reports whether sub occurs in t.
func (t Text) Contains(sub Text) bool {
	return swar.Index(t.b, sub.b) >= 0
}

// Maximum returns the numerically largest character of t, with ok false on
// empty input.
func (t Text) Maximum() (Char, bool) {
	if len(t.b) == 0 {
		return Char{}, false
	}
	max := t.b[0]
	for _, b := range t.b[1:] {
		if b > max {
			max = b
		}
	}
	return Char{max}, true
}

// Minimum returns the numerically smallest character of t, with ok false on
// empty input.
func (t Text) Minimum() (Char, bool) {
	if len(t.b) == 0 {
		return Char{}, false
	}
	min := t.b[0]
	for _, b := range t.b[1:] {
		if b < min {
			min = b
		}
	}
	return Char{min}, true
}
