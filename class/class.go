// Package class provides character classification and case mapping for the
// 7-bit ASCII range.
//
// All functions operate on raw bytes. Callers are expected to pass values in
// 0x00-0x7F (the ascii package guarantees this for every byte it hands over);
// bytes with the high bit set satisfy no predicate and pass through the case
// transforms unchanged.
//
// The classification follows the C locale / RFC 20 conventions: whitespace is
// space, tab, newline, vertical tab, form feed, and carriage return; printable
// means 0x20-0x7E; punctuation is any graphic character that is neither a
// letter nor a digit.
package class

// IsControl reports whether b is a control character (0x00-0x1F or DEL).
func IsControl(b byte) bool {
	return b < 0x20 || b == 0x7F
}

// IsSpace reports whether b is ASCII whitespace.
func IsSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsDigit reports whether b is a decimal digit.
func IsDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// IsHexDigit reports whether b is a hexadecimal digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}

// IsUpper reports whether b is an uppercase letter.
func IsUpper(b byte) bool {
	return 'A' <= b && b <= 'Z'
}

// IsLower reports whether b is a lowercase letter.
func IsLower(b byte) bool {
	return 'a' <= b && b <= 'z'
}

// IsLetter reports whether b is a letter.
func IsLetter(b byte) bool {
	return IsUpper(b) || IsLower(b)
}

// IsLetterOrDigit reports whether b is a letter or a decimal digit.
func IsLetterOrDigit(b byte) bool {
	return IsLetter(b) || IsDigit(b)
}

// IsGraph reports whether b is a graphic character: printable and not space.
func IsGraph(b byte) bool {
	return 0x21 <= b && b <= 0x7E
}

// IsPrint reports whether b is printable, including space.
// See RFC 20 section 4.2.
func IsPrint(b byte) bool {
	return 0x20 <= b && b <= 0x7E
}

// IsPunct reports whether b is a punctuation or symbol character.
func IsPunct(b byte) bool {
	return IsGraph(b) && !IsLetterOrDigit(b)
}

// ToUpper returns the uppercase version of b if b is a lowercase letter,
// otherwise b unchanged.
func ToUpper(b byte) byte {
	if IsLower(b) {
		return b - ('a' - 'A')
	}
	return b
}

// ToLower returns the lowercase version of b if b is an uppercase letter,
// otherwise b unchanged.
func ToLower(b byte) byte {
	if IsUpper(b) {
		return b + ('a' - 'A')
	}
	return b
}
