package ascii

import "github.com/coregx/ascii/class"

// Char is a single validated ASCII code unit with a value in 0x00-0x7F.
//
// Char wraps its byte in a struct so that arbitrary byte values cannot be
// converted in: the only ways to obtain a Char are the checked constructors
// and the characters of an existing Text. The zero value is NUL.
//
// Chars are comparable with ==; ordering follows the numeric code value.
type Char struct {
	b byte
}

// NewChar constructs a Char from b. Fails with *OutOfRangeError if b > 0x7F.
func NewChar(b byte) (Char, error) {
	if b > 0x7F {
		return Char{}, &OutOfRangeError{Value: b}
	}
	return Char{b}, nil
}

// MustChar is like NewChar but panics if b is out of range. Use it for
// character constants known to be valid.
//
//	comma := ascii.MustChar(',')
func MustChar(b byte) Char {
	c, err := NewChar(b)
	if err != nil {
		panic("ascii: MustChar: " + err.Error())
	}
	return c
}

// CharFromRune converts r to a Char. The second result reports whether r is
// an ASCII code point.
func CharFromRune(r rune) (Char, bool) {
	if r < 0 || r > 0x7F {
		return Char{}, false
	}
	return Char{byte(r)}, true
}

// Byte returns the numeric code value of c.
func (c Char) Byte() byte {
	return c.b
}

// Rune returns c as a Unicode code point.
func (c Char) Rune() rune {
	return rune(c.b)
}

// String returns c as a one-character string.
func (c Char) String() string {
	return string(rune(c.b))
}

// Compare returns -1, 0, or +1 ordering c and d by code value.
func (c Char) Compare(d Char) int {
	switch {
	case c.b < d.b:
		return -1
	case c.b > d.b:
		return 1
	}
	return 0
}

// Classification and case mapping, delegated to the class package. The
// higher-order operations of this package treat these as opaque
// Char predicates and transforms.

// IsControl reports whether c is a control character.
func (c Char) IsControl() bool { return class.IsControl(c.b) }

// IsSpace reports whether c is whitespace.
func (c Char) IsSpace() bool { return class.IsSpace(c.b) }

// IsDigit reports whether c is a decimal digit.
func (c Char) IsDigit() bool { return class.IsDigit(c.b) }

// IsHexDigit reports whether c is a hexadecimal digit.
func (c Char) IsHexDigit() bool { return class.IsHexDigit(c.b) }

// IsUpper reports whether c is an uppercase letter.
func (c Char) IsUpper() bool { return class.IsUpper(c.b) }

// IsLower reports whether c is a lowercase letter.
func (c Char) IsLower() bool { return class.IsLower(c.b) }

// IsLetter reports whether c is a letter.
func (c Char) IsLetter() bool { return class.IsLetter(c.b) }

// IsLetterOrDigit reports whether c is a letter or a decimal digit.
func (c Char) IsLetterOrDigit() bool { return class.IsLetterOrDigit(c.b) }

// IsPrint reports whether c is printable, including space.
func (c Char) IsPrint() bool { return class.IsPrint(c.b) }

// IsPunct reports whether c is a punctuation or symbol character.
func (c Char) IsPunct() bool { return class.IsPunct(c.b) }

// ToUpper returns the uppercase version of c, or c itself if it is not a
// lowercase letter.
func (c Char) ToUpper() Char { return Char{class.ToUpper(c.b)} }

// ToLower returns the lowercase version of c, or c itself if it is not an
// uppercase letter.
func (c Char) ToLower() Char { return Char{class.ToLower(c.b)} }
