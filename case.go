package ascii

import "github.com/coregx/ascii/class"

// ToUpper returns t with every lowercase letter replaced by its uppercase
// counterpart.
func (t Text) ToUpper() Text {
	return t.Map(Char.ToUpper)
}

// ToLower returns t with every uppercase letter replaced by its lowercase
// counterpart.
func (t Text) ToLower() Text {
	return t.Map(Char.ToLower)
}

// EqualFold reports whether t and u are equal under ASCII case folding.
// Only the 26 letters fold; no Unicode case rules apply.
func EqualFold(t, u Text) bool {
	if len(t.b) != len(u.b) {
		return false
	}
	for i := 0; i < len(t.b); i++ {
		if class.ToLower(t.b[i]) != class.ToLower(u.b[i]) {
			return false
		}
	}
	return true
}

// HasPrefixFold reports whether t begins with prefix under ASCII case
// folding.
func (t Text) HasPrefixFold(prefix Text) bool {
	if len(t.b) < len(prefix.b) {
		return false
	}
	return EqualFold(t.Take(prefix.Len()), prefix)
}

// HasSuffixFold reports whether t ends with suffix under ASCII case
// folding.
func (t Text) HasSuffixFold(suffix Text) bool {
	if len(t.b) < len(suffix.b) {
		return false
	}
	return EqualFold(t.Drop(t.Len()-suffix.Len()), suffix)
}
