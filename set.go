package ascii

// CharSet is a precomputed set of ASCII characters backed by a 128-bit
// bitset. Build once, then use for O(1) membership in IndexAny and the Trim
// family.
type CharSet struct {
	bits [2]uint64
}

// NewCharSet creates a CharSet containing the given characters.
func NewCharSet(chars ...Char) CharSet {
	var cs CharSet
	for _, c := range chars {
		cs.bits[c.b>>6] |= 1 << (c.b & 63)
	}
	return cs
}

// CharSetOf creates a CharSet containing the characters of t.
func CharSetOf(t Text) CharSet {
	var cs CharSet
	for _, b := range t.b {
		cs.bits[b>>6] |= 1 << (b & 63)
	}
	return cs
}

// Contains reports whether c is in the set.
func (cs CharSet) Contains(c Char) bool {
	return cs.bits[c.b>>6]&(1<<(c.b&63)) != 0
}

// IndexAny returns the index of the first character of t contained in set,
// or -1 if none is.
func (t Text) IndexAny(set CharSet) int {
	for i, b := range t.b {
		if set.bits[b>>6]&(1<<(b&63)) != 0 {
			return i
		}
	}
	return -1
}

// TrimLeft returns t without its longest prefix of characters contained in
// set. O(1) space, shares the backing array.
func (t Text) TrimLeft(set CharSet) Text {
	i := 0
	for i < len(t.b) && set.bits[t.b[i]>>6]&(1<<(t.b[i]&63)) != 0 {
		i++
	}
	return Text{b: t.b[i:]}
}

// TrimRight returns t without its longest suffix of characters contained in
// set.
func (t Text) TrimRight(set CharSet) Text {
	j := len(t.b)
	for j > 0 && set.bits[t.b[j-1]>>6]&(1<<(t.b[j-1]&63)) != 0 {
		j--
	}
	return Text{b: t.b[:j]}
}

// Trim returns t without leading and trailing characters contained in set.
func (t Text) Trim(set CharSet) Text {
	return t.TrimLeft(set).TrimRight(set)
}
