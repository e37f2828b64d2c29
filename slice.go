package ascii

// Structural transforms. Every operation here only removes, reorders, or
// duplicates bytes of already-validated texts, so the ASCII invariant is
// preserved without re-validation.

// Take returns the first n characters of t. n is clamped to [0, t.Len()]:
// negative n yields the empty text, over-long n yields t. O(1), shares the
// backing array.
//
// Example:
//
//	t := ascii.MustFromString("catboy")
//	t.Take(3)    // "cat"
//	t.Take(-100) // ""
//	t.Take(1000) // "catboy"
func (t Text) Take(n int) Text {
	return Text{b: t.b[:clamp(n, len(t.b))]}
}

// Drop returns t without its first n characters, with the same clamping as
// Take. O(1), shares the backing array.
func (t Text) Drop(n int) Text {
	return Text{b: t.b[clamp(n, len(t.b)):]}
}

// SplitAt returns (t.Take(n), t.Drop(n)). O(1).
func (t Text) SplitAt(n int) (Text, Text) {
	i := clamp(n, len(t.b))
	return Text{b: t.b[:i]}, Text{b: t.b[i:]}
}

// TakeWhile returns the longest prefix of t whose characters all satisfy
// pred.
func (t Text) TakeWhile(pred func(Char) bool) Text {
	return t.Take(t.prefixLen(pred))
}

// DropWhile returns t without the longest prefix satisfying pred.
func (t Text) DropWhile(pred func(Char) bool) Text {
	return t.Drop(t.prefixLen(pred))
}

// Span returns (t.TakeWhile(pred), t.DropWhile(pred)) in one pass.
func (t Text) Span(pred func(Char) bool) (Text, Text) {
	return t.SplitAt(t.prefixLen(pred))
}

// Break is Span with the predicate negated: it splits t before the first
// character satisfying pred.
func (t Text) Break(pred func(Char) bool) (Text, Text) {
	for i := 0; i < len(t.b); i++ {
		if pred(Char{t.b[i]}) {
			return t.SplitAt(i)
		}
	}
	return t, Text{}
}

// Filter returns the characters of t satisfying pred, in order.
func (t Text) Filter(pred func(Char) bool) Text {
	var out []byte
	for i := 0; i < len(t.b); i++ {
		if pred(Char{t.b[i]}) {
			out = append(out, t.b[i])
		}
	}
	return Text{b: out}
}

// Partition returns the characters satisfying pred and those that do not,
// both in their original order. Equivalent to (t.Filter(pred),
// t.Filter(not pred)) in a single pass.
func (t Text) Partition(pred func(Char) bool) (Text, Text) {
	var yes, no []byte
	for i := 0; i < len(t.b); i++ {
		if pred(Char{t.b[i]}) {
			yes = append(yes, t.b[i])
		} else {
			no = append(no, t.b[i])
		}
	}
	return Text{b: yes}, Text{b: no}
}

// Reverse returns the characters of t in reverse order.
func (t Text) Reverse() Text {
	n := len(t.b)
	if n == 0 {
		return Text{}
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = t.b[n-1-i]
	}
	return Text{b: out}
}

// Head returns the first character of t, with ok reporting presence.
func (t Text) Head() (Char, bool) {
	if len(t.b) == 0 {
		return Char{}, false
	}
	return Char{t.b[0]}, true
}

// Last returns the last character of t, with ok reporting presence.
func (t Text) Last() (Char, bool) {
	if len(t.b) == 0 {
		return Char{}, false
	}
	return Char{t.b[len(t.b)-1]}, true
}

// Uncons splits t into its first character and the remainder. O(1); ok is
// false on empty input.
//
// Example:
//
//	head, rest, ok := ascii.MustFromString("cat").Uncons()
//	// head = 'c', rest = "at", ok = true
func (t Text) Uncons() (Char, Text, bool) {
	if len(t.b) == 0 {
		return Char{}, Text{}, false
	}
	return Char{t.b[0]}, Text{b: t.b[1:]}, true
}

// Unsnoc splits t into its last character and everything before it. O(1);
// ok is false on empty input.
func (t Text) Unsnoc() (Text, Char, bool) {
	if len(t.b) == 0 {
		return Text{}, Char{}, false
	}
	return Text{b: t.b[:len(t.b)-1]}, Char{t.b[len(t.b)-1]}, true
}

// Cons returns t with c prepended.
func (t Text) Cons(c Char) Text {
	out := make([]byte, 0, len(t.b)+1)
	out = append(out, c.b)
	return Text{b: append(out, t.b...)}
}

// Snoc returns t with c appended.
func (t Text) Snoc(c Char) Text {
	out := make([]byte, 0, len(t.b)+1)
	out = append(out, t.b...)
	return Text{b: append(out, c.b)}
}

// Append returns the concatenation of t and u.
func (t Text) Append(u Text) Text {
	if len(t.b) == 0 {
		return u
	}
	if len(u.b) == 0 {
		return t
	}
	out := make([]byte, 0, len(t.b)+len(u.b))
	out = append(out, t.b...)
	return Text{b: append(out, u.b...)}
}

// Concat returns the concatenation of all texts in order.
func Concat(ts ...Text) Text {
	total := 0
	for _, t := range ts {
		total += len(t.b)
	}
	if total == 0 {
		return Text{}
	}
	out := make([]byte, 0, total)
	for _, t := range ts {
		out = append(out, t.b...)
	}
	return Text{b: out}
}

// prefixLen returns the length of the longest prefix satisfying pred.
func (t Text) prefixLen(pred func(Char) bool) int {
	i := 0
	for i < len(t.b) && pred(Char{t.b[i]}) {
		i++
	}
	return i
}

// clamp restricts n to [0, max].
func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}
