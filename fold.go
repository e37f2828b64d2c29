package ascii

// Higher-order operations. These preserve the ASCII invariant because their
// callbacks are typed Char -> Char: the only values a callback can produce
// went through a checked constructor themselves.

// Map applies f to every character of t.
//
// Example:
//
//	ascii.MustFromString("cat").Map(ascii.Char.ToUpper)
//	// "CAT"
func (t Text) Map(f func(Char) Char) Text {
	if len(t.b) == 0 {
		return Text{}
	}
	out := make([]byte, len(t.b))
	for i, b := range t.b {
		out[i] = f(Char{b}).b
	}
	return Text{b: out}
}

// Scanl returns the successive reduced values of a left fold of f over t
// starting from init. The result has t.Len()+1 characters and always begins
// with init.
func (t Text) Scanl(init Char, f func(Char, Char) Char) Text {
	out := make([]byte, 0, len(t.b)+1)
	acc := init
	out = append(out, acc.b)
	for _, b := range t.b {
		acc = f(acc, Char{b})
		out = append(out, acc.b)
	}
	return Text{b: out}
}

// Foldl reduces t left to right: f(f(f(init, t[0]), t[1]), ...).
func Foldl[A any](t Text, init A, f func(A, Char) A) A {
	acc := init
	for _, b := range t.b {
		acc = f(acc, Char{b})
	}
	return acc
}

// Foldr reduces t right to left: f(t[0], f(t[1], ... f(t[n-1], init))).
func Foldr[A any](t Text, init A, f func(Char, A) A) A {
	acc := init
	for i := len(t.b) - 1; i >= 0; i-- {
		acc = f(Char{t.b[i]}, acc)
	}
	return acc
}

// MapAccumL threads an accumulator left to right while rewriting each
// character, returning the final accumulator and the rewritten text.
func MapAccumL[S any](t Text, init S, f func(S, Char) (S, Char)) (S, Text) {
	acc := init
	if len(t.b) == 0 {
		return acc, Text{}
	}
	out := make([]byte, len(t.b))
	for i, b := range t.b {
		var c Char
		acc, c = f(acc, Char{b})
		out[i] = c.b
	}
	return acc, Text{b: out}
}

// Unfoldr builds a text from a seed. step is applied repeatedly: each
// application either produces the next character and a new seed (ok true)
// or finishes generation (ok false).
//
// step must terminate; an unbounded generator should use UnfoldrN.
//
// Example:
//
//	countdown := func(n int) (ascii.Char, int, bool) {
//	    if n == 0 {
//	        return ascii.Char{}, 0, false
//	    }
//	    return ascii.MustChar('0' + byte(n)), n - 1, true
//	}
//	ascii.Unfoldr(3, countdown) // "321"
func Unfoldr[S any](seed S, step func(S) (Char, S, bool)) Text {
	var out []byte
	s := seed
	for {
		c, next, ok := step(s)
		if !ok {
			break
		}
		out = append(out, c.b)
		s = next
	}
	return Text{b: out}
}

// UnfoldrN is Unfoldr with the output length bounded by n. The second
// result reports whether the generator still had output pending when the
// bound cut it off; it is false when generation completed naturally within
// the bound. Non-positive n yields the empty text.
func UnfoldrN[S any](n int, seed S, step func(S) (Char, S, bool)) (Text, bool) {
	var out []byte
	s := seed
	for len(out) < n {
		c, next, ok := step(s)
		if !ok {
			return Text{b: out}, false
		}
		out = append(out, c.b)
		s = next
	}
	// Bound reached: probe whether the generator was exhausted anyway.
	_, _, more := step(s)
	return Text{b: out}, more
}

// Replicate returns a text of n copies of c. Non-positive n yields the
// empty text.
func Replicate(n int, c Char) Text {
	if n <= 0 {
		return Text{}
	}
	out := make([]byte, n)
	for i := range out {
		out[i] = c.b
	}
	return Text{b: out}
}
