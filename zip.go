package ascii

// CharPair is one positional pairing produced by Zip.
type CharPair struct {
	First  Char
	Second Char
}

// Zip pairs the characters of t and u positionally, truncating to the
// shorter input.
//
// Example:
//
//	ascii.Zip(ascii.MustFromString("catboy"), ascii.MustFromString("nyan"))
//	// [('c','n') ('a','y') ('t','a') ('b','n')]
func Zip(t, u Text) []CharPair {
	n := min(len(t.b), len(u.b))
	if n == 0 {
		return nil
	}
	out := make([]CharPair, n)
	for i := 0; i < n; i++ {
		out[i] = CharPair{First: Char{t.b[i]}, Second: Char{u.b[i]}}
	}
	return out
}

// ZipWith combines t and u positionally with f, truncating to the shorter
// input.
func ZipWith(t, u Text, f func(Char, Char) Char) Text {
	n := min(len(t.b), len(u.b))
	if n == 0 {
		return Text{}
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = f(Char{t.b[i]}, Char{u.b[i]}).b
	}
	return Text{b: out}
}

// Unzip splits pairs back into two texts. Inverse of Zip for equal-length
// inputs.
func Unzip(pairs []CharPair) (Text, Text) {
	if len(pairs) == 0 {
		return Text{}, Text{}
	}
	first := make([]byte, len(pairs))
	second := make([]byte, len(pairs))
	for i, p := range pairs {
		first[i] = p.First.b
		second[i] = p.Second.b
	}
	return Text{b: first}, Text{b: second}
}
