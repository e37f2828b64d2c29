package ascii

import (
	"bytes"

	"github.com/coregx/ascii/internal/swar"
)

// Split divides t at every character satisfying pred. The separators are
// not included in the result: k adjacent separators yield exactly k-1 empty
// components between them, and separators at the edges yield empty edge
// components.
//
// Splitting the empty text yields no components at all, not a singleton
// empty component. This boundary asymmetry with SplitAt and Inits/Tails is
// deliberate and matches the underlying byte-splitting convention.
//
// Example:
//
//	tilde := func(c ascii.Char) bool { return c.Byte() == '~' }
//	ascii.MustFromString("nyan~~nyan").Split(tilde)
//	// ["nyan", "", "nyan"]
func (t Text) Split(pred func(Char) bool) []Text {
	if len(t.b) == 0 {
		return nil
	}
	var parts []Text
	start := 0
	for i := 0; i < len(t.b); i++ {
		if pred(Char{t.b[i]}) {
			parts = append(parts, Text{b: t.b[start:i]})
			start = i + 1
		}
	}
	return append(parts, Text{b: t.b[start:]})
}

// SplitChar divides t at every occurrence of sep. Same boundary rules as
// Split.
func (t Text) SplitChar(sep Char) []Text {
	return t.Split(func(c Char) bool { return c == sep })
}

// Group partitions t into maximal runs of equal adjacent characters.
// The concatenation of the result is t; empty input yields no runs.
//
// Example:
//
//	ascii.MustFromString("aabcc").Group()
//	// ["aa", "b", "cc"]
func (t Text) Group() []Text {
	return t.GroupBy(func(a, b Char) bool { return a == b })
}

// GroupBy partitions t into maximal runs of adjacent characters related to
// the run's first character by eq. Empty input yields no runs.
func (t Text) GroupBy(eq func(Char, Char) bool) []Text {
	var runs []Text
	i := 0
	for i < len(t.b) {
		j := i + 1
		for j < len(t.b) && eq(Char{t.b[i]}, Char{t.b[j]}) {
			j++
		}
		runs = append(runs, Text{b: t.b[i:j]})
		i = j
	}
	return runs
}

// Inits returns all prefixes of t from shortest to longest, including the
// empty text and t itself: t.Len()+1 components. Unlike Split, the empty
// text yields its single empty prefix.
func (t Text) Inits() []Text {
	out := make([]Text, len(t.b)+1)
	for i := range out {
		out[i] = Text{b: t.b[:i]}
	}
	return out
}

// Tails returns all suffixes of t from longest to shortest, including t
// itself and the empty text: t.Len()+1 components.
func (t Text) Tails() []Text {
	out := make([]Text, len(t.b)+1)
	for i := range out {
		out[i] = Text{b: t.b[i:]}
	}
	return out
}

// HasPrefix reports whether t begins with prefix.
func (t Text) HasPrefix(prefix Text) bool {
	return bytes.HasPrefix(t.b, prefix.b)
}

// HasSuffix reports whether t ends with suffix.
func (t Text) HasSuffix(suffix Text) bool {
	return bytes.HasSuffix(t.b, suffix.b)
}

// StripPrefix returns t without the leading prefix, with ok reporting
// whether prefix was actually a prefix of t. When prefix equals t the
// remainder is present and empty; a non-empty prefix of the empty text is
// absent.
//
// Example:
//
//	n := ascii.MustFromString("nyan")
//	rest, ok := n.StripPrefix(n) // "", true
//	_, ok = ascii.MustFromString("catboy").StripPrefix(n) // false
func (t Text) StripPrefix(prefix Text) (Text, bool) {
	if !bytes.HasPrefix(t.b, prefix.b) {
		return Text{}, false
	}
	return Text{b: t.b[len(prefix.b):]}, true
}

// StripSuffix returns t without the trailing suffix, with ok reporting
// whether suffix was actually a suffix of t.
func (t Text) StripSuffix(suffix Text) (Text, bool) {
	if !bytes.HasSuffix(t.b, suffix.b) {
		return Text{}, false
	}
	return Text{b: t.b[:len(t.b)-len(suffix.b)]}, true
}

// Intersperse places c between every pair of adjacent characters of t.
//
// Example:
//
//	ascii.MustFromString("cat").Intersperse(ascii.MustChar('-'))
//	// "c-a-t"
func (t Text) Intersperse(c Char) Text {
	n := len(t.b)
	if n <= 1 {
		return t
	}
	out := make([]byte, 0, 2*n-1)
	out = append(out, t.b[0])
	for i := 1; i < n; i++ {
		out = append(out, c.b, t.b[i])
	}
	return Text{b: out}
}

// Intercalate joins the texts with sep between each pair.
func Intercalate(sep Text, ts []Text) Text {
	if len(ts) == 0 {
		return Text{}
	}
	total := len(sep.b) * (len(ts) - 1)
	for _, t := range ts {
		total += len(t.b)
	}
	out := make([]byte, 0, total)
	for i, t := range ts {
		if i > 0 {
			out = append(out, sep.b...)
		}
		out = append(out, t.b...)
	}
	return Text{b: out}
}

// Lines splits t at newline characters. The newlines are consumed, a
// trailing newline does not produce a final empty line, and the empty text
// has no lines.
func (t Text) Lines() []Text {
	var out []Text
	rest := t.b
	for len(rest) > 0 {
		i := swar.IndexByte(rest, '\n')
		if i < 0 {
			out = append(out, Text{b: rest})
			break
		}
		out = append(out, Text{b: rest[:i]})
		rest = rest[i+1:]
	}
	return out
}

// Unlines appends a newline to each text and concatenates. Inverse of Lines
// for texts that contain no newlines.
func Unlines(ts []Text) Text {
	total := 0
	for _, t := range ts {
		total += len(t.b) + 1
	}
	out := make([]byte, 0, total)
	for _, t := range ts {
		out = append(out, t.b...)
		out = append(out, '\n')
	}
	return Text{b: out}
}

// Words splits t into maximal runs of non-whitespace characters. Unlike
// Split, adjacent whitespace produces no empty components.
func (t Text) Words() []Text {
	var out []Text
	i := 0
	for i < len(t.b) {
		if (Char{t.b[i]}).IsSpace() {
			i++
			continue
		}
		j := i + 1
		for j < len(t.b) && !(Char{t.b[j]}).IsSpace() {
			j++
		}
		out = append(out, Text{b: t.b[i:j]})
		i = j
	}
	return out
}

// Unwords joins the texts with single spaces.
func Unwords(ts []Text) Text {
	return Intercalate(Text{b: []byte{' '}}, ts)
}
