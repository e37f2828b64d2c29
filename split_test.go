package ascii

import "testing"

func isTilde(c Char) bool { return c == MustChar('~') }

// TestSplit tests separator semantics, in particular the empty-input
// boundary rule and adjacent separators.
func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty yields no components", "", nil},
		{"no separator", "nyan", []string{"nyan"}},
		{"single separator", "a~b", []string{"a", "b"}},
		{"adjacent separators", "nyan~~nyan", []string{"nyan", "", "nyan"}},
		{"leading separator", "~a", []string{"", "a"}},
		{"trailing separator", "a~", []string{"a", ""}},
		{"only separators", "~~~", []string{"", "", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustFromString(tt.in).Split(isTilde)
			if len(got) != len(tt.want) {
				t.Fatalf("Split(%q) has %d components, want %d", tt.in, len(got), len(tt.want))
			}
			for i := range got {
				if got[i].String() != tt.want[i] {
					t.Errorf("component %d = %q, want %q", i, got[i].String(), tt.want[i])
				}
			}
		})
	}
}

// TestSplitComponentCount checks the k separators -> k+1 components law on
// non-empty input.
func TestSplitComponentCount(t *testing.T) {
	inputs := []string{"a", "~", "a~b~c", "~~", "x~~~y"}
	for _, in := range inputs {
		text := MustFromString(in)
		k := text.CountChar(MustChar('~'))
		if got := len(text.Split(isTilde)); got != k+1 {
			t.Errorf("Split(%q) has %d components, want %d", in, got, k+1)
		}
	}
}

// TestSplitChar verifies the single-character convenience wrapper.
func TestSplitChar(t *testing.T) {
	got := MustFromString("a,b").SplitChar(MustChar(','))
	if len(got) != 2 || got[0].String() != "a" || got[1].String() != "b" {
		t.Errorf("SplitChar = %v", got)
	}
}

// TestGroup tests maximal-run partitioning.
func TestGroup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty yields no runs", "", nil},
		{"single", "x", []string{"x"}},
		{"runs", "aabcc", []string{"aa", "b", "cc"}},
		{"all same", "aaaa", []string{"aaaa"}},
		{"no runs", "abc", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustFromString(tt.in).Group()
			if len(got) != len(tt.want) {
				t.Fatalf("Group(%q) = %d runs, want %d", tt.in, len(got), len(tt.want))
			}
			for i := range got {
				if got[i].String() != tt.want[i] {
					t.Errorf("run %d = %q, want %q", i, got[i].String(), tt.want[i])
				}
			}
			// Runs always reassemble to the input.
			if !Concat(got...).Equal(MustFromString(tt.in)) {
				t.Errorf("Concat(Group(%q)) != input", tt.in)
			}
		})
	}
}

// TestGroupBy groups case-insensitively to exercise a non-trivial
// equivalence.
func TestGroupBy(t *testing.T) {
	sameFold := func(a, b Char) bool { return a.ToLower() == b.ToLower() }
	got := MustFromString("aAbBB").GroupBy(sameFold)
	want := []string{"aA", "bBB"}
	if len(got) != len(want) {
		t.Fatalf("GroupBy = %d runs, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i].String() != want[i] {
			t.Errorf("run %d = %q, want %q", i, got[i].String(), want[i])
		}
	}
}

// TestInitsTails checks the base-component convention: the empty text has
// exactly one (empty) prefix and suffix, unlike Split.
func TestInitsTails(t *testing.T) {
	empty := Text{}
	if got := empty.Inits(); len(got) != 1 || !got[0].IsEmpty() {
		t.Errorf("Inits(empty) = %v, want single empty component", got)
	}
	if got := empty.Tails(); len(got) != 1 || !got[0].IsEmpty() {
		t.Errorf("Tails(empty) = %v, want single empty component", got)
	}

	text := MustFromString("abc")
	inits := text.Inits()
	wantInits := []string{"", "a", "ab", "abc"}
	if len(inits) != len(wantInits) {
		t.Fatalf("Inits = %d components, want %d", len(inits), len(wantInits))
	}
	for i := range inits {
		if inits[i].String() != wantInits[i] {
			t.Errorf("Inits[%d] = %q, want %q", i, inits[i].String(), wantInits[i])
		}
	}

	tails := text.Tails()
	wantTails := []string{"abc", "bc", "c", ""}
	for i := range tails {
		if tails[i].String() != wantTails[i] {
			t.Errorf("Tails[%d] = %q, want %q", i, tails[i].String(), wantTails[i])
		}
	}
}

// TestStripPrefixSuffix tests the exact-prefix contract including the
// whole-text and empty-text boundary cases.
func TestStripPrefixSuffix(t *testing.T) {
	nyan := MustFromString("nyan")

	rest, ok := nyan.StripPrefix(nyan)
	if !ok || !rest.IsEmpty() {
		t.Errorf("StripPrefix(whole) = (%q, %v), want (\"\", true)", rest.String(), ok)
	}

	if _, ok := MustFromString("catboy").StripPrefix(nyan); ok {
		t.Error("StripPrefix accepted a non-prefix")
	}

	if _, ok := (Text{}).StripPrefix(nyan); ok {
		t.Error("StripPrefix of empty text accepted non-empty prefix")
	}

	rest, ok = MustFromString("nyancat").StripPrefix(nyan)
	if !ok || rest.String() != "cat" {
		t.Errorf("StripPrefix = (%q, %v)", rest.String(), ok)
	}

	rest, ok = MustFromString("catnyan").StripSuffix(nyan)
	if !ok || rest.String() != "cat" {
		t.Errorf("StripSuffix = (%q, %v)", rest.String(), ok)
	}
	if _, ok := (Text{}).StripSuffix(nyan); ok {
		t.Error("StripSuffix of empty text accepted non-empty suffix")
	}

	// Empty prefix strips from anything, including the empty text.
	rest, ok = (Text{}).StripPrefix(Text{})
	if !ok || !rest.IsEmpty() {
		t.Error("StripPrefix(empty, empty) should succeed")
	}

	if !nyan.HasPrefix(MustFromString("ny")) || nyan.HasSuffix(MustFromString("ny")) {
		t.Error("HasPrefix/HasSuffix misjudge")
	}
}

// TestIntersperseIntercalate covers the joining operations.
func TestIntersperseIntercalate(t *testing.T) {
	dash := MustChar('-')
	if got := MustFromString("cat").Intersperse(dash).String(); got != "c-a-t" {
		t.Errorf("Intersperse = %q, want %q", got, "c-a-t")
	}
	if got := MustFromString("x").Intersperse(dash).String(); got != "x" {
		t.Errorf("Intersperse single = %q, want %q", got, "x")
	}
	if !(Text{}).Intersperse(dash).IsEmpty() {
		t.Error("Intersperse of empty not empty")
	}

	sep := MustFromString(", ")
	parts := []Text{MustFromString("a"), MustFromString("b"), MustFromString("c")}
	if got := Intercalate(sep, parts).String(); got != "a, b, c" {
		t.Errorf("Intercalate = %q, want %q", got, "a, b, c")
	}
	if !Intercalate(sep, nil).IsEmpty() {
		t.Error("Intercalate of no texts not empty")
	}
}

// TestLinesWords tests line and word splitting conventions.
func TestLinesWords(t *testing.T) {
	lineTests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\n", []string{""}},
		{"a\nb", []string{"a", "b"}},
		{"a\nb\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range lineTests {
		got := MustFromString(tt.in).Lines()
		if len(got) != len(tt.want) {
			t.Errorf("Lines(%q) = %d lines, want %d", tt.in, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i].String() != tt.want[i] {
				t.Errorf("Lines(%q)[%d] = %q, want %q", tt.in, i, got[i].String(), tt.want[i])
			}
		}
	}

	if got := Unlines([]Text{MustFromString("a"), MustFromString("b")}).String(); got != "a\nb\n" {
		t.Errorf("Unlines = %q, want %q", got, "a\nb\n")
	}

	words := MustFromString("  the\tquick  fox ").Words()
	wantWords := []string{"the", "quick", "fox"}
	if len(words) != len(wantWords) {
		t.Fatalf("Words = %d words, want %d", len(words), len(wantWords))
	}
	for i := range words {
		if words[i].String() != wantWords[i] {
			t.Errorf("word %d = %q, want %q", i, words[i].String(), wantWords[i])
		}
	}

	if got := Unwords(words).String(); got != "the quick fox" {
		t.Errorf("Unwords = %q, want %q", got, "the quick fox")
	}
}
