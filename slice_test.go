package ascii

import "testing"

// TestTakeDrop tests the clamping policy: negative and over-long counts
// never error.
func TestTakeDrop(t *testing.T) {
	text := MustFromString("catboy")

	tests := []struct {
		name     string
		n        int
		wantTake string
		wantDrop string
	}{
		{"zero", 0, "", "catboy"},
		{"inside", 3, "cat", "boy"},
		{"exact", 6, "catboy", ""},
		{"negative", -100, "", "catboy"},
		{"over-long", 1000, "catboy", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := text.Take(tt.n).String(); got != tt.wantTake {
				t.Errorf("Take(%d) = %q, want %q", tt.n, got, tt.wantTake)
			}
			if got := text.Drop(tt.n).String(); got != tt.wantDrop {
				t.Errorf("Drop(%d) = %q, want %q", tt.n, got, tt.wantDrop)
			}
		})
	}
}

// TestSplitAtConsistency checks SplitAt == (Take, Drop) and that the halves
// reassemble to the original, for every n including out-of-range ones.
func TestSplitAtConsistency(t *testing.T) {
	texts := []Text{{}, MustFromString("x"), MustFromString("catboy")}
	for _, text := range texts {
		for n := -2; n <= text.Len()+2; n++ {
			left, right := text.SplitAt(n)
			if !left.Equal(text.Take(n)) || !right.Equal(text.Drop(n)) {
				t.Errorf("SplitAt(%d, %q) != (Take, Drop)", n, text.String())
			}
			if !Concat(left, right).Equal(text) {
				t.Errorf("Concat(SplitAt(%d, %q)) != original", n, text.String())
			}
		}
	}
}

// TestTakeWhileSpanBreak covers the predicate-driven prefix family.
func TestTakeWhileSpanBreak(t *testing.T) {
	text := MustFromString("123abc456")
	digit := Char.IsDigit

	if got := text.TakeWhile(digit).String(); got != "123" {
		t.Errorf("TakeWhile = %q, want %q", got, "123")
	}
	if got := text.DropWhile(digit).String(); got != "abc456" {
		t.Errorf("DropWhile = %q, want %q", got, "abc456")
	}

	pre, rest := text.Span(digit)
	if pre.String() != "123" || rest.String() != "abc456" {
		t.Errorf("Span = (%q, %q)", pre.String(), rest.String())
	}

	pre, rest = text.Break(Char.IsLetter)
	if pre.String() != "123" || rest.String() != "abc456" {
		t.Errorf("Break = (%q, %q)", pre.String(), rest.String())
	}

	// Break with a never-satisfied predicate keeps everything on the left.
	pre, rest = text.Break(func(Char) bool { return false })
	if pre.String() != "123abc456" || rest.Len() != 0 {
		t.Errorf("Break(false) = (%q, %q)", pre.String(), rest.String())
	}
}

// TestFilterPartition covers narrowing transforms and Filter idempotence.
func TestFilterPartition(t *testing.T) {
	text := MustFromString("a1b2c3")

	once := text.Filter(Char.IsDigit)
	if once.String() != "123" {
		t.Errorf("Filter = %q, want %q", once.String(), "123")
	}
	if !once.Filter(Char.IsDigit).Equal(once) {
		t.Error("Filter not idempotent")
	}

	yes, no := text.Partition(Char.IsDigit)
	if yes.String() != "123" || no.String() != "abc" {
		t.Errorf("Partition = (%q, %q)", yes.String(), no.String())
	}
}

// TestReverse checks the involution law and the trivial cases.
func TestReverse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"x", "x"},
		{"cat", "tac"},
		{"abba", "abba"},
	}
	for _, tt := range tests {
		text := MustFromString(tt.in)
		if got := text.Reverse().String(); got != tt.want {
			t.Errorf("Reverse(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if !text.Reverse().Reverse().Equal(text) {
			t.Errorf("Reverse(Reverse(%q)) != original", tt.in)
		}
	}
}

// TestUnconsUnsnoc covers the O(1) end accessors and their absence signals.
func TestUnconsUnsnoc(t *testing.T) {
	text := MustFromString("cat")

	head, rest, ok := text.Uncons()
	if !ok || head != MustChar('c') || rest.String() != "at" {
		t.Errorf("Uncons = (%v, %q, %v)", head, rest.String(), ok)
	}

	body, last, ok := text.Unsnoc()
	if !ok || last != MustChar('t') || body.String() != "ca" {
		t.Errorf("Unsnoc = (%q, %v, %v)", body.String(), last, ok)
	}

	if _, _, ok := (Text{}).Uncons(); ok {
		t.Error("Uncons of empty reported present")
	}
	if _, _, ok := (Text{}).Unsnoc(); ok {
		t.Error("Unsnoc of empty reported present")
	}

	if _, ok := (Text{}).Head(); ok {
		t.Error("Head of empty reported present")
	}
	if c, ok := text.Last(); !ok || c != MustChar('t') {
		t.Error("Last misreports")
	}
}

// TestConsSnocAppend covers the construction operations.
func TestConsSnocAppend(t *testing.T) {
	text := MustFromString("at")

	if got := text.Cons(MustChar('c')).String(); got != "cat" {
		t.Errorf("Cons = %q, want %q", got, "cat")
	}
	if got := text.Snoc(MustChar('e')).String(); got != "ate" {
		t.Errorf("Snoc = %q, want %q", got, "ate")
	}
	if got := MustFromString("cat").Append(MustFromString("boy")).String(); got != "catboy" {
		t.Errorf("Append = %q, want %q", got, "catboy")
	}
	if got := Concat(MustFromString("a"), Text{}, MustFromString("bc")).String(); got != "abc" {
		t.Errorf("Concat = %q, want %q", got, "abc")
	}
	if !Concat().IsEmpty() {
		t.Error("Concat() not empty")
	}
}

// TestAt verifies indexing matches byte positions exactly.
func TestAt(t *testing.T) {
	text := MustFromString("cat")
	for i, want := range []byte("cat") {
		if got := text.At(i).Byte(); got != want {
			t.Errorf("At(%d) = %q, want %q", i, got, want)
		}
	}
	if text.Len() != 3 {
		t.Errorf("Len = %d, want 3", text.Len())
	}
}
