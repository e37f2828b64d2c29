package ascii

import "github.com/coregx/ahocorasick"

// Searcher performs simultaneous multi-needle search over Text using an
// Aho-Corasick automaton. Build once with NewSearcher, then reuse across
// haystacks; a single O(n) pass finds the leftmost occurrence of any
// needle regardless of how many needles were added.
//
// A Searcher is immutable after construction and safe for concurrent use.
//
// Example:
//
//	s, err := ascii.NewSearcher(
//	    ascii.MustFromString("cat"),
//	    ascii.MustFromString("nyan"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	loc := s.FindIndex(ascii.MustFromString("a nyan appears"))
//	// loc = [2, 6]
type Searcher struct {
	auto    *ahocorasick.Automaton
	needles []Text
}

// NewSearcher builds a Searcher over the given needles. Fails with
// ErrNoNeedles when called without needles and ErrEmptyNeedle when any
// needle is empty (an empty needle would match everywhere).
func NewSearcher(needles ...Text) (*Searcher, error) {
	if len(needles) == 0 {
		return nil, ErrNoNeedles
	}

	builder := ahocorasick.NewBuilder()
	for _, n := range needles {
		if n.IsEmpty() {
			return nil, ErrEmptyNeedle
		}
		builder.AddPattern(n.Bytes())
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}

	return &Searcher{
		auto:    auto,
		needles: needles,
	}, nil
}

// Needles returns the needles the Searcher was built from. The slice is
// shared and must not be modified.
func (s *Searcher) Needles() []Text {
	return s.needles
}

// Match reports whether any needle occurs in t. Zero allocations.
func (s *Searcher) Match(t Text) bool {
	return s.auto.IsMatch(t.Bytes())
}

// FindIndex returns a two-element slice with the location of the leftmost
// occurrence of any needle in t, or nil if none occurs. The occurrence is
// at t.Drop(loc[0]).Take(loc[1]-loc[0]).
func (s *Searcher) FindIndex(t Text) []int {
	m := s.auto.Find(t.Bytes(), 0)
	if m == nil {
		return nil
	}
	return []int{m.Start, m.End}
}

// FindAllIndex returns the locations of all successive non-overlapping
// needle occurrences in t, leftmost first. If n > 0, at most n locations
// are returned; n <= 0 means all.
func (s *Searcher) FindAllIndex(t Text, n int) [][]int {
	if n == 0 {
		return nil
	}

	var indices [][]int
	at := 0
	for at < t.Len() {
		m := s.auto.Find(t.Bytes(), at)
		if m == nil {
			break
		}
		indices = append(indices, []int{m.Start, m.End})

		if m.End > at {
			at = m.End
		} else {
			at++
		}

		if n > 0 && len(indices) >= n {
			break
		}
	}
	return indices
}
