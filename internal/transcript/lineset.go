package transcript

import (
	"iter"
	"slices"
)

// LineSet is an ordered view over lines. Derived sets produced by Filter,
// Map, and By share Line values with their source; the set itself never
// mutates lines.
type LineSet struct {
	lines []*Line
}

// NewLineSet concatenates the given sets into a new one, preserving each
// source's order.
func NewLineSet(sets ...LineSet) LineSet {
	var out LineSet
	for _, s := range sets {
		out.lines = append(out.lines, s.lines...)
	}
	return out
}

// Len returns the number of lines in the set.
func (s LineSet) Len() int {
	return len(s.lines)
}

// At returns the i-th line in source order.
func (s LineSet) At(i int) *Line {
	return s.lines[i]
}

// Slice returns the half-open range [i, j) as a new set.
func (s LineSet) Slice(i, j int) LineSet {
	return LineSet{lines: slices.Clone(s.lines[i:j])}
}

// Lines returns the lines in source order. The returned slice is a copy;
// the set's own ordering cannot be disturbed through it.
func (s LineSet) Lines() []*Line {
	return slices.Clone(s.lines)
}

// All returns an iterator over the lines in source order.
func (s LineSet) All() iter.Seq[*Line] {
	return func(yield func(*Line) bool) {
		for _, l := range s.lines {
			if !yield(l) {
				return
			}
		}
	}
}

// Concat returns a new set holding s's lines followed by other's.
func (s LineSet) Concat(other LineSet) LineSet {
	return NewLineSet(s, other)
}

// Contains reports whether the exact line value is in the set.
func (s LineSet) Contains(l *Line) bool {
	return slices.Contains(s.lines, l)
}

// Speakers returns the sorted union of every line's speaker set.
func (s LineSet) Speakers() []string {
	var all []string
	for _, l := range s.lines {
		all = append(all, l.Speakers...)
	}
	return normalizeSpeakers(all)
}

// Filter returns a new set containing the lines for which pred holds,
// preserving order.
func (s LineSet) Filter(pred func(*Line) bool) LineSet {
	var out LineSet
	for _, l := range s.lines {
		if pred(l) {
			out.lines = append(out.lines, l)
		}
	}
	return out
}

// Map returns a new set with every line passed through fn, preserving
// order.
func (s LineSet) Map(fn func(*Line) *Line) LineSet {
	out := LineSet{lines: make([]*Line, 0, len(s.lines))}
	for _, l := range s.lines {
		out.lines = append(out.lines, fn(l))
	}
	return out
}

// By returns the lines spoken by any of the given speakers, preserving
// order.
func (s LineSet) By(speakers ...string) LineSet {
	return s.Filter(func(l *Line) bool {
		return l.SpokenBy(speakers...)
	})
}

// WordCount sums the word counts of every line in the set.
func (s LineSet) WordCount() int {
	total := 0
	for _, l := range s.lines {
		total += l.WordCount()
	}
	return total
}

func (s *LineSet) append(l *Line) {
	s.lines = append(s.lines, l)
}
