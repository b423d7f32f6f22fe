package transcript_test

import (
	"reflect"
	"testing"

	"tvscript/internal/transcript"
)

// addLines builds a detached episode with literal lines. The speaker field
// of each pair may name several speakers separated by "+".
func addLines(t *testing.T, pairs ...[2]string) *transcript.Episode {
	t.Helper()
	episode := &transcript.Episode{Name: "test", Number: 1}
	for _, pair := range pairs {
		speakers := []string{pair[0]}
		if pair[0] == "" {
			speakers = nil
		}
		spec := transcript.LineSpec{Speakers: speakers, Text: pair[1]}
		if _, err := episode.AddLine(spec); err != nil {
			t.Fatalf("AddLine(%v): %v", pair, err)
		}
	}
	return episode
}

func TestWordCountSumsOverLines(t *testing.T) {
	episode := addLines(t,
		[2]string{"Alice", "one two three"},
		[2]string{"Bob", "four"},
		[2]string{"Alice", "five\nsix"},
	)

	lines := episode.Lines()
	if got := lines.WordCount(); got != 6 {
		t.Errorf("WordCount = %d, want 6", got)
	}

	sum := 0
	for _, l := range lines.Lines() {
		sum += l.WordCount()
	}
	if sum != lines.WordCount() {
		t.Errorf("per-line sum %d != set word count %d", sum, lines.WordCount())
	}
}

func TestSpeakersUnionSorted(t *testing.T) {
	episode := &transcript.Episode{}
	for _, spec := range []transcript.LineSpec{
		{Speakers: []string{"Bob"}, Text: "a"},
		{Speakers: []string{"Alice", "Bob"}, Text: "b"},
		{Speakers: []string{"Carol"}, Text: "c"},
	} {
		if _, err := episode.AddLine(spec); err != nil {
			t.Fatalf("AddLine: %v", err)
		}
	}

	got := episode.Lines().Speakers()
	want := []string{"Alice", "Bob", "Carol"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Speakers = %v, want %v", got, want)
	}
}

func TestByFiltersOnIntersection(t *testing.T) {
	episode := &transcript.Episode{}
	specs := []transcript.LineSpec{
		{Speakers: []string{"Alice"}, Text: "first"},
		{Speakers: []string{"Bob"}, Text: "second"},
		{Speakers: []string{"Alice", "Bob"}, Text: "third"},
		{Speakers: []string{"Carol"}, Text: "fourth"},
	}
	for _, spec := range specs {
		if _, err := episode.AddLine(spec); err != nil {
			t.Fatalf("AddLine: %v", err)
		}
	}
	lines := episode.Lines()

	byAlice := lines.By("Alice")
	if byAlice.Len() != 2 {
		t.Fatalf("By(Alice).Len = %d, want 2", byAlice.Len())
	}
	if byAlice.At(0).Text != "first" || byAlice.At(1).Text != "third" {
		t.Errorf("By(Alice) order not preserved: %v, %v", byAlice.At(0), byAlice.At(1))
	}

	// Speakers of a By result must be a subset of lines involving the query.
	for _, s := range lines.By("Carol").Speakers() {
		if s != "Carol" {
			t.Errorf("By(Carol) yielded foreign speaker %q", s)
		}
	}

	// Multi-speaker query: union of either speaker's lines.
	either := lines.By("Bob", "Carol")
	if either.Len() != 3 {
		t.Errorf("By(Bob, Carol).Len = %d, want 3", either.Len())
	}
}

func TestFilterAndMapPreserveOrder(t *testing.T) {
	episode := addLines(t,
		[2]string{"Alice", "one"},
		[2]string{"Bob", "two"},
		[2]string{"Alice", "three"},
	)
	lines := episode.Lines()

	filtered := lines.Filter(func(l *transcript.Line) bool { return l.Text != "two" })
	if filtered.Len() != 2 || filtered.At(0).Text != "one" || filtered.At(1).Text != "three" {
		t.Errorf("Filter result wrong: len=%d", filtered.Len())
	}

	mapped := lines.Map(func(l *transcript.Line) *transcript.Line {
		return &transcript.Line{Speakers: l.Speakers, Text: "[" + l.Text + "]", Number: l.Number}
	})
	if mapped.Len() != 3 {
		t.Fatalf("Map len = %d, want 3", mapped.Len())
	}
	if mapped.At(1).Text != "[two]" {
		t.Errorf("mapped text = %q, want [two]", mapped.At(1).Text)
	}
	// Source set untouched.
	if lines.At(1).Text != "two" {
		t.Errorf("Map mutated source line: %q", lines.At(1).Text)
	}
}

func TestIndexSliceContains(t *testing.T) {
	episode := addLines(t,
		[2]string{"Alice", "a"},
		[2]string{"Bob", "b"},
		[2]string{"Carol", "c"},
	)
	lines := episode.Lines()

	if lines.Len() != 3 {
		t.Fatalf("Len = %d, want 3", lines.Len())
	}
	middle := lines.Slice(1, 3)
	if middle.Len() != 2 || middle.At(0).Text != "b" {
		t.Errorf("Slice(1,3) wrong: len=%d first=%q", middle.Len(), middle.At(0).Text)
	}
	if !lines.Contains(lines.At(2)) {
		t.Error("Contains failed for member line")
	}
	if lines.Contains(&transcript.Line{Text: "c"}) {
		t.Error("Contains matched a distinct line value")
	}
}

func TestConcatPreservesSourceOrder(t *testing.T) {
	first := addLines(t, [2]string{"Alice", "a"}, [2]string{"Bob", "b"}).Lines()
	second := addLines(t, [2]string{"Carol", "c"}).Lines()

	combined := transcript.NewLineSet(first, second)
	if combined.Len() != 3 {
		t.Fatalf("Len = %d, want 3", combined.Len())
	}
	got := []string{combined.At(0).Text, combined.At(1).Text, combined.At(2).Text}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("concat order = %v", got)
	}

	method := first.Concat(second)
	if method.Len() != 3 || method.At(2).Text != "c" {
		t.Errorf("Concat wrong: len=%d last=%q", method.Len(), method.At(2).Text)
	}
}

func TestAllIteratesInOrder(t *testing.T) {
	lines := addLines(t,
		[2]string{"Alice", "a"},
		[2]string{"Bob", "b"},
		[2]string{"Carol", "c"},
	).Lines()

	var got []string
	for l := range lines.All() {
		got = append(got, l.Text)
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("All order = %v", got)
	}
}

func TestEmptySet(t *testing.T) {
	var lines transcript.LineSet
	if lines.Len() != 0 {
		t.Errorf("empty Len = %d", lines.Len())
	}
	if lines.WordCount() != 0 {
		t.Errorf("empty WordCount = %d", lines.WordCount())
	}
	if got := lines.Speakers(); len(got) != 0 {
		t.Errorf("empty Speakers = %v", got)
	}
}
