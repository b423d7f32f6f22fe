package transcript

import (
	"slices"
	"strings"

	"tvscript/internal/textutil"
)

// Line is a single attributed utterance. Speakers has set semantics and is
// kept sorted and deduplicated; Number is 1-based within the owning
// episode. Lines are immutable after construction.
type Line struct {
	Speakers []string
	Text     string
	Number   int

	episode *Episode // non-owning back-reference, never serialized
}

// Episode returns the episode this line belongs to, or nil for detached
// lines.
func (l *Line) Episode() *Episode {
	return l.episode
}

// WordCount counts the words in this line using the naive
// separator-counting metric.
func (l *Line) WordCount() int {
	return textutil.WordCount(l.Text)
}

// SpokenBy reports whether any of the given speakers is in this line's
// speaker set.
func (l *Line) SpokenBy(speakers ...string) bool {
	for _, s := range speakers {
		if slices.Contains(l.Speakers, s) {
			return true
		}
	}
	return false
}

func (l *Line) String() string {
	return strings.Join(l.Speakers, ", ") + ": " + l.Text
}

// normalizeSpeakers sorts and deduplicates a speaker list, dropping empty
// names.
func normalizeSpeakers(speakers []string) []string {
	out := make([]string, 0, len(speakers))
	for _, s := range speakers {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
