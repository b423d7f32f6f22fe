package textutil

import "strings"

// WordCount counts the words in a line of dialogue by counting space and
// newline separators plus one. The empty string counts as one word; callers
// that need true tokenization should not use this.
func WordCount(s string) int {
	return strings.Count(s, " ") + strings.Count(s, "\n") + 1
}
