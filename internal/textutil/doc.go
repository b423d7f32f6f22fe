// Package textutil provides text processing utilities for transcript data.
//
// The primary use cases are:
//   - Sanitizing episode and season names for safe filesystem use
//   - The word-count metric used by transcript aggregates
//
// Word counting is deliberately naive: it counts whitespace separators
// rather than tokenizing, so results stay stable for punctuation-heavy
// dialogue and match the persisted transcript statistics exactly.
package textutil
