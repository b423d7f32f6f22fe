// Package htmlutil provides small helpers over golang.org/x/net/html for
// site-specific transcript parsers.
//
// Parsers receive a parsed document tree and walk it with FindAll and
// Attr; Text collapses a node's descendant text the way scraped dialogue
// is usually extracted.
package htmlutil
