// Package transcript models television transcripts as a Show → Season →
// Episode → Line hierarchy with ordered, queryable line collections.
//
// Per-site behavior is injected, not subclassed: a Show is constructed with
// a ShowParser (index page → seasons and episode URLs), an EpisodeParser
// (episode page → name and raw line specs), and a LineParser (raw dialogue
// → speakers and text). Pages arrive through a PageSource, normally the
// pagecache, so repeated runs during parser development do not refetch.
//
// Ownership flows strictly downward: a Show owns its Seasons, a Season its
// Episodes, an Episode its Lines. Upward references are non-owning
// navigation links and never serialized.
//
// A loaded show persists as <dir>/seasons.json (ordered season names) plus
// one JSON file per episode under a directory per season; Hydrate rebuilds
// the hierarchy from those files without touching the network.
package transcript
