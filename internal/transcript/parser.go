package transcript

import (
	"context"

	"golang.org/x/net/html"
)

// PageSource supplies raw page content for a URL. The pagecache satisfies
// this; tests substitute fakes.
type PageSource interface {
	Get(ctx context.Context, url string) (string, error)
}

// SeasonSpec is one entry of a parsed transcript index page: a season name
// and the episode transcript URLs it contains, in airing order.
type SeasonSpec struct {
	Name        string
	EpisodeURLs []string
}

// ShowParser turns a show's transcript index page into an ordered list of
// seasons. Implemented per target site.
type ShowParser interface {
	ParseIndex(doc *html.Node, url string) ([]SeasonSpec, error)
}

// LineSpec carries one line of dialogue out of an episode parser. Speaker
// and Text are raw site markup text handed to the LineParser; Speakers,
// when non-empty, is taken as the final speaker set and extraction is
// skipped. Number zero means "next in insertion order".
type LineSpec struct {
	Speaker  string
	Speakers []string
	Text     string
	Number   int
}

// EpisodeResult is what an EpisodeParser returns for one transcript page.
// Number zero keeps the episode's position-derived default. Extra holds
// site-specific attributes persisted alongside the known fields.
type EpisodeResult struct {
	Name   string
	Number int
	Lines  []LineSpec
	Extra  map[string]any
}

// EpisodeParser turns an episode transcript page into an EpisodeResult.
// Implemented per target site.
type EpisodeParser interface {
	ParseEpisode(doc *html.Node, url string) (EpisodeResult, error)
}

// LineContext gives a LineParser its position in the transcript while
// extracting.
type LineContext struct {
	Episode *Episode
	Number  int
}

// LineParser extracts the speaking characters and the spoken text from one
// raw line. Implemented per target site; a line may have several speakers.
type LineParser interface {
	ExtractSpeakers(raw string, lc LineContext) ([]string, error)
	ExtractText(raw string, lc LineContext) (string, error)
}

// Parsers bundles the three site hooks a Show needs to scrape. Hydrating
// previously persisted data needs none of them.
type Parsers struct {
	Show    ShowParser
	Episode EpisodeParser
	Line    LineParser
}
