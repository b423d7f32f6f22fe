package transcript_test

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/net/html"

	"tvscript/internal/htmlutil"
	"tvscript/internal/transcript"
)

// stubPages is an in-memory PageSource recording which URLs were requested.
type stubPages struct {
	mu    sync.Mutex
	pages map[string]string
	calls []string
	delay map[string]time.Duration
}

func (p *stubPages) Get(ctx context.Context, url string) (string, error) {
	p.mu.Lock()
	p.calls = append(p.calls, url)
	content, ok := p.pages[url]
	delay := p.delay[url]
	p.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if !ok {
		return "", fmt.Errorf("no page for %q", url)
	}
	return content, nil
}

// wikiParser implements the site hooks for the fictional transcript wiki
// used throughout these tests.
//
// Index pages list one table per season:
//
//	<table class="season" data-name="Season 1">
//	  <tr><td><a href="/ep/pilot">Pilot</a></td></tr>
//	</table>
//
// Episode pages carry the title in <h1> (optionally with a data-number
// attribute) and one div per line:
//
//	<div class="line" data-speaker="Alice and Bob">  Hi there </div>
type wikiParser struct{}

func (wikiParser) ParseIndex(doc *html.Node, url string) ([]transcript.SeasonSpec, error) {
	var specs []transcript.SeasonSpec
	for _, tbl := range htmlutil.FindAllWithAttr(doc, "table", "class", "season") {
		spec := transcript.SeasonSpec{Name: htmlutil.Attr(tbl, "data-name")}
		for _, a := range htmlutil.FindAll(tbl, "a") {
			spec.EpisodeURLs = append(spec.EpisodeURLs, htmlutil.Attr(a, "href"))
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func (wikiParser) ParseEpisode(doc *html.Node, url string) (transcript.EpisodeResult, error) {
	var result transcript.EpisodeResult

	headings := htmlutil.FindAll(doc, "h1")
	if len(headings) == 0 {
		return result, fmt.Errorf("episode page %q has no title", url)
	}
	result.Name = htmlutil.Text(headings[0])
	if raw := htmlutil.Attr(headings[0], "data-number"); raw != "" {
		number, err := strconv.Atoi(raw)
		if err != nil {
			return result, fmt.Errorf("episode page %q: bad number %q", url, raw)
		}
		result.Number = number
	}
	if airdate := htmlutil.Attr(headings[0], "data-airdate"); airdate != "" {
		result.Extra = map[string]any{"airdate": airdate}
	}

	for _, div := range htmlutil.FindAllWithAttr(doc, "div", "class", "line") {
		result.Lines = append(result.Lines, transcript.LineSpec{
			Speaker: htmlutil.Attr(div, "data-speaker"),
			Text:    htmlutil.Text(div),
		})
	}
	return result, nil
}

func (wikiParser) ExtractSpeakers(raw string, lc transcript.LineContext) ([]string, error) {
	return strings.Split(raw, " and "), nil
}

func (wikiParser) ExtractText(raw string, lc transcript.LineContext) (string, error) {
	return strings.TrimSpace(raw), nil
}

func newWikiShow(t *testing.T, pages *stubPages, storageDir string, workers int) *transcript.Show {
	t.Helper()
	parser := wikiParser{}
	return transcript.NewShow(transcript.Options{
		Pages:      pages,
		StorageDir: storageDir,
		Parsers: transcript.Parsers{
			Show:    parser,
			Episode: parser,
			Line:    parser,
		},
		FetchWorkers: workers,
	})
}

func indexPage(seasons ...string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, s := range seasons {
		b.WriteString(s)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func seasonTable(name string, urls ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<table class="season" data-name=%q>`, name)
	for _, u := range urls {
		fmt.Fprintf(&b, `<tr><td><a href=%q>ep</a></td></tr>`, u)
	}
	b.WriteString("</table>")
	return b.String()
}

func episodePage(title string, number int, lines ...[2]string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	if number > 0 {
		fmt.Fprintf(&b, `<h1 data-number="%d">%s</h1>`, number, title)
	} else {
		fmt.Fprintf(&b, "<h1>%s</h1>", title)
	}
	for _, line := range lines {
		fmt.Fprintf(&b, `<div class="line" data-speaker=%q>%s</div>`, line[0], line[1])
	}
	b.WriteString("</body></html>")
	return b.String()
}
