package transcript

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"strconv"

	"tvscript/internal/htmlutil"
	"tvscript/internal/logging"
	"tvscript/internal/textutil"
)

// Episode is a single installment of a show. Name and Number come from the
// site parser or persisted data; Extra holds site-specific attributes the
// parser attached. Lines are owned by the episode and ordered.
type Episode struct {
	Name   string
	Number int
	Extra  map[string]any

	lines  LineSet
	season *Season // non-owning back-references
	show   *Show
}

// Season returns the owning season, or nil for detached episodes.
func (e *Episode) Season() *Season {
	return e.season
}

// Show returns the owning show, derived from the season when not set
// directly.
func (e *Episode) Show() *Show {
	if e.show != nil {
		return e.show
	}
	if e.season != nil {
		return e.season.show
	}
	return nil
}

// Lines returns the episode's ordered line set.
func (e *Episode) Lines() LineSet {
	return e.lines
}

// Load scrapes and parses the episode transcript at url: the page is
// retrieved through the show's page source, handed to the injected
// EpisodeParser, and the resulting line specs are appended in order.
func (e *Episode) Load(ctx context.Context, url string) error {
	show := e.Show()
	if show == nil || show.parsers.Episode == nil {
		return fmt.Errorf("%w: episode parser required to load %q", ErrParserMissing, url)
	}
	if show.pages == nil {
		return fmt.Errorf("page source required to load %q", url)
	}

	content, err := show.pages.Get(ctx, url)
	if err != nil {
		return err
	}

	doc, err := htmlutil.Parse(content)
	if err != nil {
		return fmt.Errorf("parse page %q: %w", url, err)
	}

	result, err := show.parsers.Episode.ParseEpisode(doc, url)
	if err != nil {
		return fmt.Errorf("parse episode %q: %w", url, err)
	}

	e.Name = result.Name
	if result.Number > 0 {
		e.Number = result.Number
	}
	if len(result.Extra) > 0 {
		e.Extra = maps.Clone(result.Extra)
	}

	for _, spec := range result.Lines {
		if _, err := e.AddLine(spec); err != nil {
			return fmt.Errorf("episode %q: %w", e.Name, err)
		}
	}

	show.logger.Debug("episode loaded",
		logging.String(logging.FieldEpisode, e.Name),
		logging.String(logging.FieldURL, url),
		logging.Int(logging.FieldLineCount, e.lines.Len()))

	return nil
}

// AddLine constructs a Line from spec and appends it. Number defaults to
// the next 1-based position. An explicit Speakers list bypasses speaker
// extraction; otherwise the raw speaker and text run through the show's
// LineParser.
func (e *Episode) AddLine(spec LineSpec) (*Line, error) {
	number := spec.Number
	if number <= 0 {
		number = e.lines.Len() + 1
	}
	lc := LineContext{Episode: e, Number: number}

	parser := e.lineParser()

	speakers := spec.Speakers
	if len(speakers) == 0 {
		if parser == nil {
			return nil, fmt.Errorf("%w: line parser required to extract speaker from %q", ErrParserMissing, spec.Speaker)
		}
		extracted, err := parser.ExtractSpeakers(spec.Speaker, lc)
		if err != nil {
			return nil, fmt.Errorf("extract speakers for line %d: %w", number, err)
		}
		speakers = extracted
	}

	text := spec.Text
	if parser != nil {
		extracted, err := parser.ExtractText(spec.Text, lc)
		if err != nil {
			return nil, fmt.Errorf("extract text for line %d: %w", number, err)
		}
		text = extracted
	}

	line := &Line{
		Speakers: normalizeSpeakers(speakers),
		Text:     text,
		Number:   number,
		episode:  e,
	}
	e.lines.append(line)
	return line, nil
}

// Serialize writes the episode as a JSON file under dir, named
// "<number> - <sanitized name>.json".
func (e *Episode) Serialize(dir string) error {
	return writeJSON(filepath.Join(dir, e.FileName()), e.document())
}

// FileName returns the persisted file name for this episode, with
// path-unsafe characters stripped from the name.
func (e *Episode) FileName() string {
	return strconv.Itoa(e.Number) + " - " + textutil.SanitizeFileName(e.Name) + ".json"
}

func (e *Episode) document() episodeDocument {
	doc := episodeDocument{
		Name:   e.Name,
		Number: e.Number,
		Lines:  make([]lineDocument, 0, e.lines.Len()),
		Extra:  e.Extra,
	}
	for _, l := range e.lines.lines {
		doc.Lines = append(doc.Lines, lineDocument{
			Speaker: l.Speakers,
			Text:    l.Text,
			Number:  l.Number,
		})
	}
	return doc
}

// hydrate rebuilds the episode from its persisted document. Lines are
// restored verbatim; no parser is involved.
func (e *Episode) hydrate(doc episodeDocument) {
	e.Name = doc.Name
	e.Number = doc.Number
	if len(doc.Extra) > 0 {
		e.Extra = doc.Extra
	}
	e.lines = LineSet{}
	for i, ld := range doc.Lines {
		number := ld.Number
		if number <= 0 {
			number = i + 1
		}
		e.lines.append(&Line{
			Speakers: normalizeSpeakers(ld.Speaker),
			Text:     ld.Text,
			Number:   number,
			episode:  e,
		})
	}
}

func (e *Episode) lineParser() LineParser {
	if show := e.Show(); show != nil {
		return show.parsers.Line
	}
	return nil
}
