package transcript

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"tvscript/internal/htmlutil"
	"tvscript/internal/logging"
)

const manifestName = "seasons.json"

// Options configures a Show. Pages and the parsers are only required for
// Load; hydrating persisted data works without them.
type Options struct {
	// Pages supplies raw page content, normally a pagecache.Cache.
	Pages PageSource
	// StorageDir is the root directory transcripts persist into.
	StorageDir string
	// Parsers are the injected per-site hooks.
	Parsers Parsers
	// Logger receives structured progress records; nil disables logging.
	Logger *slog.Logger
	// FetchWorkers bounds concurrent episode fetches per season. Values
	// below 1 mean sequential.
	FetchWorkers int
}

// Show is the top-level entity: an ordered collection of seasons plus the
// wiring (page source, site parsers, storage root) every descendant uses.
type Show struct {
	seasons []*Season

	pages      PageSource
	storageDir string
	parsers    Parsers
	logger     *slog.Logger
	workers    int
}

// NewShow constructs an empty show from options.
func NewShow(opts Options) *Show {
	return &Show{
		pages:      opts.Pages,
		storageDir: opts.StorageDir,
		parsers:    opts.Parsers,
		logger:     logging.NewComponentLogger(opts.Logger, "transcript"),
		workers:    opts.FetchWorkers,
	}
}

// Seasons returns the seasons in order.
func (sh *Show) Seasons() []*Season {
	out := make([]*Season, len(sh.seasons))
	copy(out, sh.seasons)
	return out
}

// SeasonCount returns the number of seasons.
func (sh *Show) SeasonCount() int {
	return len(sh.seasons)
}

// Season returns the first season with the given name, or nil.
func (sh *Show) Season(name string) *Season {
	for _, s := range sh.seasons {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Episodes returns every episode of every season, in season then episode
// order.
func (sh *Show) Episodes() []*Episode {
	var out []*Episode
	for _, s := range sh.seasons {
		out = append(out, s.episodes...)
	}
	return out
}

// Episode returns the first episode with the given name across all
// seasons, or nil.
func (sh *Show) Episode(name string) *Episode {
	for _, s := range sh.seasons {
		if e := s.Episode(name); e != nil {
			return e
		}
	}
	return nil
}

// Lines returns the concatenation of every season's lines, in order.
func (sh *Show) Lines() LineSet {
	sets := make([]LineSet, 0, len(sh.seasons))
	for _, s := range sh.seasons {
		sets = append(sets, s.Lines())
	}
	return NewLineSet(sets...)
}

// AddSeason appends a season. Order zero assigns the next 1-based
// position; an empty name defaults to the order.
func (sh *Show) AddSeason(order int, name string) *Season {
	if order <= 0 {
		order = len(sh.seasons) + 1
	}
	if name == "" {
		name = strconv.Itoa(order)
	}
	season := &Season{Order: order, Name: name, show: sh}
	sh.seasons = append(sh.seasons, season)
	return season
}

// Load scrapes the transcript index page at url and then every episode of
// every season it lists, in order.
func (sh *Show) Load(ctx context.Context, url string) error {
	if sh.pages == nil {
		return fmt.Errorf("%w: page source required to load %q", ErrParserMissing, url)
	}
	if sh.parsers.Show == nil {
		return fmt.Errorf("%w: show parser required to load %q", ErrParserMissing, url)
	}

	loadID := uuid.NewString()
	logger := sh.logger.With(logging.String(logging.FieldLoadID, loadID))
	logger.Info("loading show", logging.String(logging.FieldURL, url))

	content, err := sh.pages.Get(ctx, url)
	if err != nil {
		return err
	}

	doc, err := htmlutil.Parse(content)
	if err != nil {
		return fmt.Errorf("parse index page %q: %w", url, err)
	}

	specs, err := sh.parsers.Show.ParseIndex(doc, url)
	if err != nil {
		return fmt.Errorf("parse index %q: %w", url, err)
	}

	for _, spec := range specs {
		season := sh.AddSeason(0, spec.Name)
		if err := season.Load(ctx, spec.EpisodeURLs); err != nil {
			return err
		}
	}

	logger.Info("show loaded",
		logging.Int("season_count", len(sh.seasons)),
		logging.Int(logging.FieldLineCount, sh.Lines().Len()))

	return nil
}

// Hydrate rebuilds the show from previously persisted data under the
// storage directory.
func (sh *Show) Hydrate() error {
	names, err := readSeasonManifest(sh.manifestPath())
	if err != nil {
		return err
	}
	for _, name := range names {
		season := sh.AddSeason(0, name)
		if err := season.Hydrate(); err != nil {
			return err
		}
	}
	return nil
}

// Serialize persists the show: the season manifest plus one directory per
// season.
func (sh *Show) Serialize() error {
	names := make([]string, 0, len(sh.seasons))
	for _, s := range sh.seasons {
		names = append(names, s.Name)
	}
	if err := writeJSON(sh.manifestPath(), names); err != nil {
		return fmt.Errorf("write season manifest: %w", err)
	}
	for _, s := range sh.seasons {
		if err := s.Serialize(); err != nil {
			return err
		}
	}
	return nil
}

// StorageDir returns the root directory transcripts persist into.
func (sh *Show) StorageDir() string {
	return sh.storageDir
}

func (sh *Show) manifestPath() string {
	return filepath.Join(sh.storageDir, manifestName)
}
