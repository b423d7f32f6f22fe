package transcript

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"tvscript/internal/logging"
	"tvscript/internal/textutil"
)

// Season is an ordered grouping of episodes. Order is 1-based within the
// show; Name defaults to the order rendered as a string when the site
// gives seasons no names.
type Season struct {
	Order int
	Name  string

	episodes []*Episode
	show     *Show // non-owning back-reference
}

// Show returns the owning show.
func (s *Season) Show() *Show {
	return s.show
}

// Episodes returns the season's episodes in number order.
func (s *Season) Episodes() []*Episode {
	out := make([]*Episode, len(s.episodes))
	copy(out, s.episodes)
	return out
}

// Episode returns the first episode with the given name, or nil.
func (s *Season) Episode(name string) *Episode {
	for _, e := range s.episodes {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Lines returns the concatenation of every episode's lines, in episode
// order.
func (s *Season) Lines() LineSet {
	sets := make([]LineSet, 0, len(s.episodes))
	for _, e := range s.episodes {
		sets = append(sets, e.lines)
	}
	return NewLineSet(sets...)
}

// StorageDir returns the directory this season persists into.
func (s *Season) StorageDir() string {
	return filepath.Join(s.show.storageDir, textutil.SanitizeFileName(s.Name))
}

// Load scrapes one episode per URL. Episode slots and default numbers are
// assigned by URL position before any fetching starts, so ordering is
// deterministic regardless of fetch completion order; afterwards episodes
// are sorted ascending by number, preserving relative order on ties.
func (s *Season) Load(ctx context.Context, urls []string) error {
	workers := s.show.workers
	if workers < 1 {
		workers = 1
	}

	loaded := make([]*Episode, len(urls))
	errs := make([]error, len(urls))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			episode := &Episode{Number: i + 1, season: s}
			if err := episode.Load(ctx, url); err != nil {
				errs[i] = fmt.Errorf("season %q: %w", s.Name, err)
				return
			}
			loaded[i] = episode
		}(i, url)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	s.episodes = append(s.episodes, loaded...)
	s.sortEpisodes()

	s.show.logger.Debug("season loaded",
		logging.String(logging.FieldSeason, s.Name),
		logging.Int("episode_count", len(s.episodes)))

	return nil
}

// Hydrate rebuilds the season from every episode file in its storage
// directory. Directory enumeration order is not meaningful; entries are
// read in name order and episodes re-sorted by number afterwards.
func (s *Season) Hydrate() error {
	dir := s.StorageDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("season %q: read storage directory: %w", s.Name, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		doc, err := readEpisodeDocument(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("season %q: %w", s.Name, err)
		}
		episode := &Episode{season: s}
		episode.hydrate(doc)
		s.episodes = append(s.episodes, episode)
	}

	s.sortEpisodes()
	return nil
}

// Serialize ensures the season directory exists and persists every
// episode.
func (s *Season) Serialize() error {
	dir := s.StorageDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create season directory %q: %w", dir, err)
	}
	for _, episode := range s.episodes {
		if err := episode.Serialize(dir); err != nil {
			return fmt.Errorf("season %q: %w", s.Name, err)
		}
	}
	return nil
}

func (s *Season) sortEpisodes() {
	sort.SliceStable(s.episodes, func(i, j int) bool {
		return s.episodes[i].Number < s.episodes[j].Number
	})
}
