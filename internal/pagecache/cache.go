package pagecache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"tvscript/internal/logging"
)

// Cache maps URLs to previously fetched page content stored one file per
// URL under dir. Entries younger than ttl are served without contacting
// the network.
type Cache struct {
	dir     string
	ttl     time.Duration
	fetcher Fetcher
	logger  *slog.Logger

	mu   sync.Mutex
	keys map[string]*sync.Mutex // per-key fetch serialization
}

// New creates a cache rooted at dir with the given freshness window. The
// fetcher is consulted on miss or staleness. A nil logger disables logging.
func New(dir string, ttl time.Duration, fetcher Fetcher, logger *slog.Logger) *Cache {
	return &Cache{
		dir:     dir,
		ttl:     ttl,
		fetcher: fetcher,
		logger:  logging.NewComponentLogger(logger, "pagecache"),
		keys:    make(map[string]*sync.Mutex),
	}
}

// Path returns the cache file path for a URL.
func (c *Cache) Path(url string) string {
	return filepath.Join(c.dir, key(url))
}

// Get returns the page content for url, serving from the cache when a
// fresh entry exists and fetching (then best-effort persisting) otherwise.
// Fetch failures propagate wrapped with ErrFetch.
func (c *Cache) Get(ctx context.Context, url string) (string, error) {
	k := key(url)
	path := filepath.Join(c.dir, k)

	unlockKey := c.lockKey(k)
	defer unlockKey()

	if content, ok := c.readFresh(path); ok {
		c.logger.Debug("cache hit",
			logging.String(logging.FieldURL, url),
			logging.String(logging.FieldCacheKey, k))
		return content, nil
	}

	// Hold a cross-process lock over fetch+persist so parallel runs do not
	// fetch the same URL twice. Lock failures degrade to an unlocked fetch.
	unlockFile := c.lockFile(path + ".lock")
	defer unlockFile()

	// Another process may have filled the entry while we waited.
	if content, ok := c.readFresh(path); ok {
		c.logger.Debug("cache hit after lock wait",
			logging.String(logging.FieldURL, url),
			logging.String(logging.FieldCacheKey, k))
		return content, nil
	}

	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	c.logger.Debug("cache miss",
		logging.String(logging.FieldURL, url),
		logging.String(logging.FieldCacheKey, k),
		logging.Int("bytes", len(body)))

	if err := c.persist(path, body); err != nil {
		// Caching is an optimization; the fetched content is still good.
		c.logger.Warn("failed to persist cache entry",
			logging.String(logging.FieldEventType, "pagecache_persist_failed"),
			logging.String(logging.FieldURL, url),
			logging.Error(err),
			logging.String(logging.FieldImpact, "next run will refetch this page"))
	}

	return string(body), nil
}

// Invalidate removes the entry for url. Removing an absent entry is a
// no-op.
func (c *Cache) Invalidate(url string) error {
	err := os.Remove(c.Path(url))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove cache entry: %w", err)
	}
	return nil
}

// Clear removes every cache entry.
func (c *Cache) Clear() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read cache directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return fmt.Errorf("remove cache entry %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// Count returns the number of cached pages.
func (c *Cache) Count() int {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0
	}
	n := 0
	for _, entry := range entries {
		if !entry.IsDir() && !strings.HasSuffix(entry.Name(), ".lock") {
			n++
		}
	}
	return n
}

func (c *Cache) readFresh(path string) (string, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if time.Since(info.ModTime()) >= c.ttl {
		return "", false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(data), true
}

func (c *Cache) persist(path string, body []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, body, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (c *Cache) lockKey(k string) func() {
	c.mu.Lock()
	m, ok := c.keys[k]
	if !ok {
		m = &sync.Mutex{}
		c.keys[k] = m
	}
	c.mu.Unlock()

	m.Lock()
	return m.Unlock
}

func (c *Cache) lockFile(path string) func() {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return func() {}
	}
	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		c.logger.Debug("cache lock unavailable, fetching unlocked",
			logging.String(logging.FieldPath, path),
			logging.Error(err))
		return func() {}
	}
	return func() {
		_ = lock.Unlock()
	}
}

func key(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:])
}
