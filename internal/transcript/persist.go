package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// lineDocument is the persisted form of a Line. Back-references are
// excluded; the speaker set serializes as a sorted array.
type lineDocument struct {
	Speaker []string `json:"speaker"`
	Text    string   `json:"text"`
	Number  int      `json:"number"`
}

// episodeDocument is the persisted form of an Episode. Site-specific
// attributes live under "extra" rather than flattened into the object.
type episodeDocument struct {
	Name   string         `json:"name"`
	Number int            `json:"number"`
	Lines  []lineDocument `json:"lines"`
	Extra  map[string]any `json:"extra,omitempty"`
}

// writeJSON marshals v and writes it atomically via temp file + rename.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath) // cleanup on failure
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func readEpisodeDocument(path string) (episodeDocument, error) {
	var doc episodeDocument
	data, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("read episode file: %w", err)
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("%w: %s: %w", ErrMalformed, filepath.Base(path), err)
	}
	return doc, nil
}

func readSeasonManifest(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read season manifest: %w", err)
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, filepath.Base(path), err)
	}
	return names, nil
}
