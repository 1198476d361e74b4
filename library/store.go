package library

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Store reads and writes the catalog's flat text file. Every call opens
// the file, works through it fully, and closes it; no handle is held
// between operations.
type Store struct {
	path string
}

// NewStore binds a store to the data file at path. The file is not
// touched until Load or Save.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the data file location the store was built with.
func (s *Store) Path() string {
	return s.path
}

// Load reads the data file line by line and parses each non-empty line
// into an item.
//
// Lines with an unrecognized type tag are skipped silently. Lines with a
// recognized tag but unparseable fields are skipped too, and reported in
// the warnings slice with their line number, so one corrupt record never
// discards the rest of the file. A missing or unopenable file means no
// prior data: Load returns empty results and a nil error.
func (s *Store) Load() ([]Item, []error, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, nil
	}
	defer f.Close()

	var (
		items []Item
		warns []error
	)
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if text == "" {
			continue
		}
		it, err := ParseItem(text)
		if err != nil {
			if !errors.Is(err, ErrUnknownType) {
				warns = append(warns, fmt.Errorf("line %d: %w", line, err))
			}
			continue
		}
		items = append(items, it)
	}
	if err := sc.Err(); err != nil {
		return items, warns, fmt.Errorf("read %s: %w", s.path, err)
	}
	return items, warns, nil
}

// Save writes one serialized record per item, in the order given, fully
// replacing any prior content. On failure the previous file state is
// whatever the failed write left behind; callers keep their in-memory
// catalog either way.
func (s *Store) Save(items []Item) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", s.path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, it := range items {
		if _, err := fmt.Fprintln(w, it.Serialize()); err != nil {
			return fmt.Errorf("write %s: %w", s.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	return nil
}

// ExportJSON writes the items as an indented JSON array. The field shape
// matches the Item JSON tags, so an exported file can be re-imported or
// consumed by other tooling.
func (s *Store) ExportJSON(path string, items []Item) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ImportJSON reads a JSON array of items as produced by ExportJSON.
// Entries with an unrecognized type tag are rejected rather than skipped;
// an import file is expected to be well formed.
func (s *Store) ImportJSON(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, it := range items {
		if it.Kind != KindBook && it.Kind != KindJournal {
			return nil, fmt.Errorf("%w: %q", ErrUnknownType, it.Kind)
		}
	}
	return items, nil
}
