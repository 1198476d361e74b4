package library

import (
	"sort"
	"strings"
)

// LibraryManager owns the catalog: a mapping from item id to item, backed
// by a flat text file through Store. All iteration (list, search, save)
// runs in ascending id order regardless of insertion order.
//
// The manager assumes a single caller; it provides no internal locking.
// A concurrent host wrapping it must serialize mutation and save/load.
type LibraryManager struct {
	store *Store
	items map[int]Item
	warns []error
}

// NewLibraryManager binds the manager to the data file at path and loads
// any persisted catalog. A missing or unopenable file is not an error;
// the catalog simply starts empty. Per-line parse problems found during
// load are kept and exposed through Warnings.
func NewLibraryManager(path string) (*LibraryManager, error) {
	store := NewStore(path)
	loaded, warns, err := store.Load()
	if err != nil {
		return nil, err
	}

	items := make(map[int]Item, len(loaded))
	for _, it := range loaded {
		items[it.ID] = it
	}
	return &LibraryManager{store: store, items: items, warns: warns}, nil
}

// Warnings returns the per-line problems encountered while loading the
// data file. The corresponding lines were skipped, not loaded.
func (lm *LibraryManager) Warnings() []error { return lm.warns }

// Len returns the number of items in the catalog.
func (lm *LibraryManager) Len() int { return len(lm.items) }

// Add inserts the item into the catalog. Returns ErrDuplicateID when an
// item with the same id is already present; the catalog is unchanged.
func (lm *LibraryManager) Add(item Item) error {
	if _, exists := lm.items[item.ID]; exists {
		return ErrDuplicateID
	}
	lm.items[item.ID] = item
	return nil
}

// Remove deletes the item with the given id. Returns ErrNotFound when
// the id is absent.
func (lm *LibraryManager) Remove(id int) error {
	if _, exists := lm.items[id]; !exists {
		return ErrNotFound
	}
	delete(lm.items, id)
	return nil
}

// Get returns a copy of the item with the given id. Callers never hold a
// reference into the catalog itself.
func (lm *LibraryManager) Get(id int) (Item, bool) {
	it, ok := lm.items[id]
	return it, ok
}

// ToggleBorrow flips the borrowed flag unconditionally and returns the
// new state. Returns ErrNotFound when the id is absent.
func (lm *LibraryManager) ToggleBorrow(id int) (bool, error) {
	it, ok := lm.items[id]
	if !ok {
		return false, ErrNotFound
	}
	it.Borrowed = !it.Borrowed
	lm.items[id] = it
	return it.Borrowed, nil
}

// Items returns copies of every item in ascending id order.
func (lm *LibraryManager) Items() []Item {
	out := make([]Item, 0, len(lm.items))
	for _, id := range lm.sortedIDs() {
		out = append(out, lm.items[id])
	}
	return out
}

// Search returns, in ascending id order, every item whose title contains
// keyword as a case-sensitive substring. The empty keyword matches every
// item.
func (lm *LibraryManager) Search(keyword string) []Item {
	var out []Item
	for _, id := range lm.sortedIDs() {
		if it := lm.items[id]; strings.Contains(it.Title, keyword) {
			out = append(out, it)
		}
	}
	return out
}

// Stats summarizes the catalog.
type Stats struct {
	Total     int
	Available int
	Borrowed  int
}

// Stats counts items by borrow status.
func (lm *LibraryManager) Stats() Stats {
	st := Stats{Total: len(lm.items)}
	for _, it := range lm.items {
		if it.Borrowed {
			st.Borrowed++
		} else {
			st.Available++
		}
	}
	return st
}

// Save writes the whole catalog to the data file, one record per item in
// ascending id order, replacing prior content. On error the in-memory
// catalog is untouched and the caller decides how to report it.
func (lm *LibraryManager) Save() error {
	return lm.store.Save(lm.Items())
}

// ExportJSON writes the catalog as a JSON array to path, ascending by id.
func (lm *LibraryManager) ExportJSON(path string) error {
	return lm.store.ExportJSON(path, lm.Items())
}

// ImportJSON merges items from a JSON export into the catalog. Items
// whose id is already present are skipped. Returns how many items were
// added and how many were skipped as duplicates.
func (lm *LibraryManager) ImportJSON(path string) (added, skipped int, err error) {
	items, err := lm.store.ImportJSON(path)
	if err != nil {
		return 0, 0, err
	}
	for _, it := range items {
		if lm.Add(it) != nil {
			skipped++
			continue
		}
		added++
	}
	return added, skipped, nil
}

func (lm *LibraryManager) sortedIDs() []int {
	ids := make([]int, 0, len(lm.items))
	for id := range lm.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
