package assets

import (
	"sort"

	"github.com/zeusync/assetkit/internal/core/models"
	"github.com/zeusync/assetkit/internal/core/storage/index"
)

// Entry is the single record kept per live asset. The typed stores, the
// reverse index and the persisted document are all views over entries.
type Entry struct {
	UUID   models.UUID
	Kind   models.Kind
	Name   string
	Path   string
	Handle Handle
	// Loaded is false when the external service failed to load the source
	// while the entry was restored from the index.
	Loaded bool
}

// IndexEntry is the (display name, source path) pair of the reverse index.
type IndexEntry struct {
	Name string
	Path string
}

// Catalog owns all entries, keyed by identifier.
type Catalog struct {
	entries map[models.UUID]*Entry
}

func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[models.UUID]*Entry)}
}

func (c *Catalog) Put(e Entry) {
	c.entries[e.UUID] = &e
}

func (c *Catalog) Get(id models.UUID) (Entry, bool) {
	e, ok := c.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// GetKind is Get restricted to one kind.
func (c *Catalog) GetKind(kind models.Kind, id models.UUID) (Entry, bool) {
	e, ok := c.entries[id]
	if !ok || e.Kind != kind {
		return Entry{}, false
	}
	return *e, true
}

func (c *Catalog) Has(id models.UUID) bool {
	_, ok := c.entries[id]
	return ok
}

func (c *Catalog) Remove(id models.UUID) (Entry, bool) {
	e, ok := c.entries[id]
	if !ok {
		return Entry{}, false
	}
	delete(c.entries, id)
	return *e, true
}

// Update replaces the handle and path of an existing entry.
func (c *Catalog) Update(id models.UUID, path string, h Handle, loaded bool) bool {
	e, ok := c.entries[id]
	if !ok {
		return false
	}
	e.Path, e.Handle, e.Loaded = path, h, loaded
	return true
}

// Sorted returns the entries of kind ordered by identifier.
func (c *Catalog) Sorted(kind models.Kind) []Entry {
	out := make([]Entry, 0)
	for _, e := range c.entries {
		if e.Kind == kind {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UUID < out[j].UUID })
	return out
}

func (c *Catalog) Len(kind models.Kind) int {
	n := 0
	for _, e := range c.entries {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Total returns the number of entries of every kind.
func (c *Catalog) Total() int { return len(c.entries) }

// FindPath returns the entry of kind whose source path equals path.
func (c *Catalog) FindPath(kind models.Kind, path string) (Entry, bool) {
	for _, e := range c.Sorted(kind) {
		if e.Path == path {
			return e, true
		}
	}
	return Entry{}, false
}

// FindName returns the entry of kind with the given display name. When the
// name is shared, the lowest identifier wins so repeated calls agree.
func (c *Catalog) FindName(kind models.Kind, name string) (Entry, bool) {
	for _, e := range c.Sorted(kind) {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// ReverseIndex builds the kind -> identifier -> (name, path) view.
func (c *Catalog) ReverseIndex() map[models.Kind]map[models.UUID]IndexEntry {
	out := make(map[models.Kind]map[models.UUID]IndexEntry, len(models.Kinds))
	for _, kind := range models.Kinds {
		out[kind] = make(map[models.UUID]IndexEntry)
	}
	for id, e := range c.entries {
		out[e.Kind][id] = IndexEntry{Name: e.Name, Path: e.Path}
	}
	return out
}

// Document builds the persisted form of every entry.
func (c *Catalog) Document() index.Document {
	var doc index.Document
	for _, kind := range models.Kinds {
		for _, e := range c.Sorted(kind) {
			doc.Append(kind, index.Record{Name: e.Name, UUID: e.UUID, Path: e.Path})
		}
	}
	return doc
}

func (c *Catalog) Clear() {
	clear(c.entries)
}
