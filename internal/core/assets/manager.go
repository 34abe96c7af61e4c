package assets

import (
	"context"
	"errors"
	"fmt"

	"github.com/zeusync/assetkit/internal/core/events/bus"
	"github.com/zeusync/assetkit/internal/core/models"
	"github.com/zeusync/assetkit/internal/core/observability/log"
	"github.com/zeusync/assetkit/internal/core/storage/index"
	"github.com/zeusync/assetkit/internal/core/storage/interfaces"
)

// Manager is the asset registry. Every mutation updates the catalog and then
// rewrites the whole index through the store. It is not safe for concurrent
// use; callers serialize access.
type Manager struct {
	log     log.Log
	gen     *models.Generator
	store   interfaces.IndexStore
	bus     bus.EventBus
	images  ImageService
	fonts   FontService
	audio   AudioService
	catalog *Catalog
}

type Option func(*Manager)

func WithLogger(l log.Log) Option {
	return func(m *Manager) { m.log = l }
}

// WithGenerator replaces the identifier source, typically with a seeded one.
func WithGenerator(g *models.Generator) Option {
	return func(m *Manager) { m.gen = g }
}

func WithEventBus(b bus.EventBus) Option {
	return func(m *Manager) { m.bus = b }
}

func WithImageService(s ImageService) Option {
	return func(m *Manager) { m.images = s }
}

func WithFontService(s FontService) Option {
	return func(m *Manager) { m.fonts = s }
}

func WithAudioService(s AudioService) Option {
	return func(m *Manager) { m.audio = s }
}

func NewManager(store interfaces.IndexStore, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		images:  nopImages{},
		fonts:   nopFonts{},
		audio:   nopAudio{},
		catalog: NewCatalog(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.log == nil {
		m.log = log.Provide()
	}
	if m.gen == nil {
		m.gen = models.NewGenerator()
	}
	return m
}

// Initialize restores every entry of the persisted index, textures first,
// then audios, then fonts, each in document order. A missing index leaves
// the registry empty. A malformed index is logged; sections decoded before
// the bad one are still restored.
func (m *Manager) Initialize(ctx context.Context) error {
	doc, err := m.store.Load(ctx)
	switch {
	case err == nil:
	case errors.Is(err, interfaces.ErrIndexNotFound):
		m.log.Info("no asset index to restore", log.String("path", m.store.Location()))
		return nil
	case errors.Is(err, index.ErrMalformed):
		m.log.Error("failed to parse asset index", log.String("path", m.store.Location()), log.Error(err))
	default:
		m.log.Error("failed to open asset index", log.String("path", m.store.Location()), log.Error(err))
		return err
	}

	for _, kind := range models.Kinds {
		recs := doc.Section(kind)
		for _, rec := range recs {
			m.restore(kind, rec)
		}
		if len(recs) > 0 {
			m.log.Info("assets restored", log.String("section", kind.Section()), log.Int("count", len(recs)))
		}
	}
	return err
}

func (m *Manager) restore(kind models.Kind, rec index.Record) {
	if prev, ok := m.catalog.Get(rec.UUID); ok {
		m.log.Warn("duplicate uuid in asset index, entry skipped",
			log.Uint64("uuid", rec.UUID.Uint64()),
			log.String("name", rec.Name),
			log.String("kept", prev.Name),
		)
		return
	}

	h, err := m.acquire(kind, rec.Name, rec.Path)
	if err != nil {
		m.log.Error("failed to load restored asset",
			log.Stringer("kind", kind),
			log.String("name", rec.Name),
			log.String("path", rec.Path),
			log.Error(err),
		)
	}
	m.catalog.Put(Entry{UUID: rec.UUID, Kind: kind, Name: rec.Name, Path: rec.Path, Handle: h, Loaded: err == nil})
}

// Teardown releases every entry through its service, textures then audios
// then fonts, and empties the registry. The index on disk is left as is.
func (m *Manager) Teardown() {
	for _, kind := range models.Kinds {
		for _, e := range m.catalog.Sorted(kind) {
			m.release(e)
			m.catalog.Remove(e.UUID)
			m.log.Debug("asset unloaded", log.Stringer("kind", kind), log.String("name", e.Name))
			m.publish(EventUnloaded, Event{Kind: kind, UUID: e.UUID, Name: e.Name, Path: e.Path})
		}
	}
	m.catalog.Clear()
}

// Load registers the asset at path under name. A path already registered for
// kind is not loaded again: the existing identifier is returned with a nil
// error after a warning and an EventDuplicate. Duplicate names with distinct
// paths are accepted.
func (m *Manager) Load(kind models.Kind, name, path string) (models.UUID, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedKind, path)
	}
	if prev, ok := m.catalog.FindPath(kind, path); ok {
		m.log.Warn("asset has already been loaded",
			log.Stringer("kind", kind),
			log.String("name", name),
			log.String("path", path),
			log.String("loaded_as", prev.Name),
		)
		m.publish(EventDuplicate, Event{Kind: kind, UUID: prev.UUID, Name: name, Path: path})
		return prev.UUID, nil
	}

	h, err := m.acquire(kind, name, path)
	if err != nil {
		m.log.Error("failed to load asset",
			log.Stringer("kind", kind),
			log.String("name", name),
			log.String("path", path),
			log.Error(err),
		)
		return 0, fmt.Errorf("%w: %s: %v", ErrLoadFailed, path, err)
	}

	id := m.newID()
	m.catalog.Put(Entry{UUID: id, Kind: kind, Name: name, Path: path, Handle: h, Loaded: true})
	m.log.Info("asset loaded", log.Stringer("kind", kind), log.String("name", name), log.Uint64("uuid", id.Uint64()))
	m.publish(EventLoaded, Event{Kind: kind, UUID: id, Name: name, Path: path})

	return id, m.persist()
}

// LoadedAt reports the identifier already registered for path under kind.
func (m *Manager) LoadedAt(kind models.Kind, path string) (models.UUID, bool) {
	e, ok := m.catalog.FindPath(kind, path)
	return e.UUID, ok
}

// LoadFile infers kind from the extension and the name from the file name.
func (m *Manager) LoadFile(path string) (models.UUID, error) {
	kind := models.DetermineKind(path)
	if !kind.Valid() {
		m.log.Warn("unrecognized asset type", log.String("path", path))
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedKind, path)
	}
	return m.Load(kind, models.ExtractName(path), path)
}

// Unload removes the entry of kind with identifier id. Unloading an absent
// identifier is not an error.
func (m *Manager) Unload(kind models.Kind, id models.UUID) error {
	e, ok := m.catalog.GetKind(kind, id)
	if !ok {
		if kind == models.KindAudio {
			m.log.Info("audio does not exist in the asset index", log.Uint64("uuid", id.Uint64()))
		}
		return nil
	}

	m.release(e)
	m.catalog.Remove(id)
	m.log.Info("asset unloaded", log.Stringer("kind", kind), log.String("name", e.Name), log.Uint64("uuid", id.Uint64()))
	m.publish(EventUnloaded, Event{Kind: kind, UUID: id, Name: e.Name, Path: e.Path})

	return m.persist()
}

// Modify swaps the source of an image or font entry. The old handle is
// released before the new one is acquired; name and identifier are kept.
func (m *Manager) Modify(kind models.Kind, id models.UUID, path string) error {
	if kind != models.KindImage && kind != models.KindFont {
		return fmt.Errorf("%w: modify %s", ErrUnsupportedKind, kind)
	}
	e, ok := m.catalog.GetKind(kind, id)
	if !ok {
		m.log.Error("modify of unknown asset", log.Stringer("kind", kind), log.Uint64("uuid", id.Uint64()))
		return fmt.Errorf("%w: %s %d", ErrNotFound, kind, id)
	}

	m.release(e)
	h, err := m.acquire(kind, e.Name, path)
	if err != nil {
		m.catalog.Update(id, e.Path, nil, false)
		m.log.Error("failed to reload asset",
			log.Stringer("kind", kind),
			log.String("name", e.Name),
			log.String("path", path),
			log.Error(err),
		)
		return fmt.Errorf("%w: %s: %v", ErrLoadFailed, path, err)
	}

	m.catalog.Update(id, path, h, true)
	m.log.Info("asset modified", log.Stringer("kind", kind), log.String("name", e.Name), log.String("path", path))
	m.publish(EventModified, Event{Kind: kind, UUID: id, Name: e.Name, Path: path, PrevPath: e.Path})

	return m.persist()
}

// Lookup returns the entry with identifier id, of any kind.
func (m *Manager) Lookup(id models.UUID) (Entry, bool) {
	return m.catalog.Get(id)
}

// Get returns the entry of kind with identifier id.
func (m *Manager) Get(kind models.Kind, id models.UUID) (Entry, bool) {
	return m.catalog.GetKind(kind, id)
}

// UUIDByName returns the identifier of the entry of kind named name.
func (m *Manager) UUIDByName(kind models.Kind, name string) (models.UUID, bool) {
	e, ok := m.catalog.FindName(kind, name)
	return e.UUID, ok
}

// Entries returns the entries of kind ordered by identifier.
func (m *Manager) Entries(kind models.Kind) []Entry {
	return m.catalog.Sorted(kind)
}

func (m *Manager) Len(kind models.Kind) int {
	return m.catalog.Len(kind)
}

// EditorMap returns the reverse index: kind -> identifier -> (name, path).
// The result is a snapshot; changing it does not affect the registry.
func (m *Manager) EditorMap() map[models.Kind]map[models.UUID]IndexEntry {
	return m.catalog.ReverseIndex()
}

// LogLoaded writes every live entry to the log.
func (m *Manager) LogLoaded() {
	for _, kind := range models.Kinds {
		for _, e := range m.catalog.Sorted(kind) {
			m.log.Info("loaded asset",
				log.Stringer("kind", kind),
				log.Uint64("uuid", e.UUID.Uint64()),
				log.String("name", e.Name),
				log.String("path", e.Path),
				log.Bool("live", e.Loaded),
				log.Any("handle", e.Handle),
			)
		}
	}
}

// Save rewrites the index from the current entries.
func (m *Manager) Save() error {
	return m.persist()
}

func (m *Manager) persist() error {
	doc, shadowed := m.catalog.Document().Normalize()
	for _, s := range shadowed {
		m.log.Warn("asset name collides in index, entry not persisted",
			log.String("section", s.Kind.Section()),
			log.String("name", s.Record.Name),
			log.Uint64("uuid", s.Record.UUID.Uint64()),
			log.Uint64("persisted_uuid", s.By.Uint64()),
		)
	}
	if err := m.store.Save(context.Background(), doc); err != nil {
		m.log.Error("failed to write asset index", log.String("path", m.store.Location()), log.Error(err))
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	m.log.Debug("asset index saved", log.String("path", m.store.Location()), log.Int("assets", doc.Len()))
	return nil
}

func (m *Manager) newID() models.UUID {
	for {
		id := m.gen.Generate()
		if !m.catalog.Has(id) {
			return id
		}
	}
}

func (m *Manager) acquire(kind models.Kind, name, path string) (Handle, error) {
	switch kind {
	case models.KindImage:
		return m.images.LoadImage(path)
	case models.KindFont:
		return m.fonts.LoadFont(path)
	case models.KindAudio:
		return nil, m.audio.LoadAudio(name, path)
	default:
		return nil, ErrUnsupportedKind
	}
}

func (m *Manager) release(e Entry) {
	if !e.Loaded {
		return
	}
	switch e.Kind {
	case models.KindImage:
		m.images.UnloadImage(e.Handle)
	case models.KindFont:
		m.fonts.UnloadFont(e.Handle)
	case models.KindAudio:
		m.audio.UnloadAudio(e.Name)
	}
}
