package assets

import "github.com/zeusync/assetkit/internal/core/models"

// Texture is the image store entry: the live handle and its display name.
type Texture struct {
	Handle Handle
	Name   string
}

func (m *Manager) LoadTexture(name, path string) (models.UUID, error) {
	return m.Load(models.KindImage, name, path)
}

func (m *Manager) UnloadTexture(id models.UUID) error {
	return m.Unload(models.KindImage, id)
}

func (m *Manager) ModifyTexture(id models.UUID, path string) error {
	return m.Modify(models.KindImage, id, path)
}

// Texture returns the image entry for id.
func (m *Manager) Texture(id models.UUID) (Texture, bool) {
	e, ok := m.catalog.GetKind(models.KindImage, id)
	if !ok {
		return Texture{}, false
	}
	return Texture{Handle: e.Handle, Name: e.Name}, true
}

// TextureMap returns a snapshot of the image store.
func (m *Manager) TextureMap() map[models.UUID]Texture {
	out := make(map[models.UUID]Texture)
	for _, e := range m.catalog.Sorted(models.KindImage) {
		out[e.UUID] = Texture{Handle: e.Handle, Name: e.Name}
	}
	return out
}

// TextureUUID returns the identifier of the image named name, or zero.
func (m *Manager) TextureUUID(name string) models.UUID {
	id, _ := m.UUIDByName(models.KindImage, name)
	return id
}
