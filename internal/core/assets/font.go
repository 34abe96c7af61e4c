package assets

import "github.com/zeusync/assetkit/internal/core/models"

// Font is the font store entry.
type Font struct {
	Handle Handle
	Name   string
}

func (m *Manager) LoadFont(name, path string) (models.UUID, error) {
	return m.Load(models.KindFont, name, path)
}

func (m *Manager) UnloadFont(id models.UUID) error {
	return m.Unload(models.KindFont, id)
}

func (m *Manager) ModifyFont(id models.UUID, path string) error {
	return m.Modify(models.KindFont, id, path)
}

func (m *Manager) Font(id models.UUID) (Font, bool) {
	e, ok := m.catalog.GetKind(models.KindFont, id)
	if !ok {
		return Font{}, false
	}
	return Font{Handle: e.Handle, Name: e.Name}, true
}

func (m *Manager) FontMap() map[models.UUID]Font {
	out := make(map[models.UUID]Font)
	for _, e := range m.catalog.Sorted(models.KindFont) {
		out[e.UUID] = Font{Handle: e.Handle, Name: e.Name}
	}
	return out
}

func (m *Manager) FontUUID(name string) models.UUID {
	id, _ := m.UUIDByName(models.KindFont, name)
	return id
}
