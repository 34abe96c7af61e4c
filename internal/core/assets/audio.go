package assets

import "github.com/zeusync/assetkit/internal/core/models"

// Audio entries hold no handle: the audio service keys its resources by
// display name.

func (m *Manager) LoadAudio(name, path string) (models.UUID, error) {
	return m.Load(models.KindAudio, name, path)
}

func (m *Manager) UnloadAudio(id models.UUID) error {
	return m.Unload(models.KindAudio, id)
}

// Audio returns the display name of the audio entry for id.
func (m *Manager) Audio(id models.UUID) (string, bool) {
	e, ok := m.catalog.GetKind(models.KindAudio, id)
	return e.Name, ok
}

// AudioMap returns a snapshot of identifier to display name.
func (m *Manager) AudioMap() map[models.UUID]string {
	out := make(map[models.UUID]string)
	for _, e := range m.catalog.Sorted(models.KindAudio) {
		out[e.UUID] = e.Name
	}
	return out
}

func (m *Manager) AudioUUID(name string) models.UUID {
	id, _ := m.UUIDByName(models.KindAudio, name)
	return id
}
