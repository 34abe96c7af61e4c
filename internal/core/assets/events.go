package assets

import (
	"github.com/zeusync/assetkit/internal/core/events/bus"
	"github.com/zeusync/assetkit/internal/core/models"
	"github.com/zeusync/assetkit/internal/core/observability/log"
)

// Event types published by the Manager.
const (
	EventLoaded    = "asset.loaded"
	EventUnloaded  = "asset.unloaded"
	EventModified  = "asset.modified"
	EventDuplicate = "asset.duplicate"
)

const eventSource = "assets.manager"

// Event is the payload of every asset lifecycle event.
type Event struct {
	Kind     models.Kind
	UUID     models.UUID
	Name     string
	Path     string
	PrevPath string
}

func (m *Manager) publish(typ string, ev Event) {
	if m.bus == nil {
		return
	}
	if err := m.bus.Publish(bus.NewEvent(typ, eventSource, ev)); err != nil {
		m.log.Warn("asset event handler failed",
			log.String("event", typ),
			log.Uint64("uuid", ev.UUID.Uint64()),
			log.Error(err),
		)
	}
}
