package components

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/zeusync/assetkit/internal/core/models"
)

var _ models.AssetReferrer = (*Audio)(nil)

// AudioControl is one named sound an entity can play.
type AudioControl struct {
	UUID     models.UUID `json:"UUID"`
	AudioKey string      `json:"AudioKey"`
	Loop     bool        `json:"Loop"`
	Volume   float32     `json:"Volume"`
}

// AudioControlMap encodes as an array of single-key objects, ordered by key:
// [{"jump": {...}}, {"theme": {...}}].
type AudioControlMap map[string]AudioControl

func (m AudioControlMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, key := range slices.Sorted(maps.Keys(m)) {
		if i > 0 {
			buf.WriteByte(',')
		}
		item, err := json.Marshal(map[string]AudioControl{key: m[key]})
		if err != nil {
			return nil, err
		}
		buf.Write(item)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (m *AudioControlMap) UnmarshalJSON(data []byte) error {
	var items []map[string]AudioControl
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	out := make(AudioControlMap, len(items))
	for _, item := range items {
		for key, ctl := range item {
			if _, dup := out[key]; dup {
				return fmt.Errorf("audio control %q listed twice", key)
			}
			out[key] = ctl
		}
	}
	*m = out
	return nil
}

type Audio struct {
	models.Base
	Controls AudioControlMap `json:"AudioControlMap"`
}

func NewAudio() *Audio {
	return &Audio{Controls: make(AudioControlMap)}
}

func (*Audio) TypeName() string { return AudioTag }

func (a *Audio) Validate() error {
	for key, ctl := range a.Controls {
		if ctl.Volume < 0 {
			return invalid(AudioTag, "control %q volume %v is negative", key, ctl.Volume)
		}
	}
	return nil
}

func (a *Audio) Clone() models.Component {
	cp := *a
	cp.Controls = maps.Clone(a.Controls)
	return &cp
}

func (a *Audio) AssetRefs() []models.AssetRef {
	var refs []models.AssetRef
	for _, key := range slices.Sorted(maps.Keys(a.Controls)) {
		ctl := a.Controls[key]
		if ctl.UUID.IsZero() {
			continue
		}
		refs = append(refs, models.AssetRef{Kind: models.KindAudio, UUID: ctl.UUID, Key: ctl.AudioKey})
	}
	return refs
}
