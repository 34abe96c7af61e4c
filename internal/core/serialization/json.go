package serialization

import (
	"encoding/json"

	"github.com/zeusync/assetkit/internal/core/models"
)

type jsonCodec struct {
	newFn func() models.Component
}

// JSON returns a Codec that relies on the component's struct tags. newFn
// must return a pointer so decoding can fill it in place.
func JSON(newFn func() models.Component) Codec {
	return jsonCodec{newFn: newFn}
}

func (c jsonCodec) New() models.Component { return c.newFn() }

func (jsonCodec) Marshal(v models.Component) (json.RawMessage, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data json.RawMessage, v models.Component) error {
	return json.Unmarshal(data, v)
}
