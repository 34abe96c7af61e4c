package serialization

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/zeusync/assetkit/internal/core/models"
)

// Codec converts one component type to and from its JSON record.
type Codec interface {
	// New returns a component holding the type's default values.
	New() models.Component
	Marshal(c models.Component) (json.RawMessage, error)
	// Unmarshal decodes data into c. Fields absent from data keep their
	// current value.
	Unmarshal(data json.RawMessage, c models.Component) error
}

// Registry maps component type tags to codecs. It is populated at startup
// and read concurrently afterwards.
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]Codec
}

func NewRegistry() *Registry {
	return &Registry{codecs: make(map[string]Codec)}
}

func (r *Registry) Register(tag string, c Codec) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.codecs[tag]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTag, tag)
	}
	r.codecs[tag] = c
	return nil
}

// MustRegister is Register for init-time tables.
func (r *Registry) MustRegister(tag string, c Codec) {
	if err := r.Register(tag, c); err != nil {
		panic(err)
	}
}

func (r *Registry) Lookup(tag string) (Codec, bool) {
	r.mu.RLock()
	c, ok := r.codecs[tag]
	r.mu.RUnlock()
	return c, ok
}

func (r *Registry) Has(tag string) bool {
	_, ok := r.Lookup(tag)
	return ok
}

// Tags returns the registered tags in lexical order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.codecs))
	for tag := range r.codecs {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// New default-constructs the component registered under tag.
func (r *Registry) New(tag string) (models.Component, error) {
	c, ok := r.Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	return c.New(), nil
}

// Serialize encodes c with the codec registered under its type name.
func (r *Registry) Serialize(c models.Component) (json.RawMessage, error) {
	codec, ok := r.Lookup(c.TypeName())
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, c.TypeName())
	}
	data, err := codec.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("serialize %s: %w", c.TypeName(), err)
	}
	return data, nil
}

// Deserialize builds a default component for tag, decodes data over it and
// validates the result.
func (r *Registry) Deserialize(tag string, data json.RawMessage) (models.Component, error) {
	codec, ok := r.Lookup(tag)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	c := codec.New()
	if c.TypeName() != tag {
		return nil, fmt.Errorf("%w: %s registered as %s", ErrTagMismatch, c.TypeName(), tag)
	}
	if err := codec.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("deserialize %s: %w", tag, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("deserialize %s: %w", tag, err)
	}
	return c, nil
}
