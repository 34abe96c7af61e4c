package prefab

import (
	"fmt"
	"sort"

	"github.com/zeusync/assetkit/internal/core/models"
)

// Prefab is a bundle of components keyed by type tag. A prefab holds at most
// one component per tag.
type Prefab struct {
	components map[string]models.Component
}

func New(cs ...models.Component) (*Prefab, error) {
	p := &Prefab{components: make(map[string]models.Component, len(cs))}
	for _, c := range cs {
		if err := p.Add(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Add stores c under its type tag. An existing component of the same type is
// kept and ErrDuplicateComponent is returned.
func (p *Prefab) Add(c models.Component) error {
	tag := c.TypeName()
	if _, ok := p.components[tag]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateComponent, tag)
	}
	p.components[tag] = c
	return nil
}

// Set stores c under its type tag, replacing any previous component.
func (p *Prefab) Set(c models.Component) {
	p.components[c.TypeName()] = c
}

func (p *Prefab) Get(tag string) (models.Component, bool) {
	c, ok := p.components[tag]
	return c, ok
}

func (p *Prefab) Has(tag string) bool {
	_, ok := p.components[tag]
	return ok
}

func (p *Prefab) Remove(tag string) {
	delete(p.components, tag)
}

// IsValid reports whether the prefab holds at least one component.
func (p *Prefab) IsValid() bool { return len(p.components) > 0 }

func (p *Prefab) Len() int { return len(p.components) }

func (p *Prefab) Clear() {
	clear(p.components)
}

// Types returns the component tags in lexical order.
func (p *Prefab) Types() []string {
	out := make([]string, 0, len(p.components))
	for tag := range p.components {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Components returns the components ordered by tag.
func (p *Prefab) Components() []models.Component {
	out := make([]models.Component, 0, len(p.components))
	for _, tag := range p.Types() {
		out = append(out, p.components[tag])
	}
	return out
}

// Instantiate returns a deep copy with every component bound to entity id.
func (p *Prefab) Instantiate(id models.EntityID) *Prefab {
	cp := &Prefab{components: make(map[string]models.Component, len(p.components))}
	for tag, c := range p.components {
		clone := c.Clone()
		clone.SetIdentity(id)
		cp.components[tag] = clone
	}
	return cp
}

// AssetRefs collects the asset references of every component, ordered by tag.
func (p *Prefab) AssetRefs() []models.AssetRef {
	var refs []models.AssetRef
	for _, c := range p.Components() {
		if r, ok := c.(models.AssetReferrer); ok {
			refs = append(refs, r.AssetRefs()...)
		}
	}
	return refs
}
