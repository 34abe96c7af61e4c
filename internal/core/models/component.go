package models

// EntityID identifies the entity a component record belongs to. Serialized
// records carry it under the "Identity" key.
type EntityID int32

// Component is a fixed-layout data record attached to an entity.
type Component interface {
	// TypeName is the dispatch tag used in prefab and scene documents.
	TypeName() string
	Identity() EntityID
	SetIdentity(EntityID)
	Validate() error
	Clone() Component
}

// AssetReferrer is implemented by components that point at registry assets.
type AssetReferrer interface {
	AssetRefs() []AssetRef
}

// AssetRef is a component's reference to a loaded asset.
type AssetRef struct {
	Kind Kind
	UUID UUID
	Key  string
}

// Base carries the entity identity shared by every component record.
type Base struct {
	EntityIdentity EntityID `json:"Identity"`
}

func (b *Base) Identity() EntityID      { return b.EntityIdentity }
func (b *Base) SetIdentity(id EntityID) { b.EntityIdentity = id }
