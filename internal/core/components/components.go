package components

import (
	"errors"
	"fmt"

	"github.com/zeusync/assetkit/internal/core/models"
	"github.com/zeusync/assetkit/internal/core/serialization"
)

// Type tags as they appear in prefab and scene documents.
const (
	TransformTag   = "TransformComponent"
	MovementTag    = "MovementComponent"
	PrimitiveTag   = "PrimitiveComponent"
	SpriteTag      = "SpriteComponent"
	PlayerTag      = "PlayerComponent"
	NameTag        = "NameComponent"
	RigidBody2DTag = "RigidBody2DComponent"
	CameraTag      = "CameraComponent"
	FontTag        = "FontComponent"
	AnimationTag   = "AnimationComponent"
	GemTag         = "GemComponent"
	UITag          = "UIComponent"
	AudioTag       = "AudioComponent"
	EnemyTag       = "EnemyComponent"
	TileTag        = "TileComponent"
	CPPScriptTag   = "CPPScriptComponent"
)

var ErrInvalid = errors.New("invalid component")

func invalid(tag, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalid, tag, fmt.Sprintf(format, args...))
}

var builtins = []struct {
	tag   string
	newFn func() models.Component
}{
	{TransformTag, func() models.Component { return NewTransform() }},
	{MovementTag, func() models.Component { return &Movement{} }},
	{PrimitiveTag, func() models.Component { return NewPrimitive() }},
	{SpriteTag, func() models.Component { return NewSprite() }},
	{PlayerTag, func() models.Component { return &Player{} }},
	{NameTag, func() models.Component { return &Name{} }},
	{RigidBody2DTag, func() models.Component { return NewRigidBody2D() }},
	{CameraTag, func() models.Component { return NewCamera() }},
	{FontTag, func() models.Component { return NewFont() }},
	{AnimationTag, func() models.Component { return &Animation{} }},
	{GemTag, func() models.Component { return &Gem{} }},
	{UITag, func() models.Component { return &UI{} }},
	{AudioTag, func() models.Component { return NewAudio() }},
	{EnemyTag, func() models.Component { return &Enemy{} }},
	{TileTag, func() models.Component { return &Tile{} }},
	{CPPScriptTag, func() models.Component { return &CPPScript{} }},
}

// RegisterBuiltins adds every built-in component to r.
func RegisterBuiltins(r *serialization.Registry) error {
	for _, b := range builtins {
		if err := r.Register(b.tag, serialization.JSON(b.newFn)); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a registry holding the built-in components.
func NewRegistry() *serialization.Registry {
	r := serialization.NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		panic(err)
	}
	return r
}
