package components

import "github.com/zeusync/assetkit/internal/core/models"

var (
	_ models.AssetReferrer = (*Sprite)(nil)
	_ models.AssetReferrer = (*Font)(nil)
)

var white = models.Vec3{X: 1, Y: 1, Z: 1}

func checkAlpha(tag string, alpha float32) error {
	if alpha < 0 || alpha > 1 {
		return invalid(tag, "alpha %v outside [0, 1]", alpha)
	}
	return nil
}

type Primitive struct {
	models.Base
	PrimitiveID int32       `json:"PrimitiveID"`
	Offset      float32     `json:"Offset"`
	Color       models.Vec3 `json:"Color"`
	Alpha       float32     `json:"Alpha"`
}

func NewPrimitive() *Primitive {
	return &Primitive{Color: white, Alpha: 1}
}

func (*Primitive) TypeName() string { return PrimitiveTag }

func (p *Primitive) Validate() error { return checkAlpha(PrimitiveTag, p.Alpha) }

func (p *Primitive) Clone() models.Component {
	cp := *p
	return &cp
}

// Sprite draws the image asset UUID. TexKey is the image display name.
type Sprite struct {
	models.Base
	TexKey string      `json:"TexKey"`
	UUID   models.UUID `json:"UUID"`
	Width  float32     `json:"Width"`
	Height float32     `json:"Height"`
	Alpha  float32     `json:"Alpha"`
	Color  models.Vec3 `json:"Color"`
}

func NewSprite() *Sprite {
	return &Sprite{Width: 1, Height: 1, Alpha: 1, Color: white}
}

func (*Sprite) TypeName() string { return SpriteTag }

func (s *Sprite) Validate() error {
	if s.Width < 0 || s.Height < 0 {
		return invalid(SpriteTag, "size %vx%v is negative", s.Width, s.Height)
	}
	return checkAlpha(SpriteTag, s.Alpha)
}

func (s *Sprite) Clone() models.Component {
	cp := *s
	return &cp
}

func (s *Sprite) AssetRefs() []models.AssetRef {
	if s.UUID.IsZero() {
		return nil
	}
	return []models.AssetRef{{Kind: models.KindImage, UUID: s.UUID, Key: s.TexKey}}
}

// Font renders Text with the font asset UUID.
type Font struct {
	models.Base
	UUID  models.UUID `json:"UUID"`
	Text  string      `json:"Text"`
	Color models.Vec3 `json:"Color"`
}

func NewFont() *Font {
	return &Font{Color: white}
}

func (*Font) TypeName() string { return FontTag }
func (*Font) Validate() error  { return nil }

func (f *Font) Clone() models.Component {
	cp := *f
	return &cp
}

func (f *Font) AssetRefs() []models.AssetRef {
	if f.UUID.IsZero() {
		return nil
	}
	return []models.AssetRef{{Kind: models.KindFont, UUID: f.UUID}}
}

type Animation struct {
	models.Base
	MaxFrame          int32   `json:"MaxFrame"`
	CurrentFrameIndex int32   `json:"CurrentFrameIndex"`
	StartingAnimIndex int32   `json:"StartingAnimIndex"`
	Interval          float32 `json:"Interval"`
}

func (*Animation) TypeName() string { return AnimationTag }

func (a *Animation) Validate() error {
	switch {
	case a.MaxFrame < 0:
		return invalid(AnimationTag, "max frame %d is negative", a.MaxFrame)
	case a.CurrentFrameIndex < 0 || (a.MaxFrame > 0 && a.CurrentFrameIndex >= a.MaxFrame):
		return invalid(AnimationTag, "frame %d outside [0, %d)", a.CurrentFrameIndex, a.MaxFrame)
	case a.Interval < 0:
		return invalid(AnimationTag, "interval %v is negative", a.Interval)
	}
	return nil
}

func (a *Animation) Clone() models.Component {
	cp := *a
	return &cp
}
