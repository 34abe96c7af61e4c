package components

import "github.com/zeusync/assetkit/internal/core/models"

// Transform places an entity. Transform.Z is the draw depth.
type Transform struct {
	models.Base
	Transform models.Vec3 `json:"Transform"`
	Scale     models.Vec2 `json:"Scale"`
	Rotation  float32     `json:"Rotation"`
}

func NewTransform() *Transform {
	return &Transform{Scale: models.Vec2{X: 1, Y: 1}}
}

func (*Transform) TypeName() string { return TransformTag }
func (*Transform) Validate() error  { return nil }

func (t *Transform) Clone() models.Component {
	cp := *t
	return &cp
}

type Movement struct {
	models.Base
	Direction models.Vec2 `json:"Direction"`
	Speed     float32     `json:"Speed"`
}

func (*Movement) TypeName() string { return MovementTag }

func (m *Movement) Validate() error {
	if m.Speed < 0 {
		return invalid(MovementTag, "speed %v is negative", m.Speed)
	}
	return nil
}

func (m *Movement) Clone() models.Component {
	cp := *m
	return &cp
}

// Body types of RigidBody2D.
const (
	BodyStatic int32 = iota
	BodyDynamic
	BodyKinematic
)

type RigidBody2D struct {
	models.Base
	Position models.Vec2 `json:"Position"`
	Width    models.Vec2 `json:"Width"`
	Mass     float32     `json:"Mass"`
	BodyType int32       `json:"BodyType"`
	Offset   float32     `json:"Offset"`
	Friction float32     `json:"Friction"`
}

func NewRigidBody2D() *RigidBody2D {
	return &RigidBody2D{Width: models.Vec2{X: 1, Y: 1}, Mass: 1, BodyType: BodyDynamic}
}

func (*RigidBody2D) TypeName() string { return RigidBody2DTag }

func (r *RigidBody2D) Validate() error {
	switch {
	case r.Mass < 0:
		return invalid(RigidBody2DTag, "mass %v is negative", r.Mass)
	case r.Friction < 0:
		return invalid(RigidBody2DTag, "friction %v is negative", r.Friction)
	case r.BodyType < BodyStatic || r.BodyType > BodyKinematic:
		return invalid(RigidBody2DTag, "unknown body type %d", r.BodyType)
	}
	return nil
}

func (r *RigidBody2D) Clone() models.Component {
	cp := *r
	return &cp
}

type Camera struct {
	models.Base
	Active           bool        `json:"m_Active"`
	SmoothDampActive bool        `json:"m_SmoothDampActive"`
	FOV              float32     `json:"m_FOV"`
	PerspectiveNear  float32     `json:"m_PerspectiveNear"`
	PerspectiveFar   float32     `json:"m_PerspectiveFar"`
	OrthoFar         float32     `json:"m_OrthoFar"`
	OrthoNear        float32     `json:"m_OrthoNear"`
	OrthoSize        float32     `json:"m_OrthoSize"`
	CameraDistance   float32     `json:"m_CameraDistance"`
	Velocity         models.Vec2 `json:"velocity"`
}

func NewCamera() *Camera {
	return &Camera{
		Active:          true,
		FOV:             45,
		PerspectiveNear: 0.01,
		PerspectiveFar:  1000,
		OrthoNear:       -1,
		OrthoFar:        1,
		OrthoSize:       10,
		CameraDistance:  10,
	}
}

func (*Camera) TypeName() string { return CameraTag }

func (c *Camera) Validate() error {
	if c.PerspectiveNear >= c.PerspectiveFar {
		return invalid(CameraTag, "perspective near %v not below far %v", c.PerspectiveNear, c.PerspectiveFar)
	}
	if c.OrthoNear >= c.OrthoFar {
		return invalid(CameraTag, "ortho near %v not below far %v", c.OrthoNear, c.OrthoFar)
	}
	return nil
}

func (c *Camera) Clone() models.Component {
	cp := *c
	return &cp
}
