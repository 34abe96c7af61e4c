package components

import (
	"slices"

	"github.com/zeusync/assetkit/internal/core/models"
)

type Player struct {
	models.Base
	TransformAmount int32 `json:"TransformAmount"`
	MoveSpeed       int32 `json:"MoveSpeed"`
}

func (*Player) TypeName() string { return PlayerTag }
func (*Player) Validate() error  { return nil }

func (p *Player) Clone() models.Component {
	cp := *p
	return &cp
}

type Name struct {
	models.Base
	Name string `json:"Name"`
}

func (*Name) TypeName() string { return NameTag }
func (*Name) Validate() error  { return nil }

func (n *Name) Clone() models.Component {
	cp := *n
	return &cp
}

// Gem marks a collectible. It carries no data besides the identity.
type Gem struct {
	models.Base
}

func (*Gem) TypeName() string { return GemTag }
func (*Gem) Validate() error  { return nil }

func (g *Gem) Clone() models.Component {
	cp := *g
	return &cp
}

// UI marks an entity drawn in screen space.
type UI struct {
	models.Base
}

func (*UI) TypeName() string { return UITag }
func (*UI) Validate() error  { return nil }

func (u *UI) Clone() models.Component {
	cp := *u
	return &cp
}

type Enemy struct {
	models.Base
	MaxDelta models.Vec2 `json:"MaxDelta"`
}

func (*Enemy) TypeName() string { return EnemyTag }
func (*Enemy) Validate() error  { return nil }

func (e *Enemy) Clone() models.Component {
	cp := *e
	return &cp
}

type Tile struct {
	models.Base
	TileType uint32 `json:"TileType"`
}

func (*Tile) TypeName() string { return TileTag }
func (*Tile) Validate() error  { return nil }

func (t *Tile) Clone() models.Component {
	cp := *t
	return &cp
}

// CPPScript lists the native script types attached to an entity.
type CPPScript struct {
	models.Base
	Scripts []uint32 `json:"CPPScripts"`
}

func (*CPPScript) TypeName() string { return CPPScriptTag }

func (c *CPPScript) Validate() error {
	seen := make(map[uint32]struct{}, len(c.Scripts))
	for _, s := range c.Scripts {
		if _, dup := seen[s]; dup {
			return invalid(CPPScriptTag, "script %d attached twice", s)
		}
		seen[s] = struct{}{}
	}
	return nil
}

func (c *CPPScript) Clone() models.Component {
	cp := *c
	cp.Scripts = slices.Clone(c.Scripts)
	return &cp
}
