package prefab

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/assetkit/internal/core/assets"
	"github.com/zeusync/assetkit/internal/core/components"
	"github.com/zeusync/assetkit/internal/core/models"
	"github.com/zeusync/assetkit/internal/core/observability/log"
	"github.com/zeusync/assetkit/internal/core/serialization"
	"github.com/zeusync/assetkit/internal/core/storage/jsonfile"
)

func newCodec() *Codec {
	return NewCodec(components.NewRegistry(), log.NewNop())
}

func hero(t *testing.T) *Prefab {
	t.Helper()
	p, err := New(
		&components.Transform{Transform: models.Vec3{X: 111, Y: 111}, Scale: models.Vec2{X: 111, Y: 111}, Rotation: 111},
		&components.Movement{Direction: models.Vec2{X: 222, Y: 222}, Speed: 222},
		&components.Sprite{TexKey: "MoleEnemy", UUID: 42, Width: 1, Height: 1, Alpha: 1, Color: models.Vec3{X: 0.4, Y: 0.4, Z: 0.4}},
		&components.Name{Name: "Hero"},
	)
	require.NoError(t, err)
	return p
}

func TestPrefabContainer(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	assert.False(t, p.IsValid())

	require.NoError(t, p.Add(&components.Name{Name: "a"}))
	assert.ErrorIs(t, p.Add(&components.Name{Name: "b"}), ErrDuplicateComponent)
	c, ok := p.Get(components.NameTag)
	require.True(t, ok)
	assert.Equal(t, "a", c.(*components.Name).Name)

	p.Set(&components.Name{Name: "b"})
	c, _ = p.Get(components.NameTag)
	assert.Equal(t, "b", c.(*components.Name).Name)

	require.NoError(t, p.Add(&components.Gem{}))
	assert.True(t, p.IsValid())
	assert.True(t, p.Has(components.GemTag))
	assert.False(t, p.Has(components.TileTag))
	assert.Equal(t, []string{components.GemTag, components.NameTag}, p.Types())

	p.Remove(components.GemTag)
	assert.Equal(t, 1, p.Len())
	p.Clear()
	assert.False(t, p.IsValid())

	_, err = New(&components.UI{}, &components.UI{})
	assert.ErrorIs(t, err, ErrDuplicateComponent)
}

func TestEncodeDecode(t *testing.T) {
	c := newCodec()
	in := hero(t)

	data, err := c.Encode(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"TransformComponent": {`)

	out, err := c.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, in.Types(), out.Types())
	if diff := cmp.Diff(in.Components(), out.Components()); diff != "" {
		t.Fatalf("prefab mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSkipsUnknownTags(t *testing.T) {
	c := newCodec()
	p, err := c.Decode([]byte(`{
		"NameComponent": {"Identity": 1, "Name": "Mole"},
		"LaserComponent": {"Power": 9000},
		"SpriteComponent": {"TexKey": "Mole", "Alpha": 7},
		"GemComponent": {"Identity": 1}
	}`))
	require.NotNil(t, p)
	assert.ErrorIs(t, err, ErrSkipped)
	assert.ErrorIs(t, err, serialization.ErrUnknownTag)
	assert.ErrorIs(t, err, components.ErrInvalid)
	assert.Equal(t, []string{components.GemTag, components.NameTag}, p.Types())
}

type typeLog struct {
	log.Log
	types []string
}

func (l *typeLog) Error(_ string, fields ...log.Field) {
	for _, f := range fields {
		if f.Key == "type" {
			l.types = append(l.types, f.Value.(string))
		}
	}
}

func TestDecodeReportsInDocumentOrder(t *testing.T) {
	rec := &typeLog{Log: log.NewNop()}
	c := NewCodec(components.NewRegistry(), rec)

	p, err := c.Decode([]byte(`{
		"ZebraComponent": {},
		"NameComponent": {"Name": "Mole"},
		"SpriteComponent": {"TexKey": "Mole", "Alpha": 7},
		"AardvarkComponent": {}
	}`))
	require.NotNil(t, p)
	assert.ErrorIs(t, err, ErrSkipped)
	assert.Equal(t, []string{"ZebraComponent", components.SpriteTag, "AardvarkComponent"}, rec.types)
}

func TestDecodeRejectsNonObject(t *testing.T) {
	c := newCodec()
	for _, body := range []string{`[]`, `null`, `"x"`, `{`, `{} {}`} {
		_, err := c.Decode([]byte(body))
		assert.ErrorIs(t, err, ErrNotObject, body)
	}
}

func TestScene(t *testing.T) {
	c := newCodec()
	enemy, err := New(&components.Enemy{MaxDelta: models.Vec2{X: 3}}, &components.Tile{TileType: 2})
	require.NoError(t, err)
	scene := []*Prefab{hero(t).Instantiate(1), enemy.Instantiate(2)}

	data, err := c.EncodeScene(scene)
	require.NoError(t, err)
	out, err := c.DecodeScene(data)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for i := range scene {
		if diff := cmp.Diff(scene[i].Components(), out[i].Components()); diff != "" {
			t.Fatalf("entity %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	tile, _ := out[1].Get(components.TileTag)
	assert.Equal(t, models.EntityID(2), tile.Identity())

	out, err = c.DecodeScene([]byte(`[{"GemComponent": {}}, 5, {"Bogus": {}}]`))
	assert.ErrorIs(t, err, ErrSkipped)
	require.Len(t, out, 2)
	assert.True(t, out[0].Has(components.GemTag))
	assert.False(t, out[1].IsValid())

	_, err = c.DecodeScene([]byte(`{}`))
	assert.ErrorIs(t, err, ErrNotArray)
}

func TestInstantiateDoesNotShareState(t *testing.T) {
	base := hero(t)
	inst := base.Instantiate(7)

	c, _ := inst.Get(components.NameTag)
	c.(*components.Name).Name = "Clone"
	orig, _ := base.Get(components.NameTag)
	assert.Equal(t, "Hero", orig.(*components.Name).Name)
	assert.Equal(t, models.EntityID(0), orig.Identity())
	assert.Equal(t, models.EntityID(7), c.Identity())
}

func TestFiles(t *testing.T) {
	c := newCodec()
	dir := t.TempDir()

	path := filepath.Join(dir, "prefabs", "hero.json")
	require.NoError(t, c.SaveFile(path, hero(t)))
	p, err := c.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, p.Len())

	scenePath := filepath.Join(dir, "scene.json")
	require.NoError(t, c.SaveScene(scenePath, []*Prefab{hero(t)}))
	scene, err := c.LoadScene(scenePath)
	require.NoError(t, err)
	assert.Len(t, scene, 1)

	_, err = c.LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestResolveAssets(t *testing.T) {
	m := assets.NewManager(
		jsonfile.New(filepath.Join(t.TempDir(), "index.json")),
		assets.WithLogger(log.NewNop()),
		assets.WithGenerator(models.NewSeededGenerator(3, 4)),
	)
	tex, err := m.LoadTexture("MoleEnemy", "mole.png")
	require.NoError(t, err)
	fnt, err := m.LoadFont("Mono", "mono.ttf")
	require.NoError(t, err)

	p, err := New(
		&components.Sprite{TexKey: "MoleEnemy", UUID: tex, Alpha: 1},
		&components.Font{UUID: tex},
		&components.Audio{Controls: components.AudioControlMap{"theme": {UUID: 77, AudioKey: "Theme"}}},
	)
	require.NoError(t, err)

	missing := ResolveAssets(p, m)
	assert.Equal(t, []models.AssetRef{
		{Kind: models.KindAudio, UUID: 77, Key: "Theme"},
		{Kind: models.KindFont, UUID: tex},
	}, missing)

	p.Set(&components.Font{UUID: fnt})
	p.Remove(components.AudioTag)
	assert.Empty(t, ResolveAssets(p, m))
}
