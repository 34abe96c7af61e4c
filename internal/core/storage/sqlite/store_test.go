package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/assetkit/internal/core/models"
	"github.com/zeusync/assetkit/internal/core/storage/index"
	"github.com/zeusync/assetkit/internal/core/storage/interfaces"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "assets.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.Error(t, err)
}

func TestEmptyStoreIsNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, interfaces.ErrIndexNotFound)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var doc index.Document
	doc.Append(models.KindImage, index.Record{Name: "Hero", UUID: 42, Path: "hero.png"})
	doc.Append(models.KindImage, index.Record{Name: "Alpha", UUID: 3, Path: "alpha.png"})
	doc.Append(models.KindAudio, index.Record{Name: "Theme", UUID: ^models.UUID(0), Path: "theme.ogg"})
	doc.Append(models.KindFont, index.Record{Name: "Mono", UUID: 7, Path: "mono.ttf"})
	require.NoError(t, s.Save(ctx, doc))

	got, err := s.Load(ctx)
	require.NoError(t, err)

	want, _ := doc.Normalize()
	assert.Equal(t, want, got)
}

func TestSaveReplacesPreviousContent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var first index.Document
	first.Append(models.KindFont, index.Record{Name: "Mono", UUID: 7, Path: "mono.ttf"})
	require.NoError(t, s.Save(ctx, first))

	var second index.Document
	second.Append(models.KindImage, index.Record{Name: "Hero", UUID: 42, Path: "hero.png"})
	require.NoError(t, s.Save(ctx, second))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.Fonts)
	assert.Equal(t, second.Textures, got.Textures)
}
