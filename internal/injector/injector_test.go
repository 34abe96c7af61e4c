package injector

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/assetkit/internal/config"
	"github.com/zeusync/assetkit/internal/core/models"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg, err := config.LoadOrDefault("")
	require.NoError(t, err)
	cfg.Index.Backend = backend
	cfg.Index.Path = filepath.Join(dir, "assets_serialized.json")
	cfg.Index.SQLitePath = filepath.Join(dir, "assets.db")
	cfg.Logging.Level = "error"
	return cfg
}

func TestInitializeApp(t *testing.T) {
	for _, backend := range []string{config.BackendJSON, config.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			app, cleanup, err := InitializeApp(testConfig(t, backend))
			require.NoError(t, err)
			defer cleanup()

			require.NoError(t, app.Manager.Initialize(context.Background()))
			assert.Equal(t, 0, app.Manager.Len(models.KindImage))
			assert.NotNil(t, app.Prefabs)
			assert.Contains(t, app.Store.Location(), filepath.Dir(app.Config.Index.Path))
		})
	}
}

func TestProvideStoreRejectsUnknownBackend(t *testing.T) {
	cfg := testConfig(t, config.BackendJSON)
	cfg.Index.Backend = "redis"
	_, _, err := ProvideStore(cfg)
	assert.ErrorIs(t, err, config.ErrInvalid)
}
