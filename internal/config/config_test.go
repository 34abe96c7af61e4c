package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, "./Json/assets_serialized.json", cfg.Index.Path)
	assert.Equal(t, BackendJSON, cfg.Index.Backend)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "assetkit.yaml", `
index:
  path: data/index.json
logging:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "data/index.json", cfg.Index.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, 8, cfg.Verify.Workers)
}

func TestLoadTOML(t *testing.T) {
	path := write(t, "assetkit.toml", `
[index]
backend = "sqlite"
sqlite_path = "assets.db"

[verify]
workers = 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Index.Backend)
	assert.Equal(t, "assets.db", cfg.Index.SQLitePath)
	assert.Equal(t, 2, cfg.Verify.Workers)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ASSETKIT_INDEX_PATH", "/tmp/override.json")
	t.Setenv("ASSETKIT_LOG_FORMAT", "json")
	t.Setenv("ASSETKIT_PREFAB_DIR", "prefabs")

	path := write(t, "assetkit.yml", "index:\n  path: from-file.json\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.json", cfg.Index.Path)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "prefabs", cfg.Prefab.Dir)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(write(t, "assetkit.ini", "x=1"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(write(t, "bad.toml", "[index\n"))
	assert.Error(t, err)

	_, err = Load(write(t, "bad.yaml", "index:\n  backend: redis\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, BackendJSON, cfg.Index.Backend)
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	cfg.Logging.Format = "xml"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = defaults()
	cfg.Index.Backend = BackendSQLite
	cfg.Index.SQLitePath = ""
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = defaults()
	cfg.Verify.Workers = -1
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}
