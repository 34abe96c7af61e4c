package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Index   IndexConfig   `toml:"index" yaml:"index"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	Prefab  PrefabConfig  `toml:"prefab" yaml:"prefab"`
	Verify  VerifyConfig  `toml:"verify" yaml:"verify"`
}

type IndexConfig struct {
	Path       string `toml:"path" yaml:"path" env:"ASSETKIT_INDEX_PATH"`
	Backend    string `toml:"backend" yaml:"backend" env:"ASSETKIT_BACKEND"` // "json" or "sqlite"
	SQLitePath string `toml:"sqlite_path" yaml:"sqlite_path" env:"ASSETKIT_SQLITE_PATH"`
	Indent     bool   `toml:"indent" yaml:"indent"`
}

type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level" env:"ASSETKIT_LOG_LEVEL"`
	Format string `toml:"format" yaml:"format" env:"ASSETKIT_LOG_FORMAT"` // "json" or "console"
}

type PrefabConfig struct {
	Dir string `toml:"dir" yaml:"dir" env:"ASSETKIT_PREFAB_DIR"`
}

type VerifyConfig struct {
	Workers int `toml:"workers" yaml:"workers"`
}

// Load reads a YAML or TOML file, chosen by extension, over the defaults and
// then applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalid, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return finish(cfg)
}

// LoadOrDefault is Load, except that an empty path or a missing file yields
// the defaults with environment overrides.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		cfg, err := Load(path)
		if err == nil || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}
	return finish(defaults())
}

func finish(cfg *Config) (*Config, error) {
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Index.Backend {
	case BackendJSON:
		if c.Index.Path == "" {
			return fmt.Errorf("%w: index.path is empty", ErrInvalid)
		}
	case BackendSQLite:
		if c.Index.SQLitePath == "" {
			return fmt.Errorf("%w: index.sqlite_path is empty", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown index backend %q", ErrInvalid, c.Index.Backend)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.Logging.Format)
	}
	if c.Verify.Workers < 0 {
		return fmt.Errorf("%w: verify.workers is negative", ErrInvalid)
	}
	return nil
}

func defaults() *Config {
	return &Config{
		Index: IndexConfig{
			Path:       "./Json/assets_serialized.json",
			Backend:    BackendJSON,
			SQLitePath: "./Json/assets.db",
			Indent:     true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Prefab: PrefabConfig{
			Dir: "./Json",
		},
		Verify: VerifyConfig{
			Workers: 8,
		},
	}
}
