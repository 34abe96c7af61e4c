package injector

import (
	"fmt"

	"github.com/google/wire"

	"github.com/zeusync/assetkit/internal/config"
	"github.com/zeusync/assetkit/internal/core/assets"
	"github.com/zeusync/assetkit/internal/core/components"
	"github.com/zeusync/assetkit/internal/core/events/bus"
	"github.com/zeusync/assetkit/internal/core/media"
	"github.com/zeusync/assetkit/internal/core/observability/log"
	"github.com/zeusync/assetkit/internal/core/prefab"
	"github.com/zeusync/assetkit/internal/core/serialization"
	"github.com/zeusync/assetkit/internal/core/storage/interfaces"
	"github.com/zeusync/assetkit/internal/core/storage/jsonfile"
	"github.com/zeusync/assetkit/internal/core/storage/sqlite"
)

// App is the wired object graph used by the CLI.
type App struct {
	Config  *config.Config
	Log     *log.Logger
	Store   interfaces.IndexStore
	Manager *assets.Manager
	Prefabs *prefab.Codec
	Images  *media.ImageLoader
	Fonts   *media.FontLoader
	Audio   *media.AudioBank
}

var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideStore,
	ProvideImageLoader,
	ProvideFontLoader,
	ProvideAudioBank,
	ProvideManager,
	ProvidePrefabCodec,
	bus.New,
	components.NewRegistry,
	wire.Struct(new(App), "*"),
)

func ProvideLogger(cfg *config.Config) *log.Logger {
	return log.NewWithFormat(log.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
}

// ProvideStore opens the configured index backend. The cleanup closes it.
func ProvideStore(cfg *config.Config) (interfaces.IndexStore, func(), error) {
	switch cfg.Index.Backend {
	case config.BackendSQLite:
		s, err := sqlite.Open(cfg.Index.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case config.BackendJSON:
		return jsonfile.New(cfg.Index.Path, jsonfile.WithIndent(cfg.Index.Indent)), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown index backend %q", config.ErrInvalid, cfg.Index.Backend)
	}
}

func ProvideImageLoader(l *log.Logger) *media.ImageLoader { return media.NewImageLoader(l) }
func ProvideFontLoader(l *log.Logger) *media.FontLoader   { return media.NewFontLoader(l) }
func ProvideAudioBank(l *log.Logger) *media.AudioBank     { return media.NewAudioBank(l) }

func ProvideManager(
	store interfaces.IndexStore,
	l *log.Logger,
	b bus.EventBus,
	images *media.ImageLoader,
	fonts *media.FontLoader,
	audio *media.AudioBank,
) *assets.Manager {
	return assets.NewManager(store,
		assets.WithLogger(l.With(log.String("component", "assets"))),
		assets.WithEventBus(b),
		assets.WithImageService(images),
		assets.WithFontService(fonts),
		assets.WithAudioService(audio),
	)
}

func ProvidePrefabCodec(reg *serialization.Registry, l *log.Logger) *prefab.Codec {
	return prefab.NewCodec(reg, l.With(log.String("component", "prefab")))
}
