package media

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"sync"

	"github.com/zeusync/assetkit/internal/core/assets"
	"github.com/zeusync/assetkit/internal/core/observability/log"
)

var _ assets.ImageService = (*ImageLoader)(nil)

// Image is the handle returned by ImageLoader. Only the header is decoded.
type Image struct {
	Path   string
	Format string
	Width  int
	Height int
}

// ImageLoader decodes image headers and tracks the handles it issued.
type ImageLoader struct {
	log  log.Log
	mu   sync.Mutex
	live map[*Image]struct{}
}

func NewImageLoader(l log.Log) *ImageLoader {
	return &ImageLoader{log: l, live: make(map[*Image]struct{})}
}

func (l *ImageLoader) LoadImage(path string) (assets.Handle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
	}

	img := &Image{Path: path, Format: format, Width: cfg.Width, Height: cfg.Height}
	l.mu.Lock()
	l.live[img] = struct{}{}
	l.mu.Unlock()

	l.log.Debug("image decoded", log.String("path", path), log.Int("width", cfg.Width), log.Int("height", cfg.Height))
	return img, nil
}

func (l *ImageLoader) UnloadImage(h assets.Handle) {
	img, ok := h.(*Image)
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, live := l.live[img]; !ok || !live {
		l.log.Warn("unload of unknown image handle", log.Error(ErrForeignHandle))
		return
	}
	delete(l.live, img)
}

// Live returns the number of images loaded and not yet released.
func (l *ImageLoader) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}
