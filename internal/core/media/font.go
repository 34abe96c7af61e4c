package media

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/image/font/sfnt"

	"github.com/zeusync/assetkit/internal/core/assets"
	"github.com/zeusync/assetkit/internal/core/observability/log"
)

var _ assets.FontService = (*FontLoader)(nil)

// Font is the handle returned by FontLoader.
type Font struct {
	Path   string
	Family string
	Glyphs int
}

// FontLoader parses TrueType and OpenType files with sfnt.
type FontLoader struct {
	log  log.Log
	mu   sync.Mutex
	live map[*Font]struct{}
}

func NewFontLoader(l log.Log) *FontLoader {
	return &FontLoader{log: l, live: make(map[*Font]struct{})}
}

func (l *FontLoader) LoadFont(path string) (assets.Handle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	parsed, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
	}

	font := &Font{Path: path, Glyphs: parsed.NumGlyphs()}
	var buf sfnt.Buffer
	if family, err := parsed.Name(&buf, sfnt.NameIDFamily); err == nil {
		font.Family = family
	}

	l.mu.Lock()
	l.live[font] = struct{}{}
	l.mu.Unlock()

	l.log.Debug("font read", log.String("path", path), log.String("family", font.Family), log.Int("glyphs", font.Glyphs))
	return font, nil
}

func (l *FontLoader) UnloadFont(h assets.Handle) {
	font, ok := h.(*Font)
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, live := l.live[font]; !ok || !live {
		l.log.Warn("unload of unknown font handle", log.Error(ErrForeignHandle))
		return
	}
	delete(l.live, font)
}

func (l *FontLoader) Live() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.live)
}
