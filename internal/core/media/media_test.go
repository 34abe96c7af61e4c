package media

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zeusync/assetkit/internal/core/observability/log"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func wavFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	enc := wav.NewEncoder(f, 22050, 16, 2, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 22050},
		Data:           make([]int, 4410),
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

func TestImageLoader(t *testing.T) {
	l := NewImageLoader(log.NewNop())

	h, err := l.LoadImage(writeFile(t, "hero.png", pngBytes(t, 16, 8)))
	require.NoError(t, err)
	img := h.(*Image)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, 16, img.Width)
	assert.Equal(t, 8, img.Height)
	assert.Equal(t, 1, l.Live())

	l.UnloadImage(h)
	assert.Equal(t, 0, l.Live())
	l.UnloadImage(h)
	l.UnloadImage("not an image")
	assert.Equal(t, 0, l.Live())

	_, err = l.LoadImage(writeFile(t, "fake.png", []byte("not a png")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = l.LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFontLoader(t *testing.T) {
	l := NewFontLoader(log.NewNop())

	h, err := l.LoadFont(writeFile(t, "goregular.ttf", goregular.TTF))
	require.NoError(t, err)
	font := h.(*Font)
	assert.Equal(t, "Go", font.Family)
	assert.Positive(t, font.Glyphs)
	assert.Equal(t, 1, l.Live())

	l.UnloadFont(h)
	assert.Equal(t, 0, l.Live())

	_, err = l.LoadFont(writeFile(t, "bad.ttf", []byte("wOFF0000000000000")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = l.LoadFont(writeFile(t, "short.ttf", goregular.TTF[:512]))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	// A valid version word and table count whose record points outside the file.
	bogus := append([]byte{0, 1, 0, 0, 0, 1}, make([]byte, 6)...)
	bogus = append(bogus, "zzzzAAAABBBBCCCC"...)
	_, err = l.LoadFont(writeFile(t, "bogus.ttf", bogus))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Equal(t, 0, l.Live())
}

func TestAudioBank(t *testing.T) {
	b := NewAudioBank(log.NewNop())

	theme := wavFile(t, "theme.wav")
	ogg := append([]byte("OggS"), make([]byte, 24)...)

	require.NoError(t, b.LoadAudio("Theme", theme))
	require.NoError(t, b.LoadAudio("Jump", writeFile(t, "jump.ogg", ogg)))
	assert.Equal(t, []string{"Jump", "Theme"}, b.Names())

	clip, ok := b.Clip("Theme")
	require.True(t, ok)
	assert.Equal(t, "wav", clip.Container)
	assert.Equal(t, 22050, clip.SampleRate)
	assert.Equal(t, 2, clip.Channels)
	assert.Equal(t, 16, clip.BitDepth)
	info, err := os.Stat(theme)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), clip.Size)

	b.UnloadAudio("Theme")
	b.UnloadAudio("Theme")
	_, ok = b.Clip("Theme")
	assert.False(t, ok)

	err = b.LoadAudio("Bad", writeFile(t, "bad.mp3", []byte("ID3\x04 not audio")))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	hollow := append([]byte("RIFF\x24\x00\x00\x00WAVE"), make([]byte, 32)...)
	err = b.LoadAudio("Hollow", writeFile(t, "hollow.wav", hollow))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, ok = b.Clip("Hollow")
	assert.False(t, ok)
}
