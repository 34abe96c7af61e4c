package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/go-audio/wav"

	"github.com/zeusync/assetkit/internal/core/assets"
	"github.com/zeusync/assetkit/internal/core/observability/log"
)

var _ assets.AudioService = (*AudioBank)(nil)

// Clip describes an audio source held by the bank.
type Clip struct {
	Name      string
	Path      string
	Container string
	Size      int64

	// Stream format, known for WAV only.
	SampleRate int
	Channels   int
	BitDepth   int
}

// AudioBank owns audio clips keyed by display name. Loading a name that is
// already present replaces the clip.
type AudioBank struct {
	log   log.Log
	mu    sync.RWMutex
	clips map[string]Clip
}

func NewAudioBank(l log.Log) *AudioBank {
	return &AudioBank{log: l, clips: make(map[string]Clip)}
}

func (b *AudioBank) LoadAudio(name, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	clip, err := probeAudio(f)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err)
	}
	info, err := f.Stat()
	if err != nil {
		return err
	}
	clip.Name, clip.Path, clip.Size = name, path, info.Size()

	b.mu.Lock()
	if _, ok := b.clips[name]; ok {
		b.log.Warn("audio clip replaced", log.String("name", name), log.String("path", path))
	}
	b.clips[name] = clip
	b.mu.Unlock()
	return nil
}

func (b *AudioBank) UnloadAudio(name string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.clips[name]; !ok {
		b.log.Debug("audio clip not in bank", log.String("name", name))
		return
	}
	delete(b.clips, name)
}

func (b *AudioBank) Clip(name string) (Clip, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	c, ok := b.clips[name]
	return c, ok
}

// Names returns the clip names in lexical order.
func (b *AudioBank) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]string, 0, len(b.clips))
	for name := range b.clips {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// probeAudio validates WAV streams with the wav decoder. Ogg is accepted on
// its capture pattern.
func probeAudio(r io.ReadSeeker) (Clip, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Clip{}, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Clip{}, err
	}

	switch string(magic[:]) {
	case "RIFF":
		dec := wav.NewDecoder(r)
		if !dec.IsValidFile() {
			return Clip{}, errors.New("invalid wav stream")
		}
		return Clip{
			Container:  "wav",
			SampleRate: int(dec.SampleRate),
			Channels:   int(dec.NumChans),
			BitDepth:   int(dec.BitDepth),
		}, nil
	case "OggS":
		return Clip{Container: "ogg"}, nil
	default:
		return Clip{}, fmt.Errorf("unknown container %q", magic[:])
	}
}
