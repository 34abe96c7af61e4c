package assets

// Handle is a kind-specific resource returned by an image or font service.
// It is owned by the registry entry that holds it.
type Handle any

// ImageService loads and releases image resources.
type ImageService interface {
	LoadImage(path string) (Handle, error)
	UnloadImage(h Handle)
}

// FontService loads and releases font resources.
type FontService interface {
	LoadFont(path string) (Handle, error)
	UnloadFont(h Handle)
}

// AudioService owns its own resource table keyed by display name; the
// registry only tracks which identifier maps to which name.
type AudioService interface {
	LoadAudio(name, path string) error
	UnloadAudio(name string)
}

type nopImages struct{}

func (nopImages) LoadImage(string) (Handle, error) { return nil, nil }
func (nopImages) UnloadImage(Handle)               {}

type nopFonts struct{}

func (nopFonts) LoadFont(string) (Handle, error) { return nil, nil }
func (nopFonts) UnloadFont(Handle)               {}

type nopAudio struct{}

func (nopAudio) LoadAudio(string, string) error { return nil }
func (nopAudio) UnloadAudio(string)             {}
