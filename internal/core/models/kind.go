package models

import (
	"path/filepath"
	"strings"
)

// Kind classifies a loaded resource.
type Kind uint8

const (
	KindImage Kind = iota
	KindAudio
	KindFont
	KindUnknown
)

// Kinds lists the storable kinds in persistence order.
var Kinds = [...]Kind{KindImage, KindAudio, KindFont}

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	case KindFont:
		return "font"
	default:
		return "unknown"
	}
}

// Section returns the top-level key of the asset index holding this kind.
func (k Kind) Section() string {
	switch k {
	case KindImage:
		return "textures"
	case KindAudio:
		return "audios"
	case KindFont:
		return "fonts"
	default:
		return ""
	}
}

// Valid reports whether k names a storable kind.
func (k Kind) Valid() bool { return k < KindUnknown }

// ParseKind accepts either the kind name or its index section key.
func ParseKind(s string) Kind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "image", "texture", "textures":
		return KindImage
	case "audio", "audios":
		return KindAudio
	case "font", "fonts":
		return KindFont
	default:
		return KindUnknown
	}
}

// DetermineKind infers the kind from the file extension, case-insensitively.
func DetermineKind(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return KindImage
	case ".wav", ".ogg":
		return KindAudio
	case ".ttf":
		return KindFont
	default:
		return KindUnknown
	}
}

// ExtractName returns the file name of path without its directory and extension.
// Both '/' and '\' are treated as separators.
func ExtractName(path string) string {
	base := path
	if i := strings.LastIndexAny(base, `/\`); i >= 0 {
		base = base[i+1:]
	}
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	return base
}
