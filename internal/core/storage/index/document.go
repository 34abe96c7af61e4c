// Package index implements the on-disk format of the asset index: one JSON
// object per asset kind under the "textures", "audios" and "fonts" keys, each
// mapping display name to {"UUID", "filepath"}.
package index

import (
	"sort"

	"github.com/zeusync/assetkit/internal/core/models"
)

// Record is one persisted asset.
type Record struct {
	Name string
	UUID models.UUID
	Path string
}

// Document holds the records of every kind, in section order.
type Document struct {
	Textures []Record
	Audios   []Record
	Fonts    []Record
}

// Section returns the records stored for kind.
func (d *Document) Section(kind models.Kind) []Record {
	switch kind {
	case models.KindImage:
		return d.Textures
	case models.KindAudio:
		return d.Audios
	case models.KindFont:
		return d.Fonts
	default:
		return nil
	}
}

// Append adds a record to the section of kind. Unknown kinds are ignored.
func (d *Document) Append(kind models.Kind, rec Record) {
	switch kind {
	case models.KindImage:
		d.Textures = append(d.Textures, rec)
	case models.KindAudio:
		d.Audios = append(d.Audios, rec)
	case models.KindFont:
		d.Fonts = append(d.Fonts, rec)
	}
}

func (d *Document) set(kind models.Kind, recs []Record) {
	switch kind {
	case models.KindImage:
		d.Textures = recs
	case models.KindAudio:
		d.Audios = recs
	case models.KindFont:
		d.Fonts = recs
	}
}

// Len returns the total number of records.
func (d *Document) Len() int {
	return len(d.Textures) + len(d.Audios) + len(d.Fonts)
}

// Shadowed is a record that cannot be persisted because a later record of the
// same kind uses the same display name.
type Shadowed struct {
	Kind   models.Kind
	Record Record
	By     models.UUID
}

// Normalize sorts every section by name then UUID and drops records whose
// name repeats within a kind, keeping the last one. The dropped records are
// returned so callers can report them.
func (d Document) Normalize() (Document, []Shadowed) {
	var (
		out     Document
		dropped []Shadowed
	)
	for _, kind := range models.Kinds {
		src := d.Section(kind)
		recs := make([]Record, len(src))
		copy(recs, src)
		sort.SliceStable(recs, func(i, j int) bool {
			if recs[i].Name != recs[j].Name {
				return recs[i].Name < recs[j].Name
			}
			return recs[i].UUID < recs[j].UUID
		})

		kept := make([]Record, 0, len(recs))
		for i := 0; i < len(recs); {
			j := i
			for j+1 < len(recs) && recs[j+1].Name == recs[i].Name {
				j++
			}
			for _, rec := range recs[i:j] {
				dropped = append(dropped, Shadowed{Kind: kind, Record: rec, By: recs[j].UUID})
			}
			kept = append(kept, recs[j])
			i = j + 1
		}
		out.set(kind, kept)
	}
	return out, dropped
}
