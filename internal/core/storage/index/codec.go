package index

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/zeusync/assetkit/internal/core/models"
)

var (
	ErrMalformed = errors.New("malformed asset index")
)

const (
	keyUUID     = "UUID"
	keyFilepath = "filepath"
)

// Marshal encodes doc in the asset index format. Sections are written in
// textures, audios, fonts order and records in Normalize order, so equal
// documents always produce identical bytes.
func Marshal(doc Document, indent bool) ([]byte, error) {
	doc, _ = doc.Normalize()

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kind := range models.Kinds {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, kind.Section()); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		for j, rec := range doc.Section(kind) {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(&buf, rec.Name); err != nil {
				return nil, err
			}
			buf.WriteString(`:{"` + keyUUID + `":`)
			buf.WriteString(strconv.FormatUint(uint64(rec.UUID), 10))
			buf.WriteString(`,"` + keyFilepath + `":`)
			if err := writeString(&buf, rec.Path); err != nil {
				return nil, err
			}
			buf.WriteByte('}')
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	if !indent {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "    "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// Unmarshal decodes an asset index. Sections are decoded in textures,
// audios, fonts order; a missing or null section means no assets of that
// kind. When a section holds a malformed entry, decoding stops and the
// sections decoded so far are returned together with an ErrMalformed error.
func Unmarshal(data []byte) (Document, error) {
	var doc Document

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return doc, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if top == nil {
		return doc, fmt.Errorf("%w: top level is not an object", ErrMalformed)
	}

	for _, kind := range models.Kinds {
		raw, ok := top[kind.Section()]
		if !ok {
			continue
		}
		recs, err := decodeSection(raw)
		if err != nil {
			return doc, fmt.Errorf("%w: section %q: %v", ErrMalformed, kind.Section(), err)
		}
		doc.set(kind, recs)
	}
	return doc, nil
}

type entry struct {
	UUID     *json.Number `json:"UUID"`
	Filepath *string      `json:"filepath"`
}

// decodeSection walks the object token by token to keep document order,
// which a map decode would lose.
func decodeSection(raw json.RawMessage) ([]Record, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("section is not an object")
	}

	var recs []Record
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}

		var value json.RawMessage
		if err = dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}
		rec, err := decodeEntry(name, value)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if _, err = dec.Token(); err != nil {
		return nil, err
	}
	return recs, nil
}

func decodeEntry(name string, value json.RawMessage) (Record, error) {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Record{}, fmt.Errorf("entry %q is not an object", name)
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	var e entry
	if err := dec.Decode(&e); err != nil {
		return Record{}, fmt.Errorf("entry %q: %w", name, err)
	}
	if e.UUID == nil {
		return Record{}, fmt.Errorf("entry %q: missing %s", name, keyUUID)
	}
	if e.Filepath == nil {
		return Record{}, fmt.Errorf("entry %q: missing %s", name, keyFilepath)
	}
	id, err := strconv.ParseUint(e.UUID.String(), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("entry %q: %s is not an unsigned 64-bit integer", name, keyUUID)
	}
	return Record{Name: name, UUID: models.UUID(id), Path: *e.Filepath}, nil
}
