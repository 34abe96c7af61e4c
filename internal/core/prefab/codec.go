package prefab

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeusync/assetkit/internal/core/observability/log"
	"github.com/zeusync/assetkit/internal/core/serialization"
)

// Codec reads and writes prefab bundles and scenes through a component
// registry.
type Codec struct {
	reg *serialization.Registry
	log log.Log
}

func NewCodec(reg *serialization.Registry, l log.Log) *Codec {
	if l == nil {
		l = log.Provide()
	}
	return &Codec{reg: reg, log: l}
}

// Encode writes p as one object keyed by component tag.
func (c *Codec) Encode(p *Prefab) ([]byte, error) {
	obj, err := c.encodeObject(p)
	if err != nil {
		return nil, err
	}
	return indent(obj)
}

func (c *Codec) encodeObject(p *Prefab) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, comp := range p.Components() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(comp.TypeName())
		buf.Write(key)
		buf.WriteByte(':')
		data, err := c.reg.Serialize(comp)
		if err != nil {
			return nil, err
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Decode reads a prefab object. Entries whose tag is not registered, or whose
// record fails to decode, are logged and skipped; the remaining entries are
// still decoded. The returned error joins the skipped entries and is wrapped
// with ErrSkipped, while the prefab holds everything that decoded.
func (c *Codec) Decode(data []byte) (*Prefab, error) {
	members, err := readObject(data)
	if err != nil {
		c.log.Error("prefab is not a valid JSON object", log.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNotObject, err)
	}
	return c.decodeObject(members)
}

type member struct {
	tag string
	raw json.RawMessage
}

// readObject returns the members of a JSON object in document order.
func readObject(data []byte) ([]member, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("unexpected token %v", tok)
	}

	var members []member
	for dec.More() {
		if tok, err = dec.Token(); err != nil {
			return nil, err
		}
		tag, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("member %q: %w", tag, err)
		}
		members = append(members, member{tag: tag, raw: raw})
	}
	if _, err = dec.Token(); err != nil {
		return nil, err
	}
	if _, err = dec.Token(); err != io.EOF {
		return nil, errors.New("trailing data after object")
	}
	return members, nil
}

func (c *Codec) decodeObject(members []member) (*Prefab, error) {
	p, _ := New()
	var errs []error
	for _, m := range members {
		comp, err := c.reg.Deserialize(m.tag, m.raw)
		if err != nil {
			if errors.Is(err, serialization.ErrUnknownTag) {
				c.log.Error("unknown component type", log.String("type", m.tag))
			} else {
				c.log.Error("failed to decode component", log.String("type", m.tag), log.Error(err))
			}
			errs = append(errs, fmt.Errorf("%w: %w", ErrSkipped, err))
			continue
		}
		p.Set(comp)
	}
	return p, errors.Join(errs...)
}

// EncodeScene writes prefabs as an array of prefab objects.
func (c *Codec) EncodeScene(scene []*Prefab) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, p := range scene {
		if i > 0 {
			buf.WriteByte(',')
		}
		obj, err := c.encodeObject(p)
		if err != nil {
			return nil, fmt.Errorf("scene entity %d: %w", i, err)
		}
		buf.Write(obj)
	}
	buf.WriteByte(']')
	return indent(buf.Bytes())
}

// DecodeScene reads an array of prefab objects. Element errors follow the
// Decode rules; an element that is not an object is skipped.
func (c *Codec) DecodeScene(data []byte) ([]*Prefab, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Error("scene is not a valid JSON array", log.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNotArray, err)
	}

	scene := make([]*Prefab, 0, len(items))
	var errs []error
	for i, item := range items {
		members, err := readObject(item)
		if err != nil {
			c.log.Error("scene entity is not an object", log.Int("index", i))
			errs = append(errs, fmt.Errorf("%w: entity %d: %w", ErrSkipped, i, ErrNotObject))
			continue
		}
		p, err := c.decodeObject(members)
		if err != nil {
			errs = append(errs, fmt.Errorf("entity %d: %w", i, err))
		}
		scene = append(scene, p)
	}
	return scene, errors.Join(errs...)
}

func (c *Codec) LoadFile(path string) (*Prefab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		c.log.Error("could not open prefab file", log.String("path", path), log.Error(err))
		return nil, err
	}
	return c.Decode(data)
}

func (c *Codec) SaveFile(path string, p *Prefab) error {
	data, err := c.Encode(p)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

func (c *Codec) LoadScene(path string) ([]*Prefab, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		c.log.Error("could not open scene file", log.String("path", path), log.Error(err))
		return nil, err
	}
	return c.DecodeScene(data)
}

func (c *Codec) SaveScene(path string, scene []*Prefab) error {
	data, err := c.EncodeScene(scene)
	if err != nil {
		return err
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func indent(data []byte) ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "    "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
