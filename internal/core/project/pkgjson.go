package project

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nitro-tools/create-nitro-project/internal/defs"
)

// manifestEntry is one key/value pair merged into a manifest section.
type manifestEntry struct {
	Key   string
	Value string
}

// manifestPatch merges entries into the object stored under Section,
// creating the section when it is absent.
type manifestPatch struct {
	Section string
	Entries []manifestEntry
}

// orderedObject is a JSON object that keeps the order of its keys across a
// decode/encode round trip. Values are kept as raw JSON.
type orderedObject struct {
	keys   []string
	values map[string]json.RawMessage
}

func newOrderedObject() *orderedObject {
	return &orderedObject{values: make(map[string]json.RawMessage)}
}

// set replaces the value of an existing key in place or appends a new key.
func (o *orderedObject) set(key string, value json.RawMessage) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *orderedObject) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("%w: expected object", ErrInvalidManifest)
	}

	o.keys = o.keys[:0]
	o.values = make(map[string]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("%w: expected object key", ErrInvalidManifest)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		o.set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data after object", ErrInvalidManifest)
	}
	return nil
}

// MarshalJSON implements json.Marshaler. The output is compact.
func (o *orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalNoEscape(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(o.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape encodes v without HTML escaping, so values such as
// "<4.0.0" survive unchanged.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// patchManifest applies patches to the package.json at path and rewrites it
// with two-space indentation. Existing keys keep their position; new keys
// are appended. A missing file reports false and is not an error.
func patchManifest(path string, patches ...manifestPatch) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read manifest: %w", err)
	}

	root := newOrderedObject()
	if err := json.Unmarshal(data, root); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, path, err)
	}

	for _, p := range patches {
		section := newOrderedObject()
		if raw, ok := root.values[p.Section]; ok && !bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			if err := json.Unmarshal(raw, section); err != nil {
				return false, fmt.Errorf("%w: %s: section %q: %v", ErrInvalidManifest, path, p.Section, err)
			}
		}
		for _, e := range p.Entries {
			value, err := marshalNoEscape(e.Value)
			if err != nil {
				return false, err
			}
			section.set(e.Key, value)
		}
		encoded, err := section.MarshalJSON()
		if err != nil {
			return false, err
		}
		root.set(p.Section, encoded)
	}

	compact, err := root.MarshalJSON()
	if err != nil {
		return false, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", "  "); err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, path, err)
	}
	out.WriteByte('\n')

	if err := os.WriteFile(path, out.Bytes(), defs.FilePerm); err != nil {
		return false, fmt.Errorf("write manifest: %w", err)
	}
	return true, nil
}
