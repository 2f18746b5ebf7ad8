// Package kvtree defines the nested key-value structure produced by XML
// extraction and refined by the transform pipeline. A node is always one of
// three shapes: a Dict, a List, or a String leaf.
package kvtree

import (
	"bytes"
	"encoding/json"
)

// Value is a node in the extracted structure. Only *Dict, List and String
// implement it; no other leaf kinds are representable.
type Value interface {
	isValue()
}

// String is a leaf: the trimmed text content of an element.
type String string

// List holds repeated values. Extraction never produces one, but every
// transform accepts lists so callers may feed richer structures through the
// pipeline.
type List []Value

// Dict is a string-keyed mapping that preserves insertion order for display.
// Setting an existing key replaces its value but keeps the key's original
// position.
type Dict struct {
	keys  []string
	items map[string]Value
}

func (String) isValue() {}
func (List) isValue()   {}
func (*Dict) isValue()  {}

// NewDict returns an empty ordered dictionary.
func NewDict() *Dict {
	return &Dict{items: make(map[string]Value)}
}

// Set stores v under key, appending the key if it is new.
func (d *Dict) Set(key string, v Value) {
	if _, exists := d.items[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.items[key] = v
}

// Get returns the value stored under key.
func (d *Dict) Get(key string) (Value, bool) {
	v, ok := d.items[key]
	return v, ok
}

// Has reports whether key is present.
func (d *Dict) Has(key string) bool {
	_, ok := d.items[key]
	return ok
}

// Delete removes key if present.
func (d *Dict) Delete(key string) {
	if _, ok := d.items[key]; !ok {
		return
	}
	delete(d.items, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// MarshalJSON emits the entries as a JSON object in insertion order.
func (d *Dict) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(d.items[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
