// Package transform implements the structural transforms applied to an
// extracted key-value tree: key removal, key flattening and key renaming.
// Every transform is a pure function over kvtree.Value; callers replace their
// structure with the returned one.
package transform

import (
	"strings"

	"github.com/dgallion1/xmlgest/internal/kvtree"
)

// Default keys for the flatten wrapper pattern.
const (
	DefaultNestedKey = "Name"
	DefaultValueKey  = "Value"
)

// RemoveKeys returns a copy of v with every entry whose key appears in keys
// removed, at every nesting depth. Matching is exact and case-sensitive.
// Keys that never occur are ignored.
func RemoveKeys(v kvtree.Value, keys []string) kvtree.Value {
	drop := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	return removeKeys(v, drop)
}

func removeKeys(v kvtree.Value, drop map[string]struct{}) kvtree.Value {
	switch val := v.(type) {
	case *kvtree.Dict:
		out := kvtree.NewDict()
		for _, k := range val.Keys() {
			if _, skip := drop[k]; skip {
				continue
			}
			child, _ := val.Get(k)
			out.Set(k, removeKeys(child, drop))
		}
		return out
	case kvtree.List:
		out := make(kvtree.List, 0, len(val))
		for _, item := range val {
			out = append(out, removeKeys(item, drop))
		}
		return out
	default:
		return v
	}
}

// FlattenNestedKeys collapses the wrapper pattern where a child dict names
// itself under nestedKey: the name is promoted to become the parent key. If
// the remainder is a single valueKey entry the whole dict collapses to that
// entry's value. Promoted entries are not descended into further; sibling
// entries promoting to the same key follow last-write-wins. Empty arguments
// select the "Name"/"Value" defaults.
//
// A nestedKey whose value is not a string does not match the pattern; the
// pair is recursed into normally.
func FlattenNestedKeys(v kvtree.Value, nestedKey, valueKey string) kvtree.Value {
	if nestedKey == "" {
		nestedKey = DefaultNestedKey
	}
	if valueKey == "" {
		valueKey = DefaultValueKey
	}
	return flatten(v, nestedKey, valueKey)
}

func flatten(v kvtree.Value, nestedKey, valueKey string) kvtree.Value {
	switch val := v.(type) {
	case *kvtree.Dict:
		out := kvtree.NewDict()
		for _, k := range val.Keys() {
			child, _ := val.Get(k)
			if sub, ok := child.(*kvtree.Dict); ok {
				if name, ok := promotedKey(sub, nestedKey); ok {
					rest := withoutKey(sub, nestedKey)
					if rest.Len() == 1 {
						if only, ok := rest.Get(valueKey); ok {
							out.Set(name, only)
							continue
						}
					}
					out.Set(name, rest)
					continue
				}
			}
			out.Set(k, flatten(child, nestedKey, valueKey))
		}
		return out
	case kvtree.List:
		out := make(kvtree.List, 0, len(val))
		for _, item := range val {
			out = append(out, flatten(item, nestedKey, valueKey))
		}
		return out
	default:
		return v
	}
}

func promotedKey(d *kvtree.Dict, nestedKey string) (string, bool) {
	v, ok := d.Get(nestedKey)
	if !ok {
		return "", false
	}
	s, ok := v.(kvtree.String)
	if !ok {
		return "", false
	}
	return string(s), true
}

func withoutKey(d *kvtree.Dict, key string) *kvtree.Dict {
	out := kvtree.NewDict()
	for _, k := range d.Keys() {
		if k == key {
			continue
		}
		v, _ := d.Get(k)
		out.Set(k, v)
	}
	return out
}

// RenameKeys rewrites dict keys through table, at every depth. Lookup is by
// the lowercased key, so table keys are expected lowercase. When a
// translation occurs the casing function is applied to the replacement; keys
// without a translation keep their original form untouched. A nil casing
// leaves translated keys as the table spells them.
func RenameKeys(v kvtree.Value, table map[string]string, casing Casing) kvtree.Value {
	switch val := v.(type) {
	case *kvtree.Dict:
		out := kvtree.NewDict()
		for _, k := range val.Keys() {
			child, _ := val.Get(k)
			key := k
			if mapped, ok := table[strings.ToLower(k)]; ok {
				key = mapped
				if casing != nil {
					key = casing(key)
				}
			}
			out.Set(key, RenameKeys(child, table, casing))
		}
		return out
	case kvtree.List:
		out := make(kvtree.List, 0, len(val))
		for _, item := range val {
			out = append(out, RenameKeys(item, table, casing))
		}
		return out
	default:
		return v
	}
}
