package querycache

import (
	"encoding/json"
	"strings"
)

// Key identifies a cached query: resource type, access mode and qualifiers,
// e.g. ("customers", "list", params) or ("customers", "detail", id,
// "contacts"). Equality is structural: filter objects canonicalize to JSON
// with sorted keys and omitted zero values, so two parameter sets with the
// same effective content collide on the same slot regardless of how they
// were built.
type Key struct {
	segments []string
}

// NewKey canonicalizes each part into a key segment. Strings pass through;
// anything else round-trips through JSON, which sorts object keys and drops
// omitempty zero values.
func NewKey(parts ...any) Key {
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		segs = append(segs, canonicalize(p))
	}
	return Key{segments: segs}
}

func canonicalize(part any) string {
	switch t := part.(type) {
	case nil:
		return "null"
	case string:
		return t
	default:
		b, err := json.Marshal(part)
		if err != nil {
			return "<unencodable>"
		}
		// Re-marshal through a generic tree: map keys come out sorted, so
		// struct-vs-map and insertion-order differences disappear.
		var tree any
		if err := json.Unmarshal(b, &tree); err != nil {
			return string(b)
		}
		cb, err := json.Marshal(tree)
		if err != nil {
			return string(b)
		}
		return string(cb)
	}
}

// sep never occurs in canonical JSON or resource names.
const sep = "\x1f"

// Encode returns the flat slot identifier for map storage.
func (k Key) Encode() string { return strings.Join(k.segments, sep) }

func (k Key) String() string { return strings.Join(k.segments, "/") }

// HasPrefix reports whether k starts with the given prefix key, segment by
// segment. Invalidating ("customers", "list") therefore reaches every
// specific list key no matter its filters.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix.segments) > len(k.segments) {
		return false
	}
	for i, s := range prefix.segments {
		if k.segments[i] != s {
			return false
		}
	}
	return true
}
