package model

import (
	yaml "gopkg.in/yaml.v2"
)

// Names of the attributes the engine assigns or inspects itself. The
// rule tables carry many more keys, which flow through untouched.
const (
	AttrTrack      = "track"
	AttrType       = "type"
	AttrParent     = "parent"
	AttrBigDataURL = "bigDataUrl"
	AttrShortLabel = "shortLabel"
	AttrLongLabel  = "longLabel"
	AttrColor      = "color"
)

// Attribute is a single key/value pair of a track or container entry.
type Attribute struct {
	Key   string
	Value string
}

type attrSlot struct {
	key   string
	value string
	set   bool
}

// AttributeMap is the ordered set of trackDb attributes owned by one
// container or track. Key order is insertion order: templates declare
// their keys up front, later Set calls fill slots in place, unknown keys
// append. A declared but never set slot stays out of any output, which
// is how root-adjacent entries omit their parent link without losing the
// uniform map shape.
type AttributeMap struct {
	slots []attrSlot
}

// NewAttributeMap builds an empty attribute map.
func NewAttributeMap() *AttributeMap {
	return &AttributeMap{}
}

// Declare appends placeholder slots for the given keys, keeping their
// relative position for later Set calls. Keys already present are left
// alone.
func (m *AttributeMap) Declare(keys ...string) *AttributeMap {
	for _, key := range keys {
		if m.index(key) < 0 {
			m.slots = append(m.slots, attrSlot{key: key})
		}
	}
	return m
}

// Set assigns a value to a key, in place when the key is known, appended
// otherwise.
func (m *AttributeMap) Set(key, value string) *AttributeMap {
	if i := m.index(key); i >= 0 {
		m.slots[i].value = value
		m.slots[i].set = true
		return m
	}
	m.slots = append(m.slots, attrSlot{key: key, value: value, set: true})
	return m
}

// Apply sets every pair in order, the layering primitive used to stack
// templates and overrides.
func (m *AttributeMap) Apply(attrs []Attribute) *AttributeMap {
	for _, a := range attrs {
		m.Set(a.Key, a.Value)
	}
	return m
}

// Get returns the value assigned to key. Declared-only slots report as
// absent.
func (m *AttributeMap) Get(key string) (string, bool) {
	if i := m.index(key); i >= 0 && m.slots[i].set {
		return m.slots[i].value, true
	}
	return "", false
}

// Has tells whether key holds a value.
func (m *AttributeMap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Len counts the assigned attributes.
func (m *AttributeMap) Len() int {
	n := 0
	for _, s := range m.slots {
		if s.set {
			n++
		}
	}
	return n
}

// Attributes lists the assigned attributes in insertion order.
func (m *AttributeMap) Attributes() []Attribute {
	attrs := make([]Attribute, 0, len(m.slots))
	for _, s := range m.slots {
		if s.set {
			attrs = append(attrs, Attribute{Key: s.key, Value: s.value})
		}
	}
	return attrs
}

func (m *AttributeMap) index(key string) int {
	for i := range m.slots {
		if m.slots[i].key == key {
			return i
		}
	}
	return -1
}

// MarshalYAML renders the assigned attributes as an order-preserving
// mapping, so dump files read in the same order trackDb lines are
// emitted.
func (m *AttributeMap) MarshalYAML() (interface{}, error) {
	doc := make(yaml.MapSlice, 0, len(m.slots))
	for _, attr := range m.Attributes() {
		doc = append(doc, yaml.MapItem{Key: attr.Key, Value: attr.Value})
	}
	return doc, nil
}
