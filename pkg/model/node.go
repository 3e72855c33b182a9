package model

import (
	yaml "gopkg.in/yaml.v2"
)

// Track is one leaf of the hub tree, wrapping a single data file.
type Track struct {
	// Name is the data file base name, also used for both labels.
	Name string

	// Kind is derived from the file extension.
	Kind TrackKind

	// ID is the run-unique display identifier (track_<n>) naming the
	// published symlink.
	ID string

	// Path locates the data file relative to the source root. Only its
	// base name reaches the trackDb text; the full path builds the
	// symlink target.
	Path string

	// Attrs is the resolved trackDb entry for this track.
	Attrs *AttributeMap
}

// Node is one directory of the hub tree. The source root is the only
// TopLevel node; everything below is a classified container.
type Node struct {
	// Name is the directory base name, reused as the container's track
	// identity and labels.
	Name string

	// Kind is fixed at creation from the directory name suffix.
	Kind ContainerKind

	// Attrs is the container's own trackDb entry.
	Attrs *AttributeMap

	// Children holds the sub-containers in discovery order.
	Children []*Node

	// Tracks holds the directly contained tracks in discovery order.
	Tracks []*Track
}

// NewNode builds a node with an empty attribute map.
func NewNode(name string, kind ContainerKind) *Node {
	return &Node{
		Name:  name,
		Kind:  kind,
		Attrs: NewAttributeMap(),
	}
}

// AddChild appends a fully built sub-container.
func (n *Node) AddChild(child *Node) {
	n.Children = append(n.Children, child)
}

// AddTrack appends a built track.
func (n *Node) AddTrack(t *Track) {
	n.Tracks = append(n.Tracks, t)
}

// Entry is one named attribute map of a node: the container's own entry
// or one of its tracks. Override documents address entries by this name.
type Entry struct {
	Name  string
	Attrs *AttributeMap
}

// Entries lists the node's own entry first, then its tracks in order.
// This is the addressable surface of one directory: what override
// documents may patch and what the per-directory dump records.
func (n *Node) Entries() []Entry {
	entries := make([]Entry, 0, len(n.Tracks)+1)
	entries = append(entries, Entry{Name: n.Name, Attrs: n.Attrs})
	for _, t := range n.Tracks {
		entries = append(entries, Entry{Name: t.Name, Attrs: t.Attrs})
	}
	return entries
}

// TrackTypes collects the distinct resolved type attributes of the
// node's direct tracks, in first-seen order.
func (n *Node) TrackTypes() []string {
	var types []string
	for _, t := range n.Tracks {
		v, ok := t.Attrs.Get(AttrType)
		if !ok {
			continue
		}
		known := false
		for _, seen := range types {
			if seen == v {
				known = true
				break
			}
		}
		if !known {
			types = append(types, v)
		}
	}
	return types
}

// Visit walks the subtree pre-order.
func (n *Node) Visit(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.Visit(fn)
	}
}

// MarshalYAML renders the subtree the way the whole-hub dump file is
// laid out: the child name list, the entry mapping (self first), then
// one nested document per child.
func (n *Node) MarshalYAML() (interface{}, error) {
	names := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		names = append(names, child.Name)
	}
	entries := make(yaml.MapSlice, 0, len(n.Tracks)+1)
	for _, e := range n.Entries() {
		entries = append(entries, yaml.MapItem{Key: e.Name, Value: e.Attrs})
	}
	doc := yaml.MapSlice{
		{Key: "containers", Value: names},
		{Key: "tracks", Value: entries},
	}
	for _, child := range n.Children {
		doc = append(doc, yaml.MapItem{Key: child.Name, Value: child})
	}
	return doc, nil
}
