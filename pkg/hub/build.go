// Copyright © 2018 One Concern

package hub

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/oneconcern/hubgen/pkg/hub/status"
	"github.com/oneconcern/hubgen/pkg/model"
	"github.com/oneconcern/hubgen/pkg/rules"
	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v2"
)

// Build scans the source tree and resolves it into the hub model.
//
// Track identifiers restart from the configured start index on every call,
// so rebuilding an unchanged source yields the same tree.
func (h *Hub) Build(ctx context.Context) error {
	h.root = nil
	h.nextID = h.startIndex

	abs, err := filepath.Abs(h.source)
	if err != nil {
		return status.ErrScan.Wrap(err)
	}

	root, err := h.buildDir(ctx, h.source, []string{filepath.Base(abs)}, model.TopLevel)
	if err != nil {
		return err
	}
	h.root = root
	return nil
}

// buildDir resolves one source directory: container attributes, then its
// tracks, then the container track type, then overrides from a settings
// file, then the settings dump, then subdirectories. Tracks are numbered in
// this order, parents before children.
func (h *Hub) buildDir(ctx context.Context, dir string, parents []string, kind model.ContainerKind) (*model.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.ErrInterrupted.Wrap(err)
	}

	name := parents[len(parents)-1]
	h.l.Debug("scanning directory", zap.String("dir", dir), zap.Stringer("kind", kind))

	node := model.NewNode(name, kind)
	h.containerAttrs(node, parents)

	infos, err := afero.ReadDir(h.fs, dir)
	if err != nil {
		return nil, status.ErrScan.Wrap(err)
	}

	var override string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		if override == "" && strings.HasSuffix(info.Name(), ".yaml") {
			override = info.Name()
		}
		if trackKind, ok := model.ParseTrackKind(info.Name()); ok {
			h.buildTrack(node, info.Name(), trackKind, parents)
		}
	}

	if err = h.setContainerType(node); err != nil {
		return nil, err
	}

	if override != "" {
		if err = h.applyOverrides(filepath.Join(dir, override), node); err != nil {
			return nil, err
		}
	}

	if h.withDumps {
		if err = h.dumpNode(dir, node); err != nil {
			return nil, err
		}
	}

	for _, info := range infos {
		if !info.IsDir() {
			continue
		}
		path := filepath.Join(dir, info.Name())
		childKind, ok := model.ParseContainerKind(info.Name())
		if !ok {
			return nil, status.ErrNotContainer.WrapMessage("directory %q", path)
		}
		if err = checkNesting(kind, childKind, path); err != nil {
			return nil, err
		}
		childParents := append(append(make([]string, 0, len(parents)+1), parents...), info.Name())
		child, err := h.buildDir(ctx, path, childParents, childKind)
		if err != nil {
			return nil, err
		}
		node.AddChild(child)
	}

	return node, nil
}

// checkNesting enforces the single nesting level supported by the genome
// browser: only a super directly below the root may hold further
// containers.
func checkNesting(parent, child model.ContainerKind, path string) error {
	switch parent {
	case model.TopLevel:
		return nil
	case model.Super:
		if child == model.Super {
			return status.ErrNestingDepth.WrapMessage("super container %q below another super", path)
		}
		return nil
	default:
		return status.ErrNestingDepth.WrapMessage("container %q below a %s container", path, parent)
	}
}

func (h *Hub) containerAttrs(node *model.Node, parents []string) {
	attrs := rules.ContainerDefaults(node.Kind)
	if attrs == nil {
		attrs = model.NewAttributeMap()
	}
	if node.Kind == model.Multiwig {
		attrs.Apply(rules.CombinedView())
	}

	attrs.Set(model.AttrTrack, node.Name).
		Set(model.AttrShortLabel, node.Name).
		Set(model.AttrLongLabel, node.Name)

	// containers directly below the root have no parent entry
	if len(parents) > 2 {
		attrs.Set(model.AttrParent, parents[len(parents)-2])
	}

	if node.Kind == model.Multiwig {
		if rule, ok := rules.BigWigTuning.FirstMatch(node.Name); ok {
			h.l.Debug("signal tuning matched",
				zap.String("track", node.Name), zap.String("pattern", rule.Pattern))
			attrs.Apply(rule.Overrides)
		}
	}
	node.Attrs = attrs
}

func (h *Hub) buildTrack(node *model.Node, file string, kind model.TrackKind, parents []string) {
	attrs := rules.TrackDefaults(kind)
	if kind == model.BigWig && node.Kind != model.Multiwig {
		attrs.Apply(rules.CombinedView())
	}

	// tracks at the top level have no parent entry
	if len(parents) > 1 {
		attrs.Set(model.AttrParent, node.Name)
	}

	id := fmt.Sprintf("track_%d", h.nextID)
	h.nextID++

	rel := filepath.Join(append(append(make([]string, 0, len(parents)), parents[1:]...), file)...)
	attrs.Set(model.AttrTrack, id).
		Set(model.AttrBigDataURL, rel).
		Set(model.AttrShortLabel, file).
		Set(model.AttrLongLabel, file)

	fallback, _ := attrs.Get(model.AttrColor)
	attrs.Set(model.AttrColor, rules.Colors.Resolve(file, node.Name, fallback))

	if kind == model.BigBed || node.Kind != model.Multiwig {
		table := rules.BigWigTuning
		if kind == model.BigBed {
			table = rules.BigBedTuning
		}
		if rule, ok := table.FirstMatch(file); ok {
			h.l.Debug("display tuning matched",
				zap.String("track", file), zap.String("pattern", rule.Pattern))
			attrs.Apply(rule.Overrides)
		}
	}

	node.AddTrack(&model.Track{
		Name:  file,
		Kind:  kind,
		ID:    id,
		Path:  rel,
		Attrs: attrs,
	})
}

// setContainerType propagates the single track type held by a composite or
// multiwig container onto the container itself.
func (h *Hub) setContainerType(node *model.Node) error {
	if node.Kind != model.Composite && node.Kind != model.Multiwig {
		return nil
	}

	types := node.TrackTypes()
	if len(types) > 1 {
		return status.ErrMixedTrackTypes.WrapMessage("container %q holds %s", node.Name, strings.Join(types, ", "))
	}

	trackType := model.TypeBigWig
	if len(types) == 1 {
		trackType = types[0]
	}
	if node.Kind == model.Multiwig && trackType != model.TypeBigWig {
		return status.ErrMultiwigTrackKind.WrapMessage("container %q holds %s tracks", node.Name, trackType)
	}

	node.Attrs.Set(model.AttrType, trackType)
	return nil
}

// applyOverrides merges settings from the first YAML file found in a source
// directory over the entities resolved for that directory. Top level keys
// name the container itself or one of its track files, unknown keys are
// ignored.
func (h *Hub) applyOverrides(path string, node *model.Node) error {
	data, err := afero.ReadFile(h.fs, path)
	if err != nil {
		return status.ErrOverride.Wrap(err)
	}
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return status.ErrOverride.Wrap(err)
	}

	for _, entry := range node.Entries() {
		for _, item := range doc {
			if cast.ToString(item.Key) != entry.Name {
				continue
			}
			settings, ok := item.Value.(yaml.MapSlice)
			if !ok {
				return status.ErrOverride.WrapMessage("settings for %q must be a mapping", entry.Name)
			}
			h.l.Debug("applying overrides", zap.String("file", path), zap.String("entry", entry.Name))
			for _, kv := range settings {
				entry.Attrs.Set(cast.ToString(kv.Key), cast.ToString(kv.Value))
			}
		}
	}
	return nil
}

// dumpNode writes the resolved settings of a source directory next to its
// files, a template for override settings.
func (h *Hub) dumpNode(dir string, node *model.Node) error {
	doc := make(yaml.MapSlice, 0, len(node.Tracks)+1)
	for _, entry := range node.Entries() {
		doc = append(doc, yaml.MapItem{Key: entry.Name, Value: entry.Attrs})
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return status.ErrDump.Wrap(err)
	}
	if err := afero.WriteFile(h.fs, filepath.Join(dir, dumpFile), data, 0644); err != nil {
		return status.ErrDump.WrapWithLog(h.l, err, zap.String("dir", dir))
	}
	return nil
}
