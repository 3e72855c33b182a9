// Copyright © 2018 One Concern

package hub

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oneconcern/hubgen/pkg/hub/status"
	"github.com/oneconcern/hubgen/pkg/model"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v2"
)

// Publish materializes the hub in the destination directory: the trackDb
// configuration, a link per track pointing back at its data file and a
// YAML rendering of the resolved tree for inspection.
//
// Publishing is idempotent, a second run rewrites the trackDb file and
// re-points the links.
func (h *Hub) Publish(ctx context.Context) error {
	if h.root == nil {
		return status.ErrNotBuilt
	}
	if h.trackDb == "" {
		return status.ErrNoTrackDbName
	}
	if h.destination == "" {
		return status.ErrPublish.WrapMessage("no destination directory")
	}

	if err := h.fs.MkdirAll(h.destination, 0755); err != nil {
		return status.ErrPublish.Wrap(err)
	}

	path := filepath.Join(h.destination, h.trackDb)
	f, err := h.fs.Create(path)
	if err != nil {
		return status.ErrPublish.Wrap(err)
	}

	w := bufio.NewWriter(f)
	if err = h.emitNode(ctx, w, h.root, 0); err != nil {
		_ = f.Close()
		return err
	}
	_, _ = w.WriteString(h.postContent)
	if err = w.Flush(); err != nil {
		_ = f.Close()
		return status.ErrPublish.Wrap(err)
	}
	if err = f.Close(); err != nil {
		return status.ErrPublish.Wrap(err)
	}

	if h.withDumps {
		if err = h.dumpTree(); err != nil {
			return err
		}
	}

	h.l.Debug("published hub", zap.String("trackDb", path))
	return nil
}

// emitNode writes the trackDb section of one node: the container block,
// then its subcontainers, then its own tracks, linking every track file
// into the destination on the way. Blocks indent five spaces per nesting
// level, tracks one level deeper than their container, and a blank line
// closes each block.
func (h *Hub) emitNode(ctx context.Context, w *bufio.Writer, node *model.Node, depth int) error {
	if err := ctx.Err(); err != nil {
		return status.ErrInterrupted.Wrap(err)
	}

	if depth > 0 {
		indent := strings.Repeat(" ", (depth-1)*5)
		for _, a := range node.Attrs.Attributes() {
			fmt.Fprintf(w, "%s%s %s\n", indent, a.Key, a.Value)
		}
		fmt.Fprintln(w)
	}

	for _, child := range node.Children {
		if err := h.emitNode(ctx, w, child, depth+1); err != nil {
			return err
		}
	}

	indent := strings.Repeat(" ", depth*5)
	for _, track := range node.Tracks {
		for _, a := range track.Attrs.Attributes() {
			value := a.Value
			if a.Key == model.AttrBigDataURL {
				value = h.urlPrefix + filepath.Base(value)
			}
			fmt.Fprintf(w, "%s%s %s\n", indent, a.Key, value)
		}
		if err := h.relink(track); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}
	return nil
}

// relink points a link named after the track identifier at the track's
// source file, replacing a stale link left over from an earlier run.
func (h *Hub) relink(track *model.Track) error {
	target, err := filepath.Abs(filepath.Join(h.source, track.Path))
	if err != nil {
		return status.ErrPublish.Wrap(err)
	}
	link := filepath.Join(h.destination, track.ID)

	if lstater, ok := h.fs.(afero.Lstater); ok {
		if fi, _, lerr := lstater.LstatIfPossible(link); lerr == nil && fi.Mode()&os.ModeSymlink != 0 {
			if err = h.fs.Remove(link); err != nil {
				return status.ErrPublish.Wrap(err)
			}
		}
	}

	linker, ok := h.fs.(afero.Linker)
	if !ok {
		return status.ErrPublish.WrapMessage("%s does not support symbolic links", h.fs.Name())
	}
	if err = linker.SymlinkIfPossible(target, link); err != nil {
		return status.ErrPublish.Wrap(err)
	}

	h.l.Debug("linked track", zap.String("link", link), zap.String("target", target))
	return nil
}

// TreeYAML renders the resolved tree as an ordered YAML document.
func (h *Hub) TreeYAML() ([]byte, error) {
	if h.root == nil {
		return nil, status.ErrNotBuilt
	}
	doc := yaml.MapSlice{
		{Key: "containers", Value: []string{h.root.Name}},
		{Key: h.root.Name, Value: h.root},
	}
	return yaml.Marshal(doc)
}

func (h *Hub) dumpTree() error {
	data, err := h.TreeYAML()
	if err != nil {
		return err
	}
	path := filepath.Join(h.destination, h.trackDb+treeDumpSuffix)
	if err := afero.WriteFile(h.fs, path, data, 0644); err != nil {
		return status.ErrPublish.Wrap(err)
	}
	return nil
}
