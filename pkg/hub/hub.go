// Copyright © 2018 One Concern

// Package hub turns a directory tree of genome track files into a UCSC
// track hub configuration.
//
// The source tree maps one to one onto the hub hierarchy: directories named
// *.multiwig, *.composite or *.super become containers of the corresponding
// kind, bigWig and bigBed files become tracks. Build resolves the tree into
// an attributed model, Publish writes the trackDb file to the destination
// directory and links every track file next to it.
package hub

import (
	"github.com/oneconcern/hubgen/pkg/dlogger"
	"github.com/oneconcern/hubgen/pkg/model"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

const (
	// DefaultTrackDb is the default file name for the generated track
	// configuration.
	DefaultTrackDb = "trackDb.txt"

	// DefaultStartIndex is the default numerical index assigned to the first
	// track.
	DefaultStartIndex = 1

	// dumpFile receives the resolved settings of a source directory, a
	// starting point for override files.
	dumpFile = "container_config.used"

	// treeDumpSuffix is appended to the trackDb file name to form the name
	// of the published tree dump.
	treeDumpSuffix = ".hub_dict.yaml"
)

// Hub generates a UCSC track hub from a source directory tree.
type Hub struct {
	source      string
	destination string
	trackDb     string
	startIndex  int
	postContent string
	urlPrefix   string
	withDumps   bool

	fs afero.Fs
	l  *zap.Logger

	root   *model.Node
	nextID int
}

func defaultsForHub() *Hub {
	return &Hub{
		trackDb:    DefaultTrackDb,
		startIndex: DefaultStartIndex,
		withDumps:  true,
		fs:         afero.NewOsFs(),
		l:          dlogger.MustGetLogger(dlogger.LogLevelInfo),
	}
}

// New creates a hub generator for the source directory tree rooted at
// source.
func New(source string, opts ...Option) *Hub {
	h := defaultsForHub()
	h.source = source
	for _, apply := range opts {
		apply(h)
	}
	return h
}

// Source returns the root of the source tree.
func (h *Hub) Source() string {
	return h.source
}

// Root returns the resolved hub tree, nil until Build has run.
func (h *Hub) Root() *model.Node {
	return h.root
}

// Tracks returns all resolved tracks in identifier order, nil until Build
// has run.
func (h *Hub) Tracks() []*model.Track {
	if h.root == nil {
		return nil
	}
	var tracks []*model.Track
	h.root.Visit(func(n *model.Node) {
		tracks = append(tracks, n.Tracks...)
	})
	return tracks
}
