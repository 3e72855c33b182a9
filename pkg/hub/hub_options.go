// Copyright © 2018 One Concern

package hub

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Option is a functor to build a hub with some options
type Option func(*Hub)

// Destination defines the output directory receiving the trackDb file and
// the track links
func Destination(dir string) Option {
	return func(h *Hub) {
		h.destination = dir
	}
}

// TrackDb defines the file name of the generated track configuration,
// useful when several trackDb files serve one organism
func TrackDb(name string) Option {
	return func(h *Hub) {
		h.trackDb = name
	}
}

// StartIndex defines the numerical index of the first track, important when
// several trackDb files are generated for the same hub
func StartIndex(n int) Option {
	return func(h *Hub) {
		h.startIndex = n
	}
}

// PostContent defines text appended verbatim at the end of the generated
// trackDb, e.g. an include statement for an extra track configuration file
func PostContent(text string) Option {
	return func(h *Hub) {
		h.postContent = text
	}
}

// URLPrefix defines a prefix prepended to the file names published as
// bigDataUrl, e.g. the base URL of the host serving the data files
func URLPrefix(prefix string) Option {
	return func(h *Hub) {
		h.urlPrefix = prefix
	}
}

// Dumps toggles the YAML dumps: the per-directory resolved settings
// written into the source tree during a build, and the whole tree
// rendering published next to the trackDb file
func Dumps(enabled bool) Option {
	return func(h *Hub) {
		h.withDumps = enabled
	}
}

// Filesystem defines the filesystem abstraction backing all hub I/O
func Filesystem(fs afero.Fs) Option {
	return func(h *Hub) {
		h.fs = fs
	}
}

// Logger injects a logging facility into hub operations
func Logger(l *zap.Logger) Option {
	return func(h *Hub) {
		h.l = l
	}
}
