package model

import (
	"path/filepath"
	"strings"
)

// ContainerKind tells how a directory groups the tracks below it.
// It is fixed at node creation from the directory name suffix.
type ContainerKind int

const (
	// TopLevel is the implicit kind of the source root. It has no
	// trackDb block of its own and may hold containers or loose tracks.
	TopLevel ContainerKind = iota

	// Super groups one level of composite or multiwig containers.
	Super

	// Composite groups tracks of one type as togglable subtracks.
	Composite

	// Multiwig overlays its bigWig tracks into one combined display.
	Multiwig
)

func (k ContainerKind) String() string {
	switch k {
	case Super:
		return "super"
	case Composite:
		return "composite"
	case Multiwig:
		return "multiwig"
	default:
		return "toplevel"
	}
}

// IsLeaf indicates a container kind which may hold tracks only, never
// sub-containers.
func (k ContainerKind) IsLeaf() bool {
	return k == Composite || k == Multiwig
}

// Directory name suffixes mapping to container kinds, matched
// case-insensitively.
const (
	SuffixMultiwig  = ".multiwig"
	SuffixComposite = ".composite"
	SuffixSuper     = ".super"
)

// ParseContainerKind classifies a directory name by its suffix. The
// second return value is false when the name carries no recognized
// container suffix.
func ParseContainerKind(dirName string) (ContainerKind, bool) {
	switch name := strings.ToLower(dirName); {
	case strings.HasSuffix(name, SuffixMultiwig):
		return Multiwig, true
	case strings.HasSuffix(name, SuffixComposite):
		return Composite, true
	case strings.HasSuffix(name, SuffixSuper):
		return Super, true
	default:
		return TopLevel, false
	}
}

// TrackKind tells the data format of a track file, derived from its
// extension.
type TrackKind int

const (
	// BigWig is a continuous signal track (*.bw, *.bigwig)
	BigWig TrackKind = iota

	// BigBed is an interval track (*.bb, *.bigbed)
	BigBed
)

// TypeBigWig is the trackDb type string shared by all bigWig tracks.
// Multiwig containers accept this resolved type only.
const TypeBigWig = "bigWig"

func (k TrackKind) String() string {
	if k == BigBed {
		return "bigBed"
	}
	return TypeBigWig
}

// ParseTrackKind classifies a file name by its extension. Files matching
// no track extension are not tracks and not errors: the second return
// value is false and the caller skips them.
func ParseTrackKind(fileName string) (TrackKind, bool) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".bw", ".bigwig":
		return BigWig, true
	case ".bb", ".bigbed":
		return BigBed, true
	default:
		return 0, false
	}
}
