// Copyright © 2018 One Concern

// Package status declares error constants returned by the hub builder and
// publisher.
//
// Structural errors report a source tree that cannot be mapped to a track
// hub. Operational errors report failures while reading the source tree or
// materializing the hub on disk.
package status

import (
	"github.com/oneconcern/hubgen/pkg/errors"
)

var (
	// ErrInterrupted signals that an interruption was requested
	ErrInterrupted = errors.New("the requested operation was interrupted")

	// ErrNotContainer signals a subdirectory without a recognized container
	// suffix in its name
	ErrNotContainer = errors.New("every subdirectory needs to be a multiwig, composite or super container")

	// ErrNestingDepth signals a container found at a level where its kind is
	// not allowed (e.g. a container below a composite or multiwig, or a super
	// not directly below the root)
	ErrNestingDepth = errors.New("containers may only nest as composite or multiwig groups directly below the root or below a top level super")

	// ErrMixedTrackTypes signals a composite or multiwig container holding
	// tracks of more than one type
	ErrMixedTrackTypes = errors.New("only one track type allowed in composite or multiwig containers")

	// ErrMultiwigTrackKind signals a multiwig container holding tracks other
	// than bigWig
	ErrMultiwigTrackKind = errors.New("only bigWig tracks are allowed in multiwig containers")

	// ErrNoTrackDbName signals that no file name was provided for the
	// generated trackDb
	ErrNoTrackDbName = errors.New("a file name for the generated trackDb is required")

	// ErrNotBuilt signals an attempt to publish or inspect a hub before its
	// tree has been built
	ErrNotBuilt = errors.New("hub has not been built from its source tree yet")

	// ErrOverride signals an override settings file that could not be parsed
	ErrOverride = errors.New("unable to parse override settings")

	// ErrScan signals a failure while walking the source tree
	ErrScan = errors.New("unable to scan source tree")

	// ErrDump signals a failure while writing the resolved settings dump of
	// a source directory
	ErrDump = errors.New("unable to write the resolved settings dump")

	// ErrPublish signals a failure while writing hub artifacts to the
	// destination
	ErrPublish = errors.New("unable to publish hub artifacts")
)
