// Package model describes the base objects a track hub is assembled from.
//
// The package exposes a model for the hub hierarchy.
//
// The object model for a hub is composed of:
//
//  Containers:
//    A container groups tracks for display purposes and maps one to one onto
//    an input subdirectory. Containers come in three kinds, multiwig, composite
//    and super, encoded in the directory name suffix. The scanned root
//    directory is the implicit top level container.
//
//  Tracks:
//    A track wraps a single bigWig or bigBed data file and carries the
//    attributes rendered as one trackDb block.
//
//  Attributes:
//    Ordered key/value pairs attached to containers and tracks. Order matters:
//    trackDb blocks are rendered in attribute insertion order, so templates
//    declare their keys up front and later passes fill them in place.
package model
