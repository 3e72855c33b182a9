// Copyright © 2018 One Concern

package rules

import (
	"github.com/oneconcern/hubgen/pkg/model"
)

// Templates return a fresh attribute map per call: callers fill the declared
// identity slots (track, parent, labels, bigDataUrl) and layer tuning on top.
// Key order is the order attributes are emitted in the trackDb file.

// MultiwigDefaults is the attribute template for a multiWig container.
func MultiwigDefaults() *model.AttributeMap {
	return model.NewAttributeMap().
		Declare(model.AttrTrack).
		Set(model.AttrType, model.TypeBigWig).
		Set("container", "multiWig").
		Declare(model.AttrParent, model.AttrShortLabel, model.AttrLongLabel).
		Set("aggregate", "none").
		Set("showSubtrackColorOnUi", "on").
		Set("priority", "1").
		Set("html", "examplePage")
}

// CompositeDefaults is the attribute template for a composite container. The
// type slot is filled once the container's track type is known.
func CompositeDefaults() *model.AttributeMap {
	return model.NewAttributeMap().
		Declare(model.AttrTrack, model.AttrParent, model.AttrType).
		Set("compositeTrack", "on").
		Declare(model.AttrShortLabel, model.AttrLongLabel).
		Set("visibility", "full").
		Set("priority", "1").
		Set("centerLabelsDense", "on").
		Set("html", "examplePage")
}

// SuperDefaults is the attribute template for a super track container.
func SuperDefaults() *model.AttributeMap {
	return model.NewAttributeMap().
		Declare(model.AttrTrack).
		Set("superTrack", "on").
		Declare(model.AttrParent, model.AttrShortLabel, model.AttrLongLabel).
		Set("priority", "1").
		Set("html", "examplePage")
}

// BigWigDefaults is the attribute template for a single bigWig track.
func BigWigDefaults() *model.AttributeMap {
	return model.NewAttributeMap().
		Declare(model.AttrTrack).
		Set(model.AttrType, model.TypeBigWig).
		Declare(model.AttrParent, model.AttrBigDataURL, model.AttrShortLabel, model.AttrLongLabel).
		Set(model.AttrColor, "255,0,0")
}

// BigBedDefaults is the attribute template for a single bigBed track.
func BigBedDefaults() *model.AttributeMap {
	return model.NewAttributeMap().
		Declare(model.AttrTrack, model.AttrParent, model.AttrBigDataURL, model.AttrShortLabel, model.AttrLongLabel).
		Set(model.AttrType, "bigBed 3 +").
		Set("itemRgb", "on").
		Set(model.AttrColor, "255,0,0").
		Set("visibility", "squish").
		Set("maxItems", "100000").
		Set("maxWindowToDraw", "20000000")
}

// CombinedView is the signal display block shared by multiWig containers and
// bigWig tracks standing outside one.
func CombinedView() []model.Attribute {
	return []model.Attribute{
		{Key: "visibility", Value: "full"},
		{Key: "maxHeightPixels", Value: "500:50:8"},
		{Key: "viewLimits", Value: "0:15"},
		{Key: "alwaysZero", Value: "on"},
		{Key: "autoScale", Value: "on"},
		{Key: "windowingFunction", Value: "mean+whiskers"},
		{Key: "priority", Value: "1"},
	}
}

// ContainerDefaults returns the template for kind, nil for the top level
// which carries no attributes of its own.
func ContainerDefaults(kind model.ContainerKind) *model.AttributeMap {
	switch kind {
	case model.Multiwig:
		return MultiwigDefaults()
	case model.Composite:
		return CompositeDefaults()
	case model.Super:
		return SuperDefaults()
	default:
		return nil
	}
}

// TrackDefaults returns the template for kind.
func TrackDefaults(kind model.TrackKind) *model.AttributeMap {
	if kind == model.BigBed {
		return BigBedDefaults()
	}
	return BigWigDefaults()
}
