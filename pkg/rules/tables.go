// Copyright © 2018 One Concern

// Package rules holds the built-in display settings applied to tracks and
// containers: subject-matter colors, per-assay tuning and the attribute
// templates for every container and track kind.
//
// Tables are ordered and the first matching rule wins, so more specific
// patterns must be declared before the generic ones they refine (e.g.
// "RNA.*fwd" before "RNA"). Patterns are case-insensitive unanchored
// regular expressions matched against base names.
package rules

import (
	"regexp"

	"github.com/oneconcern/hubgen/pkg/model"
)

// ColorRule maps a file name pattern to an RGB display color.
type ColorRule struct {
	Pattern string
	Color   string

	re *regexp.Regexp
}

// ColorTable is an ordered list of color rules.
type ColorTable []ColorRule

// TuningRule maps a file name pattern to display attribute overrides.
type TuningRule struct {
	Pattern   string
	Overrides []model.Attribute

	re *regexp.Regexp
}

// TuningTable is an ordered list of tuning rules.
type TuningTable []TuningRule

func colorRule(pattern, color string) ColorRule {
	return ColorRule{
		Pattern: pattern,
		Color:   color,
		re:      regexp.MustCompile("(?i)" + pattern),
	}
}

func tuningRule(pattern string, overrides ...model.Attribute) TuningRule {
	return TuningRule{
		Pattern:   pattern,
		Overrides: overrides,
		re:        regexp.MustCompile("(?i)" + pattern),
	}
}

// Match returns the color of the first rule matching name.
func (t ColorTable) Match(name string) (string, bool) {
	for _, r := range t {
		if r.re.MatchString(name) {
			return r.Color, true
		}
	}
	return "", false
}

// Resolve picks a color for a track: the first rule matching the track's
// file name wins, then the first rule matching the name of its enclosing
// directory, then the fallback.
func (t ColorTable) Resolve(name, parent, fallback string) string {
	if color, ok := t.Match(name); ok {
		return color
	}
	if color, ok := t.Match(parent); ok {
		return color
	}
	return fallback
}

// FirstMatch returns the first rule matching name.
func (t TuningTable) FirstMatch(name string) (TuningRule, bool) {
	for _, r := range t {
		if r.re.MatchString(name) {
			return r, true
		}
	}
	return TuningRule{}, false
}

// Colors assigns display colors by assay or sample name.
var Colors = ColorTable{
	colorRule("CD24.*H3K27ac", "252,78,42"),
	colorRule("CD24.*H3K27me3", "140,107,177"),
	colorRule("input", "150,150,150"),
	colorRule("H3K4me1", "65,171,93"),
	colorRule("H3K4me2", "161,217,155"),
	colorRule("H3K27ac", "252,78,42"),
	colorRule("H3K4me3", "203,24,29"),
	colorRule("H3K36me3", "254,196,79"),
	colorRule("H3K27me3", "140,107,177"),
	colorRule("H3K27me2", "147,123,173"),
	colorRule("H2AK119Ub", "184,151,191"),
	colorRule("H3K27me1", "230,179,99"),
	colorRule("H3K9me3", "29,145,192"),
	colorRule("H3K9me2", "51,51,255"),
	colorRule("H3K9ac", "164,0,0"),
	colorRule("CTCF", "106,81,163"),
	colorRule("WGBS", "0,102,255"),
	colorRule("methyl", "0,102,255"),
	colorRule("RNA.*fwd", "0,102,0"),
	colorRule("RNA.*rev", "153,51,0"),
	colorRule("RNA.*RPKM", "71,107,107"),
	colorRule("RNA", "71,107,107"),
	colorRule("DNase", "0,204,102"),
	colorRule("Hp1a", "0,128,255"),
	colorRule("H1", "255,102,255"),
	colorRule("Rpb1", "173,68,2"),
}

// BigWigTuning adjusts signal display settings by assay.
var BigWigTuning = TuningTable{
	tuningRule("EpM93_ND|EpM95_ND",
		model.Attribute{Key: "viewLimits", Value: "0:10"},
	),
	tuningRule("CD24.*H3K27ac",
		model.Attribute{Key: "viewLimits", Value: "0:30"},
	),
	tuningRule("CD24.*H3K27me3",
		model.Attribute{Key: "viewLimits", Value: "0:20"},
	),
	tuningRule("methyl|WGBS",
		model.Attribute{Key: "viewLimits", Value: "0:100"},
		model.Attribute{Key: "maxHeightPixels", Value: "500:30:8"},
	),
	tuningRule("male.*H3K9me3",
		model.Attribute{Key: "viewLimits", Value: "0:15"},
	),
	tuningRule("H3K9me3",
		model.Attribute{Key: "viewLimits", Value: "0:15"},
	),
	tuningRule("H3K27me3",
		model.Attribute{Key: "viewLimits", Value: "0:14"},
	),
	tuningRule("H3K27me2",
		model.Attribute{Key: "viewLimits", Value: "0:8"},
	),
	tuningRule("H3K27me1",
		model.Attribute{Key: "viewLimits", Value: "0:8"},
	),
	tuningRule("H2AK119Ub",
		model.Attribute{Key: "viewLimits", Value: "0:8"},
	),
	tuningRule("snRNA",
		model.Attribute{Key: "viewLimits", Value: "0:15"},
		model.Attribute{Key: "maxHeightPixels", Value: "500:30:8"},
		model.Attribute{Key: "transformFunc", Value: "LOG"},
	),
	tuningRule("RNA",
		model.Attribute{Key: "viewLimits", Value: "0:30"},
	),
}

// BigBedTuning adjusts region display settings by annotation set.
var BigBedTuning = TuningTable{
	tuningRule("N25_segmentation.paper_colors",
		model.Attribute{Key: "type", Value: "bigBed 9 +"},
		model.Attribute{Key: "visibility", Value: "dense"},
	),
	tuningRule("Roadmap_6marks",
		model.Attribute{Key: "type", Value: "bigBed 9 +"},
		model.Attribute{Key: "visibility", Value: "dense"},
	),
}
