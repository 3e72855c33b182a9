// Copyright © 2018 One Concern

package rules

import (
	"testing"

	"github.com/oneconcern/hubgen/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorsMatch(t *testing.T) {
	for _, test := range []struct {
		name     string
		file     string
		expected string
		found    bool
	}{
		{
			name:     "exact assay",
			file:     "ES_H3K4me1_rep1.bw",
			expected: "65,171,93",
			found:    true,
		},
		{
			name:     "case insensitive",
			file:     "es_h3k9AC_merged.bw",
			expected: "164,0,0",
			found:    true,
		},
		{
			name:     "input beats assay declared after it",
			file:     "input_H3K4me1.bw",
			expected: "150,150,150",
			found:    true,
		},
		{
			name:     "stranded RNA beats generic RNA",
			file:     "totalRNA_fwd.bw",
			expected: "0,102,0",
			found:    true,
		},
		{
			name:     "generic RNA",
			file:     "snRNA_rep2.bw",
			expected: "71,107,107",
			found:    true,
		},
		{
			name:  "no rule",
			file:  "unassigned_sample.bw",
			found: false,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			color, ok := Colors.Match(test.file)
			require.Equal(t, test.found, ok)
			assert.Equal(t, test.expected, color)
		})
	}
}

func TestColorsResolve(t *testing.T) {
	for _, test := range []struct {
		name     string
		file     string
		parent   string
		expected string
	}{
		{
			name:     "file name wins",
			file:     "H3K9me3_r1.bw",
			parent:   "H3K4me1.multiwig",
			expected: "29,145,192",
		},
		{
			name:     "parent directory as fallback",
			file:     "sample_001.bw",
			parent:   "H3K4me1.multiwig",
			expected: "65,171,93",
		},
		{
			name:     "default when nothing matches",
			file:     "sample_001.bw",
			parent:   "group_a.multiwig",
			expected: "255,0,0",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Colors.Resolve(test.file, test.parent, "255,0,0"))
		})
	}
}

func TestBigWigTuning(t *testing.T) {
	for _, test := range []struct {
		name     string
		file     string
		expected []model.Attribute
	}{
		{
			name: "small RNA beats generic RNA and logs the signal",
			file: "snRNA_batch1.bw",
			expected: []model.Attribute{
				{Key: "viewLimits", Value: "0:15"},
				{Key: "maxHeightPixels", Value: "500:30:8"},
				{Key: "transformFunc", Value: "LOG"},
			},
		},
		{
			name: "generic RNA",
			file: "mRNA_RPKM.bw",
			expected: []model.Attribute{
				{Key: "viewLimits", Value: "0:30"},
			},
		},
		{
			name: "methylation widens the scale",
			file: "WGBS_CpG.bw",
			expected: []model.Attribute{
				{Key: "viewLimits", Value: "0:100"},
				{Key: "maxHeightPixels", Value: "500:30:8"},
			},
		},
		{
			name: "no rule",
			file: "plain_signal.bw",
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			rule, ok := BigWigTuning.FirstMatch(test.file)
			require.Equal(t, test.expected != nil, ok)
			assert.Equal(t, test.expected, rule.Overrides)
		})
	}
}

func TestBigBedTuning(t *testing.T) {
	rule, ok := BigBedTuning.FirstMatch("N25_segmentation.paper_colors.mm10.bb")
	require.True(t, ok)
	assert.Equal(t, "N25_segmentation.paper_colors", rule.Pattern)
	assert.Equal(t, []model.Attribute{
		{Key: "type", Value: "bigBed 9 +"},
		{Key: "visibility", Value: "dense"},
	}, rule.Overrides)

	_, ok = BigBedTuning.FirstMatch("genes.bb")
	assert.False(t, ok)
}

func keysOf(m *model.AttributeMap) []string {
	attrs := m.Attributes()
	keys := make([]string, 0, len(attrs))
	for _, a := range attrs {
		keys = append(keys, a.Key)
	}
	return keys
}

func TestTemplateKeyOrder(t *testing.T) {
	fill := func(m *model.AttributeMap, keys ...string) *model.AttributeMap {
		for _, k := range keys {
			m.Set(k, "x")
		}
		return m
	}

	for _, test := range []struct {
		name     string
		template *model.AttributeMap
		expected []string
	}{
		{
			name: "multiwig",
			template: fill(MultiwigDefaults(),
				model.AttrTrack, model.AttrParent, model.AttrShortLabel, model.AttrLongLabel),
			expected: []string{
				"track", "type", "container", "parent", "shortLabel", "longLabel",
				"aggregate", "showSubtrackColorOnUi", "priority", "html",
			},
		},
		{
			name: "composite",
			template: fill(CompositeDefaults(),
				model.AttrTrack, model.AttrParent, model.AttrType, model.AttrShortLabel, model.AttrLongLabel),
			expected: []string{
				"track", "parent", "type", "compositeTrack", "shortLabel", "longLabel",
				"visibility", "priority", "centerLabelsDense", "html",
			},
		},
		{
			name: "super",
			template: fill(SuperDefaults(),
				model.AttrTrack, model.AttrParent, model.AttrShortLabel, model.AttrLongLabel),
			expected: []string{
				"track", "superTrack", "parent", "shortLabel", "longLabel", "priority", "html",
			},
		},
		{
			name: "bigWig",
			template: fill(BigWigDefaults(),
				model.AttrTrack, model.AttrParent, model.AttrBigDataURL, model.AttrShortLabel, model.AttrLongLabel),
			expected: []string{
				"track", "type", "parent", "bigDataUrl", "shortLabel", "longLabel", "color",
			},
		},
		{
			name: "bigBed",
			template: fill(BigBedDefaults(),
				model.AttrTrack, model.AttrParent, model.AttrBigDataURL, model.AttrShortLabel, model.AttrLongLabel),
			expected: []string{
				"track", "parent", "bigDataUrl", "shortLabel", "longLabel", "type",
				"itemRgb", "color", "visibility", "maxItems", "maxWindowToDraw",
			},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, keysOf(test.template))
		})
	}
}

func TestTemplateUnsetSlotsOmitted(t *testing.T) {
	// identity slots left unfilled do not surface in the output
	m := BigWigDefaults()
	m.Set(model.AttrTrack, "track_1")
	assert.Equal(t, []string{"track", "type", "color"}, keysOf(m))
}

func TestTemplatesAreFresh(t *testing.T) {
	first := MultiwigDefaults()
	first.Set(model.AttrTrack, "tampered").Set("priority", "42")

	second := MultiwigDefaults()
	_, ok := second.Get(model.AttrTrack)
	assert.False(t, ok)
	priority, _ := second.Get("priority")
	assert.Equal(t, "1", priority)
}

func TestCombinedViewLayering(t *testing.T) {
	m := BigWigDefaults().Apply(CombinedView())

	assert.Equal(t, []string{
		"track", "type", "parent", "bigDataUrl", "shortLabel", "longLabel", "color",
		"visibility", "maxHeightPixels", "viewLimits", "alwaysZero", "autoScale",
		"windowingFunction", "priority",
	}, keysOf(fillIdentity(m)))

	limits, ok := m.Get("viewLimits")
	require.True(t, ok)
	assert.Equal(t, "0:15", limits)
}

func fillIdentity(m *model.AttributeMap) *model.AttributeMap {
	for _, k := range []string{
		model.AttrTrack, model.AttrParent, model.AttrBigDataURL,
		model.AttrShortLabel, model.AttrLongLabel,
	} {
		m.Set(k, "x")
	}
	return m
}

func TestContainerDefaults(t *testing.T) {
	assert.Nil(t, ContainerDefaults(model.TopLevel))
	require.NotNil(t, ContainerDefaults(model.Multiwig))
	container, _ := ContainerDefaults(model.Multiwig).Get("container")
	assert.Equal(t, "multiWig", container)

	typ, _ := TrackDefaults(model.BigBed).Get(model.AttrType)
	assert.Equal(t, "bigBed 3 +", typ)
	typ, _ = TrackDefaults(model.BigWig).Get(model.AttrType)
	assert.Equal(t, model.TypeBigWig, typ)
}
