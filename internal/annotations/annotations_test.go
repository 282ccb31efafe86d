package annotations_test

import (
	"testing"

	"github.com/scrypster/unilook/internal/annotations"
	"github.com/scrypster/unilook/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_EmptyTextYieldsEmptyAnnotation(t *testing.T) {
	ann := annotations.Parse(0x0041, "", diag.Discard)
	assert.True(t, ann.Empty())
	assert.Nil(t, ann.SeeAlso)
	assert.Nil(t, ann.Comments)
	assert.Nil(t, ann.Variations)
}

func TestParse_CrossReferences(t *testing.T) {
	text := "\tx (cyrillic small letter tshe - 045B)\n" +
		"\tx (planck constant over two pi - 210F)\n" +
		"\tx 0048"
	ann := annotations.Parse(0x0127, text, diag.Discard)

	assert.Equal(t, []rune{0x045B, 0x210F, 0x0048}, ann.SeeAlso,
		"cross-references must be decoded in source order")
}

func TestParse_Comments(t *testing.T) {
	text := "\t* Maltese, IPA, and other uses\n\t* second remark"
	ann := annotations.Parse(0x0127, text, diag.Discard)

	assert.Equal(t, []string{"Maltese, IPA, and other uses", "second remark"}, ann.Comments)
}

func TestParse_Variations(t *testing.T) {
	text := "\t~ 0030 FE00 short diagonal stroke form"
	ann := annotations.Parse(0x0030, text, diag.Discard)

	require.Len(t, ann.Variations, 1)
	assert.Equal(t, "short diagonal stroke form", ann.Variations[0xFE00])
}

func TestParse_VariationBaseMismatchWarns(t *testing.T) {
	var sink diag.List
	// Base code 0031 does not match the annotated character 0030.
	ann := annotations.Parse(0x0030, "\t~ 0031 FE00 some form", &sink)

	assert.Empty(t, ann.Variations)
	assert.Len(t, sink.Warnings(), 1)
}

func TestParse_VariationSelectorOutOfRangeWarns(t *testing.T) {
	var sink diag.List
	ann := annotations.Parse(0x0030, "\t~ 0030 FDFF some form", &sink)

	assert.Empty(t, ann.Variations)
	assert.Len(t, sink.Warnings(), 1)
}

func TestParse_ContinuationIndentationSilentlyDropped(t *testing.T) {
	var sink diag.List
	text := "\t* a remark that wraps\n\t\tacross two lines\n\t  and a third"
	ann := annotations.Parse(0x0041, text, &sink)

	assert.Equal(t, []string{"a remark that wraps"}, ann.Comments)
	assert.Empty(t, sink.Warnings(), "continuation lines are a documented limitation, not a warning")
}

func TestParse_MalformedLineWarnsAndContinues(t *testing.T) {
	var sink diag.List
	text := "\t* good comment\n\t!bogus line\n\tx 0041"
	ann := annotations.Parse(0x0127, text, &sink)

	assert.Equal(t, []string{"good comment"}, ann.Comments)
	assert.Equal(t, []rune{0x0041}, ann.SeeAlso)
	assert.Len(t, sink.Warnings(), 1)
}

func TestParse_MalformedCrossRefWarns(t *testing.T) {
	var sink diag.List
	ann := annotations.Parse(0x0127, "\tx (no trailing code)", &sink)

	assert.Empty(t, ann.SeeAlso)
	assert.Len(t, sink.Warnings(), 1)
}

func TestParse_UnsurfacedFacetsIgnoredSilently(t *testing.T) {
	var sink diag.List
	text := "\t= informal alias\n\t% FORMAL ALIAS\n\t# 0041 0300"
	ann := annotations.Parse(0x0041, text, &sink)

	assert.True(t, ann.Empty())
	assert.Empty(t, sink.Warnings())
}
