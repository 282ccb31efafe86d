// Package ucd implements the classification provider: canonical names,
// general categories, scripts, blocks and raw numeric values for single
// code points.
//
// Category and script semantics are consumed, not defined: they come from
// the Go standard library's unicode range tables, and canonical names come
// from golang.org/x/text/unicode/runenames. Blocks and numeric values have
// no standard library table, so they are parsed from the Unicode data files
// (Blocks.txt and UnicodeData.txt) at construction time — an unreadable or
// malformed file is a fatal startup error, never a partial table.
package ucd

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/runenames"

	"github.com/scrypster/unilook/pkg/types"
)

// Classifier answers character classification queries. The lookup service
// and the search engine depend on this interface only; tests supply fixed
// in-memory doubles.
type Classifier interface {
	// Name returns the canonical Unicode name for r, or ok=false when the
	// character has no defined name. Synthesized bracket labels are the
	// caller's concern, not the classifier's.
	Name(r rune) (string, bool)

	// Category returns the two-letter general category code, "Cn" for
	// unassigned code points.
	Category(r rune) string

	// CategoryLongName returns the long form of a category code, or the
	// code itself when unknown.
	CategoryLongName(code string) string

	// NumericValue returns the character's numeric value as a raw float,
	// or ok=false when the character has no numeric property.
	NumericValue(r rune) (float64, bool)

	// DoubleCombining reports whether r is a double combining mark
	// (canonical combining class 233 or 234), which spans two base
	// characters and anchors to a dotted circle on both sides.
	DoubleCombining(r rune) bool

	// Script returns the character's script as a short/long pair; the
	// generic value is "Zzzz (Unknown)".
	Script(r rune) types.PropertyValue

	// Block returns the block containing r, or ok=false for code points
	// outside every defined block.
	Block(r rune) (types.Block, bool)
}

// Provider is the production Classifier.
type Provider struct {
	blocks          []types.Block
	numeric         map[rune]float64
	doubleCombining map[rune]bool
}

var _ Classifier = (*Provider)(nil)

// New builds a Provider from the two Unicode data files. Both readers are
// consumed fully before New returns.
func New(unicodeData, blocks io.Reader) (*Provider, error) {
	numeric, doubleCombining, err := parseUnicodeData(unicodeData)
	if err != nil {
		return nil, err
	}
	blockTable, err := parseBlocks(blocks)
	if err != nil {
		return nil, err
	}
	return &Provider{
		blocks:          blockTable,
		numeric:         numeric,
		doubleCombining: doubleCombining,
	}, nil
}

// NewFromFiles builds a Provider from UnicodeData.txt and Blocks.txt on
// disk.
func NewFromFiles(unicodeDataPath, blocksPath string) (*Provider, error) {
	ud, err := os.Open(unicodeDataPath)
	if err != nil {
		return nil, fmt.Errorf("ucd: open unicode data: %w", err)
	}
	defer ud.Close()
	bl, err := os.Open(blocksPath)
	if err != nil {
		return nil, fmt.Errorf("ucd: open blocks: %w", err)
	}
	defer bl.Close()
	return New(ud, bl)
}

// Name returns the canonical name from the rune-name table. Code points
// published as name ranges (CJK ideographs, Hangul syllables, Tangut) come
// back as "<...>" placeholders; their per-character names are computed.
func (p *Provider) Name(r rune) (string, bool) {
	name := runenames.Name(r)
	if name == "" {
		return "", false
	}
	if name[0] == '<' {
		return rangeName(r, name)
	}
	return name, true
}

// Category returns the two-letter general category code for r.
func (p *Provider) Category(r rune) string {
	return categoryOf(r)
}

// CategoryLongName returns the long category name for a two-letter code.
func (p *Provider) CategoryLongName(code string) string {
	if long, ok := categoryLongNames[code]; ok {
		return long
	}
	return code
}

// NumericValue returns the raw numeric value parsed from the character
// database.
func (p *Provider) NumericValue(r rune) (float64, bool) {
	v, ok := p.numeric[r]
	return v, ok
}

// DoubleCombining reports whether r carries combining class 233 or 234.
func (p *Provider) DoubleCombining(r rune) bool {
	return p.doubleCombining[r]
}

// Script returns the character's script.
func (p *Provider) Script(r rune) types.PropertyValue {
	return scriptOf(r)
}

// Block returns the block containing r.
func (p *Provider) Block(r rune) (types.Block, bool) {
	return findBlock(p.blocks, r)
}
