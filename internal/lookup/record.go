package lookup

import (
	"fmt"

	"github.com/scrypster/unilook/internal/annotations"
	"github.com/scrypster/unilook/internal/rational"
	"github.com/scrypster/unilook/pkg/types"
)

// Resolve assembles the full property record for r. It is total over valid
// runes: a provider reporting no data yields an absent field, never an
// error. The only error path is a provider whose one-time table build
// failed, which is fatal for every lookup.
func (s *Service) Resolve(r rune) (types.Record, error) {
	category := s.classifier.Category(r)
	rec := types.Record{
		Rune:         r,
		Category:     category,
		CategoryName: s.classifier.CategoryLongName(category),
		Glyph:        formatGlyph(r, category, s.classifier.DoubleCombining(r)),
	}

	if name, ok := s.classifier.Name(r); ok {
		rec.Name = name
	} else {
		rec.Name = syntheticLabel(r, category)
	}

	mnemonic, ok, err := s.mnemonics.Lookup(r)
	if err != nil {
		return types.Record{}, fmt.Errorf("lookup: mnemonic table: %w", err)
	}
	if ok {
		rec.Mnemonic = mnemonic
	}

	sequences, ok, err := s.sequences.Lookup(r)
	if err != nil {
		return types.Record{}, fmt.Errorf("lookup: compose table: %w", err)
	}
	if ok {
		rec.Sequences = sequences
	}

	entities, ok, err := s.entities.Lookup(r)
	if err != nil {
		return types.Record{}, fmt.Errorf("lookup: entity table: %w", err)
	}
	if ok {
		rec.Entities = entities
	}

	aliases, ok, err := s.aliases.Lookup(r)
	if err != nil {
		return types.Record{}, fmt.Errorf("lookup: alias table: %w", err)
	}
	if ok {
		rec.Aliases = aliases
	}

	if block, ok := s.classifier.Block(r); ok {
		rec.Block = &block
	}

	if script := s.classifier.Script(r); script.Short != "Zzzz" {
		rec.Script = &script
	}

	if v, ok := s.classifier.NumericValue(r); ok {
		q := rational.FromFloat(v)
		rec.Numeric = &q
	}

	text, ok, err := s.annotations.RawText(r)
	if err != nil {
		return types.Record{}, fmt.Errorf("lookup: names list: %w", err)
	}
	if ok {
		rec.Annotation = annotations.Parse(r, text, s.sink)
	}

	return rec, nil
}

// syntheticLabel builds the bracketed label for a character with no
// canonical name: "<control-0008>", "<reserved-0378>" and so on. The rule
// has exactly five outcomes — the four category keywords plus the
// noncharacter override for the plane-final positions and the
// U+FDD0..U+FDEF range. The override ranges always have category Cn; a
// disagreement means the classification tables are inconsistent with the
// code-point structure and is a defect, not an input error.
func syntheticLabel(r rune, category string) string {
	var keyword string
	switch category {
	case "Cc":
		keyword = "control"
	case "Cn":
		keyword = "reserved"
	case "Co":
		keyword = "private-use"
	case "Cs":
		keyword = "surrogate"
	default:
		panic(fmt.Sprintf("lookup: no label rule for unnamed U+%04X with category %s", r, category))
	}
	if isNoncharacter(r) {
		if keyword != "reserved" {
			panic(fmt.Sprintf("lookup: noncharacter U+%04X classified %s, want Cn", r, category))
		}
		keyword = "noncharacter"
	}
	return fmt.Sprintf("<%s-%04X>", keyword, r)
}

// isNoncharacter reports whether r is one of the 66 permanent
// noncharacters: the last two positions of each 16-bit plane plus
// U+FDD0..U+FDEF.
func isNoncharacter(r rune) bool {
	return r&0xFFFF >= 0xFFFE || (r >= 0xFDD0 && r <= 0xFDEF)
}

// Characters that render as zero-width selectors and would corrupt
// terminal output: the Mongolian free variation selectors and both
// variation-selector ranges.
func isSelector(r rune) bool {
	switch {
	case r >= 0x180B && r <= 0x180F:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r >= 0xE0100 && r <= 0xE01EF:
		return true
	}
	return false
}

// formatGlyph builds the terminal-safe displayable form of r, or "" when
// the character cannot be shown: controls and formats, surrogates (not
// encodable at all), line and paragraph separators, and the selector
// ranges. Nonspacing and enclosing marks are anchored to a dotted circle;
// double combining marks span two bases and get one on each side; spacing
// combining marks carry their own advance and print as-is; space
// separators are bracketed to stay visible.
func formatGlyph(r rune, category string, doubleCombining bool) string {
	if isSelector(r) {
		return ""
	}
	switch category {
	case "Cc", "Cf", "Cs", "Zl", "Zp":
		return ""
	case "Mn", "Me":
		if doubleCombining {
			return "◌" + string(r) + "◌"
		}
		return "◌" + string(r)
	case "Zs":
		return "[" + string(r) + "]"
	}
	return string(r)
}
