package types

// Annotation holds the facts decoded from a character's annotation block in
// the names list. A character with no annotation text has the zero value:
// no cross-references, no comments, no variations.
type Annotation struct {
	// SeeAlso lists cross-referenced characters in source order.
	SeeAlso []rune `json:"see_also,omitempty"`

	// Comments lists free-text remarks in source order.
	Comments []string `json:"comments,omitempty"`

	// Variations maps a variation selector (U+FE00..U+FE0F) to the label
	// describing its effect on this base character.
	Variations map[rune]string `json:"variations,omitempty"`
}

// Empty reports whether the annotation carries no facts at all.
func (a Annotation) Empty() bool {
	return len(a.SeeAlso) == 0 && len(a.Comments) == 0 && len(a.Variations) == 0
}

// Record is the fully resolved property bundle for one character, assembled
// by the lookup service from every provider. A Record is built fresh per
// query and never mutated afterwards.
//
// Absence convention: optional string fields use "" for "no data", optional
// composite fields use nil. A provider that reported no data for this
// character contributes exactly nothing — never an empty-but-present
// collection.
type Record struct {
	// Rune is the character this record describes.
	Rune rune `json:"rune"`

	// Name is the canonical Unicode name, or a synthesized bracketed label
	// like "<control-0008>" when the character has no defined name.
	Name string `json:"name"`

	// Aliases lists secondary names in source order, or nil.
	Aliases []Alias `json:"aliases,omitempty"`

	// Glyph is a terminal-safe displayable form of the character, or ""
	// when the character cannot be displayed (controls, variation
	// selectors, line separators).
	Glyph string `json:"glyph,omitempty"`

	// Mnemonic is the short cross-reference table code, or "".
	Mnemonic string `json:"mnemonic,omitempty"`

	// Sequences lists compose-key input sequences in source order, or nil.
	Sequences []InputSequence `json:"sequences,omitempty"`

	// Entities lists markup entity names in sorted order, or nil.
	Entities []string `json:"entities,omitempty"`

	// Category is the two-letter general category code, e.g. "Ll".
	Category string `json:"category"`

	// CategoryName is the long form of Category, e.g. "Lowercase Letter".
	CategoryName string `json:"category_name"`

	// Block is the containing block, or nil for code points outside every
	// defined block.
	Block *Block `json:"block,omitempty"`

	// Script is the character's script, or nil when the script is the
	// generic unknown value (display suppressed).
	Script *PropertyValue `json:"script,omitempty"`

	// Numeric is the exact numeric value, or nil when the character has no
	// numeric property.
	Numeric *Rational `json:"numeric,omitempty"`

	// Annotation holds cross-references, comments and variation labels.
	Annotation Annotation `json:"annotation"`
}
