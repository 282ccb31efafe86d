package ucd

import (
	"fmt"
	"strings"
)

// Jamo short names for the Hangul syllable composition algorithm.
var (
	hangulLeads = [19]string{
		"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S",
		"SS", "", "J", "JJ", "C", "K", "T", "P", "H",
	}
	hangulVowels = [21]string{
		"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA",
		"WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI", "I",
	}
	hangulTrails = [28]string{
		"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG",
		"LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S",
		"SS", "NG", "J", "C", "K", "T", "P", "H",
	}
)

const (
	hangulBase  = 0xAC00
	hangulCount = 19 * 21 * 28
)

// rangeName synthesizes the canonical name for a code point whose name is
// published as a range in the character database. The rune-name table
// carries only the range placeholder ("<CJK Ideograph>", "<Hangul
// Syllable>", ...); the per-character name is computed. Surrogate and
// private-use ranges stay unnamed — their identifiers are the synthesized
// bracket labels, not canonical names.
func rangeName(r rune, placeholder string) (string, bool) {
	switch {
	case strings.HasPrefix(placeholder, "<CJK Ideograph"):
		return fmt.Sprintf("CJK UNIFIED IDEOGRAPH-%04X", r), true
	case strings.HasPrefix(placeholder, "<Tangut Ideograph"):
		return fmt.Sprintf("TANGUT IDEOGRAPH-%04X", r), true
	case placeholder == "<Hangul Syllable>":
		return hangulSyllableName(r)
	}
	return "", false
}

// hangulSyllableName composes the canonical name of a precomposed Hangul
// syllable from its Jamo short names, per the standard decomposition
// S = L*588 + V*28 + T.
func hangulSyllableName(r rune) (string, bool) {
	s := r - hangulBase
	if s < 0 || s >= hangulCount {
		return "", false
	}
	lead := hangulLeads[s/588]
	vowel := hangulVowels[(s%588)/28]
	trail := hangulTrails[s%28]
	return "HANGUL SYLLABLE " + lead + vowel + trail, true
}
