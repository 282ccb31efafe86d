// Package annotations parses the per-character annotation blocks of the
// Unicode names list into typed facts: cross-references, free-text comments
// and variation-selector labels.
//
// An annotation block is the run of indented lines following a character's
// heading in NamesList.txt, for example:
//
//	* Maltese, IPA, ...
//	x (cyrillic small letter tshe - 045B)
//	x (planck constant over two pi - 210F)
//
// Parsing is total: malformed lines are reported to the diagnostic sink and
// skipped, and an absent block yields the empty Annotation.
package annotations

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/scrypster/unilook/internal/diag"
	"github.com/scrypster/unilook/pkg/types"
)

// Source provides the raw annotation text for a character.
type Source interface {
	// RawText returns the character's annotation block, or ok=false when
	// the names list has no annotations for it. A non-nil error means the
	// underlying names list could not be read at all.
	RawText(r rune) (text string, ok bool, err error)
}

// Variation selectors the `~` facet may reference.
const (
	variationSelectorLo = 0xFE00
	variationSelectorHi = 0xFE0F
)

var (
	bareCrossRef  = regexp.MustCompile(`^([0-9A-F]{4,6})$`)
	parenCrossRef = regexp.MustCompile(`^\(.+ - ([0-9A-F]{4,6})\)$`)
	variationRef  = regexp.MustCompile(`^([0-9A-F]{4,6}) ([0-9A-F]{4,6}) (.+)$`)
)

// Parse decodes one character's raw annotation block. Lines have the form
// "<marker> <payload>" with an optional leading tab; the markers are
// "*" (comment), "x" (cross-reference), "~" (variation selector), and
// "=", "%", "#" (facets this tool does not surface). Continuation-indented
// lines are silently dropped — a documented limitation, not an error. Any
// other unparseable line produces one sink warning and is skipped.
func Parse(r rune, text string, sink diag.Sink) types.Annotation {
	if sink == nil {
		sink = diag.Discard
	}
	var ann types.Annotation
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		line = strings.TrimPrefix(line, "\t")
		if strings.HasPrefix(line, "\t") || strings.HasPrefix(line, " ") {
			// Continuation of the previous line; dropped.
			continue
		}
		marker, payload, found := strings.Cut(line, " ")
		if !found || payload == "" {
			sink.Warnf("U+%04X: unparseable annotation line %q", r, line)
			continue
		}
		switch marker {
		case "*":
			ann.Comments = append(ann.Comments, payload)
		case "x":
			if ref, ok := parseCrossRef(payload); ok {
				ann.SeeAlso = append(ann.SeeAlso, ref)
			} else {
				sink.Warnf("U+%04X: malformed cross-reference %q", r, payload)
			}
		case "~":
			selector, label, ok := parseVariation(r, payload)
			if !ok {
				sink.Warnf("U+%04X: malformed variation line %q", r, payload)
				continue
			}
			if ann.Variations == nil {
				ann.Variations = make(map[rune]string)
			}
			ann.Variations[selector] = label
		case "=", "%", "#":
			// Informal aliases, formal aliases and decompositions are
			// carried by other providers.
		default:
			sink.Warnf("U+%04X: unparseable annotation line %q", r, line)
		}
	}
	return ann
}

// parseCrossRef decodes a cross-reference payload: either a bare hex code
// point literal, or a parenthesized phrase ending in " - XXXX)".
func parseCrossRef(payload string) (rune, bool) {
	var hex string
	if m := bareCrossRef.FindStringSubmatch(payload); m != nil {
		hex = m[1]
	} else if m := parenCrossRef.FindStringSubmatch(payload); m != nil {
		hex = m[1]
	} else {
		return 0, false
	}
	return parseCodePoint(hex)
}

// parseVariation decodes "~ <own hex> <selector hex> <label>". The first
// code must match the annotated character's own scalar value and the
// selector must lie in the variation-selector range.
func parseVariation(r rune, payload string) (selector rune, label string, ok bool) {
	m := variationRef.FindStringSubmatch(payload)
	if m == nil {
		return 0, "", false
	}
	base, ok := parseCodePoint(m[1])
	if !ok || base != r {
		return 0, "", false
	}
	selector, ok = parseCodePoint(m[2])
	if !ok || selector < variationSelectorLo || selector > variationSelectorHi {
		return 0, "", false
	}
	return selector, m[3], true
}

func parseCodePoint(hex string) (rune, bool) {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || v > 0x10FFFF {
		return 0, false
	}
	return rune(v), true
}
