package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/scrypster/unilook/pkg/types"
)

// renderRecord writes one character record as text, one fact per line.
// Absent fields are omitted entirely.
func renderRecord(w io.Writer, rec types.Record) {
	fmt.Fprintf(w, "U+%04X %s\n", rec.Rune, rec.Name)
	if rec.Glyph != "" {
		fmt.Fprintf(w, "Glyph: %s\n", rec.Glyph)
	}
	for _, alias := range rec.Aliases {
		fmt.Fprintf(w, "Alias: %s (%s)\n", alias.Name, alias.Label)
	}
	fmt.Fprintf(w, "Category: %s (%s)\n", rec.Category, rec.CategoryName)
	if rec.Script != nil {
		fmt.Fprintf(w, "Script: %s\n", rec.Script)
	}
	if rec.Block != nil {
		fmt.Fprintf(w, "Block: %s\n", rec.Block)
	}
	if rec.Mnemonic != "" {
		fmt.Fprintf(w, "Mnemonic: %s\n", rec.Mnemonic)
	}
	for _, seq := range rec.Sequences {
		fmt.Fprintf(w, "Compose: %s\n", strings.Join(seq, " "))
	}
	if len(rec.Entities) > 0 {
		fmt.Fprintf(w, "Entities: %s\n", strings.Join(rec.Entities, ", "))
	}
	if rec.Numeric != nil {
		fmt.Fprintf(w, "Numeric value: %s\n", rec.Numeric)
	}
	if len(rec.Annotation.SeeAlso) > 0 {
		refs := make([]string, len(rec.Annotation.SeeAlso))
		for i, r := range rec.Annotation.SeeAlso {
			refs[i] = fmt.Sprintf("U+%04X", r)
		}
		fmt.Fprintf(w, "See also: %s\n", strings.Join(refs, ", "))
	}
	for _, comment := range rec.Annotation.Comments {
		fmt.Fprintf(w, "Comment: %s\n", comment)
	}
	for _, selector := range sortedSelectors(rec.Annotation.Variations) {
		fmt.Fprintf(w, "Variation: U+%04X %s\n", selector, rec.Annotation.Variations[selector])
	}
}

// sortedSelectors orders the variation map's keys so rendering is
// deterministic.
func sortedSelectors(variations map[rune]string) []rune {
	selectors := make([]rune, 0, len(variations))
	for selector := range variations {
		selectors = append(selectors, selector)
	}
	sort.Slice(selectors, func(i, j int) bool { return selectors[i] < selectors[j] })
	return selectors
}
