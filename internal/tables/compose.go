package tables

import (
	"bufio"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/scrypster/unilook/pkg/types"
)

// keysymPunct rewrites symbolic compose-key tokens to the printable
// punctuation they stand for. Tokens without an entry stay in their
// bracketed form.
var keysymPunct = map[string]string{
	"space":        " ",
	"exclam":       "!",
	"quotedbl":     `"`,
	"numbersign":   "#",
	"dollar":       "$",
	"percent":      "%",
	"ampersand":    "&",
	"apostrophe":   "'",
	"parenleft":    "(",
	"parenright":   ")",
	"asterisk":     "*",
	"plus":         "+",
	"comma":        ",",
	"minus":        "-",
	"period":       ".",
	"slash":        "/",
	"colon":        ":",
	"semicolon":    ";",
	"less":         "<",
	"equal":        "=",
	"greater":      ">",
	"question":     "?",
	"at":           "@",
	"bracketleft":  "[",
	"backslash":    `\`,
	"bracketright": "]",
	"asciicircum":  "^",
	"underscore":   "_",
	"grave":        "`",
	"braceleft":    "{",
	"bar":          "|",
	"braceright":   "}",
	"asciitilde":   "~",
}

var composeToken = regexp.MustCompile(`<([^>]+)>`)

// Compose maps characters to the compose-key sequences that produce them,
// parsed from an X11 Compose format table. A character may have many
// sequences; they are kept in source-file order.
type Compose struct {
	src RawSource

	once   sync.Once
	byRune map[rune][]types.InputSequence
	err    error
}

// NewCompose returns a provider reading the compose table from src.
func NewCompose(src RawSource) *Compose {
	return &Compose{src: src}
}

// Lookup returns the input sequences for r in source order, or ok=false
// when none exist. The first call builds the table; a build failure is
// fatal and returned on every call.
func (c *Compose) Lookup(r rune) ([]types.InputSequence, bool, error) {
	c.once.Do(func() { c.byRune, c.err = c.build() })
	if c.err != nil {
		return nil, false, c.err
	}
	seqs, ok := c.byRune[r]
	return seqs, ok, nil
}

// build parses entry lines of the form
//
//	<Multi_key> <quotedbl> <a> : "ä" adiaeresis # LATIN SMALL LETTER A ...
//
// Entries whose quoted payload is not exactly one character are discarded.
func (c *Compose) build() (map[rune][]types.InputSequence, error) {
	r, err := c.src.Open()
	if err != nil {
		return nil, fmt.Errorf("tables: open compose table: %w", err)
	}
	defer r.Close()

	byRune := make(map[rune][]types.InputSequence)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		left, right, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		payload, ok := quotedPayload(right)
		if !ok || utf8.RuneCountInString(payload) != 1 {
			continue
		}
		seq := normalizeSequence(left)
		if len(seq) == 0 {
			continue
		}
		target, _ := utf8.DecodeRuneInString(payload)
		byRune[target] = append(byRune[target], seq)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tables: read compose table: %w", err)
	}
	if len(byRune) == 0 {
		return nil, fmt.Errorf("tables: compose table contains no entries")
	}
	return byRune, nil
}

// quotedPayload extracts the first double-quoted string from the right-hand
// side of an entry, honoring backslash escapes for `\"` and `\\`.
func quotedPayload(s string) (string, bool) {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return "", false
	}
	var b strings.Builder
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 < len(s) {
				i++
				b.WriteByte(s[i])
			}
		case '"':
			return b.String(), true
		default:
			b.WriteByte(s[i])
		}
	}
	return "", false
}

// normalizeSequence tokenizes the left-hand side of an entry and rewrites
// each symbolic key: single-character key names become that character,
// names with a punctuation equivalent are replaced, everything else keeps
// its bracketed form.
func normalizeSequence(left string) types.InputSequence {
	matches := composeToken.FindAllStringSubmatch(left, -1)
	if matches == nil {
		return nil
	}
	seq := make(types.InputSequence, 0, len(matches))
	for _, m := range matches {
		name := m[1]
		switch {
		case utf8.RuneCountInString(name) == 1:
			seq = append(seq, name)
		case keysymPunct[name] != "":
			seq = append(seq, keysymPunct[name])
		default:
			seq = append(seq, "<"+name+">")
		}
	}
	return seq
}
