package tables

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
)

// Entities maps characters to the markup entity names that produce them,
// parsed from a WHATWG entities.json document:
//
//	{ "&amp;": { "codepoints": [38], "characters": "&" }, ... }
//
// Names are normalized to the full "&name;" form; entities expanding to
// more than one code point are skipped. Each character's names form a set,
// returned in sorted order.
type Entities struct {
	src RawSource

	once   sync.Once
	byRune map[rune][]string
	err    error
}

// NewEntities returns a provider reading the entity table from src.
func NewEntities(src RawSource) *Entities {
	return &Entities{src: src}
}

// Lookup returns the sorted entity names for r, or ok=false when none
// exist. The first call builds the table; a build failure is fatal and
// returned on every call.
func (e *Entities) Lookup(r rune) ([]string, bool, error) {
	e.once.Do(func() { e.byRune, e.err = e.build() })
	if e.err != nil {
		return nil, false, e.err
	}
	names, ok := e.byRune[r]
	return names, ok, nil
}

func (e *Entities) build() (map[rune][]string, error) {
	data, err := readAll(e.src)
	if err != nil {
		return nil, fmt.Errorf("tables: read entity table: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("tables: entity table is not valid JSON")
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("tables: entity table is not a JSON object")
	}

	seen := make(map[rune]map[string]bool)
	doc.ForEach(func(key, value gjson.Result) bool {
		cps := value.Get("codepoints").Array()
		if len(cps) != 1 {
			return true
		}
		target := rune(cps[0].Int())
		name := normalizeEntityName(key.String())
		if name == "" {
			return true
		}
		if seen[target] == nil {
			seen[target] = make(map[string]bool)
		}
		seen[target][name] = true
		return true
	})
	if len(seen) == 0 {
		return nil, fmt.Errorf("tables: entity table contains no entries")
	}

	byRune := make(map[rune][]string, len(seen))
	for r, names := range seen {
		list := make([]string, 0, len(names))
		for name := range names {
			list = append(list, name)
		}
		sort.Strings(list)
		byRune[r] = list
	}
	return byRune, nil
}

// normalizeEntityName forces the "&name;" form: the source lists some
// legacy entities both with and without the trailing semicolon.
func normalizeEntityName(name string) string {
	name = strings.TrimPrefix(name, "&")
	name = strings.TrimSuffix(name, ";")
	if name == "" {
		return ""
	}
	return "&" + name + ";"
}
