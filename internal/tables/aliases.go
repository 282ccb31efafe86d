package tables

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/scrypster/unilook/pkg/types"
)

// Aliases maps characters to their secondary names from the name-alias
// table (NameAliases.txt): semicolon-delimited "codepoint;name;label"
// records. A character's aliases keep their source order.
type Aliases struct {
	src RawSource

	once   sync.Once
	byRune map[rune][]types.Alias
	err    error
}

// NewAliases returns a provider reading the alias table from src.
func NewAliases(src RawSource) *Aliases {
	return &Aliases{src: src}
}

// Lookup returns the aliases for r in source order, or ok=false when none
// exist. The first call builds the table; a build failure is fatal and
// returned on every call.
func (a *Aliases) Lookup(r rune) ([]types.Alias, bool, error) {
	a.once.Do(func() { a.byRune, a.err = a.build() })
	if a.err != nil {
		return nil, false, a.err
	}
	aliases, ok := a.byRune[r]
	return aliases, ok, nil
}

func (a *Aliases) build() (map[rune][]types.Alias, error) {
	r, err := a.src.Open()
	if err != nil {
		return nil, fmt.Errorf("tables: open alias table: %w", err)
	}
	defer r.Close()

	byRune := make(map[rune][]types.Alias)
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) != 3 {
			return nil, fmt.Errorf("tables: alias table line %d: expected 3 fields, got %d", lineno, len(fields))
		}
		v, err := strconv.ParseUint(fields[0], 16, 32)
		if err != nil || v > 0x10FFFF {
			return nil, fmt.Errorf("tables: alias table line %d: bad code point %q", lineno, fields[0])
		}
		target := rune(v)
		byRune[target] = append(byRune[target], types.Alias{
			Name:  fields[1],
			Label: fields[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tables: read alias table: %w", err)
	}
	if len(byRune) == 0 {
		return nil, fmt.Errorf("tables: alias table contains no entries")
	}
	return byRune, nil
}
