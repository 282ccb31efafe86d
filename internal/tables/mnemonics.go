package tables

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// mnemonicFixups corrects two known bad rows in the published mnemonic
// table before the uniqueness checks run: the codes for the service mark
// and trade mark signs carry a lowercased first letter in the source.
var mnemonicFixups = map[string]string{
	"sM": "SM",
	"tM": "TM",
}

// Mnemonics maps characters to their short mnemonic codes from the RFC 1345
// style cross-reference table. The mapping is injective in both directions;
// a source table violating that is rejected at build time.
type Mnemonics struct {
	src RawSource

	once   sync.Once
	byRune map[rune]string
	err    error
}

// NewMnemonics returns a provider reading the mnemonic table from src.
func NewMnemonics(src RawSource) *Mnemonics {
	return &Mnemonics{src: src}
}

// Lookup returns the mnemonic code for r, or ok=false when the table has
// none. The first call builds the table; a build failure is fatal and
// returned on every call.
func (m *Mnemonics) Lookup(r rune) (string, bool, error) {
	m.once.Do(func() { m.byRune, m.err = m.build() })
	if m.err != nil {
		return "", false, m.err
	}
	code, ok := m.byRune[r]
	return code, ok, nil
}

// build parses the fixed-column table. Each entry line carries the code in
// a seven-column field after one leading space, then the hex code point,
// then the name; lines not shaped like that are ignored (headers, prose).
// The table must assign each code to at most one character and each
// character at most one code.
func (m *Mnemonics) build() (map[rune]string, error) {
	r, err := m.src.Open()
	if err != nil {
		return nil, fmt.Errorf("tables: open mnemonic table: %w", err)
	}
	defer r.Close()

	byRune := make(map[rune]string)
	byCode := make(map[string]rune)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		code, target, ok := splitMnemonicLine(sc.Text())
		if !ok {
			continue
		}
		if fixed, hasFix := mnemonicFixups[code]; hasFix {
			code = fixed
		}
		if prev, dup := byCode[code]; dup {
			return nil, fmt.Errorf("tables: mnemonic %q assigned to both U+%04X and U+%04X", code, prev, target)
		}
		if prev, dup := byRune[target]; dup {
			return nil, fmt.Errorf("tables: U+%04X carries both mnemonics %q and %q", target, prev, code)
		}
		byCode[code] = target
		byRune[target] = code
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tables: read mnemonic table: %w", err)
	}
	if len(byRune) == 0 {
		return nil, fmt.Errorf("tables: mnemonic table contains no entries")
	}
	return byRune, nil
}

// splitMnemonicLine extracts (code, code point) from one table line. Entry
// lines put the code at column 1 in a field padded to seven columns and the
// hex code point at column 8; prose lines never match that shape, so the
// column positions are the entry test — a hex-looking word later in a prose
// sentence must not become a mnemonic.
func splitMnemonicLine(line string) (string, rune, bool) {
	if len(line) < 12 || line[0] != ' ' {
		return "", 0, false
	}
	code := strings.TrimRight(line[1:8], " ")
	if code == "" || strings.ContainsRune(code, ' ') {
		return "", 0, false
	}
	rest := strings.Fields(line[8:])
	if len(rest) < 2 {
		return "", 0, false
	}
	hex := rest[0]
	if len(hex) < 4 || len(hex) > 6 {
		return "", 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || v > 0x10FFFF {
		return "", 0, false
	}
	return code, rune(v), true
}
