package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// parseUnicodeData extracts from a UnicodeData.txt style table the numeric
// value field (field 8) and the double-combining marks (canonical combining
// class field 3 equal to 233 or 234). The numeric field holds either a
// plain number or a fraction like "1/6"; characters with an empty field
// have no numeric property. Range sentinel entries ("..., First>" /
// "..., Last>") never carry either property and are skipped with the rest
// of the empty fields.
func parseUnicodeData(r io.Reader) (map[rune]float64, map[rune]bool, error) {
	numeric := make(map[rune]float64)
	doubleCombining := make(map[rune]bool)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) < 9 {
			return nil, nil, fmt.Errorf("ucd: unicode data line %d: expected at least 9 fields, got %d", lineno, len(fields))
		}
		if fields[8] == "" && fields[3] != "233" && fields[3] != "234" {
			continue
		}
		cp, err := strconv.ParseUint(fields[0], 16, 32)
		if err != nil || cp > 0x10FFFF {
			return nil, nil, fmt.Errorf("ucd: unicode data line %d: bad code point %q", lineno, fields[0])
		}
		if fields[3] == "233" || fields[3] == "234" {
			doubleCombining[rune(cp)] = true
		}
		if fields[8] == "" {
			continue
		}
		v, err := parseNumericField(fields[8])
		if err != nil {
			return nil, nil, fmt.Errorf("ucd: unicode data line %d: %w", lineno, err)
		}
		numeric[rune(cp)] = v
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("ucd: read unicode data: %w", err)
	}
	return numeric, doubleCombining, nil
}

// parseNumericField evaluates a numeric value field: "17", "-1/2", "1/6".
func parseNumericField(field string) (float64, error) {
	if num, den, found := strings.Cut(field, "/"); found {
		n, err1 := strconv.ParseInt(num, 10, 64)
		d, err2 := strconv.ParseInt(den, 10, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, fmt.Errorf("bad numeric value %q", field)
		}
		return float64(n) / float64(d), nil
	}
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("bad numeric value %q", field)
	}
	return v, nil
}
