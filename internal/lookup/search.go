package lookup

import (
	"fmt"
	"regexp"
	"strings"
)

// Search scans the codespace for characters whose canonical name matches
// the glob pattern (`?`, `*`, `[...]`, `[!...]`), case-insensitively.
// Results come back in ascending code-point order — the natural scan
// order. Only canonical names are matched: aliases, named sequences and
// synthesized bracket labels are not search targets (a documented
// limitation). A syntactically invalid pattern is an error; a pattern with
// no matches returns an empty result.
func (s *Service) Search(pattern string) ([]rune, error) {
	re, err := compileGlob(strings.ToUpper(pattern))
	if err != nil {
		return nil, err
	}
	var matches []rune
	for r := rune(0); r < s.scanLimit; r++ {
		name, ok := s.classifier.Name(r)
		if !ok {
			continue
		}
		if re.MatchString(name) {
			matches = append(matches, r)
		}
	}
	return matches, nil
}

// compileGlob translates a glob pattern into an anchored regular
// expression and compiles it. Canonical names are upper-case ASCII, so the
// caller upper-cases the pattern and no case flag is needed.
func compileGlob(pattern string) (*regexp.Regexp, error) {
	expr, err := globToRegex(pattern)
	if err != nil {
		return nil, err
	}
	return regexp.Compile(expr)
}

// globToRegex is a pure glob-to-regex translation with the standard
// semantics: `?` matches one character, `*` any run, `[...]` a character
// set with `!` negation. Everything else is literal.
func globToRegex(pattern string) (string, error) {
	var b strings.Builder
	b.WriteString("^(?:")
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteByte('.')
		case '[':
			j := i + 1
			if j < len(pattern) && (pattern[j] == '!' || pattern[j] == '^') {
				j++
			}
			if j < len(pattern) && pattern[j] == ']' {
				// A leading "]" is a member, not the closer.
				j++
			}
			for j < len(pattern) && pattern[j] != ']' {
				j++
			}
			if j >= len(pattern) {
				return "", fmt.Errorf("lookup: unterminated character set in pattern %q", pattern)
			}
			set := pattern[i+1 : j]
			set = strings.ReplaceAll(set, `\`, `\\`)
			if strings.HasPrefix(set, "!") {
				set = "^" + set[1:]
			}
			b.WriteByte('[')
			b.WriteString(set)
			b.WriteByte(']')
			i = j
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString(")$")
	return b.String(), nil
}
