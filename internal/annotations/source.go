package annotations

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

// FileSource reads annotation blocks from a names list file
// (NamesList.txt). The file is scanned once on first use and the per
// character blocks are retained for the process lifetime.
type FileSource struct {
	Path string

	once   sync.Once
	blocks map[rune]string
	err    error
}

// NewFileSource returns a source backed by the names list at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// RawText returns the annotation block recorded for r, or ok=false when the
// names list carries none. The first call parses the whole file; a file
// level failure is fatal and returned on every call.
func (s *FileSource) RawText(r rune) (string, bool, error) {
	s.once.Do(func() {
		f, err := os.Open(s.Path)
		if err != nil {
			s.err = fmt.Errorf("annotations: open names list: %w", err)
			return
		}
		defer f.Close()
		s.blocks, s.err = parseNamesList(f)
	})
	if s.err != nil {
		return "", false, s.err
	}
	text, ok := s.blocks[r]
	return text, ok, nil
}

// parseNamesList collects, for every character heading line "XXXX<tab>NAME",
// the run of indented lines that follows it. Block headers ("@..."), file
// comments (";...") and blank lines delimit nothing; only the next heading
// ends a character's block.
func parseNamesList(r io.Reader) (map[rune]string, error) {
	blocks := make(map[rune]string)
	var (
		current rune = -1
		lines   []string
	)
	flush := func() {
		if current >= 0 && len(lines) > 0 {
			blocks[current] = strings.Join(lines, "\n")
		}
		lines = nil
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "\t"):
			if current >= 0 {
				lines = append(lines, line)
			}
		case strings.HasPrefix(line, "@") || strings.HasPrefix(line, ";"):
			flush()
			current = -1
		default:
			flush()
			current = -1
			hex, _, found := strings.Cut(line, "\t")
			if !found {
				continue
			}
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || v > 0x10FFFF {
				continue
			}
			current = rune(v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("annotations: read names list: %w", err)
	}
	flush()
	return blocks, nil
}
