package ucd

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/scrypster/unilook/pkg/types"
)

// parseBlocks reads a Blocks.txt style table:
//
//	0000..007F; Basic Latin
//	0080..00FF; Latin-1 Supplement
//
// Blank lines and "#" comments are skipped; any other malformed line is a
// structural error. The result is sorted by starting code point.
func parseBlocks(r io.Reader) ([]types.Block, error) {
	var blocks []types.Block
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		rng, name, found := strings.Cut(line, ";")
		if !found {
			return nil, fmt.Errorf("ucd: blocks line %d: missing %q separator", lineno, ";")
		}
		lo, hi, found := strings.Cut(strings.TrimSpace(rng), "..")
		if !found {
			return nil, fmt.Errorf("ucd: blocks line %d: malformed range %q", lineno, rng)
		}
		loV, err1 := strconv.ParseUint(lo, 16, 32)
		hiV, err2 := strconv.ParseUint(hi, 16, 32)
		if err1 != nil || err2 != nil || loV > hiV || hiV > 0x10FFFF {
			return nil, fmt.Errorf("ucd: blocks line %d: malformed range %q", lineno, rng)
		}
		blocks = append(blocks, types.Block{
			Lo:   rune(loV),
			Hi:   rune(hiV),
			Name: strings.TrimSpace(name),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ucd: read blocks: %w", err)
	}
	if len(blocks) == 0 {
		return nil, fmt.Errorf("ucd: blocks table contains no entries")
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Lo < blocks[j].Lo })
	return blocks, nil
}

// findBlock binary-searches the sorted block table.
func findBlock(blocks []types.Block, r rune) (types.Block, bool) {
	i := sort.Search(len(blocks), func(i int) bool { return blocks[i].Hi >= r })
	if i < len(blocks) && blocks[i].Contains(r) {
		return blocks[i], true
	}
	return types.Block{}, false
}
