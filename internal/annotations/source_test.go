package annotations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const namesListFixture = `; charset=UTF-8
@@	0100	Latin Extended-A	017F
@		European Latin
0126	LATIN CAPITAL LETTER H WITH STROKE
0127	LATIN SMALL LETTER H WITH STROKE
	* Maltese, IPA, ...
	x (cyrillic small letter tshe - 045B)
	x (planck constant over two pi - 210F)
0128	LATIN CAPITAL LETTER I WITH TILDE
	x (combining tilde - 0303)
`

func TestParseNamesList_CollectsBlocksPerCharacter(t *testing.T) {
	blocks, err := parseNamesList(strings.NewReader(namesListFixture))
	require.NoError(t, err)

	require.Contains(t, blocks, rune(0x0127))
	assert.Equal(t,
		"\t* Maltese, IPA, ...\n"+
			"\tx (cyrillic small letter tshe - 045B)\n"+
			"\tx (planck constant over two pi - 210F)",
		blocks[0x0127])

	assert.Contains(t, blocks, rune(0x0128))
	assert.NotContains(t, blocks, rune(0x0126),
		"characters without annotation lines must have no block")
}

func TestParseNamesList_HeaderLinesDelimitBlocks(t *testing.T) {
	text := "0041\tLATIN CAPITAL LETTER A\n\t* remark\n@\tSubheading\n\t* stray line under header\n"
	blocks, err := parseNamesList(strings.NewReader(text))
	require.NoError(t, err)

	assert.Equal(t, "\t* remark", blocks[0x0041],
		"indented lines after a header must not attach to the previous character")
}

func TestFileSource_MissingFileIsFatal(t *testing.T) {
	src := NewFileSource("testdata/does-not-exist.txt")
	_, _, err := src.RawText(0x0041)
	require.Error(t, err)

	// The failure is cached and returned on every call.
	_, _, err2 := src.RawText(0x0042)
	assert.Equal(t, err, err2)
}
