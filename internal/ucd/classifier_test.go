package ucd

import (
	"strings"
	"testing"

	"github.com/scrypster/unilook/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const unicodeDataFixture = `0031;DIGIT ONE;Nd;0;EN;;1;1;1;N;ONE;;;;
0038;DIGIT EIGHT;Nd;0;EN;;8;8;8;N;EIGHT;;;;
00BD;VULGAR FRACTION ONE HALF;No;0;ON;<fraction> 0031 2044 0032;;;1/2;N;FRACTION ONE HALF;;;;
2159;VULGAR FRACTION ONE SIXTH;No;0;ON;<fraction> 0031 2044 0036;;;1/6;N;FRACTION ONE SIXTH;;;;
0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;
0F33;TIBETAN DIGIT HALF ZERO;No;0;L;;;;-1/2;N;;;;;
035C;COMBINING DOUBLE BREVE BELOW;Mn;233;NSM;;;;;N;;;;;
035D;COMBINING DOUBLE BREVE;Mn;234;NSM;;;;;N;;;;;
`

const blocksFixture = `# Blocks excerpt
0000..007F; Basic Latin
0080..00FF; Latin-1 Supplement
0100..017F; Latin Extended-A
2600..26FF; Miscellaneous Symbols
`

func newTestProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New(strings.NewReader(unicodeDataFixture), strings.NewReader(blocksFixture))
	require.NoError(t, err)
	return p
}

func TestProvider_Name(t *testing.T) {
	p := newTestProvider(t)

	name, ok := p.Name(0x0127)
	require.True(t, ok)
	assert.Equal(t, "LATIN SMALL LETTER H WITH STROKE", name)

	_, ok = p.Name(0x0008)
	assert.False(t, ok, "control characters have no canonical name")

	_, ok = p.Name(0xE000)
	assert.False(t, ok, "private-use characters have no canonical name")

	_, ok = p.Name(0xD800)
	assert.False(t, ok, "surrogates have no canonical name")
}

func TestProvider_NameForRangedCodePoints(t *testing.T) {
	p := newTestProvider(t)

	cases := map[rune]string{
		0x3400:  "CJK UNIFIED IDEOGRAPH-3400",
		0x4E00:  "CJK UNIFIED IDEOGRAPH-4E00",
		0x6F22:  "CJK UNIFIED IDEOGRAPH-6F22",
		0x20000: "CJK UNIFIED IDEOGRAPH-20000",
		0xAC00:  "HANGUL SYLLABLE GA",
		0xD55C:  "HANGUL SYLLABLE HAN",
		0xD7A3:  "HANGUL SYLLABLE HIH",
		0x17000: "TANGUT IDEOGRAPH-17000",
	}
	for r, want := range cases {
		name, ok := p.Name(r)
		require.True(t, ok, "U+%04X must have a computed name", r)
		assert.Equal(t, want, name, "name of U+%04X", r)
	}
}

func TestHangulSyllableName_Bounds(t *testing.T) {
	_, ok := hangulSyllableName(0xABFF)
	assert.False(t, ok)
	_, ok = hangulSyllableName(0xD7A4)
	assert.False(t, ok)
}

func TestProvider_DoubleCombining(t *testing.T) {
	p := newTestProvider(t)

	assert.True(t, p.DoubleCombining(0x035C), "combining class 233")
	assert.True(t, p.DoubleCombining(0x035D), "combining class 234")
	assert.False(t, p.DoubleCombining(0x0300), "ordinary nonspacing mark")
	assert.False(t, p.DoubleCombining('A'))
}

func TestProvider_Category(t *testing.T) {
	p := newTestProvider(t)

	cases := map[rune]string{
		'h':      "Ll",
		'H':      "Lu",
		'7':      "Nd",
		0x0008:   "Cc",
		0x00AD:   "Cf",
		0x0020:   "Zs",
		0x2028:   "Zl",
		0x2029:   "Zp",
		0xD800:   "Cs",
		0xE000:   "Co",
		0x0378:   "Cn",
		0x2603:   "So",
		0x0300:   "Mn",
		0x10FFFF: "Cn",
	}
	for r, want := range cases {
		assert.Equal(t, want, p.Category(r), "category of U+%04X", r)
	}
}

func TestProvider_CategoryLongName(t *testing.T) {
	p := newTestProvider(t)

	assert.Equal(t, "Lowercase Letter", p.CategoryLongName("Ll"))
	assert.Equal(t, "Control", p.CategoryLongName("Cc"))
	assert.Equal(t, "Xx", p.CategoryLongName("Xx"), "unknown codes fall back to themselves")
}

func TestProvider_NumericValue(t *testing.T) {
	p := newTestProvider(t)

	v, ok := p.NumericValue('1')
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = p.NumericValue(0x2159)
	require.True(t, ok)
	assert.Equal(t, 1.0/6.0, v, "fractions must evaluate through float64 division")

	v, ok = p.NumericValue(0x0F33)
	require.True(t, ok)
	assert.Equal(t, -0.5, v)

	_, ok = p.NumericValue('A')
	assert.False(t, ok, "empty numeric fields mean no numeric property")
}

func TestProvider_Script(t *testing.T) {
	p := newTestProvider(t)

	assert.Equal(t, types.PropertyValue{Short: "Latn", Long: "Latin"}, p.Script(0x0127))
	assert.Equal(t, types.PropertyValue{Short: "Cyrl", Long: "Cyrillic"}, p.Script(0x045B))
	assert.Equal(t, types.PropertyValue{Short: "Zyyy", Long: "Common"}, p.Script(0x2603))
	assert.Equal(t, types.PropertyValue{Short: "Zzzz", Long: "Unknown"}, p.Script(0x0378),
		"unassigned code points carry the generic script")
}

func TestProvider_Block(t *testing.T) {
	p := newTestProvider(t)

	b, ok := p.Block(0x0127)
	require.True(t, ok)
	assert.Equal(t, types.Block{Lo: 0x0100, Hi: 0x017F, Name: "Latin Extended-A"}, b)

	b, ok = p.Block(0x2603)
	require.True(t, ok)
	assert.Equal(t, "Miscellaneous Symbols", b.Name)

	_, ok = p.Block(0x10FFFF)
	assert.False(t, ok, "code points outside every block report absence")
}

func TestParseBlocks_MalformedLineIsFatal(t *testing.T) {
	_, err := parseBlocks(strings.NewReader("0000..007F Basic Latin\n"))
	require.Error(t, err)

	_, err = parseBlocks(strings.NewReader("007F..0000; Backwards\n"))
	require.Error(t, err)
}

func TestParseUnicodeData_MalformedLineIsFatal(t *testing.T) {
	_, _, err := parseUnicodeData(strings.NewReader("0031;DIGIT ONE;Nd\n"))
	require.Error(t, err)

	_, _, err = parseUnicodeData(strings.NewReader("0031;DIGIT ONE;Nd;0;EN;;1;1;1/0;N;;;;;\n"))
	require.Error(t, err)
}

func TestBlockString(t *testing.T) {
	b := types.Block{Lo: 0x0100, Hi: 0x017F, Name: "Latin Extended-A"}
	assert.Equal(t, "U+0100..U+017F Latin Extended-A", b.String())
}
