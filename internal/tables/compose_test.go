package tables_test

import (
	"testing"

	"github.com/scrypster/unilook/internal/tables"
	"github.com/scrypster/unilook/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const composeFixture = `# X11 Compose file excerpt
include "%L"

<Multi_key> <minus> <h>          : "ħ"   U0127  # LATIN SMALL LETTER H WITH STROKE
<Multi_key> <quotedbl> <a>       : "ä"   adiaeresis
<Multi_key> <a> <quotedbl>       : "ä"   adiaeresis
<dead_grave> <e>                 : "è"   egrave
<Multi_key> <C> <C> <C> <P>      : "☭"   U262D
<Multi_key> <f> <f> <i>          : "ffi" U FB03  # ligature, multi-char payload
`

func TestCompose_LookupKeepsSourceOrder(t *testing.T) {
	c := tables.NewCompose(tables.MemorySource(composeFixture))

	seqs, ok, err := c.Lookup('ä')
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, seqs, 2)
	assert.Equal(t, types.InputSequence{"<Multi_key>", `"`, "a"}, seqs[0])
	assert.Equal(t, types.InputSequence{"<Multi_key>", "a", `"`}, seqs[1])
}

func TestCompose_SymbolicTokensRewritten(t *testing.T) {
	c := tables.NewCompose(tables.MemorySource(composeFixture))

	seqs, ok, err := c.Lookup(0x0127)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, seqs, 1)
	// <minus> has a punctuation equivalent, <Multi_key> does not, <h> is a
	// single-character key name.
	assert.Equal(t, types.InputSequence{"<Multi_key>", "-", "h"}, seqs[0])
}

func TestCompose_UnknownSymbolicTokenKeptBracketed(t *testing.T) {
	c := tables.NewCompose(tables.MemorySource(composeFixture))

	seqs, ok, err := c.Lookup('è')
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, types.InputSequence{"<dead_grave>", "e"}, seqs[0])
}

func TestCompose_MultiCharacterPayloadDiscarded(t *testing.T) {
	c := tables.NewCompose(tables.MemorySource(composeFixture))

	_, ok, err := c.Lookup(0xFB03)
	require.NoError(t, err)
	assert.False(t, ok, "entries producing more than one character must be discarded")
}

func TestCompose_NoEntriesIsFatal(t *testing.T) {
	c := tables.NewCompose(tables.MemorySource("# only comments\n"))
	_, _, err := c.Lookup('a')
	require.Error(t, err)
}
