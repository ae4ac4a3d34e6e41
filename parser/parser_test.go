package parser_test

import (
	"testing"

	"github.com/kestrelvm/kestrel/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_StripsCommentsAndBlankLines(t *testing.T) {
	src := "NOP # this is a comment\n\n   \nHALT\n"
	p, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, p.Lines, 2)
	assert.Equal(t, []string{"NOP"}, p.Lines[0].Tokens)
	assert.Equal(t, []string{"HALT"}, p.Lines[1].Tokens)
}

func TestParse_LabelsDoNotAdvanceIndex(t *testing.T) {
	src := "NOP\n[LOOP]\nHALT\nJUMP 0 3\n"
	p, err := parser.Parse(src)
	require.NoError(t, err)
	require.Len(t, p.Lines, 3)
	assert.Equal(t, 0, p.Lines[0].Index)
	assert.Equal(t, 1, p.Lines[1].Index, "HALT follows NOP at index 1, the label did not consume an index")
	assert.Equal(t, 2, p.Lines[2].Index)
	assert.Equal(t, 1, p.Labels["LOOP"])
}

func TestParse_EmptyLabelNameFails(t *testing.T) {
	_, err := parser.Parse("[]\nNOP\n")
	require.Error(t, err)
	var syn *parser.SyntaxError
	assert.ErrorAs(t, err, &syn)
}
