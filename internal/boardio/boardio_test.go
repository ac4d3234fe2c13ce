package boardio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const openingString = "---------------------------OX------XO--------------------------- X"

func TestParseFormatRoundTrip(t *testing.T) {
	body := strings.TrimSuffix(openingString, " X")
	b, err := Parse(body)
	require.NoError(t, err)
	assert.Equal(t, body, Format(b))
	assert.Equal(t, body+" X;", Debug(b))
}

func TestParseRejectsWrongLength(t *testing.T) {
	_, err := Parse("short")
	require.Error(t, err)
}

func TestParseRejectsIllegalCharacter(t *testing.T) {
	bad := strings.Repeat("-", 63) + "?"
	_, err := Parse(bad)
	require.Error(t, err)
}

func TestPrettyHighlightsCell(t *testing.T) {
	body := strings.TrimSuffix(openingString, " X")
	b, err := Parse(body)
	require.NoError(t, err)
	out := Pretty(b, 21) // (5,2)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 8)
	assert.Equal(t, byte('*'), lines[2][5])
}
