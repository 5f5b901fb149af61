package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaction_StringRoundTrip(t *testing.T) {
	for _, f := range []Faction{FactionNone, FactionCats, FactionHyenas} {
		parsed, err := ParseFaction(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestParseFaction(t *testing.T) {
	f, err := ParseFaction(" Hyenas ")
	require.NoError(t, err)
	assert.Equal(t, FactionHyenas, f)

	f, err = ParseFaction("neutral")
	require.NoError(t, err)
	assert.Equal(t, FactionNone, f)

	_, err = ParseFaction("lions")
	assert.ErrorIs(t, err, ErrUnknownFaction)
	assert.Equal(t, "Faction(9)", Faction(9).String())
}

func TestFaction_TextMarshalling(t *testing.T) {
	text, err := FactionCats.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "cats", string(text))

	var f Faction
	require.NoError(t, f.UnmarshalText([]byte("hyenas")))
	assert.Equal(t, FactionHyenas, f)
	assert.Error(t, f.UnmarshalText([]byte("lions")))
	assert.Equal(t, FactionHyenas, f, "failed unmarshal leaves value unchanged")
}
