package translate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePayload_FlatArray(t *testing.T) {
	text, fallback := parsePayload(`["Hallo Welt", "en"]`)
	require.Equal(t, "Hallo Welt", text)
	require.False(t, fallback)
}

func TestParsePayload_NestedPair(t *testing.T) {
	text, fallback := parsePayload(`[["Bonjour", "en"]]`)
	require.Equal(t, "Bonjour", text)
	require.False(t, fallback)
}

func TestParsePayload_Segments(t *testing.T) {
	payload := `[[["Erster Satz.","First sentence."],["Zweiter Satz.","Second sentence."]]]`
	text, fallback := parsePayload(payload)
	require.Equal(t, "Erster Satz. Zweiter Satz.", text)
	require.False(t, fallback)
}

func TestParsePayload_PlainText(t *testing.T) {
	text, fallback := parsePayload("Hola\n")
	require.Equal(t, "Hola", text)
	require.False(t, fallback)
}

func TestParsePayload_QuotedFallback(t *testing.T) {
	// Unknown object shape: fall back to the first quoted string.
	text, fallback := parsePayload(`{"sentences":"Guten Tag"}`)
	require.Equal(t, "sentences", text)
	require.True(t, fallback)
}

func TestParsePayload_RawFallback(t *testing.T) {
	text, fallback := parsePayload(`[12345]`)
	require.Equal(t, "[12345]", text)
	require.True(t, fallback)
}

func TestParsePayload_EmptyArray(t *testing.T) {
	text, fallback := parsePayload(`[]`)
	require.Equal(t, "[]", text)
	require.True(t, fallback)
}
