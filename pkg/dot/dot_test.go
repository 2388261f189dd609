package dot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	conv, err := New()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Snake identifier", input: "user_id", expected: "user.id"},
		{name: "Acronym-shaped tokens keep case", input: "SCREEN_NAME", expected: "SCREEN.NAME"},
		{name: "Dotted acronym", input: "visit the U.S.A. today", expected: "visit.the.USA.today"},
		{name: "Digits spelled out", input: "route 66", expected: "route.sixty.six"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := conv.Convert(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestConvertLowercaseAcronyms(t *testing.T) {
	conv, err := New(WithLowercaseAcronyms())
	require.NoError(t, err)

	out, err := conv.Convert("SCREEN_NAME")
	require.NoError(t, err)
	assert.Equal(t, "screen.name", out)

	out, err = conv.Convert("visit the U.S.A. today")
	require.NoError(t, err)
	assert.Equal(t, "visit.the.usa.today", out)
}
