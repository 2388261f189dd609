package kebab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_case_convert/internal/core/domain"
)

func TestConvert(t *testing.T) {
	conv, err := New()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Two words", input: "Hello World", expected: "hello-world"},
		{name: "Underscore runs collapse", input: "Another___Test", expected: "another-test"},
		{name: "Empty string", input: "", expected: ""},
		{name: "No number spelling", input: "route 66", expected: "route-66"},
		{name: "No acronym preservation", input: "OECD report", expected: "oecd-report"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := conv.Convert(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestConvertInvalidInput(t *testing.T) {
	conv, err := New()
	require.NoError(t, err)

	for _, input := range []any{nil, 42, []byte("bytes")} {
		_, err := conv.Convert(input)
		require.Error(t, err)

		var convErr *domain.ConversionError
		require.True(t, errors.As(err, &convErr))
	}
}
