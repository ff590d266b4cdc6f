package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected Style
		wantErr  bool
	}{
		{"inline", StyleInline, false},
		{"Inline", StyleInline, false},
		{"i", StyleInline, false},
		{"v", StyleV, false},
		{"V", StyleV, false},
		{" vee ", StyleV, false},
		{"w", StyleInline, true},
		{"", StyleInline, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStyle(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidLayoutStyle)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestStyle_MinCylinders(t *testing.T) {
	assert.Equal(t, 2, StyleInline.MinCylinders())
	assert.Equal(t, 4, StyleV.MinCylinders())
}

func TestStyle_TextRoundTrip(t *testing.T) {
	var s Style
	require.NoError(t, s.UnmarshalText([]byte("v")))
	assert.Equal(t, StyleV, s)

	text, err := s.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "v", string(text))
}

func TestParseTieBreak(t *testing.T) {
	tb, err := ParseTieBreak("LEFT")
	require.NoError(t, err)
	assert.Equal(t, TieBreakLeft, tb)

	tb, err = ParseTieBreak("")
	require.NoError(t, err)
	assert.Equal(t, TieBreakRight, tb)

	_, err = ParseTieBreak("middle")
	assert.Error(t, err)

	var policy TieBreak
	require.NoError(t, policy.UnmarshalText([]byte("left")))
	assert.Equal(t, "left", policy.String())
}
