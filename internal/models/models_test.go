package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTurn(t *testing.T) {
	turn, err := NewTurn(RoleUser, "hello")
	require.NoError(t, err)
	assert.Equal(t, Turn{Role: RoleUser, Text: "hello"}, turn)

	_, err = NewTurn(Role("assistant"), "hi")
	require.ErrorIs(t, err, ErrInvalidRole)

	_, err = NewTurn("", "hi")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 1.0, s.Temperature)
	assert.Equal(t, "gemini-2.0-flash-exp", s.Model)
	assert.Equal(t, "you are a helpful assistant", s.SystemInstruction)

	_, idx, ok := FindModelByID(s.Model)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		want Theme
		ok   bool
	}{
		{"light", ThemeLight, true},
		{" Dark ", ThemeDark, true},
		{"", "", false},
		{"solarized", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseTheme(tc.in)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
}
