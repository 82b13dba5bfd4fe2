package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sayhalo.db")
	conn, err := Open(path)
	require.NoError(t, err)
	defer conn.Close()

	_, ok, err := GetPreference(conn, ThemeKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, SetPreference(conn, ThemeKey, "dark"))
	require.NoError(t, SetPreference(conn, ThemeKey, "light"))

	v, ok, err := GetPreference(conn, ThemeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)

	var rows int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM preferences").Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestPrefsSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sayhalo.db")
	conn, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, Prefs{DB: conn}.SaveTheme("dark"))
	require.NoError(t, conn.Close())

	conn, err = Open(path)
	require.NoError(t, err)
	defer conn.Close()

	theme, ok, err := Prefs{DB: conn}.LoadTheme()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", theme)
}
