package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Main Menu", settings.Title)
	assert.Equal(t, "> ", settings.Prompt)
	assert.False(t, settings.AskArgs)
	assert.False(t, settings.ClearScreen)
	assert.Equal(t, "info", settings.LogLevel)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("MENUKIT_TITLE", "Ops Console")
	t.Setenv("MENUKIT_ASK_ARGS", "true")
	t.Setenv("MENUKIT_CLEAR_SCREEN", "1")

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Ops Console", settings.Title)
	assert.True(t, settings.AskArgs)
	assert.True(t, settings.ClearScreen)
}

func TestLoad_BoundFlagBeatsEnvironment(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("MENUKIT_TITLE", "From Env")
	viper.Set("title", "From Flag")

	settings, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "From Flag", settings.Title)
}
