// Package config loads menukit settings from defaults, an optional config
// file, a .env file, environment variables, and bound CLI flags, in
// ascending precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces menukit environment variables, e.g.
// MENUKIT_ASK_ARGS=true.
const EnvPrefix = "MENUKIT"

// Settings holds the recognized menu options. Title is display-only,
// AskArgs enables per-parameter argument prompting, ClearScreen clears the
// terminal between loop iterations.
type Settings struct {
	Title       string
	Prompt      string
	AskArgs     bool
	ClearScreen bool
	LogLevel    string
	LogFile     string
}

// Defaults returns the built-in settings used when nothing overrides them.
func Defaults() Settings {
	return Settings{
		Title:    "Main Menu",
		Prompt:   "> ",
		LogLevel: "info",
	}
}

// Load resolves settings through the global viper instance so that CLI
// flags bound by the entry point take precedence over environment
// variables, which take precedence over the config file and defaults. A
// missing config file or .env is not an error.
func Load() (Settings, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Settings{}, fmt.Errorf("loading .env: %w", err)
		}
	}

	defaults := Defaults()
	viper.SetDefault("title", defaults.Title)
	viper.SetDefault("prompt", defaults.Prompt)
	viper.SetDefault("ask_args", defaults.AskArgs)
	viper.SetDefault("clear_screen", defaults.ClearScreen)
	viper.SetDefault("log_level", defaults.LogLevel)
	viper.SetDefault("log_file", defaults.LogFile)

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetConfigName("menukit")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, "menukit"))
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return Settings{
		Title:       viper.GetString("title"),
		Prompt:      viper.GetString("prompt"),
		AskArgs:     viper.GetBool("ask_args"),
		ClearScreen: viper.GetBool("clear_screen"),
		LogLevel:    viper.GetString("log_level"),
		LogFile:     viper.GetString("log_file"),
	}, nil
}
