// Package main provides the menukit CLI entry point: an interactive demo
// menu built on the menukit engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"menukit/internal/config"
	"menukit/internal/logger"
	"menukit/internal/menu"
	"menukit/internal/shell"
)

var (
	title       string
	askArgs     bool
	clearScreen bool
	once        bool
	logLevel    string
	logFile     string
	version     = "0.1.0" // This could be set at build time
)

// rootCmd runs the interactive demo menu when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "menukit",
	Short: "menukit - interactive text-menu command dispatcher",
	Long: `menukit turns registered functions into an interactive numbered menu.
Options are selected by number, name, alias, or unambiguous prefix, and
declared parameters are prompted for and cast automatically.`,
	RunE: runMenu,
}

// versionCmd reports the menukit version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("menukit v%s\n", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.Flags().StringVar(&title, "title", "", "Menu title")
	rootCmd.Flags().BoolVar(&askArgs, "ask-args", false, "Prompt for option arguments before invoking")
	rootCmd.Flags().BoolVar(&clearScreen, "clear-screen", false, "Clear the terminal between menu iterations")
	rootCmd.Flags().BoolVar(&once, "once", false, "Run a single selection instead of looping")

	bindings := map[string]string{
		"title":        "title",
		"ask_args":     "ask-args",
		"clear_screen": "clear-screen",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			fmt.Fprintf(os.Stderr, "Error binding %s flag: %v\n", flag, err)
			os.Exit(1)
		}
	}
	if err := viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(versionCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}
	if err := logger.Configure(settings.LogLevel, settings.LogFile); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}
	logger.Debug("settings loaded", "title", settings.Title, "ask_args", settings.AskArgs)

	registry := menu.NewRegistry()
	if err := registerDemoOptions(registry, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("registering demo options: %w", err)
	}

	reader, err := shell.NewLineReader()
	if err != nil {
		return fmt.Errorf("opening terminal input: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			logger.Warn("closing input", "error", err)
		}
	}()

	runner := shell.NewRunner(registry, settings, reader, cmd.OutOrStdout())
	return runner.Run(!once)
}
