package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const program = "clean-release"

var (
	// Global flags
	logLevel string
	verbose  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   program,
	Short: "Forcibly delete Windows build output directories",
	Long: `clean-release deletes build output directories that standard tools cannot,
because they contain files with reserved device names (nul, con, aux, ...),
names ending in a dot or space, or paths longer than MAX_PATH.`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	Version:           buildVersionString(),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func init() {
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", envOr("CLEAN_RELEASE_LOG_LEVEL", "info"),
		"Log level (panic, fatal, error, warn, info, debug, trace).\n"+
			"Defaults to $CLEAN_RELEASE_LOG_LEVEL, or info.")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Shorthand for --log-level=debug")

	// Add commands
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(completionCmd)
}
