package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/inboundlab/triage/version"
)

var (
	cfgFile      string
	providerName string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Schema-constrained extraction from unstructured text",
	Long: `Triage turns inbound free text into validated structured records by
delegating to an LLM completion endpoint with a declared output schema.

Two schemas are built in:
  - tasks:     emails -> actionable task records (priority, deadline, items)
  - sentiment: customer feedback -> sentiment analysis with churn risk,
               follow-up triage, and response template selection

Every enumerated field and numeric bound declared by a schema is validated
locally after the model call; non-conformant output is rejected.`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.triage/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&providerName, "provider", "", "LLM provider name from config (default: defaults.llm_provider)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(sentimentCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger honoring --verbose.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
