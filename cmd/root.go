package cmd

import (
	"os"

	"github.com/killallgit/scout-api/pkg/config"
	"github.com/killallgit/scout-api/pkg/logger"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scout-api",
	Short: "Scout API server",
	Long: `Scout API - AI analysis and training plans for grassroots athletes

The server runs two generative pipelines backed by Gemini:
  • analyze-video: scores an uploaded performance video into an assessment
  • generate-training-plan: builds a week-by-week plan from the athlete's
    profile and latest assessment

Results are stored in Supabase (PostgREST) or a SQL database.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "settings file (default ./config/settings.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs")
}

// loadConfig initializes configuration for commands that need it
func loadConfig(cmd *cobra.Command, _ []string) error {
	switch cmd.Name() {
	case "version", "help", "scout-api":
		return nil
	}

	path, _ := cmd.Flags().GetString("config")
	config.SetConfigFile(path)
	return config.Init()
}

// newLogger builds the process logger. Flags win over configuration.
func newLogger(cmd *cobra.Command, cfg config.LoggingConfig) (*logger.Logger, error) {
	level := cfg.Level
	if flag := cmd.Flag("log-level"); flag != nil && flag.Changed {
		level = flag.Value.String()
	}
	jsonLogs := cfg.JSON
	if flag := cmd.Flag("json-logs"); flag != nil && flag.Changed {
		jsonLogs = flag.Value.String() == "true"
	}
	return logger.New(level, jsonLogs)
}
