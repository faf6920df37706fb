package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fuelflow/meal-analyzer/logger"
	"github.com/spf13/cobra"
)

const terminalLogFile = "meal-analyzer.log"

var (
	// Command line flags
	logLevel string
	logFile  string
)

var rootCmd = &cobra.Command{
	Use:   "meal-analyzer",
	Short: "Meal Analysis - nutrition feedback for a meal photo using AI",
	Long: `Meal Analyzer sends a meal photo to a hosted multimodal language model and
shows the nutrition assessment it returns.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logLevel, resolveLogFile(cmd))
		logger.Debugf("Log level set to: %s", logLevel)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// The window is the default surface
		return windowCmd.RunE(cmd, args)
	},
}

// resolveLogFile keeps log lines out of the terminal window: unless --log-file
// is given, a terminal window logs to terminalLogFile.
func resolveLogFile(cmd *cobra.Command) string {
	if logFile != "" {
		return logFile
	}
	if terminal, err := cmd.Flags().GetBool("terminal"); err == nil && terminal {
		return terminalLogFile
	}
	return ""
}

// Execute runs the root command and handles errors
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Subcommands are added in their respective init() functions
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Append logs to this file instead of stderr")

	addProviderFlags(rootCmd)
	addWindowFlags(rootCmd)
}
