package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the meal once and print the result",
	Long:  `Send the meal photo for analysis without opening the window and print the assessment to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := resolveSettings(cmd)

		result := newRequester(settings).Analyze(cmd.Context())
		if !result.OK() {
			return fmt.Errorf("error while analyzing image: %w", result.Err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addProviderFlags(analyzeCmd)
}
