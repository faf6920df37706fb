package cmd

import (
	"fmt"

	"github.com/fuelflow/meal-analyzer/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of the meal analyzer`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Meal Analyzer v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
