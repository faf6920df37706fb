package cmd

import (
	"os"

	"fyne.io/fyne/v2/app"
	"github.com/chzyer/readline"
	"github.com/fuelflow/meal-analyzer/ui"
	"github.com/spf13/cobra"
)

const appID = "io.fuelflow.mealanalyzer"

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Open the Meal Analysis window",
	Long: `Open the Meal Analysis desktop window and press Analyze Meal to assess the meal photo.
With --terminal the window is drawn in the terminal instead: press Enter to analyze,
Enter again to dismiss an error, and q to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := resolveSettings(cmd)

		if terminal, _ := cmd.Flags().GetBool("terminal"); terminal {
			return runTerminalWindow(cmd, settings.WrapWidth, newRequester(settings))
		}

		return ui.NewDesktop(app.NewWithID(appID), newRequester(settings)).Run(cmd.Context())
	},
}

func runTerminalWindow(cmd *cobra.Command, wrapWidth int, analyzer ui.Analyzer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "q",
		EOFPrompt:       "q",
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = rl.Close()
	}()

	surface := ui.NewTerminalSurface(os.Stdout, wrapWidth)
	return ui.NewWindow(ui.NewApp(surface, analyzer), surface, rl).Run(cmd.Context())
}

func addWindowFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("terminal", false, "Draw the window in the terminal instead of opening a desktop window")
}

func init() {
	rootCmd.AddCommand(windowCmd)
	addProviderFlags(windowCmd)
	addWindowFlags(windowCmd)
}
