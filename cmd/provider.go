package cmd

import (
	"github.com/fuelflow/meal-analyzer/common"
	"github.com/fuelflow/meal-analyzer/llm"
	"github.com/fuelflow/meal-analyzer/meal"
	"github.com/spf13/cobra"
)

func addProviderFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("provider", "p", "", "LLM provider to use (groq, openai, anthropic)")
	cmd.Flags().StringP("model", "m", "", "LLM model to use for the analysis")
	cmd.Flags().String("base-url", "", "Override the provider API base URL")
	cmd.Flags().Int("api-timeout", 0, "API timeout in seconds")
	cmd.Flags().Int("retry-max", 0, "Retry failed API calls this many times")
}

// resolveSettings layers command line flags over the settings file.
func resolveSettings(cmd *cobra.Command) common.Settings {
	settings := common.WithYamlFile()

	if cmd.Flags().Changed("provider") {
		settings.Provider, _ = cmd.Flags().GetString("provider")
	}
	if cmd.Flags().Changed("model") {
		settings.Model, _ = cmd.Flags().GetString("model")
	}
	if cmd.Flags().Changed("base-url") {
		settings.BaseURL, _ = cmd.Flags().GetString("base-url")
	}
	if cmd.Flags().Changed("api-timeout") {
		settings.APITimeout, _ = cmd.Flags().GetInt("api-timeout")
	}
	if cmd.Flags().Changed("retry-max") {
		settings.RetryMax, _ = cmd.Flags().GetInt("retry-max")
	}
	return settings
}

// newRequester wires the settings into a Requester. The client itself is only
// built when an analysis is triggered.
func newRequester(settings common.Settings) *meal.Requester {
	return meal.NewRequester(func() (llm.LLM, error) {
		return llm.NewLLM(settings.Provider, settings.Model,
			llm.WithMaxTokens(llm.DefaultMaxTokens),
			llm.WithAPITimeout(settings.APITimeout),
			llm.WithBaseURL(settings.BaseURL),
			llm.WithRetryMax(settings.RetryMax),
		)
	})
}
