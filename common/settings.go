package common

import (
	"os"

	"github.com/fuelflow/meal-analyzer/logger"
	"gopkg.in/yaml.v3"
)

const (
	ProviderGroq      = "groq"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// SettingsFileNames are looked up in the working directory, in order.
var SettingsFileNames = []string{"meal.analyzer.yml", "meal.analyzer.yaml"}

type Settings struct {
	Provider   string `yaml:"provider"`
	Model      string `yaml:"model"`
	BaseURL    string `yaml:"base_url"`
	APITimeout int    `yaml:"api_timeout"`
	RetryMax   int    `yaml:"retry_max"`
	WrapWidth  int    `yaml:"wrap_width"`
}

func WithDefaultSettings() Settings {
	return Settings{
		Provider:   ProviderGroq,
		Model:      "llama-3.2-11b-vision-preview",
		APITimeout: 60,
		RetryMax:   0,
		WrapWidth:  62,
	}
}

// WithYamlFile returns the default settings overlaid with the first settings
// file found in the working directory. A missing or malformed file is logged
// and the defaults are kept.
func WithYamlFile() Settings {
	settings := WithDefaultSettings()

	var filePath string
	for _, name := range SettingsFileNames {
		if _, err := os.Stat(name); err == nil {
			filePath = name
			break
		}
	}

	if filePath == "" {
		logger.Debug("No settings file found in the current directory. Using default settings.")
		return settings
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Warnf("Failed to read settings file %s: %v", filePath, err)
		return settings
	}

	parsed := settings
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		logger.Warnf("Failed to parse YAML file %s: %v", filePath, err)
		return settings
	}

	logger.Infof("Using settings from YAML file: %s", filePath)
	return parsed
}
