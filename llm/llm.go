package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fuelflow/meal-analyzer/common"
	"github.com/fuelflow/meal-analyzer/logger"
)

const (
	GroqBaseURL   = "https://api.groq.com/openai/v1"
	OpenAIBaseURL = "https://api.openai.com/v1"
)

// Sampling defaults for a single-shot, non-streaming completion.
const (
	DefaultTemperature = 1.0
	DefaultTopP        = 1.0
	DefaultMaxTokens   = 1024
	DefaultAPITimeout  = 60 // seconds
)

var (
	ErrMissingAPIKey       = errors.New("API key environment variable is not set")
	ErrUnsupportedProvider = errors.New("unsupported provider")
	ErrNoChoices           = errors.New("response contained no choices")
	ErrEmptyContent        = errors.New("response message has no content")
)

// OptionType defines the type of option
type OptionType string

// Available option types
const (
	ModelNameOption   OptionType = "model"
	MaxTokensOption   OptionType = "max_tokens"
	APITimeoutOption  OptionType = "api_timeout"
	BaseURLOption     OptionType = "base_url"
	TemperatureOption OptionType = "temperature"
	TopPOption        OptionType = "top_p"
	RetryMaxOption    OptionType = "retry_max"
)

// Option represents a generic configuration option for any LLM provider
type Option struct {
	Type  OptionType
	Value any
}

// WithModel creates an option to set the model name
func WithModel(model string) Option {
	return Option{Type: ModelNameOption, Value: model}
}

// WithMaxTokens creates an option to set the completion token limit
func WithMaxTokens(maxTokens int) Option {
	return Option{Type: MaxTokensOption, Value: maxTokens}
}

// WithAPITimeout creates an option to set the API timeout in seconds
func WithAPITimeout(timeout int) Option {
	return Option{Type: APITimeoutOption, Value: timeout}
}

// WithBaseURL points the provider at a different API root
func WithBaseURL(baseURL string) Option {
	return Option{Type: BaseURLOption, Value: baseURL}
}

func WithTemperature(temperature float32) Option {
	return Option{Type: TemperatureOption, Value: temperature}
}

func WithTopP(topP float32) Option {
	return Option{Type: TopPOption, Value: topP}
}

// WithRetryMax sets how many times a failed HTTP call is retried. Zero means never.
func WithRetryMax(retryMax int) Option {
	return Option{Type: RetryMaxOption, Value: retryMax}
}

// config is the provider-independent view of the applied options.
type config struct {
	modelName   string
	maxTokens   int
	apiTimeout  int // in seconds
	baseURL     string
	temperature float32
	topP        float32
	retryMax    int
}

func defaultConfig(modelName, baseURL string) config {
	return config{
		modelName:   modelName,
		maxTokens:   DefaultMaxTokens,
		apiTimeout:  DefaultAPITimeout,
		baseURL:     baseURL,
		temperature: DefaultTemperature,
		topP:        DefaultTopP,
	}
}

func (c *config) apply(opts ...Option) {
	for _, opt := range opts {
		switch opt.Type {
		case ModelNameOption:
			if modelName, ok := opt.Value.(string); ok && modelName != "" {
				c.modelName = modelName
			}
		case MaxTokensOption:
			if maxTokens, ok := opt.Value.(int); ok && maxTokens > 0 {
				c.maxTokens = maxTokens
			}
		case APITimeoutOption:
			if timeout, ok := opt.Value.(int); ok && timeout > 0 {
				c.apiTimeout = timeout
			}
		case BaseURLOption:
			if baseURL, ok := opt.Value.(string); ok && baseURL != "" {
				c.baseURL = baseURL
			}
		case TemperatureOption:
			if temperature, ok := opt.Value.(float32); ok {
				c.temperature = temperature
			}
		case TopPOption:
			if topP, ok := opt.Value.(float32); ok {
				c.topP = topP
			}
		case RetryMaxOption:
			if retryMax, ok := opt.Value.(int); ok {
				c.retryMax = retryMax
			}
		}
	}
}

func (c config) retryConfig() common.RetryConfig {
	return common.DefaultRetryConfig().WithRetryMax(c.retryMax)
}

// Request is one user turn with a text part and an image part.
type Request struct {
	Prompt   string
	ImageURL string
}

// Result is the outcome of one analysis: either the model's text or the reason it failed.
type Result struct {
	Text string
	Err  error
}

func Success(text string) Result {
	return Result{Text: text}
}

func Failure(err error) Result {
	return Result{Err: err}
}

func (r Result) OK() bool {
	return r.Err == nil
}

// LLM defines the interface for multimodal language model prompting
type LLM interface {
	// Analyze sends the request to the language model and returns its result
	Analyze(ctx context.Context, req Request) Result
}

var apiKeyEnvVars = map[string]string{
	common.ProviderGroq:      "GROQ_API_KEY",
	common.ProviderOpenAI:    "OPENAI_API_KEY",
	common.ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// getAPIKey resolves the credential for provider from the environment,
// falling back to LLM_API_KEY.
func getAPIKey(provider string) (string, error) {
	envVars := []string{}
	if name, ok := apiKeyEnvVars[provider]; ok {
		envVars = append(envVars, name)
	}
	envVars = append(envVars, "LLM_API_KEY")

	for _, name := range envVars {
		if apiKey := os.Getenv(name); apiKey != "" {
			return apiKey, nil
		}
	}
	return "", fmt.Errorf("%w: %v", ErrMissingAPIKey, envVars)
}

// NewLLM builds the client for providerName using the API key from the environment.
func NewLLM(providerName, modelName string, opts ...Option) (LLM, error) {
	if _, ok := apiKeyEnvVars[providerName]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, providerName)
	}

	apiKey, err := getAPIKey(providerName)
	if err != nil {
		logger.Error(err)
		return nil, err
	}

	options := append([]Option{WithModel(modelName)}, opts...)

	var llmClient LLM
	switch providerName {
	case common.ProviderGroq:
		llmClient, err = NewOpenAI(apiKey, append([]Option{WithBaseURL(GroqBaseURL)}, options...)...)
	case common.ProviderOpenAI:
		llmClient, err = NewOpenAI(apiKey, append([]Option{WithBaseURL(OpenAIBaseURL)}, options...)...)
	case common.ProviderAnthropic:
		llmClient, err = NewAnthropic(apiKey, options...)
	}
	if err != nil {
		return nil, err
	}

	logger.Debugf("Using LLM provider %s with model %s", providerName, modelName)
	return llmClient, nil
}
