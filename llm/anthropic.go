package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/fuelflow/meal-analyzer/common"
	"github.com/fuelflow/meal-analyzer/logger"
)

// AnthropicModel implements the LLM interface using Anthropic's API
type AnthropicModel struct {
	client anthropic.Client
	config config
}

// NewAnthropic creates a new Anthropic client
func NewAnthropic(apiKey string, opts ...Option) (*AnthropicModel, error) {
	if apiKey == "" {
		errMsg := "Anthropic API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	cfg := defaultConfig("claude-3-7-sonnet-latest", "")
	cfg.apply(opts...)

	retryClient := common.NewRetryableClient(cfg.retryConfig())

	clientOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(retryClient.StandardClient()),
		// retries are owned by the retryable HTTP client
		option.WithMaxRetries(0),
	}
	if cfg.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(cfg.baseURL))
	}

	logger.Debugf("Anthropic client initialized with model: %s, max tokens: %d, timeout: %d seconds",
		cfg.modelName, cfg.maxTokens, cfg.apiTimeout)

	return &AnthropicModel{
		client: anthropic.NewClient(clientOpts...),
		config: cfg,
	}, nil
}

// Analyze sends the prompt and image to Anthropic and returns the text blocks of the reply
func (a *AnthropicModel) Analyze(ctx context.Context, req Request) Result {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(a.config.apiTimeout)*time.Second)
	defer cancel()

	// Anthropic rejects temperature and top_p together on newer models, so only temperature is sent.
	messageParams := anthropic.MessageNewParams{
		Model:       anthropic.Model(a.config.modelName),
		MaxTokens:   int64(a.config.maxTokens),
		Temperature: anthropic.Float(float64(a.config.temperature)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(req.Prompt),
				anthropic.NewImageBlock(anthropic.URLImageSourceParam{URL: req.ImageURL}),
			),
		},
	}

	logger.Infof("Sending request to Anthropic with model %s, max tokens %d", a.config.modelName, a.config.maxTokens)

	message, err := a.client.Messages.New(ctx, messageParams)
	if err != nil {
		err = fmt.Errorf("failed to create message: %w", err)
		logger.Error(err)
		return Failure(err)
	}

	result := parseMessage(message)
	if !result.OK() {
		logger.Error(result.Err)
	}
	return result
}

func parseMessage(message *anthropic.Message) Result {
	if message == nil || len(message.Content) == 0 {
		return Failure(ErrNoChoices)
	}

	var content strings.Builder
	for _, block := range message.Content {
		switch b := block.AsAny().(type) {
		case anthropic.TextBlock:
			content.WriteString(b.Text)
		}
	}

	if strings.TrimSpace(content.String()) == "" {
		return Failure(ErrEmptyContent)
	}
	return Success(content.String())
}
