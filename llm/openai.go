package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fuelflow/meal-analyzer/common"
	"github.com/fuelflow/meal-analyzer/logger"
	"github.com/sashabaranov/go-openai"
)

// OpenAIModel implements the LLM interface against any OpenAI-compatible
// chat completion endpoint (Groq, OpenAI).
type OpenAIModel struct {
	client *openai.Client
	config config
}

// NewOpenAI creates a new OpenAI-compatible client
func NewOpenAI(apiKey string, opts ...Option) (*OpenAIModel, error) {
	if apiKey == "" {
		errMsg := "OpenAI API key cannot be empty"
		logger.Error(errMsg)
		return nil, errors.New(errMsg)
	}

	cfg := defaultConfig("llama-3.2-11b-vision-preview", GroqBaseURL)
	cfg.apply(opts...)

	retryClient := common.NewRetryableClient(cfg.retryConfig())

	clientConfig := openai.DefaultConfig(apiKey)
	clientConfig.BaseURL = strings.TrimRight(cfg.baseURL, "/")
	clientConfig.HTTPClient = retryClient.StandardClient()

	logger.Debugf("OpenAI-compatible client initialized for %s with model: %s, max tokens: %d, timeout: %d seconds",
		clientConfig.BaseURL, cfg.modelName, cfg.maxTokens, cfg.apiTimeout)

	return &OpenAIModel{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}, nil
}

// ChatRequest builds the completion request for req: one user message with a
// text part and an image_url part, non-streaming, no stop sequences.
func (o *OpenAIModel) ChatRequest(req Request) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: o.config.modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: req.Prompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: req.ImageURL,
						},
					},
				},
			},
		},
		MaxCompletionTokens: o.config.maxTokens,
		Temperature:         o.config.temperature,
		TopP:                o.config.topP,
		Stream:              false,
		Stop:                nil,
	}
}

// Analyze sends the request and parses the first choice
func (o *OpenAIModel) Analyze(ctx context.Context, req Request) Result {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(o.config.apiTimeout)*time.Second)
	defer cancel()

	chatReq := o.ChatRequest(req)

	logger.Infof("Sending request with model %s, max completion tokens %d", o.config.modelName, o.config.maxTokens)
	logger.Debugf("Image URL: %s", req.ImageURL)

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		err = fmt.Errorf("failed to create chat completion: %w", err)
		logger.Error(err)
		return Failure(err)
	}

	result := ParseCompletion(resp)
	if !result.OK() {
		logger.Error(result.Err)
	}
	return result
}

// ParseCompletion extracts the text of the first choice. A response without
// choices or without message content is a Failure, the same as a transport error.
func ParseCompletion(resp openai.ChatCompletionResponse) Result {
	if len(resp.Choices) == 0 {
		return Failure(ErrNoChoices)
	}

	message := resp.Choices[0].Message
	content := message.Content
	if content == "" {
		var parts []string
		for _, part := range message.MultiContent {
			if part.Type == openai.ChatMessagePartTypeText && part.Text != "" {
				parts = append(parts, part.Text)
			}
		}
		content = strings.Join(parts, "\n")
	}

	if strings.TrimSpace(content) == "" {
		return Failure(ErrEmptyContent)
	}
	return Success(content)
}
