package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"transcript-tutor/internal/contextutil"
)

const (
	defaultSummaryMaxTokens = 4000
	defaultAnswerMaxTokens  = 1000
	defaultTemperature      = 0.7
)

// Client is a client for an OpenAI-compatible chat completions API.
type Client struct {
	BaseURL          string
	Model            string
	SummaryMaxTokens int
	AnswerMaxTokens  int
	Temperature      float32
	api              *openai.Client
	limiter          *rate.Limiter
	httpClient       *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithMaxTokens sets the token limits for content generation and question answering.
// Non-positive values keep the defaults.
func WithMaxTokens(summary, answer int) Option {
	return func(c *Client) {
		if summary > 0 {
			c.SummaryMaxTokens = summary
		}
		if answer > 0 {
			c.AnswerMaxTokens = answer
		}
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float32) Option {
	return func(c *Client) {
		c.Temperature = t
	}
}

// WithLimiter paces every completion request through l.
func WithLimiter(l *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithTimeout sets the HTTP timeout for completion requests.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient = &http.Client{Timeout: d}
	}
}

// NewClient creates a new LLM client.
// baseURL includes the API version prefix, e.g. "https://api.openai.com/v1".
func NewClient(baseURL, apiKey, model string, opts ...Option) *Client {
	c := &Client{
		BaseURL:          baseURL,
		Model:            model,
		SummaryMaxTokens: defaultSummaryMaxTokens,
		AnswerMaxTokens:  defaultAnswerMaxTokens,
		Temperature:      defaultTemperature,
		httpClient:       http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = c.httpClient
	c.api = openai.NewClientWithConfig(cfg)

	return c
}

// GenerateEducationalContent produces a structured summary and quiz questions for a transcript.
func (c *Client) GenerateEducationalContent(ctx context.Context, transcript, title string) (EducationalContent, error) {
	logger := contextutil.LoggerFromContext(ctx)

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: contentSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: contentPrompt(transcript, title)},
	}

	content, err := c.complete(ctx, messages, GenerationParams{
		MaxTokens:   c.SummaryMaxTokens,
		Temperature: c.Temperature,
		JSON:        true,
	})
	if err != nil {
		return EducationalContent{}, fmt.Errorf("error generating content: %w", err)
	}

	result, err := ParseEducationalContent(content)
	if err != nil {
		logger.WarnContext(ctx, "model returned unusable content", "error", err, "content_length", len(content))
		return EducationalContent{}, fmt.Errorf("error generating content: %w", err)
	}

	logger.InfoContext(ctx, "educational content generated",
		"transcript_length", len(transcript),
		"questions", len(result.Questions),
	)
	return result, nil
}

// AnswerQuestion answers a student's question about a transcript.
func (c *Client) AnswerQuestion(ctx context.Context, question, transcript, title string) (string, error) {
	answer, err := c.complete(ctx, c.answerMessages(question, transcript, title), GenerationParams{
		MaxTokens:   c.AnswerMaxTokens,
		Temperature: c.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("error answering question: %w", err)
	}
	return answer, nil
}

// StreamAnswer answers a question and delivers the reply in chunks via callback.
func (c *Client) StreamAnswer(ctx context.Context, question, transcript, title string, callback func(chunk string) error) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	stream, err := c.api.CreateChatCompletionStream(ctx, c.request(c.answerMessages(question, transcript, title), GenerationParams{
		MaxTokens:   c.AnswerMaxTokens,
		Temperature: c.Temperature,
	}))
	if err != nil {
		return fmt.Errorf("failed to start stream: %w", err)
	}
	defer func() {
		_ = stream.Close()
	}()

	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read stream: %w", err)
		}
		if len(resp.Choices) == 0 {
			continue
		}

		if chunk := resp.Choices[0].Delta.Content; chunk != "" {
			if err := callback(chunk); err != nil {
				return fmt.Errorf("callback error: %w", err)
			}
		}
		if resp.Choices[0].FinishReason != "" {
			return nil
		}
	}
}

func (c *Client) answerMessages(question, transcript, title string) []openai.ChatCompletionMessage {
	return []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: tutorSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: answerPrompt(question, transcript, title)},
	}
}

func (c *Client) request(messages []openai.ChatCompletionMessage, params GenerationParams) openai.ChatCompletionRequest {
	req := openai.ChatCompletionRequest{
		Model:       c.Model,
		Messages:    messages,
		MaxTokens:   params.MaxTokens,
		Temperature: params.Temperature,
	}
	if params.JSON {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}
	return req
}

// complete sends a chat completion request and returns the first choice's content.
func (c *Client) complete(ctx context.Context, messages []openai.ChatCompletionMessage, params GenerationParams) (string, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if err := c.wait(ctx); err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, c.request(messages, params))
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", ErrEmptyResponse
	}

	logger.DebugContext(ctx, "chat completion finished",
		"model", c.Model,
		"duration_ms", time.Since(start).Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens,
		"finish_reason", resp.Choices[0].FinishReason,
	)
	return content, nil
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	return nil
}
