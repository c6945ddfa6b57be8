// Package llm reaches an OpenAI-compatible chat completion endpoint.
package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	DefaultBaseURL     = "https://api.groq.com/openai/v1"
	DefaultModel       = "llama-3.3-70b-versatile"
	DefaultTemperature = 0.8
	DefaultMaxTokens   = 2000
	DefaultTimeout     = 20 * time.Second

	APIKeyEnv = "GROQ_API_KEY"
)

var (
	ErrOffline       = errors.New("llm: offline")
	ErrEmptyResponse = errors.New("llm: empty response")
)

// Completer turns a system and user prompt into the assistant's reply text.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// ConfigFromEnv returns the default Groq configuration with the key taken
// from GROQ_API_KEY.
func ConfigFromEnv() Config {
	return Config{
		APIKey:      strings.TrimSpace(os.Getenv(APIKeyEnv)),
		BaseURL:     DefaultBaseURL,
		Model:       DefaultModel,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
		Timeout:     DefaultTimeout,
	}
}

// Client is a Completer backed by go-openai.
type Client struct {
	api *openai.Client
	cfg Config
}

// New returns a Client, or Offline when no API key is configured.
func New(cfg Config) Completer {
	if cfg.APIKey == "" {
		return Offline{}
	}
	return NewClient(cfg)
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{api: openai.NewClientWithConfig(oc), cfg: cfg}
}

func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("llm: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

// Offline always fails with ErrOffline.
type Offline struct{}

func (Offline) Complete(context.Context, string, string) (string, error) {
	return "", ErrOffline
}

// Func adapts a function to Completer.
type Func func(ctx context.Context, system, user string) (string, error)

func (f Func) Complete(ctx context.Context, system, user string) (string, error) {
	return f(ctx, system, user)
}
