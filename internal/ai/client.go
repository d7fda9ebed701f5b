// Package ai talks to the hosted text-completion endpoint that produces the
// health analysis, diet tips, meal plans and chat replies. Every operation
// issues one POST, parses one response and reports a typed error on any
// failure; fallback content is the caller's decision.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"wearbmi/internal/bmi"
	"wearbmi/internal/segment"
)

const (
	// DefaultEndpoint is the hosted completion service the watch app ships
	// with. The request body is chat-completions shaped.
	DefaultEndpoint = "https://text.pollinations.ai/openai"

	defaultModel       = "openai"
	defaultTemperature = 1.0
	defaultTimeout     = 30 * time.Second

	analysisMaxTokens = 300
	listMaxTokens     = 200
	chatMaxTokens     = 150

	// chatReplyLimit caps the reply length regardless of what the model
	// returns; the watch chat bubble cannot scroll far.
	chatReplyLimit = 200

	minItemLength = 5
	maxDietTips   = 5
	maxMealSlots  = 4
)

var (
	dietDelimiters = []string{",", "\n", "•", "-", "1.", "2.", "3.", "4.", "5."}
	mealDelimiters = []string{",", "\n", ":", "•", "-", "Breakfast", "Lunch", "Dinner", "Snacks"}
	bareNumber     = regexp.MustCompile(`^\d+$`)
)

// Config describes how the completion client should be initialised.
type Config struct {
	Endpoint    string
	Model       string
	Temperature float64
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// Client issues completion requests against a single endpoint. It holds no
// mutable state; the embedded http.Client is shared for connection reuse.
type Client struct {
	endpoint    string
	model       string
	temperature float64
	httpClient  *http.Client
}

// NewClient builds a Client, filling unset fields with defaults.
func NewClient(cfg Config) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}

	temp := cfg.Temperature
	if temp <= 0 {
		temp = defaultTemperature
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		endpoint:    endpoint,
		model:       model,
		temperature: temp,
		httpClient:  httpClient,
	}
}

// FetchAnalysis requests a personalized health analysis and returns the
// generated text verbatim.
func (c *Client) FetchAnalysis(ctx context.Context, value float64, category bmi.Category, heightCm, weightKg float64) (string, error) {
	const op = "analysis"
	prompt := analysisPrompt(value, category, heightCm, weightKg)
	return c.complete(ctx, op, prompt, analysisMaxTokens)
}

// FetchDietTips requests five short diet tips and segments the completion
// into discrete items. Goal is optional; empty means category-based tips.
func (c *Client) FetchDietTips(ctx context.Context, value float64, category bmi.Category, goal string) ([]string, error) {
	const op = "diet-tips"
	content, err := c.complete(ctx, op, dietTipsPrompt(value, category, goal), listMaxTokens)
	if err != nil {
		return nil, err
	}

	items := segment.Split(content, segment.Options{
		Delimiters: dietDelimiters,
		MinLength:  minItemLength,
		MaxItems:   maxDietTips,
		Exclude:    bareNumber,
	})
	if len(items) == 0 {
		return nil, &Error{Op: op, Kind: KindEmpty, Err: fmt.Errorf("no usable items in completion")}
	}
	return items, nil
}

// FetchMealPlan requests four meal slots (breakfast, lunch, dinner, snacks)
// and segments the completion. Goal is optional.
func (c *Client) FetchMealPlan(ctx context.Context, value float64, category bmi.Category, goal string) ([]string, error) {
	const op = "meal-plan"
	content, err := c.complete(ctx, op, mealPlanPrompt(value, category, goal), listMaxTokens)
	if err != nil {
		return nil, err
	}

	items := segment.Split(content, segment.Options{
		Delimiters: mealDelimiters,
		MinLength:  minItemLength,
		MaxItems:   maxMealSlots,
	})
	if len(items) == 0 {
		return nil, &Error{Op: op, Kind: KindEmpty, Err: fmt.Errorf("no usable items in completion")}
	}
	return items, nil
}

// Chat answers a free-text question with the user's BMI as context. The
// reply is truncated to the watch chat bubble limit.
func (c *Client) Chat(ctx context.Context, message string, value float64, category bmi.Category) (string, error) {
	const op = "chat"
	content, err := c.complete(ctx, op, chatPrompt(message, value, category), chatMaxTokens)
	if err != nil {
		return "", err
	}

	runes := []rune(content)
	if len(runes) > chatReplyLimit {
		content = string(runes[:chatReplyLimit])
	}
	return content, nil
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, op, prompt string, maxTokens int) (string, error) {
	payload := chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: c.temperature,
		MaxTokens:   maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", &Error{Op: op, Kind: KindDecode, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Op: op, Kind: KindTransport, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &Error{Op: op, Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &Error{Op: op, Kind: KindStatus, Err: fmt.Errorf("endpoint returned status %s", resp.Status)}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &Error{Op: op, Kind: KindDecode, Err: fmt.Errorf("decode response: %w", err)}
	}

	if len(parsed.Choices) == 0 {
		return "", &Error{Op: op, Kind: KindDecode, Err: fmt.Errorf("response has no choices")}
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return "", &Error{Op: op, Kind: KindEmpty, Err: fmt.Errorf("completion is empty")}
	}
	return content, nil
}
