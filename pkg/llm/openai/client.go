package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://api.openai.com/v1"
	DefaultModel   = "gpt-4o-mini"
)

// Client is a minimal OpenAI-compatible chat completions client. Gateways
// such as OpenRouter work through BaseURL; AppTitle and Referer fill their
// attribution headers when set.
type Client struct {
	APIKey   string
	BaseURL  string
	Model    string
	AppTitle string
	Referer  string
	http     *resty.Client
}

func New(apiKey, baseURL, model string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   model,
		http:    resty.New().SetTimeout(timeout),
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionsRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float32   `json:"temperature,omitempty"`
}

// Ask sends one system and one user message and returns the first choice's content.
func (c *Client) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.APIKey == "" {
		return "", errors.New("completion api key is empty")
	}
	req := c.http.R()
	if c.Referer != "" {
		req.SetHeader("HTTP-Referer", c.Referer)
	}
	if c.AppTitle != "" {
		req.SetHeader("X-Title", c.AppTitle)
	}
	resp, err := req.
		SetContext(ctx).
		SetAuthToken(c.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(chatCompletionsRequest{
			Model: c.Model,
			Messages: []message{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: userPrompt},
			},
			Temperature: 0.2,
		}).
		Post(c.BaseURL + "/chat/completions")
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		msg := gjson.GetBytes(resp.Body(), "error.message").String()
		if msg == "" {
			msg = strings.TrimSpace(resp.String())
		}
		return "", fmt.Errorf("completion http %d: %s", resp.StatusCode(), msg)
	}
	content := gjson.GetBytes(resp.Body(), "choices.0.message.content")
	if !content.Exists() {
		return "", errors.New("no choices returned by model")
	}
	return content.String(), nil
}
