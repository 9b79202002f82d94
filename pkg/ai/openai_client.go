// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"farmassist/entities"
)

// openAI talks to any OpenAI-compatible chat completions API (Mistral by default).
type openAI struct {
	endpoint    string
	key         string
	model       string
	temperature float64
	maxTokens   int
	httpc       *http.Client
}

func NewOpenAI(endpoint, key, model string, temperature float64, maxTokens int) Client {
	return &openAI{
		endpoint:    strings.TrimRight(endpoint, "/"),
		key:         key,
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpc:       &http.Client{Timeout: 25 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatReq struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

func (c *openAI) Reply(ctx context.Context, p *entities.FarmerProfile, message, kbCtx string) (string, error) {
	if c.key == "" {
		return "", ErrNotConfigured
	}
	reqBody := chatReq{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt(p, kbCtx)},
			{Role: "user", Content: message},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("llm request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("llm api error: %d %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode llm response: %w", err)
	}
	if len(out.Choices) == 0 {
		return Apology, nil
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return Apology, nil
	}
	return content, nil
}
