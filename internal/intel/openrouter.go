package intel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultOpenRouterModel is a capable free-tier model; the configured
// model wins when set.
const DefaultOpenRouterModel = "meta-llama/llama-3.1-8b-instruct:free"

// OpenRouter implements JudgmentProvider over the OpenAI-compatible chat
// completions wire format.
type OpenRouter struct {
	baseURL          string
	apiKey           string
	model            string
	client           *http.Client
	maxResponseBytes int64
}

func NewOpenRouter(baseURL, apiKey, model string, timeout time.Duration) *OpenRouter {
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	if model == "" {
		model = DefaultOpenRouterModel
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &OpenRouter{
		baseURL:          baseURL,
		apiKey:           apiKey,
		model:            model,
		maxResponseBytes: 1 << 20,
		client:           &http.Client{Timeout: timeout},
	}
}

func (o *OpenRouter) Name() string { return "openrouter" }

// Model reports the judgment model in use, for status surfaces.
func (o *OpenRouter) Model() string { return o.model }

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
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (o *OpenRouter) JudgeEmail(ctx context.Context, content string) (*Judgment, error) {
	text, err := o.complete(ctx, emailPrompt(content), 300)
	if err != nil {
		return nil, err
	}
	return parseEmailJudgment(text)
}

func (o *OpenRouter) JudgeHandle(ctx context.Context, handle string) (*Judgment, error) {
	text, err := o.complete(ctx, handlePrompt(handle), 200)
	if err != nil {
		return nil, err
	}
	return parseHandleJudgment(text)
}

func (o *OpenRouter) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       o.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.1,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal openrouter request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create openrouter request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)
	req.Header.Set("HTTP-Referer", "https://github.com/Rayxworld/Vegil")
	req.Header.Set("X-Title", "Vegil Security")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call openrouter: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, o.maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read openrouter response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var cr chatResponse
		if json.Unmarshal(respBody, &cr) == nil && cr.Error.Message != "" {
			return "", fmt.Errorf("openrouter status %d: %s", resp.StatusCode, cr.Error.Message)
		}
		return "", fmt.Errorf("openrouter status %d", resp.StatusCode)
	}

	var cr chatResponse
	if err := json.Unmarshal(respBody, &cr); err != nil {
		return "", fmt.Errorf("decode openrouter response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("openrouter response had no choices")
	}
	return cr.Choices[0].Message.Content, nil
}
