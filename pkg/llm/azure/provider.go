package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bibincs/hackathonchatbot/pkg/llm"
)

// AzureProvider talks to an Azure OpenAI chat-completions deployment
type AzureProvider struct {
	Endpoint   string
	ApiKey     string
	ApiVersion string
	Deployment string
	Client     *http.Client
}

// Ensure AzureProvider implements LLMProvider
var _ llm.LLMProvider = &AzureProvider{}

func NewAzureProvider(endpoint, apiKey, apiVersion, deployment string) *AzureProvider {
	if apiVersion == "" {
		apiVersion = "2023-12-01-preview"
	}
	return &AzureProvider{
		Endpoint:   strings.TrimRight(endpoint, "/"),
		ApiKey:     apiKey,
		ApiVersion: apiVersion,
		Deployment: deployment,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type azureChatRequest struct {
	Messages    []azureMessage `json:"messages"`
	Temperature float64        `json:"temperature,omitempty"`
	MaxTokens   int            `json:"max_tokens,omitempty"`
}

type azureMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type azureChatResponse struct {
	Choices []struct {
		Message azureMessage `json:"message"`
	} `json:"choices"`
}

// --- Interface Implementation ---

func (p *AzureProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := &llm.Options{
		Temperature: 0.7, // Default
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]azureMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages[i] = azureMessage{
			Role:    role,
			Content: msg.Content,
		}
	}

	deployment := p.Deployment
	if options.Model != "" {
		deployment = options.Model
	}

	reqPayload := azureChatRequest{
		Messages:    messages,
		Temperature: options.Temperature,
	}
	if options.MaxTokens > 0 {
		reqPayload.MaxTokens = options.MaxTokens
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf(
		"%s/openai/deployments/%s/chat/completions?api-version=%s",
		p.Endpoint, deployment, p.ApiVersion,
	)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("api-key", p.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("azure request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("azure error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var parsed azureChatResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("azure response carried no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}

func (p *AzureProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
