package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain"
)

var _ ports.TextGenerator = (*OpenAIService)(nil)

const openAIBaseURL = "https://api.openai.com/v1"

// OpenAIService adaptador de TextGenerator sobre Chat Completions de OpenAI.
type OpenAIService struct {
	opts       Options
	httpClient *http.Client
}

// NewOpenAIService construye el adaptador; el modelo por defecto es gpt-4o-mini.
func NewOpenAIService(opts Options) *OpenAIService {
	return &OpenAIService{opts: opts.withDefaults("gpt-4o-mini", openAIBaseURL), httpClient: newHTTPClient()}
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Generate envía prompt como mensaje de usuario y devuelve el primer choice.
func (s *OpenAIService) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	if apiKey == "" {
		return "", missingKey("openai")
	}
	payload := openAIRequest{
		Model:       s.opts.Model,
		Messages:    []openAIMessage{{Role: "user", Content: prompt}},
		Temperature: s.opts.Temperature,
		MaxTokens:   s.opts.MaxTokens,
	}
	raw, status, err := postJSON(ctx, s.httpClient, "openai", s.opts.BaseURL+"/chat/completions",
		map[string]string{"Authorization": "Bearer " + apiKey}, payload)
	if err != nil {
		return "", err
	}

	var resp openAIResponse
	jsonErr := json.Unmarshal(raw, &resp)
	if status != http.StatusOK {
		msg := ""
		if jsonErr == nil && resp.Error != nil {
			msg = resp.Error.Message
		}
		return "", statusError("openai", status, msg)
	}
	if jsonErr != nil {
		return "", domain.Upstream("openai", fmt.Errorf("deserializar respuesta: %w", jsonErr))
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", domain.Upstream("openai", fmt.Errorf("respuesta vacía"))
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
