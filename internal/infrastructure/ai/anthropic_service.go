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

// Verificar en tiempo de compilación que AnthropicService implementa TextGenerator.
var _ ports.TextGenerator = (*AnthropicService)(nil)

const (
	anthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion = "2023-06-01"

	anthropicSystemPrompt = "Eres redactor de catálogos de productos de limpieza y hogar. " +
		"Responde solo con la descripción, sin comillas ni encabezados."
)

// AnthropicService adaptador de TextGenerator sobre la Messages API de Anthropic (Claude).
// Usa net/http; no requiere el SDK oficial.
type AnthropicService struct {
	opts       Options
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
func NewAnthropicService(opts Options) *AnthropicService {
	return &AnthropicService{opts: opts.withDefaults("claude-3-5-haiku-20241022", anthropicBaseURL), httpClient: newHTTPClient()}
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate envía prompt a Claude y concatena los bloques de texto de la respuesta.
func (s *AnthropicService) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	if apiKey == "" {
		return "", missingKey("anthropic")
	}
	payload := anthropicRequest{
		Model:       s.opts.Model,
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
		System:      anthropicSystemPrompt,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
	}
	raw, status, err := postJSON(ctx, s.httpClient, "anthropic", s.opts.BaseURL+"/messages", map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": anthropicVersion,
	}, payload)
	if err != nil {
		return "", err
	}

	var resp anthropicResponse
	jsonErr := json.Unmarshal(raw, &resp)
	if status != http.StatusOK {
		msg := ""
		if jsonErr == nil && resp.Error != nil {
			msg = resp.Error.Type + ": " + resp.Error.Message
		}
		return "", statusError("anthropic", status, msg)
	}
	if jsonErr != nil {
		return "", domain.Upstream("anthropic", fmt.Errorf("deserializar respuesta: %w", jsonErr))
	}

	var sb strings.Builder
	for _, c := range resp.Content {
		if c.Type == "text" {
			sb.WriteString(c.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", domain.Upstream("anthropic", fmt.Errorf("Claude devolvió respuesta vacía"))
	}
	return text, nil
}
