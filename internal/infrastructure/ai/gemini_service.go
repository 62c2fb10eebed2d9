package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain"
)

// Verificar en tiempo de compilación que GeminiService implementa TextGenerator.
var _ ports.TextGenerator = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiService adaptador de TextGenerator sobre la API REST de Google Gemini.
type GeminiService struct {
	opts       Options
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. El modelo por defecto es gemini-1.5-flash.
func NewGeminiService(opts Options) *GeminiService {
	return &GeminiService{opts: opts.withDefaults("gemini-1.5-flash", geminiBaseURL), httpClient: newHTTPClient()}
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate llama a generateContent. Gemini responde 400 API_KEY_INVALID ante una key
// rechazada; se trata igual que un 401.
func (s *GeminiService) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	if apiKey == "" {
		return "", missingKey("gemini")
	}
	payload := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: genConfig{
			Temperature:     s.opts.Temperature,
			MaxOutputTokens: s.opts.MaxTokens,
		},
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.opts.BaseURL, s.opts.Model, url.QueryEscape(apiKey))
	raw, status, err := postJSON(ctx, s.httpClient, "gemini", endpoint, nil, payload)
	if err != nil {
		return "", err
	}

	var resp geminiResponse
	jsonErr := json.Unmarshal(raw, &resp)
	if status != http.StatusOK {
		msg := ""
		if jsonErr == nil && resp.Error != nil {
			msg = resp.Error.Message
			if status == http.StatusBadRequest && strings.Contains(resp.Error.Message, "API key") {
				status = http.StatusUnauthorized
			}
		}
		return "", statusError("gemini", status, msg)
	}
	if jsonErr != nil {
		return "", domain.Upstream("gemini", fmt.Errorf("deserializar respuesta: %w", jsonErr))
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domain.Upstream("gemini", fmt.Errorf("Gemini devolvió respuesta vacía"))
	}
	return strings.TrimSpace(resp.Candidates[0].Content.Parts[0].Text), nil
}
