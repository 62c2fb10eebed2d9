package ai

import (
	"fmt"

	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/pkg/config"
)

// New construye el adaptador del proveedor configurado y devuelve el prefijo
// esperado de sus API keys ("" si el proveedor no tiene uno fijo).
func New(cfg config.AIConfig) (ports.TextGenerator, string, error) {
	opts := Options{Model: cfg.Model, Temperature: cfg.Temperature, MaxTokens: cfg.MaxTokens}
	switch cfg.Provider {
	case "", "openai":
		return NewOpenAIService(opts), "sk-", nil
	case "anthropic":
		return NewAnthropicService(opts), "sk-ant-", nil
	case "gemini":
		return NewGeminiService(opts), "", nil
	default:
		return nil, "", fmt.Errorf("AI_PROVIDER desconocido %q", cfg.Provider)
	}
}
