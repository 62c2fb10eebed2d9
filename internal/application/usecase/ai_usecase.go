package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

// AIUseCase genera descripciones de catálogo con el proveedor de IA configurado.
// Aplica un timeout de 10 segundos en cada llamada para que la latencia externa no
// bloquee los goroutines del servidor.
type AIUseCase struct {
	llm      ports.TextGenerator
	settings *SettingsUseCase
	timeout  time.Duration
	log      *logger.Logger
}

// NewAIUseCase construye el caso de uso inyectando el puerto TextGenerator.
func NewAIUseCase(llm ports.TextGenerator, settings *SettingsUseCase, log *logger.Logger) *AIUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AIUseCase{llm: llm, settings: settings, timeout: 10 * time.Second, log: log.Component("ai")}
}

// GenerateDescription usa la API key del usuario de la sesión. Sin key devuelve
// ErrNotConfigured sin llamar a la red.
func (uc *AIUseCase) GenerateDescription(ctx context.Context, session entity.Session, req dto.DescriptionRequest) (*dto.DescriptionResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del producto es obligatorio", domain.ErrInvalidInput)
	}
	if uc.llm == nil {
		return nil, fmt.Errorf("%w: proveedor de IA", domain.ErrNotConfigured)
	}
	apiKey, err := uc.settings.APIKey(ctx, session)
	if err != nil {
		return nil, err
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: el usuario no guardó su API key", domain.ErrNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	text, err := uc.llm.Generate(ctx, apiKey, DescriptionPrompt(name, req.Category))
	if err != nil {
		uc.log.Warn().Err(err).Str("user_id", session.UserID).Msg("generación de descripción fallida")
		return nil, fmt.Errorf("descripción IA: %w", err)
	}
	return &dto.DescriptionResponse{Description: strings.TrimSpace(text)}, nil
}

// DescriptionPrompt arma el prompt de descripción de catálogo.
func DescriptionPrompt(name, category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		category = "General"
	}
	return "Genera una descripción profesional, clara y atractiva para un catálogo.\n" +
		"Nombre del producto: " + name + "\n" +
		"Categoría: " + category + "\n" +
		"Máximo 2-3 oraciones. Estilo vendedor latinoamericano."
}
