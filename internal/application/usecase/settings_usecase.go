package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

// userSettings ajustes por usuario guardados bajo "ajustes:<userID>".
type userSettings struct {
	APIKey string `json:"api_key,omitempty"`
}

// SettingsUseCase guarda y lee los ajustes de cada usuario (API key del proveedor de IA).
type SettingsUseCase struct {
	store     repository.SettingsStore
	keyPrefix string // prefijo obligatorio de la API key ("sk-" en OpenAI); vacío = sin control
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(store repository.SettingsStore, keyPrefix string) *SettingsUseCase {
	return &SettingsUseCase{store: store, keyPrefix: keyPrefix}
}

func settingsKey(userID string) string {
	return "ajustes:" + userID
}

// SaveAPIKey valida y guarda la API key del usuario de la sesión.
func (uc *SettingsUseCase) SaveAPIKey(ctx context.Context, session entity.Session, apiKey string) error {
	if session.UserID == "" {
		return domain.ErrUnauthorized
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return fmt.Errorf("%w: la API key es obligatoria", domain.ErrInvalidInput)
	}
	if uc.keyPrefix != "" && !strings.HasPrefix(apiKey, uc.keyPrefix) {
		return fmt.Errorf("%w: la API key debe comenzar con %q", domain.ErrInvalidInput, uc.keyPrefix)
	}
	current, err := uc.load(ctx, session.UserID)
	if err != nil {
		return err
	}
	current.APIKey = apiKey
	raw, err := json.Marshal(current)
	if err != nil {
		return err
	}
	if err := uc.store.Set(ctx, settingsKey(session.UserID), raw); err != nil {
		return domain.Upstream("settings", err)
	}
	return nil
}

// APIKey devuelve la key guardada del usuario o "" si no tiene.
func (uc *SettingsUseCase) APIKey(ctx context.Context, session entity.Session) (string, error) {
	s, err := uc.load(ctx, session.UserID)
	if err != nil {
		return "", err
	}
	return s.APIKey, nil
}

func (uc *SettingsUseCase) load(ctx context.Context, userID string) (userSettings, error) {
	var s userSettings
	raw, err := uc.store.Get(ctx, settingsKey(userID))
	if err != nil {
		return s, domain.Upstream("settings", err)
	}
	if len(raw) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("ajustes de usuario ilegibles: %w", err)
	}
	return s, nil
}
