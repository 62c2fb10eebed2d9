package repository

import (
	"context"
	"encoding/json"
)

// SettingsStore persiste valores JSON pequeños por clave.
// Get devuelve (nil, nil) si la clave no existe.
type SettingsStore interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
}
