package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

var _ repository.SettingsStore = (*SettingsStore)(nil)

// SettingsStore guarda valores JSON por clave en la tabla settings.
type SettingsStore struct {
	q Querier
}

// NewSettingsStore construye el store.
func NewSettingsStore(q Querier) *SettingsStore {
	return &SettingsStore{q: q}
}

// Get devuelve el valor o nil si la clave no existe.
func (s *SettingsStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var raw []byte
	err := s.q.QueryRow(ctx, `SELECT value FROM settings WHERE key = $1`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get setting %s: %w", key, err)
	}
	return json.RawMessage(raw), nil
}

// Set inserta o reemplaza el valor.
func (s *SettingsStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	if _, err := s.q.Exec(ctx, query, key, string(value)); err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}
