package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

// SettingsStore implementa SettingsStore en memoria.
type SettingsStore struct {
	mu     sync.RWMutex
	values map[string]json.RawMessage
}

var _ repository.SettingsStore = (*SettingsStore)(nil)

// NewSettingsStore crea un store vacío.
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{values: make(map[string]json.RawMessage)}
}

func (s *SettingsStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	return append(json.RawMessage(nil), v...), nil
}

func (s *SettingsStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append(json.RawMessage(nil), value...)
	return nil
}
