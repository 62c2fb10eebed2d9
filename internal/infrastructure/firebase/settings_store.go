package firebase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/jhoicas/catalogo-admin/internal/domain/repository"
)

var _ repository.SettingsStore = (*SettingsStore)(nil)

type settingDoc struct {
	Value string `firestore:"valor"`
}

// SettingsStore guarda cada clave como un documento de la colección de ajustes.
type SettingsStore struct {
	col *firestore.CollectionRef
}

// NewSettingsStore construye el store sobre collection.
func NewSettingsStore(client *firestore.Client, collection string) *SettingsStore {
	return &SettingsStore{col: client.Collection(collection)}
}

// docID adapta la clave a un id de documento válido (sin "/").
func docID(key string) string {
	return strings.ReplaceAll(key, "/", "_")
}

func (s *SettingsStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	snap, err := s.col.Doc(docID(key)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("firestore get setting %s: %w", key, err)
	}
	var d settingDoc
	if err := snap.DataTo(&d); err != nil {
		return nil, fmt.Errorf("firestore decode setting %s: %w", key, err)
	}
	if d.Value == "" {
		return nil, nil
	}
	return json.RawMessage(d.Value), nil
}

func (s *SettingsStore) Set(ctx context.Context, key string, value json.RawMessage) error {
	if _, err := s.col.Doc(docID(key)).Set(ctx, settingDoc{Value: string(value)}); err != nil {
		return fmt.Errorf("firestore set setting %s: %w", key, err)
	}
	return nil
}
