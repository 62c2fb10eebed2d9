package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

type mockGenerator struct{ mock.Mock }

func (m *mockGenerator) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	args := m.Called(ctx, apiKey, prompt)
	return args.String(0), args.Error(1)
}

type mockStorage struct{ mock.Mock }

func (m *mockStorage) Upload(ctx context.Context, data []byte, contentType, folder string) (*entity.MediaAsset, error) {
	args := m.Called(ctx, data, contentType, folder)
	asset, _ := args.Get(0).(*entity.MediaAsset)
	return asset, args.Error(1)
}

func (m *mockStorage) List(ctx context.Context, tag string) ([]entity.MediaAsset, error) {
	args := m.Called(ctx, tag)
	assets, _ := args.Get(0).([]entity.MediaAsset)
	return assets, args.Error(1)
}

func (m *mockStorage) Delete(ctx context.Context, assetID string) error {
	return m.Called(ctx, assetID).Error(0)
}

type stubCompressor struct {
	contentType string
}

func (s stubCompressor) Compress(data []byte) ([]byte, string, error) {
	return append([]byte("c:"), data...), s.contentType, nil
}

type stubRenderer struct {
	ext  string
	rows []dto.ExportRow
}

func (s *stubRenderer) Render(title string, rows []dto.ExportRow) ([]byte, error) {
	s.rows = rows
	return []byte(title), nil
}
func (s *stubRenderer) ContentType() string { return "text/plain" }
func (s *stubRenderer) Extension() string   { return s.ext }

// prefixSearcher conserva los productos cuyo nombre empieza con la consulta.
type prefixSearcher struct{}

func (prefixSearcher) Search(q string, products []*entity.Product) []*entity.Product {
	var out []*entity.Product
	for _, p := range products {
		if len(p.Name) >= len(q) && p.Name[:len(q)] == q {
			out = append(out, p)
		}
	}
	return out
}
