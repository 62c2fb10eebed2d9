package usecase

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

// MediaUseCase comprime y sube imágenes de productos al media host.
type MediaUseCase struct {
	storage    ports.MediaStorage
	compressor ports.ImageCompressor
	rootFolder string
	log        *logger.Logger
}

// NewMediaUseCase construye el caso de uso. storage nil = media no configurado.
func NewMediaUseCase(storage ports.MediaStorage, compressor ports.ImageCompressor, rootFolder string, log *logger.Logger) *MediaUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &MediaUseCase{storage: storage, compressor: compressor, rootFolder: rootFolder, log: log.Component("media")}
}

// Upload comprime data y la sube a "<root>/<categoría>"; sin categoría usa "General".
func (uc *MediaUseCase) Upload(ctx context.Context, data []byte, category string) (*dto.MediaAssetResponse, error) {
	if uc.storage == nil {
		return nil, fmt.Errorf("%w: media host", domain.ErrNotConfigured)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: archivo vacío", domain.ErrInvalidInput)
	}
	contentType := ""
	if uc.compressor != nil {
		out, ct, err := uc.compressor.Compress(data)
		if err != nil {
			return nil, fmt.Errorf("comprimir imagen: %w", err)
		}
		if !strings.HasPrefix(ct, "image/") {
			return nil, fmt.Errorf("%w: el archivo no es una imagen (%s)", domain.ErrInvalidInput, ct)
		}
		uc.log.Debug().Int("original", len(data)).Int("compressed", len(out)).Msg("imagen comprimida")
		data, contentType = out, ct
	}

	asset, err := uc.storage.Upload(ctx, data, contentType, uc.folder(category))
	if err != nil {
		return nil, domain.Upstream("media", err)
	}
	return &dto.MediaAssetResponse{URL: asset.URL, AssetID: asset.AssetID}, nil
}

// List devuelve los assets del tag; sin tag usa la carpeta raíz.
func (uc *MediaUseCase) List(ctx context.Context, tag string) (*dto.MediaListResponse, error) {
	if uc.storage == nil {
		return nil, fmt.Errorf("%w: media host", domain.ErrNotConfigured)
	}
	if tag == "" {
		tag = uc.rootFolder
	}
	assets, err := uc.storage.List(ctx, tag)
	if err != nil {
		return nil, domain.Upstream("media", err)
	}
	items := make([]dto.MediaAssetResponse, 0, len(assets))
	for _, a := range assets {
		items = append(items, dto.MediaAssetResponse{URL: a.URL, AssetID: a.AssetID})
	}
	return &dto.MediaListResponse{Items: items}, nil
}

// Delete elimina un asset por id.
func (uc *MediaUseCase) Delete(ctx context.Context, assetID string) error {
	if uc.storage == nil {
		return fmt.Errorf("%w: media host", domain.ErrNotConfigured)
	}
	assetID = strings.TrimPrefix(assetID, "/")
	if assetID == "" || strings.Contains(assetID, "..") {
		return fmt.Errorf("%w: asset id inválido", domain.ErrInvalidInput)
	}
	if err := uc.storage.Delete(ctx, assetID); err != nil {
		return domain.Upstream("media", err)
	}
	return nil
}

func (uc *MediaUseCase) folder(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		category = "General"
	}
	category = strings.NewReplacer("/", "-", "\\", "-").Replace(category)
	return path.Join(uc.rootFolder, category)
}
