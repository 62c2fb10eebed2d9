package ports

import (
	"context"

	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
)

// MediaStorage puerto del media host de imágenes.
type MediaStorage interface {
	Upload(ctx context.Context, data []byte, contentType, folder string) (*entity.MediaAsset, error)
	// List devuelve los assets cuyo id empieza con tag.
	List(ctx context.Context, tag string) ([]entity.MediaAsset, error)
	Delete(ctx context.Context, assetID string) error
}

// ImageCompressor reduce una imagen antes de subirla. Si data no es una imagen
// decodificable devuelve los bytes originales y su content type detectado.
type ImageCompressor interface {
	Compress(data []byte) (out []byte, contentType string, err error)
}
