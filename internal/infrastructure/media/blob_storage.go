// Package media implementa el media host de imágenes sobre gocloud.dev/blob.
// El driver se elige por URL: gs://bucket (GCS), file:///dir (disco), mem:// (tests).
package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"

	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/pkg/config"
)

var _ ports.MediaStorage = (*BlobStorage)(nil)

// BlobStorage guarda cada imagen como "<folder>/<uuid>.<ext>"; el asset id es esa key.
type BlobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Open abre el bucket de cfg.BucketURL.
func Open(ctx context.Context, cfg config.MediaConfig) (*BlobStorage, error) {
	b, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, fmt.Errorf("media: abrir bucket %q: %w", cfg.BucketURL, err)
	}
	return NewBlobStorage(b, cfg.PublicBaseURL), nil
}

// NewBlobStorage envuelve un bucket ya abierto.
func NewBlobStorage(b *blob.Bucket, publicBaseURL string) *BlobStorage {
	return &BlobStorage{bucket: b, publicBaseURL: strings.TrimRight(publicBaseURL, "/")}
}

// Close libera el bucket.
func (s *BlobStorage) Close() error { return s.bucket.Close() }

func (s *BlobStorage) Upload(ctx context.Context, data []byte, contentType, folder string) (*entity.MediaAsset, error) {
	key := path.Join(folder, uuid.NewString()+extension(contentType))
	opts := &blob.WriterOptions{ContentType: contentType, CacheControl: "public, max-age=31536000"}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return nil, fmt.Errorf("media: subir %s: %w", key, err)
	}
	return &entity.MediaAsset{URL: s.url(key), AssetID: key}, nil
}

func (s *BlobStorage) List(ctx context.Context, tag string) ([]entity.MediaAsset, error) {
	prefix := strings.Trim(tag, "/")
	if prefix != "" {
		prefix += "/"
	}
	it := s.bucket.List(&blob.ListOptions{Prefix: prefix})
	assets := []entity.MediaAsset{}
	for {
		obj, err := it.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("media: listar %q: %w", prefix, err)
		}
		if obj.IsDir {
			continue
		}
		assets = append(assets, entity.MediaAsset{URL: s.url(obj.Key), AssetID: obj.Key})
	}
	return assets, nil
}

// Delete borra el asset; uno inexistente no es error.
func (s *BlobStorage) Delete(ctx context.Context, assetID string) error {
	err := s.bucket.Delete(ctx, assetID)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return fmt.Errorf("media: borrar %s: %w", assetID, err)
	}
	return nil
}

func (s *BlobStorage) url(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}
	return s.publicBaseURL + "/" + key
}

func extension(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ""
	}
}
