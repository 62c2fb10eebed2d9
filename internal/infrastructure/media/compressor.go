package media

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/jhoicas/catalogo-admin/internal/application/ports"
)

var _ ports.ImageCompressor = (*JPEGCompressor)(nil)

// JPEGCompressor reescala al ancho máximo conservando la proporción y recodifica como JPEG.
type JPEGCompressor struct {
	maxWidth int
	quality  int
}

// NewJPEGCompressor construye el compresor; valores no positivos usan 900 px y calidad 75.
func NewJPEGCompressor(maxWidth, quality int) *JPEGCompressor {
	if maxWidth <= 0 {
		maxWidth = 900
	}
	if quality <= 0 || quality > 100 {
		quality = 75
	}
	return &JPEGCompressor{maxWidth: maxWidth, quality: quality}
}

// Compress devuelve los bytes originales con su tipo detectado cuando data no es una
// imagen decodificable.
func (c *JPEGCompressor) Compress(data []byte) ([]byte, string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, http.DetectContentType(data), nil
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > c.maxWidth {
		h = h * c.maxWidth / w
		if h < 1 {
			h = 1
		}
		w = c.maxWidth
	}

	// Fondo blanco: JPEG no tiene canal alfa.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: c.quality}); err != nil {
		return nil, "", fmt.Errorf("media: codificar jpeg: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}
