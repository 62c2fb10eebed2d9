package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/domain"
)

// maxImageBytes tamaño máximo aceptado antes de comprimir.
const maxImageBytes = 10 << 20

// MediaHandler sube, lista y borra imágenes del media host.
type MediaHandler struct {
	uc *usecase.MediaUseCase
}

// NewMediaHandler construye el handler.
func NewMediaHandler(uc *usecase.MediaUseCase) *MediaHandler {
	return &MediaHandler{uc: uc}
}

// Upload godoc
// @Summary      Subir imagen (se comprime antes de subir)
// @Tags         media
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file      formData  file    true   "Imagen"
// @Param        category  formData  string  false  "Carpeta de la categoría"
// @Success      201  {object}  dto.MediaAssetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/media [post]
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fmt.Errorf("%w: falta el archivo 'file'", domain.ErrInvalidInput))
	}
	if fh.Size > maxImageBytes {
		return writeError(c, fmt.Errorf("%w: la imagen supera 10 MB", domain.ErrInvalidInput))
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, fmt.Errorf("%w: no se pudo leer el archivo", domain.ErrInvalidInput))
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return writeError(c, fmt.Errorf("%w: no se pudo leer el archivo", domain.ErrInvalidInput))
	}

	out, err := h.uc.Upload(c.UserContext(), data, c.FormValue("category"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar imágenes por tag (carpeta)
// @Tags         media
// @Security     Bearer
// @Produce      json
// @Param        tag  query  string  false  "Carpeta; por defecto la raíz"
// @Success      200  {object}  dto.MediaListResponse
// @Router       /api/media [get]
func (h *MediaHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("tag"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar imagen
// @Tags         media
// @Security     Bearer
// @Param        asset_id  path  string  true  "Asset id (ruta dentro del bucket)"
// @Success      204
// @Router       /api/media/{asset_id} [delete]
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("*")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
