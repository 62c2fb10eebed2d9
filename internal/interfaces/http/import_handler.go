package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/domain"
)

// ImportHandler importa planillas de productos.
type ImportHandler struct {
	uc *usecase.ImportUseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *usecase.ImportUseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importar productos desde xlsx o csv
// @Description  Por defecto aborta en la primera fila con error y responde el resultado parcial.
// @Tags         import
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file               formData  file  true   "Planilla (.xlsx o .csv)"
// @Param        skip_duplicates    query     bool  false  "Omitir filas con código ya existente (default true)"
// @Param        continue_on_error  query     bool  false  "Seguir con las filas restantes ante un error"
// @Success      200  {object}  dto.ImportResult
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ImportResult
// @Router       /api/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	opts := dto.DefaultImportOptions()
	if err := bindQuery(c, &opts); err != nil {
		return writeError(c, err)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fmt.Errorf("%w: falta el archivo 'file'", domain.ErrInvalidInput))
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, fmt.Errorf("%w: no se pudo leer el archivo", domain.ErrInvalidInput))
	}
	defer f.Close()

	result, err := h.uc.ImportFile(c.UserContext(), fh.Filename, f, opts)
	if err != nil && result != nil {
		status, _ := classify(err)
		return c.Status(status).JSON(result)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(result)
}
