package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
)

// ExportHandler descarga el inventario en xlsx, csv, doc o pdf.
type ExportHandler struct {
	uc *usecase.ExportUseCase
}

// NewExportHandler construye el handler.
func NewExportHandler(uc *usecase.ExportUseCase) *ExportHandler {
	return &ExportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar inventario
// @Tags         export
// @Security     Bearer
// @Produce      application/octet-stream
// @Param        format         query  string  false  "xlsx (defecto) | csv | doc | pdf"
// @Param        category       query  string  false  "Solo esta categoría"
// @Param        only_no_stock  query  bool    false  "Solo productos sin stock"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/export [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := bindQuery(c, &req); err != nil {
		return writeError(c, err)
	}
	file, err := h.uc.Export(c.UserContext(), req)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	return c.Send(file.Data)
}
