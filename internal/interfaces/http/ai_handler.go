package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
)

// AIHandler genera descripciones de productos con el proveedor de IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GenerateDescription godoc
// @Summary      Generar descripción de producto con IA
// @Description  Usa la API key guardada por el usuario. Timeout interno de 10 s.
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DescriptionRequest  true  "name (obligatorio) y category"
// @Success      200   {object}  dto.DescriptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/ai/description [post]
func (h *AIHandler) GenerateDescription(c *fiber.Ctx) error {
	var req dto.DescriptionRequest
	if err := bindBody(c, &req); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.GenerateDescription(c.UserContext(), GetSession(c), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
