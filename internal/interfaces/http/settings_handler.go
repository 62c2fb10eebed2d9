package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
)

// SettingsHandler ajustes del usuario de la sesión.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// SaveAPIKey godoc
// @Summary      Guardar la API key de IA del usuario
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveAPIKeyRequest  true  "api_key"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/ai-key [put]
func (h *SettingsHandler) SaveAPIKey(c *fiber.Ctx) error {
	var in dto.SaveAPIKeyRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	if err := h.uc.SaveAPIKey(c.UserContext(), GetSession(c), in.APIKey); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "API key guardada"})
}
