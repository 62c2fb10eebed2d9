package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
)

// featureChecker es el contrato mínimo que necesita el middleware; lo implementa
// usecase.FeatureSet.
type featureChecker interface {
	IsConfigured(feature string) bool
}

// RequireConfigured corta con 503 NOT_CONFIGURED antes de llegar al handler cuando la
// funcionalidad (media, IA) no tiene credenciales configuradas.
func RequireConfigured(feature string, checker featureChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if checker == nil || !checker.IsConfigured(feature) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "NOT_CONFIGURED",
				Message: "la funcionalidad '" + feature + "' no está configurada",
			})
		}
		return c.Next()
	}
}
