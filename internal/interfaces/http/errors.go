package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/domain"
)

// errorMapping asocia un error de dominio con su status y código HTTP.
// El orden importa: ErrDuplicateCategory también es ErrValidation.
var errorMapping = []struct {
	target error
	status int
	code   string
}{
	{domain.ErrDuplicateCategory, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrEmailAlreadyExists, fiber.StatusConflict, "EMAIL_EXISTS"},
	{domain.ErrValidation, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrUserNotFound, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrNotConfigured, fiber.StatusServiceUnavailable, "NOT_CONFIGURED"},
	{domain.ErrAuth, fiber.StatusUnauthorized, "AI_AUTH"},
	{domain.ErrUpstream, fiber.StatusBadGateway, "UPSTREAM"},
}

// classify devuelve status y código para err; lo desconocido es 500 INTERNAL.
func classify(err error) (int, string) {
	for _, m := range errorMapping {
		if errors.Is(err, m.target) {
			return m.status, m.code
		}
	}
	return fiber.StatusInternalServerError, "INTERNAL"
}

// writeError responde err con el status de la taxonomía de dominio.
func writeError(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	msg := err.Error()
	switch code {
	case "UNAUTHORIZED":
		msg = "credenciales inválidas"
	case "INTERNAL":
		msg = "error interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
