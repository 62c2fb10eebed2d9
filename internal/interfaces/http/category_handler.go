package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/catalogo-admin/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
)

// CategoryHandler maneja el registro de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías con cantidad de productos
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        sorted  query  bool  false  "Orden alfabético (widgets)"
// @Success      200     {object}  dto.CategoryListResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryBool("sorted"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Registrar categoría
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCategoryRequest  true  "Nombre"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Add(c *fiber.Ctx) error {
	var in dto.AddCategoryRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Add(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Impact godoc
// @Summary      Productos afectados por renombrar o eliminar la categoría
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Categoría"
// @Success      200   {object}  dto.CategoryImpactResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{name}/impact [get]
func (h *CategoryHandler) Impact(c *fiber.Ctx) error {
	out, err := h.uc.Impact(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Rename godoc
// @Summary      Renombrar categoría
// @Description  Con cascade=true migra los productos antes de actualizar el registro. Si la
//               migración falla a medias responde 502 con los productos ya migrados.
// @Tags         categories
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Categoría actual"
// @Param        body  body  dto.RenameCategoryRequest  true  "Nuevo nombre y cascade"
// @Success      200   {object}  dto.RenameCategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.RenameCategoryResponse
// @Router       /api/categories/{name} [put]
func (h *CategoryHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameCategoryRequest
	if err := bindBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Rename(c.UserContext(), c.Params("name"), in)
	var migErr *catalog.MigrationError
	if errors.As(err, &migErr) {
		status, _ := classify(err)
		out.Error = migErr.Error()
		return c.Status(status).JSON(out)
	}
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Eliminar categoría (los productos quedan huérfanos)
// @Tags         categories
// @Security     Bearer
// @Produce      json
// @Param        name  path  string  true  "Categoría"
// @Success      200   {object}  dto.RemoveCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{name} [delete]
func (h *CategoryHandler) Remove(c *fiber.Ctx) error {
	out, err := h.uc.Remove(c.UserContext(), c.Params("name"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
