package http

import (
	"errors"
	"os"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/catalogo-admin/internal/application/auth"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// RouterDeps dependencias para el router. AuthUC es nil cuando la identidad la provee
// Firebase Auth: en ese caso no se exponen /auth/register ni /auth/login.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	Verifier   TokenVerifier
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	ImportUC   *usecase.ImportUseCase
	ExportUC   *usecase.ExportUseCase
	MediaUC    *usecase.MediaUseCase
	AIUC       *usecase.AIUseCase
	SettingsUC *usecase.SettingsUseCase
	Features   usecase.FeatureSet
}

// NewApp crea la aplicación Fiber con recover, /health y Swagger UI si existe docs/swagger.json.
func NewApp(name string, log *logger.Logger) *fiber.App {
	if log == nil {
		log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    12 << 20,
		// Los nombres de categoría viajan en la ruta (espacios, tildes).
		UnescapePath: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
			}
			log.Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
		},
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    name,
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": name})
	})
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	writers := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	adminOnly := RequireRole(entity.RoleAdmin)
	authn := AuthMiddleware(deps.Verifier)

	// Auth: login público; alta de usuarios solo para admin.
	if deps.AuthUC != nil {
		authHandler := NewAuthHandler(deps.AuthUC)
		authGroup := api.Group("/auth")
		authGroup.Post("/login", authHandler.Login)
		authGroup.Post("/register", authn, adminOnly, authHandler.Register)
	}

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", authn)

	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", writers, productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", writers, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Post("/:id/stock/increment", writers, productHandler.Increment)
	products.Post("/:id/stock/decrement", writers, productHandler.Decrement)

	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", adminOnly, categoryHandler.Add)
	categories.Get("/:name/impact", categoryHandler.Impact)
	categories.Put("/:name", adminOnly, categoryHandler.Rename)
	categories.Delete("/:name", adminOnly, categoryHandler.Remove)

	protected.Post("/import", adminOnly, NewImportHandler(deps.ImportUC).Import)
	protected.Get("/export", NewExportHandler(deps.ExportUC).Export)

	media := protected.Group("/media", RequireConfigured(usecase.FeatureMedia, deps.Features))
	mediaHandler := NewMediaHandler(deps.MediaUC)
	media.Post("/", writers, mediaHandler.Upload)
	media.Get("/", mediaHandler.List)
	media.Delete("/*", adminOnly, mediaHandler.Delete)

	aiHandler := NewAIHandler(deps.AIUC)
	protected.Post("/ai/description", RequireConfigured(usecase.FeatureAI, deps.Features), writers, aiHandler.GenerateDescription)

	protected.Put("/settings/ai-key", NewSettingsHandler(deps.SettingsUC).SaveAPIKey)
}
