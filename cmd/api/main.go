package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/catalogo-admin/internal/application/auth"
	"github.com/jhoicas/catalogo-admin/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/bootstrap"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	infraai "github.com/jhoicas/catalogo-admin/internal/infrastructure/ai"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/firebase"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/htmldoc"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/media"
	infrapdf "github.com/jhoicas/catalogo-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/search"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/spreadsheet"
	httpRouter "github.com/jhoicas/catalogo-admin/internal/interfaces/http"
	"github.com/jhoicas/catalogo-admin/pkg/config"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	stores, err := bootstrap.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir stores")
	}
	defer stores.Close()

	features := usecase.FeatureSet{}

	// Catálogo: registro de categorías, reconciliación e importación
	categoryStore := catalog.NewSettingsCategoryStore(stores.Settings)
	reconciler := catalog.NewReconciler(stores.Products, log)
	registry := catalog.NewCategoryRegistry(categoryStore, reconciler, log)
	importer := catalog.NewImporter(stores.Products, cfg.Inventory.DefaultCategory, log)

	thresholds := entity.StockThresholds{
		Critical: cfg.Inventory.StockCritical,
		Low:      cfg.Inventory.StockLow,
		Medium:   cfg.Inventory.StockMedium,
	}
	productUC := usecase.NewProductUseCase(stores.Products, categoryStore, search.NewFuzzySearcher(), thresholds)
	categoryUC := usecase.NewCategoryUseCase(registry, reconciler, log)
	importUC := usecase.NewImportUseCase(spreadsheet.NewReader(), importer)
	exportUC := usecase.NewExportUseCase(stores.Products, spreadsheet.Renderers(map[dto.ExportFormat]ports.Renderer{
		dto.FormatDOC: htmldoc.NewRenderer(),
		dto.FormatPDF: infrapdf.NewMarotoRenderer(),
	}), cfg.Inventory.ExportTitle)

	// Media host: opcional; sin bucket las rutas /media responden 503
	var mediaStorage ports.MediaStorage
	if cfg.Media.Configured() {
		bs, err := media.Open(ctx, cfg.Media)
		if err != nil {
			log.Fatal().Err(err).Msg("abrir bucket de media")
		}
		defer bs.Close()
		mediaStorage = bs
		features[usecase.FeatureMedia] = true
	} else {
		log.Warn().Msg("MEDIA_BUCKET_URL vacío: subida de imágenes deshabilitada")
	}
	mediaUC := usecase.NewMediaUseCase(mediaStorage,
		media.NewJPEGCompressor(cfg.Media.MaxWidth, cfg.Media.JPEGQuality), cfg.Media.RootFolder, log)

	// IA: la key es por usuario, el proveedor es global
	generator, keyPrefix, err := infraai.New(cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("proveedor de IA")
	}
	features[usecase.FeatureAI] = true
	settingsUC := usecase.NewSettingsUseCase(stores.Settings, keyPrefix)
	aiUC := usecase.NewAIUseCase(generator, settingsUC, log)

	// Identidad: JWT propio o ID tokens de Firebase Auth
	var (
		authUC   *auth.AuthUseCase
		verifier httpRouter.TokenVerifier
	)
	switch cfg.Auth.Provider {
	case "firebase":
		client, err := stores.Firebase.Auth(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente Firebase Auth")
		}
		verifier = firebase.NewAuthVerifier(client, entity.RoleAdmin)
	default:
		authUC = auth.NewAuthUseCase(stores.Users, auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		})
		verifier = authUC
		if cfg.Auth.AdminEmail != "" {
			created, err := authUC.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)
			if err != nil {
				log.Fatal().Err(err).Msg("crear admin inicial")
			}
			if created {
				log.Info().Str("email", cfg.Auth.AdminEmail).Msg("admin inicial creado")
			}
		}
	}

	app := httpRouter.NewApp(cfg.App.Name, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		Verifier:   verifier,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		ImportUC:   importUC,
		ExportUC:   exportUC,
		MediaUC:    mediaUC,
		AIUC:       aiUC,
		SettingsUC: settingsUC,
		Features:   features,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
