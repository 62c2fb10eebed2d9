// import_catalog importa una planilla de productos (xlsx o csv) al store configurado,
// con las mismas reglas que POST /api/import.
//
// Uso: go run ./cmd/import_catalog [-skip-duplicates] [-continue-on-error] ruta/catalogo.xlsx
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/catalogo-admin/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/bootstrap"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/catalogo-admin/pkg/config"
	"github.com/jhoicas/catalogo-admin/pkg/logger"
)

func main() {
	opts := dto.DefaultImportOptions()
	flag.BoolVar(&opts.SkipDuplicatesByCode, "skip-duplicates", opts.SkipDuplicatesByCode, "omitir filas cuyo código ya existe")
	flag.BoolVar(&opts.ContinueOnError, "continue-on-error", opts.ContinueOnError, "seguir con las filas restantes ante un error")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "uso: import_catalog [-skip-duplicates=false] [-continue-on-error] <archivo.xlsx|csv>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	stores, err := bootstrap.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir stores: %v\n", err)
		os.Exit(1)
	}
	defer stores.Close()

	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir planilla: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	uc := usecase.NewImportUseCase(spreadsheet.NewReader(),
		catalog.NewImporter(stores.Products, cfg.Inventory.DefaultCategory, log))
	result, importErr := uc.ImportFile(ctx, path, f, opts)
	if result != nil {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	}
	if importErr != nil {
		fmt.Fprintf(os.Stderr, "Importación: %v\n", importErr)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Importados %d, omitidos %d, fallidos %d\n", result.Inserted, result.Skipped, result.Failed)
}
