package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin/internal/application/auth"
	"github.com/jhoicas/catalogo-admin/internal/application/catalog"
	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/ports"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	"github.com/jhoicas/catalogo-admin/internal/domain/entity"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/memory"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/search"
	"github.com/jhoicas/catalogo-admin/internal/infrastructure/spreadsheet"
	apphttp "github.com/jhoicas/catalogo-admin/internal/interfaces/http"
)

type fakeGenerator struct{ text string }

func (g fakeGenerator) Generate(_ context.Context, apiKey, _ string) (string, error) {
	return g.text + " (" + apiKey + ")", nil
}

type testEnv struct {
	app      *fiber.App
	products *memory.ProductRepo
	authUC   *auth.AuthUseCase
}

func newTestEnv(t *testing.T, features usecase.FeatureSet) *testEnv {
	t.Helper()
	products := memory.NewProductRepo()
	settings := memory.NewSettingsStore()
	categories := catalog.NewSettingsCategoryStore(settings)
	reconciler := catalog.NewReconciler(products, nil)
	registry := catalog.NewCategoryRegistry(categories, reconciler, nil)
	thresholds := entity.StockThresholds{Critical: 5, Low: 10, Medium: 15}
	settingsUC := usecase.NewSettingsUseCase(settings, "sk-")
	authUC := auth.NewAuthUseCase(memory.NewUserRepo(), auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer})

	app := apphttp.NewApp("catalogo-test", nil)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:     authUC,
		Verifier:   authUC,
		ProductUC:  usecase.NewProductUseCase(products, categories, search.NewFuzzySearcher(), thresholds),
		CategoryUC: usecase.NewCategoryUseCase(registry, reconciler, nil),
		ImportUC:   usecase.NewImportUseCase(spreadsheet.NewReader(), catalog.NewImporter(products, "General", nil)),
		ExportUC: usecase.NewExportUseCase(products,
			spreadsheet.Renderers(map[dto.ExportFormat]ports.Renderer{}), "Inventario - Test"),
		MediaUC:    usecase.NewMediaUseCase(nil, nil, "limpiarte", nil),
		AIUC:       usecase.NewAIUseCase(fakeGenerator{text: "Texto"}, settingsUC, nil),
		SettingsUC: settingsUC,
		Features:   features,
	})
	return &testEnv{app: app, products: products, authUC: authUC}
}

func (e *testEnv) do(t *testing.T, method, path, role string, body any) (*http.Response, []byte) {
	t.Helper()
	header := ""
	if role != "" {
		header = tokenForRole(t, role)
	}
	return e.doWithHeader(t, method, path, header, body)
}

func (e *testEnv) doWithHeader(t *testing.T, method, path, authHeader string, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func productBody(name, category string, qty int) dto.SaveProductRequest {
	return dto.SaveProductRequest{
		Code: "C-" + name, Name: name, Category: category, Price: decimal.NewFromInt(100),
		Quantity: qty, Image: "https://cdn.example.com/" + name + ".jpg",
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t, nil)
	resp, body := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"ok"`)
}

func TestProducts_CRUDAndStock(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := env.do(t, http.MethodPost, "/api/products", "bodeguero", productBody("Trapo", "Limpieza", 1))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	created := decode[dto.ProductResponse](t, body)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.StockCritical, created.StockLevel)

	resp, body = env.do(t, http.MethodPost, "/api/products/"+created.ID+"/stock/decrement", "bodeguero", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.StockResponse](t, body).Quantity)

	resp, body = env.do(t, http.MethodPost, "/api/products/"+created.ID+"/stock/decrement", "bodeguero", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[dto.StockResponse](t, body).Quantity, "nunca baja de cero")

	resp, _ = env.do(t, http.MethodPost, "/api/products/"+created.ID+"/stock/increment", "vendedor", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = env.do(t, http.MethodGet, "/api/products?only_no_stock=true", "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.ProductListResponse](t, body).Total)

	resp, _ = env.do(t, http.MethodDelete, "/api/products/"+created.ID, "admin", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body = env.do(t, http.MethodGet, "/api/products/"+created.ID, "admin", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)
}

func TestProducts_CategoryChangesOnlyOnExplicitEdit(t *testing.T) {
	env := newTestEnv(t, nil)
	resp, body := env.do(t, http.MethodPost, "/api/products", "admin", productBody("Trapo", "Limpieza", 1))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	id := decode[dto.ProductResponse](t, body).ID

	resp, body = env.do(t, http.MethodPost, "/api/products/"+id+"/stock/increment", "bodeguero", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	resp, body = env.do(t, http.MethodGet, "/api/products/"+id, "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "Limpieza", decode[dto.ProductResponse](t, body).Category)

	resp, body = env.do(t, http.MethodPut, "/api/products/"+id, "bodeguero", productBody("Trapo", "Hogar", 2))
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "Hogar", decode[dto.ProductResponse](t, body).Category)
}

func TestProducts_ValidationErrors(t *testing.T) {
	env := newTestEnv(t, nil)

	in := productBody("  ", "Limpieza", 1)
	resp, body := env.do(t, http.MethodPost, "/api/products", "admin", in)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	er := decode[dto.ErrorResponse](t, body)
	assert.Equal(t, "VALIDATION", er.Code)
	assert.Contains(t, er.Message, "name")

	resp, _ = env.do(t, http.MethodGet, "/api/products?order=alfabetico", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategories_Lifecycle(t *testing.T) {
	env := newTestEnv(t, nil)

	resp, body := env.do(t, http.MethodPost, "/api/categories", "admin", dto.AddCategoryRequest{Name: " Baños "})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.Equal(t, "Baños", decode[dto.CategoryResponse](t, body).Name)

	resp, body = env.do(t, http.MethodPost, "/api/categories", "admin", dto.AddCategoryRequest{Name: "Baños"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, body).Code)

	resp, _ = env.do(t, http.MethodPost, "/api/categories", "bodeguero", dto.AddCategoryRequest{Name: "Cocina"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	for _, n := range []string{"Jabón", "Balde"} {
		resp, body = env.do(t, http.MethodPost, "/api/products", "admin", productBody(n, "Baños", 3))
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	path := "/api/categories/" + url.PathEscape("Baños")
	resp, body = env.do(t, http.MethodGet, path+"/impact", "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, 2, decode[dto.CategoryImpactResponse](t, body).AffectedProducts)

	resp, body = env.do(t, http.MethodPut, path, "admin", dto.RenameCategoryRequest{NewName: "Baño y Cocina", Cascade: true})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, 2, decode[dto.RenameCategoryResponse](t, body).Migrated)

	resp, body = env.do(t, http.MethodGet, "/api/products?category="+url.QueryEscape("Baño y Cocina"), "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[dto.ProductListResponse](t, body).Total)

	resp, body = env.do(t, http.MethodDelete, "/api/categories/"+url.PathEscape("Baño y Cocina"), "admin", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, 2, decode[dto.RemoveCategoryResponse](t, body).OrphanedProducts)

	resp, body = env.do(t, http.MethodGet, "/api/products?orphaned=true", "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, decode[dto.ProductListResponse](t, body).Total)

	resp, _ = env.do(t, http.MethodGet, path+"/impact", "admin", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func (e *testEnv) importCSV(t *testing.T, query, content string) (int, dto.ImportResult) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "catalogo.csv")
	require.NoError(t, err)
	_, _ = fw.Write([]byte(content))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/import"+query, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, decode[dto.ImportResult](t, raw)
}

const duplicatedCSV = "Código,Nombre,Categoría,Precio,Stock\nX1,Trapo,Limpieza,10,4\nX1,Trapo bis,Limpieza,12,1\nB2,Balde,,250,0\n"

func TestImport_SkipsDuplicateCodesByDefault(t *testing.T) {
	env := newTestEnv(t, nil)

	status, result := env.importCSV(t, "", duplicatedCSV)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 3, result.Outcomes[1].Row)

	list, err := env.products.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Trapo", list[0].Name)
}

func TestImport_DedupCanBeDisabled(t *testing.T) {
	env := newTestEnv(t, nil)

	status, result := env.importCSV(t, "?skip_duplicates=false", duplicatedCSV)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 3, result.Inserted)
	assert.Zero(t, result.Skipped)
}

func TestImportAndExport(t *testing.T) {
	env := newTestEnv(t, nil)

	status, result := env.importCSV(t, "?skip_duplicates=true", duplicatedCSV)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
	assert.False(t, result.Aborted)

	resp, body := env.do(t, http.MethodGet, "/api/export?format=csv&only_no_stock=true", "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".csv")
	assert.Contains(t, string(body), "B2,Balde,General,250.00,0,No")
	assert.NotContains(t, string(body), "X1")

	resp, _ = env.do(t, http.MethodGet, "/api/export?format=odt", "vendedor", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFeatureGates(t *testing.T) {
	env := newTestEnv(t, usecase.FeatureSet{usecase.FeatureAI: true})

	resp, body := env.do(t, http.MethodGet, "/api/media", "admin", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "NOT_CONFIGURED", decode[dto.ErrorResponse](t, body).Code)

	// IA habilitada pero el usuario no guardó su key.
	resp, body = env.do(t, http.MethodPost, "/api/ai/description", "admin", dto.DescriptionRequest{Name: "Trapo"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, string(body))

	resp, body = env.do(t, http.MethodPut, "/api/settings/ai-key", "admin", dto.SaveAPIKeyRequest{APIKey: "abc"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(body))

	resp, body = env.do(t, http.MethodPut, "/api/settings/ai-key", "admin", dto.SaveAPIKeyRequest{APIKey: "sk-123"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = env.do(t, http.MethodPost, "/api/ai/description", "admin", dto.DescriptionRequest{Name: "Trapo"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "Texto (sk-123)", decode[dto.DescriptionResponse](t, body).Description)
}

func TestAuth_LoginAndAdminOnlyRegister(t *testing.T) {
	env := newTestEnv(t, nil)
	_, err := env.authUC.EnsureAdmin(context.Background(), "admin@limpiarte.com", "secreto123")
	require.NoError(t, err)

	resp, body := env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "ADMIN@limpiarte.com", Password: "secreto123"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	login := decode[dto.LoginResponse](t, body)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, entity.RoleAdmin, login.User.Role)

	resp, _ = env.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "admin@limpiarte.com", Password: "otra-clave"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	reg := dto.RegisterRequest{Email: "vende@limpiarte.com", Password: "clave-larga"}
	resp, _ = env.do(t, http.MethodPost, "/api/auth/register", "", reg)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = env.do(t, http.MethodPost, "/api/auth/register", "admin", reg)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	assert.Equal(t, entity.RoleVendedor, decode[dto.UserResponse](t, body).Role)

	resp, body = env.do(t, http.MethodPost, "/api/auth/register", "admin", reg)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, string(body))
}

func TestUnknownErrorsAreHidden(t *testing.T) {
	env := newTestEnv(t, nil)
	resp, body := env.do(t, http.MethodPost, "/api/products", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, strings.Contains(string(body), "INTERNAL"))
}
