package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-admin/internal/application/dto"
	"github.com/jhoicas/catalogo-admin/internal/application/usecase"
	pkgjwt "github.com/jhoicas/catalogo-admin/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "admin@limpiarte.com"
	testIssuer    = "catalogo-admin-test"
	testExpMin    = 60
)

// tokenForRole genera un JWT del usuario de prueba con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	return tokenFor(t, testUserID, testEmail, role)
}

func tokenFor(t *testing.T, userID, email, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, userID, email, role, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func TestRoles_CatalogRoutes(t *testing.T) {
	env := newTestEnv(t, nil)
	resp, body := env.do(t, http.MethodPost, "/api/categories", "admin", dto.AddCategoryRequest{Name: "Limpieza"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	resp, body = env.do(t, http.MethodPost, "/api/products", "admin", productBody("Trapo", "Limpieza", 3))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	trapoID := decode[dto.ProductResponse](t, body).ID

	cases := []struct {
		name   string
		method string
		path   string
		role   string
		body   any
		want   int
	}{
		{"vendedor no renombra categorías", http.MethodPut, "/api/categories/Limpieza", "vendedor", dto.RenameCategoryRequest{NewName: "Aseo"}, http.StatusForbidden},
		{"bodeguero no renombra categorías", http.MethodPut, "/api/categories/Limpieza", "bodeguero", dto.RenameCategoryRequest{NewName: "Aseo"}, http.StatusForbidden},
		{"vendedor no crea categorías", http.MethodPost, "/api/categories", "vendedor", dto.AddCategoryRequest{Name: "Hogar"}, http.StatusForbidden},
		{"vendedor no crea productos", http.MethodPost, "/api/products", "vendedor", productBody("Balde", "Limpieza", 1), http.StatusForbidden},
		{"vendedor no ajusta stock", http.MethodPost, "/api/products/" + trapoID + "/stock/decrement", "vendedor", nil, http.StatusForbidden},
		{"bodeguero no borra productos", http.MethodDelete, "/api/products/" + trapoID, "bodeguero", nil, http.StatusForbidden},
		{"bodeguero no importa", http.MethodPost, "/api/import", "bodeguero", nil, http.StatusForbidden},
		{"vendedor lista productos", http.MethodGet, "/api/products", "vendedor", nil, http.StatusOK},
		{"vendedor consulta impacto", http.MethodGet, "/api/categories/Limpieza/impact", "vendedor", nil, http.StatusOK},
		{"bodeguero ajusta stock", http.MethodPost, "/api/products/" + trapoID + "/stock/increment", "bodeguero", nil, http.StatusOK},
		{"bodeguero crea productos", http.MethodPost, "/api/products", "bodeguero", productBody("Balde", "Limpieza", 1), http.StatusCreated},
		{"admin renombra categorías", http.MethodPut, "/api/categories/Limpieza", "admin", dto.RenameCategoryRequest{NewName: "Aseo", Cascade: true}, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := env.do(t, tc.method, tc.path, tc.role, tc.body)
			require.Equal(t, tc.want, resp.StatusCode, string(body))
			if tc.want == http.StatusForbidden {
				assert.Equal(t, "FORBIDDEN", decode[dto.ErrorResponse](t, body).Code)
			}
		})
	}

	// Los rechazos no tocaron el registro: sólo el renombrado del admin.
	resp, body = env.do(t, http.MethodGet, "/api/categories", "vendedor", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	items := decode[dto.CategoryListResponse](t, body).Items
	require.Len(t, items, 1)
	assert.Equal(t, "Aseo", items[0].Name)
	assert.Equal(t, 2, items[0].ProductCount)
}

func TestRoles_TokenErrors(t *testing.T) {
	env := newTestEnv(t, nil)
	noRole := tokenFor(t, testUserID, testEmail, "")

	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"sin header", "", "MISSING_TOKEN"},
		{"sin prefijo Bearer", "Token abc", "INVALID_TOKEN"},
		{"token malformado", "Bearer token.invalido.aqui", "INVALID_TOKEN"},
		{"token sin rol", noRole, "MISSING_ROLE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, body := env.doWithHeader(t, http.MethodPut, "/api/categories/Limpieza", tc.header,
				dto.RenameCategoryRequest{NewName: "Aseo"})
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode, string(body))
			assert.Equal(t, tc.code, decode[dto.ErrorResponse](t, body).Code)
		})
	}
}

// La API key de IA se guarda por usuario del token, no por rol.
func TestSession_AIKeyIsPerUser(t *testing.T) {
	env := newTestEnv(t, usecase.FeatureSet{usecase.FeatureAI: true})
	ana := tokenFor(t, "user-ana", "ana@limpiarte.com", "bodeguero")
	beto := tokenFor(t, "user-beto", "beto@limpiarte.com", "bodeguero")

	resp, body := env.doWithHeader(t, http.MethodPut, "/api/settings/ai-key", ana, dto.SaveAPIKeyRequest{APIKey: "sk-ana"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = env.doWithHeader(t, http.MethodPost, "/api/ai/description", ana, dto.DescriptionRequest{Name: "Trapo"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "Texto (sk-ana)", decode[dto.DescriptionResponse](t, body).Description)

	resp, body = env.doWithHeader(t, http.MethodPost, "/api/ai/description", beto, dto.DescriptionRequest{Name: "Trapo"})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, string(body))
}
