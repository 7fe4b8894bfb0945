package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/yerbsoft/inventario-api/internal/interfaces/http"
	pkgjwt "github.com/yerbsoft/inventario-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret       = "test-secret-key-for-unit-tests"
	testUserID    int64 = 1
	testUserEmail       = "admin@sistema.com"
	testIssuer          = "inventario-api-test"
	testExpMin          = 60
)

// buildProtectedApp construye una app Fiber mínima con AuthMiddleware y
// RequireRole delante de un handler que responde 200.
func buildProtectedApp(allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{
				"ok":  true,
				"rol": apphttp.GetRol(c),
			})
		},
	)
	return app
}

func tokenConRol(t *testing.T, rol string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserEmail, rol, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

func doProtectedRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_TokenValido_Pasa(t *testing.T) {
	app := buildProtectedApp("Administrador")
	resp := doProtectedRequest(t, app, tokenConRol(t, "Administrador"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "Administrador", body["rol"])
}

func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildProtectedApp("Administrador")
	resp := doProtectedRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "No autenticado", body["error"])
}

func TestAuthMiddleware_TokenMalformado_Retorna401(t *testing.T) {
	app := buildProtectedApp("Administrador")
	resp := doProtectedRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Token inválido o expirado", body["error"])
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildProtectedApp("Administrador")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserEmail, "Administrador", testIssuer, -1)
	require.NoError(t, err)

	resp := doProtectedRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_HeaderSinBearer_Retorna401(t *testing.T) {
	app := buildProtectedApp("Administrador")
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUserEmail, "Administrador", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doProtectedRequest(t, app, tok) // sin prefijo Bearer
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExtraeClaimsALocals(t *testing.T) {
	app := fiber.New()
	app.Get("/yo", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"email":   apphttp.GetEmail(c),
			"rol":     apphttp.GetRol(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/yo", nil)
	req.Header.Set("Authorization", tokenConRol(t, "Bodeguero"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, float64(testUserID), body["user_id"])
	assert.Equal(t, testUserEmail, body["email"])
	assert.Equal(t, "Bodeguero", body["rol"])
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_RolNoPermitido_Retorna403(t *testing.T) {
	app := buildProtectedApp("Administrador")
	resp := doProtectedRequest(t, app, tokenConRol(t, "Vendedor"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.Equal(t, "Acceso denegado", body["error"])
}

func TestRequireRole_MultiRol_Pasa(t *testing.T) {
	app := buildProtectedApp("Administrador", "Bodeguero")
	resp := doProtectedRequest(t, app, tokenConRol(t, "Bodeguero"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
