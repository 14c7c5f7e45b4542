package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/lucasmgo/frota-gr-api/internal/interfaces/http"
	pkgjwt "github.com/lucasmgo/frota-gr-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "frota-gr-test"
	testExpMin    = 60
)

// buildAuthApp app Fiber mínima: AuthMiddleware + handler que ecoa os locals.
func buildAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"type":    apphttp.GetUserType(c),
			"status":  apphttp.GetUserStatus(c),
		})
	})
	return app
}

func bearerToken(t *testing.T, userType, status string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "Fulano de Tal", userType, status, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

func getMe(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware_ExtraiClaims(t *testing.T) {
	app := buildAuthApp()
	resp := getMe(t, app, bearerToken(t, "BUDGETIST", "APPROVED"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "BUDGETIST", body["type"])
	assert.Equal(t, "APPROVED", body["status"])
}

func TestAuthMiddleware_SemHeader_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := getMe(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_FormatoErrado_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := getMe(t, app, "Token abc123")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildAuthApp()
	resp := getMe(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildAuthApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "Fulano", "MECHANIC", "APPROVED", testIssuer, -1)
	require.NoError(t, err)

	resp := getMe(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_SecretDiferente_Retorna401(t *testing.T) {
	app := buildAuthApp()
	tok, err := pkgjwt.Generate("outro-secret-completamente-diferente", testUserID, "Fulano", "MECHANIC", "APPROVED", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := getMe(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
