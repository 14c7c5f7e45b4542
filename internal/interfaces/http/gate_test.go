package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/lucasmgo/frota-gr-api/internal/interfaces/http"
	"github.com/lucasmgo/frota-gr-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// EvaluateGate — função pura, testada em tabela
// ──────────────────────────────────────────────────────────────────────────────

func TestEvaluateGate_Matriz(t *testing.T) {
	anon := apphttp.GateSession{}
	pendingMechanic := apphttp.GateSession{Authenticated: true, Status: "PENDING", Type: "MECHANIC"}
	approvedMechanic := apphttp.GateSession{Authenticated: true, Status: "APPROVED", Type: "MECHANIC"}
	approvedBudgetist := apphttp.GateSession{Authenticated: true, Status: "APPROVED", Type: "BUDGETIST"}
	reprovedBudgetist := apphttp.GateSession{Authenticated: true, Status: "REPROVED", Type: "BUDGETIST"}

	cases := []struct {
		name     string
		path     string
		session  apphttp.GateSession
		allow    bool
		redirect string
	}{
		// /dashboard
		{"dashboard sem login", "/dashboard/repair-orders", anon, false, "/login"},
		{"dashboard pendente", "/dashboard/repair-orders", pendingMechanic, false, "/registration-pending"},
		{"dashboard reprovado", "/dashboard", reprovedBudgetist, false, "/registration-pending"},
		{"dashboard mecânico aprovado", "/dashboard/bases", approvedMechanic, false, "/repair-order"},
		{"dashboard orçamentista aprovado", "/dashboard/repair-orders", approvedBudgetist, true, ""},

		// /repair-order
		{"repair-order sem login", "/repair-order", anon, false, "/login"},
		{"repair-order pendente", "/repair-order/novo", pendingMechanic, false, "/registration-pending"},
		{"repair-order mecânico aprovado", "/repair-order", approvedMechanic, true, ""},
		{"repair-order orçamentista aprovado", "/repair-order", approvedBudgetist, true, ""},

		// /login e /register
		{"login anônimo", "/login", anon, true, ""},
		{"login já aprovado", "/login", approvedBudgetist, false, "/dashboard/repair-orders"},
		{"register já aprovado", "/register", approvedMechanic, false, "/dashboard/repair-orders"},
		{"register pendente", "/register", pendingMechanic, true, ""},

		// /registration-pending
		{"pendente sem login", "/registration-pending", anon, false, "/login"},
		{"pendente ainda pendente", "/registration-pending", pendingMechanic, true, ""},
		{"pendente já aprovado", "/registration-pending", approvedBudgetist, false, "/login"},

		// bypass e pass-through
		{"api bypass anônimo", "/api/v1/repair-orders", anon, true, ""},
		{"api bypass pendente", "/api/v1/login", pendingMechanic, true, ""},
		{"rota desconhecida", "/sobre", anon, true, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := apphttp.EvaluateGate(tc.path, tc.session)
			assert.Equal(t, tc.allow, d.Allow)
			assert.Equal(t, tc.redirect, d.RedirectTo)
		})
	}
}

// Prefixo não pode casar página parecida: /repair-orderx não é /repair-order/*.
func TestEvaluateGate_PrefixoExato(t *testing.T) {
	d := apphttp.EvaluateGate("/repair-orderx", apphttp.GateSession{})
	assert.True(t, d.Allow)

	d = apphttp.EvaluateGate("/dashboardx", apphttp.GateSession{})
	assert.True(t, d.Allow)
}

// ──────────────────────────────────────────────────────────────────────────────
// GateMiddleware — integração com Fiber
// ──────────────────────────────────────────────────────────────────────────────

func buildGateApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.GateMiddleware(testJWTSecret))
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	app.Get("/dashboard/repair-orders", ok)
	app.Get("/repair-order", ok)
	app.Get("/login", ok)
	return app
}

func TestGateMiddleware_SemSessaoRedirecionaParaLogin(t *testing.T) {
	app := buildGateApp()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/repair-orders", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGateMiddleware_MecanicoNoDashboardVaiParaRepairOrder(t *testing.T) {
	app := buildGateApp()
	tok, err := jwt.Generate(testJWTSecret, testUserID, "Mecânico", "MECHANIC", "APPROVED", testIssuer, testExpMin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/repair-orders", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: tok})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/repair-order", resp.Header.Get("Location"))
}

func TestGateMiddleware_OrcamentistaAprovadoPassa(t *testing.T) {
	app := buildGateApp()
	tok, err := jwt.Generate(testJWTSecret, testUserID, "Orçamentista", "BUDGETIST", "APPROVED", testIssuer, testExpMin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/repair-orders", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: tok})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Token inválido no cookie conta como sessão anônima, não como erro.
func TestGateMiddleware_TokenInvalidoViraAnonimo(t *testing.T) {
	app := buildGateApp()

	req := httptest.NewRequest(http.MethodGet, "/dashboard/repair-orders", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "token.invalido.aqui"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}
