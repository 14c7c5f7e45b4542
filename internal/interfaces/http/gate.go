package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lucasmgo/frota-gr-api/internal/domain/entity"
	"github.com/lucasmgo/frota-gr-api/pkg/jwt"
)

// GateSession estado de sessão visto pelo gate de autorização. Token ausente
// ou inválido equivale a Authenticated=false com Status/Type vazios.
type GateSession struct {
	Authenticated bool
	Status        string
	Type          string
}

// GateDecision resultado do gate: segue (Allow) ou redireciona (RedirectTo).
type GateDecision struct {
	Allow      bool
	RedirectTo string
}

var pass = GateDecision{Allow: true}

func redirect(to string) GateDecision { return GateDecision{RedirectTo: to} }

// EvaluateGate aplica a matriz de navegação sobre (path, sessão). Função pura:
// sem I/O, sem efeitos. Rotas /api/v1 não passam por aqui.
//
//	/dashboard/*           → exige login + APPROVED + orçamentista
//	/repair-order/*        → exige login + APPROVED
//	/login, /register      → já logado e aprovado volta para o painel
//	/registration-pending  → corrige estado obsoleto
func EvaluateGate(path string, s GateSession) GateDecision {
	switch {
	case strings.HasPrefix(path, "/api/v1"):
		return pass

	case path == "/dashboard" || strings.HasPrefix(path, "/dashboard/"):
		if !s.Authenticated {
			return redirect("/login")
		}
		if s.Status != entity.UserStatusApproved {
			return redirect("/registration-pending")
		}
		if s.Type != entity.UserTypeBudgetist {
			return redirect("/repair-order")
		}
		return pass

	case path == "/repair-order" || strings.HasPrefix(path, "/repair-order/"):
		if !s.Authenticated {
			return redirect("/login")
		}
		if s.Status != entity.UserStatusApproved {
			return redirect("/registration-pending")
		}
		return pass

	case path == "/login" || path == "/register":
		if s.Authenticated && s.Status == entity.UserStatusApproved {
			return redirect("/dashboard/repair-orders")
		}
		return pass

	case path == "/registration-pending":
		if !s.Authenticated {
			return redirect("/login")
		}
		if s.Status == entity.UserStatusApproved {
			// cadastro já aprovado: sessão precisa ser refeita para
			// carregar os claims novos
			return redirect("/login")
		}
		return pass

	default:
		return pass
	}
}

// GateMiddleware constrói a sessão a partir do cookie/header JWT e aplica
// EvaluateGate às rotas de navegação, emitindo 302 quando o gate manda.
func GateMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		decision := EvaluateGate(c.Path(), gateSession(c, jwtSecret))
		if decision.Allow {
			return c.Next()
		}
		return c.Redirect(decision.RedirectTo, fiber.StatusFound)
	}
}

// gateSession extrai a sessão do cookie "session" ou do header Authorization.
func gateSession(c *fiber.Ctx, jwtSecret string) GateSession {
	tokenString := c.Cookies(sessionCookie)
	if tokenString == "" {
		authHeader := c.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = strings.TrimSpace(parts[1])
		}
	}
	if tokenString == "" {
		return GateSession{}
	}
	claims, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return GateSession{}
	}
	return GateSession{Authenticated: true, Status: claims.Status, Type: claims.Type}
}
