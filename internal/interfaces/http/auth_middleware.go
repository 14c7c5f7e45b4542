package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lucasmgo/frota-gr-api/internal/application/dto"
	"github.com/lucasmgo/frota-gr-api/pkg/jwt"
)

// Chaves de Locals preenchidas pelo AuthMiddleware.
const (
	LocalUserID     = "user_id"
	LocalUserName   = "user_name"
	LocalUserType   = "user_type"
	LocalUserStatus = "user_status"
)

// sessionCookie cookie usado pela navegação de páginas; a API usa Bearer.
const sessionCookie = "session"

// AuthMiddleware valida o Bearer Token JWT e coloca os claims em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalUserName, claims.Name)
		c.Locals(LocalUserType, claims.Type)
		c.Locals(LocalUserStatus, claims.Status)
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (após o AuthMiddleware).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetUserType devolve o tipo de usuário do contexto.
func GetUserType(c *fiber.Ctx) string { return localString(c, LocalUserType) }

// GetUserStatus devolve o status de cadastro do usuário do contexto.
func GetUserStatus(c *fiber.Ctx) string { return localString(c, LocalUserStatus) }

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
