package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lucasmgo/frota-gr-api/internal/application/auth"
	"github.com/lucasmgo/frota-gr-api/internal/application/report"
	"github.com/lucasmgo/frota-gr-api/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	BaseUC         *usecase.BaseUseCase
	ServiceItemUC  *usecase.ServiceItemUseCase
	RepairOrderUC  *usecase.RepairOrderUseCase
	OrderServiceUC *usecase.RepairOrderServiceUseCase
	PDFUC          *report.PDFUseCase
	JWTSecret      string
}

// Router registra as rotas da API sob /api/v1. A navegação de páginas passa
// pelo GateMiddleware; a API usa Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	// Gate de navegação (páginas; /api/v1 passa direto)
	app.Use(GateMiddleware(deps.JWTSecret))

	api := app.Group("/api/v1")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Usuários
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Patch("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Bases operacionais
	bases := protected.Group("/bases")
	baseHandler := NewBaseHandler(deps.BaseUC)
	bases.Get("/", baseHandler.List)
	bases.Post("/", baseHandler.Create)
	bases.Get("/:id", baseHandler.GetByID)
	bases.Patch("/:id", baseHandler.Update)
	bases.Delete("/:id", baseHandler.Delete)

	// Catálogo de itens de serviço
	items := protected.Group("/repair-order-service-items")
	itemHandler := NewServiceItemHandler(deps.ServiceItemUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:id", itemHandler.GetByID)
	items.Patch("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Delete)

	// Guias de remessa
	orders := protected.Group("/repair-orders")
	orderHandler := NewRepairOrderHandler(deps.RepairOrderUC, deps.PDFUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id", orderHandler.Update)
	orders.Delete("/:id", orderHandler.Delete)
	orders.Get("/:id/pdf", orderHandler.DownloadPDF)

	// Serviços avulsos de guia
	services := protected.Group("/repair-order-services")
	serviceHandler := NewRepairOrderServiceHandler(deps.OrderServiceUC)
	services.Get("/", serviceHandler.List)
	services.Post("/", serviceHandler.Create)
	services.Get("/:id", serviceHandler.GetByID)
	services.Patch("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)
}
