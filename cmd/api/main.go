package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lucasmgo/frota-gr-api/internal/application/auth"
	"github.com/lucasmgo/frota-gr-api/internal/application/report"
	"github.com/lucasmgo/frota-gr-api/internal/application/usecase"
	infrapdf "github.com/lucasmgo/frota-gr-api/internal/infrastructure/pdf"
	"github.com/lucasmgo/frota-gr-api/internal/infrastructure/postgres"
	httpRouter "github.com/lucasmgo/frota-gr-api/internal/interfaces/http"
	"github.com/lucasmgo/frota-gr-api/pkg/config"
	"github.com/lucasmgo/frota-gr-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	baseRepo := postgres.NewBaseRepository(pool)
	itemRepo := postgres.NewServiceItemRepository(pool)
	orderRepo := postgres.NewRepairOrderRepository(pool)
	serviceRepo := postgres.NewRepairOrderServiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.Auth.BcryptRounds)
	userUC := usecase.NewUserUseCase(userRepo, cfg.Auth.BcryptRounds)
	baseUC := usecase.NewBaseUseCase(baseRepo, orderRepo)
	itemUC := usecase.NewServiceItemUseCase(itemRepo, baseRepo)
	orderUC := usecase.NewRepairOrderUseCase(txRunner, orderRepo, serviceRepo, baseRepo, itemRepo)
	orderServiceUC := usecase.NewRepairOrderServiceUseCase(orderUC, orderRepo, serviceRepo)

	// PDF: retrato imprimível da guia de remessa
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := report.NewPDFUseCase(orderRepo, serviceRepo, baseRepo, itemRepo, userRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    16 << 20, // uploads de fotos no multipart
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Frota GR API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		BaseUC:         baseUC,
		ServiceItemUC:  itemUC,
		RepairOrderUC:  orderUC,
		OrderServiceUC: orderServiceUC,
		PDFUC:          pdfUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação finalizada")
}
