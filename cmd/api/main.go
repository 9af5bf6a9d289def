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

	"github.com/beanshub/roastery-api/internal/application/analytics"
	"github.com/beanshub/roastery-api/internal/application/auth"
	"github.com/beanshub/roastery-api/internal/application/inventory"
	"github.com/beanshub/roastery-api/internal/application/pricing"
	"github.com/beanshub/roastery-api/internal/application/production"
	"github.com/beanshub/roastery-api/internal/application/reports"
	"github.com/beanshub/roastery-api/internal/application/roasting"
	"github.com/beanshub/roastery-api/internal/application/sales"
	"github.com/beanshub/roastery-api/internal/application/usecase"
	"github.com/beanshub/roastery-api/internal/infrastructure/cache"
	"github.com/beanshub/roastery-api/internal/infrastructure/docstore"
	"github.com/beanshub/roastery-api/internal/infrastructure/events"
	infrapdf "github.com/beanshub/roastery-api/internal/infrastructure/pdf"
	"github.com/beanshub/roastery-api/internal/infrastructure/postgres"
	httpRouter "github.com/beanshub/roastery-api/internal/interfaces/http"
	"github.com/beanshub/roastery-api/internal/state"
	"github.com/beanshub/roastery-api/pkg/config"
	"github.com/beanshub/roastery-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	beanRepo := postgres.NewGreenBeanRepository(pool)
	profileRepo := postgres.NewRoastingProfileRepository(pool)
	sessionRepo := postgres.NewRoastingSessionRepository(pool)
	scoreRepo := postgres.NewQualityScoreRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	planRepo := postgres.NewProductionPlanRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Feed de cambios + watcher: cada sesión de usuario mantiene una copia en
	// memoria de sus colecciones, refrescada colección completa por tick.
	feed := docstore.NewFeed()
	watcher := docstore.NewWatcher(feed, userRepo, beanRepo, profileRepo, sessionRepo, saleRepo)
	sessions := state.NewManager(watcher, log)

	publisher := events.NewAMQPPublisher(cfg.Broker.URL, log)

	redisClient := cache.NewRedisClient(cfg.Redis, log)
	if redisClient != nil {
		defer redisClient.Close()
	}
	summaryCache := cache.NewRedisCache(redisClient, log)

	authUC := auth.NewAuthUseCase(userRepo, sessions, feed, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	inventoryUC := inventory.NewInventoryUseCase(beanRepo, movementRepo, txRunner, feed, publisher, sessions)
	roastingUC := roasting.NewRoastingUseCase(profileRepo, sessionRepo, scoreRepo, txRunner, feed, publisher, sessions)
	salesUC := sales.NewSalesUseCase(saleRepo, txRunner, feed, publisher, sessions)
	analyticsUC := analytics.NewAnalyticsUseCase(beanRepo, sessionRepo, saleRepo, movementRepo, summaryCache)
	pricingUC := pricing.NewPricingUseCase(beanRepo)
	productionUC := production.NewProductionUseCase(planRepo, beanRepo)
	userUC := usecase.NewUserUseCase(userRepo, feed, sessions)

	// PDF: informe financiero de la tostaduría
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportsUC := reports.NewReportsUseCase(saleRepo, beanRepo, userRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "BeansHub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		InventoryUC:  inventoryUC,
		RoastingUC:   roastingUC,
		SalesUC:      salesUC,
		AnalyticsUC:  analyticsUC,
		PricingUC:    pricingUC,
		ProductionUC: productionUC,
		ReportsUC:    reportsUC,
		UserUC:       userUC,
		Sessions:     sessions,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
