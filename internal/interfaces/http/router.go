package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beanshub/roastery-api/internal/application/analytics"
	"github.com/beanshub/roastery-api/internal/application/auth"
	"github.com/beanshub/roastery-api/internal/application/inventory"
	"github.com/beanshub/roastery-api/internal/application/pricing"
	"github.com/beanshub/roastery-api/internal/application/production"
	"github.com/beanshub/roastery-api/internal/application/reports"
	"github.com/beanshub/roastery-api/internal/application/roasting"
	"github.com/beanshub/roastery-api/internal/application/sales"
	"github.com/beanshub/roastery-api/internal/application/usecase"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/state"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	InventoryUC  *inventory.InventoryUseCase
	RoastingUC   *roasting.RoastingUseCase
	SalesUC      *sales.SalesUseCase
	AnalyticsUC  *analytics.AnalyticsUseCase
	PricingUC    *pricing.PricingUseCase
	ProductionUC *production.ProductionUseCase
	ReportsUC    *reports.ReportsUseCase
	UserUC       *usecase.UserUseCase
	Sessions     *state.Manager
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Profile)
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	// Inventario de grano verde
	beans := protected.Group("/beans")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	beans.Post("/", inventoryHandler.Create)
	beans.Get("/", inventoryHandler.List)
	beans.Get("/:id", inventoryHandler.GetByID)
	beans.Put("/:id", inventoryHandler.Update)
	beans.Delete("/:id", inventoryHandler.Delete)
	beans.Post("/:id/movements", inventoryHandler.RegisterMovement)
	beans.Get("/:id/movements", inventoryHandler.ListBeanMovements)
	protected.Get("/movements", inventoryHandler.ListMovements)

	// Tueste: perfiles y sesiones solo para tostadores y admins
	roastingHandler := NewRoastingHandler(deps.RoastingUC)
	roasterOnly := RequireRole(entity.RoleRoaster, entity.RoleAdmin)

	profiles := protected.Group("/profiles", roasterOnly)
	profiles.Post("/", roastingHandler.CreateProfile)
	profiles.Get("/", roastingHandler.ListProfiles)
	profiles.Put("/:id", roastingHandler.UpdateProfile)
	profiles.Delete("/:id", roastingHandler.DeleteProfile)

	sessions := protected.Group("/sessions", roasterOnly)
	sessions.Post("/", roastingHandler.CreateSession)
	sessions.Get("/", roastingHandler.ListSessions)
	sessions.Post("/:id/quality", roastingHandler.CreateQualityScore)
	sessions.Get("/:id/quality", roastingHandler.ListQualityScores)

	// Ventas
	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup.Post("/", salesHandler.Create)
	salesGroup.Get("/", salesHandler.List)

	// Analítica
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analyticsGroup.Get("/dashboard", analyticsHandler.Dashboard)
	analyticsGroup.Get("/inventory", analyticsHandler.StockTrends)
	analyticsGroup.Get("/yield", analyticsHandler.YieldSummary)
	analyticsGroup.Get("/sales", analyticsHandler.SalesSummary)

	// Precios
	pricingHandler := NewPricingHandler(deps.PricingUC)
	protected.Post("/pricing/calculate", pricingHandler.Calculate)

	// Producción (tostadores y admins)
	productionGroup := protected.Group("/production", roasterOnly)
	productionHandler := NewProductionHandler(deps.ProductionUC)
	productionGroup.Post("/plans", productionHandler.CreatePlan)
	productionGroup.Get("/plans", productionHandler.ListPlans)
	productionGroup.Put("/plans/:id", productionHandler.UpdatePlan)
	productionGroup.Delete("/plans/:id", productionHandler.DeletePlan)
	productionGroup.Get("/capacity", productionHandler.Capacity)

	// Reportes (solo admins)
	adminOnly := RequireRole(entity.RoleAdmin)
	reportsGroup := protected.Group("/reports", adminOnly)
	reportsHandler := NewReportsHandler(deps.ReportsUC)
	reportsGroup.Get("/financial", reportsHandler.Financial)
	reportsGroup.Get("/financial/pdf", reportsHandler.FinancialPDF)

	// Usuarios (solo admins)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Estado en sesión y notificaciones
	stateHandler := NewStateHandler(deps.Sessions)
	protected.Get("/state", stateHandler.Snapshot)
	protected.Get("/notifications", stateHandler.Notifications)
	protected.Post("/notifications/:id/read", stateHandler.MarkRead)
}
