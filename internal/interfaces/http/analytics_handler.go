package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beanshub/roastery-api/internal/application/analytics"
	"github.com/beanshub/roastery-api/internal/application/dto"
)

// AnalyticsHandler expone el dashboard y los resúmenes derivados.
type AnalyticsHandler struct {
	uc *analytics.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler de analítica.
func NewAnalyticsHandler(uc *analytics.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Dashboard godoc
// @Summary      Dashboard de la tostaduría
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// StockTrends godoc
// @Summary      Tendencias de stock por grano
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.StockTrendResponse
// @Router       /api/analytics/inventory [get]
func (h *AnalyticsHandler) StockTrends(c *fiber.Ctx) error {
	out, err := h.uc.StockTrends(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// YieldSummary godoc
// @Summary      Rendimiento de tueste
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Param        green_bean_id  query  string  true  "lote a consultar"
// @Success      200  {object}  dto.YieldSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/yield [get]
func (h *AnalyticsHandler) YieldSummary(c *fiber.Ctx) error {
	beanID := c.Query("green_bean_id")
	if beanID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere green_bean_id"})
	}
	out, err := h.uc.YieldSummary(GetUserID(c), beanID)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// SalesSummary godoc
// @Summary      Resumen de ventas por período
// @Tags         analytics
// @Security     BearerAuth
// @Produce      json
// @Param        start_date  query  string  true  "inicio (RFC3339 o 2006-01-02)"
// @Param        end_date    query  string  true  "fin (RFC3339 o 2006-01-02)"
// @Success      200  {object}  dto.SalesSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/analytics/sales [get]
func (h *AnalyticsHandler) SalesSummary(c *fiber.Ctx) error {
	startRaw, endRaw := c.Query("start_date"), c.Query("end_date")
	start, err1 := parseDate(startRaw)
	end, err2 := parseDate(endRaw)
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requieren start_date y end_date válidos"})
	}
	out, err := h.uc.SalesSummary(GetUserID(c), start, endOfDay(end, endRaw))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
