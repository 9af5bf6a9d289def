package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/sales"
)

// SalesHandler maneja el registro y consulta de ventas.
type SalesHandler struct {
	uc *sales.SalesUseCase
}

// NewSalesHandler construye el handler de ventas.
func NewSalesHandler(uc *sales.SalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta
// @Tags         sales
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SalesHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSale(c.Context(), GetUserID(c), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas del dueño
// @Tags         sales
// @Security     BearerAuth
// @Produce      json
// @Param        start_date  query  string  false  "inicio (RFC3339 o 2006-01-02)"
// @Param        end_date    query  string  false  "fin (RFC3339 o 2006-01-02)"
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	startRaw, endRaw := c.Query("start_date"), c.Query("end_date")
	if startRaw != "" && endRaw != "" {
		start, err1 := parseDate(startRaw)
		end, err2 := parseDate(endRaw)
		if err1 != nil || err2 != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas"})
		}
		out, err := h.uc.ListSalesByRange(GetUserID(c), start, endOfDay(end, endRaw))
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(out)
	}

	out, err := h.uc.ListSales(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// parseDate acepta RFC3339 o fecha simple 2006-01-02.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// endOfDay extiende una fecha simple al final del día para que el rango sea
// inclusivo; las marcas RFC3339 se respetan tal cual.
func endOfDay(t time.Time, raw string) time.Time {
	if len(raw) == len("2006-01-02") {
		return t.Add(24*time.Hour - time.Nanosecond)
	}
	return t
}
