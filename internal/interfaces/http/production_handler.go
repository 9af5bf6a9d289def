package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/production"
)

// ProductionHandler maneja la planificación semanal de tueste.
type ProductionHandler struct {
	uc *production.ProductionUseCase
}

// NewProductionHandler construye el handler de producción.
func NewProductionHandler(uc *production.ProductionUseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc}
}

// CreatePlan godoc
// @Summary      Crear plan de producción
// @Tags         production
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductionPlanRequest  true  "plan"
// @Success      201   {object}  dto.ProductionPlanResponse
// @Router       /api/production/plans [post]
func (h *ProductionHandler) CreatePlan(c *fiber.Ctx) error {
	var in dto.CreateProductionPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreatePlan(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPlans godoc
// @Summary      Listar planes de producción
// @Tags         production
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.ProductionPlanResponse
// @Router       /api/production/plans [get]
func (h *ProductionHandler) ListPlans(c *fiber.Ctx) error {
	out, err := h.uc.ListPlans(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdatePlan godoc
// @Summary      Actualizar plan de producción
// @Tags         production
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "id del plan"
// @Param        body  body  dto.UpdateProductionPlanRequest  true  "cambios"
// @Success      200   {object}  dto.ProductionPlanResponse
// @Router       /api/production/plans/{id} [put]
func (h *ProductionHandler) UpdatePlan(c *fiber.Ctx) error {
	var in dto.UpdateProductionPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdatePlan(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DeletePlan godoc
// @Summary      Eliminar plan de producción
// @Tags         production
// @Security     BearerAuth
// @Param        id  path  string  true  "id del plan"
// @Success      204
// @Router       /api/production/plans/{id} [delete]
func (h *ProductionHandler) DeletePlan(c *fiber.Ctx) error {
	if err := h.uc.DeletePlan(GetUserID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Capacity godoc
// @Summary      Capacidad semanal de tueste
// @Tags         production
// @Security     BearerAuth
// @Produce      json
// @Param        week  query  string  false  "cualquier fecha dentro de la semana (2006-01-02)"
// @Success      200   {object}  dto.WeeklyCapacityResponse
// @Router       /api/production/capacity [get]
func (h *ProductionHandler) Capacity(c *fiber.Ctx) error {
	ref := time.Now()
	if raw := c.Query("week"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida"})
		}
		ref = parsed
	}
	out, err := h.uc.WeekCapacity(GetUserID(c), ref)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
