package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/pricing"
)

// PricingHandler calcula precios sugeridos de café tostado.
type PricingHandler struct {
	uc *pricing.PricingUseCase
}

// NewPricingHandler construye el handler de precios.
func NewPricingHandler(uc *pricing.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Calculate godoc
// @Summary      Calcular precio sugerido
// @Tags         pricing
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PricingRequest  true  "parámetros de costeo"
// @Success      200   {object}  dto.PricingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/pricing/calculate [post]
func (h *PricingHandler) Calculate(c *fiber.Ctx) error {
	var in dto.PricingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Calculate(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
