package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/inventory"
)

// InventoryHandler maneja lotes de café verde y movimientos de stock.
type InventoryHandler struct {
	uc *inventory.InventoryUseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(uc *inventory.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar lote de café verde
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateGreenBeanRequest  true  "lote"
// @Success      201   {object}  dto.GreenBeanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/beans [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGreenBeanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateGreenBean(GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar lotes del dueño
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.GreenBeanResponse
// @Router       /api/beans [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListGreenBeans(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un lote
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "id del lote"
// @Success      200  {object}  dto.GreenBeanResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/beans/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetGreenBean(GetUserID(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar un lote (sin tocar cantidad)
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "id del lote"
// @Param        body  body  dto.UpdateGreenBeanRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.GreenBeanResponse
// @Router       /api/beans/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateGreenBeanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateGreenBean(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un lote
// @Tags         inventory
// @Security     BearerAuth
// @Param        id  path  string  true  "id del lote"
// @Success      204
// @Router       /api/beans/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteGreenBean(GetUserID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock sobre un lote
// @Tags         inventory
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "id del lote"
// @Param        body  body  dto.RegisterMovementRequest  true  "movimiento"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/beans/{id}/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.GreenBeanID = c.Params("id")
	out, err := h.uc.RegisterMovement(c.Context(), GetUserID(c), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBeanMovements godoc
// @Summary      Historial de movimientos de un lote
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "id del lote"
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/beans/{id}/movements [get]
func (h *InventoryHandler) ListBeanMovements(c *fiber.Ctx) error {
	out, err := h.uc.ListBeanMovements(GetUserID(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Historial de movimientos del dueño
// @Tags         inventory
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
