package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/roasting"
)

// RoastingHandler maneja perfiles, sesiones de tueste y calidad.
type RoastingHandler struct {
	uc *roasting.RoastingUseCase
}

// NewRoastingHandler construye el handler de tueste.
func NewRoastingHandler(uc *roasting.RoastingUseCase) *RoastingHandler {
	return &RoastingHandler{uc: uc}
}

// CreateProfile godoc
// @Summary      Crear perfil de tueste
// @Tags         roasting
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoastingProfileRequest  true  "perfil"
// @Success      201   {object}  dto.RoastingProfileResponse
// @Router       /api/profiles [post]
func (h *RoastingHandler) CreateProfile(c *fiber.Ctx) error {
	var in dto.CreateRoastingProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateProfile(GetUserID(c), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProfiles godoc
// @Summary      Listar perfiles de tueste
// @Tags         roasting
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.RoastingProfileResponse
// @Router       /api/profiles [get]
func (h *RoastingHandler) ListProfiles(c *fiber.Ctx) error {
	out, err := h.uc.ListProfiles(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// UpdateProfile godoc
// @Summary      Actualizar perfil de tueste
// @Tags         roasting
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                            true  "id del perfil"
// @Param        body  body  dto.UpdateRoastingProfileRequest  true  "campos"
// @Success      200   {object}  dto.RoastingProfileResponse
// @Router       /api/profiles/{id} [put]
func (h *RoastingHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateRoastingProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateProfile(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// DeleteProfile godoc
// @Summary      Eliminar perfil de tueste
// @Tags         roasting
// @Security     BearerAuth
// @Param        id  path  string  true  "id del perfil"
// @Success      204
// @Router       /api/profiles/{id} [delete]
func (h *RoastingHandler) DeleteProfile(c *fiber.Ctx) error {
	if err := h.uc.DeleteProfile(GetUserID(c), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateSession godoc
// @Summary      Registrar sesión de tueste
// @Tags         roasting
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoastingSessionRequest  true  "sesión"
// @Success      201   {object}  dto.RoastingSessionResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sessions [post]
func (h *RoastingHandler) CreateSession(c *fiber.Ctx) error {
	var in dto.CreateRoastingSessionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateSession(c.Context(), GetUserID(c), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSessions godoc
// @Summary      Listar sesiones de tueste
// @Tags         roasting
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.RoastingSessionResponse
// @Router       /api/sessions [get]
func (h *RoastingHandler) ListSessions(c *fiber.Ctx) error {
	out, err := h.uc.ListSessions(GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// CreateQualityScore godoc
// @Summary      Evaluar la calidad de una sesión
// @Tags         roasting
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id    path  string                         true  "id de la sesión"
// @Param        body  body  dto.CreateQualityScoreRequest  true  "catación"
// @Success      201   {object}  dto.QualityScoreResponse
// @Router       /api/sessions/{id}/quality [post]
func (h *RoastingHandler) CreateQualityScore(c *fiber.Ctx) error {
	var in dto.CreateQualityScoreRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	in.RoastingSessionID = c.Params("id")
	out, err := h.uc.CreateQualityScore(GetUserID(c), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListQualityScores godoc
// @Summary      Cataciones de una sesión
// @Tags         roasting
// @Security     BearerAuth
// @Produce      json
// @Param        id  path  string  true  "id de la sesión"
// @Success      200  {array}  dto.QualityScoreResponse
// @Router       /api/sessions/{id}/quality [get]
func (h *RoastingHandler) ListQualityScores(c *fiber.Ctx) error {
	out, err := h.uc.ListQualityScores(GetUserID(c), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
