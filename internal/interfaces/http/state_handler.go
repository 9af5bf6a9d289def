package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/beanshub/roastery-api/internal/application/auth"
	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/inventory"
	"github.com/beanshub/roastery-api/internal/application/roasting"
	"github.com/beanshub/roastery-api/internal/application/sales"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/state"
)

// StateHandler expone la instantánea del estado en sesión y las notificaciones.
type StateHandler struct {
	sessions *state.Manager
}

// NewStateHandler construye el handler de estado de sesión.
func NewStateHandler(sessions *state.Manager) *StateHandler {
	return &StateHandler{sessions: sessions}
}

// Snapshot godoc
// @Summary      Estado de la sesión actual
// @Tags         state
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  dto.SessionStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/state [get]
func (h *StateHandler) Snapshot(c *fiber.Ctx) error {
	sess := h.sessions.Session(GetUserID(c))
	if sess == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión activa"})
	}
	st := sess.Store.State()

	out := dto.SessionStateResponse{
		CurrentUser:      auth.ToUserResponse(st.CurrentUser),
		AuthLoading:      st.AuthLoading,
		GreenBeans:       make([]dto.GreenBeanResponse, 0, len(st.GreenBeans)),
		RoastingProfiles: make([]dto.RoastingProfileResponse, 0, len(st.RoastingProfiles)),
		RoastingSessions: make([]dto.RoastingSessionResponse, 0, len(st.RoastingSessions)),
		Sales:            make([]dto.SaleResponse, 0, len(st.Sales)),
		Notifications:    toNotificationResponses(st.Notifications),
	}
	for i := range st.GreenBeans {
		out.GreenBeans = append(out.GreenBeans, *inventory.ToGreenBeanResponse(&st.GreenBeans[i]))
	}
	for i := range st.RoastingProfiles {
		out.RoastingProfiles = append(out.RoastingProfiles, *roasting.ToProfileResponse(&st.RoastingProfiles[i]))
	}
	for i := range st.RoastingSessions {
		out.RoastingSessions = append(out.RoastingSessions, *roasting.ToSessionResponse(&st.RoastingSessions[i]))
	}
	for i := range st.Sales {
		out.Sales = append(out.Sales, *sales.ToSaleResponse(&st.Sales[i]))
	}
	for i := range st.Users {
		out.Users = append(out.Users, *auth.ToUserResponse(&st.Users[i]))
	}
	return c.JSON(out)
}

// Notifications godoc
// @Summary      Notificaciones de la sesión
// @Tags         state
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *StateHandler) Notifications(c *fiber.Ctx) error {
	sess := h.sessions.Session(GetUserID(c))
	if sess == nil {
		return c.JSON([]dto.NotificationResponse{})
	}
	return c.JSON(toNotificationResponses(sess.Store.State().Notifications))
}

// MarkRead godoc
// @Summary      Marcar notificación como leída
// @Tags         state
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la notificación"
// @Success      204
// @Router       /api/notifications/{id}/read [post]
func (h *StateHandler) MarkRead(c *fiber.Ctx) error {
	h.sessions.MarkRead(GetUserID(c), c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}

func toNotificationResponses(ns []entity.Notification) []dto.NotificationResponse {
	out := make([]dto.NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Timestamp: n.Timestamp,
			Read:      n.Read,
		})
	}
	return out
}
