package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/reports"
)

// ReportsHandler genera reportes financieros en JSON y PDF.
type ReportsHandler struct {
	uc *reports.ReportsUseCase
}

// NewReportsHandler construye el handler de reportes.
func NewReportsHandler(uc *reports.ReportsUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

func (h *ReportsHandler) reportRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	startRaw, endRaw := c.Query("start_date"), c.Query("end_date")
	now := time.Now()
	if startRaw == "" && endRaw == "" {
		// por defecto, el mes en curso
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, now, nil
	}
	start, err1 := parseDate(startRaw)
	end, err2 := parseDate(endRaw)
	if err1 != nil || err2 != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("fechas inválidas")
	}
	return start, endOfDay(end, endRaw), nil
}

// Financial godoc
// @Summary      Reporte financiero
// @Tags         reports
// @Security     BearerAuth
// @Produce      json
// @Param        start_date  query  string  false  "inicio (2006-01-02)"
// @Param        end_date    query  string  false  "fin (2006-01-02)"
// @Success      200  {object}  dto.FinancialReportResponse
// @Router       /api/reports/financial [get]
func (h *ReportsHandler) Financial(c *fiber.Ctx) error {
	start, end, err := h.reportRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.Financial(GetUserID(c), start, end)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// FinancialPDF godoc
// @Summary      Reporte financiero en PDF
// @Tags         reports
// @Security     BearerAuth
// @Produce      application/pdf
// @Param        start_date  query  string  false  "inicio (2006-01-02)"
// @Param        end_date    query  string  false  "fin (2006-01-02)"
// @Success      200  {file}  binary
// @Router       /api/reports/financial/pdf [get]
func (h *ReportsHandler) FinancialPDF(c *fiber.Ctx) error {
	start, end, err := h.reportRange(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	pdf, err := h.uc.FinancialPDF(c.Context(), GetUserID(c), start, end)
	if err != nil {
		return domainError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="reporte-financiero-%s.pdf"`, time.Now().Format("2006-01-02")))
	return c.Send(pdf)
}
