package reports

import (
	"context"

	"github.com/beanshub/roastery-api/internal/application/dto"
)

// ReportPDFGenerator genera la representación PDF del informe financiero.
type ReportPDFGenerator interface {
	GenerateFinancialReportPDF(ctx context.Context, report *dto.FinancialReportResponse, ownerName string) ([]byte, error)
}
