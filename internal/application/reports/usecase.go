// Package reports arma el informe financiero de un rango de fechas: ingresos,
// costo estimado de lo vendido, utilidad bruta, valor de inventario y la
// tendencia mensual. Disponible en JSON y en PDF.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/beanshub/roastery-api/internal/application/analytics"
	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
	"github.com/beanshub/roastery-api/internal/domain/roastery"
)

const trendMonths = 6

// ReportsUseCase casos de uso de informes financieros.
type ReportsUseCase struct {
	saleRepo repository.SaleRepository
	beanRepo repository.GreenBeanRepository
	userRepo repository.UserRepository
	pdf      ReportPDFGenerator
}

// NewReportsUseCase construye el caso de uso de informes.
func NewReportsUseCase(
	saleRepo repository.SaleRepository,
	beanRepo repository.GreenBeanRepository,
	userRepo repository.UserRepository,
	pdf ReportPDFGenerator,
) *ReportsUseCase {
	return &ReportsUseCase{saleRepo: saleRepo, beanRepo: beanRepo, userRepo: userRepo, pdf: pdf}
}

// Financial arma el informe del rango inclusivo [start, end].
//
// El costo de lo vendido es un estimado: cada venta se valora al precio de
// compra del lote origen; para café tostado el costo verde se infla por la
// merma del rendimiento por defecto. Los lotes ya eliminados valoran a cero.
func (uc *ReportsUseCase) Financial(ownerID string, start, end time.Time) (*dto.FinancialReportResponse, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.saleRepo.ListByDateRange(ownerID, start, end)
	if err != nil {
		return nil, err
	}
	beans, err := uc.beanRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	revenue := analytics.Revenue(sales)
	cogs := estimatedCOGS(sales, beans)
	gross := revenue.Sub(cogs)
	var margin float64
	if !revenue.IsZero() {
		margin, _ = gross.Div(revenue).Mul(decimal.NewFromInt(100)).Float64()
	}

	green, roasted := analytics.RevenueByType(sales)
	trend := analytics.MonthlyRevenueTrend(sales, end, trendMonths)
	monthly := make([]dto.MonthlyRevenue, 0, len(trend))
	for _, bucket := range trend {
		monthly = append(monthly, dto.MonthlyRevenue{
			Month:      bucket.Month.Format("2006-01"),
			Revenue:    bucket.Revenue,
			SalesCount: bucket.SalesCount,
		})
	}

	return &dto.FinancialReportResponse{
		StartDate:          start,
		EndDate:            end,
		Revenue:            revenue,
		EstimatedCOGS:      cogs.Round(2),
		GrossProfit:        gross.Round(2),
		GrossMarginPercent: margin,
		SalesCount:         len(sales),
		AverageOrderValue:  analytics.AverageOrderValue(sales),
		InventoryValue:     analytics.InventoryValue(beans),
		GreenRevenue:       green,
		RoastedRevenue:     roasted,
		MonthlyTrend:       monthly,
	}, nil
}

// FinancialPDF genera el informe y lo renderiza como PDF.
func (uc *ReportsUseCase) FinancialPDF(ctx context.Context, ownerID string, start, end time.Time) ([]byte, error) {
	report, err := uc.Financial(ownerID, start, end)
	if err != nil {
		return nil, err
	}
	owner, err := uc.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	ownerName := "Tostaduría"
	if owner != nil {
		ownerName = owner.Name
	}
	pdfBytes, err := uc.pdf.GenerateFinancialReportPDF(ctx, report, ownerName)
	if err != nil {
		return nil, fmt.Errorf("informe financiero: render PDF: %w", err)
	}
	return pdfBytes, nil
}

// estimatedCOGS valora las ventas a costo de compra del lote origen.
func estimatedCOGS(sales []*entity.Sale, beans []*entity.GreenBean) decimal.Decimal {
	costByBean := make(map[string]decimal.Decimal, len(beans))
	for _, b := range beans {
		costByBean[b.ID] = b.PurchasePricePerKg
	}

	total := decimal.Zero
	for _, s := range sales {
		quantity := decimal.NewFromFloat(s.Quantity)
		switch s.ProductType {
		case entity.ProductTypeRoasted:
			// Costo verde promedio inflado por la merma del tueste.
			avg := averageCost(beans)
			yieldRatio := decimal.NewFromFloat(roastery.DefaultYieldRatio)
			total = total.Add(quantity.Mul(avg.Div(yieldRatio)))
		default:
			if cost, ok := costByBean[s.ProductID]; ok {
				total = total.Add(quantity.Mul(cost))
			}
		}
	}
	return total
}

func averageCost(beans []*entity.GreenBean) decimal.Decimal {
	if len(beans) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, b := range beans {
		sum = sum.Add(b.PurchasePricePerKg)
	}
	return sum.Div(decimal.NewFromInt(int64(len(beans))))
}
