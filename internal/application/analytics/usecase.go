package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/ports"
	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
	"github.com/beanshub/roastery-api/internal/domain/roastery"
)

// Ventana de observación para proyecciones de consumo y cache del dashboard.
const (
	trendWindowDays   = 30
	dashboardCacheTTL = 2 * time.Minute
	trendMonths       = 6
)

// AnalyticsUseCase agrega métricas del panel a partir de los repositorios.
type AnalyticsUseCase struct {
	beanRepo     repository.GreenBeanRepository
	sessionRepo  repository.RoastingSessionRepository
	saleRepo     repository.SaleRepository
	movementRepo repository.StockMovementRepository
	cache        ports.SummaryCache
}

// NewAnalyticsUseCase construye el caso de uso de analítica.
func NewAnalyticsUseCase(
	beanRepo repository.GreenBeanRepository,
	sessionRepo repository.RoastingSessionRepository,
	saleRepo repository.SaleRepository,
	movementRepo repository.StockMovementRepository,
	cache ports.SummaryCache,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		beanRepo:     beanRepo,
		sessionRepo:  sessionRepo,
		saleRepo:     saleRepo,
		movementRepo: movementRepo,
		cache:        cache,
	}
}

// Dashboard construye el resumen del panel del dueño.
//
// Tres lecturas en paralelo:
//  1. ListByOwner(lotes)     → stock total + lotes bajos + valor de inventario
//  2. ListByOwner(sesiones)  → sesiones del mes + rendimiento promedio
//  3. ListByOwner(ventas)    → ingreso del mes + variación contra el anterior
//
// El resultado se cachea por dueño con un TTL corto.
func (uc *AnalyticsUseCase) Dashboard(ctx context.Context, ownerID string) (*dto.DashboardResponse, error) {
	cacheKey := "dashboard:" + ownerID
	var cached dto.DashboardResponse
	if uc.cache.Get(ctx, cacheKey, &cached) {
		return &cached, nil
	}

	type beansResult struct {
		beans []*entity.GreenBean
		err   error
	}
	type sessionsResult struct {
		sessions []*entity.RoastingSession
		err      error
	}
	type salesResult struct {
		sales []*entity.Sale
		err   error
	}

	beansCh := make(chan beansResult, 1)
	sessionsCh := make(chan sessionsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		beans, err := uc.beanRepo.ListByOwner(ownerID)
		beansCh <- beansResult{beans, err}
	}()
	go func() {
		sessions, err := uc.sessionRepo.ListByOwner(ownerID)
		sessionsCh <- sessionsResult{sessions, err}
	}()
	go func() {
		sales, err := uc.saleRepo.ListByOwner(ownerID)
		salesCh <- salesResult{sales, err}
	}()

	beans := <-beansCh
	sessions := <-sessionsCh
	sales := <-salesCh

	if beans.err != nil {
		return nil, fmt.Errorf("dashboard: lotes: %w", beans.err)
	}
	if sessions.err != nil {
		return nil, fmt.Errorf("dashboard: sesiones: %w", sessions.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: ventas: %w", sales.err)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := monthStart.AddDate(0, -1, 0)
	prevEnd := monthStart.Add(-time.Nanosecond)

	monthSessions := 0
	for _, s := range sessions.sessions {
		if !s.RoastDate.Before(monthStart) {
			monthSessions++
		}
	}

	monthSales := FilterSalesByRange(sales.sales, monthStart, now)
	prevSales := FilterSalesByRange(sales.sales, prevStart, prevEnd)
	monthRevenue := Revenue(monthSales)

	out := &dto.DashboardResponse{
		TotalGreenStock:     TotalGreenStock(beans.beans),
		LowStockBeans:       CountLowStock(beans.beans),
		SessionsThisMonth:   monthSessions,
		AverageYield:        AverageYieldForSessions(sessions.sessions),
		RevenueThisMonth:    monthRevenue,
		RevenueChange:       PeriodChange(monthRevenue, Revenue(prevSales)),
		SalesCountThisMonth: len(monthSales),
		InventoryValue:      InventoryValue(beans.beans),
	}
	uc.cache.Set(ctx, cacheKey, out, dashboardCacheTTL)
	return out, nil
}

// StockTrends devuelve la proyección de consumo de cada lote del dueño sobre
// la ventana de observación de los últimos 30 días.
func (uc *AnalyticsUseCase) StockTrends(ownerID string) ([]dto.StockTrendResponse, error) {
	beans, err := uc.beanRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	sessions, err := uc.sessionRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	windowStart := time.Now().AddDate(0, 0, -trendWindowDays)
	recentSessions := make([]*entity.RoastingSession, 0, len(sessions))
	for _, s := range sessions {
		if !s.RoastDate.Before(windowStart) {
			recentSessions = append(recentSessions, s)
		}
	}
	recentMovements := make([]*entity.StockMovement, 0, len(movements))
	for _, m := range movements {
		if !m.CreatedAt.Before(windowStart) {
			recentMovements = append(recentMovements, m)
		}
	}

	out := make([]dto.StockTrendResponse, 0, len(beans))
	for _, bean := range beans {
		trend := ComputeStockTrend(bean, recentSessions, recentMovements, trendWindowDays)
		out = append(out, dto.StockTrendResponse{
			GreenBeanID:   trend.GreenBeanID,
			Variety:       trend.Variety,
			Quantity:      trend.Quantity,
			StockLevel:    trend.StockLevel,
			UsageRate:     trend.UsageRate,
			DaysRemaining: trend.DaysRemaining,
			TurnoverRate:  trend.TurnoverRate,
		})
	}
	return out, nil
}

// YieldSummary devuelve el rendimiento histórico de un lote del dueño.
func (uc *AnalyticsUseCase) YieldSummary(ownerID, greenBeanID string) (*dto.YieldSummaryResponse, error) {
	bean, err := uc.beanRepo.GetByID(greenBeanID)
	if err != nil {
		return nil, err
	}
	if bean == nil || bean.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	sessions, err := uc.sessionRepo.ListByGreenBean(greenBeanID)
	if err != nil {
		return nil, err
	}
	pairs := make([][2]float64, 0, len(sessions))
	for _, s := range sessions {
		pairs = append(pairs, [2]float64{s.RoastedQuantity, s.GreenBeanQuantity})
	}
	return &dto.YieldSummaryResponse{
		GreenBeanID:  greenBeanID,
		Sessions:     len(sessions),
		AverageYield: roastery.AverageYield(pairs),
	}, nil
}

// SalesSummary agrega las ventas de un rango inclusivo y la variación contra
// el periodo anterior de igual duración.
func (uc *AnalyticsUseCase) SalesSummary(ownerID string, start, end time.Time) (*dto.SalesSummaryResponse, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInput
	}
	current, err := uc.saleRepo.ListByDateRange(ownerID, start, end)
	if err != nil {
		return nil, err
	}
	span := end.Sub(start)
	previous, err := uc.saleRepo.ListByDateRange(ownerID, start.Add(-span-time.Nanosecond), start.Add(-time.Nanosecond))
	if err != nil {
		return nil, err
	}

	green, roasted := RevenueByType(current)
	revenue := Revenue(current)
	return &dto.SalesSummaryResponse{
		Revenue:           revenue,
		SalesCount:        len(current),
		AverageOrderValue: AverageOrderValue(current),
		RevenueChange:     PeriodChange(revenue, Revenue(previous)),
		GreenRevenue:      green,
		RoastedRevenue:    roasted,
	}, nil
}
