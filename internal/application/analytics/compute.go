// Package analytics contiene los cálculos derivados del negocio (rendimiento,
// ingresos, tendencias de stock) y el caso de uso del dashboard.
//
// Todas las funciones de este archivo son puras: reciben instantáneas en
// memoria y no tocan la base de datos.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/roastery"
)

// FilterSalesByRange devuelve las ventas con fecha dentro del rango inclusivo.
func FilterSalesByRange(sales []*entity.Sale, start, end time.Time) []*entity.Sale {
	out := make([]*entity.Sale, 0, len(sales))
	for _, s := range sales {
		if s.SaleDate.Before(start) || s.SaleDate.After(end) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Revenue suma el total de las ventas.
func Revenue(sales []*entity.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.TotalAmount)
	}
	return total
}

// RevenueByType separa el ingreso entre café verde y tostado.
func RevenueByType(sales []*entity.Sale) (green, roasted decimal.Decimal) {
	green, roasted = decimal.Zero, decimal.Zero
	for _, s := range sales {
		if s.ProductType == entity.ProductTypeRoasted {
			roasted = roasted.Add(s.TotalAmount)
		} else {
			green = green.Add(s.TotalAmount)
		}
	}
	return green, roasted
}

// PeriodChange calcula la variación porcentual entre dos periodos.
// Con periodo anterior en cero la variación es 0, no infinito.
func PeriodChange(current, previous decimal.Decimal) float64 {
	if previous.IsZero() {
		return 0
	}
	change, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()
	return change
}

// AverageOrderValue devuelve el ticket promedio; cero sin ventas.
func AverageOrderValue(sales []*entity.Sale) decimal.Decimal {
	if len(sales) == 0 {
		return decimal.Zero
	}
	return Revenue(sales).Div(decimal.NewFromInt(int64(len(sales)))).Round(2)
}

// InventoryValue valora el inventario verde a precio de compra.
func InventoryValue(beans []*entity.GreenBean) decimal.Decimal {
	total := decimal.Zero
	for _, b := range beans {
		total = total.Add(decimal.NewFromFloat(b.Quantity).Mul(b.PurchasePricePerKg))
	}
	return total
}

// TotalGreenStock suma los kilos de café verde en inventario.
func TotalGreenStock(beans []*entity.GreenBean) float64 {
	var total float64
	for _, b := range beans {
		total += b.Quantity
	}
	return total
}

// CountLowStock cuenta los lotes en o bajo su umbral mínimo.
func CountLowStock(beans []*entity.GreenBean) int {
	var n int
	for _, b := range beans {
		if b.IsLowStock() {
			n++
		}
	}
	return n
}

// AverageYieldForSessions promedia el rendimiento de un grupo de sesiones.
func AverageYieldForSessions(sessions []*entity.RoastingSession) float64 {
	pairs := make([][2]float64, 0, len(sessions))
	for _, s := range sessions {
		pairs = append(pairs, [2]float64{s.RoastedQuantity, s.GreenBeanQuantity})
	}
	return roastery.AverageYield(pairs)
}

// StockTrend proyección de consumo de un lote a partir de sus movimientos de
// salida y de las sesiones de tueste en la ventana observada.
type StockTrend struct {
	GreenBeanID   string
	Variety       string
	Quantity      float64
	StockLevel    string
	UsageRate     float64
	DaysRemaining float64
	TurnoverRate  float64
}

// ComputeStockTrend deriva el consumo diario, los días restantes y la rotación
// anualizada de un lote. windowDays acota la ventana de observación; consumos
// cero dejan la proyección en cero en lugar de dividir por cero.
func ComputeStockTrend(bean *entity.GreenBean, sessions []*entity.RoastingSession, movements []*entity.StockMovement, windowDays int) StockTrend {
	trend := StockTrend{
		GreenBeanID: bean.ID,
		Variety:     bean.Variety,
		Quantity:    bean.Quantity,
		StockLevel:  roastery.ClassifyStock(bean.Quantity, bean.LowStockThreshold),
	}

	var consumed float64
	for _, s := range sessions {
		if s.GreenBeanID == bean.ID {
			consumed += s.GreenBeanQuantity
		}
	}
	for _, m := range movements {
		if m.GreenBeanID == bean.ID && m.Quantity < 0 {
			consumed += -m.Quantity
		}
	}
	if consumed == 0 || windowDays <= 0 {
		return trend
	}

	trend.UsageRate = consumed / float64(windowDays)
	trend.DaysRemaining = bean.Quantity / trend.UsageRate
	trend.TurnoverRate = roastery.TurnoverRate(bean.Quantity, consumed)
	return trend
}

// MonthlyBucket ingreso agregado de un mes calendario.
type MonthlyBucket struct {
	Month      time.Time
	Revenue    decimal.Decimal
	SalesCount int
}

// MonthlyRevenueTrend agrupa las ventas por mes calendario para los últimos
// months meses, terminando en el mes de ref. Los meses sin ventas aparecen
// con ingreso cero.
func MonthlyRevenueTrend(sales []*entity.Sale, ref time.Time, months int) []MonthlyBucket {
	if months <= 0 {
		return nil
	}
	buckets := make([]MonthlyBucket, months)
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).AddDate(0, -(months - 1), 0)
	for i := range buckets {
		buckets[i] = MonthlyBucket{Month: first.AddDate(0, i, 0), Revenue: decimal.Zero}
	}
	for _, s := range sales {
		idx := monthsBetween(first, s.SaleDate)
		if idx < 0 || idx >= months {
			continue
		}
		buckets[idx].Revenue = buckets[idx].Revenue.Add(s.TotalAmount)
		buckets[idx].SalesCount++
	}
	return buckets
}

func monthsBetween(from time.Time, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
