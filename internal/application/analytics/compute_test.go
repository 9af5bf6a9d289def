package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanshub/roastery-api/internal/domain/entity"
)

func saleAt(id string, day time.Time, quantity float64, pricePerKg int64) *entity.Sale {
	price := decimal.NewFromInt(pricePerKg)
	return &entity.Sale{
		ID:          id,
		OwnerID:     "u1",
		ProductType: entity.ProductTypeGreen,
		ProductID:   "b1",
		Quantity:    quantity,
		PricePerKg:  price,
		TotalAmount: decimal.NewFromFloat(quantity).Mul(price),
		SaleDate:    day,
	}
}

// Venta de 5 kg a 150000/kg: total 750000; el filtro por rango la excluye o
// la incluye según su fecha.
func TestFilterSalesByRange_VentaUnica(t *testing.T) {
	day := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	sale := saleAt("s1", day, 5, 150000)
	require.True(t, sale.TotalAmount.Equal(decimal.NewFromInt(750000)))

	// Rango que excluye la fecha: vacío.
	out := FilterSalesByRange([]*entity.Sale{sale},
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC))
	assert.Empty(t, out)

	// Rango que incluye la fecha: exactamente esa venta.
	out = FilterSalesByRange([]*entity.Sale{sale},
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	require.Len(t, out, 1)
	assert.Equal(t, "s1", out[0].ID)
}

// El rango es inclusivo en ambos extremos.
func TestFilterSalesByRange_ExtremosInclusivos(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	sales := []*entity.Sale{
		saleAt("s1", start, 1, 100),
		saleAt("s2", end, 1, 100),
		saleAt("s3", end.Add(time.Nanosecond), 1, 100),
	}
	out := FilterSalesByRange(sales, start, end)
	require.Len(t, out, 2)
}

// Con periodo anterior en cero la variación es 0, nunca NaN ni infinito.
func TestPeriodChange_PrevioCero(t *testing.T) {
	assert.Equal(t, float64(0), PeriodChange(decimal.Zero, decimal.Zero))
	assert.Equal(t, float64(0), PeriodChange(decimal.NewFromInt(500000), decimal.Zero))
}

func TestPeriodChange_Variacion(t *testing.T) {
	change := PeriodChange(decimal.NewFromInt(150), decimal.NewFromInt(100))
	assert.InDelta(t, 50.0, change, 0.001)

	change = PeriodChange(decimal.NewFromInt(50), decimal.NewFromInt(100))
	assert.InDelta(t, -50.0, change, 0.001)
}

func TestRevenueByType(t *testing.T) {
	sales := []*entity.Sale{
		saleAt("s1", time.Now(), 2, 100000),
		saleAt("s2", time.Now(), 1, 50000),
	}
	sales[1].ProductType = entity.ProductTypeRoasted
	sales[1].ProductID = entity.RoastedProductID

	green, roasted := RevenueByType(sales)
	assert.True(t, green.Equal(decimal.NewFromInt(200000)))
	assert.True(t, roasted.Equal(decimal.NewFromInt(50000)))
}

func TestAverageOrderValue(t *testing.T) {
	assert.True(t, AverageOrderValue(nil).IsZero())

	sales := []*entity.Sale{
		saleAt("s1", time.Now(), 1, 100000),
		saleAt("s2", time.Now(), 1, 200000),
	}
	assert.True(t, AverageOrderValue(sales).Equal(decimal.NewFromInt(150000)))
}

func TestInventoryValue(t *testing.T) {
	beans := []*entity.GreenBean{
		{ID: "b1", Quantity: 500, PurchasePricePerKg: decimal.NewFromInt(85000)},
		{ID: "b2", Quantity: 20, PurchasePricePerKg: decimal.NewFromInt(90000)},
	}
	want := decimal.NewFromInt(500*85000 + 20*90000)
	assert.True(t, InventoryValue(beans).Equal(want))
}

// Un lote sin consumo observado no proyecta: todo queda en cero en lugar de
// dividir por cero.
func TestComputeStockTrend_SinConsumo(t *testing.T) {
	bean := &entity.GreenBean{ID: "b1", Variety: "Arabica Gayo", Quantity: 500, LowStockThreshold: 50}
	trend := ComputeStockTrend(bean, nil, nil, 30)
	assert.Equal(t, float64(0), trend.UsageRate)
	assert.Equal(t, float64(0), trend.DaysRemaining)
	assert.Equal(t, float64(0), trend.TurnoverRate)
	assert.Equal(t, "normal", trend.StockLevel)
}

func TestComputeStockTrend_ConsumoPorTuesteYSalidas(t *testing.T) {
	bean := &entity.GreenBean{ID: "b1", Variety: "Arabica Gayo", Quantity: 100, LowStockThreshold: 10}
	sessions := []*entity.RoastingSession{
		{ID: "r1", GreenBeanID: "b1", GreenBeanQuantity: 40},
		{ID: "r2", GreenBeanID: "otro", GreenBeanQuantity: 999},
	}
	movements := []*entity.StockMovement{
		{ID: "m1", GreenBeanID: "b1", Type: entity.MovementTypeOut, Quantity: -20},
		{ID: "m2", GreenBeanID: "b1", Type: entity.MovementTypeIn, Quantity: 30},
	}

	trend := ComputeStockTrend(bean, sessions, movements, 30)
	// Consumo observado: 40 del tueste + 20 de la salida; la entrada no cuenta.
	assert.InDelta(t, 60.0/30.0, trend.UsageRate, 0.001)
	assert.InDelta(t, 100.0/(60.0/30.0), trend.DaysRemaining, 0.001)
	assert.Greater(t, trend.TurnoverRate, float64(0))
}

// Los meses sin ventas aparecen con ingreso cero y el orden es cronológico.
func TestMonthlyRevenueTrend(t *testing.T) {
	ref := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	sales := []*entity.Sale{
		saleAt("s1", time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), 1, 100000),
		saleAt("s2", time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC), 1, 50000),
		saleAt("s3", time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), 1, 999999),
	}

	buckets := MonthlyRevenueTrend(sales, ref, 6)
	require.Len(t, buckets, 6)
	assert.Equal(t, time.January, buckets[0].Month.Month())
	assert.True(t, buckets[0].Revenue.IsZero())
	assert.True(t, buckets[3].Revenue.Equal(decimal.NewFromInt(50000))) // abril
	assert.True(t, buckets[5].Revenue.Equal(decimal.NewFromInt(100000)))
	assert.Equal(t, 1, buckets[5].SalesCount)
}
