package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/domain/entity"
)

// Con verde a 80000/kg y rendimiento 80%, el costo verde por kilo tostado es
// 100000; sumando costos operativos y margen del 30% el precio sugerido sale
// de (100000 + 15000) * 1.3.
func TestCompute_DesglosePrecio(t *testing.T) {
	bean := &entity.GreenBean{
		ID:                 "b1",
		PurchasePricePerKg: decimal.NewFromInt(80000),
	}
	in := dto.PricingRequest{
		GreenBeanID:     "b1",
		ElectricityCost: decimal.NewFromInt(3000),
		LaborCost:       decimal.NewFromInt(7000),
		PackagingCost:   decimal.NewFromInt(4000),
		OverheadCost:    decimal.NewFromInt(1000),
		TargetMargin:    decimal.NewFromInt(30),
	}

	out := Compute(bean, in)

	assert.True(t, out.GreenCostPerKg.Equal(decimal.NewFromInt(100000)), out.GreenCostPerKg.String())
	assert.True(t, out.OperatingCostPerKg.Equal(decimal.NewFromInt(15000)))
	assert.True(t, out.RoastedCostPerKg.Equal(decimal.NewFromInt(115000)))
	assert.True(t, out.SuggestedPricePerKg.Equal(decimal.NewFromInt(149500)), out.SuggestedPricePerKg.String())
	assert.True(t, out.ProfitPerKg.Equal(decimal.NewFromInt(34500)))
}

// Margen cero: el precio sugerido es exactamente el costo y la utilidad cero.
func TestCompute_MargenCero(t *testing.T) {
	bean := &entity.GreenBean{ID: "b1", PurchasePricePerKg: decimal.NewFromInt(40000)}
	out := Compute(bean, dto.PricingRequest{GreenBeanID: "b1"})

	assert.True(t, out.SuggestedPricePerKg.Equal(out.RoastedCostPerKg))
	assert.True(t, out.ProfitPerKg.IsZero())
}
