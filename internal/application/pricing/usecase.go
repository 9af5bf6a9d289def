// Package pricing calcula el costo por kilo de café tostado y el precio
// sugerido de venta a partir del precio de compra del lote verde, el
// rendimiento del tueste y los costos operativos.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
	"github.com/beanshub/roastery-api/internal/domain/roastery"
)

var hundred = decimal.NewFromInt(100)

// PricingUseCase caso de uso del cálculo de precio de café tostado.
type PricingUseCase struct {
	beanRepo repository.GreenBeanRepository
}

// NewPricingUseCase construye el caso de uso de precios.
func NewPricingUseCase(beanRepo repository.GreenBeanRepository) *PricingUseCase {
	return &PricingUseCase{beanRepo: beanRepo}
}

// Calculate resuelve el lote y deriva el desglose de costo y precio sugerido.
func (uc *PricingUseCase) Calculate(ownerID string, in dto.PricingRequest) (*dto.PricingResponse, error) {
	bean, err := uc.beanRepo.GetByID(in.GreenBeanID)
	if err != nil {
		return nil, err
	}
	if bean == nil || bean.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	if in.TargetMargin.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	out := Compute(bean, in)
	return &out, nil
}

// Compute deriva el desglose sin tocar la base de datos.
//
// El costo del verde por kilo tostado se infla por la merma del tueste:
// con rendimiento del 80%, cada kilo tostado consume 1/0.8 kilos verdes.
// El precio sugerido aplica el margen objetivo sobre el costo total.
func Compute(bean *entity.GreenBean, in dto.PricingRequest) dto.PricingResponse {
	yieldRatio := decimal.NewFromFloat(roastery.DefaultYieldRatio)
	greenCost := bean.PurchasePricePerKg.Div(yieldRatio)
	operating := in.ElectricityCost.Add(in.LaborCost).Add(in.PackagingCost).Add(in.OverheadCost)
	roastedCost := greenCost.Add(operating)
	suggested := roastedCost.Mul(decimal.NewFromInt(1).Add(in.TargetMargin.Div(hundred)))

	return dto.PricingResponse{
		GreenBeanID:         bean.ID,
		GreenCostPerKg:      greenCost.Round(2),
		RoastedCostPerKg:    roastedCost.Round(2),
		OperatingCostPerKg:  operating.Round(2),
		SuggestedPricePerKg: suggested.Round(2),
		ProfitPerKg:         suggested.Sub(roastedCost).Round(2),
		TargetMargin:        in.TargetMargin,
	}
}
