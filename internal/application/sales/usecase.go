// Package sales implementa el registro de ventas de café verde y tostado.
// Las ventas de café verde descuentan el lote en la misma transacción; las de
// tostado venden el producto tostado único.
package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/ports"
	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
	"github.com/beanshub/roastery-api/internal/state"
)

// SalesUseCase casos de uso de ventas.
type SalesUseCase struct {
	saleRepo repository.SaleRepository
	tx       TxRunner
	feed     ports.ChangeFeed
	events   ports.EventPublisher
	sessions *state.Manager
}

// NewSalesUseCase construye el caso de uso de ventas.
func NewSalesUseCase(
	saleRepo repository.SaleRepository,
	tx TxRunner,
	feed ports.ChangeFeed,
	events ports.EventPublisher,
	sessions *state.Manager,
) *SalesUseCase {
	return &SalesUseCase{saleRepo: saleRepo, tx: tx, feed: feed, events: events, sessions: sessions}
}

// CreateSale registra una venta. El total se calcula en el servidor como
// cantidad × precio por kg. Para café verde el lote se bloquea y descuenta
// en la misma transacción; saldo insuficiente devuelve ErrInsufficientStock.
func (uc *SalesUseCase) CreateSale(ctx context.Context, ownerID, staffID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.Quantity <= 0 || in.PricePerKg.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	saleDate := in.SaleDate
	if saleDate.IsZero() {
		saleDate = now
	}
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		OwnerID:       ownerID,
		ProductType:   in.ProductType,
		ProductID:     in.ProductID,
		Quantity:      in.Quantity,
		PricePerKg:    in.PricePerKg,
		TotalAmount:   decimal.NewFromFloat(in.Quantity).Mul(in.PricePerKg),
		PaymentMethod: in.PaymentMethod,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		SaleDate:      saleDate,
		StaffID:       staffID,
		CreatedAt:     now,
	}

	var lowStock *entity.GreenBean
	switch in.ProductType {
	case entity.ProductTypeGreen:
		if in.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		err := uc.tx.RunSale(ctx, func(beanRepo repository.GreenBeanRepository, saleRepo repository.SaleRepository) error {
			bean, err := beanRepo.GetForUpdate(in.ProductID)
			if err != nil {
				return err
			}
			if bean == nil || bean.OwnerID != ownerID {
				return domain.ErrNotFound
			}
			if bean.Quantity < in.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := saleRepo.Create(sale); err != nil {
				return err
			}
			newQuantity := bean.Quantity - in.Quantity
			if err := beanRepo.UpdateQuantity(bean.ID, newQuantity); err != nil {
				return err
			}
			bean.Quantity = newQuantity
			if bean.IsLowStock() {
				lowStock = bean
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		uc.feed.CollectionChanged(ports.CollectionGreenBeans, ownerID)

	case entity.ProductTypeRoasted:
		// El café tostado se vende bajo el producto tostado único.
		sale.ProductID = entity.RoastedProductID
		if err := uc.saleRepo.Create(sale); err != nil {
			return nil, err
		}

	default:
		return nil, domain.ErrInvalidInput
	}

	uc.feed.CollectionChanged(ports.CollectionSales, ownerID)

	_ = uc.events.PublishSaleRecorded(ctx, ports.SaleRecordedEvent{
		SaleID:        sale.ID,
		OwnerID:       ownerID,
		ProductType:   sale.ProductType,
		ProductID:     sale.ProductID,
		Quantity:      sale.Quantity,
		TotalAmount:   sale.TotalAmount.String(),
		PaymentMethod: sale.PaymentMethod,
		SaleDate:      sale.SaleDate.Format(time.RFC3339),
	})

	uc.sessions.Notify(ownerID, entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationSuccess,
		Title:     "Venta registrada",
		Message:   fmt.Sprintf("%.1f kg por %s", sale.Quantity, sale.TotalAmount.StringFixed(0)),
		Timestamp: now,
	})
	if lowStock != nil {
		uc.sessions.Notify(ownerID, entity.Notification{
			ID:        uuid.New().String(),
			Type:      entity.NotificationWarning,
			Title:     "Stock bajo",
			Message:   fmt.Sprintf("El lote %s (%s) quedó en %.1f kg tras la venta", lowStock.BatchNumber, lowStock.Variety, lowStock.Quantity),
			Timestamp: time.Now(),
		})
	}
	return ToSaleResponse(sale), nil
}

// ListSales devuelve las ventas del dueño, más recientes primero.
func (uc *SalesUseCase) ListSales(ownerID string) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *ToSaleResponse(s))
	}
	return out, nil
}

// ListSalesByRange devuelve las ventas del dueño dentro de un rango inclusivo.
func (uc *SalesUseCase) ListSalesByRange(ownerID string, start, end time.Time) ([]dto.SaleResponse, error) {
	sales, err := uc.saleRepo.ListByDateRange(ownerID, start, end)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *ToSaleResponse(s))
	}
	return out, nil
}

// ToSaleResponse mapea una venta a su respuesta.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		ProductType:   s.ProductType,
		ProductID:     s.ProductID,
		Quantity:      s.Quantity,
		PricePerKg:    s.PricePerKg,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		SaleDate:      s.SaleDate,
		StaffID:       s.StaffID,
		CreatedAt:     s.CreatedAt,
	}
}
