// Package inventory implementa la gestión de lotes de café verde y su motor
// de movimientos de stock.
package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/ports"
	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
	"github.com/beanshub/roastery-api/internal/domain/roastery"
	"github.com/beanshub/roastery-api/internal/state"
)

// InventoryUseCase casos de uso de lotes de café verde: CRUD y movimientos.
type InventoryUseCase struct {
	beanRepo     repository.GreenBeanRepository
	movementRepo repository.StockMovementRepository
	tx           TxRunner
	feed         ports.ChangeFeed
	events       ports.EventPublisher
	sessions     *state.Manager
}

// NewInventoryUseCase construye el caso de uso de inventario.
func NewInventoryUseCase(
	beanRepo repository.GreenBeanRepository,
	movementRepo repository.StockMovementRepository,
	tx TxRunner,
	feed ports.ChangeFeed,
	events ports.EventPublisher,
	sessions *state.Manager,
) *InventoryUseCase {
	return &InventoryUseCase{
		beanRepo:     beanRepo,
		movementRepo: movementRepo,
		tx:           tx,
		feed:         feed,
		events:       events,
		sessions:     sessions,
	}
}

// CreateGreenBean registra un lote nuevo con número de lote GB-<año>-<sufijo>.
func (uc *InventoryUseCase) CreateGreenBean(ownerID string, in dto.CreateGreenBeanRequest) (*dto.GreenBeanResponse, error) {
	if in.Quantity <= 0 || in.SupplierName == "" || in.Variety == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	entryDate := in.EntryDate
	if entryDate.IsZero() {
		entryDate = now
	}
	bean := &entity.GreenBean{
		ID:                 uuid.New().String(),
		OwnerID:            ownerID,
		SupplierName:       in.SupplierName,
		Variety:            in.Variety,
		Origin:             in.Origin,
		Quantity:           in.Quantity,
		PurchasePricePerKg: in.PurchasePricePerKg,
		EntryDate:          entryDate,
		BatchNumber:        BatchNumber("GB", now),
		LowStockThreshold:  in.LowStockThreshold,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.beanRepo.Create(bean); err != nil {
		return nil, err
	}
	uc.feed.CollectionChanged(ports.CollectionGreenBeans, ownerID)
	return ToGreenBeanResponse(bean), nil
}

// GetGreenBean devuelve un lote del dueño.
func (uc *InventoryUseCase) GetGreenBean(ownerID, id string) (*dto.GreenBeanResponse, error) {
	bean, err := uc.ownedBean(ownerID, id)
	if err != nil {
		return nil, err
	}
	return ToGreenBeanResponse(bean), nil
}

// ListGreenBeans devuelve todos los lotes del dueño.
func (uc *InventoryUseCase) ListGreenBeans(ownerID string) ([]dto.GreenBeanResponse, error) {
	beans, err := uc.beanRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.GreenBeanResponse, 0, len(beans))
	for _, bean := range beans {
		out = append(out, *ToGreenBeanResponse(bean))
	}
	return out, nil
}

// UpdateGreenBean actualiza los campos editables de un lote. La cantidad no
// se toca aquí: solo cambia vía movimientos, tuestes y ventas.
func (uc *InventoryUseCase) UpdateGreenBean(ownerID, id string, in dto.UpdateGreenBeanRequest) (*dto.GreenBeanResponse, error) {
	bean, err := uc.ownedBean(ownerID, id)
	if err != nil {
		return nil, err
	}
	if in.SupplierName != nil {
		bean.SupplierName = *in.SupplierName
	}
	if in.Variety != nil {
		bean.Variety = *in.Variety
	}
	if in.Origin != nil {
		bean.Origin = *in.Origin
	}
	if in.PurchasePricePerKg != nil {
		bean.PurchasePricePerKg = *in.PurchasePricePerKg
	}
	if in.LowStockThreshold != nil {
		bean.LowStockThreshold = *in.LowStockThreshold
	}
	bean.UpdatedAt = time.Now()
	if err := uc.beanRepo.Update(bean); err != nil {
		return nil, err
	}
	uc.feed.CollectionChanged(ports.CollectionGreenBeans, ownerID)
	return ToGreenBeanResponse(bean), nil
}

// DeleteGreenBean elimina un lote del dueño.
func (uc *InventoryUseCase) DeleteGreenBean(ownerID, id string) error {
	if _, err := uc.ownedBean(ownerID, id); err != nil {
		return err
	}
	if err := uc.beanRepo.Delete(id); err != nil {
		return err
	}
	uc.feed.CollectionChanged(ports.CollectionGreenBeans, ownerID)
	return nil
}

// RegisterMovement registra un movimiento de stock y actualiza el saldo del
// lote en la misma transacción. La cantidad lleva signo; un saldo resultante
// negativo devuelve ErrInsufficientStock.
func (uc *InventoryUseCase) RegisterMovement(ctx context.Context, ownerID, userID string, in dto.RegisterMovementRequest) (*dto.StockMovementResponse, error) {
	if in.Quantity == 0 || in.Reason == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Type {
	case entity.MovementTypeIn, entity.MovementTypeOut, entity.MovementTypeAdjust:
	default:
		return nil, domain.ErrInvalidInput
	}
	if in.Type == entity.MovementTypeIn && in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == entity.MovementTypeOut && in.Quantity > 0 {
		in.Quantity = -in.Quantity
	}

	movement := &entity.StockMovement{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		GreenBeanID: in.GreenBeanID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		CreatedAt:   time.Now(),
		CreatedBy:   userID,
	}

	var after *entity.GreenBean
	err := uc.tx.RunMovement(ctx, func(beanRepo repository.GreenBeanRepository, movementRepo repository.StockMovementRepository) error {
		bean, err := beanRepo.GetForUpdate(in.GreenBeanID)
		if err != nil {
			return err
		}
		if bean == nil || bean.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		newQuantity := bean.Quantity + in.Quantity
		if newQuantity < 0 {
			return domain.ErrInsufficientStock
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}
		if err := beanRepo.UpdateQuantity(bean.ID, newQuantity); err != nil {
			return err
		}
		bean.Quantity = newQuantity
		after = bean
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.feed.CollectionChanged(ports.CollectionGreenBeans, ownerID)
	uc.notifyIfLowStock(ctx, after)
	return ToMovementResponse(movement), nil
}

// ListBeanMovements devuelve el historial de movimientos de un lote.
func (uc *InventoryUseCase) ListBeanMovements(ownerID, beanID string) ([]dto.StockMovementResponse, error) {
	if _, err := uc.ownedBean(ownerID, beanID); err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.ListByGreenBean(beanID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *ToMovementResponse(m))
	}
	return out, nil
}

// ListMovements devuelve el historial de movimientos del dueño.
func (uc *InventoryUseCase) ListMovements(ownerID string) ([]dto.StockMovementResponse, error) {
	movements, err := uc.movementRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, *ToMovementResponse(m))
	}
	return out, nil
}

func (uc *InventoryUseCase) ownedBean(ownerID, id string) (*entity.GreenBean, error) {
	bean, err := uc.beanRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if bean == nil || bean.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return bean, nil
}

func (uc *InventoryUseCase) notifyIfLowStock(ctx context.Context, bean *entity.GreenBean) {
	if bean == nil || !bean.IsLowStock() {
		return
	}
	uc.sessions.Notify(bean.OwnerID, entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationWarning,
		Title:     "Stock bajo",
		Message:   fmt.Sprintf("El lote %s (%s) quedó en %.1f kg", bean.BatchNumber, bean.Variety, bean.Quantity),
		Timestamp: time.Now(),
	})
	_ = uc.events.PublishLowStock(ctx, ports.LowStockEvent{
		GreenBeanID: bean.ID,
		OwnerID:     bean.OwnerID,
		Variety:     bean.Variety,
		Quantity:    bean.Quantity,
		Threshold:   bean.LowStockThreshold,
	})
}

// BatchNumber genera un número de lote <prefijo>-<año>-<sufijo>, donde el
// sufijo son los últimos 6 dígitos del reloj en milisegundos.
func BatchNumber(prefix string, t time.Time) string {
	millis := t.UnixMilli()
	return fmt.Sprintf("%s-%d-%06d", prefix, t.Year(), millis%1_000_000)
}

// ToGreenBeanResponse mapea la entidad a su respuesta, clasificando el stock.
func ToGreenBeanResponse(b *entity.GreenBean) *dto.GreenBeanResponse {
	if b == nil {
		return nil
	}
	return &dto.GreenBeanResponse{
		ID:                 b.ID,
		SupplierName:       b.SupplierName,
		Variety:            b.Variety,
		Origin:             b.Origin,
		Quantity:           b.Quantity,
		PurchasePricePerKg: b.PurchasePricePerKg,
		EntryDate:          b.EntryDate,
		BatchNumber:        b.BatchNumber,
		LowStockThreshold:  b.LowStockThreshold,
		StockLevel:         roastery.ClassifyStock(b.Quantity, b.LowStockThreshold),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// ToMovementResponse mapea un movimiento a su respuesta.
func ToMovementResponse(m *entity.StockMovement) *dto.StockMovementResponse {
	if m == nil {
		return nil
	}
	return &dto.StockMovementResponse{
		ID:          m.ID,
		GreenBeanID: m.GreenBeanID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Reason:      m.Reason,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
	}
}
