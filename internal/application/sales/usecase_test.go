package sales

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/ports"
	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
	"github.com/beanshub/roastery-api/internal/state"
	"github.com/beanshub/roastery-api/pkg/logger"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type memBeanRepo struct {
	beans map[string]*entity.GreenBean
}

func (r *memBeanRepo) Create(b *entity.GreenBean) error {
	c := *b
	r.beans[b.ID] = &c
	return nil
}

func (r *memBeanRepo) GetByID(id string) (*entity.GreenBean, error) {
	b, ok := r.beans[id]
	if !ok {
		return nil, nil
	}
	c := *b
	return &c, nil
}

func (r *memBeanRepo) ListByOwner(string) ([]*entity.GreenBean, error) { return nil, nil }

func (r *memBeanRepo) Update(b *entity.GreenBean) error {
	c := *b
	r.beans[b.ID] = &c
	return nil
}

func (r *memBeanRepo) Delete(id string) error { delete(r.beans, id); return nil }

func (r *memBeanRepo) GetForUpdate(id string) (*entity.GreenBean, error) { return r.GetByID(id) }

func (r *memBeanRepo) UpdateQuantity(id string, quantity float64) error {
	b, ok := r.beans[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Quantity = quantity
	return nil
}

type memSaleRepo struct {
	sales []*entity.Sale
}

func (r *memSaleRepo) Create(s *entity.Sale) error {
	c := *s
	r.sales = append(r.sales, &c)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			c := *s
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memSaleRepo) ListByOwner(ownerID string) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.OwnerID == ownerID {
			c := *s
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *memSaleRepo) ListByDateRange(ownerID string, start, end time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.OwnerID != ownerID || s.SaleDate.Before(start) || s.SaleDate.After(end) {
			continue
		}
		c := *s
		out = append(out, &c)
	}
	return out, nil
}

type memTxRunner struct {
	beans *memBeanRepo
	sales *memSaleRepo
}

func (r *memTxRunner) RunSale(_ context.Context, fn func(
	beanRepo repository.GreenBeanRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return fn(r.beans, r.sales)
}

type nopEvents struct{}

func (nopEvents) PublishSaleRecorded(context.Context, ports.SaleRecordedEvent) error     { return nil }
func (nopEvents) PublishRoastCompleted(context.Context, ports.RoastCompletedEvent) error { return nil }
func (nopEvents) PublishLowStock(context.Context, ports.LowStockEvent) error             { return nil }

type nopSource struct{}

func (nopSource) WatchGreenBeans(string, func([]entity.GreenBean)) (state.Unsubscribe, error) {
	return func() {}, nil
}
func (nopSource) WatchRoastingProfiles(string, func([]entity.RoastingProfile)) (state.Unsubscribe, error) {
	return func() {}, nil
}
func (nopSource) WatchRoastingSessions(string, func([]entity.RoastingSession)) (state.Unsubscribe, error) {
	return func() {}, nil
}
func (nopSource) WatchSales(string, func([]entity.Sale)) (state.Unsubscribe, error) {
	return func() {}, nil
}
func (nopSource) WatchUsers(func([]entity.User)) (state.Unsubscribe, error) {
	return func() {}, nil
}

func newTestUseCase(beans ...*entity.GreenBean) (*SalesUseCase, *memBeanRepo, *memSaleRepo) {
	beanRepo := &memBeanRepo{beans: map[string]*entity.GreenBean{}}
	for _, b := range beans {
		c := *b
		beanRepo.beans[b.ID] = &c
	}
	saleRepo := &memSaleRepo{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	manager := state.NewManager(nopSource{}, log)
	uc := NewSalesUseCase(
		saleRepo,
		&memTxRunner{beans: beanRepo, sales: saleRepo},
		ports.NopFeed{},
		nopEvents{},
		manager,
	)
	return uc, beanRepo, saleRepo
}

// ── Tests ─────────────────────────────────────────────────────────────────────

// El total se calcula en el servidor: 5 kg a 150000/kg son 750000, y el lote
// verde queda descontado.
func TestCreateSale_TotalYDescuento(t *testing.T) {
	uc, beanRepo, _ := newTestUseCase(&entity.GreenBean{
		ID: "b1", OwnerID: "u1", Variety: "Arabica Gayo",
		Quantity: 100, LowStockThreshold: 10,
	})

	out, err := uc.CreateSale(context.Background(), "u1", "staff-1", dto.CreateSaleRequest{
		ProductType:   entity.ProductTypeGreen,
		ProductID:     "b1",
		Quantity:      5,
		PricePerKg:    decimal.NewFromInt(150000),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)
	assert.True(t, out.TotalAmount.Equal(decimal.NewFromInt(750000)), out.TotalAmount.String())

	bean, _ := beanRepo.GetByID("b1")
	assert.InDelta(t, 95, bean.Quantity, 0.001)
}

// Vender más de lo que hay se rechaza antes de mutar.
func TestCreateSale_StockInsuficiente(t *testing.T) {
	uc, beanRepo, saleRepo := newTestUseCase(&entity.GreenBean{
		ID: "b1", OwnerID: "u1", Quantity: 3, LowStockThreshold: 1,
	})

	_, err := uc.CreateSale(context.Background(), "u1", "staff-1", dto.CreateSaleRequest{
		ProductType:   entity.ProductTypeGreen,
		ProductID:     "b1",
		Quantity:      5,
		PricePerKg:    decimal.NewFromInt(150000),
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, saleRepo.sales)

	bean, _ := beanRepo.GetByID("b1")
	assert.InDelta(t, 3, bean.Quantity, 0.001)
}

// El café tostado se vende bajo el producto tostado único y no toca lotes.
func TestCreateSale_Tostado(t *testing.T) {
	uc, beanRepo, _ := newTestUseCase(&entity.GreenBean{
		ID: "b1", OwnerID: "u1", Quantity: 100, LowStockThreshold: 10,
	})

	out, err := uc.CreateSale(context.Background(), "u1", "staff-1", dto.CreateSaleRequest{
		ProductType:   entity.ProductTypeRoasted,
		Quantity:      2,
		PricePerKg:    decimal.NewFromInt(200000),
		PaymentMethod: entity.PaymentTransfer,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoastedProductID, out.ProductID)

	bean, _ := beanRepo.GetByID("b1")
	assert.InDelta(t, 100, bean.Quantity, 0.001)
}

func TestCreateSale_MetodoPagoInvalido(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.CreateSale(context.Background(), "u1", "staff-1", dto.CreateSaleRequest{
		ProductType:   entity.ProductTypeRoasted,
		Quantity:      1,
		PricePerKg:    decimal.NewFromInt(100),
		PaymentMethod: "cheque",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El lote de otro dueño no se puede vender.
func TestCreateSale_LoteAjeno(t *testing.T) {
	uc, _, _ := newTestUseCase(&entity.GreenBean{
		ID: "b1", OwnerID: "u2", Quantity: 100,
	})

	_, err := uc.CreateSale(context.Background(), "u1", "staff-1", dto.CreateSaleRequest{
		ProductType:   entity.ProductTypeGreen,
		ProductID:     "b1",
		Quantity:      1,
		PricePerKg:    decimal.NewFromInt(100),
		PaymentMethod: entity.PaymentCard,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
