package roasting

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/ports"
	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
	"github.com/beanshub/roastery-api/internal/domain/roastery"
	"github.com/beanshub/roastery-api/internal/state"
	"github.com/beanshub/roastery-api/pkg/logger"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type memBeanRepo struct {
	beans map[string]*entity.GreenBean
}

func newMemBeanRepo(beans ...*entity.GreenBean) *memBeanRepo {
	r := &memBeanRepo{beans: map[string]*entity.GreenBean{}}
	for _, b := range beans {
		copy := *b
		r.beans[b.ID] = &copy
	}
	return r
}

func (r *memBeanRepo) Create(b *entity.GreenBean) error {
	copy := *b
	r.beans[b.ID] = &copy
	return nil
}

func (r *memBeanRepo) GetByID(id string) (*entity.GreenBean, error) {
	b, ok := r.beans[id]
	if !ok {
		return nil, nil
	}
	copy := *b
	return &copy, nil
}

func (r *memBeanRepo) ListByOwner(ownerID string) ([]*entity.GreenBean, error) {
	var out []*entity.GreenBean
	for _, b := range r.beans {
		if b.OwnerID == ownerID {
			copy := *b
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *memBeanRepo) Update(b *entity.GreenBean) error {
	if _, ok := r.beans[b.ID]; !ok {
		return domain.ErrNotFound
	}
	copy := *b
	r.beans[b.ID] = &copy
	return nil
}

func (r *memBeanRepo) Delete(id string) error {
	delete(r.beans, id)
	return nil
}

func (r *memBeanRepo) GetForUpdate(id string) (*entity.GreenBean, error) {
	return r.GetByID(id)
}

func (r *memBeanRepo) UpdateQuantity(id string, quantity float64) error {
	b, ok := r.beans[id]
	if !ok {
		return domain.ErrNotFound
	}
	b.Quantity = quantity
	return nil
}

type memSessionRepo struct {
	sessions []*entity.RoastingSession
}

func (r *memSessionRepo) Create(s *entity.RoastingSession) error {
	copy := *s
	r.sessions = append(r.sessions, &copy)
	return nil
}

func (r *memSessionRepo) GetByID(id string) (*entity.RoastingSession, error) {
	for _, s := range r.sessions {
		if s.ID == id {
			copy := *s
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *memSessionRepo) ListByOwner(ownerID string) ([]*entity.RoastingSession, error) {
	var out []*entity.RoastingSession
	for _, s := range r.sessions {
		if s.OwnerID == ownerID {
			copy := *s
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *memSessionRepo) ListByGreenBean(greenBeanID string) ([]*entity.RoastingSession, error) {
	var out []*entity.RoastingSession
	for _, s := range r.sessions {
		if s.GreenBeanID == greenBeanID {
			copy := *s
			out = append(out, &copy)
		}
	}
	return out, nil
}

type memProfileRepo struct {
	profiles map[string]*entity.RoastingProfile
}

func (r *memProfileRepo) Create(p *entity.RoastingProfile) error {
	if r.profiles == nil {
		r.profiles = map[string]*entity.RoastingProfile{}
	}
	copy := *p
	r.profiles[p.ID] = &copy
	return nil
}

func (r *memProfileRepo) GetByID(id string) (*entity.RoastingProfile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	copy := *p
	return &copy, nil
}

func (r *memProfileRepo) ListByOwner(ownerID string) ([]*entity.RoastingProfile, error) {
	var out []*entity.RoastingProfile
	for _, p := range r.profiles {
		if p.OwnerID == ownerID {
			copy := *p
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *memProfileRepo) Update(p *entity.RoastingProfile) error {
	copy := *p
	r.profiles[p.ID] = &copy
	return nil
}

func (r *memProfileRepo) Delete(id string) error {
	delete(r.profiles, id)
	return nil
}

type memScoreRepo struct {
	scores []*entity.QualityScore
}

func (r *memScoreRepo) Create(s *entity.QualityScore) error {
	copy := *s
	r.scores = append(r.scores, &copy)
	return nil
}

func (r *memScoreRepo) ListBySession(sessionID string) ([]*entity.QualityScore, error) {
	var out []*entity.QualityScore
	for _, s := range r.scores {
		if s.RoastingSessionID == sessionID {
			copy := *s
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *memScoreRepo) ListByOwner(ownerID string) ([]*entity.QualityScore, error) {
	var out []*entity.QualityScore
	for _, s := range r.scores {
		if s.OwnerID == ownerID {
			copy := *s
			out = append(out, &copy)
		}
	}
	return out, nil
}

// memTxRunner ejecuta el callback directamente sobre los repos en memoria.
// No emula rollback: los casos de error del caso de uso validan antes de
// mutar, que es lo que estos tests comprueban.
type memTxRunner struct {
	beans    *memBeanRepo
	sessions *memSessionRepo
}

func (r *memTxRunner) RunRoast(_ context.Context, fn func(
	beanRepo repository.GreenBeanRepository,
	sessionRepo repository.RoastingSessionRepository,
) error) error {
	return fn(r.beans, r.sessions)
}

type nopEvents struct{}

func (nopEvents) PublishSaleRecorded(context.Context, ports.SaleRecordedEvent) error   { return nil }
func (nopEvents) PublishRoastCompleted(context.Context, ports.RoastCompletedEvent) error { return nil }
func (nopEvents) PublishLowStock(context.Context, ports.LowStockEvent) error           { return nil }

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

func newTestUseCase(beans ...*entity.GreenBean) (*RoastingUseCase, *memBeanRepo, *memSessionRepo) {
	beanRepo := newMemBeanRepo(beans...)
	sessionRepo := &memSessionRepo{}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	manager := state.NewManager(nopSource{}, log)
	uc := NewRoastingUseCase(
		&memProfileRepo{},
		sessionRepo,
		&memScoreRepo{},
		&memTxRunner{beans: beanRepo, sessions: sessionRepo},
		ports.NopFeed{},
		nopEvents{},
		manager,
	)
	return uc, beanRepo, sessionRepo
}

func testBean(id string, quantity float64) *entity.GreenBean {
	return &entity.GreenBean{
		ID:                 id,
		OwnerID:            "u1",
		SupplierName:       "Koperasi Kopi Gayo",
		Variety:            "Arabica Gayo",
		Quantity:           quantity,
		PurchasePricePerKg: decimal.NewFromInt(85000),
		LowStockThreshold:  50,
	}
}

// ── Tests ─────────────────────────────────────────────────────────────────────

// Un lote de 500 kg con umbral 50 es "normal"; tras tostar 480 kg queda en
// 20 kg y pasa a "critical".
func TestCreateSession_ConsumeLoteHastaCritico(t *testing.T) {
	uc, beanRepo, _ := newTestUseCase(testBean("b1", 500))

	bean, _ := beanRepo.GetByID("b1")
	assert.Equal(t, roastery.StockNormal, roastery.ClassifyStock(bean.Quantity, bean.LowStockThreshold))

	out, err := uc.CreateSession(context.Background(), "u1", "roaster-1", dto.CreateRoastingSessionRequest{
		GreenBeanID:       "b1",
		ProfileID:         "p1",
		GreenBeanQuantity: 480,
		RoastedQuantity:   384,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.BatchNumber)

	bean, _ = beanRepo.GetByID("b1")
	assert.InDelta(t, 20, bean.Quantity, 0.001)
	assert.Equal(t, roastery.StockCritical, roastery.ClassifyStock(bean.Quantity, bean.LowStockThreshold))
}

// Sin cantidad tostada explícita se aplica el rendimiento por defecto del 80%.
func TestCreateSession_RendimientoPorDefecto(t *testing.T) {
	uc, _, _ := newTestUseCase(testBean("b1", 500))

	out, err := uc.CreateSession(context.Background(), "u1", "roaster-1", dto.CreateRoastingSessionRequest{
		GreenBeanID:       "b1",
		ProfileID:         "p1",
		GreenBeanQuantity: 50,
	})
	require.NoError(t, err)
	assert.InDelta(t, 40, out.RoastedQuantity, 0.001)
	assert.InDelta(t, 80.0, out.YieldPercent, 0.001)
}

// Más tostado que verde usado es un rendimiento imposible.
func TestCreateSession_RendimientoImposible(t *testing.T) {
	uc, _, sessionRepo := newTestUseCase(testBean("b1", 500))

	_, err := uc.CreateSession(context.Background(), "u1", "roaster-1", dto.CreateRoastingSessionRequest{
		GreenBeanID:       "b1",
		ProfileID:         "p1",
		GreenBeanQuantity: 50,
		RoastedQuantity:   60,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidYield)
	assert.Empty(t, sessionRepo.sessions)
}

// Tostar más de lo que hay se rechaza antes de mutar: ni sesión ni descuento.
func TestCreateSession_StockInsuficiente(t *testing.T) {
	uc, beanRepo, sessionRepo := newTestUseCase(testBean("b1", 30))

	_, err := uc.CreateSession(context.Background(), "u1", "roaster-1", dto.CreateRoastingSessionRequest{
		GreenBeanID:       "b1",
		ProfileID:         "p1",
		GreenBeanQuantity: 50,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, sessionRepo.sessions)

	bean, _ := beanRepo.GetByID("b1")
	assert.InDelta(t, 30, bean.Quantity, 0.001)
}

// El lote de otro dueño no es visible para el tueste.
func TestCreateSession_LoteAjeno(t *testing.T) {
	ajeno := testBean("b1", 500)
	ajeno.OwnerID = "u2"
	uc, _, _ := newTestUseCase(ajeno)

	_, err := uc.CreateSession(context.Background(), "u1", "roaster-1", dto.CreateRoastingSessionRequest{
		GreenBeanID:       "b1",
		ProfileID:         "p1",
		GreenBeanQuantity: 10,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La nota global de una catación es el promedio de los cinco atributos.
func TestCreateQualityScore_Promedio(t *testing.T) {
	uc, _, sessionRepo := newTestUseCase(testBean("b1", 500))
	sessionRepo.sessions = append(sessionRepo.sessions, &entity.RoastingSession{
		ID: "r1", OwnerID: "u1", GreenBeanID: "b1",
	})

	out, err := uc.CreateQualityScore("u1", "catador-1", dto.CreateQualityScoreRequest{
		RoastingSessionID: "r1",
		Appearance:        4,
		Aroma:             5,
		Flavor:            4.5,
		Acidity:           4,
		Body:              4.5,
	})
	require.NoError(t, err)
	assert.InDelta(t, 4.4, out.Overall, 0.001)
	assert.Equal(t, "Very Good", out.Grade)
}

// Atributos fuera de la escala 1-5 se rechazan.
func TestCreateQualityScore_FueraDeEscala(t *testing.T) {
	uc, _, _ := newTestUseCase(testBean("b1", 500))

	_, err := uc.CreateQualityScore("u1", "catador-1", dto.CreateQualityScoreRequest{
		RoastingSessionID: "r1",
		Appearance:        6,
		Aroma:             5, Flavor: 5, Acidity: 5, Body: 5,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un perfil sin duración objetivo positiva no se puede crear.
func TestCreateProfile_DuracionInvalida(t *testing.T) {
	uc, _, _ := newTestUseCase()

	_, err := uc.CreateProfile("u1", "u1", dto.CreateRoastingProfileRequest{Name: "City Roast"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.CreateProfile("u1", "u1", dto.CreateRoastingProfileRequest{
		Name:           "City Roast",
		TargetDuration: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 12, out.TargetDuration)
}
