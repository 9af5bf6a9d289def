// Package roasting implementa perfiles de tueste, sesiones de tueste con
// descuento atómico del lote verde y el control de calidad por catación.
package roasting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beanshub/roastery-api/internal/application/dto"
	"github.com/beanshub/roastery-api/internal/application/inventory"
	"github.com/beanshub/roastery-api/internal/application/ports"
	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
	"github.com/beanshub/roastery-api/internal/domain/roastery"
	"github.com/beanshub/roastery-api/internal/state"
)

// RoastingUseCase casos de uso de tueste: perfiles, sesiones y calidad.
type RoastingUseCase struct {
	profileRepo repository.RoastingProfileRepository
	sessionRepo repository.RoastingSessionRepository
	scoreRepo   repository.QualityScoreRepository
	tx          TxRunner
	feed        ports.ChangeFeed
	events      ports.EventPublisher
	sessions    *state.Manager
}

// NewRoastingUseCase construye el caso de uso de tueste.
func NewRoastingUseCase(
	profileRepo repository.RoastingProfileRepository,
	sessionRepo repository.RoastingSessionRepository,
	scoreRepo repository.QualityScoreRepository,
	tx TxRunner,
	feed ports.ChangeFeed,
	events ports.EventPublisher,
	sessions *state.Manager,
) *RoastingUseCase {
	return &RoastingUseCase{
		profileRepo: profileRepo,
		sessionRepo: sessionRepo,
		scoreRepo:   scoreRepo,
		tx:          tx,
		feed:        feed,
		events:      events,
		sessions:    sessions,
	}
}

// ── Perfiles ──────────────────────────────────────────────────────────────────

// CreateProfile crea un perfil de tueste. La duración objetivo debe ser
// mayor que cero.
func (uc *RoastingUseCase) CreateProfile(ownerID, userID string, in dto.CreateRoastingProfileRequest) (*dto.RoastingProfileResponse, error) {
	if in.Name == "" || in.TargetDuration <= 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	profile := &entity.RoastingProfile{
		ID:               uuid.New().String(),
		OwnerID:          ownerID,
		Name:             in.Name,
		TemperatureCurve: in.TemperatureCurve,
		TargetDuration:   in.TargetDuration,
		Notes:            in.Notes,
		CreatedBy:        userID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.profileRepo.Create(profile); err != nil {
		return nil, err
	}
	uc.feed.CollectionChanged(ports.CollectionRoastingProfiles, ownerID)
	return ToProfileResponse(profile), nil
}

// ListProfiles devuelve los perfiles del dueño.
func (uc *RoastingUseCase) ListProfiles(ownerID string) ([]dto.RoastingProfileResponse, error) {
	profiles, err := uc.profileRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoastingProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, *ToProfileResponse(p))
	}
	return out, nil
}

// UpdateProfile actualiza los campos editables de un perfil.
func (uc *RoastingUseCase) UpdateProfile(ownerID, id string, in dto.UpdateRoastingProfileRequest) (*dto.RoastingProfileResponse, error) {
	profile, err := uc.ownedProfile(ownerID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		profile.Name = *in.Name
	}
	if in.TemperatureCurve != nil {
		profile.TemperatureCurve = *in.TemperatureCurve
	}
	if in.TargetDuration != nil {
		if *in.TargetDuration <= 0 {
			return nil, domain.ErrInvalidInput
		}
		profile.TargetDuration = *in.TargetDuration
	}
	if in.Notes != nil {
		profile.Notes = *in.Notes
	}
	profile.UpdatedAt = time.Now()
	if err := uc.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	uc.feed.CollectionChanged(ports.CollectionRoastingProfiles, ownerID)
	return ToProfileResponse(profile), nil
}

// DeleteProfile elimina un perfil del dueño.
func (uc *RoastingUseCase) DeleteProfile(ownerID, id string) error {
	if _, err := uc.ownedProfile(ownerID, id); err != nil {
		return err
	}
	if err := uc.profileRepo.Delete(id); err != nil {
		return err
	}
	uc.feed.CollectionChanged(ports.CollectionRoastingProfiles, ownerID)
	return nil
}

// ── Sesiones ──────────────────────────────────────────────────────────────────

// CreateSession registra una sesión de tueste: bloquea el lote verde, valida
// saldo y rendimiento, descuenta y persiste la sesión en una transacción.
// RoastedQuantity cero aplica el rendimiento por defecto del 80%; una cantidad
// tostada mayor que la verde usada devuelve ErrInvalidYield.
func (uc *RoastingUseCase) CreateSession(ctx context.Context, ownerID, roasterID string, in dto.CreateRoastingSessionRequest) (*dto.RoastingSessionResponse, error) {
	if in.GreenBeanQuantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	roasted := in.RoastedQuantity
	if roasted == 0 {
		roasted = roastery.DefaultRoastedQuantity(in.GreenBeanQuantity)
	}
	if roasted < 0 || roasted > in.GreenBeanQuantity {
		return nil, domain.ErrInvalidYield
	}
	now := time.Now()
	roastDate := in.RoastDate
	if roastDate.IsZero() {
		roastDate = now
	}
	session := &entity.RoastingSession{
		ID:                uuid.New().String(),
		OwnerID:           ownerID,
		GreenBeanID:       in.GreenBeanID,
		ProfileID:         in.ProfileID,
		GreenBeanQuantity: in.GreenBeanQuantity,
		RoastedQuantity:   roasted,
		RoastDate:         roastDate,
		RoasterID:         roasterID,
		BatchNumber:       inventory.BatchNumber("RS", now),
		Notes:             in.Notes,
		CreatedAt:         now,
	}

	var after *entity.GreenBean
	err := uc.tx.RunRoast(ctx, func(beanRepo repository.GreenBeanRepository, sessionRepo repository.RoastingSessionRepository) error {
		bean, err := beanRepo.GetForUpdate(in.GreenBeanID)
		if err != nil {
			return err
		}
		if bean == nil || bean.OwnerID != ownerID {
			return domain.ErrNotFound
		}
		if bean.Quantity < in.GreenBeanQuantity {
			return domain.ErrInsufficientStock
		}
		if err := sessionRepo.Create(session); err != nil {
			return err
		}
		newQuantity := bean.Quantity - in.GreenBeanQuantity
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

	uc.feed.CollectionChanged(ports.CollectionRoastingSessions, ownerID)
	uc.feed.CollectionChanged(ports.CollectionGreenBeans, ownerID)

	_ = uc.events.PublishRoastCompleted(ctx, ports.RoastCompletedEvent{
		SessionID:       session.ID,
		OwnerID:         ownerID,
		GreenBeanID:     session.GreenBeanID,
		BatchNumber:     session.BatchNumber,
		GreenQuantity:   session.GreenBeanQuantity,
		RoastedQuantity: session.RoastedQuantity,
		RoastDate:       session.RoastDate.Format(time.RFC3339),
	})
	uc.notifyIfLowStock(after)
	return ToSessionResponse(session), nil
}

// ListSessions devuelve las sesiones del dueño, más recientes primero.
func (uc *RoastingUseCase) ListSessions(ownerID string) ([]dto.RoastingSessionResponse, error) {
	sessions, err := uc.sessionRepo.ListByOwner(ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoastingSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, *ToSessionResponse(s))
	}
	return out, nil
}

// ── Calidad ───────────────────────────────────────────────────────────────────

// CreateQualityScore evalúa una sesión: Overall es el promedio de los cinco
// atributos (escala 1-5).
func (uc *RoastingUseCase) CreateQualityScore(ownerID, userID string, in dto.CreateQualityScoreRequest) (*dto.QualityScoreResponse, error) {
	for _, v := range []float64{in.Appearance, in.Aroma, in.Flavor, in.Acidity, in.Body} {
		if v < 1 || v > 5 {
			return nil, domain.ErrInvalidInput
		}
	}
	session, err := uc.sessionRepo.GetByID(in.RoastingSessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	score := &entity.QualityScore{
		ID:                uuid.New().String(),
		OwnerID:           ownerID,
		RoastingSessionID: in.RoastingSessionID,
		Appearance:        in.Appearance,
		Aroma:             in.Aroma,
		Flavor:            in.Flavor,
		Acidity:           in.Acidity,
		Body:              in.Body,
		Overall:           (in.Appearance + in.Aroma + in.Flavor + in.Acidity + in.Body) / 5,
		Notes:             in.Notes,
		EvaluatedBy:       userID,
		CreatedAt:         time.Now(),
	}
	if err := uc.scoreRepo.Create(score); err != nil {
		return nil, err
	}
	return toScoreResponse(score), nil
}

// ListQualityScores devuelve las evaluaciones de una sesión del dueño.
func (uc *RoastingUseCase) ListQualityScores(ownerID, sessionID string) ([]dto.QualityScoreResponse, error) {
	session, err := uc.sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || session.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	scores, err := uc.scoreRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QualityScoreResponse, 0, len(scores))
	for _, s := range scores {
		out = append(out, *toScoreResponse(s))
	}
	return out, nil
}

func (uc *RoastingUseCase) ownedProfile(ownerID, id string) (*entity.RoastingProfile, error) {
	profile, err := uc.profileRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (uc *RoastingUseCase) notifyIfLowStock(bean *entity.GreenBean) {
	if bean == nil || !bean.IsLowStock() {
		return
	}
	uc.sessions.Notify(bean.OwnerID, entity.Notification{
		ID:        uuid.New().String(),
		Type:      entity.NotificationWarning,
		Title:     "Stock bajo",
		Message:   fmt.Sprintf("El lote %s (%s) quedó en %.1f kg tras el tueste", bean.BatchNumber, bean.Variety, bean.Quantity),
		Timestamp: time.Now(),
	})
}

func ToProfileResponse(p *entity.RoastingProfile) *dto.RoastingProfileResponse {
	if p == nil {
		return nil
	}
	return &dto.RoastingProfileResponse{
		ID:               p.ID,
		Name:             p.Name,
		TemperatureCurve: p.TemperatureCurve,
		TargetDuration:   p.TargetDuration,
		Notes:            p.Notes,
		CreatedBy:        p.CreatedBy,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// ToSessionResponse mapea una sesión a su respuesta, con el rendimiento.
func ToSessionResponse(s *entity.RoastingSession) *dto.RoastingSessionResponse {
	if s == nil {
		return nil
	}
	return &dto.RoastingSessionResponse{
		ID:                s.ID,
		GreenBeanID:       s.GreenBeanID,
		ProfileID:         s.ProfileID,
		GreenBeanQuantity: s.GreenBeanQuantity,
		RoastedQuantity:   s.RoastedQuantity,
		YieldPercent:      roastery.YieldPercent(s.RoastedQuantity, s.GreenBeanQuantity),
		RoastDate:         s.RoastDate,
		RoasterID:         s.RoasterID,
		BatchNumber:       s.BatchNumber,
		QualityScore:      s.QualityScore,
		Notes:             s.Notes,
		CreatedAt:         s.CreatedAt,
	}
}

func toScoreResponse(s *entity.QualityScore) *dto.QualityScoreResponse {
	if s == nil {
		return nil
	}
	return &dto.QualityScoreResponse{
		ID:                s.ID,
		RoastingSessionID: s.RoastingSessionID,
		Appearance:        s.Appearance,
		Aroma:             s.Aroma,
		Flavor:            s.Flavor,
		Acidity:           s.Acidity,
		Body:              s.Body,
		Overall:           s.Overall,
		Grade:             roastery.QualityGrade(s.Overall),
		Notes:             s.Notes,
		EvaluatedBy:       s.EvaluatedBy,
		CreatedAt:         s.CreatedAt,
	}
}
