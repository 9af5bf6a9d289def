package repository

import "github.com/beanshub/roastery-api/internal/domain/entity"

// RoastingProfileRepository define el puerto de persistencia para perfiles de tueste.
type RoastingProfileRepository interface {
	Create(profile *entity.RoastingProfile) error
	GetByID(id string) (*entity.RoastingProfile, error)
	ListByOwner(ownerID string) ([]*entity.RoastingProfile, error)
	Update(profile *entity.RoastingProfile) error
	Delete(id string) error
}

// RoastingSessionRepository define el puerto de persistencia para sesiones de tueste.
// Las sesiones son inmutables: solo se crean y se consultan.
type RoastingSessionRepository interface {
	Create(session *entity.RoastingSession) error
	GetByID(id string) (*entity.RoastingSession, error)
	ListByOwner(ownerID string) ([]*entity.RoastingSession, error)
	ListByGreenBean(greenBeanID string) ([]*entity.RoastingSession, error)
}

// QualityScoreRepository define el puerto de persistencia para evaluaciones de calidad.
type QualityScoreRepository interface {
	Create(score *entity.QualityScore) error
	ListBySession(sessionID string) ([]*entity.QualityScore, error)
	ListByOwner(ownerID string) ([]*entity.QualityScore, error)
}
