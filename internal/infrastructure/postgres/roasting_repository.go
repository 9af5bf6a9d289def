package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/beanshub/roastery-api/internal/domain"
	"github.com/beanshub/roastery-api/internal/domain/entity"
	"github.com/beanshub/roastery-api/internal/domain/repository"
)

var (
	_ repository.RoastingProfileRepository = (*RoastingProfileRepo)(nil)
	_ repository.RoastingSessionRepository = (*RoastingSessionRepo)(nil)
	_ repository.QualityScoreRepository    = (*QualityScoreRepo)(nil)
)

// RoastingProfileRepo implementación del puerto RoastingProfileRepository.
type RoastingProfileRepo struct {
	db querier
}

// NewRoastingProfileRepository construye el adaptador para perfiles de tueste.
func NewRoastingProfileRepository(db querier) *RoastingProfileRepo {
	return &RoastingProfileRepo{db: db}
}

const profileColumns = `id, owner_id, name, temperature_curve, target_duration, notes, created_by, created_at, updated_at`

// Create persiste un perfil de tueste.
func (r *RoastingProfileRepo) Create(p *entity.RoastingProfile) error {
	query := `
		INSERT INTO roasting_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(context.Background(), query,
		p.ID, p.OwnerID, p.Name, p.TemperatureCurve, p.TargetDuration, p.Notes,
		p.CreatedBy, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert roasting profile: %w", err)
	}
	return nil
}

// GetByID obtiene un perfil por id. Devuelve (nil, nil) si no existe.
func (r *RoastingProfileRepo) GetByID(id string) (*entity.RoastingProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM roasting_profiles WHERE id = $1`
	var p entity.RoastingProfile
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.OwnerID, &p.Name, &p.TemperatureCurve, &p.TargetDuration, &p.Notes,
		&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get roasting profile: %w", err)
	}
	return &p, nil
}

// ListByOwner devuelve los perfiles del dueño en orden de alta.
func (r *RoastingProfileRepo) ListByOwner(ownerID string) ([]*entity.RoastingProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM roasting_profiles WHERE owner_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(context.Background(), query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list roasting profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.RoastingProfile
	for rows.Next() {
		var p entity.RoastingProfile
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.Name, &p.TemperatureCurve, &p.TargetDuration, &p.Notes,
			&p.CreatedBy, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan roasting profile: %w", err)
		}
		profiles = append(profiles, &p)
	}
	return profiles, rows.Err()
}

// Update reemplaza los campos editables del perfil.
func (r *RoastingProfileRepo) Update(p *entity.RoastingProfile) error {
	query := `
		UPDATE roasting_profiles
		SET name = $2, temperature_curve = $3, target_duration = $4, notes = $5, updated_at = $6
		WHERE id = $1`
	tag, err := r.db.Exec(context.Background(), query,
		p.ID, p.Name, p.TemperatureCurve, p.TargetDuration, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update roasting profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un perfil por id.
func (r *RoastingProfileRepo) Delete(id string) error {
	tag, err := r.db.Exec(context.Background(), `DELETE FROM roasting_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete roasting profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RoastingSessionRepo implementación del puerto RoastingSessionRepository.
// Las sesiones son inmutables: no hay update ni delete.
type RoastingSessionRepo struct {
	db querier
}

// NewRoastingSessionRepository construye el adaptador para sesiones de tueste.
func NewRoastingSessionRepository(db querier) *RoastingSessionRepo {
	return &RoastingSessionRepo{db: db}
}

const sessionColumns = `id, owner_id, green_bean_id, profile_id, green_bean_quantity,
	roasted_quantity, roast_date, roaster_id, batch_number, quality_score, notes, created_at`

// Create persiste una sesión de tueste.
func (r *RoastingSessionRepo) Create(s *entity.RoastingSession) error {
	query := `
		INSERT INTO roasting_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		s.ID, s.OwnerID, s.GreenBeanID, s.ProfileID, s.GreenBeanQuantity,
		s.RoastedQuantity, s.RoastDate, s.RoasterID, s.BatchNumber, s.QualityScore,
		s.Notes, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert roasting session: %w", err)
	}
	return nil
}

// GetByID obtiene una sesión por id. Devuelve (nil, nil) si no existe.
func (r *RoastingSessionRepo) GetByID(id string) (*entity.RoastingSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM roasting_sessions WHERE id = $1`
	var s entity.RoastingSession
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.OwnerID, &s.GreenBeanID, &s.ProfileID, &s.GreenBeanQuantity,
		&s.RoastedQuantity, &s.RoastDate, &s.RoasterID, &s.BatchNumber, &s.QualityScore,
		&s.Notes, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get roasting session: %w", err)
	}
	return &s, nil
}

// ListByOwner devuelve las sesiones del dueño, la más reciente primero.
func (r *RoastingSessionRepo) ListByOwner(ownerID string) ([]*entity.RoastingSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM roasting_sessions WHERE owner_id = $1 ORDER BY roast_date DESC`
	return r.list(query, ownerID)
}

// ListByGreenBean devuelve las sesiones que consumieron el lote dado.
func (r *RoastingSessionRepo) ListByGreenBean(greenBeanID string) ([]*entity.RoastingSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM roasting_sessions WHERE green_bean_id = $1 ORDER BY roast_date DESC`
	return r.list(query, greenBeanID)
}

func (r *RoastingSessionRepo) list(query string, arg any) ([]*entity.RoastingSession, error) {
	rows, err := r.db.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list roasting sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*entity.RoastingSession
	for rows.Next() {
		var s entity.RoastingSession
		if err := rows.Scan(
			&s.ID, &s.OwnerID, &s.GreenBeanID, &s.ProfileID, &s.GreenBeanQuantity,
			&s.RoastedQuantity, &s.RoastDate, &s.RoasterID, &s.BatchNumber, &s.QualityScore,
			&s.Notes, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan roasting session: %w", err)
		}
		sessions = append(sessions, &s)
	}
	return sessions, rows.Err()
}

// QualityScoreRepo implementación del puerto QualityScoreRepository.
type QualityScoreRepo struct {
	db querier
}

// NewQualityScoreRepository construye el adaptador para evaluaciones de calidad.
func NewQualityScoreRepository(db querier) *QualityScoreRepo {
	return &QualityScoreRepo{db: db}
}

const scoreColumns = `id, owner_id, roasting_session_id, appearance, aroma, flavor,
	acidity, body, overall, notes, evaluated_by, created_at`

// Create persiste una evaluación de calidad.
func (r *QualityScoreRepo) Create(q *entity.QualityScore) error {
	query := `
		INSERT INTO quality_scores (` + scoreColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		q.ID, q.OwnerID, q.RoastingSessionID, q.Appearance, q.Aroma, q.Flavor,
		q.Acidity, q.Body, q.Overall, q.Notes, q.EvaluatedBy, q.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quality score: %w", err)
	}
	return nil
}

// ListBySession devuelve las evaluaciones de una sesión.
func (r *QualityScoreRepo) ListBySession(sessionID string) ([]*entity.QualityScore, error) {
	query := `SELECT ` + scoreColumns + ` FROM quality_scores WHERE roasting_session_id = $1 ORDER BY created_at ASC`
	return r.list(query, sessionID)
}

// ListByOwner devuelve todas las evaluaciones del dueño.
func (r *QualityScoreRepo) ListByOwner(ownerID string) ([]*entity.QualityScore, error) {
	query := `SELECT ` + scoreColumns + ` FROM quality_scores WHERE owner_id = $1 ORDER BY created_at ASC`
	return r.list(query, ownerID)
}

func (r *QualityScoreRepo) list(query string, arg any) ([]*entity.QualityScore, error) {
	rows, err := r.db.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list quality scores: %w", err)
	}
	defer rows.Close()

	var scores []*entity.QualityScore
	for rows.Next() {
		var q entity.QualityScore
		if err := rows.Scan(
			&q.ID, &q.OwnerID, &q.RoastingSessionID, &q.Appearance, &q.Aroma, &q.Flavor,
			&q.Acidity, &q.Body, &q.Overall, &q.Notes, &q.EvaluatedBy, &q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quality score: %w", err)
		}
		scores = append(scores, &q)
	}
	return scores, rows.Err()
}
