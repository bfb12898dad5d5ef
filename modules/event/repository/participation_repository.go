package repository

import (
	"context"
	"database/sql"

	"myevent-api/core/database"
	"myevent-api/core/logger"
	"myevent-api/modules/event/entity"

	"github.com/google/uuid"
)

type ParticipationRepository struct {
	DB database.Database
}

func NewParticipationRepository(db database.Database) *ParticipationRepository {
	return &ParticipationRepository{DB: db}
}

type ParticipationRepositoryInterface interface {
	Create(ctx context.Context, p *entity.Participation) error
	GetByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) ([]entity.Participation, error)
	GetOrganizer(ctx context.Context, eventID uuid.UUID) (*entity.Participation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Create returns ErrDuplicate when the user already participates in the event.
func (r *ParticipationRepository) Create(ctx context.Context, p *entity.Participation) error {
	query := `
		INSERT INTO participations (event_id, user_id, role, registered_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, p.EventID, p.UserID, p.Role, p.RegisteredAt).Scan(&p.ID)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return ErrDuplicate
		}
		logger.Error("ParticipationRepository:Create:Error:", err)
		return err
	}
	p.UpdatedAt = p.RegisteredAt
	return nil
}

func (r *ParticipationRepository) GetByEventAndUser(ctx context.Context, eventID, userID uuid.UUID) ([]entity.Participation, error) {
	query := `
		SELECT id, event_id, user_id, role, registered_at, updated_at
		FROM participations
		WHERE event_id = $1 AND user_id = $2
		ORDER BY registered_at ASC
	`
	participations := []entity.Participation{}
	if err := r.DB.SelectContext(ctx, &participations, query, eventID, userID); err != nil {
		logger.Error("ParticipationRepository:GetByEventAndUser:Error:", err)
		return nil, err
	}
	return participations, nil
}

func (r *ParticipationRepository) GetOrganizer(ctx context.Context, eventID uuid.UUID) (*entity.Participation, error) {
	query := `
		SELECT id, event_id, user_id, role, registered_at, updated_at
		FROM participations
		WHERE event_id = $1 AND role = $2
		LIMIT 1
	`
	var p entity.Participation
	if err := r.DB.GetContext(ctx, &p, query, eventID, entity.RoleOrganizer); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ParticipationRepository:GetOrganizer:Error:", err)
		return nil, err
	}
	return &p, nil
}

func (r *ParticipationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM participations WHERE id = $1`, id); err != nil {
		logger.Error("ParticipationRepository:Delete:Error:", err)
		return err
	}
	return nil
}
