package repository

import (
	"context"
	"time"

	"myevent-api/core/database"
	"myevent-api/core/errors"
	"myevent-api/core/logger"

	"github.com/google/uuid"
)

// ErrAlreadySaved is returned when the user has already saved the event.
var ErrAlreadySaved = errors.New("event already saved")

type SavedEventRepository struct {
	DB database.Database
}

func NewSavedEventRepository(db database.Database) *SavedEventRepository {
	return &SavedEventRepository{DB: db}
}

type SavedEventRepositoryInterface interface {
	Save(ctx context.Context, userID, eventID uuid.UUID, at time.Time) error
	Remove(ctx context.Context, userID, eventID uuid.UUID) (bool, error)
}

func (r *SavedEventRepository) Save(ctx context.Context, userID, eventID uuid.UUID, at time.Time) error {
	query := `INSERT INTO saved_events (user_id, event_id, saved_at) VALUES ($1, $2, $3)`
	if err := r.DB.ExecContext(ctx, query, userID, eventID, at); err != nil {
		if database.IsUniqueViolation(err) {
			return ErrAlreadySaved
		}
		logger.Error("SavedEventRepository:Save:Error:", err)
		return err
	}
	return nil
}

// Remove reports false when nothing was saved.
func (r *SavedEventRepository) Remove(ctx context.Context, userID, eventID uuid.UUID) (bool, error) {
	query := `DELETE FROM saved_events WHERE user_id = $1 AND event_id = $2`
	res, err := r.DB.SQLx().ExecContext(ctx, query, userID, eventID)
	if err != nil {
		logger.Error("SavedEventRepository:Remove:Error:", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
