package repository

import (
	"context"
	"database/sql"
	"time"

	"myevent-api/core/database"
	"myevent-api/core/logger"
	"myevent-api/modules/invitation/entity"

	"github.com/google/uuid"
)

type InvitationRepositoryInterface interface {
	Create(ctx context.Context, invitation *entity.Invitation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InvitationDetail, error)
	GetLatestByEventAndInvitee(ctx context.Context, eventID, inviteeID uuid.UUID) (*entity.Invitation, error)
	GetPendingByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]entity.InvitationDetail, error)
	GetByInviteeID(ctx context.Context, inviteeID uuid.UUID) ([]entity.InvitationDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.InvitationStatus, at time.Time) (bool, error)
	CountPendingByOrganizerID(ctx context.Context, organizerID uuid.UUID) (int, error)
}

type InvitationRepository struct {
	db database.Database
}

func NewInvitationRepository(db database.Database) *InvitationRepository {
	return &InvitationRepository{db: db}
}

const invitationColumns = `i.id, i.event_id, i.organizer_id, i.invitee_id, i.status, i.message,
	i.invited_at, i.responded_at, i.updated_at`

const detailSelect = `
	SELECT ` + invitationColumns + `,
		e.title AS event_title, e.slug AS event_slug,
		u.full_name AS invitee_name, u.nickname AS invitee_nickname, u.image_url AS invitee_image_url
	FROM invitations i
	JOIN events e ON e.id = i.event_id
	JOIN users u ON u.id = i.invitee_id
`

func (r *InvitationRepository) Create(ctx context.Context, invitation *entity.Invitation) error {
	query := `
		INSERT INTO invitations (event_id, organizer_id, invitee_id, status, message, invited_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, updated_at
	`
	if invitation.Status == "" {
		invitation.Status = entity.StatusPending
	}

	row := r.db.QueryRowContext(ctx, query,
		invitation.EventID,
		invitation.OrganizerID,
		invitation.InviteeID,
		invitation.Status,
		invitation.Message,
		invitation.InvitedAt,
	)
	if err := row.Scan(&invitation.ID, &invitation.UpdatedAt); err != nil {
		logger.Error("InvitationRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *InvitationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InvitationDetail, error) {
	var detail entity.InvitationDetail
	err := r.db.GetContext(ctx, &detail, detailSelect+` WHERE i.id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("InvitationRepository:GetByID:Error:", err)
		return nil, err
	}
	return &detail, nil
}

// GetLatestByEventAndInvitee returns the most recent invitation for the pair,
// or nil when the user never asked to join.
func (r *InvitationRepository) GetLatestByEventAndInvitee(ctx context.Context, eventID, inviteeID uuid.UUID) (*entity.Invitation, error) {
	query := `
		SELECT ` + invitationColumns + `
		FROM invitations i
		WHERE i.event_id = $1 AND i.invitee_id = $2
		ORDER BY i.invited_at DESC
		LIMIT 1
	`
	var invitation entity.Invitation
	err := r.db.GetContext(ctx, &invitation, query, eventID, inviteeID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("InvitationRepository:GetLatestByEventAndInvitee:Error:", err)
		return nil, err
	}
	return &invitation, nil
}

func (r *InvitationRepository) GetPendingByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]entity.InvitationDetail, error) {
	query := detailSelect + ` WHERE i.organizer_id = $1 AND i.status = $2 ORDER BY i.invited_at DESC`

	items := []entity.InvitationDetail{}
	if err := r.db.SelectContext(ctx, &items, query, organizerID, entity.StatusPending); err != nil {
		logger.Error("InvitationRepository:GetPendingByOrganizerID:Error:", err)
		return nil, err
	}
	return items, nil
}

func (r *InvitationRepository) GetByInviteeID(ctx context.Context, inviteeID uuid.UUID) ([]entity.InvitationDetail, error) {
	query := detailSelect + ` WHERE i.invitee_id = $1 ORDER BY i.invited_at DESC`

	items := []entity.InvitationDetail{}
	if err := r.db.SelectContext(ctx, &items, query, inviteeID); err != nil {
		logger.Error("InvitationRepository:GetByInviteeID:Error:", err)
		return nil, err
	}
	return items, nil
}

// UpdateStatus moves an invitation from one status to another. It reports
// false when the invitation was no longer in status from.
func (r *InvitationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entity.InvitationStatus, at time.Time) (bool, error) {
	query := `
		UPDATE invitations
		SET status = $1, responded_at = $2, updated_at = $2
		WHERE id = $3 AND status = $4
	`
	res, err := r.db.SQLx().ExecContext(ctx, query, to, at, id, from)
	if err != nil {
		logger.Error("InvitationRepository:UpdateStatus:Error:", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *InvitationRepository) CountPendingByOrganizerID(ctx context.Context, organizerID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM invitations WHERE organizer_id = $1 AND status = $2`
	var count int
	if err := r.db.GetContext(ctx, &count, query, organizerID, entity.StatusPending); err != nil {
		logger.Error("InvitationRepository:CountPendingByOrganizerID:Error:", err)
		return 0, err
	}
	return count, nil
}
