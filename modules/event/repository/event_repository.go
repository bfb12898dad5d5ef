package repository

import (
	"context"
	"database/sql"
	"time"

	"myevent-api/core/database"
	coreEntity "myevent-api/core/entity"
	"myevent-api/core/errors"
	"myevent-api/core/logger"
	"myevent-api/modules/event/entity"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicate is returned when a unique constraint rejects an insert.
var ErrDuplicate = errors.New("duplicate record")

const eventColumns = `e.id, e.title, e.short_description, e.long_description, e.date, e.time,
	e.visibility, e.location, e.latitude, e.longitude, e.city, e.district, e.map_url,
	e.resource_url, e.image_url, e.category_id, e.status, e.slug, e.created_at, e.updated_at`

type EventRepository struct {
	DB database.Database
	sb sq.StatementBuilderType
}

func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{
		DB: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type EventRepositoryInterface interface {
	CreateWithOrganizer(ctx context.Context, event *entity.Event, organizerID uuid.UUID) (*entity.Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetListItemByID(ctx context.Context, id uuid.UUID) (*entity.EventListItem, error)
	GetListItemBySlug(ctx context.Context, slug string) (*entity.EventListItem, error)
	Update(ctx context.Context, event *entity.Event) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) (bool, error)
	ExpireBefore(ctx context.Context, date time.Time) (int64, error)
	List(ctx context.Context, filter entity.EventFilter) (*coreEntity.Pagination[entity.EventListItem], error)
	ListByParticipant(ctx context.Context, userID uuid.UUID, roles []entity.ParticipationRole, status entity.EventStatus) ([]entity.EventListItem, error)
	ListSavedBy(ctx context.Context, userID uuid.UUID, status entity.EventStatus) ([]entity.EventListItem, error)
}

// CreateWithOrganizer inserts the event and its organizer participation in
// one transaction so an event never exists without an organizer.
func (r *EventRepository) CreateWithOrganizer(ctx context.Context, event *entity.Event, organizerID uuid.UUID) (*entity.Event, error) {
	eventQuery := `
		INSERT INTO events (title, short_description, long_description, date, time, visibility,
			location, latitude, longitude, city, district, map_url, resource_url, image_url,
			category_id, status, slug, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $18)
		RETURNING id, created_at, updated_at
	`
	participationQuery := `
		INSERT INTO participations (event_id, user_id, role, registered_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
	`

	created := *event
	err := r.DB.WithTx(ctx, func(tx *sqlx.Tx) error {
		row := tx.QueryRowxContext(ctx, eventQuery,
			event.Title, event.ShortDescription, event.LongDescription, event.Date, event.Time,
			event.Visibility, event.Location, event.Latitude, event.Longitude, event.City,
			event.District, event.MapURL, event.ResourceURL, event.ImageURL, event.CategoryID,
			event.Status, event.Slug, event.CreatedAt)
		if err := row.Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx, participationQuery, created.ID, organizerID, entity.RoleOrganizer, event.CreatedAt)
		return err
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		logger.Error("EventRepository:CreateWithOrganizer:Error:", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID:Error:", err)
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) GetListItemByID(ctx context.Context, id uuid.UUID) (*entity.EventListItem, error) {
	return r.getListItem(ctx, sq.Eq{"e.id": id})
}

func (r *EventRepository) GetListItemBySlug(ctx context.Context, slug string) (*entity.EventListItem, error) {
	return r.getListItem(ctx, sq.Eq{"e.slug": slug})
}

func (r *EventRepository) getListItem(ctx context.Context, where sq.Sqlizer) (*entity.EventListItem, error) {
	query, args, err := r.listSelect().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var item entity.EventListItem
	if err := r.DB.GetContext(ctx, &item, query, args...); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetListItem:Error:", err)
		return nil, err
	}
	return &item, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events SET
			title = :title, short_description = :short_description, long_description = :long_description,
			date = :date, time = :time, location = :location, latitude = :latitude, longitude = :longitude,
			city = :city, district = :district, map_url = :map_url, resource_url = :resource_url,
			image_url = :image_url, category_id = :category_id, updated_at = :updated_at
		WHERE id = :id
	`
	if _, err := r.DB.NamedExecContext(ctx, query, event); err != nil {
		logger.Error("EventRepository:Update:Error:", err)
		return err
	}
	return nil
}

// UpdateStatus reports false when no event has the given id.
func (r *EventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) (bool, error) {
	query := `UPDATE events SET status = $1, updated_at = NOW() WHERE id = $2`

	res, err := r.DB.SQLx().ExecContext(ctx, query, status, id)
	if err != nil {
		logger.Error("EventRepository:UpdateStatus:Error:", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ExpireBefore moves active events dated before date to vencido.
func (r *EventRepository) ExpireBefore(ctx context.Context, date time.Time) (int64, error) {
	query := `UPDATE events SET status = $1, updated_at = NOW() WHERE status = $2 AND date < $3`

	res, err := r.DB.SQLx().ExecContext(ctx, query, entity.EventStatusExpired, entity.EventStatusActive, date)
	if err != nil {
		logger.Error("EventRepository:ExpireBefore:Error:", err)
		return 0, err
	}
	return res.RowsAffected()
}

func (r *EventRepository) List(ctx context.Context, filter entity.EventFilter) (*coreEntity.Pagination[entity.EventListItem], error) {
	where := filterConditions(filter)

	countQuery, countArgs, err := r.sb.Select("COUNT(*)").From("events e").Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	var total int
	if err := r.DB.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		logger.Error("EventRepository:List:Count:Error:", err)
		return nil, err
	}

	query, args, err := r.listSelect().
		Where(where).
		OrderBy("e.created_at DESC", "e.id DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.PageNumber - 1) * filter.PageSize)).
		ToSql()
	if err != nil {
		return nil, err
	}

	items := []entity.EventListItem{}
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		logger.Error("EventRepository:List:Select:Error:", err)
		return nil, err
	}

	return &coreEntity.Pagination[entity.EventListItem]{
		Items:      items,
		TotalItems: total,
		PageNumber: filter.PageNumber,
		PageSize:   filter.PageSize,
	}, nil
}

// ListByParticipant returns events where the user holds one of roles. An
// empty status returns events in any status.
func (r *EventRepository) ListByParticipant(ctx context.Context, userID uuid.UUID, roles []entity.ParticipationRole, status entity.EventStatus) ([]entity.EventListItem, error) {
	roleValues := make([]string, 0, len(roles))
	for _, role := range roles {
		roleValues = append(roleValues, string(role))
	}

	b := r.listSelect().
		Join("participations me ON me.event_id = e.id").
		Where(sq.Eq{"me.user_id": userID, "me.role": roleValues}).
		OrderBy("e.date ASC", "e.id DESC")
	if status != "" {
		b = b.Where(sq.Eq{"e.status": status})
	}
	return r.selectItems(ctx, b, "ListByParticipant")
}

func (r *EventRepository) ListSavedBy(ctx context.Context, userID uuid.UUID, status entity.EventStatus) ([]entity.EventListItem, error) {
	b := r.listSelect().
		Join("saved_events s ON s.event_id = e.id").
		Where(sq.Eq{"s.user_id": userID}).
		OrderBy("s.saved_at DESC")
	if status != "" {
		b = b.Where(sq.Eq{"e.status": status})
	}
	return r.selectItems(ctx, b, "ListSavedBy")
}

func (r *EventRepository) selectItems(ctx context.Context, b sq.SelectBuilder, op string) ([]entity.EventListItem, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	items := []entity.EventListItem{}
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		logger.Error("EventRepository:"+op+":Error:", err)
		return nil, err
	}
	return items, nil
}

// listSelect joins the organizer, category and attendee count onto events.
func (r *EventRepository) listSelect() sq.SelectBuilder {
	return r.sb.Select(
		eventColumns,
		"o.user_id AS organizer_id",
		"u.full_name AS organizer_name",
		"u.nickname AS organizer_nickname",
		"u.image_url AS organizer_image_url",
		"c.name AS category_name",
		"(SELECT COUNT(*) FROM participations pa WHERE pa.event_id = e.id AND pa.role = 'asistente') AS attendee_count",
	).
		From("events e").
		LeftJoin("participations o ON o.event_id = e.id AND o.role = 'organizador'").
		LeftJoin("users u ON u.id = o.user_id").
		LeftJoin("categories c ON c.id = e.category_id")
}

func filterConditions(f entity.EventFilter) sq.And {
	where := sq.And{}
	if f.Visibility != "" {
		where = append(where, sq.Eq{"e.visibility": f.Visibility})
	}
	if f.Status != "" {
		where = append(where, sq.Eq{"e.status": f.Status})
	}
	if f.CategoryID != nil {
		where = append(where, sq.Eq{"e.category_id": *f.CategoryID})
	}
	if f.City != "" {
		where = append(where, sq.ILike{"e.city": f.City})
	}
	if f.District != "" {
		where = append(where, sq.ILike{"e.district": f.District})
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"e.title": pattern},
			sq.ILike{"e.short_description": pattern},
			sq.ILike{"e.location": pattern},
		})
	}
	if f.From != nil {
		where = append(where, sq.GtOrEq{"e.date": *f.From})
	}
	if f.To != nil {
		where = append(where, sq.LtOrEq{"e.date": *f.To})
	}
	return where
}
