package repository

import (
	"context"
	"database/sql"
	"fmt"

	"myevent-api/core/database"
	coreEntity "myevent-api/core/entity"
	"myevent-api/core/logger"
	"myevent-api/core/params"
	"myevent-api/modules/comment/entity"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type CommentRepository struct {
	DB database.Database
	sb sq.StatementBuilderType
}

func NewCommentRepository(db database.Database) *CommentRepository {
	return &CommentRepository{
		DB: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

type CommentRepositoryInterface interface {
	Create(ctx context.Context, comment *entity.Comment) (*entity.CommentDetail, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*coreEntity.Pagination[entity.CommentDetail], error)
	React(ctx context.Context, id uuid.UUID, reaction entity.Reaction) (*entity.Comment, error)
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) (*entity.CommentDetail, error) {
	query := `
		WITH c AS (
			INSERT INTO event_comments (event_id, user_id, message, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id, event_id, user_id, message, likes, dislikes, created_at
		)
		SELECT c.*, u.full_name AS author_name, u.nickname AS author_nickname, u.image_url AS author_image_url
		FROM c JOIN users u ON u.id = c.user_id
	`

	var detail entity.CommentDetail
	err := r.DB.GetContext(ctx, &detail, query, comment.EventID, comment.UserID, comment.Message, comment.CreatedAt)
	if err != nil {
		logger.Error("CommentRepository:Create:Error:", err)
		return nil, err
	}
	return &detail, nil
}

func (r *CommentRepository) ListByEvent(ctx context.Context, eventID uuid.UUID, queryParams params.QueryParams) (*coreEntity.Pagination[entity.CommentDetail], error) {
	where := sq.Eq{"c.event_id": eventID}

	countQuery, countArgs, err := r.sb.Select("COUNT(*)").From("event_comments c").Where(where).ToSql()
	if err != nil {
		return nil, err
	}
	var total int
	if err := r.DB.GetContext(ctx, &total, countQuery, countArgs...); err != nil {
		logger.Error("CommentRepository:ListByEvent:Count:Error:", err)
		return nil, err
	}

	query, args, err := r.sb.Select(
		"c.id", "c.event_id", "c.user_id", "c.message", "c.likes", "c.dislikes", "c.created_at",
		"u.full_name AS author_name", "u.nickname AS author_nickname", "u.image_url AS author_image_url",
	).
		From("event_comments c").
		Join("users u ON u.id = c.user_id").
		Where(where).
		OrderBy("c.created_at DESC", "c.id DESC").
		Limit(uint64(queryParams.PageSize)).
		Offset(uint64(queryParams.Offset())).
		ToSql()
	if err != nil {
		return nil, err
	}

	items := []entity.CommentDetail{}
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		logger.Error("CommentRepository:ListByEvent:Select:Error:", err)
		return nil, err
	}

	return &coreEntity.Pagination[entity.CommentDetail]{
		Items:      items,
		TotalItems: total,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

// React increments the like or dislike counter atomically. It returns nil
// when the comment does not exist.
func (r *CommentRepository) React(ctx context.Context, id uuid.UUID, reaction entity.Reaction) (*entity.Comment, error) {
	column, err := reactionColumn(reaction)
	if err != nil {
		return nil, err
	}
	query := fmt.Sprintf(`
		UPDATE event_comments SET %[1]s = %[1]s + 1 WHERE id = $1
		RETURNING id, event_id, user_id, message, likes, dislikes, created_at
	`, column)

	var comment entity.Comment
	if err := r.DB.GetContext(ctx, &comment, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("CommentRepository:React:Error:", err)
		return nil, err
	}
	return &comment, nil
}

func reactionColumn(reaction entity.Reaction) (string, error) {
	switch reaction {
	case entity.ReactionLike:
		return "likes", nil
	case entity.ReactionDislike:
		return "dislikes", nil
	}
	return "", fmt.Errorf("unknown reaction %q", reaction)
}
