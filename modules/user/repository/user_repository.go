package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"myevent-api/core/database"
	"myevent-api/core/errors"
	"myevent-api/core/logger"
	"myevent-api/modules/user/entity"

	"github.com/google/uuid"
)

// ErrDuplicateEmail is returned when the email is already registered.
var ErrDuplicateEmail = errors.New("email already registered")

// UserRepository handles persistence of user accounts
type UserRepository struct {
	DB database.Database
}

func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{DB: db}
}

type UserRepositoryInterface interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, user *entity.User) error
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL *string, at time.Time) error
	DeactivateUser(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

const userColumns = `id, full_name, email, password_hash, nickname, role, image_url, active, registered_at, updated_at`

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (full_name, email, password_hash, nickname, role, active, registered_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING ` + userColumns

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query,
		user.FullName, strings.ToLower(user.Email), user.PasswordHash, user.Nickname,
		user.Role, user.Active, user.RegisteredAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		logger.Error("UserRepository:CreateUser:Error:", err)
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	var user entity.User
	err := r.DB.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users `+where, arg)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("UserRepository:GetUser:Error:", err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET full_name = :full_name, nickname = :nickname, updated_at = :updated_at
		WHERE id = :id
	`
	if _, err := r.DB.NamedExecContext(ctx, query, user); err != nil {
		logger.Error("UserRepository:UpdateProfile:Error:", err)
		return err
	}
	return nil
}

func (r *UserRepository) UpdateImage(ctx context.Context, id uuid.UUID, imageURL *string, at time.Time) error {
	query := `UPDATE users SET image_url = $1, updated_at = $2 WHERE id = $3`
	if err := r.DB.ExecContext(ctx, query, imageURL, at, id); err != nil {
		logger.Error("UserRepository:UpdateImage:Error:", err)
		return err
	}
	return nil
}

// DeactivateUser closes the account. The row is kept so the events the user
// organized keep their organizer.
func (r *UserRepository) DeactivateUser(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	query := `UPDATE users SET active = FALSE, image_url = NULL, updated_at = $2 WHERE id = $1 AND active`
	res, err := r.DB.SQLx().ExecContext(ctx, query, id, at)
	if err != nil {
		logger.Error("UserRepository:DeactivateUser:Error:", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
