package repository

import (
	"context"

	"myevent-api/core/database"
	"myevent-api/core/errors"
	"myevent-api/core/logger"
	"myevent-api/modules/category/entity"
)

var ErrDuplicateName = errors.New("category name already exists")

type CategoryRepository struct {
	DB database.Database
}

func NewCategoryRepository(db database.Database) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

type CategoryRepositoryInterface interface {
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, name string) (*entity.Category, error)
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	query := `SELECT id, name, created_at, updated_at FROM categories ORDER BY name ASC`

	categories := []entity.Category{}
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		logger.Error("CategoryRepository:List:Error:", err)
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (*entity.Category, error) {
	query := `INSERT INTO categories (name) VALUES ($1) RETURNING id, name, created_at, updated_at`

	var category entity.Category
	if err := r.DB.GetContext(ctx, &category, query, name); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateName
		}
		logger.Error("CategoryRepository:Create:Error:", err)
		return nil, err
	}
	return &category, nil
}
