package service

import (
	"context"
	"strings"

	"myevent-api/core/cache"
	"myevent-api/core/constants"
	"myevent-api/core/errors"
	"myevent-api/core/logger"
	"myevent-api/core/validator"
	"myevent-api/modules/category/dto"
	"myevent-api/modules/category/repository"
)

type CategoryService struct {
	repo  repository.CategoryRepositoryInterface
	cache cache.Cache
}

func NewCategoryService(repo repository.CategoryRepositoryInterface, c cache.Cache) *CategoryService {
	return &CategoryService{repo: repo, cache: c}
}

// GetCategories reads through the cache. Cache failures fall back to the
// database.
func (s *CategoryService) GetCategories(ctx context.Context) ([]dto.CategoryResponse, *errors.AppError) {
	var cached []dto.CategoryResponse
	hit, err := s.cache.GetJSON(ctx, constants.RedisKeyCategories, &cached)
	if err != nil {
		logger.Warn("CategoryService:GetCategories:GetJSON:Error:", "error", err)
	}
	if hit {
		return cached, nil
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Error al obtener las categorías", err)
	}

	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}

	if err := s.cache.SetJSON(ctx, constants.RedisKeyCategories, out, constants.CategoryCacheTTL); err != nil {
		logger.Warn("CategoryService:GetCategories:SetJSON:Error:", "error", err)
	}
	return out, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, *errors.AppError) {
	name := strings.TrimSpace(req.Name)
	v := validator.New()
	v.LengthBetween(name, 2, 50,
		"El nombre de la categoría debe tener al menos 2 caracteres",
		"El nombre de la categoría no puede exceder 50 caracteres")
	if v.HasError() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, v.Message(), nil)
	}

	category, err := s.repo.Create(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "La categoría ya existe", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "No se pudo crear la categoría", err)
	}

	if err := s.cache.Del(ctx, constants.RedisKeyCategories); err != nil {
		logger.Warn("CategoryService:CreateCategory:Del:Error:", "error", err)
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}
