package service

import (
	"context"
	"testing"
	"time"

	"myevent-api/core/cache"
	"myevent-api/core/errors"
	"myevent-api/modules/category/dto"
	"myevent-api/modules/category/entity"
	"myevent-api/modules/category/repository"

	"github.com/google/uuid"
)

type fakeRepo struct {
	categories []entity.Category
	listCalls  int
}

func (r *fakeRepo) List(_ context.Context) ([]entity.Category, error) {
	r.listCalls++
	return append([]entity.Category(nil), r.categories...), nil
}

func (r *fakeRepo) Create(_ context.Context, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return nil, repository.ErrDuplicateName
		}
	}
	c := entity.Category{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	r.categories = append(r.categories, c)
	return &c, nil
}

func TestGetCategoriesUsesCache(t *testing.T) {
	repo := &fakeRepo{categories: []entity.Category{{ID: uuid.New(), Name: "Música"}}}
	svc := NewCategoryService(repo, cache.NewMemoryCache(nil))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, appErr := svc.GetCategories(ctx)
		if appErr != nil {
			t.Fatal(appErr)
		}
		if len(got) != 1 || got[0].Name != "Música" {
			t.Fatalf("categories = %+v", got)
		}
	}
	if repo.listCalls != 1 {
		t.Errorf("repository hit %d times, want 1", repo.listCalls)
	}
}

func TestCreateCategoryInvalidatesCache(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewCategoryService(repo, cache.NewMemoryCache(nil))
	ctx := context.Background()

	if got, _ := svc.GetCategories(ctx); len(got) != 0 {
		t.Fatalf("categories = %+v", got)
	}
	if _, appErr := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: " Deportes "}); appErr != nil {
		t.Fatal(appErr)
	}
	got, _ := svc.GetCategories(ctx)
	if len(got) != 1 || got[0].Name != "Deportes" {
		t.Fatalf("after create: %+v", got)
	}

	tests := []struct {
		name string
		in   string
		code errors.ErrorCode
	}{
		{"duplicate", "Deportes", errors.ErrAlreadyExists},
		{"too short", "x", errors.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, appErr := svc.CreateCategory(ctx, &dto.CreateCategoryRequest{Name: tt.in})
			if appErr == nil || appErr.Code != tt.code {
				t.Fatalf("got %v, want %s", appErr, tt.code)
			}
		})
	}
}
