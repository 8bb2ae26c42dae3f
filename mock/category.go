package mock

import (
	"context"

	"github.com/jbartnik/refdeck"
)

var _ refdeck.CategoryService = (*CategoryService)(nil)

// CategoryService is a mock implementation of refdeck.CategoryService.
type CategoryService struct {
	ListCategoriesFn   func(ctx context.Context) ([]*refdeck.Category, error)
	FindCategoryByIDFn func(ctx context.Context, id string) (*refdeck.Category, error)
	CreateCategoryFn   func(ctx context.Context, category *refdeck.Category) error
	UpdateCategoryFn   func(ctx context.Context, id string, upd refdeck.CategoryUpdate) (*refdeck.Category, error)
	DeleteCategoryFn   func(ctx context.Context, id string) error
	PreviewCategoryFn  func(ctx context.Context, id string) (*refdeck.CategoryPreview, error)
	DiscoveredThemesFn func(ctx context.Context) ([]*refdeck.Theme, error)
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*refdeck.Category, error) {
	return s.ListCategoriesFn(ctx)
}

func (s *CategoryService) FindCategoryByID(ctx context.Context, id string) (*refdeck.Category, error) {
	return s.FindCategoryByIDFn(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, category *refdeck.Category) error {
	return s.CreateCategoryFn(ctx, category)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, upd refdeck.CategoryUpdate) (*refdeck.Category, error) {
	return s.UpdateCategoryFn(ctx, id, upd)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.DeleteCategoryFn(ctx, id)
}

func (s *CategoryService) PreviewCategory(ctx context.Context, id string) (*refdeck.CategoryPreview, error) {
	return s.PreviewCategoryFn(ctx, id)
}

func (s *CategoryService) DiscoveredThemes(ctx context.Context) ([]*refdeck.Theme, error) {
	return s.DiscoveredThemesFn(ctx)
}
