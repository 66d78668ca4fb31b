package service

import (
	"context"

	"github.com/MKhiriev/go-fundraiser/internal/logger"
	"github.com/MKhiriev/go-fundraiser/internal/store"
	"github.com/MKhiriev/go-fundraiser/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		logger:             logger,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error) {
	return s.categoryRepository.CreateCategory(ctx, models.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (models.Category, error) {
	return s.categoryRepository.FindCategoryByID(ctx, id)
}

func (s *categoryService) ListCategories(ctx context.Context, page models.Pagination) (models.Page[models.Category], error) {
	page = page.Normalize()

	items, total, err := s.categoryRepository.ListCategories(ctx, page)
	if err != nil {
		return models.Page[models.Category]{}, err
	}

	return models.NewPage(items, total, page.Page, page.Limit), nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req models.CategoryRequest) (models.Category, error) {
	return s.categoryRepository.UpdateCategory(ctx, models.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.categoryRepository.DeleteCategory(ctx, id)
}
