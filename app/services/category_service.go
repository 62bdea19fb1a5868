package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/app/repositories"
	"github.com/washpoint/washpoint/config"
	"github.com/washpoint/washpoint/pkg/apperr"
	"github.com/washpoint/washpoint/pkg/cache"
	"github.com/washpoint/washpoint/pkg/pagination"
)

// CategoryService owns category CRUD. Single-category reads go through the
// cache because the order workflow validates a category on every request.
type CategoryService struct {
	categories *repositories.CategoryRepository
	prices     *repositories.PriceRepository
	orders     *repositories.OrderRepository
}

func NewCategoryService(
	categories *repositories.CategoryRepository,
	prices *repositories.PriceRepository,
	orders *repositories.OrderRepository,
) *CategoryService {
	return &CategoryService{categories: categories, prices: prices, orders: orders}
}

func categoryKey(id uint) string { return fmt.Sprintf("category:%d", id) }

type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,min=2,max=50"`
	Description string `json:"description" validate:"nullable,max=255"`
}

// UpdateCategoryInput is a partial patch; nil fields are left untouched.
type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"nullable,min=2,max=50"`
	Description *string `json:"description" validate:"nullable,max=255"`
}

func (s *CategoryService) List(skip, limit int) ([]models.Category, pagination.Page, error) {
	categories, page, err := s.categories.All(skip, limit)
	if err != nil {
		return nil, pagination.Page{}, apperr.Storage(err)
	}
	return categories, page, nil
}

func (s *CategoryService) Get(id uint) (models.Category, error) {
	var category models.Category
	if cache.Get(categoryKey(id), &category) {
		return category, nil
	}

	category, err := s.categories.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, apperr.NotFound("category", id)
	}
	if err != nil {
		return models.Category{}, apperr.Storage(err)
	}

	_ = cache.Set(categoryKey(id), category, config.CacheTTL())
	return category, nil
}

func (s *CategoryService) GetByName(name string) (models.Category, error) {
	category, err := s.categories.FindByName(name)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, apperr.NotFoundMsg(fmt.Sprintf("category %q not found", name))
	}
	if err != nil {
		return models.Category{}, apperr.Storage(err)
	}
	return category, nil
}

func (s *CategoryService) Create(in CreateCategoryInput) (models.Category, error) {
	category := models.Category{Name: in.Name, Description: in.Description}
	err := s.categories.Create(&category)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Category{}, apperr.Conflict(fmt.Sprintf("category %q already exists", in.Name))
	}
	if err != nil {
		return models.Category{}, apperr.Storage(err)
	}
	return category, nil
}

func (s *CategoryService) Update(id uint, in UpdateCategoryInput) (models.Category, error) {
	category, err := s.Get(id)
	if err != nil {
		return models.Category{}, err
	}

	if in.Name != nil {
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}

	err = s.categories.Update(&category)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Category{}, apperr.Conflict(fmt.Sprintf("category %q already exists", category.Name))
	}
	if err != nil {
		return models.Category{}, apperr.Storage(err)
	}

	_ = cache.Del(categoryKey(id))
	return category, nil
}

// Delete removes a category unless prices or orders still reference it.
func (s *CategoryService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	if n, err := s.prices.CountByCategory(id); err != nil {
		return apperr.Storage(err)
	} else if n > 0 {
		return apperr.Conflict(fmt.Sprintf("category %d is referenced by %d price tiers", id, n))
	}

	if n, err := s.orders.CountByCategory(id); err != nil {
		return apperr.Storage(err)
	} else if n > 0 {
		return apperr.Conflict(fmt.Sprintf("category %d is referenced by %d existing orders", id, n))
	}

	if err := s.categories.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("category", id)
		}
		return apperr.Storage(err)
	}

	_ = cache.Del(categoryKey(id))
	InvalidatePriceBook(id)
	return nil
}
