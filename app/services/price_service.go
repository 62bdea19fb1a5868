package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/app/repositories"
	"github.com/washpoint/washpoint/pkg/apperr"
	"github.com/washpoint/washpoint/pkg/pagination"
)

// PriceService owns price-tier CRUD. Every write invalidates the category's
// cached price book so the resolver never serves stale tiers longer than a
// single in-flight request.
type PriceService struct {
	prices     *repositories.PriceRepository
	categories *repositories.CategoryRepository
	orders     *repositories.OrderRepository
}

func NewPriceService(
	prices *repositories.PriceRepository,
	categories *repositories.CategoryRepository,
	orders *repositories.OrderRepository,
) *PriceService {
	return &PriceService{prices: prices, categories: categories, orders: orders}
}

type CreatePriceInput struct {
	Type       string          `json:"type" validate:"required,max=100"`
	WeightMin  float64         `json:"weight_min" validate:"nullable,gte=0"`
	WeightMax  float64         `json:"weight_max" validate:"required,gt=0"`
	Amount     decimal.Decimal `json:"amount"`
	CategoryID uint            `json:"category_id" validate:"required"`
}

// UpdatePriceInput is a partial patch; nil fields are left untouched.
type UpdatePriceInput struct {
	Type      *string          `json:"type" validate:"nullable,max=100"`
	WeightMin *float64         `json:"weight_min" validate:"nullable,gte=0"`
	WeightMax *float64         `json:"weight_max" validate:"nullable,gt=0"`
	Amount    *decimal.Decimal `json:"amount"`
}

func (s *PriceService) List(skip, limit int, categoryID uint, typeFilter string) ([]models.Price, pagination.Page, error) {
	prices, page, err := s.prices.All(skip, limit, categoryID, typeFilter)
	if err != nil {
		return nil, pagination.Page{}, apperr.Storage(err)
	}
	return prices, page, nil
}

func (s *PriceService) Get(id uint) (models.Price, error) {
	price, err := s.prices.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Price{}, apperr.NotFound("price", id)
	}
	if err != nil {
		return models.Price{}, apperr.Storage(err)
	}
	return price, nil
}

func (s *PriceService) Create(in CreatePriceInput) (models.Price, error) {
	if in.WeightMin > in.WeightMax {
		return models.Price{}, apperr.Validation("weight_min must not exceed weight_max")
	}
	if !in.Amount.IsPositive() {
		return models.Price{}, apperr.Validation("amount must be positive")
	}

	if _, err := s.categories.FindByID(in.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Price{}, apperr.NotFound("category", in.CategoryID)
		}
		return models.Price{}, apperr.Storage(err)
	}

	price := models.Price{
		Type:       in.Type,
		WeightMin:  in.WeightMin,
		WeightMax:  in.WeightMax,
		Amount:     in.Amount,
		CategoryID: in.CategoryID,
	}
	if err := s.prices.Create(&price); err != nil {
		return models.Price{}, apperr.Storage(err)
	}

	InvalidatePriceBook(price.CategoryID)
	return price, nil
}

func (s *PriceService) Update(id uint, in UpdatePriceInput) (models.Price, error) {
	price, err := s.Get(id)
	if err != nil {
		return models.Price{}, err
	}

	if in.Type != nil {
		price.Type = *in.Type
	}
	if in.WeightMin != nil {
		price.WeightMin = *in.WeightMin
	}
	if in.WeightMax != nil {
		price.WeightMax = *in.WeightMax
	}
	if in.Amount != nil {
		price.Amount = *in.Amount
	}

	if price.WeightMin > price.WeightMax {
		return models.Price{}, apperr.Validation("weight_min must not exceed weight_max")
	}
	if !price.Amount.IsPositive() {
		return models.Price{}, apperr.Validation("amount must be positive")
	}

	if err := s.prices.Update(&price); err != nil {
		return models.Price{}, apperr.Storage(err)
	}

	InvalidatePriceBook(price.CategoryID)
	return price, nil
}

// Delete removes a price tier unless orders still reference it.
func (s *PriceService) Delete(id uint) error {
	price, err := s.Get(id)
	if err != nil {
		return err
	}

	n, err := s.orders.CountByPrice(id)
	if err != nil {
		return apperr.Storage(err)
	}
	if n > 0 {
		return apperr.Conflict(fmt.Sprintf("price %d is referenced by %d existing orders", id, n))
	}

	if err := s.prices.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("price", id)
		}
		return apperr.Storage(err)
	}

	InvalidatePriceBook(price.CategoryID)
	return nil
}
