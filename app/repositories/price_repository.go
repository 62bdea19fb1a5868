package repositories

import (
	"strings"

	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/pkg/pagination"
)

// PriceRepository handles database operations for Price.
type PriceRepository struct {
	db *gorm.DB
}

func NewPriceRepository(db *gorm.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *PriceRepository) WithTx(tx *gorm.DB) *PriceRepository {
	return &PriceRepository{db: tx}
}

// FindByID looks up a price tier by primary key.
func (r *PriceRepository) FindByID(id uint) (models.Price, error) {
	var price models.Price
	err := r.db.First(&price, id).Error
	return price, err
}

// FindByCategory returns the whole price book of a category, ordered by id.
// The resolver filters it in memory; it is also what the per-category cache
// stores.
func (r *PriceRepository) FindByCategory(categoryID uint) ([]models.Price, error) {
	var prices []models.Price
	err := r.db.Where("category_id = ?", categoryID).Order("id").Find(&prices).Error
	return prices, err
}

// Create persists a new price tier.
func (r *PriceRepository) Create(price *models.Price) error {
	return r.db.Create(price).Error
}

// Update persists changes to an existing price tier.
func (r *PriceRepository) Update(price *models.Price) error {
	return r.db.Save(price).Error
}

// Delete hard-deletes a price tier by id.
func (r *PriceRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Price{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByCategory counts tiers referencing a category (delete-conflict check).
func (r *PriceRepository) CountByCategory(categoryID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Price{}).Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}

// All returns one stable page of price tiers, optionally filtered by
// category and by a case-insensitive contains match on the type label.
func (r *PriceRepository) All(skip, limit int, categoryID uint, typeFilter string) ([]models.Price, pagination.Page, error) {
	skip, limit = pagination.Clamp(skip, limit)

	q := r.db.Model(&models.Price{})
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	if typeFilter != "" {
		q = q.Where("LOWER(type) LIKE ?", "%"+strings.ToLower(typeFilter)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Page{}, err
	}

	var prices []models.Price
	err := q.Scopes(pagination.Scope(skip, limit)).Find(&prices).Error
	return prices, pagination.Page{Skip: skip, Limit: limit, Total: total}, err
}
