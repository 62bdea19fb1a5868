package repositories

import (
	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/pkg/pagination"
)

// OrderFilter narrows order listings. Zero values mean "no filter".
type OrderFilter struct {
	ClientID   uint
	CategoryID uint
	Status     string
}

// OrderRepository handles database operations for Order.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

// FindByID looks up an order by primary key.
func (r *OrderRepository) FindByID(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.First(&order, id).Error
	return order, err
}

// FindByIDWithDetails loads an order with its client and category embedded.
func (r *OrderRepository) FindByIDWithDetails(id uint) (models.Order, error) {
	var order models.Order
	err := r.db.Preload("Client").Preload("Category").First(&order, id).Error
	return order, err
}

// Create persists a new order.
func (r *OrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

// Update persists changes to an existing order.
func (r *OrderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

// Delete hard-deletes an order by id.
func (r *OrderRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByClient counts orders referencing a client (delete-conflict check).
func (r *OrderRepository) CountByClient(clientID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Order{}).Where("client_id = ?", clientID).Count(&n).Error
	return n, err
}

// CountByCategory counts orders referencing a category (delete-conflict check).
func (r *OrderRepository) CountByCategory(categoryID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Order{}).Where("category_id = ?", categoryID).Count(&n).Error
	return n, err
}

// CountByPrice counts orders referencing a price tier (delete-conflict check).
func (r *OrderRepository) CountByPrice(priceID uint) (int64, error) {
	var n int64
	err := r.db.Model(&models.Order{}).Where("price_id = ?", priceID).Count(&n).Error
	return n, err
}

// All returns one stable page of orders matching the filter.
// withDetails additionally embeds each order's client and category.
func (r *OrderRepository) All(skip, limit int, filter OrderFilter, withDetails bool) ([]models.Order, pagination.Page, error) {
	skip, limit = pagination.Clamp(skip, limit)

	q := r.db.Model(&models.Order{})
	if filter.ClientID != 0 {
		q = q.Where("client_id = ?", filter.ClientID)
	}
	if filter.CategoryID != 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, pagination.Page{}, err
	}

	if withDetails {
		q = q.Preload("Client").Preload("Category")
	}

	var orders []models.Order
	err := q.Scopes(pagination.Scope(skip, limit)).Find(&orders).Error
	return orders, pagination.Page{Skip: skip, Limit: limit, Total: total}, err
}
