package repositories

import (
	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/pkg/pagination"
)

// CategoryRepository handles database operations for Category.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *CategoryRepository) WithTx(tx *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: tx}
}

// FindByID looks up a category by primary key.
func (r *CategoryRepository) FindByID(id uint) (models.Category, error) {
	var category models.Category
	err := r.db.First(&category, id).Error
	return category, err
}

// FindByName looks up a category by its unique name.
func (r *CategoryRepository) FindByName(name string) (models.Category, error) {
	var category models.Category
	err := r.db.Where("name = ?", name).First(&category).Error
	return category, err
}

// Create persists a new category. A duplicate name surfaces as
// gorm.ErrDuplicatedKey.
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update persists changes to an existing category.
func (r *CategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete hard-deletes a category by id.
func (r *CategoryRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// All returns one stable page of categories plus page metadata.
func (r *CategoryRepository) All(skip, limit int) ([]models.Category, pagination.Page, error) {
	skip, limit = pagination.Clamp(skip, limit)

	var total int64
	if err := r.db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, pagination.Page{}, err
	}

	var categories []models.Category
	err := r.db.Scopes(pagination.Scope(skip, limit)).Find(&categories).Error
	return categories, pagination.Page{Skip: skip, Limit: limit, Total: total}, err
}
