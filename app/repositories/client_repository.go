package repositories

import (
	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/pkg/pagination"
)

// ClientRepository handles database operations for Client.
type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *ClientRepository) WithTx(tx *gorm.DB) *ClientRepository {
	return &ClientRepository{db: tx}
}

// FindByID looks up a client by primary key.
func (r *ClientRepository) FindByID(id uint) (models.Client, error) {
	var client models.Client
	err := r.db.First(&client, id).Error
	return client, err
}

// FindByContactNumber looks up a client by exact contact number — the dedup
// key of the resolver.
func (r *ClientRepository) FindByContactNumber(contact string) (models.Client, error) {
	var client models.Client
	err := r.db.Where("contact_number = ?", contact).First(&client).Error
	return client, err
}

// Create persists a new client. A duplicate contact number surfaces as
// gorm.ErrDuplicatedKey (TranslateError is on), which the resolver treats
// as a lost race rather than a failure.
func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// Update persists changes to an existing client.
func (r *ClientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete hard-deletes a client by id. Returns gorm.ErrRecordNotFound when
// no row was removed.
func (r *ClientRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Client{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// All returns one stable page of clients plus page metadata.
func (r *ClientRepository) All(skip, limit int) ([]models.Client, pagination.Page, error) {
	skip, limit = pagination.Clamp(skip, limit)

	var total int64
	if err := r.db.Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, pagination.Page{}, err
	}

	var clients []models.Client
	err := r.db.Scopes(pagination.Scope(skip, limit)).Find(&clients).Error
	return clients, pagination.Page{Skip: skip, Limit: limit, Total: total}, err
}
