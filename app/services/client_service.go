package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/app/repositories"
	"github.com/washpoint/washpoint/pkg/apperr"
	"github.com/washpoint/washpoint/pkg/metrics"
	"github.com/washpoint/washpoint/pkg/pagination"
)

// ClientService owns client CRUD and the create-or-fetch resolver used by
// the integrated order workflow.
type ClientService struct {
	clients *repositories.ClientRepository
	orders  *repositories.OrderRepository
}

func NewClientService(clients *repositories.ClientRepository, orders *repositories.OrderRepository) *ClientService {
	return &ClientService{clients: clients, orders: orders}
}

// Resolve returns the client with the given contact number, creating one
// when absent. The record on file wins: name and address from the request
// never overwrite an existing client, so a counter re-entry cannot silently
// clobber data.
//
// Two requests racing on the same new contact number cannot both insert —
// the unique index stops the loser, whose insert comes back as
// gorm.ErrDuplicatedKey. That is not a failure: the row now exists, so we
// re-read once and return it.
func (s *ClientService) Resolve(name, contact, address string) (models.Client, error) {
	client, err := s.clients.FindByContactNumber(contact)
	if err == nil {
		metrics.ClientResolutions.WithLabelValues("found").Inc()
		return client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Client{}, apperr.Storage(err)
	}

	fresh := models.Client{Name: name, ContactNumber: contact, Address: address}
	err = s.clients.Create(&fresh)
	if err == nil {
		metrics.ClientResolutions.WithLabelValues("created").Inc()
		return fresh, nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		client, err = s.clients.FindByContactNumber(contact)
		if err != nil {
			return models.Client{}, apperr.Storage(fmt.Errorf("re-read after duplicate insert: %w", err))
		}
		metrics.ClientResolutions.WithLabelValues("race_recovered").Inc()
		return client, nil
	}

	return models.Client{}, apperr.Storage(err)
}

// ─── CRUD ─────────────────────────────────────────────────────────────────────

type CreateClientInput struct {
	Name          string `json:"name" validate:"required,min=2,max=100"`
	ContactNumber string `json:"contact_number" validate:"required,min=7,max=20"`
	Address       string `json:"address" validate:"required,max=255"`
}

// UpdateClientInput is a partial patch; nil fields are left untouched.
type UpdateClientInput struct {
	Name          *string `json:"name" validate:"nullable,min=2,max=100"`
	ContactNumber *string `json:"contact_number" validate:"nullable,min=7,max=20"`
	Address       *string `json:"address" validate:"nullable,max=255"`
}

func (s *ClientService) List(skip, limit int) ([]models.Client, pagination.Page, error) {
	clients, page, err := s.clients.All(skip, limit)
	if err != nil {
		return nil, pagination.Page{}, apperr.Storage(err)
	}
	return clients, page, nil
}

func (s *ClientService) Get(id uint) (models.Client, error) {
	client, err := s.clients.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Client{}, apperr.NotFound("client", id)
	}
	if err != nil {
		return models.Client{}, apperr.Storage(err)
	}
	return client, nil
}

func (s *ClientService) Create(in CreateClientInput) (models.Client, error) {
	client := models.Client{
		Name:          in.Name,
		ContactNumber: in.ContactNumber,
		Address:       in.Address,
	}
	err := s.clients.Create(&client)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Client{}, apperr.Conflict(
			fmt.Sprintf("client with contact number %q already exists", in.ContactNumber))
	}
	if err != nil {
		return models.Client{}, apperr.Storage(err)
	}
	return client, nil
}

func (s *ClientService) Update(id uint, in UpdateClientInput) (models.Client, error) {
	client, err := s.Get(id)
	if err != nil {
		return models.Client{}, err
	}

	if in.Name != nil {
		client.Name = *in.Name
	}
	if in.ContactNumber != nil {
		client.ContactNumber = *in.ContactNumber
	}
	if in.Address != nil {
		client.Address = *in.Address
	}

	err = s.clients.Update(&client)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return models.Client{}, apperr.Conflict(
			fmt.Sprintf("client with contact number %q already exists", client.ContactNumber))
	}
	if err != nil {
		return models.Client{}, apperr.Storage(err)
	}
	return client, nil
}

// Delete removes a client unless orders still reference it.
func (s *ClientService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	n, err := s.orders.CountByClient(id)
	if err != nil {
		return apperr.Storage(err)
	}
	if n > 0 {
		return apperr.Conflict(fmt.Sprintf("client %d is referenced by %d existing orders", id, n))
	}

	if err := s.clients.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("client", id)
		}
		return apperr.Storage(err)
	}
	return nil
}
