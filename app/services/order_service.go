package services

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/app/repositories"
	"github.com/washpoint/washpoint/pkg/apperr"
	"github.com/washpoint/washpoint/pkg/logger"
	"github.com/washpoint/washpoint/pkg/metrics"
	"github.com/washpoint/washpoint/pkg/pagination"
)

// ErrInvalidCustomAmount — a custom-priced order arrived without a positive
// manual amount. Wrapped in an apperr.KindPriceUnresolvable error.
var ErrInvalidCustomAmount = errors.New("custom amount must be positive")

// OrderService owns order CRUD and the integrated order workflow that ties
// client resolution, category validation and price resolution into one
// order-creation operation.
type OrderService struct {
	db         *gorm.DB
	orders     *repositories.OrderRepository
	clients    *repositories.ClientRepository
	categories *repositories.CategoryRepository
	pricing    *PricingService
	clientSvc  *ClientService
	catSvc     *CategoryService
}

func NewOrderService(
	db *gorm.DB,
	orders *repositories.OrderRepository,
	clients *repositories.ClientRepository,
	categories *repositories.CategoryRepository,
	pricing *PricingService,
	clientSvc *ClientService,
	catSvc *CategoryService,
) *OrderService {
	return &OrderService{
		db:         db,
		orders:     orders,
		clients:    clients,
		categories: categories,
		pricing:    pricing,
		clientSvc:  clientSvc,
		catSvc:     catSvc,
	}
}

// ─── Integrated workflow ──────────────────────────────────────────────────────

// IntegratedOrderInput is the typed form of a counter drop-off: who the
// client is, what is being washed, and how it is priced.
type IntegratedOrderInput struct {
	ClientName    string
	ClientContact string
	ClientAddress string
	CategoryID    uint
	TypeName      string
	Weight        float64
	Pricing       PricingMode
	Notes         string
}

// PricingDetail explains how the order's amount was determined.
type PricingDetail struct {
	Mode     string          `json:"mode"` // "predefined" | "custom"
	TypeName string          `json:"type_name"`
	Weight   float64         `json:"weight"`
	PriceID  *uint           `json:"price_id,omitempty"`
	Amount   decimal.Decimal `json:"amount"`
}

// IntegratedOrderView is the composite response of the integrated workflow:
// the persisted order with its client and category embedded, plus the
// pricing breakdown.
type IntegratedOrderView struct {
	Order   models.Order  `json:"order"`
	Pricing PricingDetail `json:"pricing"`
}

// CreateIntegrated runs the full order workflow:
//
//  1. Validate the category exists — terminal failure, ordered BEFORE client
//     resolution so an unknown category leaves no trace at all.
//  2. Resolve or create the client by contact number. This write commits on
//     its own: a newly onboarded client is kept even if pricing fails below,
//     but the caller is still told the order was not created.
//  3. Determine the amount. Custom mode uses the manual amount (must be
//     positive) and records no price reference. Predefined mode resolves a
//     tier; when the request carried both, predefined pricing already won at
//     the transport boundary — a manual amount next to a real type label is
//     ignored, never silently preferred.
//  4. Persist the order inside one transaction, re-asserting the category
//     still exists so a concurrent delete cannot leave a dangling reference.
//  5. Read the order back with client and category embedded.
func (s *OrderService) CreateIntegrated(in IntegratedOrderInput) (IntegratedOrderView, error) {
	if _, err := s.catSvc.Get(in.CategoryID); err != nil {
		return IntegratedOrderView{}, err
	}

	client, err := s.clientSvc.Resolve(in.ClientName, in.ClientContact, in.ClientAddress)
	if err != nil {
		return IntegratedOrderView{}, err
	}

	var (
		amount  decimal.Decimal
		priceID *uint
		mode    = "predefined"
	)
	if in.Pricing.IsCustom() {
		if !in.Pricing.Amount().IsPositive() {
			return IntegratedOrderView{}, apperr.PriceUnresolvable(
				"unable to determine price: custom amount must be positive", ErrInvalidCustomAmount)
		}
		amount = in.Pricing.Amount()
		mode = "custom"
	} else {
		price, err := s.pricing.Resolve(in.CategoryID, in.TypeName, in.Weight)
		if err != nil {
			return IntegratedOrderView{}, err
		}
		amount = price.Amount
		id := price.ID
		priceID = &id
	}

	order := models.Order{
		Reference:  uuid.NewString(),
		ClientID:   client.ID,
		CategoryID: in.CategoryID,
		TypeName:   in.TypeName,
		Weight:     in.Weight,
		Amount:     amount,
		PriceID:    priceID,
		Status:     models.OrderStatusCreated,
		Notes:      in.Notes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.categories.WithTx(tx).FindByID(in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("category", in.CategoryID)
			}
			return apperr.Storage(err)
		}
		if err := s.orders.WithTx(tx).Create(&order); err != nil {
			return apperr.Storage(err)
		}
		return nil
	})
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return IntegratedOrderView{}, ae
		}
		return IntegratedOrderView{}, apperr.Storage(err)
	}

	metrics.OrdersCreated.WithLabelValues(mode).Inc()
	logger.Info("integrated order created",
		"order_id", order.ID,
		"reference", order.Reference,
		"client_id", client.ID,
		"category_id", in.CategoryID,
		"mode", mode,
		"amount", amount.String(),
	)

	full, err := s.orders.FindByIDWithDetails(order.ID)
	if err != nil {
		return IntegratedOrderView{}, apperr.Storage(err)
	}

	return IntegratedOrderView{
		Order: full,
		Pricing: PricingDetail{
			Mode:     mode,
			TypeName: in.TypeName,
			Weight:   in.Weight,
			PriceID:  priceID,
			Amount:   amount,
		},
	}, nil
}

// ─── CRUD ─────────────────────────────────────────────────────────────────────

// CreateOrderInput is the plain create path: resolution is bypassed, so every
// field arrives already resolved and the referenced rows must exist.
type CreateOrderInput struct {
	ClientID   uint            `json:"client_id" validate:"required"`
	CategoryID uint            `json:"category_id" validate:"required"`
	TypeName   string          `json:"type_name" validate:"required,max=100"`
	Weight     float64         `json:"weight" validate:"nullable,gte=0"`
	Amount     decimal.Decimal `json:"amount"`
	PriceID    *uint           `json:"price_id"`
	Notes      string          `json:"notes" validate:"nullable,max=500"`
}

// UpdateOrderInput is a partial patch; nil fields are left untouched.
// Status is free-form within the known set; no transitions are enforced.
type UpdateOrderInput struct {
	ClientID   *uint            `json:"client_id"`
	CategoryID *uint            `json:"category_id"`
	TypeName   *string          `json:"type_name" validate:"nullable,max=100"`
	Weight     *float64         `json:"weight" validate:"nullable,gte=0"`
	Amount     *decimal.Decimal `json:"amount"`
	Status     *string          `json:"status" validate:"nullable,max=20"`
	Notes      *string          `json:"notes" validate:"nullable,max=500"`
}

func (s *OrderService) List(skip, limit int, filter repositories.OrderFilter, withDetails bool) ([]models.Order, pagination.Page, error) {
	orders, page, err := s.orders.All(skip, limit, filter, withDetails)
	if err != nil {
		return nil, pagination.Page{}, apperr.Storage(err)
	}
	return orders, page, nil
}

func (s *OrderService) Get(id uint, withDetails bool) (models.Order, error) {
	var (
		order models.Order
		err   error
	)
	if withDetails {
		order, err = s.orders.FindByIDWithDetails(id)
	} else {
		order, err = s.orders.FindByID(id)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, apperr.NotFound("order", id)
	}
	if err != nil {
		return models.Order{}, apperr.Storage(err)
	}
	return order, nil
}

// Create is the plain CRUD insert. It validates both references and writes
// the row in one transaction, but performs no resolution.
func (s *OrderService) Create(in CreateOrderInput) (models.Order, error) {
	if !in.Amount.IsPositive() {
		return models.Order{}, apperr.Validation("amount must be positive")
	}

	order := models.Order{
		Reference:  uuid.NewString(),
		ClientID:   in.ClientID,
		CategoryID: in.CategoryID,
		TypeName:   in.TypeName,
		Weight:     in.Weight,
		Amount:     in.Amount,
		PriceID:    in.PriceID,
		Status:     models.OrderStatusCreated,
		Notes:      in.Notes,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.clients.WithTx(tx).FindByID(in.ClientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("client", in.ClientID)
			}
			return apperr.Storage(err)
		}
		if _, err := s.categories.WithTx(tx).FindByID(in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("category", in.CategoryID)
			}
			return apperr.Storage(err)
		}
		if err := s.orders.WithTx(tx).Create(&order); err != nil {
			return apperr.Storage(err)
		}
		return nil
	})
	if err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) {
			return models.Order{}, ae
		}
		return models.Order{}, apperr.Storage(err)
	}

	return order, nil
}

func (s *OrderService) Update(id uint, in UpdateOrderInput) (models.Order, error) {
	order, err := s.Get(id, false)
	if err != nil {
		return models.Order{}, err
	}

	if in.ClientID != nil {
		if _, err := s.clients.FindByID(*in.ClientID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Order{}, apperr.NotFound("client", *in.ClientID)
			}
			return models.Order{}, apperr.Storage(err)
		}
		order.ClientID = *in.ClientID
	}
	if in.CategoryID != nil {
		if _, err := s.categories.FindByID(*in.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Order{}, apperr.NotFound("category", *in.CategoryID)
			}
			return models.Order{}, apperr.Storage(err)
		}
		order.CategoryID = *in.CategoryID
	}
	if in.TypeName != nil {
		order.TypeName = *in.TypeName
	}
	if in.Weight != nil {
		order.Weight = *in.Weight
	}
	if in.Amount != nil {
		if !in.Amount.IsPositive() {
			return models.Order{}, apperr.Validation("amount must be positive")
		}
		order.Amount = *in.Amount
	}
	if in.Status != nil {
		order.Status = *in.Status
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}

	if err := s.orders.Update(&order); err != nil {
		return models.Order{}, apperr.Storage(err)
	}
	return order, nil
}

func (s *OrderService) Delete(id uint) error {
	if err := s.orders.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("order", id)
		}
		return apperr.Storage(err)
	}
	return nil
}
