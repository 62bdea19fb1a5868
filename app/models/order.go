package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses. Creation is the only lifecycle event the system models;
// updates are free-form field patches with no enforced transitions.
const OrderStatusCreated = "created"

// Order is a laundry drop-off. PriceID is nil when the operator keyed in a
// custom amount instead of resolving a tier. Reference is an opaque code
// printed on the claim stub; the numeric ID stays the identity.
type Order struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Reference  string          `gorm:"size:36;uniqueIndex" json:"reference"`
	ClientID   uint            `gorm:"not null;index" json:"client_id"`
	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	TypeName   string          `gorm:"size:100;not null" json:"type_name"`
	Weight     float64         `gorm:"not null" json:"weight"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PriceID    *uint           `gorm:"index" json:"price_id"`
	Status     string          `gorm:"size:20;not null;default:created" json:"status"`
	Notes      string          `gorm:"size:500" json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// Loaded only by the "with details" reads and the integrated workflow's
	// composite response.
	Client   *Client   `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
