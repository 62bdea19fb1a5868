package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is one weight tier of a category's price book: orders of the given
// type weighing between WeightMin and WeightMax (both inclusive) cost
// Amount. Tiers within one (category, type) group should not overlap, but
// the schema does not forbid it — the resolver breaks ties deterministically
// instead.
type Price struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Type       string          `gorm:"size:100;not null;index" json:"type"`
	WeightMin  float64         `gorm:"not null" json:"weight_min"`
	WeightMax  float64         `gorm:"not null" json:"weight_max"`
	Amount     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	CategoryID uint            `gorm:"not null;index" json:"category_id"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// Span is the width of the tier's weight range. The resolver prefers the
// narrowest span when ranges overlap.
func (p Price) Span() float64 { return p.WeightMax - p.WeightMin }

// Covers reports whether weight falls inside the tier, bounds inclusive.
func (p Price) Covers(weight float64) bool {
	return p.WeightMin <= weight && weight <= p.WeightMax
}
