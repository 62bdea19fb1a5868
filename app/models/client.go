package models

import "time"

// Client is a walk-in customer. ContactNumber is the dedup key: the unique
// index is what makes the resolver's create-or-fetch race-safe across
// server processes.
//
// Deletes are hard deletes, so none of the models embed gorm.Model (its
// DeletedAt would switch GORM into soft-delete mode).
type Client struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null;index" json:"name"`
	ContactNumber string    `gorm:"size:20;not null;uniqueIndex" json:"contact_number"`
	Address       string    `gorm:"size:255;not null" json:"address"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
