// Package seeders loads baseline reference data. Seeds are idempotent:
// running them twice leaves the database unchanged.
package seeders

import (
	"gorm.io/gorm"

	"github.com/washpoint/washpoint/pkg/logger"
)

// Seeder is one named seed step.
type Seeder struct {
	Name string
	Run  func(db *gorm.DB) error
}

var registry []Seeder

// Register adds a seeder; they run in registration order.
func Register(s Seeder) {
	registry = append(registry, s)
}

// RunAll executes every registered seeder.
func RunAll(db *gorm.DB) error {
	for _, s := range registry {
		logger.Info("seeding", "name", s.Name)
		if err := s.Run(db); err != nil {
			return err
		}
	}
	return nil
}
