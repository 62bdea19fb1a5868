package migrations

import (
	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/pkg/migration"
)

func init() {
	migration.Register("20260301000002_create_prices_table", &CreatePricesTable{})
}

type CreatePricesTable struct{}

func (m *CreatePricesTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Price{})
}

func (m *CreatePricesTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("prices")
}
