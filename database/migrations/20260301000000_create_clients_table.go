package migrations

import (
	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/pkg/migration"
)

func init() {
	migration.Register("20260301000000_create_clients_table", &CreateClientsTable{})
}

type CreateClientsTable struct{}

func (m *CreateClientsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Client{})
}

func (m *CreateClientsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("clients")
}
