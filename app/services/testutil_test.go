package services

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/app/repositories"
)

var dbSeq atomic.Int64

// newTestDB opens a fresh in-memory database with the same gorm options the
// real connection uses. TranslateError stays on: the client resolver's
// duplicate-key handling is under test here.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := fmt.Sprintf("%s_%d", strings.ReplaceAll(t.Name(), "/", "_"), dbSeq.Add(1))
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_busy_timeout=5000", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Category{},
		&models.Price{},
		&models.Order{},
	))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Shared-cache sqlite serialises writers poorly; one connection keeps
	// concurrent tests free of SQLITE_LOCKED noise.
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() { sqlDB.Close() })

	return db
}

// testEnv wires the full service graph over a fresh database.
type testEnv struct {
	db *gorm.DB

	clients    *ClientService
	categories *CategoryService
	prices     *PriceService
	orders     *OrderService
	pricing    *PricingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)

	clientRepo := repositories.NewClientRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	priceRepo := repositories.NewPriceRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	pricing := NewPricingService(priceRepo)
	clientSvc := NewClientService(clientRepo, orderRepo)
	categorySvc := NewCategoryService(categoryRepo, priceRepo, orderRepo)
	priceSvc := NewPriceService(priceRepo, categoryRepo, orderRepo)
	orderSvc := NewOrderService(db, orderRepo, clientRepo, categoryRepo, pricing, clientSvc, categorySvc)

	return &testEnv{
		db:         db,
		clients:    clientSvc,
		categories: categorySvc,
		prices:     priceSvc,
		orders:     orderSvc,
		pricing:    pricing,
	}
}

func (e *testEnv) mustCategory(t *testing.T, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, e.db.Create(&category).Error)
	return category
}

func (e *testEnv) mustPrice(t *testing.T, categoryID uint, typeName string, min, max float64, amount string) models.Price {
	t.Helper()
	price := models.Price{
		Type:       typeName,
		WeightMin:  min,
		WeightMax:  max,
		Amount:     decimal.RequireFromString(amount),
		CategoryID: categoryID,
	}
	require.NoError(t, e.db.Create(&price).Error)
	return price
}

func (e *testEnv) mustClient(t *testing.T, name, contact string) models.Client {
	t.Helper()
	client := models.Client{Name: name, ContactNumber: contact, Address: "1 Main St"}
	require.NoError(t, e.db.Create(&client).Error)
	return client
}

func (e *testEnv) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(model).Count(&n).Error)
	return n
}
