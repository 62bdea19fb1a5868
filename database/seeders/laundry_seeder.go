package seeders

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
)

func init() {
	Register(Seeder{Name: "laundry_baseline", Run: seedLaundryBaseline})
}

// seedLaundryBaseline loads the shop's default categories and their price
// books. Existing rows win: a category that is already present is reused and
// its tiers are left alone.
func seedLaundryBaseline(db *gorm.DB) error {
	type tier struct {
		typeName string
		min, max float64
		amount   string
	}

	baseline := []struct {
		category    string
		description string
		tiers       []tier
	}{
		{
			category:    "Regular Wash",
			description: "Standard wash, dry and fold",
			tiers: []tier{
				{"Clothes", 0.1, 6.0, "175.00"},
				{"Clothes", 6.1, 9.0, "250.00"},
				{"Clothes", 9.1, 12.0, "325.00"},
				{"Beddings", 0.1, 6.0, "200.00"},
				{"Beddings", 6.1, 9.0, "285.00"},
			},
		},
		{
			category:    "Dry Cleaning",
			description: "Garments requiring solvent cleaning",
			tiers: []tier{
				{"Suit", 0.1, 3.0, "450.00"},
				{"Gown", 0.1, 3.0, "500.00"},
				{"Barong", 0.1, 2.0, "350.00"},
			},
		},
		{
			category:    "Comforters",
			description: "Comforters, duvets and heavy blankets",
			tiers: []tier{
				{"Single", 0.1, 4.0, "300.00"},
				{"Double", 0.1, 7.0, "400.00"},
				{"King", 0.1, 10.0, "500.00"},
			},
		},
	}

	for _, b := range baseline {
		var category models.Category
		err := db.Where("name = ?", b.category).First(&category).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			category = models.Category{Name: b.category, Description: b.description}
			if err := db.Create(&category).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			continue // category exists, keep its price book as-is
		}

		for _, t := range b.tiers {
			price := models.Price{
				Type:       t.typeName,
				WeightMin:  t.min,
				WeightMax:  t.max,
				Amount:     decimal.RequireFromString(t.amount),
				CategoryID: category.ID,
			}
			if err := db.Create(&price).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
