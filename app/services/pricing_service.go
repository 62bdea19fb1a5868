package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/app/repositories"
	"github.com/washpoint/washpoint/config"
	"github.com/washpoint/washpoint/pkg/apperr"
	"github.com/washpoint/washpoint/pkg/cache"
	"github.com/washpoint/washpoint/pkg/metrics"
)

// Sentinels distinguishing the two ways a price lookup can come up empty.
// Both arrive wrapped in an apperr.KindPriceUnresolvable error.
var (
	// ErrNoTiersForType — the (category, type) group has no tiers at all.
	ErrNoTiersForType = errors.New("no price tiers for this type in the category")
	// ErrNoTierForWeight — the group exists but no tier covers the weight.
	ErrNoTierForWeight = errors.New("no price tier covers this weight")
)

// PricingService resolves a (category, type, weight) triple to the unique
// applicable price tier.
type PricingService struct {
	prices *repositories.PriceRepository
}

func NewPricingService(prices *repositories.PriceRepository) *PricingService {
	return &PricingService{prices: prices}
}

func priceBookKey(categoryID uint) string {
	return fmt.Sprintf("prices:category:%d", categoryID)
}

// Resolve returns the price tier for the given type and weight within a
// category. Type matching is a case-insensitive exact match on the label;
// range bounds are inclusive on both ends.
//
// When overlapping tiers all cover the weight, the narrowest span wins; a
// span tie goes to the lowest id. The rule also decides boundary weights
// shared by adjacent tiers, so identical inputs always resolve to the same
// row.
func (s *PricingService) Resolve(categoryID uint, typeName string, weight float64) (models.Price, error) {
	book, err := s.priceBook(categoryID)
	if err != nil {
		return models.Price{}, apperr.Storage(err)
	}

	var group, covering []models.Price
	for _, p := range book {
		if !strings.EqualFold(p.Type, typeName) {
			continue
		}
		group = append(group, p)
		if p.Covers(weight) {
			covering = append(covering, p)
		}
	}

	if len(group) == 0 {
		metrics.PriceResolutions.WithLabelValues("no_type").Inc()
		return models.Price{}, apperr.PriceUnresolvable(
			fmt.Sprintf("no price tiers for type %q in category %d", typeName, categoryID),
			ErrNoTiersForType,
		)
	}

	if len(covering) == 0 {
		metrics.PriceResolutions.WithLabelValues("no_tier").Inc()
		return models.Price{}, apperr.PriceUnresolvable(
			fmt.Sprintf("no price tier for type %q covers weight %.2f", typeName, weight),
			ErrNoTierForWeight,
		)
	}

	best := covering[0]
	for _, p := range covering[1:] {
		if p.Span() < best.Span() || (p.Span() == best.Span() && p.ID < best.ID) {
			best = p
		}
	}

	metrics.PriceResolutions.WithLabelValues("matched").Inc()
	return best, nil
}

// priceBook loads a category's tiers, through the cache when available.
func (s *PricingService) priceBook(categoryID uint) ([]models.Price, error) {
	key := priceBookKey(categoryID)

	var book []models.Price
	if cache.Get(key, &book) {
		return book, nil
	}

	book, err := s.prices.FindByCategory(categoryID)
	if err != nil {
		return nil, err
	}

	_ = cache.Set(key, book, config.CacheTTL())
	return book, nil
}

// InvalidatePriceBook drops the cached price book of a category. Called by
// every price write path.
func InvalidatePriceBook(categoryID uint) {
	_ = cache.Del(priceBookKey(categoryID))
}
