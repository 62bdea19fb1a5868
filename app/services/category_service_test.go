package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washpoint/washpoint/pkg/apperr"
)

func TestCreateCategoryDuplicateNameConflicts(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.categories.Create(CreateCategoryInput{Name: "Regular Wash"})
	require.NoError(t, err)

	_, err = env.categories.Create(CreateCategoryInput{Name: "Regular Wash"})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestGetCategoryByName(t *testing.T) {
	env := newTestEnv(t)
	cat := env.mustCategory(t, "Dry Cleaning")

	got, err := env.categories.GetByName("Dry Cleaning")
	require.NoError(t, err)
	assert.Equal(t, cat.ID, got.ID)

	_, err = env.categories.GetByName("Nope")
	assert.True(t, apperr.IsNotFound(err))
}

func TestUpdateCategoryPartialPatch(t *testing.T) {
	env := newTestEnv(t)
	cat := env.mustCategory(t, "Regular Wash")

	desc := "Wash, dry and fold"
	got, err := env.categories.Update(cat.ID, UpdateCategoryInput{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, "Regular Wash", got.Name)
	assert.Equal(t, desc, got.Description)
}

func TestDeleteCategoryWithPricesConflicts(t *testing.T) {
	env := newTestEnv(t)
	cat := env.mustCategory(t, "Regular Wash")
	price := env.mustPrice(t, cat.ID, "Clothes", 0.1, 6.0, "175.00")

	err := env.categories.Delete(cat.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	require.NoError(t, env.prices.Delete(price.ID))
	require.NoError(t, env.categories.Delete(cat.ID))
	_, err = env.categories.Get(cat.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteCategoryWithOrdersConflicts(t *testing.T) {
	env := newTestEnv(t)
	cat := env.mustCategory(t, "Regular Wash")
	env.mustPrice(t, cat.ID, "Clothes", 0.1, 6.0, "175.00")

	_, err := env.orders.CreateIntegrated(IntegratedOrderInput{
		ClientName:    "Maria Santos",
		ClientContact: "09171234567",
		CategoryID:    cat.ID,
		TypeName:      "Clothes",
		Weight:        3.0,
		Pricing:       Predefined(),
	})
	require.NoError(t, err)

	err = env.categories.Delete(cat.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}
