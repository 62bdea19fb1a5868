package services

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/app/repositories"
	"github.com/washpoint/washpoint/pkg/apperr"
)

func TestCreateIntegratedPredefined(t *testing.T) {
	env := newTestEnv(t)
	cat := env.mustCategory(t, "Regular Wash")
	tier := env.mustPrice(t, cat.ID, "Clothes", 0.1, 6.0, "175.00")

	view, err := env.orders.CreateIntegrated(IntegratedOrderInput{
		ClientName:    "Maria Santos",
		ClientContact: "09171234567",
		ClientAddress: "1 Main St",
		CategoryID:    cat.ID,
		TypeName:      "Clothes",
		Weight:        3.5,
		Pricing:       Predefined(),
	})
	require.NoError(t, err)

	order := view.Order
	assert.NotZero(t, order.ID)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
	assert.True(t, order.Amount.Equal(decimal.RequireFromString("175.00")))
	require.NotNil(t, order.PriceID)
	assert.Equal(t, tier.ID, *order.PriceID)

	_, err = uuid.Parse(order.Reference)
	assert.NoError(t, err, "reference should be a uuid")

	// Composite read-back embeds the client and category rows.
	require.NotNil(t, order.Client)
	assert.Equal(t, "Maria Santos", order.Client.Name)
	require.NotNil(t, order.Category)
	assert.Equal(t, "Regular Wash", order.Category.Name)

	assert.Equal(t, "predefined", view.Pricing.Mode)
	assert.True(t, view.Pricing.Amount.Equal(order.Amount))
}

func TestCreateIntegratedReusesClientByContact(t *testing.T) {
	env := newTestEnv(t)
	existing := env.mustClient(t, "Maria Santos", "09171234567")
	cat := env.mustCategory(t, "Regular Wash")
	env.mustPrice(t, cat.ID, "Clothes", 0.1, 6.0, "175.00")

	view, err := env.orders.CreateIntegrated(IntegratedOrderInput{
		ClientName:    "Different Name",
		ClientContact: existing.ContactNumber,
		CategoryID:    cat.ID,
		TypeName:      "Clothes",
		Weight:        2.0,
		Pricing:       Predefined(),
	})
	require.NoError(t, err)

	assert.Equal(t, existing.ID, view.Order.ClientID)
	assert.Equal(t, "Maria Santos", view.Order.Client.Name)
	assert.EqualValues(t, 1, env.countRows(t, &models.Client{}))
}

func TestCreateIntegratedCustomAmount(t *testing.T) {
	env := newTestEnv(t)
	cat := env.mustCategory(t, "Regular Wash")

	view, err := env.orders.CreateIntegrated(IntegratedOrderInput{
		ClientName:    "Jun Reyes",
		ClientContact: "09998887766",
		CategoryID:    cat.ID,
		TypeName:      CustomTypeName,
		Weight:        4.0,
		Pricing:       Custom(decimal.RequireFromString("320.50")),
	})
	require.NoError(t, err)

	assert.Nil(t, view.Order.PriceID)
	assert.True(t, view.Order.Amount.Equal(decimal.RequireFromString("320.50")))
	assert.Equal(t, "custom", view.Pricing.Mode)
}

func TestCreateIntegratedCustomAmountMustBePositive(t *testing.T) {
	env := newTestEnv(t)
	cat := env.mustCategory(t, "Regular Wash")

	for _, amount := range []string{"0", "-5.00"} {
		_, err := env.orders.CreateIntegrated(IntegratedOrderInput{
			ClientName:    "Jun Reyes",
			ClientContact: "09998887766",
			CategoryID:    cat.ID,
			TypeName:      CustomTypeName,
			Weight:        4.0,
			Pricing:       Custom(decimal.RequireFromString(amount)),
		})
		require.Error(t, err, "amount %s", amount)
		assert.True(t, apperr.IsPriceUnresolvable(err))
		assert.True(t, errors.Is(err, ErrInvalidCustomAmount))
	}

	assert.EqualValues(t, 0, env.countRows(t, &models.Order{}))
}

func TestCreateIntegratedUnknownCategoryLeavesNoTrace(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.orders.CreateIntegrated(IntegratedOrderInput{
		ClientName:    "Jun Reyes",
		ClientContact: "09998887766",
		CategoryID:    42,
		TypeName:      "Clothes",
		Weight:        3.0,
		Pricing:       Predefined(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	// The category check runs before client resolution: nothing persists.
	assert.EqualValues(t, 0, env.countRows(t, &models.Client{}))
	assert.EqualValues(t, 0, env.countRows(t, &models.Order{}))
}

func TestCreateIntegratedPricingFailureKeepsClient(t *testing.T) {
	env := newTestEnv(t)
	cat := env.mustCategory(t, "Regular Wash")
	env.mustPrice(t, cat.ID, "Clothes", 0.1, 6.0, "175.00")

	_, err := env.orders.CreateIntegrated(IntegratedOrderInput{
		ClientName:    "Jun Reyes",
		ClientContact: "09998887766",
		CategoryID:    cat.ID,
		TypeName:      "Clothes",
		Weight:        50.0,
		Pricing:       Predefined(),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsPriceUnresolvable(err))
	assert.True(t, errors.Is(err, ErrNoTierForWeight))

	// Client onboarding committed before pricing ran and stays committed;
	// no order row exists.
	assert.EqualValues(t, 1, env.countRows(t, &models.Client{}))
	assert.EqualValues(t, 0, env.countRows(t, &models.Order{}))
}

func TestCreateIntegratedUnknownTypeDistinguished(t *testing.T) {
	env := newTestEnv(t)
	cat := env.mustCategory(t, "Regular Wash")
	env.mustPrice(t, cat.ID, "Clothes", 0.1, 6.0, "175.00")

	_, err := env.orders.CreateIntegrated(IntegratedOrderInput{
		ClientName:    "Jun Reyes",
		ClientContact: "09998887766",
		CategoryID:    cat.ID,
		TypeName:      "Curtains",
		Weight:        3.0,
		Pricing:       Predefined(),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoTiersForType))
}

func TestCreateOrderValidatesReferences(t *testing.T) {
	env := newTestEnv(t)
	client := env.mustClient(t, "Maria Santos", "09171234567")
	cat := env.mustCategory(t, "Regular Wash")

	_, err := env.orders.Create(CreateOrderInput{
		ClientID:   client.ID,
		CategoryID: 42,
		TypeName:   "Clothes",
		Weight:     3.0,
		Amount:     decimal.RequireFromString("175.00"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	_, err = env.orders.Create(CreateOrderInput{
		ClientID:   99,
		CategoryID: cat.ID,
		TypeName:   "Clothes",
		Weight:     3.0,
		Amount:     decimal.RequireFromString("175.00"),
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))

	order, err := env.orders.Create(CreateOrderInput{
		ClientID:   client.ID,
		CategoryID: cat.ID,
		TypeName:   "Clothes",
		Weight:     3.0,
		Amount:     decimal.RequireFromString("175.00"),
	})
	require.NoError(t, err)
	assert.NotZero(t, order.ID)
	assert.Equal(t, models.OrderStatusCreated, order.Status)
}

func TestUpdateOrderPartialPatch(t *testing.T) {
	env := newTestEnv(t)
	client := env.mustClient(t, "Maria Santos", "09171234567")
	cat := env.mustCategory(t, "Regular Wash")

	order, err := env.orders.Create(CreateOrderInput{
		ClientID:   client.ID,
		CategoryID: cat.ID,
		TypeName:   "Clothes",
		Weight:     3.0,
		Amount:     decimal.RequireFromString("175.00"),
	})
	require.NoError(t, err)

	status := "completed"
	got, err := env.orders.Update(order.ID, UpdateOrderInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "completed", got.Status)
	assert.Equal(t, order.TypeName, got.TypeName)

	bad := uint(77)
	_, err = env.orders.Update(order.ID, UpdateOrderInput{CategoryID: &bad})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListOrdersFilters(t *testing.T) {
	env := newTestEnv(t)
	maria := env.mustClient(t, "Maria Santos", "09171234567")
	jun := env.mustClient(t, "Jun Reyes", "09998887766")
	cat := env.mustCategory(t, "Regular Wash")

	for _, clientID := range []uint{maria.ID, maria.ID, jun.ID} {
		_, err := env.orders.Create(CreateOrderInput{
			ClientID:   clientID,
			CategoryID: cat.ID,
			TypeName:   "Clothes",
			Weight:     3.0,
			Amount:     decimal.RequireFromString("175.00"),
		})
		require.NoError(t, err)
	}

	got, meta, err := env.orders.List(0, 10, repositories.OrderFilter{ClientID: maria.ID}, false)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.EqualValues(t, 2, meta.Total)

	got, _, err = env.orders.List(0, 10, repositories.OrderFilter{Status: "created"}, true)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	require.NotNil(t, got[0].Client)
	assert.Equal(t, maria.ID, got[0].Client.ID)
}

func TestGetOrderWithDetails(t *testing.T) {
	env := newTestEnv(t)
	client := env.mustClient(t, "Maria Santos", "09171234567")
	cat := env.mustCategory(t, "Regular Wash")

	order, err := env.orders.Create(CreateOrderInput{
		ClientID:   client.ID,
		CategoryID: cat.ID,
		TypeName:   "Clothes",
		Weight:     3.0,
		Amount:     decimal.RequireFromString("175.00"),
	})
	require.NoError(t, err)

	plain, err := env.orders.Get(order.ID, false)
	require.NoError(t, err)
	assert.Nil(t, plain.Client)

	full, err := env.orders.Get(order.ID, true)
	require.NoError(t, err)
	require.NotNil(t, full.Client)
	require.NotNil(t, full.Category)
	assert.Equal(t, client.ID, full.Client.ID)

	_, err = env.orders.Get(999, true)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteOrder(t *testing.T) {
	env := newTestEnv(t)
	client := env.mustClient(t, "Maria Santos", "09171234567")
	cat := env.mustCategory(t, "Regular Wash")

	order, err := env.orders.Create(CreateOrderInput{
		ClientID:   client.ID,
		CategoryID: cat.ID,
		TypeName:   "Clothes",
		Weight:     3.0,
		Amount:     decimal.RequireFromString("175.00"),
	})
	require.NoError(t, err)

	require.NoError(t, env.orders.Delete(order.ID))
	err = env.orders.Delete(order.ID)
	assert.True(t, apperr.IsNotFound(err))
}
