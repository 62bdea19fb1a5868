package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/washpoint/washpoint/app/models"
	"github.com/washpoint/washpoint/pkg/apperr"
)

func TestResolveReturnsExistingClient(t *testing.T) {
	env := newTestEnv(t)
	existing := env.mustClient(t, "Maria Santos", "09171234567")

	got, err := env.clients.Resolve("Different Name", "09171234567", "99 Other Rd")
	require.NoError(t, err)

	// The record on file wins; the request's name and address are ignored.
	assert.Equal(t, existing.ID, got.ID)
	assert.Equal(t, "Maria Santos", got.Name)
	assert.Equal(t, "1 Main St", got.Address)
}

func TestResolveCreatesWhenAbsent(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.clients.Resolve("Jun Reyes", "09998887766", "5 Side St")
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, "Jun Reyes", got.Name)

	assert.EqualValues(t, 1, env.countRows(t, &models.Client{}))
}

func TestResolveConcurrentSameContact(t *testing.T) {
	env := newTestEnv(t)

	const workers = 8
	results := make([]models.Client, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = env.clients.Resolve("Jun Reyes", "09998887766", "5 Side St")
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, results[0].ID, results[i].ID)
	}
	assert.EqualValues(t, 1, env.countRows(t, &models.Client{}))
}

func TestDuplicateContactInsertIsTranslated(t *testing.T) {
	env := newTestEnv(t)
	env.mustClient(t, "Maria Santos", "09171234567")

	// Resolve's race recovery hinges on the driver error surfacing as
	// gorm.ErrDuplicatedKey; pin that translation here.
	dup := models.Client{Name: "Someone Else", ContactNumber: "09171234567", Address: "7 Hill St"}
	err := env.db.Create(&dup).Error
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCreateClientDuplicateContactConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.mustClient(t, "Maria Santos", "09171234567")

	_, err := env.clients.Create(CreateClientInput{
		Name:          "Someone Else",
		ContactNumber: "09171234567",
		Address:       "7 Hill St",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestUpdateClientPartialPatch(t *testing.T) {
	env := newTestEnv(t)
	client := env.mustClient(t, "Maria Santos", "09171234567")

	newAddr := "7 Hill St"
	got, err := env.clients.Update(client.ID, UpdateClientInput{Address: &newAddr})
	require.NoError(t, err)

	assert.Equal(t, "Maria Santos", got.Name)
	assert.Equal(t, "09171234567", got.ContactNumber)
	assert.Equal(t, newAddr, got.Address)
}

func TestUpdateClientToTakenContactConflicts(t *testing.T) {
	env := newTestEnv(t)
	env.mustClient(t, "Maria Santos", "09171234567")
	other := env.mustClient(t, "Jun Reyes", "09998887766")

	taken := "09171234567"
	_, err := env.clients.Update(other.ID, UpdateClientInput{ContactNumber: &taken})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
}

func TestGetClientNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.clients.Get(42)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestDeleteClientWithOrdersConflicts(t *testing.T) {
	env := newTestEnv(t)
	client := env.mustClient(t, "Maria Santos", "09171234567")
	cat := env.mustCategory(t, "Regular Wash")
	env.mustPrice(t, cat.ID, "Clothes", 0.1, 6.0, "175.00")

	_, err := env.orders.CreateIntegrated(IntegratedOrderInput{
		ClientName:    client.Name,
		ClientContact: client.ContactNumber,
		CategoryID:    cat.ID,
		TypeName:      "Clothes",
		Weight:        3.0,
		Pricing:       Predefined(),
	})
	require.NoError(t, err)

	err = env.clients.Delete(client.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	// Still deletable once nothing references it.
	require.NoError(t, env.db.Where("client_id = ?", client.ID).Delete(&models.Order{}).Error)
	require.NoError(t, env.clients.Delete(client.ID))
	_, err = env.clients.Get(client.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListClientsPagination(t *testing.T) {
	env := newTestEnv(t)
	for _, c := range []struct{ name, contact string }{
		{"A", "09000000001"}, {"B", "09000000002"}, {"C", "09000000003"},
	} {
		env.mustClient(t, c.name, c.contact)
	}

	page1, meta, err := env.clients.List(0, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.EqualValues(t, 3, meta.Total)

	page2, _, err := env.clients.List(2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)

	// Stable id order means no overlap between pages.
	assert.Less(t, page1[1].ID, page2[0].ID)
}
