package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindClassification(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("client", 7)))
	assert.True(t, IsConflict(Conflict("taken")))
	assert.True(t, IsValidation(Validation("bad input")))
	assert.True(t, IsPriceUnresolvable(PriceUnresolvable("no price", nil)))
	assert.Equal(t, KindStorage, KindOf(Storage(errors.New("disk on fire"))))

	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, Kind(0), KindOf(nil))
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("no tiers")
	err := PriceUnresolvable("unable to determine price", cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsPriceUnresolvable(fmt.Errorf("request failed: %w", err)))
}

func TestErrorMessage(t *testing.T) {
	err := NotFound("order", 42)
	assert.Contains(t, err.Error(), "order 42 not found")
	assert.Contains(t, err.Error(), "not found")
}
