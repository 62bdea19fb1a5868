package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	type in struct {
		Name string `json:"name" validate:"required"`
	}

	errs := Struct(&in{})
	assert.True(t, HasErrors(errs))
	assert.Contains(t, errs["name"], "required")

	errs = Struct(&in{Name: "ok"})
	assert.False(t, HasErrors(errs))

	// Whitespace-only counts as empty.
	errs = Struct(&in{Name: "   "})
	assert.True(t, HasErrors(errs))
}

func TestNullableSkipsRemainingRules(t *testing.T) {
	type in struct {
		Notes string `json:"notes" validate:"nullable,min=5"`
	}

	assert.False(t, HasErrors(Struct(&in{})))
	assert.True(t, HasErrors(Struct(&in{Notes: "ab"})))
	assert.False(t, HasErrors(Struct(&in{Notes: "long enough"})))
}

func TestMinMaxOnStringsAndNumbers(t *testing.T) {
	type in struct {
		Name   string  `json:"name" validate:"required,min=2,max=5"`
		Weight float64 `json:"weight" validate:"gte=0,lte=100"`
	}

	assert.True(t, HasErrors(Struct(&in{Name: "a", Weight: 10})))
	assert.True(t, HasErrors(Struct(&in{Name: "toolong", Weight: 10})))
	assert.True(t, HasErrors(Struct(&in{Name: "abc", Weight: -1})))
	assert.True(t, HasErrors(Struct(&in{Name: "abc", Weight: 101})))
	assert.False(t, HasErrors(Struct(&in{Name: "abc", Weight: 100})))
}

func TestPointerFieldsValidateWhenSet(t *testing.T) {
	type in struct {
		Name *string `json:"name" validate:"nullable,min=2"`
	}

	assert.False(t, HasErrors(Struct(&in{})), "nil pointer is nullable")

	short := "a"
	assert.True(t, HasErrors(Struct(&in{Name: &short})))

	ok := "abc"
	assert.False(t, HasErrors(Struct(&in{Name: &ok})))
}

func TestPointerStringLengthRules(t *testing.T) {
	// The shape of every partial-patch input: length rules must check the
	// pointed-at string, not the pointer's formatted address.
	type in struct {
		Name          *string `json:"name" validate:"nullable,min=2,max=100"`
		ContactNumber *string `json:"contact_number" validate:"nullable,min=7,max=20"`
	}

	short := "x"
	long := strings.Repeat("9", 51)
	errs := Struct(&in{Name: &short, ContactNumber: &long})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs["name"], "at least 2")
	assert.Contains(t, errs["contact_number"], "greater than 20")

	name := "Maria Santos"
	contact := "09171234567"
	assert.False(t, HasErrors(Struct(&in{Name: &name, ContactNumber: &contact})))
}

func TestPointerValuesInListAndRegexRules(t *testing.T) {
	type in struct {
		Status *string `json:"status" validate:"nullable,in=created,completed"`
		Code   *string `json:"code" validate:"nullable,regex=^[A-Z]+$"`
	}

	bad := "bogus"
	lower := "abc"
	errs := Struct(&in{Status: &bad, Code: &lower})
	assert.Len(t, errs, 2)

	ok := "created"
	upper := "ABC"
	assert.False(t, HasErrors(Struct(&in{Status: &ok, Code: &upper})))
}

func TestInListRejoinsCommaParams(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=created,completed,cancelled"`
	}

	assert.False(t, HasErrors(Struct(&in{Status: "completed"})))
	assert.True(t, HasErrors(Struct(&in{Status: "bogus"})))
}

func TestBetween(t *testing.T) {
	type in struct {
		Weight float64 `json:"weight" validate:"between=1,10"`
	}

	assert.False(t, HasErrors(Struct(&in{Weight: 1})))
	assert.False(t, HasErrors(Struct(&in{Weight: 10})))
	assert.True(t, HasErrors(Struct(&in{Weight: 0.5})))
	assert.True(t, HasErrors(Struct(&in{Weight: 11})))
}

func TestFirstFailingRuleWinsPerField(t *testing.T) {
	type in struct {
		Contact string `json:"contact_number" validate:"required,min=7,max=20"`
	}

	errs := Struct(&in{})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs["contact_number"], "required")
}
