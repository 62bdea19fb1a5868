package services

import "github.com/shopspring/decimal"

// CustomTypeName is the legacy wire value operators send to key in a manual
// amount. The transport layer maps it onto Custom(); nothing below the
// controllers compares against this string.
const CustomTypeName = "custom"

// PricingMode is the tagged choice between resolving a tier from the price
// book and accepting an operator-supplied amount. Construct with
// Predefined() or Custom(); the zero value behaves like Predefined("").
type PricingMode struct {
	custom bool
	amount decimal.Decimal
}

// Predefined prices the order from the category's price book.
func Predefined() PricingMode {
	return PricingMode{}
}

// Custom prices the order with the given manual amount; no tier is consulted
// and the order carries no price reference.
func Custom(amount decimal.Decimal) PricingMode {
	return PricingMode{custom: true, amount: amount}
}

// IsCustom reports whether the mode carries a manual amount.
func (m PricingMode) IsCustom() bool { return m.custom }

// Amount returns the manual amount; meaningful only when IsCustom.
func (m PricingMode) Amount() decimal.Decimal { return m.amount }
