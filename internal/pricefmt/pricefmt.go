package pricefmt

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Missing is rendered in place of an unknown amount.
const Missing = "–"

// Digits returns the number of minor units of an ISO 4217 currency code, 2 when the code is unknown.
func Digits(code string) int {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return 2
	}

	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// Amount rounds amount half away from zero to the currency's minor units.
func Amount(code string, amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Missing
	}

	return decimal.NewFromFloat(amount).StringFixed(int32(Digits(code)))
}

// Money renders amount with its currency code, ex: "BHD 1.997".
func Money(code string, amount float64) string {
	formatted := Amount(code, amount)
	if formatted == Missing {
		return Missing
	}

	return code + " " + formatted
}
