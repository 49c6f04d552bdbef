package exchangerate

import (
	"time"
)

// Rate describes the price of one unit of the base asset quoted in the symbol currency.
type Rate struct {
	Base   string    // ex: XAU
	Symbol string    // ex: BHD
	Value  float64   // ex: 62.1, currency per troy ounce for XAU
	Date   time.Time // quote date reported by the source, zero when absent
}
