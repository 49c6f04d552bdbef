package model

import (
	"strconv"
)

// TroyOunceGrams is the number of grams in one troy ounce.
const TroyOunceGrams = 31.1034768

// Karat is a gold purity expressed as parts per 24.
type Karat int

const (
	Karat24 Karat = 24
	Karat22 Karat = 22
	Karat21 Karat = 21
	Karat18 Karat = 18
)

// Karats lists every supported purity in display order.
var Karats = [...]Karat{Karat24, Karat22, Karat21, Karat18}

var purityTable = map[Karat]float64{
	Karat24: 1,
	Karat22: 22.0 / 24,
	Karat21: 21.0 / 24,
	Karat18: 18.0 / 24,
}

// PurityTable returns a copy of the karat to purity fraction mapping.
func PurityTable() map[Karat]float64 {
	table := make(map[Karat]float64, len(purityTable))
	for k, v := range purityTable {
		table[k] = v
	}
	return table
}

// Purity returns the fraction of pure gold for the karat, or 0 for an unsupported karat.
func (k Karat) Purity() float64 {
	return purityTable[k]
}

func (k Karat) Valid() bool {
	_, ok := purityTable[k]
	return ok
}

func (k Karat) String() string {
	return strconv.Itoa(int(k)) + "K"
}
