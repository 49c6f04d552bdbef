package model

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var ErrInvalidRate = errors.New("rate must be a positive finite number")

// KaratPrices describes per-gram gold prices derived from one spot quote.
// It is always complete: ByKarat holds a price for every entry of Karats.
type KaratPrices struct {
	Currency     string
	PerTroyOunce float64 // ex: 62.1
	PerGramPure  float64 // ex: 1.99656
	ByKarat      map[Karat]float64
	QuotedAt     time.Time // date reported by the rate source, may be zero
}

// NewKaratPrices converts a troy ounce quote into per-gram prices for every supported karat.
func NewKaratPrices(currency string, perTroyOunce float64, quotedAt time.Time) (*KaratPrices, error) {
	if math.IsNaN(perTroyOunce) || math.IsInf(perTroyOunce, 0) || perTroyOunce <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRate, perTroyOunce)
	}

	perGramPure := perTroyOunce / TroyOunceGrams

	byKarat := make(map[Karat]float64, len(Karats))
	for _, k := range Karats {
		byKarat[k] = perGramPure * k.Purity()
	}

	return &KaratPrices{
		Currency:     currency,
		PerTroyOunce: perTroyOunce,
		PerGramPure:  perGramPure,
		ByKarat:      byKarat,
		QuotedAt:     quotedAt,
	}, nil
}

// At returns the per-gram price for the karat, or NaN when it is not known.
func (p *KaratPrices) At(k Karat) float64 {
	if p == nil {
		return math.NaN()
	}

	price, ok := p.ByKarat[k]
	if !ok {
		return math.NaN()
	}
	return price
}

func (p *KaratPrices) Clone() *KaratPrices {
	if p == nil {
		return nil
	}

	cp := *p
	cp.ByKarat = make(map[Karat]float64, len(p.ByKarat))
	for k, v := range p.ByKarat {
		cp.ByKarat[k] = v
	}
	return &cp
}
