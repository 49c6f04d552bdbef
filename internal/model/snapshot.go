package model

import (
	"time"
)

// Snapshot is the observable state of the spot price engine.
type Snapshot struct {
	Prices      *KaratPrices // nil until the first successful refresh
	LastUpdated time.Time    // zero until the first successful refresh
	IsLoading   bool
	LastError   error // outcome of the latest settled refresh, nil on success
}

func (s Snapshot) HasPrices() bool {
	return s.Prices != nil
}

// Clone returns a copy that shares nothing mutable with s.
func (s Snapshot) Clone() Snapshot {
	s.Prices = s.Prices.Clone()
	return s
}
