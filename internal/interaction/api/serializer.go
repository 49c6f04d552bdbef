package api

import (
	"time"

	"goldkarat/internal/interaction/exchangerate"
	"goldkarat/internal/model"
	"goldkarat/internal/pricefmt"
)

type karatPrice struct {
	Karat     string  `json:"karat"`
	Purity    float64 `json:"purity"`
	PerGram   float64 `json:"per_gram"`
	Formatted string  `json:"formatted"`
}

type pricesResponse struct {
	Currency     string       `json:"currency"`
	PerTroyOunce float64      `json:"per_troy_ounce"`
	PerGramPure  float64      `json:"per_gram_pure"`
	QuotedAt     *time.Time   `json:"quoted_at,omitempty"`
	Karats       []karatPrice `json:"karats"`
}

type snapshotResponse struct {
	Prices      *pricesResponse `json:"prices"`
	LastUpdated *time.Time      `json:"last_updated"`
	IsLoading   bool            `json:"is_loading"`
	Error       string          `json:"error,omitempty"`
	ErrorKind   string          `json:"error_kind,omitempty"`
}

func toSnapshotResponse(snapshot model.Snapshot) snapshotResponse {
	resp := snapshotResponse{IsLoading: snapshot.IsLoading}

	if snapshot.LastError != nil {
		resp.Error = snapshot.LastError.Error()
		resp.ErrorKind = exchangerate.Kind(snapshot.LastError)
	}

	if !snapshot.HasPrices() {
		return resp
	}

	updated := snapshot.LastUpdated
	resp.LastUpdated = &updated

	prices := snapshot.Prices
	resp.Prices = &pricesResponse{
		Currency:     prices.Currency,
		PerTroyOunce: prices.PerTroyOunce,
		PerGramPure:  prices.PerGramPure,
		Karats:       make([]karatPrice, 0, len(model.Karats)),
	}
	if !prices.QuotedAt.IsZero() {
		quoted := prices.QuotedAt
		resp.Prices.QuotedAt = &quoted
	}

	for _, k := range model.Karats {
		resp.Prices.Karats = append(resp.Prices.Karats, karatPrice{
			Karat:     k.String(),
			Purity:    k.Purity(),
			PerGram:   prices.At(k),
			Formatted: pricefmt.Money(prices.Currency, prices.At(k)),
		})
	}

	return resp
}
