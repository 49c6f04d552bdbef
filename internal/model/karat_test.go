package model_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"goldkarat/internal/model"
)

func Test_PurityTable(t *testing.T) {
	table := model.PurityTable()
	require.Len(t, table, 4)
	require.Equal(t, 1.0, table[model.Karat24])
	require.InDelta(t, 22.0/24, table[model.Karat22], 1e-15)
	require.InDelta(t, 21.0/24, table[model.Karat21], 1e-15)
	require.InDelta(t, 0.75, table[model.Karat18], 1e-15)

	t.Run("should not leak the internal table", func(t *testing.T) {
		table[model.Karat24] = 0.5
		require.Equal(t, 1.0, model.Karat24.Purity())
	})

	t.Run("should reject unsupported karats", func(t *testing.T) {
		require.False(t, model.Karat(14).Valid())
		require.Zero(t, model.Karat(14).Purity())
		require.Equal(t, "14K", model.Karat(14).String())
	})
}

func Test_NewKaratPrices(t *testing.T) {
	t.Run("should derive per-gram prices for every karat", func(t *testing.T) {
		quotedAt := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)

		prices, err := model.NewKaratPrices("BHD", 62.1, quotedAt)
		require.NoError(t, err)

		require.Equal(t, "BHD", prices.Currency)
		require.Equal(t, quotedAt, prices.QuotedAt)
		require.InEpsilon(t, 62.1/31.1034768, prices.PerGramPure, 1e-9)
		require.InDelta(t, 1.99656, prices.At(model.Karat24), 1e-5)
		require.InDelta(t, 1.83018, prices.At(model.Karat22), 1e-5)
		require.InDelta(t, 1.74699, prices.At(model.Karat21), 1e-5)
		require.InDelta(t, 1.49742, prices.At(model.Karat18), 1e-5)
		require.Equal(t, prices.PerGramPure, prices.At(model.Karat24))
	})

	t.Run("should keep karat order for any positive rate", func(t *testing.T) {
		for _, rate := range []float64{1e-6, 0.5, 62.1, 2650.37, 1e9} {
			prices, err := model.NewKaratPrices("BHD", rate, time.Time{})
			require.NoError(t, err)

			require.Less(t, prices.At(model.Karat18), prices.At(model.Karat21))
			require.Less(t, prices.At(model.Karat21), prices.At(model.Karat22))
			require.Less(t, prices.At(model.Karat22), prices.At(model.Karat24))
			for _, k := range model.Karats {
				require.InEpsilon(t, prices.PerGramPure*float64(k)/24, prices.At(k), 1e-9)
			}
		}
	})

	t.Run("should reject invalid rates", func(t *testing.T) {
		for _, rate := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
			prices, err := model.NewKaratPrices("BHD", rate, time.Time{})
			require.ErrorIs(t, err, model.ErrInvalidRate)
			require.Nil(t, prices)
		}
	})
}

func Test_KaratPricesClone(t *testing.T) {
	prices, err := model.NewKaratPrices("BHD", 62.1, time.Time{})
	require.NoError(t, err)

	snapshot := model.Snapshot{Prices: prices}
	cp := snapshot.Clone()
	cp.Prices.ByKarat[model.Karat24] = 0

	require.InDelta(t, 1.99656, snapshot.Prices.At(model.Karat24), 1e-5)
	require.True(t, math.IsNaN((*model.KaratPrices)(nil).At(model.Karat24)))
	require.False(t, model.Snapshot{}.HasPrices())
}
