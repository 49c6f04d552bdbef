package pricefmt_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"goldkarat/internal/pricefmt"
)

func Test_Digits(t *testing.T) {
	require.Equal(t, 3, pricefmt.Digits("BHD"))
	require.Equal(t, 3, pricefmt.Digits("KWD"))
	require.Equal(t, 2, pricefmt.Digits("USD"))
	require.Equal(t, 0, pricefmt.Digits("JPY"))
	require.Equal(t, 2, pricefmt.Digits("not-a-code"))
}

func Test_Money(t *testing.T) {
	t.Run("should round to the currency minor units", func(t *testing.T) {
		require.Equal(t, "BHD 1.997", pricefmt.Money("BHD", 62.1/31.1034768))
		require.Equal(t, "BHD 1.497", pricefmt.Money("BHD", 62.1/31.1034768*0.75))
		require.Equal(t, "USD 85.52", pricefmt.Money("USD", 85.5163))
		require.Equal(t, "JPY 12346", pricefmt.Money("JPY", 12345.5))
	})

	t.Run("should render missing amounts", func(t *testing.T) {
		require.Equal(t, pricefmt.Missing, pricefmt.Money("BHD", math.NaN()))
		require.Equal(t, pricefmt.Missing, pricefmt.Money("BHD", math.Inf(1)))
		require.Equal(t, pricefmt.Missing, pricefmt.Amount("BHD", math.NaN()))
	})
}
