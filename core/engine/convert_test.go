package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-pricing/core/types"
)

func TestConversionUsesDirectRate(t *testing.T) {
	rates := []types.ExchangeRate{
		{Base: types.CurrencyEUR, Quote: types.CurrencyUSD, Rate: dec("1.1")},
	}

	convs := conversions(types.CurrencyEUR, types.CurrencyUSD, dec("500"), rates)
	require.Len(t, convs, 1)
	assert.Equal(t, types.CurrencyUSD, convs[0].Currency)
	assert.Equal(t, "1.1", convs[0].Rate.String())
	assert.Equal(t, "550.00", convs[0].GrandTotal.StringFixed(2))
}

func TestConversionMissingRateOmitsQuietly(t *testing.T) {
	rates := []types.ExchangeRate{
		{Base: types.CurrencyUSD, Quote: types.CurrencyEUR, Rate: dec("0.9")}, // reverse only
	}

	assert.Empty(t, conversions(types.CurrencyEUR, types.CurrencyUSD, dec("500"), rates))
	assert.Empty(t, conversions(types.CurrencyEUR, types.CurrencyGBP, dec("500"), rates))
}

func TestConversionSameCurrencyIsNoop(t *testing.T) {
	rates := []types.ExchangeRate{
		{Base: types.CurrencyEUR, Quote: types.CurrencyEUR, Rate: dec("1")},
	}

	assert.Empty(t, conversions(types.CurrencyEUR, types.CurrencyEUR, dec("500"), rates))
	assert.Empty(t, conversions(types.CurrencyEUR, "", dec("500"), rates))
}

func TestConversionNormalizesCurrencyCase(t *testing.T) {
	rates := []types.ExchangeRate{
		{Base: "eur", Quote: "usd", Rate: dec("1.1")},
	}

	convs := conversions(types.CurrencyEUR, "usd", dec("100"), rates)
	require.Len(t, convs, 1)
	assert.Equal(t, types.CurrencyUSD, convs[0].Currency)
	assert.Equal(t, "110.00", convs[0].GrandTotal.StringFixed(2))
}
