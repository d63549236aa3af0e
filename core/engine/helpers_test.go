package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-pricing/core/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// fixedClock pins the engine clock for reproducible tests
func fixedClock(s string) func() time.Time {
	t := day(s)
	return func() time.Time { return t }
}

// testListing is the worked-example listing: EUR 180/night, cleaning 30,
// service 20, sleeps 4, located in San Francisco.
func testListing() types.Listing {
	return types.Listing{
		NightlyRate: dec("180"),
		Currency:    types.CurrencyEUR,
		CleaningFee: dec("30"),
		ServiceFee:  dec("20"),
		City:        "San Francisco",
		State:       "CA",
		Country:     "US",
		MaxGuests:   4,
	}
}

func testEngine() *Engine {
	return New(Config{Now: fixedClock("2026-06-01")})
}
