// Package engine computes deterministic, auditable stay price quotes.
// The engine is a pure computation: it performs no I/O, holds no state
// across calls and never mutates its inputs. Identical inputs (including
// the quote creation timestamp) always produce an identical breakdown.
package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-pricing/core/types"
	"rental-pricing/internal/errors"
)

var (
	hundred     = decimal.NewFromInt(100)
	basisPoints = decimal.NewFromInt(10000)
)

// Config contains the engine's explicit configuration. Nothing is read
// from ambient process state.
type Config struct {
	// BaseCurrency is used when a listing carries no currency
	BaseCurrency types.Currency

	// DefaultLocale is used for display formatting downstream
	DefaultLocale string

	// Now supplies the quote creation time when the caller omits one.
	// Tests inject a fixed clock here for bit-for-bit reproducibility.
	Now func() time.Time
}

func (c Config) withDefaults() Config {
	if c.BaseCurrency == "" {
		c.BaseCurrency = types.CurrencyUSD
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = "en"
	}
	if c.Now == nil {
		c.Now = time.Now
	}
	return c
}

// Engine computes price quotes
type Engine struct {
	cfg Config
}

// New creates an engine with the given configuration
func New(cfg Config) *Engine {
	return &Engine{cfg: cfg.withDefaults()}
}

// Locale returns the engine's display locale
func (e *Engine) Locale() string {
	return e.cfg.DefaultLocale
}

// Quote computes the itemized breakdown for a stay.
//
// Missing optional inputs (rules, fee rule, tax rules, exchange rates)
// never produce an error; each stage degrades to "no line item". The only
// hard failure is an invalid stay window: check-out must be strictly
// after check-in.
func (e *Engine) Quote(input types.QuoteInput) (*types.QuoteBreakdown, error) {
	if input.CheckIn.IsZero() || input.CheckOut.IsZero() {
		return nil, errors.Input("check-in and check-out dates are required")
	}

	checkIn := dateOnly(input.CheckIn)
	checkOut := dateOnly(input.CheckOut)
	if !checkOut.After(checkIn) {
		return nil, errors.Inputf("check-out %s must be after check-in %s",
			checkOut.Format(dateLayout), checkIn.Format(dateLayout))
	}

	nights := daysBetween(checkIn, checkOut)
	if nights < 1 {
		nights = 1
	}

	createdAt := e.cfg.Now()
	if input.QuoteCreatedAt != nil {
		createdAt = *input.QuoteCreatedAt
	}

	details, subtotal := nightlyRates(input, checkIn, checkOut)

	// Base for percentage extra-guest fees only.
	averageNightly := subtotal.Div(decimal.NewFromInt(int64(nights)))

	adjustments := stayAdjustments(input.PriceRules, subtotal, nights, checkIn, createdAt)
	guestFees := extraGuestFees(input.PriceRules, input.FeeRule, input.Guests, input.Listing, nights, averageNightly)
	fees := stayFees(input.FeeRule, input.Listing, subtotal, input.Pets, input.IncludePetFee)

	totalBeforeTaxes := roundCents(subtotal.
		Add(sumItems(adjustments)).
		Add(sumItems(guestFees)).
		Add(sumItems(fees)))

	taxes := occupancyTaxes(input.Listing, totalBeforeTaxes, input.TaxRules)
	totalTaxes := roundCents(sumItems(taxes))
	grandTotal := roundCents(totalBeforeTaxes.Add(totalTaxes))

	currency := input.Listing.Currency.Normalize()
	if currency == "" {
		currency = e.cfg.BaseCurrency.Normalize()
	}

	return &types.QuoteBreakdown{
		Currency:         currency,
		Nights:           nights,
		NightlyDetails:   details,
		NightlySubtotal:  subtotal,
		ExtraGuestFees:   guestFees,
		StayFees:         fees,
		Adjustments:      adjustments,
		Taxes:            taxes,
		TotalBeforeTaxes: totalBeforeTaxes,
		TotalTaxes:       totalTaxes,
		GrandTotal:       grandTotal,
		Conversions:      conversions(currency, input.TargetCurrency, grandTotal, input.ExchangeRates),
	}, nil
}

// roundCents rounds to 2 decimal places. Applied after every arithmetic
// step that could introduce drift, never only at the very end.
func roundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ruleDelta evaluates a rule amount against a running total
func ruleDelta(rule types.PriceRule, runningTotal decimal.Decimal) decimal.Decimal {
	if rule.IsPercent {
		return roundCents(runningTotal.Mul(rule.Amount).Div(hundred))
	}
	return roundCents(rule.Amount)
}

func sumItems(items []types.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Amount)
	}
	return sum
}
