// Package types - Quote input and breakdown types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustmentSource tags where a nightly adjustment came from
type AdjustmentSource string

const (
	// SourceBase is the listing base rate
	SourceBase AdjustmentSource = "base"

	// SourceOverride is a calendar override
	SourceOverride AdjustmentSource = "override"

	// SourceRule is a price rule
	SourceRule AdjustmentSource = "rule"
)

// NightlyAdjustment is one named, signed delta applied to a night
type NightlyAdjustment struct {
	// Source tags the adjustment origin
	Source AdjustmentSource `json:"source"`

	// Reason is a human-readable explanation
	Reason string `json:"reason"`

	// Amount is the signed delta
	Amount decimal.Decimal `json:"amount"`
}

// NightlyDetail is the full audit record for a single night
type NightlyDetail struct {
	// Date is the calendar night (yyyy-mm-dd)
	Date string `json:"date"`

	// BaseRate is the listing base rate before any adjustment
	BaseRate decimal.Decimal `json:"baseRate"`

	// Adjustments lists the deltas applied, in application order
	Adjustments []NightlyAdjustment `json:"adjustments"`

	// TotalRate is the resulting rate for the night
	TotalRate decimal.Decimal `json:"totalRate"`
}

// LineItem is a named, signed monetary amount contributing to the total
type LineItem struct {
	// Code is the machine-readable identifier
	Code string `json:"code"`

	// Label is the human-readable name
	Label string `json:"label"`

	// Amount is the signed amount
	Amount decimal.Decimal `json:"amount"`

	// Description provides additional context
	Description string `json:"description,omitempty"`
}

// Conversion expresses the grand total in a display currency.
// It never changes the authoritative charge currency.
type Conversion struct {
	// Currency is the display currency
	Currency Currency `json:"currency"`

	// Rate is the exchange rate used
	Rate decimal.Decimal `json:"rate"`

	// GrandTotal is the converted total
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

// QuoteBreakdown is the fully itemized price quote
type QuoteBreakdown struct {
	// Currency is the authoritative charge currency
	Currency Currency `json:"currency"`

	// Nights is the priced night count
	Nights int `json:"nights"`

	// NightlyDetails is the per-night audit trail
	NightlyDetails []NightlyDetail `json:"nightlyDetails"`

	// NightlySubtotal is the sum of all per-night totals
	NightlySubtotal decimal.Decimal `json:"nightlySubtotal"`

	// ExtraGuestFees are fees for guests above the listing threshold
	ExtraGuestFees []LineItem `json:"extraGuestFees"`

	// StayFees are cleaning, service, deposit and pet fees
	StayFees []LineItem `json:"stayFees"`

	// Adjustments are stay-level discounts and markups
	Adjustments []LineItem `json:"adjustments"`

	// Taxes are the applied tax line items
	Taxes []LineItem `json:"taxes"`

	// TotalBeforeTaxes is the pre-tax total
	TotalBeforeTaxes decimal.Decimal `json:"totalBeforeTaxes"`

	// TotalTaxes is the tax total
	TotalTaxes decimal.Decimal `json:"totalTaxes"`

	// GrandTotal is the final charge amount
	GrandTotal decimal.Decimal `json:"grandTotal"`

	// Conversions are optional display-currency conversions
	Conversions []Conversion `json:"conversions,omitempty"`
}

// QuoteInput bundles everything the engine needs for one quote.
// All records are caller-supplied snapshots; optional slices may be empty.
type QuoteInput struct {
	// Listing is the listing pricing snapshot
	Listing Listing `json:"listing"`

	// FeeRule is the optional fee override row
	FeeRule *FeeRule `json:"feeRule,omitempty"`

	// PriceRules are the listing's pricing rules, in listing order
	PriceRules []PriceRule `json:"priceRules,omitempty"`

	// CalendarOverrides pin specific dates to absolute prices
	CalendarOverrides []CalendarOverride `json:"calendarOverrides,omitempty"`

	// TaxRules are candidate occupancy tax rules
	TaxRules []TaxRule `json:"taxRules,omitempty"`

	// ExchangeRates are available display conversion rates
	ExchangeRates []ExchangeRate `json:"exchangeRates,omitempty"`

	// TargetCurrency requests an optional display conversion
	TargetCurrency Currency `json:"targetCurrency,omitempty"`

	// CheckIn is the stay start date
	CheckIn time.Time `json:"checkIn"`

	// CheckOut is the stay end date (exclusive)
	CheckOut time.Time `json:"checkOut"`

	// QuoteCreatedAt anchors last-minute and early-bird thresholds.
	// Callers should supply a fixed timestamp for reproducible quotes.
	QuoteCreatedAt *time.Time `json:"quoteCreatedAt,omitempty"`

	// Guests is the guest count
	Guests int `json:"guests,omitempty"`

	// Pets is the pet count
	Pets int `json:"pets,omitempty"`

	// IncludePetFee opts the stay into pet fees
	IncludePetFee bool `json:"includePetFee,omitempty"`
}
