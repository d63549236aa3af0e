// Package types defines the pricing domain model.
package types

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"rental-pricing/core/daterange"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Normalize returns the upper-cased code
func (c Currency) Normalize() Currency {
	return Currency(strings.ToUpper(string(c)))
}

// RuleKind identifies a price rule variant. The set is closed; consumers
// ignore kinds they do not recognize so new kinds can be introduced upstream
// without breaking existing quotes.
type RuleKind string

const (
	// RuleWeekendMarkup adjusts Friday and Saturday nights
	RuleWeekendMarkup RuleKind = "weekend_markup"

	// RuleSeasonal adjusts nights inside the rule's season
	RuleSeasonal RuleKind = "seasonal"

	// RuleLengthOfStay adjusts the whole stay above a minimum night count
	RuleLengthOfStay RuleKind = "length_of_stay"

	// RuleLastMinute adjusts stays booked close to check-in
	RuleLastMinute RuleKind = "last_minute"

	// RuleEarlyBird adjusts stays booked far ahead of check-in
	RuleEarlyBird RuleKind = "early_bird"

	// RuleExtraGuest prices guests above the listing threshold
	RuleExtraGuest RuleKind = "extra_guest"

	// RulePetFee marks a pet fee rule (priced through the fee rule)
	RulePetFee RuleKind = "pet_fee"
)

// PerNight reports whether the kind applies to individual nights.
// All other kinds are stay-level.
func (k RuleKind) PerNight() bool {
	return k == RuleWeekendMarkup || k == RuleSeasonal
}

// Listing carries the pricing facts of a listing. The engine never
// fetches these; the caller supplies a snapshot per quote.
type Listing struct {
	// NightlyRate is the base nightly price
	NightlyRate decimal.Decimal `json:"price_nightly"`

	// Currency is the authoritative charge currency
	Currency Currency `json:"currency"`

	// CleaningFee is the default cleaning fee
	CleaningFee decimal.Decimal `json:"cleaning_fee"`

	// ServiceFee is the default flat service fee
	ServiceFee decimal.Decimal `json:"service_fee"`

	// City, State and Country locate the listing for tax matching
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`

	// MaxGuests is the guest count included in the base rate
	MaxGuests int `json:"max_guests"`
}

// PriceRule is one pricing rule row. Only the fields relevant to the
// rule's kind are set; the rest stay zero.
type PriceRule struct {
	// Kind selects the rule variant
	Kind RuleKind `json:"kind"`

	// Amount is the adjustment value, absolute or percentage
	Amount decimal.Decimal `json:"amount"`

	// IsPercent interprets Amount as a percentage of the running total
	IsPercent bool `json:"is_percent"`

	// Season bounds seasonal rules
	Season *daterange.Range `json:"season,omitempty"`

	// MinNights gates length_of_stay rules
	MinNights int `json:"min_nights,omitempty"`

	// ThresholdDays gates last_minute and early_bird rules
	ThresholdDays int `json:"threshold_days,omitempty"`

	// GuestThreshold overrides the listing guest threshold for extra_guest rules
	GuestThreshold int `json:"extra_guest_threshold,omitempty"`
}

// CalendarOverride pins a specific date to an absolute nightly price
type CalendarOverride struct {
	// Date is the calendar night being overridden
	Date time.Time `json:"date"`

	// Price replaces the base rate for that night
	Price decimal.Decimal `json:"price"`
}

// FeeRule carries listing-level fee overrides. A nil CleaningFee falls
// back to the listing default; zero values elsewhere mean "not set".
type FeeRule struct {
	// CleaningFee overrides the listing cleaning fee when non-nil
	CleaningFee *decimal.Decimal `json:"cleaning_fee,omitempty"`

	// ServiceFeeBps prices the service fee as basis points of the nightly subtotal
	ServiceFeeBps int64 `json:"service_fee_bps,omitempty"`

	// SecurityDeposit is an informational deposit charge
	SecurityDeposit decimal.Decimal `json:"security_deposit,omitempty"`

	// ExtraGuestFee is the flat per-guest per-night fee
	ExtraGuestFee decimal.Decimal `json:"extra_guest_fee,omitempty"`

	// PetFee is the per-pet stay fee
	PetFee decimal.Decimal `json:"pet_fee,omitempty"`
}

// TaxRule matches a listing geography to an occupancy tax percentage
type TaxRule struct {
	// Country is required to match when set
	Country string `json:"country,omitempty"`

	// State refines the match
	State string `json:"state,omitempty"`

	// City refines the match further
	City string `json:"city,omitempty"`

	// OccupancyTaxPct is the tax percentage applied to the pre-tax total
	OccupancyTaxPct decimal.Decimal `json:"occupancy_tax_pct"`
}

// ExchangeRate is a direct base->quote conversion rate row
type ExchangeRate struct {
	// Base is the currency being converted from
	Base Currency `json:"base"`

	// Quote is the currency being converted to
	Quote Currency `json:"quote"`

	// Rate is the multiplier applied to base amounts
	Rate decimal.Decimal `json:"rate"`

	// AsOf is when the rate was captured
	AsOf time.Time `json:"as_of,omitempty"`
}
