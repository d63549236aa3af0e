// Package input - Normalized quote request envelope
// Everything downstream consumes the structured form only. Decoding,
// date parsing and range-literal parsing happen here, at the boundary;
// the engine never sees a raw string.
package input

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"rental-pricing/core/daterange"
	"rental-pricing/core/types"
	"rental-pricing/internal/errors"
)

// Request is the wire form of a quote request, as produced by the CLI's
// request files and the API's request bodies. Dates travel as strings
// and seasonal ranges as Postgres range literals.
type Request struct {
	// Listing is the listing pricing snapshot
	Listing types.Listing `json:"listing"`

	// FeeRule is the optional fee override row
	FeeRule *types.FeeRule `json:"feeRule,omitempty"`

	// PriceRules are the listing's pricing rules, in listing order
	PriceRules []PriceRulePayload `json:"priceRules,omitempty"`

	// CalendarOverrides pin specific dates to absolute prices
	CalendarOverrides []CalendarOverridePayload `json:"calendarOverrides,omitempty"`

	// TaxRules are candidate occupancy tax rules
	TaxRules []types.TaxRule `json:"taxRules,omitempty"`

	// ExchangeRates are available display conversion rates
	ExchangeRates []ExchangeRatePayload `json:"exchangeRates,omitempty"`

	// TargetCurrency requests an optional display conversion
	TargetCurrency string `json:"targetCurrency,omitempty"`

	// CheckIn is the stay start date (yyyy-mm-dd)
	CheckIn string `json:"checkIn"`

	// CheckOut is the stay end date, exclusive (yyyy-mm-dd)
	CheckOut string `json:"checkOut"`

	// QuoteCreatedAt anchors last-minute and early-bird thresholds
	QuoteCreatedAt string `json:"quoteCreatedAt,omitempty"`

	// Guests is the guest count
	Guests int `json:"guests,omitempty"`

	// Pets is the pet count
	Pets int `json:"pets,omitempty"`

	// IncludePetFee opts the stay into pet fees
	IncludePetFee bool `json:"includePetFee,omitempty"`
}

// PriceRulePayload is the wire form of a price rule row
type PriceRulePayload struct {
	Kind           string          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	IsPercent      bool            `json:"is_percent"`
	DateRange      string          `json:"date_range,omitempty"`
	MinNights      int             `json:"min_nights,omitempty"`
	ThresholdDays  int             `json:"threshold_days,omitempty"`
	GuestThreshold int             `json:"extra_guest_threshold,omitempty"`
}

// CalendarOverridePayload is the wire form of a calendar override row
type CalendarOverridePayload struct {
	Date  string          `json:"date"`
	Price decimal.Decimal `json:"price"`
}

// ExchangeRatePayload is the wire form of an exchange rate row
type ExchangeRatePayload struct {
	Base  string          `json:"base"`
	Quote string          `json:"quote"`
	Rate  decimal.Decimal `json:"rate"`
	AsOf  string          `json:"as_of,omitempty"`
}

// Decode reads a Request from JSON
func Decode(r io.Reader) (*Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, errors.Parsing("invalid quote request JSON", err)
	}
	return &req, nil
}

// Load reads a Request from a JSON file
func Load(path string) (*Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeInput, err, "cannot open request file %s", path)
	}
	defer f.Close()
	return Decode(f)
}

// Hash computes a deterministic content hash of the request, used to
// correlate a breakdown with the exact inputs that produced it.
func (r *Request) Hash() string {
	data, _ := json.Marshal(r)
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ToQuoteInput converts the wire request into the structured engine
// input. This is the only place range literals and date strings are
// parsed; structurally invalid values are Parsing/Input errors.
func (r *Request) ToQuoteInput() (types.QuoteInput, error) {
	input := types.QuoteInput{
		Listing:        r.Listing,
		FeeRule:        r.FeeRule,
		TaxRules:       r.TaxRules,
		TargetCurrency: types.Currency(r.TargetCurrency),
		Guests:         r.Guests,
		Pets:           r.Pets,
		IncludePetFee:  r.IncludePetFee,
	}

	checkIn, err := parseDate(r.CheckIn, "checkIn")
	if err != nil {
		return types.QuoteInput{}, err
	}
	checkOut, err := parseDate(r.CheckOut, "checkOut")
	if err != nil {
		return types.QuoteInput{}, err
	}
	input.CheckIn = checkIn
	input.CheckOut = checkOut

	if r.QuoteCreatedAt != "" {
		createdAt, err := parseTimestamp(r.QuoteCreatedAt, "quoteCreatedAt")
		if err != nil {
			return types.QuoteInput{}, err
		}
		input.QuoteCreatedAt = &createdAt
	}

	for _, rule := range r.PriceRules {
		converted := types.PriceRule{
			Kind:           types.RuleKind(rule.Kind),
			Amount:         rule.Amount,
			IsPercent:      rule.IsPercent,
			MinNights:      rule.MinNights,
			ThresholdDays:  rule.ThresholdDays,
			GuestThreshold: rule.GuestThreshold,
		}
		if rule.DateRange != "" {
			season, err := daterange.Parse(rule.DateRange)
			if err != nil {
				return types.QuoteInput{}, err
			}
			converted.Season = &season
		}
		input.PriceRules = append(input.PriceRules, converted)
	}

	for _, ov := range r.CalendarOverrides {
		date, err := parseDate(ov.Date, "calendarOverrides.date")
		if err != nil {
			return types.QuoteInput{}, err
		}
		input.CalendarOverrides = append(input.CalendarOverrides, types.CalendarOverride{
			Date:  date,
			Price: ov.Price,
		})
	}

	for _, rate := range r.ExchangeRates {
		converted := types.ExchangeRate{
			Base:  types.Currency(rate.Base),
			Quote: types.Currency(rate.Quote),
			Rate:  rate.Rate,
		}
		if rate.AsOf != "" {
			asOf, err := parseTimestamp(rate.AsOf, "exchangeRates.as_of")
			if err != nil {
				return types.QuoteInput{}, err
			}
			converted.AsOf = asOf
		}
		input.ExchangeRates = append(input.ExchangeRates, converted)
	}

	return input, nil
}

func parseDate(raw, field string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.Inputf("%s is required", field)
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.TypeInput, err, "%s must be a yyyy-mm-dd date", field)
	}
	return t, nil
}

func parseTimestamp(raw, field string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, errors.Wrapf(errors.TypeInput, err, "%s must be an RFC 3339 timestamp or yyyy-mm-dd date", field)
	}
	return t, nil
}
