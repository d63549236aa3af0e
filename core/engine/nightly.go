// Package engine - Per-night rate calculation
package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-pricing/core/types"
)

// nightlyRates produces the per-night audit sequence and the nightly
// subtotal for the half-open window [checkIn, checkOut).
//
// For each night: start from the base rate, apply a calendar override if
// one exists for that exact date, then apply weekend and seasonal rules
// in listing order. Percentage rules compound against the running total,
// so the final amount is order-dependent when several apply to one night.
func nightlyRates(input types.QuoteInput, checkIn, checkOut time.Time) ([]types.NightlyDetail, decimal.Decimal) {
	base := input.Listing.NightlyRate

	overrides := make(map[string]decimal.Decimal, len(input.CalendarOverrides))
	for _, ov := range input.CalendarOverrides {
		overrides[dateOnly(ov.Date).Format(dateLayout)] = ov.Price
	}

	var details []types.NightlyDetail
	for date := checkIn; date.Before(checkOut); date = date.AddDate(0, 0, 1) {
		key := date.Format(dateLayout)
		total := base
		var adjustments []types.NightlyAdjustment

		// Overrides replace the base rate before any rule applies.
		if price, ok := overrides[key]; ok {
			adjustments = append(adjustments, types.NightlyAdjustment{
				Source: types.SourceOverride,
				Reason: "Calendar override",
				Amount: price.Sub(total),
			})
			total = price
		}

		for _, rule := range input.PriceRules {
			if !rule.Kind.PerNight() {
				continue
			}

			switch rule.Kind {
			case types.RuleWeekendMarkup:
				if !isWeekend(date) {
					continue
				}
				total = applyNightRule(rule, total, "Weekend rate", &adjustments)
			case types.RuleSeasonal:
				if rule.Season == nil || !rule.Season.Contains(date) {
					continue
				}
				total = applyNightRule(rule, total, "Seasonal adjustment", &adjustments)
			}
		}

		details = append(details, types.NightlyDetail{
			Date:        key,
			BaseRate:    base,
			Adjustments: adjustments,
			TotalRate:   total,
		})
	}

	subtotal := decimal.Zero
	for _, night := range details {
		subtotal = subtotal.Add(night.TotalRate)
	}

	return details, roundCents(subtotal)
}

// applyNightRule adds a triggered rule's delta to the running total and
// records it. Zero deltas leave no trace.
func applyNightRule(rule types.PriceRule, total decimal.Decimal, reason string, adjustments *[]types.NightlyAdjustment) decimal.Decimal {
	delta := ruleDelta(rule, total)
	if delta.IsZero() {
		return total
	}

	*adjustments = append(*adjustments, types.NightlyAdjustment{
		Source: types.SourceRule,
		Reason: reason,
		Amount: delta,
	})
	return roundCents(total.Add(delta))
}
