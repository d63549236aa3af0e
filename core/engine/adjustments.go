// Package engine - Stay-level adjustments
package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"rental-pricing/core/types"
)

// stayAdjustments evaluates length-of-stay, last-minute and early-bird
// rules once against the whole stay. Rules with unmet preconditions
// silently produce no line item; every triggering rule yields its own.
func stayAdjustments(rules []types.PriceRule, nightlySubtotal decimal.Decimal, nights int, checkIn, createdAt time.Time) []types.LineItem {
	var items []types.LineItem

	for _, rule := range rules {
		switch rule.Kind {
		case types.RuleLengthOfStay:
			if rule.MinNights > 0 && nights < rule.MinNights {
				continue
			}
			items = appendAdjustment(items, rule, nightlySubtotal, "length_of_stay", "Length of stay adjustment")

		case types.RuleLastMinute:
			if rule.ThresholdDays <= 0 {
				continue
			}
			if daysBetween(createdAt, checkIn) > rule.ThresholdDays {
				continue
			}
			items = appendAdjustment(items, rule, nightlySubtotal, "last_minute", "Last minute adjustment")

		case types.RuleEarlyBird:
			if rule.ThresholdDays <= 0 {
				continue
			}
			if daysBetween(createdAt, checkIn) < rule.ThresholdDays {
				continue
			}
			items = appendAdjustment(items, rule, nightlySubtotal, "early_bird", "Early bird adjustment")
		}
	}

	return items
}

func appendAdjustment(items []types.LineItem, rule types.PriceRule, nightlySubtotal decimal.Decimal, code, label string) []types.LineItem {
	amount := ruleDelta(rule, nightlySubtotal)
	if amount.IsZero() {
		return items
	}

	return append(items, types.LineItem{
		Code:   code,
		Label:  label,
		Amount: amount,
	})
}
