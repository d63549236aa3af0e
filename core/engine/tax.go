// Package engine - Occupancy tax resolution
package engine

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"rental-pricing/core/types"
)

// resolveTaxRule picks the most specific matching tax rule.
//
// A rule that names a country only matches listings in that country;
// matching country scores 4, state 2, city 1. A rule with no geographic
// fields matches everything with score 0. Ties keep input order: the
// first rule with the maximum score wins.
func resolveTaxRule(listing types.Listing, rules []types.TaxRule) *types.TaxRule {
	best := -1
	var winner *types.TaxRule

	for i := range rules {
		rule := &rules[i]
		score := 0

		if rule.Country != "" {
			if !strings.EqualFold(rule.Country, listing.Country) {
				continue
			}
			score += 4
		}
		if rule.State != "" {
			if !strings.EqualFold(rule.State, listing.State) {
				continue
			}
			score += 2
		}
		if rule.City != "" {
			if !strings.EqualFold(rule.City, listing.City) {
				continue
			}
			score += 1
		}

		if score > best {
			best = score
			winner = rule
		}
	}

	return winner
}

// occupancyTaxes applies at most one occupancy tax rule to the pre-tax
// total. A non-positive computed amount produces no line item.
func occupancyTaxes(listing types.Listing, preTaxTotal decimal.Decimal, rules []types.TaxRule) []types.LineItem {
	rule := resolveTaxRule(listing, rules)
	if rule == nil {
		return nil
	}

	pct := rule.OccupancyTaxPct
	if !pct.IsPositive() {
		return nil
	}

	amount := roundCents(preTaxTotal.Mul(pct).Div(hundred))
	if !amount.IsPositive() {
		return nil
	}

	return []types.LineItem{{
		Code:        "occupancy_tax",
		Label:       "Occupancy tax",
		Amount:      amount,
		Description: fmt.Sprintf("%s%% based on location", pct.String()),
	}}
}
