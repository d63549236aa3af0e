// Package engine - Display-currency conversion
package engine

import (
	"github.com/shopspring/decimal"

	"rental-pricing/core/types"
)

// conversions optionally expresses the grand total in a display currency.
// Only a direct base->target rate row produces a conversion; a missing
// rate omits the conversion rather than erroring. The authoritative
// charge currency never changes.
func conversions(base, target types.Currency, grandTotal decimal.Decimal, rates []types.ExchangeRate) []types.Conversion {
	target = target.Normalize()
	if target == "" || target == base.Normalize() {
		return nil
	}

	for _, rate := range rates {
		if rate.Base.Normalize() != base.Normalize() || rate.Quote.Normalize() != target {
			continue
		}
		return []types.Conversion{{
			Currency:   target,
			Rate:       rate.Rate,
			GrandTotal: roundCents(rate.Rate.Mul(grandTotal)),
		}}
	}

	return nil
}
