// Package output - Locale-aware display formatting
package output

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"rental-pricing/core/types"
)

// DisplayQuote is a breakdown decorated with locale-formatted totals
// for presentation. It performs no recomputation.
type DisplayQuote struct {
	*types.QuoteBreakdown

	// FormattedTotals are the monetary totals rendered for the locale
	FormattedTotals FormattedTotals `json:"formattedTotals"`
}

// FormattedTotals holds the presentation strings for the quote totals
type FormattedTotals struct {
	Subtotal string `json:"subtotal"`
	Taxes    string `json:"taxes"`
	Total    string `json:"total"`
}

// ForDisplay decorates a breakdown with locale-formatted totals
func ForDisplay(breakdown *types.QuoteBreakdown, locale string) DisplayQuote {
	return DisplayQuote{
		QuoteBreakdown: breakdown,
		FormattedTotals: FormattedTotals{
			Subtotal: FormatAmount(breakdown.TotalBeforeTaxes, breakdown.Currency, locale),
			Taxes:    FormatAmount(breakdown.TotalTaxes, breakdown.Currency, locale),
			Total:    FormatAmount(breakdown.GrandTotal, breakdown.Currency, locale),
		},
	}
}

// FormatAmount renders a monetary amount with the currency symbol
// appropriate for the locale. Unknown currencies or locales fall back
// to a plain "CUR 123.45" rendering rather than erroring.
func FormatAmount(amount decimal.Decimal, cur types.Currency, locale string) string {
	unit, err := currency.ParseISO(cur.Normalize().String())
	if err != nil {
		return fmt.Sprintf("%s %s", cur, amount.StringFixed(2))
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	printer := message.NewPrinter(tag)
	return printer.Sprintf("%v", currency.Symbol(unit.Amount(amount.InexactFloat64())))
}
