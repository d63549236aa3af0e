// Package output renders quote breakdowns for humans and machines.
// This package never recomputes amounts; it only presents what the
// engine produced.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"rental-pricing/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// WriteJSON renders the breakdown as indented JSON
func WriteJSON(w io.Writer, breakdown *types.QuoteBreakdown) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(breakdown)
}

// WriteTable renders the breakdown as a boxed CLI table
func WriteTable(w io.Writer, breakdown *types.QuoteBreakdown, showNightly bool) {
	cur := breakdown.Currency.String()

	fmt.Fprintln(w, "┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Fprintln(w, "│                          STAY PRICE BREAKDOWN                           │")
	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")

	fmt.Fprintf(w, "│ %-50s %20s │\n",
		fmt.Sprintf("Nightly subtotal (%d nights)", breakdown.Nights),
		money(breakdown.NightlySubtotal, cur))

	if showNightly {
		for _, night := range breakdown.NightlyDetails {
			fmt.Fprintf(w, "│   └─ %-46s %20s │\n",
				night.Date,
				money(night.TotalRate, cur))
			for _, adj := range night.Adjustments {
				fmt.Fprintf(w, "│       · %-43s %20s │\n",
					truncate(adj.Reason, 43),
					money(adj.Amount, cur))
			}
		}
	}

	printItems := func(items []types.LineItem) {
		for _, item := range items {
			fmt.Fprintf(w, "│ %-50s %20s │\n",
				truncate(item.Label, 50),
				money(item.Amount, cur))
			if item.Description != "" {
				fmt.Fprintf(w, "│   └─ %-67s │\n", truncate(item.Description, 67))
			}
		}
	}

	printItems(breakdown.Adjustments)
	printItems(breakdown.ExtraGuestFees)
	printItems(breakdown.StayFees)

	fmt.Fprintln(w, "├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Fprintf(w, "│ %-50s %20s │\n", "TOTAL BEFORE TAXES", money(breakdown.TotalBeforeTaxes, cur))
	printItems(breakdown.Taxes)
	fmt.Fprintf(w, "│ %-50s %20s │\n", "GRAND TOTAL", money(breakdown.GrandTotal, cur))

	for _, conv := range breakdown.Conversions {
		fmt.Fprintf(w, "│ %-50s %20s │\n",
			fmt.Sprintf("Displayed in %s (rate %s)", conv.Currency, conv.Rate.String()),
			money(conv.GrandTotal, conv.Currency.String()))
	}

	fmt.Fprintln(w, "└─────────────────────────────────────────────────────────────────────────┘")
}

func money(amount decimal.Decimal, currency string) string {
	return fmt.Sprintf("%s %s", currency, amount.StringFixed(2))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
