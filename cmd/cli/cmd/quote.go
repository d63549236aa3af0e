// Package cmd - quote command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rental-pricing/core/engine"
	"rental-pricing/core/input"
	"rental-pricing/core/output"
	"rental-pricing/core/types"
	"rental-pricing/internal/config"
	"rental-pricing/internal/logging"
)

var (
	outputFormat  string
	targetFlag    string
	guestsFlag    int
	petsFlag      int
	includePets   bool
	checkInFlag   string
	checkOutFlag  string
	createdAtFlag string
	localeFlag    string
	showNightly   bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote <request.json>",
	Short: "Compute an itemized price quote for a stay",
	Long: `Compute a deterministic, itemized price breakdown from a quote
request file.

The request file carries the listing pricing snapshot, price rules,
calendar overrides, tax rules and exchange rates; stay parameters in the
file can be overridden with flags. Supplying --created-at pins the quote
creation time so repeated runs are bit-for-bit reproducible.

Examples:
  rental-pricing quote request.json
  rental-pricing quote --check-in 2026-07-03 --check-out 2026-07-05 request.json
  rental-pricing quote --format json --target USD request.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().StringVarP(&targetFlag, "target", "t", "", "display currency for the grand total")
	quoteCmd.Flags().IntVar(&guestsFlag, "guests", 0, "guest count override")
	quoteCmd.Flags().IntVar(&petsFlag, "pets", 0, "pet count override")
	quoteCmd.Flags().BoolVar(&includePets, "include-pet-fee", false, "include the pet fee when pets are present")
	quoteCmd.Flags().StringVar(&checkInFlag, "check-in", "", "check-in date (yyyy-mm-dd) override")
	quoteCmd.Flags().StringVar(&checkOutFlag, "check-out", "", "check-out date (yyyy-mm-dd) override")
	quoteCmd.Flags().StringVar(&createdAtFlag, "created-at", "", "quote creation time for reproducible results")
	quoteCmd.Flags().StringVar(&localeFlag, "locale", "", "display locale override")
	quoteCmd.Flags().BoolVar(&showNightly, "nightly", true, "show the per-night breakdown")
}

func runQuote(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg := config.Get()

	req, err := input.Load(args[0])
	if err != nil {
		return err
	}
	applyFlagOverrides(req)

	quoteInput, err := req.ToQuoteInput()
	if err != nil {
		return err
	}

	locale := cfg.Pricing.DefaultLocale
	if localeFlag != "" {
		locale = localeFlag
	}

	eng := engine.New(engine.Config{
		BaseCurrency:  cfg.Pricing.DefaultCurrency,
		DefaultLocale: locale,
	})

	breakdown, err := eng.Quote(quoteInput)
	if err != nil {
		return err
	}

	logging.Sugar.Debugw("quote computed",
		"nights", breakdown.Nights,
		"grand_total", breakdown.GrandTotal.StringFixed(2),
		"duration", time.Since(start).String())

	format := cfg.Output.DefaultFormat
	if outputFormat != "" {
		format = outputFormat
	}

	switch output.Format(format) {
	case output.FormatJSON:
		display := output.ForDisplay(breakdown, locale)
		return output.WriteJSON(os.Stdout, display.QuoteBreakdown)
	case output.FormatCLI:
		output.WriteTable(os.Stdout, breakdown, showNightly && cfg.Output.ShowNightly)
		display := output.ForDisplay(breakdown, locale)
		fmt.Printf("\nTotal due: %s\n", display.FormattedTotals.Total)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func applyFlagOverrides(req *input.Request) {
	if targetFlag != "" {
		req.TargetCurrency = string(types.Currency(targetFlag).Normalize())
	}
	if guestsFlag > 0 {
		req.Guests = guestsFlag
	}
	if petsFlag > 0 {
		req.Pets = petsFlag
	}
	if includePets {
		req.IncludePetFee = true
	}
	if checkInFlag != "" {
		req.CheckIn = checkInFlag
	}
	if checkOutFlag != "" {
		req.CheckOut = checkOutFlag
	}
	if createdAtFlag != "" {
		req.QuoteCreatedAt = createdAtFlag
	}
}
