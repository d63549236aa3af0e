// Package engine - Extra-guest and stay fees
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"rental-pricing/core/types"
)

// extraGuestFees prices guests above the threshold. The threshold comes
// from an extra_guest rule when it sets one, otherwise from the listing's
// max-guest count. The per-guest nightly amount comes from the rule
// (percentage of the average nightly rate, or flat), falling back to the
// fee rule's flat amount.
func extraGuestFees(rules []types.PriceRule, feeRule *types.FeeRule, guests int, listing types.Listing, nights int, averageNightly decimal.Decimal) []types.LineItem {
	if guests <= 0 {
		return nil
	}

	threshold := listing.MaxGuests
	if threshold <= 0 {
		threshold = guests
	}
	amountPerNight := decimal.Zero
	label := "Extra guest fee"

	if rule, ok := findRule(rules, types.RuleExtraGuest); ok {
		if rule.GuestThreshold > 0 {
			threshold = rule.GuestThreshold
		}
		if rule.IsPercent {
			amountPerNight = averageNightly.Mul(rule.Amount).Div(hundred)
			label = "Extra guest percentage fee"
		} else {
			amountPerNight = rule.Amount
		}
	} else if feeRule != nil && feeRule.ExtraGuestFee.IsPositive() {
		amountPerNight = feeRule.ExtraGuestFee
	}

	extraGuests := guests - threshold
	if extraGuests <= 0 || !amountPerNight.IsPositive() {
		return nil
	}

	total := roundCents(amountPerNight.
		Mul(decimal.NewFromInt(int64(nights))).
		Mul(decimal.NewFromInt(int64(extraGuests))))

	return []types.LineItem{{
		Code:        "extra_guest",
		Label:       label,
		Amount:      total,
		Description: fmt.Sprintf("%d guest(s) over threshold of %d", extraGuests, threshold),
	}}
}

// stayFees assembles the stay-level fee line items. Each fee is
// independent of the others and only included when positive.
func stayFees(feeRule *types.FeeRule, listing types.Listing, nightlySubtotal decimal.Decimal, pets int, includePetFee bool) []types.LineItem {
	var fees []types.LineItem

	cleaning := listing.CleaningFee
	if feeRule != nil && feeRule.CleaningFee != nil {
		cleaning = *feeRule.CleaningFee
	}
	if cleaning.IsPositive() {
		fees = append(fees, types.LineItem{
			Code:   "cleaning_fee",
			Label:  "Cleaning fee",
			Amount: roundCents(cleaning),
		})
	}

	if feeRule != nil && feeRule.ServiceFeeBps > 0 {
		service := roundCents(nightlySubtotal.
			Mul(decimal.NewFromInt(feeRule.ServiceFeeBps)).
			Div(basisPoints))
		if service.IsPositive() {
			fees = append(fees, types.LineItem{
				Code:        "service_fee",
				Label:       "Service fee",
				Amount:      service,
				Description: fmt.Sprintf("%d bps on nightly subtotal", feeRule.ServiceFeeBps),
			})
		}
	} else if listing.ServiceFee.IsPositive() {
		fees = append(fees, types.LineItem{
			Code:   "service_fee",
			Label:  "Service fee",
			Amount: roundCents(listing.ServiceFee),
		})
	}

	if feeRule != nil && feeRule.SecurityDeposit.IsPositive() {
		fees = append(fees, types.LineItem{
			Code:   "security_deposit",
			Label:  "Security deposit",
			Amount: roundCents(feeRule.SecurityDeposit),
		})
	}

	if includePetFee && pets > 0 && feeRule != nil && feeRule.PetFee.IsPositive() {
		total := roundCents(feeRule.PetFee.Mul(decimal.NewFromInt(int64(pets))))
		if total.IsPositive() {
			fees = append(fees, types.LineItem{
				Code:        "pet_fee",
				Label:       "Pet fee",
				Amount:      total,
				Description: fmt.Sprintf("%d pet(s)", pets),
			})
		}
	}

	return fees
}

func findRule(rules []types.PriceRule, kind types.RuleKind) (types.PriceRule, bool) {
	for _, rule := range rules {
		if rule.Kind == kind {
			return rule, true
		}
	}
	return types.PriceRule{}, false
}
