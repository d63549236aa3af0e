package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-pricing/core/types"
)

func TestExtraGuestFeeBelowThresholdIsFree(t *testing.T) {
	items := extraGuestFees(nil, &types.FeeRule{ExtraGuestFee: dec("15")}, 4, testListing(), 2, dec("100"))
	assert.Empty(t, items, "4 guests within max of 4")
}

func TestExtraGuestFlatFeeFromFeeRule(t *testing.T) {
	items := extraGuestFees(nil, &types.FeeRule{ExtraGuestFee: dec("15")}, 6, testListing(), 2, dec("100"))
	require.Len(t, items, 1)
	assert.Equal(t, "extra_guest", items[0].Code)
	assert.Equal(t, "60.00", items[0].Amount.StringFixed(2), "15 x 2 nights x 2 extra guests")
	assert.Equal(t, "2 guest(s) over threshold of 4", items[0].Description)
}

func TestExtraGuestPercentageRule(t *testing.T) {
	rules := []types.PriceRule{
		{Kind: types.RuleExtraGuest, Amount: dec("10"), IsPercent: true},
	}

	items := extraGuestFees(rules, nil, 5, testListing(), 3, dec("200"))
	require.Len(t, items, 1)
	assert.Equal(t, "Extra guest percentage fee", items[0].Label)
	assert.Equal(t, "60.00", items[0].Amount.StringFixed(2), "10% of avg 200 x 3 nights x 1 extra")
}

func TestExtraGuestRuleOverridesThreshold(t *testing.T) {
	rules := []types.PriceRule{
		{Kind: types.RuleExtraGuest, Amount: dec("20"), GuestThreshold: 2},
	}

	items := extraGuestFees(rules, nil, 4, testListing(), 1, dec("100"))
	require.Len(t, items, 1)
	assert.Equal(t, "40.00", items[0].Amount.StringFixed(2), "2 guests over the rule threshold of 2")
}

func TestExtraGuestFeeWithoutAnyConfiguration(t *testing.T) {
	items := extraGuestFees(nil, nil, 6, testListing(), 2, dec("100"))
	assert.Empty(t, items, "no rule and no fee rule means no charge")
}

func TestStayFeesUseListingDefaults(t *testing.T) {
	fees := stayFees(nil, testListing(), dec("450"), 0, false)
	require.Len(t, fees, 2)
	assert.Equal(t, "cleaning_fee", fees[0].Code)
	assert.Equal(t, "30.00", fees[0].Amount.StringFixed(2))
	assert.Equal(t, "service_fee", fees[1].Code)
	assert.Equal(t, "20.00", fees[1].Amount.StringFixed(2))
}

func TestFeeRuleCleaningOverride(t *testing.T) {
	override := dec("55")
	fees := stayFees(&types.FeeRule{CleaningFee: &override}, testListing(), dec("450"), 0, false)
	assert.Equal(t, "55.00", fees[0].Amount.StringFixed(2))

	// An explicit zero override suppresses the listing default.
	zero := dec("0")
	fees = stayFees(&types.FeeRule{CleaningFee: &zero}, testListing(), dec("450"), 0, false)
	for _, fee := range fees {
		assert.NotEqual(t, "cleaning_fee", fee.Code)
	}
}

func TestServiceFeeBasisPoints(t *testing.T) {
	fees := stayFees(&types.FeeRule{ServiceFeeBps: 300}, testListing(), dec("450"), 0, false)

	var service *types.LineItem
	for i := range fees {
		if fees[i].Code == "service_fee" {
			service = &fees[i]
		}
	}
	require.NotNil(t, service)
	assert.Equal(t, "13.50", service.Amount.StringFixed(2), "300 bps of 450")
	assert.Equal(t, "300 bps on nightly subtotal", service.Description)
}

func TestSecurityDepositLineItem(t *testing.T) {
	fees := stayFees(&types.FeeRule{SecurityDeposit: dec("200")}, testListing(), dec("450"), 0, false)

	found := false
	for _, fee := range fees {
		if fee.Code == "security_deposit" {
			found = true
			assert.Equal(t, "200.00", fee.Amount.StringFixed(2))
		}
	}
	assert.True(t, found)
}

func TestPetFeeRequiresOptInAndPetsAndRule(t *testing.T) {
	feeRule := &types.FeeRule{PetFee: dec("25")}

	hasPetFee := func(fees []types.LineItem) bool {
		for _, fee := range fees {
			if fee.Code == "pet_fee" {
				return true
			}
		}
		return false
	}

	assert.False(t, hasPetFee(stayFees(feeRule, testListing(), dec("450"), 2, false)), "not opted in")
	assert.False(t, hasPetFee(stayFees(feeRule, testListing(), dec("450"), 0, true)), "no pets")
	assert.False(t, hasPetFee(stayFees(nil, testListing(), dec("450"), 2, true)), "no fee rule")

	fees := stayFees(feeRule, testListing(), dec("450"), 2, true)
	require.True(t, hasPetFee(fees))
	for _, fee := range fees {
		if fee.Code == "pet_fee" {
			assert.Equal(t, "50.00", fee.Amount.StringFixed(2), "25 x 2 pets")
			assert.Equal(t, "2 pet(s)", fee.Description)
		}
	}
}
