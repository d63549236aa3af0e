package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-pricing/core/types"
)

func TestLengthOfStayRequiresMinimumNights(t *testing.T) {
	rules := []types.PriceRule{
		{Kind: types.RuleLengthOfStay, Amount: dec("-10"), IsPercent: true, MinNights: 7},
	}

	items := stayAdjustments(rules, dec("700"), 5, day("2026-07-03"), day("2026-06-01"))
	assert.Empty(t, items, "5 nights under the 7-night minimum")

	items = stayAdjustments(rules, dec("700"), 7, day("2026-07-03"), day("2026-06-01"))
	require.Len(t, items, 1)
	assert.Equal(t, "length_of_stay", items[0].Code)
	assert.Equal(t, "-70.00", items[0].Amount.StringFixed(2), "-10% of the nightly subtotal")
}

func TestLengthOfStayWithoutMinimumAlwaysApplies(t *testing.T) {
	rules := []types.PriceRule{
		{Kind: types.RuleLengthOfStay, Amount: dec("-25")},
	}

	items := stayAdjustments(rules, dec("300"), 1, day("2026-07-03"), day("2026-06-01"))
	require.Len(t, items, 1)
	assert.Equal(t, "-25.00", items[0].Amount.StringFixed(2))
}

func TestLastMinuteTriggersInsideThreshold(t *testing.T) {
	rules := []types.PriceRule{
		{Kind: types.RuleLastMinute, Amount: dec("-15"), IsPercent: true, ThresholdDays: 3},
	}

	// Quote created the day before check-in: 1 day gap, inside threshold.
	items := stayAdjustments(rules, dec("400"), 2, day("2026-07-03"), day("2026-07-02"))
	require.Len(t, items, 1)
	assert.Equal(t, "last_minute", items[0].Code)
	assert.Equal(t, "-60.00", items[0].Amount.StringFixed(2))

	// Ten days out: no discount.
	items = stayAdjustments(rules, dec("400"), 2, day("2026-07-03"), day("2026-06-23"))
	assert.Empty(t, items)
}

func TestEarlyBirdTriggersOutsideThreshold(t *testing.T) {
	rules := []types.PriceRule{
		{Kind: types.RuleEarlyBird, Amount: dec("-5"), IsPercent: true, ThresholdDays: 30},
	}

	// Booked 45 days out: early bird applies.
	items := stayAdjustments(rules, dec("1000"), 5, day("2026-08-15"), day("2026-07-01"))
	require.Len(t, items, 1)
	assert.Equal(t, "early_bird", items[0].Code)
	assert.Equal(t, "-50.00", items[0].Amount.StringFixed(2))

	// Booked a week out: too late.
	items = stayAdjustments(rules, dec("1000"), 5, day("2026-08-15"), day("2026-08-08"))
	assert.Empty(t, items)
}

func TestThresholdlessTimingRulesAreSkipped(t *testing.T) {
	rules := []types.PriceRule{
		{Kind: types.RuleLastMinute, Amount: dec("-15"), IsPercent: true},
		{Kind: types.RuleEarlyBird, Amount: dec("-5"), IsPercent: true},
	}

	items := stayAdjustments(rules, dec("400"), 2, day("2026-07-03"), day("2026-07-02"))
	assert.Empty(t, items)
}

func TestEachTriggeringRuleYieldsItsOwnLineItem(t *testing.T) {
	rules := []types.PriceRule{
		{Kind: types.RuleLengthOfStay, Amount: dec("-10"), IsPercent: true, MinNights: 2},
		{Kind: types.RuleLengthOfStay, Amount: dec("-20"), MinNights: 3},
		{Kind: types.RuleLastMinute, Amount: dec("-5"), IsPercent: true, ThresholdDays: 7},
	}

	items := stayAdjustments(rules, dec("500"), 3, day("2026-07-03"), day("2026-07-01"))
	require.Len(t, items, 3)
	assert.Equal(t, "length_of_stay", items[0].Code)
	assert.Equal(t, "length_of_stay", items[1].Code)
	assert.Equal(t, "last_minute", items[2].Code)
}
