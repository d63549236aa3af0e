package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetweenCountsWholeCalendarDays(t *testing.T) {
	assert.Equal(t, 2, daysBetween(day("2026-07-03"), day("2026-07-05")))
	assert.Equal(t, 0, daysBetween(day("2026-07-03"), day("2026-07-03")))
	assert.Equal(t, -2, daysBetween(day("2026-07-05"), day("2026-07-03")))
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	late := day("2026-07-03").Add(23 * time.Hour)
	early := day("2026-07-04").Add(1 * time.Minute)
	assert.Equal(t, 1, daysBetween(late, early))
}

func TestWeekendIsFridayAndSaturday(t *testing.T) {
	assert.False(t, isWeekend(day("2026-07-02"))) // Thursday
	assert.True(t, isWeekend(day("2026-07-03")))  // Friday
	assert.True(t, isWeekend(day("2026-07-04")))  // Saturday
	assert.False(t, isWeekend(day("2026-07-05"))) // Sunday
}
