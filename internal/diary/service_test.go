package diary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentWeekRange(t *testing.T) {
	// 2026-01-04 is a Sunday; the week runs through Saturday 2026-01-10
	wantStart := time.Date(2026, 1, 4, 0, 0, 0, 0, time.Local)
	wantEnd := time.Date(2026, 1, 10, 23, 59, 59, 999000000, time.Local)

	// Every day of the week maps to the same window
	for day := 4; day <= 10; day++ {
		now := time.Date(2026, 1, day, 12, 30, 45, 0, time.Local)

		start, end := currentWeekRange(now)

		assert.Equal(t, wantStart, start, "day=%d", day)
		assert.Equal(t, wantEnd, end, "day=%d", day)
	}
}

func TestCurrentWeekRange_ContainsNow(t *testing.T) {
	now := time.Now()

	start, end := currentWeekRange(now)

	assert.False(t, now.Before(start))
	assert.False(t, now.After(end))
	assert.Equal(t, time.Sunday, start.Weekday())
	assert.Equal(t, 7*24*time.Hour-time.Millisecond, end.Sub(start))
}
