package display

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDDayLabel(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("NoCampaignHistory", func(t *testing.T) {
		assert.Equal(t, "no campaign history", DDayLabel(nil, now))
	})

	t.Run("Today", func(t *testing.T) {
		d := now.Add(-2 * time.Hour)
		assert.Equal(t, "today", DDayLabel(&d, now))
	})

	t.Run("Yesterday", func(t *testing.T) {
		d := now.AddDate(0, 0, -1)
		assert.Equal(t, "yesterday", DDayLabel(&d, now))
	})

	t.Run("DaysAgo", func(t *testing.T) {
		d := now.AddDate(0, 0, -7)
		assert.Equal(t, "7 days ago", DDayLabel(&d, now))

		d = now.AddDate(0, 0, -30)
		assert.Equal(t, "30 days ago", DDayLabel(&d, now))
	})

	t.Run("PartialDaysFloor", func(t *testing.T) {
		// 1.9 days ago still floors to yesterday
		d := now.Add(-45 * time.Hour)
		assert.Equal(t, "yesterday", DDayLabel(&d, now))
	})
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysSince(now, now))
	assert.Equal(t, 0, DaysSince(now.Add(-23*time.Hour), now))
	assert.Equal(t, 1, DaysSince(now.Add(-24*time.Hour), now))
	assert.Equal(t, 14, DaysSince(now.AddDate(0, 0, -14), now))
}

func TestFatigueBadges(t *testing.T) {
	t.Run("FreshIsGreen", func(t *testing.T) {
		for score := 1; score <= 3; score++ {
			assert.Equal(t, FatigueLevelFresh, FatigueLevel(score), "score %d", score)
			assert.Equal(t, FatigueColorGreen, FatigueColor(score), "score %d", score)
		}
	})

	t.Run("ModerateIsYellow", func(t *testing.T) {
		for score := 4; score <= 6; score++ {
			assert.Equal(t, FatigueLevelModerate, FatigueLevel(score), "score %d", score)
			assert.Equal(t, FatigueColorYellow, FatigueColor(score), "score %d", score)
		}
	})

	t.Run("HighIsRed", func(t *testing.T) {
		for score := 7; score <= 10; score++ {
			assert.Equal(t, FatigueLevelHigh, FatigueLevel(score), "score %d", score)
			assert.Equal(t, FatigueColorRed, FatigueColor(score), "score %d", score)
		}
	})
}

func TestFormatCompact(t *testing.T) {
	t.Run("Millions", func(t *testing.T) {
		assert.Equal(t, "1.2M", FormatCompact(1_200_000))
		assert.Equal(t, "1.0M", FormatCompact(1_000_000))
	})

	t.Run("Thousands", func(t *testing.T) {
		assert.Equal(t, "45.3K", FormatCompact(45_300))
		assert.Equal(t, "5.0K", FormatCompact(5_000))
		assert.Equal(t, "1.0K", FormatCompact(1_000))
	})

	t.Run("Small", func(t *testing.T) {
		assert.Equal(t, "999", FormatCompact(999))
		assert.Equal(t, "0", FormatCompact(0))
	})
}

func TestFormatCompactWhole(t *testing.T) {
	// The whole-number variant drops the decimal below a million; the two
	// formatters intentionally disagree for thousands.
	assert.Equal(t, "45K", FormatCompactWhole(45_300))
	assert.Equal(t, "300K", FormatCompactWhole(300_000))
	assert.Equal(t, "1.2M", FormatCompactWhole(1_200_000))
	assert.Equal(t, "999", FormatCompactWhole(999))
}

func TestReachPercent(t *testing.T) {
	t.Run("OneDecimalRounding", func(t *testing.T) {
		reach, err := ReachPercent(2_500, 10_000)
		require.NoError(t, err)
		assert.Equal(t, 25.0, reach)

		reach, err = ReachPercent(1_234, 10_000)
		require.NoError(t, err)
		assert.Equal(t, 12.3, reach)

		reach, err = ReachPercent(1_256, 10_000)
		require.NoError(t, err)
		assert.Equal(t, 12.6, reach)
	})

	t.Run("ZeroFollowers", func(t *testing.T) {
		_, err := ReachPercent(1_000, 0)
		assert.ErrorIs(t, err, ErrZeroFollowers)
	})

	t.Run("ZeroViews", func(t *testing.T) {
		reach, err := ReachPercent(0, 10_000)
		require.NoError(t, err)
		assert.Equal(t, 0.0, reach)
	})
}
