// Package display contains pure presentation derivations computed from
// influencer profile records. Nothing here touches storage or request state.
package display

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Fatigue badge levels and colors. Thresholds mirror the generation-time
// score buckets so a profile never shows a badge its score was not drawn from.
const (
	FatigueLevelFresh    = "fresh"
	FatigueLevelModerate = "moderate"
	FatigueLevelHigh     = "high"

	FatigueColorGreen  = "green"
	FatigueColorYellow = "yellow"
	FatigueColorRed    = "red"
)

// NoCampaignHistoryLabel is shown when a profile has no last gonggu date
const NoCampaignHistoryLabel = "no campaign history"

// ErrZeroFollowers is returned when reach cannot be computed
var ErrZeroFollowers = errors.New("follower count is zero")

// DaysSince returns whole days elapsed from t to now, flooring partial days
func DaysSince(t time.Time, now time.Time) int {
	return int(math.Floor(now.Sub(t).Hours() / 24))
}

// DDayLabel renders how long ago the last gonggu campaign ran
func DDayLabel(lastGongguDate *time.Time, now time.Time) string {
	if lastGongguDate == nil {
		return NoCampaignHistoryLabel
	}
	switch days := DaysSince(*lastGongguDate, now); days {
	case 0:
		return "today"
	case 1:
		return "yesterday"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}

// FatigueLevel maps a sales fatigue score to its badge level
func FatigueLevel(score int) string {
	if score <= 3 {
		return FatigueLevelFresh
	}
	if score <= 6 {
		return FatigueLevelModerate
	}
	return FatigueLevelHigh
}

// FatigueColor maps a sales fatigue score to its badge color
func FatigueColor(score int) string {
	if score <= 3 {
		return FatigueColorGreen
	}
	if score <= 6 {
		return FatigueColorYellow
	}
	return FatigueColorRed
}

// FormatCompact renders a magnitude with one decimal, e.g. 1.2M, 45.3K.
// Card views use this variant.
func FormatCompact(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.1fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FormatCompactWhole renders a magnitude with no decimals below a million,
// e.g. 45K. Filter-control labels use this variant; the asymmetry with
// FormatCompact is deliberate and matches the shipped UI.
func FormatCompactWhole(n int64) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.0fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}

// ReachPercent computes average views as a percentage of followers,
// rounded to one decimal. Profiles with zero followers have no defined
// reach and must be guarded before display.
func ReachPercent(avgReelsView, followerCount int64) (float64, error) {
	if followerCount == 0 {
		return 0, ErrZeroFollowers
	}
	v := float64(avgReelsView) / float64(followerCount) * 100
	return math.Round(v*10) / 10, nil
}
