package seeder

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gongguscout/gonggu-scout/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
}

func TestFatigueScore(t *testing.T) {
	now := fixedClock()

	t.Run("NoHistoryScoresOne", func(t *testing.T) {
		g := NewGeneratorWithClock(1, fixedClock)
		for i := 0; i < 20; i++ {
			assert.Equal(t, 1, g.FatigueScore(nil))
		}
	})

	t.Run("OlderThanThirtyDaysIsFresh", func(t *testing.T) {
		g := NewGeneratorWithClock(1, fixedClock)
		d := now.AddDate(0, 0, -45)
		for i := 0; i < 50; i++ {
			score := g.FatigueScore(&d)
			assert.GreaterOrEqual(t, score, 1)
			assert.LessOrEqual(t, score, 3)
		}
	})

	t.Run("BetweenFifteenAndThirtyDaysIsModerate", func(t *testing.T) {
		g := NewGeneratorWithClock(1, fixedClock)
		for _, days := range []int{15, 20, 30} {
			d := now.AddDate(0, 0, -days)
			for i := 0; i < 50; i++ {
				score := g.FatigueScore(&d)
				assert.GreaterOrEqual(t, score, 4, "days=%d", days)
				assert.LessOrEqual(t, score, 6, "days=%d", days)
			}
		}
	})

	t.Run("WithinFourteenDaysIsHigh", func(t *testing.T) {
		g := NewGeneratorWithClock(1, fixedClock)
		for _, days := range []int{0, 1, 7, 14} {
			d := now.AddDate(0, 0, -days)
			for i := 0; i < 50; i++ {
				score := g.FatigueScore(&d)
				assert.GreaterOrEqual(t, score, 7, "days=%d", days)
				assert.LessOrEqual(t, score, 10, "days=%d", days)
			}
		}
	})
}

func TestGenerateProfiles(t *testing.T) {
	g := NewGeneratorWithClock(42, fixedClock)
	profiles, err := g.GenerateProfiles(DefaultProfileCount)
	require.NoError(t, err)
	require.Len(t, profiles, DefaultProfileCount)

	t.Run("CategoriesRotateEvenly", func(t *testing.T) {
		counts := make(map[string]int)
		for _, p := range profiles {
			counts[p.CategoryTag] = counts[p.CategoryTag] + 1
		}
		// 60 profiles over 15 categories
		require.Len(t, counts, len(models.CategoryTags()))
		for tag, n := range counts {
			assert.Equal(t, 4, n, "category %s", tag)
		}
	})

	t.Run("UsernamesAreUnique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, p := range profiles {
			assert.False(t, seen[p.Username], "duplicate username %s", p.Username)
			seen[p.Username] = true
		}
	})

	t.Run("DisplayNameDerivedFromUsername", func(t *testing.T) {
		for _, p := range profiles {
			assert.Equal(t, strings.ReplaceAll(p.Username, "_", " "), p.DisplayName)
			assert.NotContains(t, p.DisplayName, "_")
		}
	})

	t.Run("ValueRanges", func(t *testing.T) {
		for _, p := range profiles {
			assert.GreaterOrEqual(t, p.FollowerCount, int64(minFollowers))
			assert.LessOrEqual(t, p.FollowerCount, int64(maxFollowers))

			minViews := int64(float64(p.FollowerCount) * minReelsViewShare)
			maxViews := int64(float64(p.FollowerCount) * maxReelsViewShare)
			assert.GreaterOrEqual(t, p.AvgReelsView, minViews-1)
			assert.LessOrEqual(t, p.AvgReelsView, maxViews+1)

			assert.GreaterOrEqual(t, p.EngagementRate, minEngagementRate)
			assert.LessOrEqual(t, p.EngagementRate, maxEngagementRate)

			assert.GreaterOrEqual(t, p.SalesFatigueScore, models.MinSalesFatigueScore)
			assert.LessOrEqual(t, p.SalesFatigueScore, models.MaxSalesFatigueScore)
		}
	})

	t.Run("GongguDatesWithinWindow", func(t *testing.T) {
		now := fixedClock()
		for _, p := range profiles {
			if p.LastGongguDate == nil {
				continue
			}
			assert.True(t, p.LastGongguDate.Before(now))
			assert.True(t, p.LastGongguDate.After(now.AddDate(0, 0, -CampaignWindowDays-1)))
		}
	})

	t.Run("BioLinkImpliesActiveLink", func(t *testing.T) {
		for _, p := range profiles {
			if p.BioLinkURL != nil {
				assert.True(t, p.HasActiveLink, "username %s", p.Username)
			}
			if !p.HasActiveLink {
				assert.Nil(t, p.BioLinkURL, "username %s", p.Username)
			}
		}
	})

	t.Run("FatigueScoreMatchesRecencyBucket", func(t *testing.T) {
		now := fixedClock()
		for _, p := range profiles {
			if p.LastGongguDate == nil {
				assert.Equal(t, 1, p.SalesFatigueScore)
				continue
			}
			days := int(now.Sub(*p.LastGongguDate).Hours() / 24)
			switch {
			case days > freshAfterDays:
				assert.LessOrEqual(t, p.SalesFatigueScore, 3)
			case days > moderateAfterDays:
				assert.GreaterOrEqual(t, p.SalesFatigueScore, 4)
				assert.LessOrEqual(t, p.SalesFatigueScore, 6)
			default:
				assert.GreaterOrEqual(t, p.SalesFatigueScore, 7)
			}
		}
	})
}

func TestGeneratorDeterminism(t *testing.T) {
	a, err := NewGeneratorWithClock(7, fixedClock).GenerateProfiles(10)
	require.NoError(t, err)
	b, err := NewGeneratorWithClock(7, fixedClock).GenerateProfiles(10)
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].Username, b[i].Username)
		assert.Equal(t, a[i].FollowerCount, b[i].FollowerCount)
		assert.Equal(t, a[i].AvgReelsView, b[i].AvgReelsView)
		assert.Equal(t, a[i].EngagementRate, b[i].EngagementRate)
		assert.Equal(t, a[i].SalesFatigueScore, b[i].SalesFatigueScore)
	}
}

// recordingStore captures the batch Run hands to the store
type recordingStore struct {
	deleted bool
	saved   []*models.InfluencerProfile
}

func (r *recordingStore) ByID(ctx context.Context, id uint) (*models.InfluencerProfile, error) {
	return nil, nil
}

func (r *recordingStore) ByFilter(ctx context.Context, filter models.InfluencerProfileFilter, orderBy string, limit, offset int) ([]*models.InfluencerProfile, error) {
	return nil, nil
}

func (r *recordingStore) Save(ctx context.Context, entity *models.InfluencerProfile) error {
	return nil
}

func (r *recordingStore) SaveBatch(ctx context.Context, entities []*models.InfluencerProfile) error {
	r.saved = entities
	return nil
}

func (r *recordingStore) Count(ctx context.Context, filter models.InfluencerProfileFilter) (int64, error) {
	if filter.CategoryTag != nil {
		var n int64
		for _, p := range r.saved {
			if p.CategoryTag == *filter.CategoryTag {
				n++
			}
		}
		return n, nil
	}
	return int64(len(r.saved)), nil
}

func (r *recordingStore) Exists(ctx context.Context, filter models.InfluencerProfileFilter) (bool, error) {
	return len(r.saved) > 0, nil
}

func (r *recordingStore) ByUUID(ctx context.Context, id uuid.UUID) (*models.InfluencerProfile, error) {
	return nil, nil
}

func (r *recordingStore) ByUsername(ctx context.Context, username string) (*models.InfluencerProfile, error) {
	return nil, nil
}

func (r *recordingStore) DeleteAll(ctx context.Context) error {
	r.deleted = true
	return nil
}

func TestRun(t *testing.T) {
	t.Run("SeedsRequestedCount", func(t *testing.T) {
		store := &recordingStore{}
		g := NewGeneratorWithClock(5, fixedClock)

		require.NoError(t, Run(context.Background(), store, g, 12))
		assert.True(t, store.deleted)
		assert.Len(t, store.saved, 12)
	})

	t.Run("ZeroCountFallsBackToDefault", func(t *testing.T) {
		store := &recordingStore{}
		g := NewGeneratorWithClock(5, fixedClock)

		require.NoError(t, Run(context.Background(), store, g, 0))
		assert.Len(t, store.saved, DefaultProfileCount)
	})
}

func TestUsernameWrapSuffix(t *testing.T) {
	g := NewGeneratorWithClock(3, fixedClock)
	profiles, err := g.GenerateProfiles(len(usernames) + 5)
	require.NoError(t, err)

	// Past the pool size the base name picks up an index suffix
	p := profiles[len(usernames)]
	assert.Contains(t, p.Username, "_1")
}
