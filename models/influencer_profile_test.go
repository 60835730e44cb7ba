package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validProfile() *InfluencerProfile {
	return &InfluencerProfile{
		UUID:              uuid.New(),
		Username:          "test_user",
		DisplayName:       "Test User",
		CategoryTag:       CategoryBeauty,
		FollowerCount:     10_000,
		AvgReelsView:      2_000,
		EngagementRate:    5.0,
		SalesFatigueScore: 1,
	}
}

func TestInfluencerProfileTableName(t *testing.T) {
	assert.Equal(t, "influencer_profiles", InfluencerProfile{}.TableName())
}

func TestInfluencerProfileValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validProfile().Validate())
	})

	t.Run("UsernameRequired", func(t *testing.T) {
		p := validProfile()
		p.Username = ""
		assert.ErrorIs(t, p.Validate(), ErrUsernameRequired)
	})

	t.Run("FatigueScoreBounds", func(t *testing.T) {
		p := validProfile()
		p.SalesFatigueScore = 0
		assert.ErrorIs(t, p.Validate(), ErrFatigueScoreOutOfRange)

		p.SalesFatigueScore = 11
		assert.ErrorIs(t, p.Validate(), ErrFatigueScoreOutOfRange)

		p.SalesFatigueScore = MinSalesFatigueScore
		assert.NoError(t, p.Validate())
		p.SalesFatigueScore = MaxSalesFatigueScore
		assert.NoError(t, p.Validate())
	})

	t.Run("NegativeCounts", func(t *testing.T) {
		p := validProfile()
		p.FollowerCount = -1
		assert.ErrorIs(t, p.Validate(), ErrNegativeFollowerCount)

		p = validProfile()
		p.AvgReelsView = -1
		assert.ErrorIs(t, p.Validate(), ErrNegativeAvgReelsView)

		p = validProfile()
		p.EngagementRate = -0.1
		assert.ErrorIs(t, p.Validate(), ErrNegativeEngagementRate)
	})

	t.Run("BioLinkRequiresActiveLink", func(t *testing.T) {
		link := "https://link.gongguscout.com/test"

		p := validProfile()
		p.BioLinkURL = &link
		p.HasActiveLink = false
		assert.ErrorIs(t, p.Validate(), ErrBioLinkWithoutActive)

		p.HasActiveLink = true
		assert.NoError(t, p.Validate())
	})

	t.Run("ZeroFollowersAllowed", func(t *testing.T) {
		p := validProfile()
		p.FollowerCount = 0
		assert.NoError(t, p.Validate())
	})
}

func TestCategoryTags(t *testing.T) {
	tags := CategoryTags()
	assert.Len(t, tags, 15)

	t.Run("KnownCategories", func(t *testing.T) {
		for _, tag := range tags {
			assert.True(t, IsKnownCategory(tag), "tag %s", tag)
		}
	})

	t.Run("UnknownValues", func(t *testing.T) {
		assert.False(t, IsKnownCategory("nonexistent"))
		assert.False(t, IsKnownCategory(""))
		// "all" is a query sentinel, not a stored category
		assert.False(t, IsKnownCategory(CategoryAll))
	})
}
