// Package testing provides test utilities and database setup for testing the influencer directory
package testing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gongguscout/gonggu-scout/models"
	"github.com/gongguscout/gonggu-scout/utils"
	"github.com/google/uuid"
)

// TestFixtures provides helper methods for creating test data
type TestFixtures struct {
	DB *TestDB
}

// NewTestFixtures creates a new test fixtures instance
func NewTestFixtures(db *TestDB) *TestFixtures {
	return &TestFixtures{DB: db}
}

// InfluencerOption mutates a generated test profile before it is persisted
type InfluencerOption func(*models.InfluencerProfile)

// WithUsername sets the username and display name
func WithUsername(username string) InfluencerOption {
	return func(p *models.InfluencerProfile) {
		p.Username = username
		p.DisplayName = username
	}
}

// WithCategory sets the category tag
func WithCategory(tag string) InfluencerOption {
	return func(p *models.InfluencerProfile) { p.CategoryTag = tag }
}

// WithFollowers sets the follower count
func WithFollowers(count int64) InfluencerOption {
	return func(p *models.InfluencerProfile) { p.FollowerCount = count }
}

// WithAvgReelsView sets the average reels view count
func WithAvgReelsView(count int64) InfluencerOption {
	return func(p *models.InfluencerProfile) { p.AvgReelsView = count }
}

// WithEngagementRate sets the engagement rate
func WithEngagementRate(rate float64) InfluencerOption {
	return func(p *models.InfluencerProfile) { p.EngagementRate = rate }
}

// WithLastGonggu sets the last group-buy campaign date
func WithLastGonggu(t time.Time) InfluencerOption {
	return func(p *models.InfluencerProfile) { p.LastGongguDate = &t }
}

// WithNoGongguHistory clears the campaign history
func WithNoGongguHistory() InfluencerOption {
	return func(p *models.InfluencerProfile) { p.LastGongguDate = nil }
}

// WithFatigueScore sets the sales fatigue score
func WithFatigueScore(score int) InfluencerOption {
	return func(p *models.InfluencerProfile) { p.SalesFatigueScore = score }
}

// WithBioLink sets a bio link URL and marks the link active
func WithBioLink(url string) InfluencerOption {
	return func(p *models.InfluencerProfile) {
		p.BioLinkURL = utils.ToPtr(url)
		p.HasActiveLink = true
	}
}

// CreateTestInfluencer creates and persists an influencer profile with sane
// defaults, applying any options on top.
func (tf *TestFixtures) CreateTestInfluencer(opts ...InfluencerOption) (*models.InfluencerProfile, error) {
	suffix := rand.Intn(10000000)

	profile := &models.InfluencerProfile{
		UUID:              uuid.New(),
		Username:          fmt.Sprintf("test_influencer_%d", suffix),
		DisplayName:       fmt.Sprintf("Test Influencer %d", suffix),
		CategoryTag:       models.CategoryBeauty,
		FollowerCount:     10_000,
		AvgReelsView:      2_000,
		EngagementRate:    5.0,
		SalesFatigueScore: 1,
		HasActiveLink:     false,
		CreatedAt:         utils.UTCNow(),
		UpdatedAt:         utils.UTCNow(),
	}

	for _, opt := range opts {
		opt(profile)
	}

	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid test influencer: %w", err)
	}

	if err := tf.DB.DB.Create(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to create test influencer: %w", err)
	}

	return profile, nil
}

// CreateCategorySpread creates one profile per given category tag so category
// filter behavior can be asserted against a known distribution.
func (tf *TestFixtures) CreateCategorySpread(tags []string) ([]*models.InfluencerProfile, error) {
	var profiles []*models.InfluencerProfile
	for i, tag := range tags {
		profile, err := tf.CreateTestInfluencer(
			WithCategory(tag),
			WithFollowers(int64(10_000+i*1_000)),
			WithEngagementRate(3.0+float64(i)*0.5),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create profile for category %s: %w", tag, err)
		}
		profiles = append(profiles, profile)
	}
	return profiles, nil
}
