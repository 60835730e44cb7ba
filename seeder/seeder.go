// Package seeder generates synthetic influencer profiles for the directory.
// All randomness flows through an injectable source so fixtures can be
// reproduced by pinning the seed.
package seeder

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/gongguscout/gonggu-scout/models"
	"github.com/gongguscout/gonggu-scout/repository"
	"github.com/gongguscout/gonggu-scout/utils"
	"github.com/google/uuid"
)

// Fatigue score buckets keyed on days since the last gonggu campaign.
// Display badge thresholds must stay aligned with these boundaries.
const (
	freshAfterDays    = 30 // older than this: fresh, score 1-3
	moderateAfterDays = 14 // older than this (up to freshAfterDays): moderate, score 4-6
)

// Generation value ranges observed in real directory data
const (
	DefaultProfileCount = 60

	minFollowers = 5_000
	maxFollowers = 300_000

	minReelsViewShare = 0.05
	maxReelsViewShare = 0.30

	minEngagementRate = 2.5
	maxEngagementRate = 12.0

	// CampaignWindowDays bounds how far back a generated last gonggu date lies
	CampaignWindowDays = 60

	gongguProbability     = 0.8
	activeLinkProbability = 0.7
)

// usernames is sampled round-robin; an index suffix keeps uniqueness once
// the pool wraps
var usernames = []string{
	"민지맘", "서현언니", "지우쌤", "유진_daily", "수영맘", "하늘이네",
	"준호파파", "은지_life", "소라맘", "지혜언니", "태희_cook", "예진_fit",
	"현우_tech", "미나_beauty", "승민맘", "지원_style", "도윤이네", "채원언니",
	"서준파파", "아라_lifestyle", "민서맘", "정우_gym", "혜진_kitchen", "다은_kids",
	"시우맘", "유나_fashion", "재윤이네", "서연_cosmetic", "동현_gadget", "수빈맘",
	"예은_travel", "준서_sports", "하은_pet", "지훈_car", "수아_game",
	"윤서_photo", "민준_business", "서아_education", "지안_entertainment", "하윤_wellness",
}

// Generator produces synthetic influencer profiles
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a generator seeded with the given value
func NewGenerator(seed int64) *Generator {
	return NewGeneratorWithClock(seed, utils.UTCNow)
}

// NewGeneratorWithClock additionally pins the clock, for deterministic tests
func NewGeneratorWithClock(seed int64, now func() time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now,
	}
}

// randInt returns a random integer in [min, max]
func (g *Generator) randInt(min, max int) int {
	return g.rng.Intn(max-min+1) + min
}

// randFloat returns a random float in [min, max)
func (g *Generator) randFloat(min, max float64) float64 {
	return g.rng.Float64()*(max-min) + min
}

// FatigueScore derives a sales fatigue score from the last gonggu date.
// No campaign history always scores 1; otherwise the score is drawn from
// the recency bucket to simulate audience variance.
func (g *Generator) FatigueScore(lastGongguDate *time.Time) int {
	if lastGongguDate == nil {
		return 1
	}

	daysSince := int(math.Floor(g.now().Sub(*lastGongguDate).Hours() / 24))

	if daysSince > freshAfterDays {
		return g.randInt(1, 3)
	}
	if daysSince > moderateAfterDays {
		return g.randInt(4, 6)
	}
	return g.randInt(7, 10)
}

// Profile generates the i-th synthetic profile. Categories rotate through
// the fixed tag list so the directory stays evenly distributed.
func (g *Generator) Profile(i int) *models.InfluencerProfile {
	categories := models.CategoryTags()
	category := categories[i%len(categories)]

	username := usernames[i%len(usernames)]
	if i >= len(usernames) {
		username = fmt.Sprintf("%s_%d", username, i/len(usernames))
	}

	followerCount := int64(g.randInt(minFollowers, maxFollowers))
	avgReelsView := int64(float64(followerCount) * g.randFloat(minReelsViewShare, maxReelsViewShare))
	engagementRate := math.Round(g.randFloat(minEngagementRate, maxEngagementRate)*100) / 100

	var lastGongguDate *time.Time
	if g.rng.Float64() < gongguProbability {
		d := g.now().AddDate(0, 0, -g.randInt(1, CampaignWindowDays))
		lastGongguDate = &d
	}

	hasActiveLink := g.rng.Float64() < activeLinkProbability
	var bioLinkURL *string
	if hasActiveLink {
		link := fmt.Sprintf("https://link.gongguscout.com/%s", username)
		bioLinkURL = &link
	}

	imageURL := fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username)
	bio := fmt.Sprintf("%s 전문 인플루언서 | 진솔한 후기와 추천만 합니다 ✨", category)

	return &models.InfluencerProfile{
		UUID:              uuid.New(),
		Username:          username,
		DisplayName:       strings.ReplaceAll(username, "_", " "),
		CategoryTag:       category,
		FollowerCount:     followerCount,
		AvgReelsView:      avgReelsView,
		EngagementRate:    engagementRate,
		LastGongguDate:    lastGongguDate,
		SalesFatigueScore: g.FatigueScore(lastGongguDate),
		BioLinkURL:        bioLinkURL,
		HasActiveLink:     hasActiveLink,
		ProfileImageURL:   &imageURL,
		Bio:               &bio,
	}
}

// GenerateProfiles produces count validated profiles
func (g *Generator) GenerateProfiles(count int) ([]*models.InfluencerProfile, error) {
	profiles := make([]*models.InfluencerProfile, 0, count)
	for i := 0; i < count; i++ {
		p := g.Profile(i)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("generated profile %q is invalid: %w", p.Username, err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Run resets the directory and batch-inserts count fresh profiles, then logs
// the per-category distribution. Seeding is a one-shot maintenance operation
// and is not meant to run concurrently with live traffic.
func Run(ctx context.Context, repo repository.InfluencerProfileRepository, g *Generator, count int) error {
	if count <= 0 {
		count = DefaultProfileCount
	}

	profiles, err := g.GenerateProfiles(count)
	if err != nil {
		return err
	}

	if err := repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("failed to reset influencer profiles: %w", err)
	}
	if err := repo.SaveBatch(ctx, profiles); err != nil {
		return fmt.Errorf("failed to insert influencer profiles: %w", err)
	}

	log.Printf("Seeded %d influencer profiles", len(profiles))
	for _, category := range models.CategoryTags() {
		c := category
		n, err := repo.Count(ctx, models.InfluencerProfileFilter{CategoryTag: &c})
		if err != nil {
			return fmt.Errorf("failed to count category %q: %w", category, err)
		}
		log.Printf("  %-15s %d influencers", category, n)
	}
	return nil
}
