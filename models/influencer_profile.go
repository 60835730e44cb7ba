// Package models contains domain entities and business models for the influencer directory
package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// InfluencerProfile represents one influencer in the searchable directory
// Table: influencer_profiles
// Unique by username; UUID is a store-managed external identifier
// SalesFatigueScore is a snapshot derived from LastGongguDate at creation time
// BioLinkURL must be nil unless HasActiveLink is true
// Timestamps default to UTC at DB level
type InfluencerProfile struct {
	ID   uint      `gorm:"primaryKey" json:"id"`
	UUID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uk_influencer_profiles_uuid" json:"uuid"`

	Username    string `gorm:"size:255;not null;uniqueIndex:uk_influencer_profiles_username" json:"username"`
	DisplayName string `gorm:"size:255;not null" json:"displayName"`
	CategoryTag string `gorm:"size:100;not null;index:idx_influencer_profiles_category_tag" json:"categoryTag"`

	FollowerCount  int64   `gorm:"not null;default:0;index:idx_influencer_profiles_follower_count" json:"followerCount"`
	AvgReelsView   int64   `gorm:"not null;default:0;index:idx_influencer_profiles_avg_reels_view" json:"avgReelsView"`
	EngagementRate float64 `gorm:"type:numeric(5,2);not null;default:0" json:"engagementRate"`

	LastGongguDate    *time.Time `gorm:"index:idx_influencer_profiles_last_gonggu_date" json:"lastGongguDate"`
	SalesFatigueScore int        `gorm:"not null;default:1" json:"salesFatigueScore"`

	BioLinkURL      *string `gorm:"size:512" json:"bioLinkUrl"`
	HasActiveLink   bool    `gorm:"not null;default:false" json:"hasActiveLink"`
	ProfileImageURL *string `gorm:"size:512" json:"profileImageUrl"`
	Bio             *string `gorm:"type:text" json:"bio"`

	CreatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC');index:idx_influencer_profiles_created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"default:(CURRENT_TIMESTAMP AT TIME ZONE 'UTC')" json:"updatedAt"`
}

func (InfluencerProfile) TableName() string {
	return "influencer_profiles"
}

// Fatigue score bounds
const (
	MinSalesFatigueScore = 1
	MaxSalesFatigueScore = 10
)

var (
	ErrFatigueScoreOutOfRange = errors.New("sales fatigue score must be between 1 and 10")
	ErrNegativeFollowerCount  = errors.New("follower count must be non-negative")
	ErrNegativeAvgReelsView   = errors.New("avg reels view must be non-negative")
	ErrNegativeEngagementRate = errors.New("engagement rate must be non-negative")
	ErrBioLinkWithoutActive   = errors.New("bio link URL requires an active link")
	ErrUsernameRequired       = errors.New("username is required")
)

// Validate enforces the write-boundary invariants before a profile is persisted
func (p *InfluencerProfile) Validate() error {
	if p.Username == "" {
		return ErrUsernameRequired
	}
	if p.SalesFatigueScore < MinSalesFatigueScore || p.SalesFatigueScore > MaxSalesFatigueScore {
		return ErrFatigueScoreOutOfRange
	}
	if p.FollowerCount < 0 {
		return ErrNegativeFollowerCount
	}
	if p.AvgReelsView < 0 {
		return ErrNegativeAvgReelsView
	}
	if p.EngagementRate < 0 {
		return ErrNegativeEngagementRate
	}
	if p.BioLinkURL != nil && !p.HasActiveLink {
		return ErrBioLinkWithoutActive
	}
	return nil
}

// InfluencerProfileFilter represents filter criteria for influencer queries
// Range bounds are applied literally; a min above its max yields zero rows
type InfluencerProfileFilter struct {
	ID            *uint
	UUID          *uuid.UUID
	Username      *string
	CategoryTag   *string
	MinFollowers  *int64
	MaxFollowers  *int64
	MinReelsView  *int64
	MaxReelsView  *int64
	HasActiveLink *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}
