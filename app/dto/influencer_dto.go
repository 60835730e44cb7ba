// Package dto contains Data Transfer Objects for API request and response structures
package dto

// Sort keys accepted by the search endpoint. Unknown values fall back to
// SortByEngagement rather than erroring.
const (
	SortByEngagement = "engagement"
	SortByFollowers  = "followers"
	SortByRecent     = "recent"
)

// SearchInfluencersRequest carries the parsed query parameters of a search.
// Numeric bounds arrive as strings on the wire and are parsed strictly by
// the handler before validation runs.
type SearchInfluencersRequest struct {
	Category     string `json:"category" validate:"omitempty,max=100"`
	MinFollowers *int64 `json:"minFollowers,omitempty" validate:"omitempty,gte=0"`
	MaxFollowers *int64 `json:"maxFollowers,omitempty" validate:"omitempty,gte=0"`
	MinReelsView *int64 `json:"minReelsView,omitempty" validate:"omitempty,gte=0"`
	MaxReelsView *int64 `json:"maxReelsView,omitempty" validate:"omitempty,gte=0"`
	SortBy       string `json:"sortBy" validate:"omitempty,max=50"`
}

// InfluencerDTO mirrors a stored profile for list responses
type InfluencerDTO struct {
	ID                uint    `json:"id"`
	UUID              string  `json:"uuid"`
	Username          string  `json:"username"`
	DisplayName       string  `json:"displayName"`
	CategoryTag       string  `json:"categoryTag"`
	FollowerCount     int64   `json:"followerCount"`
	AvgReelsView      int64   `json:"avgReelsView"`
	EngagementRate    float64 `json:"engagementRate"`
	LastGongguDate    *string `json:"lastGongguDate"`
	SalesFatigueScore int     `json:"salesFatigueScore"`
	BioLinkURL        *string `json:"bioLinkUrl"`
	HasActiveLink     bool    `json:"hasActiveLink"`
	ProfileImageURL   *string `json:"profileImageUrl"`
	Bio               *string `json:"bio"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// InfluencerDetailDTO extends InfluencerDTO with display-only derivations so
// consumers do not re-implement the badge and formatting rules
type InfluencerDetailDTO struct {
	InfluencerDTO

	DDayLabel          string   `json:"dDayLabel"`
	FatigueLevel       string   `json:"fatigueLevel"`
	FatigueColor       string   `json:"fatigueColor"`
	ReachPercent       *float64 `json:"reachPercent"`
	FollowerCountLabel string   `json:"followerCountLabel"`
	AvgReelsViewLabel  string   `json:"avgReelsViewLabel"`
}

// SearchInfluencersResponse wraps search results
type SearchInfluencersResponse struct {
	Success bool            `json:"success"`
	Count   int             `json:"count"`
	Data    []InfluencerDTO `json:"data"`
}

// GetInfluencerResponse wraps a single-profile lookup
type GetInfluencerResponse struct {
	Success bool                `json:"success"`
	Data    InfluencerDetailDTO `json:"data"`
}
