// Package businessflow contains the business logic for the application.
package businessflow

import (
	"time"

	"github.com/gongguscout/gonggu-scout/app/display"
	"github.com/gongguscout/gonggu-scout/app/dto"
	"github.com/gongguscout/gonggu-scout/models"
	"github.com/gongguscout/gonggu-scout/utils"
)

const RequestIDKey = "X-Request-ID"

// ClientMetadata holds client-related information for request logging
type ClientMetadata struct {
	IPAddress  string            `json:"ip_address"`
	UserAgent  string            `json:"user_agent"`
	RequestID  string            `json:"request_id,omitempty"`
	Additional map[string]string `json:"additional,omitempty"`
}

// NewClientMetadata creates a new ClientMetadata instance with basic information
func NewClientMetadata(ipAddress, userAgent string) *ClientMetadata {
	return &ClientMetadata{
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Additional: make(map[string]string),
	}
}

// SetRequestID sets the request ID
func (cm *ClientMetadata) SetRequestID(requestID string) {
	cm.RequestID = requestID
}

// AddAdditional adds additional custom information to the metadata
func (cm *ClientMetadata) AddAdditional(key, value string) {
	if cm.Additional == nil {
		cm.Additional = make(map[string]string)
	}
	cm.Additional[key] = value
}

// ToInfluencerDTO converts a profile model to its list representation
func ToInfluencerDTO(p models.InfluencerProfile) dto.InfluencerDTO {
	out := dto.InfluencerDTO{
		ID:                p.ID,
		UUID:              p.UUID.String(),
		Username:          p.Username,
		DisplayName:       p.DisplayName,
		CategoryTag:       p.CategoryTag,
		FollowerCount:     p.FollowerCount,
		AvgReelsView:      p.AvgReelsView,
		EngagementRate:    p.EngagementRate,
		SalesFatigueScore: p.SalesFatigueScore,
		BioLinkURL:        p.BioLinkURL,
		HasActiveLink:     p.HasActiveLink,
		ProfileImageURL:   p.ProfileImageURL,
		Bio:               p.Bio,
		CreatedAt:         utils.TimeToUTC(p.CreatedAt).Format(time.RFC3339),
		UpdatedAt:         utils.TimeToUTC(p.UpdatedAt).Format(time.RFC3339),
	}
	if last := utils.TimeToUTCPtr(p.LastGongguDate); last != nil {
		s := last.Format(time.RFC3339)
		out.LastGongguDate = &s
	}
	return out
}

// ToInfluencerDetailDTO converts a profile model to its detail representation,
// attaching the display derivations evaluated at now. ReachPercent stays nil
// when the profile has zero followers.
func ToInfluencerDetailDTO(p models.InfluencerProfile, now time.Time) dto.InfluencerDetailDTO {
	out := dto.InfluencerDetailDTO{
		InfluencerDTO:      ToInfluencerDTO(p),
		DDayLabel:          display.DDayLabel(p.LastGongguDate, now),
		FatigueLevel:       display.FatigueLevel(p.SalesFatigueScore),
		FatigueColor:       display.FatigueColor(p.SalesFatigueScore),
		FollowerCountLabel: display.FormatCompact(p.FollowerCount),
		AvgReelsViewLabel:  display.FormatCompact(p.AvgReelsView),
	}
	if reach, err := display.ReachPercent(p.AvgReelsView, p.FollowerCount); err == nil {
		out.ReachPercent = &reach
	}
	return out
}
