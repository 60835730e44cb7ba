// Package businessflow contains use cases for searching the influencer directory
package businessflow

import (
	"context"
	"fmt"
	"time"

	"github.com/gongguscout/gonggu-scout/app/dto"
	"github.com/gongguscout/gonggu-scout/models"
	"github.com/gongguscout/gonggu-scout/repository"
	"github.com/gongguscout/gonggu-scout/utils"
	"github.com/xuri/excelize/v2"
)

// InfluencerFlow defines the read-only operations of the search service
type InfluencerFlow interface {
	Search(ctx context.Context, req *dto.SearchInfluencersRequest, metadata *ClientMetadata) (*dto.SearchInfluencersResponse, error)
	GetByID(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.GetInfluencerResponse, error)
	Export(ctx context.Context, req *dto.SearchInfluencersRequest, metadata *ClientMetadata) ([]byte, error)
}

type InfluencerFlowImpl struct {
	profileRepo repository.InfluencerProfileRepository
	now         func() time.Time
}

func NewInfluencerFlow(profileRepo repository.InfluencerProfileRepository) InfluencerFlow {
	return &InfluencerFlowImpl{profileRepo: profileRepo, now: utils.UTCNow}
}

// NewInfluencerFlowWithClock allows tests to pin the evaluation time of
// display derivations
func NewInfluencerFlowWithClock(profileRepo repository.InfluencerProfileRepository, now func() time.Time) InfluencerFlow {
	return &InfluencerFlowImpl{profileRepo: profileRepo, now: now}
}

// buildFilter translates a search request into a store filter. The category
// sentinel "all" (or an empty value) drops the category predicate; every
// other value passes through untouched, so unknown categories match nothing.
func buildFilter(req *dto.SearchInfluencersRequest) models.InfluencerProfileFilter {
	var filter models.InfluencerProfileFilter
	if req.Category != "" && req.Category != models.CategoryAll {
		category := req.Category
		filter.CategoryTag = &category
	}
	filter.MinFollowers = req.MinFollowers
	filter.MaxFollowers = req.MaxFollowers
	filter.MinReelsView = req.MinReelsView
	filter.MaxReelsView = req.MaxReelsView
	return filter
}

// orderByFor maps a sort key to its SQL ordering. Unknown keys fall back to
// the engagement default.
func orderByFor(sortBy string) string {
	switch sortBy {
	case dto.SortByFollowers:
		return repository.OrderByFollowers
	case dto.SortByRecent:
		return repository.OrderByRecentGonggu
	default:
		return repository.OrderByEngagement
	}
}

// Search returns all profiles matching the request, ordered by the requested
// key. An empty result is success, not an error.
func (f *InfluencerFlowImpl) Search(ctx context.Context, req *dto.SearchInfluencersRequest, metadata *ClientMetadata) (resp *dto.SearchInfluencersResponse, err error) {
	defer func() {
		if err != nil {
			err = NewBusinessError("SEARCH_INFLUENCERS_FAILED", "Failed to search influencers", err)
		}
	}()

	rows, err := f.profileRepo.ByFilter(ctx, buildFilter(req), orderByFor(req.SortBy), 0, 0)
	if err != nil {
		return nil, err
	}

	items := make([]dto.InfluencerDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, ToInfluencerDTO(*r))
	}

	return &dto.SearchInfluencersResponse{
		Success: true,
		Count:   len(items),
		Data:    items,
	}, nil
}

// GetByID returns a single profile with its display derivations attached
func (f *InfluencerFlowImpl) GetByID(ctx context.Context, id uint, metadata *ClientMetadata) (*dto.GetInfluencerResponse, error) {
	if id == 0 {
		return nil, ErrInvalidInfluencerID
	}

	row, err := f.profileRepo.ByID(ctx, id)
	if err != nil {
		return nil, NewBusinessError("GET_INFLUENCER_FAILED", "Failed to fetch influencer", err)
	}
	if row == nil {
		return nil, ErrInfluencerNotFound
	}

	return &dto.GetInfluencerResponse{
		Success: true,
		Data:    ToInfluencerDetailDTO(*row, f.now()),
	}, nil
}

// Export column headers, in sheet order
var exportHeader = []any{
	"ID", "Username", "Display Name", "Category", "Followers",
	"Avg Reels View", "Engagement Rate (%)", "Last Gonggu", "Fatigue Score",
	"Active Link", "Bio Link",
}

// Export writes the filtered, ordered result set into a spreadsheet for
// campaign-planning handoff. Same predicate and sort contract as Search.
func (f *InfluencerFlowImpl) Export(ctx context.Context, req *dto.SearchInfluencersRequest, metadata *ClientMetadata) (out []byte, err error) {
	defer func() {
		if err != nil {
			err = NewBusinessError("EXPORT_INFLUENCERS_FAILED", "Failed to export influencers", err)
		}
	}()

	rows, err := f.profileRepo.ByFilter(ctx, buildFilter(req), orderByFor(req.SortBy), 0, 0)
	if err != nil {
		return nil, err
	}

	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	const sheet = "Influencers"
	idx, err := xl.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	xl.SetActiveSheet(idx)
	_ = xl.DeleteSheet("Sheet1")

	if err = xl.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for ri, r := range rows {
		lastGonggu := ""
		if r.LastGongguDate != nil {
			lastGonggu = r.LastGongguDate.UTC().Format("2006-01-02")
		}
		bioLink := ""
		if r.BioLinkURL != nil {
			bioLink = *r.BioLinkURL
		}
		record := []any{
			r.ID,
			r.Username,
			r.DisplayName,
			r.CategoryTag,
			r.FollowerCount,
			r.AvgReelsView,
			r.EngagementRate,
			lastGonggu,
			r.SalesFatigueScore,
			r.HasActiveLink,
			bioLink,
		}
		cellRef, _ := excelize.CoordinatesToCellName(1, ri+2)
		if err = xl.SetSheetRow(sheet, cellRef, &record); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", ri+2, err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
