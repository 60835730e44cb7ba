package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/gongguscout/gonggu-scout/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sort expressions understood by ByFilter. Every ordering carries a stable
// id tie-break so repeated queries return identical sequences.
const (
	OrderByEngagement = "engagement_rate DESC, id ASC"
	OrderByFollowers  = "follower_count DESC, id ASC"
	// Profiles that never ran a campaign sort after all dated ones.
	OrderByRecentGonggu = "last_gonggu_date DESC NULLS LAST, id ASC"
)

// InfluencerProfileRepositoryImpl implements InfluencerProfileRepository
type InfluencerProfileRepositoryImpl struct {
	*BaseRepository[models.InfluencerProfile, models.InfluencerProfileFilter]
}

func NewInfluencerProfileRepository(db *gorm.DB) InfluencerProfileRepository {
	return &InfluencerProfileRepositoryImpl{
		BaseRepository: NewBaseRepository[models.InfluencerProfile, models.InfluencerProfileFilter](db),
	}
}

// ByID retrieves a profile by its ID
func (r *InfluencerProfileRepositoryImpl) ByID(ctx context.Context, id uint) (*models.InfluencerProfile, error) {
	db := r.getDB(ctx)
	var row models.InfluencerProfile
	if err := db.Last(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find influencer profile by ID %d: %w", id, err)
	}
	return &row, nil
}

// ByUUID retrieves a profile by its store-managed UUID
func (r *InfluencerProfileRepositoryImpl) ByUUID(ctx context.Context, id uuid.UUID) (*models.InfluencerProfile, error) {
	rows, err := r.ByFilter(ctx, models.InfluencerProfileFilter{UUID: &id}, "", 1, 0)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// ByUsername retrieves a profile by its unique username
func (r *InfluencerProfileRepositoryImpl) ByUsername(ctx context.Context, username string) (*models.InfluencerProfile, error) {
	rows, err := r.ByFilter(ctx, models.InfluencerProfileFilter{Username: &username}, "", 1, 0)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// applyFilter applies filter criteria to a GORM query.
// Range bounds are translated literally; contradictory bounds are the
// caller's problem and simply match nothing.
func (r *InfluencerProfileRepositoryImpl) applyFilter(db *gorm.DB, f models.InfluencerProfileFilter) *gorm.DB {
	if f.ID != nil {
		db = db.Where("id = ?", *f.ID)
	}
	if f.UUID != nil {
		db = db.Where("uuid = ?", *f.UUID)
	}
	if f.Username != nil {
		db = db.Where("username = ?", *f.Username)
	}
	if f.CategoryTag != nil {
		db = db.Where("category_tag = ?", *f.CategoryTag)
	}
	if f.MinFollowers != nil {
		db = db.Where("follower_count >= ?", *f.MinFollowers)
	}
	if f.MaxFollowers != nil {
		db = db.Where("follower_count <= ?", *f.MaxFollowers)
	}
	if f.MinReelsView != nil {
		db = db.Where("avg_reels_view >= ?", *f.MinReelsView)
	}
	if f.MaxReelsView != nil {
		db = db.Where("avg_reels_view <= ?", *f.MaxReelsView)
	}
	if f.HasActiveLink != nil {
		db = db.Where("has_active_link = ?", *f.HasActiveLink)
	}
	if f.CreatedAfter != nil {
		db = db.Where("created_at >= ?", *f.CreatedAfter)
	}
	if f.CreatedBefore != nil {
		db = db.Where("created_at < ?", *f.CreatedBefore)
	}
	return db
}

// ByFilter retrieves profiles matching the filter, ordered by orderBy
// (defaults to id ASC when empty)
func (r *InfluencerProfileRepositoryImpl) ByFilter(ctx context.Context, filter models.InfluencerProfileFilter, orderBy string, limit, offset int) ([]*models.InfluencerProfile, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.InfluencerProfile{}), filter)

	if orderBy == "" {
		orderBy = "id ASC"
	}
	query = query.Order(orderBy)

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var rows []*models.InfluencerProfile
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find influencer profiles by filter: %w", err)
	}
	return rows, nil
}

// Count returns the number of profiles matching the filter
func (r *InfluencerProfileRepositoryImpl) Count(ctx context.Context, filter models.InfluencerProfileFilter) (int64, error) {
	db := r.getDB(ctx)
	query := r.applyFilter(db.Model(&models.InfluencerProfile{}), filter)
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count influencer profiles: %w", err)
	}
	return count, nil
}

// Exists checks if any profile matching the filter exists
func (r *InfluencerProfileRepositoryImpl) Exists(ctx context.Context, filter models.InfluencerProfileFilter) (bool, error) {
	count, err := r.Count(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteAll removes every profile. Only the seed tool calls this, to reset
// the directory before a fresh batch insert.
func (r *InfluencerProfileRepositoryImpl) DeleteAll(ctx context.Context) error {
	db, shouldCommit, err := r.getDBForWrite(ctx)
	if err != nil {
		return err
	}

	if shouldCommit {
		defer func() {
			if err != nil {
				db.Rollback()
			} else {
				db.Commit()
			}
		}()
	}

	err = db.Where("1 = 1").Delete(&models.InfluencerProfile{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete influencer profiles: %w", err)
	}

	return nil
}
