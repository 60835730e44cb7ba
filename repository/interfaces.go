// Package repository provides data access layer implementations and interfaces for database operations
package repository

import (
	"context"

	"github.com/gongguscout/gonggu-scout/models"
	"github.com/google/uuid"
)

// RepositoryContext key for transaction in context
type contextKey string

const TxContextKey contextKey = "tx"

type Repository[T any, F any] interface {
	ByID(ctx context.Context, id uint) (*T, error)
	ByFilter(ctx context.Context, filter F, orderBy string, limit, offset int) ([]*T, error)
	Save(ctx context.Context, entity *T) error
	SaveBatch(ctx context.Context, entities []*T) error
	Count(ctx context.Context, filter F) (int64, error)
	Exists(ctx context.Context, filter F) (bool, error)
}

// InfluencerProfileRepository defines operations for influencer profiles
type InfluencerProfileRepository interface {
	Repository[models.InfluencerProfile, models.InfluencerProfileFilter]
	ByUUID(ctx context.Context, uuid uuid.UUID) (*models.InfluencerProfile, error)
	ByUsername(ctx context.Context, username string) (*models.InfluencerProfile, error)
	DeleteAll(ctx context.Context) error
}
