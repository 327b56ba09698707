// Package repository defines the persistence interfaces the services depend
// on, plus their gorm-backed implementations. Services take the interfaces
// so tests can stand in fakes.
package repository

import (
	"context"

	"github.com/wadhefa/wadhefa-backend/internal/models"
)

// JobFilter parameterizes listing queries. Zero-value fields are ignored;
// non-empty filters combine with AND.
type JobFilter struct {
	Q      string // substring match on title, case-insensitive
	City   string // substring match on city, case-insensitive
	Type   string // exact match
	Level  string // exact match
	Limit  int
	Offset int
}

const DefaultLimit = 10

type JobRepository interface {
	List(ctx context.Context, f JobFilter) ([]models.JobPosting, error)
	GetBySlug(ctx context.Context, slug string) (*models.JobPosting, error)
	GetActiveByID(ctx context.Context, id uint) (*models.JobPosting, error)
	Create(ctx context.Context, job *models.JobPosting) error
	Deactivate(ctx context.Context, id uint) error
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	ExistsByDedupKey(ctx context.Context, key string) (bool, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *models.Application) error
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	Save(ctx context.Context, p *models.Profile) error
}

type NewsRepository interface {
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	Create(ctx context.Context, item *models.NewsItem) error
}
