package repository

import (
	"context"
	"errors"

	"github.com/wadhefa/wadhefa-backend/internal/models"
	"gorm.io/gorm"
)

type GormJobRepository struct {
	db *gorm.DB
}

func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// List always excludes inactive postings and orders newest first.
func (r *GormJobRepository) List(ctx context.Context, f JobFilter) ([]models.JobPosting, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := r.db.WithContext(ctx).
		Model(&models.JobPosting{}).
		Where("is_active = ?", true)

	if f.Q != "" {
		q = q.Where("title ILIKE ?", "%"+f.Q+"%")
	}
	if f.City != "" {
		q = q.Where("city ILIKE ?", "%"+f.City+"%")
	}
	if f.Type != "" {
		q = q.Where("job_type = ?", f.Type)
	}
	if f.Level != "" {
		q = q.Where("experience_level = ?", f.Level)
	}

	var jobs []models.JobPosting
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset(f.Offset).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *GormJobRepository) GetBySlug(ctx context.Context, slug string) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.WithContext(ctx).
		Where("seo_url = ? AND is_active = ?", slug, true).
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *GormJobRepository) GetActiveByID(ctx context.Context, id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *GormJobRepository) Create(ctx context.Context, job *models.JobPosting) error {
	return r.db.WithContext(ctx).Create(job).Error
}

func (r *GormJobRepository) Deactivate(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&models.JobPosting{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *GormJobRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	return r.exists(ctx, "seo_url = ?", slug)
}

func (r *GormJobRepository) ExistsByDedupKey(ctx context.Context, key string) (bool, error) {
	return r.exists(ctx, "dedup_key = ?", key)
}

func (r *GormJobRepository) exists(ctx context.Context, cond string, arg any) (bool, error) {
	var job models.JobPosting
	err := r.db.WithContext(ctx).Select("id").Where(cond, arg).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
