package repository

import (
	"context"
	"errors"

	"github.com/wadhefa/wadhefa-backend/internal/models"
	"gorm.io/gorm"
)

type GormApplicationRepository struct {
	db *gorm.DB
}

func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

func (r *GormApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	return r.db.WithContext(ctx).Create(app).Error
}

type GormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Save inserts or updates depending on whether the row has an ID yet.
func (r *GormProfileRepository) Save(ctx context.Context, p *models.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

type GormNewsRepository struct {
	db *gorm.DB
}

func NewGormNewsRepository(db *gorm.DB) *GormNewsRepository {
	return &GormNewsRepository{db: db}
}

func (r *GormNewsRepository) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var item models.NewsItem
	err := r.db.WithContext(ctx).Select("id").Where("title = ?", title).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *GormNewsRepository) Create(ctx context.Context, item *models.NewsItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}
