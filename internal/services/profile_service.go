package services

import (
	"context"
	"errors"

	"github.com/wadhefa/wadhefa-backend/internal/apperrors"
	"github.com/wadhefa/wadhefa-backend/internal/dtos"
	"github.com/wadhefa/wadhefa-backend/internal/models"
	"github.com/wadhefa/wadhefa-backend/internal/repository"
	"gorm.io/gorm"
)

type ProfileService struct {
	repo repository.ProfileRepository
}

func NewProfileService(repo repository.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "profile not found", err)
		}
		return nil, apperrors.New(apperrors.CodePersistence, "failed to load profile", err)
	}
	return p, nil
}

// Upsert keeps one profile per user: existing rows are updated in place,
// otherwise a new one is created.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, req *dtos.ProfileRequest) (*models.Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodePersistence, "failed to save profile", err)
		}
		p = &models.Profile{UserID: userID}
	}

	p.FullName = req.FullName
	p.Title = req.Title
	p.Bio = req.Bio
	p.Skills = req.Skills
	p.City = req.City
	p.Phone = req.Phone
	p.Email = req.Email
	if req.CVURL != "" {
		p.CVURL = req.CVURL
	}

	if err := s.repo.Save(ctx, p); err != nil {
		return nil, apperrors.New(apperrors.CodePersistence, "failed to save profile", err)
	}
	return p, nil
}
