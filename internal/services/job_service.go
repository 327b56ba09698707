package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wadhefa/wadhefa-backend/internal/apperrors"
	"github.com/wadhefa/wadhefa-backend/internal/cache"
	"github.com/wadhefa/wadhefa-backend/internal/dtos"
	"github.com/wadhefa/wadhefa-backend/internal/models"
	"github.com/wadhefa/wadhefa-backend/internal/repository"
	"github.com/wadhefa/wadhefa-backend/internal/slugify"
	"gorm.io/gorm"
)

const (
	listCacheTTL = 60 * time.Second
	jobCacheTTL  = 600 * time.Second

	// cacheTagJobs groups every cached listing/lookup so mutations can
	// purge them before the TTL runs out.
	cacheTagJobs = "jobs"
)

type JobService struct {
	repo  repository.JobRepository
	cache cache.Cache
}

func NewJobService(repo repository.JobRepository, c cache.Cache) *JobService {
	return &JobService{repo: repo, cache: c}
}

// List returns active postings newest first, read through the cache.
func (s *JobService) List(ctx context.Context, q dtos.JobListQuery) ([]models.JobPosting, error) {
	f := repository.JobFilter{
		Q:      q.Q,
		City:   q.City,
		Type:   q.Type,
		Level:  q.Level,
		Limit:  q.Limit,
		Offset: q.Offset,
	}

	key := listCacheKey(f)
	if raw, ok := s.cache.Get(ctx, key); ok {
		var jobs []models.JobPosting
		if err := json.Unmarshal(raw, &jobs); err == nil {
			return jobs, nil
		}
	}

	jobs, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, apperrors.New(apperrors.CodePersistence, "failed to load jobs", err)
	}

	if raw, err := json.Marshal(jobs); err == nil {
		s.cache.Set(ctx, key, raw, listCacheTTL, cacheTagJobs)
	}
	return jobs, nil
}

func (s *JobService) GetBySlug(ctx context.Context, slug string) (*models.JobPosting, error) {
	key := "jobs:slug:" + slug
	if raw, ok := s.cache.Get(ctx, key); ok {
		var job models.JobPosting
		if err := json.Unmarshal(raw, &job); err == nil {
			return &job, nil
		}
	}

	job, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "job not found", err)
		}
		return nil, apperrors.New(apperrors.CodePersistence, "failed to load job", err)
	}

	if raw, err := json.Marshal(job); err == nil {
		s.cache.Set(ctx, key, raw, jobCacheTTL, cacheTagJobs)
	}
	return job, nil
}

// Create inserts a user-posted job. The slug comes from the title; on a
// collision a short random token is appended.
func (s *JobService) Create(ctx context.Context, req *dtos.JobCreationRequest) (*models.JobPosting, error) {
	slug := slugify.Make(req.Title)
	taken, err := s.repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, apperrors.New(apperrors.CodePersistence, "failed to create job", err)
	}
	if taken || slug == "" {
		slug = slugify.WithSuffix(slug, uuid.NewString()[:8])
	}

	job := &models.JobPosting{
		UserID:          req.UserID,
		Title:           req.Title,
		Company:         req.Company,
		City:            req.City,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		SalaryRange:     req.SalaryRange,
		Description:     req.Description,
		Phone:           req.Phone,
		Email:           req.Email,
		SeoURL:          slug,
		IsActive:        true,
	}
	if err := s.repo.Create(ctx, job); err != nil {
		return nil, apperrors.New(apperrors.CodePersistence, "failed to create job", err)
	}

	s.cache.PurgeTag(ctx, cacheTagJobs)
	return job, nil
}

// Deactivate hides a posting from all listing queries.
func (s *JobService) Deactivate(ctx context.Context, id uint) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "job not found", err)
		}
		return apperrors.New(apperrors.CodePersistence, "failed to deactivate job", err)
	}
	s.cache.PurgeTag(ctx, cacheTagJobs)
	return nil
}

func listCacheKey(f repository.JobFilter) string {
	return fmt.Sprintf("jobs:list:q=%s&city=%s&type=%s&level=%s&limit=%d&offset=%d",
		f.Q, f.City, f.Type, f.Level, f.Limit, f.Offset)
}
