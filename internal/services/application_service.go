package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/wadhefa/wadhefa-backend/internal/apperrors"
	"github.com/wadhefa/wadhefa-backend/internal/models"
	"github.com/wadhefa/wadhefa-backend/internal/repository"
	"github.com/wadhefa/wadhefa-backend/internal/storage"
	"gorm.io/gorm"
)

// MaxCVSize is the CV upload policy limit.
const MaxCVSize = 5 << 20 // 5 MiB

// SubmissionInput is one incoming job application, already read out of the
// multipart form.
type SubmissionInput struct {
	JobID       uint
	Name        string
	Email       string
	Phone       string
	FileName    string
	File        []byte
	ContentType string
}

type ApplicationService struct {
	apps  repository.ApplicationRepository
	jobs  repository.JobRepository
	store storage.ObjectStore
}

func NewApplicationService(apps repository.ApplicationRepository, jobs repository.JobRepository, store storage.ObjectStore) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, store: store}
}

// Submit validates the application, uploads the CV, and records the row.
// Validation and the size gate run before any side effect. If the row insert
// fails after the upload succeeded, the uploaded object is deleted again so
// no orphan is left behind.
func (s *ApplicationService) Submit(ctx context.Context, in SubmissionInput) (*models.Application, error) {
	if in.JobID == 0 || in.Name == "" || in.Email == "" || len(in.File) == 0 {
		return nil, apperrors.New(apperrors.CodeValidation, "name, email, job and CV file are required", nil)
	}
	if len(in.File) > MaxCVSize {
		return nil, apperrors.New(apperrors.CodePayloadTooLarge, "CV file must be 5MB or smaller", nil)
	}

	if _, err := s.jobs.GetActiveByID(ctx, in.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "job not found", err)
		}
		return nil, apperrors.New(apperrors.CodePersistence, "failed to submit application", err)
	}

	key := cvObjectKey(in.JobID, in.FileName)
	if err := s.store.Put(ctx, key, in.File, in.ContentType); err != nil {
		return nil, apperrors.New(apperrors.CodeUpload, "failed to upload CV, please try again", err)
	}

	app := &models.Application{
		JobID: in.JobID,
		Name:  in.Name,
		Email: in.Email,
		Phone: in.Phone,
		CVURL: s.store.PublicURL(key),
	}
	if err := s.apps.Create(ctx, app); err != nil {
		// Compensating delete so the bucket holds no object without a row.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			log.Printf("[applications] orphan cleanup failed for %s: %v", key, delErr)
		}
		return nil, apperrors.New(apperrors.CodePersistence, "failed to save application, please try again", err)
	}

	return app, nil
}

// cvObjectKey namespaces the upload under the job and adds a timestamp plus
// random token so concurrent submissions cannot collide. The original
// extension is preserved.
func cvObjectKey(jobID uint, fileName string) string {
	return fmt.Sprintf("cvs/%d/%d-%s%s",
		jobID, time.Now().UnixNano(), uuid.NewString()[:8], filepath.Ext(fileName))
}
