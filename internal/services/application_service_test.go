package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/wadhefa/wadhefa-backend/internal/apperrors"
	"github.com/wadhefa/wadhefa-backend/internal/models"
)

func activeJob(id uint) models.JobPosting {
	return models.JobPosting{ID: id, Title: "مهندس برمجيات", SeoURL: "job", IsActive: true}
}

func validInput() SubmissionInput {
	return SubmissionInput{
		JobID:       1,
		Name:        "أحمد",
		Email:       "ahmed@example.com",
		Phone:       "0501234567",
		FileName:    "cv.pdf",
		File:        []byte("%PDF-1.4 fake"),
		ContentType: "application/pdf",
	}
}

func TestSubmit_Success(t *testing.T) {
	store := newFakeObjectStore()
	apps := &fakeApplicationRepo{}
	jobs := &fakeJobRepo{jobs: []models.JobPosting{activeJob(1)}}
	svc := NewApplicationService(apps, jobs, store)

	app, err := svc.Submit(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if len(store.objects) != 1 {
		t.Fatalf("expected 1 stored object, got %d", len(store.objects))
	}
	if len(apps.apps) != 1 {
		t.Fatalf("expected 1 application row, got %d", len(apps.apps))
	}

	// The row must reference the stored object's URL, extension preserved.
	var key string
	for k := range store.objects {
		key = k
	}
	if app.CVURL != "https://cdn.test/"+key {
		t.Errorf("CVURL %q does not reference stored key %q", app.CVURL, key)
	}
	if !strings.HasPrefix(key, "cvs/1/") || !strings.HasSuffix(key, ".pdf") {
		t.Errorf("unexpected object key %q", key)
	}
}

func TestSubmit_MissingFields_NoSideEffects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*SubmissionInput)
	}{
		{"missing job", func(in *SubmissionInput) { in.JobID = 0 }},
		{"missing name", func(in *SubmissionInput) { in.Name = "" }},
		{"missing email", func(in *SubmissionInput) { in.Email = "" }},
		{"missing file", func(in *SubmissionInput) { in.File = nil }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			store := newFakeObjectStore()
			apps := &fakeApplicationRepo{}
			jobs := &fakeJobRepo{jobs: []models.JobPosting{activeJob(1)}}
			svc := NewApplicationService(apps, jobs, store)

			in := validInput()
			c.mutate(&in)

			_, err := svc.Submit(context.Background(), in)
			if !apperrors.Is(err, apperrors.CodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(store.objects) != 0 || len(apps.apps) != 0 {
				t.Error("validation failure must produce zero side effects")
			}
		})
	}
}

func TestSubmit_OversizeRejectedBeforeUpload(t *testing.T) {
	store := newFakeObjectStore()
	apps := &fakeApplicationRepo{}
	jobs := &fakeJobRepo{jobs: []models.JobPosting{activeJob(1)}}
	svc := NewApplicationService(apps, jobs, store)

	in := validInput()
	in.File = make([]byte, MaxCVSize+1)

	_, err := svc.Submit(context.Background(), in)
	if !apperrors.Is(err, apperrors.CodePayloadTooLarge) {
		t.Fatalf("expected payload-too-large, got %v", err)
	}
	if len(store.objects) != 0 {
		t.Error("oversize file must be rejected before any upload")
	}
}

func TestSubmit_UnknownJob(t *testing.T) {
	store := newFakeObjectStore()
	svc := NewApplicationService(&fakeApplicationRepo{}, &fakeJobRepo{}, store)

	_, err := svc.Submit(context.Background(), validInput())
	if !apperrors.Is(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
	if len(store.objects) != 0 {
		t.Error("no upload expected for unknown job")
	}
}

func TestSubmit_UploadFailure_NoRow(t *testing.T) {
	store := newFakeObjectStore()
	store.putErr = errors.New("bucket unavailable")
	apps := &fakeApplicationRepo{}
	jobs := &fakeJobRepo{jobs: []models.JobPosting{activeJob(1)}}
	svc := NewApplicationService(apps, jobs, store)

	_, err := svc.Submit(context.Background(), validInput())
	if !apperrors.Is(err, apperrors.CodeUpload) {
		t.Fatalf("expected upload error, got %v", err)
	}
	if len(apps.apps) != 0 {
		t.Error("no row may be created when the upload fails")
	}
}

func TestSubmit_InsertFailure_CompensatingDelete(t *testing.T) {
	store := newFakeObjectStore()
	apps := &fakeApplicationRepo{createErr: errors.New("connection reset")}
	jobs := &fakeJobRepo{jobs: []models.JobPosting{activeJob(1)}}
	svc := NewApplicationService(apps, jobs, store)

	_, err := svc.Submit(context.Background(), validInput())
	if !apperrors.Is(err, apperrors.CodePersistence) {
		t.Fatalf("expected persistence error, got %v", err)
	}
	if len(store.deleted) != 1 {
		t.Fatalf("expected compensating delete of the uploaded object, got %d deletes", len(store.deleted))
	}
	if len(store.objects) != 0 {
		t.Error("orphaned object left behind after insert failure")
	}
}

func TestSubmit_DistinctKeysForRepeatSubmissions(t *testing.T) {
	store := newFakeObjectStore()
	apps := &fakeApplicationRepo{}
	jobs := &fakeJobRepo{jobs: []models.JobPosting{activeJob(1)}}
	svc := NewApplicationService(apps, jobs, store)

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(context.Background(), validInput()); err != nil {
			t.Fatalf("submission %d failed: %v", i, err)
		}
	}
	if len(store.objects) != 3 {
		t.Errorf("expected 3 distinct objects, got %d", len(store.objects))
	}
}
