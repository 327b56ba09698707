package services

import (
	"context"
	"testing"

	"github.com/wadhefa/wadhefa-backend/internal/apperrors"
	"github.com/wadhefa/wadhefa-backend/internal/dtos"
	"github.com/wadhefa/wadhefa-backend/internal/models"
)

func TestList_PassesFiltersThrough(t *testing.T) {
	repo := &fakeJobRepo{}
	svc := NewJobService(repo, newFakeCache())

	_, err := svc.List(context.Background(), dtos.JobListQuery{
		Q: "مهندس", City: "Riyadh", Type: "full-time", Level: "senior",
		Limit: 10, Offset: 10,
	})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	f := repo.listFilter
	if f.Q != "مهندس" || f.City != "Riyadh" || f.Type != "full-time" || f.Level != "senior" {
		t.Errorf("filters not passed through: %+v", f)
	}
	if f.Limit != 10 || f.Offset != 10 {
		t.Errorf("pagination not passed through: %+v", f)
	}
}

func TestList_SecondCallServedFromCache(t *testing.T) {
	repo := &fakeJobRepo{jobs: []models.JobPosting{{ID: 1, Title: "مهندس", SeoURL: "a", IsActive: true}}}
	svc := NewJobService(repo, newFakeCache())

	q := dtos.JobListQuery{City: "Riyadh"}
	first, err := svc.List(context.Background(), q)
	if err != nil {
		t.Fatalf("first List: %v", err)
	}
	second, err := svc.List(context.Background(), q)
	if err != nil {
		t.Fatalf("second List: %v", err)
	}

	if repo.listCalls != 1 {
		t.Errorf("expected 1 store round trip, got %d", repo.listCalls)
	}
	if len(first) != len(second) || first[0].ID != second[0].ID {
		t.Error("cached result differs from stored result")
	}
}

func TestList_DifferentFiltersMissTheCache(t *testing.T) {
	repo := &fakeJobRepo{}
	svc := NewJobService(repo, newFakeCache())

	_, _ = svc.List(context.Background(), dtos.JobListQuery{Offset: 0})
	_, _ = svc.List(context.Background(), dtos.JobListQuery{Offset: 10})

	if repo.listCalls != 2 {
		t.Errorf("distinct filter sets must hit the store separately, got %d calls", repo.listCalls)
	}
}

func TestGetBySlug_CachedWithinWindow(t *testing.T) {
	repo := &fakeJobRepo{jobs: []models.JobPosting{{ID: 1, Title: "مهندس", SeoURL: "muhandis", IsActive: true}}}
	svc := NewJobService(repo, newFakeCache())

	for i := 0; i < 2; i++ {
		job, err := svc.GetBySlug(context.Background(), "muhandis")
		if err != nil {
			t.Fatalf("GetBySlug call %d: %v", i, err)
		}
		if job.SeoURL != "muhandis" {
			t.Errorf("wrong job: %+v", job)
		}
	}
	if repo.slugCalls != 1 {
		t.Errorf("expected 1 store round trip, got %d", repo.slugCalls)
	}
}

func TestGetBySlug_NotFound(t *testing.T) {
	svc := NewJobService(&fakeJobRepo{}, newFakeCache())
	_, err := svc.GetBySlug(context.Background(), "missing")
	if !apperrors.Is(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestCreate_SlugsAndPurgesCache(t *testing.T) {
	repo := &fakeJobRepo{}
	c := newFakeCache()
	svc := NewJobService(repo, c)

	// Warm the cache, then mutate.
	_, _ = svc.List(context.Background(), dtos.JobListQuery{})

	job, err := svc.Create(context.Background(), &dtos.JobCreationRequest{
		Title: "Backend Engineer", Company: "Acme", Description: "build things",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.SeoURL != "backend-engineer" {
		t.Errorf("slug = %q, want backend-engineer", job.SeoURL)
	}
	if c.purges != 1 {
		t.Errorf("mutation must purge the jobs cache tag, purges = %d", c.purges)
	}

	// A second posting with the same title gets a suffixed slug.
	dup, err := svc.Create(context.Background(), &dtos.JobCreationRequest{
		Title: "Backend Engineer", Company: "Other", Description: "more things",
	})
	if err != nil {
		t.Fatalf("Create duplicate title: %v", err)
	}
	if dup.SeoURL == job.SeoURL {
		t.Error("slug collision not resolved")
	}
}

func TestDeactivate_PurgesCache(t *testing.T) {
	repo := &fakeJobRepo{jobs: []models.JobPosting{{ID: 5, SeoURL: "x", IsActive: true}}}
	c := newFakeCache()
	svc := NewJobService(repo, c)

	if err := svc.Deactivate(context.Background(), 5); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}
	if repo.jobs[0].IsActive {
		t.Error("posting still active")
	}
	if c.purges != 1 {
		t.Errorf("expected cache purge, got %d", c.purges)
	}

	if err := svc.Deactivate(context.Background(), 99); !apperrors.Is(err, apperrors.CodeNotFound) {
		t.Errorf("expected not-found for unknown id, got %v", err)
	}
}
