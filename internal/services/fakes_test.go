package services

import (
	"context"
	"errors"
	"time"

	"github.com/wadhefa/wadhefa-backend/internal/models"
	"github.com/wadhefa/wadhefa-backend/internal/repository"
	"gorm.io/gorm"
)

type fakeJobRepo struct {
	jobs       []models.JobPosting
	listCalls  int
	slugCalls  int
	createErr  error
	listFilter repository.JobFilter
}

func (r *fakeJobRepo) List(_ context.Context, f repository.JobFilter) ([]models.JobPosting, error) {
	r.listCalls++
	r.listFilter = f
	return r.jobs, nil
}

func (r *fakeJobRepo) GetBySlug(_ context.Context, slug string) (*models.JobPosting, error) {
	r.slugCalls++
	for i := range r.jobs {
		if r.jobs[i].SeoURL == slug && r.jobs[i].IsActive {
			return &r.jobs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeJobRepo) GetActiveByID(_ context.Context, id uint) (*models.JobPosting, error) {
	for i := range r.jobs {
		if r.jobs[i].ID == id && r.jobs[i].IsActive {
			return &r.jobs[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.JobPosting) error {
	if r.createErr != nil {
		return r.createErr
	}
	job.ID = uint(len(r.jobs) + 1)
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *fakeJobRepo) Deactivate(_ context.Context, id uint) error {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs[i].IsActive = false
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeJobRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	for i := range r.jobs {
		if r.jobs[i].SeoURL == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeJobRepo) ExistsByDedupKey(_ context.Context, key string) (bool, error) {
	for i := range r.jobs {
		if r.jobs[i].DedupKey == key {
			return true, nil
		}
	}
	return false, nil
}

type fakeApplicationRepo struct {
	apps      []models.Application
	createErr error
}

func (r *fakeApplicationRepo) Create(_ context.Context, app *models.Application) error {
	if r.createErr != nil {
		return r.createErr
	}
	app.ID = uint(len(r.apps) + 1)
	r.apps = append(r.apps, *app)
	return nil
}

type fakeProfileRepo struct {
	profiles map[uint]*models.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uint]*models.Profile)}
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID uint) (*models.Profile, error) {
	p, ok := r.profiles[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) Save(_ context.Context, p *models.Profile) error {
	if p.ID == 0 {
		p.ID = uint(len(r.profiles) + 1)
	}
	cp := *p
	r.profiles[p.UserID] = &cp
	return nil
}

// fakeObjectStore records puts and deletes; keys map to stored bodies.
type fakeObjectStore struct {
	objects   map[string][]byte
	putErr    error
	deleteErr error
	deleted   []string
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (s *fakeObjectStore) Put(_ context.Context, key string, data []byte, _ string) error {
	if s.putErr != nil {
		return s.putErr
	}
	if _, exists := s.objects[key]; exists {
		return errors.New("key already exists")
	}
	s.objects[key] = data
	return nil
}

func (s *fakeObjectStore) Delete(_ context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, key)
	delete(s.objects, key)
	return nil
}

func (s *fakeObjectStore) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

// fakeCache is an in-memory Cache that ignores TTL expiry but honors tags.
type fakeCache struct {
	values map[string][]byte
	tags   map[string][]string
	sets   int
	purges int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: make(map[string][]byte), tags: make(map[string][]string)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	v, ok := c.values[key]
	return v, ok
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration, tags ...string) {
	c.sets++
	c.values[key] = value
	for _, tag := range tags {
		c.tags[tag] = append(c.tags[tag], key)
	}
}

func (c *fakeCache) PurgeTag(_ context.Context, tag string) {
	c.purges++
	for _, key := range c.tags[tag] {
		delete(c.values, key)
	}
	delete(c.tags, tag)
}
