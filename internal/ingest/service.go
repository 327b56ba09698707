package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/wadhefa/wadhefa-backend/internal/dtos"
	"github.com/wadhefa/wadhefa-backend/internal/models"
	"github.com/wadhefa/wadhefa-backend/internal/repository"
	"github.com/wadhefa/wadhefa-backend/internal/slugify"
)

// titleSeparator is the sequence feed sources append their site name after,
// e.g. "مطلوب مهندس - صحيفة سبق".
const titleSeparator = " - "

// Normalizer turns a raw scraped posting into structured fields. Implemented
// by services.LLMService; tests use a double.
type Normalizer interface {
	Normalize(ctx context.Context, rawContent, sourceURL string) (*dtos.ProcessedJob, error)
}

// Summary reports one ingestion run.
type Summary struct {
	Found    int `json:"found"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

type Service struct {
	news       repository.NewsRepository
	jobs       repository.JobRepository
	normalizer Normalizer
}

func NewService(news repository.NewsRepository, jobs repository.JobRepository, normalizer Normalizer) *Service {
	return &Service{news: news, jobs: jobs, normalizer: normalizer}
}

// RunNews ingests feed items into the news table, skipping titles already
// stored. A fetch failure is logged and reported as an empty run; the
// trigger endpoint never errors on an unreachable source.
func (s *Service) RunNews(ctx context.Context, fetcher Fetcher) Summary {
	items, err := fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("[ingest] news fetch failed: %v", err)
		return Summary{}
	}

	sum := Summary{Found: len(items)}
	for _, it := range items {
		title := CutTitle(it.Title)
		if title == "" {
			sum.Skipped++
			continue
		}

		exists, err := s.news.ExistsByTitle(ctx, title)
		if err != nil {
			log.Printf("[ingest] dedup check for %q failed: %v", title, err)
			sum.Skipped++
			continue
		}
		if exists {
			sum.Skipped++
			continue
		}

		item := &models.NewsItem{
			Title:       title,
			Link:        it.Link,
			PublishedAt: it.Published,
		}
		if err := s.news.Create(ctx, item); err != nil {
			log.Printf("[ingest] insert %q failed: %v", title, err)
			sum.Skipped++
			continue
		}
		sum.Inserted++
	}

	log.Printf("[ingest] news run done — found=%d inserted=%d skipped=%d",
		sum.Found, sum.Inserted, sum.Skipped)
	return sum
}

// RunJobs ingests feed items as job postings: each item is normalized into
// structured fields, deduplicated by content key, and inserted. Items the
// normalizer cannot give a title are dropped rather than invented.
func (s *Service) RunJobs(ctx context.Context, fetcher Fetcher) Summary {
	items, err := fetcher.Fetch(ctx)
	if err != nil {
		log.Printf("[ingest] jobs fetch failed: %v", err)
		return Summary{}
	}

	sum := Summary{Found: len(items)}
	for _, it := range items {
		raw := it.Content
		if raw == "" {
			raw = it.Title
		}

		processed, err := s.normalizer.Normalize(ctx, raw, it.Link)
		if err != nil {
			log.Printf("[ingest] normalize %q failed: %v", it.Title, err)
			sum.Skipped++
			continue
		}
		if processed.Title == "" {
			sum.Skipped++
			continue
		}

		key := DedupKey(it.Link, processed)
		exists, err := s.jobs.ExistsByDedupKey(ctx, key)
		if err != nil {
			log.Printf("[ingest] dedup check for %q failed: %v", processed.Title, err)
			sum.Skipped++
			continue
		}
		if exists {
			sum.Skipped++
			continue
		}

		if err := s.insertPosting(ctx, it.Link, key, processed); err != nil {
			log.Printf("[ingest] insert %q failed: %v", processed.Title, err)
			sum.Skipped++
			continue
		}
		sum.Inserted++
	}

	log.Printf("[ingest] jobs run done — found=%d inserted=%d skipped=%d",
		sum.Found, sum.Inserted, sum.Skipped)
	return sum
}

func (s *Service) insertPosting(ctx context.Context, link, dedupKey string, p *dtos.ProcessedJob) error {
	slug := slugify.Make(p.Title)
	taken, err := s.jobs.ExistsBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if taken || slug == "" {
		slug = slugify.WithSuffix(slug, uuid.NewString()[:8])
	}

	var sourceURL *string
	if link != "" {
		sourceURL = &link
	}

	job := &models.JobPosting{
		Title:           p.Title,
		Company:         p.Company,
		City:            p.City,
		JobType:         p.JobType,
		ExperienceLevel: p.ExperienceLevel,
		SalaryRange:     p.SalaryRange,
		Description:     buildDescription(p),
		Phone:           p.Phone,
		Email:           p.Email,
		SeoURL:          slug,
		IsActive:        true,
		SourceURL:       sourceURL,
		DedupKey:        dedupKey,
	}
	return s.jobs.Create(ctx, job)
}

func buildDescription(p *dtos.ProcessedJob) string {
	var b strings.Builder
	b.WriteString(p.Description)
	if len(p.Requirements) > 0 {
		b.WriteString("\n\nالمتطلبات:\n- ")
		b.WriteString(strings.Join(p.Requirements, "\n- "))
	}
	if len(p.Benefits) > 0 {
		b.WriteString("\n\nالمزايا:\n- ")
		b.WriteString(strings.Join(p.Benefits, "\n- "))
	}
	return b.String()
}

// CutTitle truncates at the first separator to drop source-site suffixes.
func CutTitle(title string) string {
	if idx := strings.Index(title, titleSeparator); idx >= 0 {
		title = title[:idx]
	}
	return strings.TrimSpace(title)
}

// DedupKey is the content key a posting is deduplicated on: the normalized
// source URL when one exists, otherwise a hash of title+company+city.
// Title-only matching collides across unrelated postings.
func DedupKey(link string, p *dtos.ProcessedJob) string {
	if normalized := NormalizeSourceURL(link); normalized != "" {
		return normalized
	}
	sum := sha256.Sum256([]byte(strings.ToLower(
		fmt.Sprintf("%s|%s|%s", p.Title, p.Company, p.City))))
	return hex.EncodeToString(sum[:])
}

// NormalizeSourceURL lowercases scheme and host and strips query, fragment,
// and trailing slashes so trivially different URLs of one posting match.
func NormalizeSourceURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.Fragment = ""
	u.Path = strings.TrimRight(u.Path, "/")
	return u.String()
}
