package models

import (
	"time"

	"gorm.io/gorm"
)

// JobPosting is a single job advertisement. SeoURL is the URL-safe slug used
// for public lookups; SourceURL is set only for ingested postings.
type JobPosting struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `json:"user_id"`

	Title           string `gorm:"not null" json:"title"`
	Company         string `json:"company"`
	City            string `json:"city"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	SalaryRange     string `json:"salary_range"`
	Description     string `gorm:"type:text" json:"description"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`

	SeoURL   string `gorm:"uniqueIndex;not null" json:"seo_url"`
	IsActive bool   `gorm:"default:true" json:"is_active"`

	// Set when the posting was ingested rather than posted by a user.
	SourceURL *string `json:"source_url,omitempty"`
	// Content key used by the ingestion pipeline to skip already-seen
	// postings: normalized source URL when present, otherwise a hash of
	// title+company+city.
	DedupKey string `gorm:"index" json:"-"`
}

// Profile is a talent profile. One per user.
type Profile struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID   uint     `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName string   `gorm:"not null" json:"full_name"`
	Title    string   `json:"title"`
	Bio      string   `gorm:"type:text" json:"bio"`
	Skills   []string `gorm:"serializer:json" json:"skills"`
	City     string   `json:"city"`
	Phone    string   `json:"phone"`
	Email    string   `json:"email"`
	CVURL    string   `json:"cv_url"`
}

// Application links an applicant (by contact fields, not account) to a job.
// There is deliberately no (job, email) unique index: repeat applications are
// accepted as-is.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	JobID uint   `gorm:"index;not null" json:"job_id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null" json:"email"`
	Phone string `json:"phone"`
	CVURL string `gorm:"not null" json:"cv_url"`
}

func (Application) TableName() string { return "job_applications" }

// Category is a lookup row for job categories, bilingual.
type Category struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"uniqueIndex;not null" json:"name"`
	NameAr string `json:"name_ar"`
	Slug   string `gorm:"uniqueIndex" json:"slug"`
}

// ExperienceLevel is a lookup row; Rank orders levels from junior to senior.
type ExperienceLevel struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"uniqueIndex;not null" json:"name"`
	NameAr string `json:"name_ar"`
	Rank   int    `json:"rank"`
}

func (ExperienceLevel) TableName() string { return "experiences" }

// NewsItem is a row fed by the RSS ingester.
type NewsItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	Title       string    `gorm:"index;not null" json:"title"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
}

func (NewsItem) TableName() string { return "news" }
