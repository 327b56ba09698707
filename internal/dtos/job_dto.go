package dtos

// JobListQuery carries the optional listing filters. Filters combine with
// AND; Q and City are case-insensitive substring matches.
type JobListQuery struct {
	Q      string `form:"q"`
	City   string `form:"city"`
	Type   string `form:"type"`
	Level  string `form:"level"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Description string `json:"description" binding:"required"`

	// Optional fields
	City            string `json:"city"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	SalaryRange     string `json:"salary_range"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	UserID          uint   `json:"user_id"`
}

// ProcessedJob is the structured record the normalizer extracts from a raw
// scraped posting. Fields the source does not state stay empty; the
// normalizer never fills them in with guesses.
type ProcessedJob struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	City            string   `json:"city"`
	JobType         string   `json:"job_type"`
	ExperienceLevel string   `json:"experience_level"`
	SalaryRange     string   `json:"salary_range"`
	Description     string   `json:"description"`
	Requirements    []string `json:"requirements"`
	Benefits        []string `json:"benefits"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
}
