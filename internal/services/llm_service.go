package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/wadhefa/wadhefa-backend/internal/apperrors"
	"github.com/wadhefa/wadhefa-backend/internal/dtos"
)

type LLMService struct {
	Client llms.Model
}

// NewLLMService initializes the Gemini client.
func NewLLMService(apiKey string) *LLMService {
	ctx := context.Background()
	if apiKey == "" {
		log.Fatal("CRITICAL ERROR: GEMINI_API_KEY is empty. Did you load the .env file?")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		log.Fatal("Failed to create Gemini client:", err)
	}

	return &LLMService{Client: llm}
}

const normalizePrompt = `
You are a job posting extraction agent for an Arabic-first job portal. Analyze the raw HTML/text of a scraped job posting and extract structured data.

### INSTRUCTIONS:
1. **Analyze** the text to identify the core job details. The content may be Arabic, English, or mixed.
2. **Ignore** navigation menus, footers, related-posting lists, and advertisements.
3. **Extract** the fields below strictly, keeping the original language of the posting.
4. **Format** the output as valid JSON only. Do not wrap the output in markdown code blocks.

### OUTPUT SCHEMA:
{
    "title": "Job title exactly as posted",
    "company": "Company name, or null",
    "city": "City, or null",
    "job_type": "full-time | part-time | contract | remote, or null",
    "experience_level": "junior | mid | senior, or null",
    "salary_range": "The salary string if explicitly mentioned, otherwise null",
    "description": "A clean summary of the posting with HTML tags removed",
    "requirements": ["Array", "of", "stated", "requirements"],
    "benefits": ["Array", "of", "stated", "benefits"],
    "phone": "Contact phone if listed, otherwise null",
    "email": "Contact email if listed, otherwise null"
}

### CONSTRAINT:
If a piece of information is missing, set the value to null. Do not hallucinate or guess.

### SOURCE URL:
%s

### RAW CONTENT:
%s
`

// Normalize turns a raw scraped posting into a structured record. Fields the
// model cannot find stay empty; a malformed response degrades to whatever
// fields do parse rather than failing the whole item.
func (s *LLMService) Normalize(ctx context.Context, rawContent, sourceURL string) (*dtos.ProcessedJob, error) {
	if len(rawContent) > 20000 {
		rawContent = rawContent[:20000]
	}

	prompt := fmt.Sprintf(normalizePrompt, sourceURL, rawContent)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return nil, apperrors.New(apperrors.CodeUpstreamFetch, "AI normalization failed", err)
	}

	return ParseProcessedJob(resp), nil
}

// CleanJSON strips the markdown code fences models like to wrap JSON in.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}

// ParseProcessedJob parses the model response. If strict unmarshalling fails
// it falls back to picking out whichever fields are well-formed, so a partly
// broken response still yields partial data instead of nothing.
func ParseProcessedJob(raw string) *dtos.ProcessedJob {
	clean := CleanJSON(raw)
	if start, end := strings.Index(clean, "{"), strings.LastIndex(clean, "}"); start >= 0 && end > start {
		clean = clean[start : end+1]
	}

	var job dtos.ProcessedJob
	if err := json.Unmarshal([]byte(clean), &job); err == nil {
		return &job
	}

	// Loose pass: take any field that individually parses as the right type.
	var loose map[string]any
	if err := json.Unmarshal([]byte(clean), &loose); err != nil {
		return &job
	}
	job.Title = looseString(loose, "title")
	job.Company = looseString(loose, "company")
	job.City = looseString(loose, "city")
	job.JobType = looseString(loose, "job_type")
	job.ExperienceLevel = looseString(loose, "experience_level")
	job.SalaryRange = looseString(loose, "salary_range")
	job.Description = looseString(loose, "description")
	job.Phone = looseString(loose, "phone")
	job.Email = looseString(loose, "email")
	job.Requirements = looseStrings(loose, "requirements")
	job.Benefits = looseStrings(loose, "benefits")
	return &job
}

func looseString(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func looseStrings(m map[string]any, key string) []string {
	items, ok := m[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
