package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wadhefa/wadhefa-backend/internal/ingest"
)

type IngestHandler struct {
	Service     *ingest.Service
	NewsFetcher ingest.Fetcher
	JobsFetcher ingest.Fetcher
}

func NewIngestHandler(s *ingest.Service, news, jobs ingest.Fetcher) *IngestHandler {
	return &IngestHandler{Service: s, NewsFetcher: news, JobsFetcher: jobs}
}

// RunNews is the GET trigger for a news ingestion run. An unreachable feed
// still answers success with zero counts; the failure lives in the logs.
func (h *IngestHandler) RunNews(c *gin.Context) {
	sum := h.Service.RunNews(c.Request.Context(), h.NewsFetcher)
	c.JSON(http.StatusOK, summaryResponse(sum))
}

// RunJobs triggers the AI-normalized job ingestion path.
func (h *IngestHandler) RunJobs(c *gin.Context) {
	sum := h.Service.RunJobs(c.Request.Context(), h.JobsFetcher)
	c.JSON(http.StatusOK, summaryResponse(sum))
}

func summaryResponse(sum ingest.Summary) gin.H {
	return gin.H{
		"success": true,
		"message": fmt.Sprintf("found %d items, inserted %d new", sum.Found, sum.Inserted),
		"data":    sum,
	}
}
