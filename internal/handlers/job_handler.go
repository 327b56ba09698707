package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wadhefa/wadhefa-backend/internal/apperrors"
	"github.com/wadhefa/wadhefa-backend/internal/dtos"
	"github.com/wadhefa/wadhefa-backend/internal/services"
)

type JobHandler struct {
	JobService *services.JobService
}

func NewJobHandler(j *services.JobService) *JobHandler {
	return &JobHandler{JobService: j}
}

// List is GET /jobs with optional q/city/type/level/limit/offset filters.
func (h *JobHandler) List(c *gin.Context) {
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		fail(c, apperrors.New(apperrors.CodeValidation, "invalid query parameters", err))
		return
	}

	jobs, err := h.JobService.List(c.Request.Context(), q)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    jobs,
	})
}

// GetBySlug is GET /jobs/:slug.
func (h *JobHandler) GetBySlug(c *gin.Context) {
	job, err := h.JobService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    job,
	})
}

// Create is POST /jobs.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.New(apperrors.CodeValidation, "invalid job payload: "+err.Error(), err))
		return
	}

	job, err := h.JobService.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    job,
	})
}
