package handlers

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wadhefa/wadhefa-backend/internal/apperrors"
	"github.com/wadhefa/wadhefa-backend/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(a *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: a}
}

// Apply is POST /applications consuming multipart form data: job_id, name,
// email, phone, and a "cv" file part.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.PostForm("job_id"), 10, 32)
	if err != nil {
		fail(c, apperrors.New(apperrors.CodeValidation, "name, email, job and CV file are required", err))
		return
	}

	header, err := c.FormFile("cv")
	if err != nil {
		fail(c, apperrors.New(apperrors.CodeValidation, "name, email, job and CV file are required", err))
		return
	}
	// Size gate before the file is read into memory at all.
	if header.Size > services.MaxCVSize {
		fail(c, apperrors.New(apperrors.CodePayloadTooLarge, "CV file must be 5MB or smaller", nil))
		return
	}

	file, err := header.Open()
	if err != nil {
		fail(c, apperrors.New(apperrors.CodeValidation, "could not read CV file", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		fail(c, apperrors.New(apperrors.CodeValidation, "could not read CV file", err))
		return
	}

	_, err = h.Applications.Submit(c.Request.Context(), services.SubmissionInput{
		JobID:       uint(jobID),
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		FileName:    header.Filename,
		File:        data,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "تم إرسال طلبك بنجاح، سنتواصل معك قريباً",
	})
}
