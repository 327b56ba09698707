package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wadhefa/wadhefa-backend/internal/apperrors"
	"github.com/wadhefa/wadhefa-backend/internal/dtos"
	"github.com/wadhefa/wadhefa-backend/internal/services"
)

type ProfileHandler struct {
	Profiles *services.ProfileService
}

func NewProfileHandler(p *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{Profiles: p}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, err := userIDParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	profile, err := h.Profiles.GetByUser(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}

// Upsert is PUT /profiles/:userID — one profile per user, created on first
// save and updated after.
func (h *ProfileHandler) Upsert(c *gin.Context) {
	userID, err := userIDParam(c)
	if err != nil {
		fail(c, err)
		return
	}

	var req dtos.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, apperrors.New(apperrors.CodeValidation, "invalid profile payload: "+err.Error(), err))
		return
	}

	profile, err := h.Profiles.Upsert(c.Request.Context(), userID, &req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    profile,
	})
}

func userIDParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("userID"), 10, 32)
	if err != nil {
		return 0, apperrors.New(apperrors.CodeValidation, "invalid user id", err)
	}
	return uint(id), nil
}
