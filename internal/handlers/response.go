package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wadhefa/wadhefa-backend/internal/apperrors"
)

// fail writes the uniform failure envelope. The raw error goes to the log,
// never to the client.
func fail(c *gin.Context, err error) {
	log.Printf("[api] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(apperrors.HTTPStatus(err), gin.H{
		"success": false,
		"message": apperrors.MessageOf(err),
	})
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
