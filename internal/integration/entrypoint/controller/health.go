// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	breachAPIChecker func() bool
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	BreachAPI string `json:"breach_api"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance.
func NewHealthController(breachAPIChecker func() bool) *HealthController {
	return &HealthController{
		breachAPIChecker: breachAPIChecker,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	breachAPI := "disabled"
	if h.breachAPIChecker != nil && h.breachAPIChecker() {
		breachAPI = "enabled"
	}

	response := HealthResponse{
		Status:    "ok",
		BreachAPI: breachAPI,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	c.JSON(http.StatusOK, response)
}
