package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportsportal/internal/services"
)

type SystemController struct {
	diagnosticsService services.DiagnosticsServiceInterface
}

func NewSystemController(diagnosticsService services.DiagnosticsServiceInterface) *SystemController {
	return &SystemController{
		diagnosticsService: diagnosticsService,
	}
}

// Root godoc
// @Summary Liveness message
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (s *SystemController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "GBU Sports Portal Backend Running"})
}

// Test godoc
// @Summary Backend and database diagnostics
// @Tags System
// @Produce json
// @Success 200 {object} response_models.DiagnosticsResponse
// @Router /test [get]
func (s *SystemController) Test(c *gin.Context) {
	c.JSON(http.StatusOK, s.diagnosticsService.Report(c.Request.Context()))
}
