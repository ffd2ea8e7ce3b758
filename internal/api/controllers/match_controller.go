package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"sportsportal/internal/models/request_models"
	"sportsportal/internal/services"
	"sportsportal/pkg/utils"
)

type MatchController struct {
	matchService services.MatchServiceInterface
}

func NewMatchController(matchService services.MatchServiceInterface) *MatchController {
	return &MatchController{
		matchService: matchService,
	}
}

// List godoc
// @Summary List matches
// @Tags Matches
// @Produce json
// @Param sport query string false "Filter by sport"
// @Param status query string false "Filter by status"
// @Param limit query int false "Result limit" default(20)
// @Success 200 {array} map[string]interface{}
// @Router /api/matches [get]
func (m *MatchController) List(c *gin.Context) {
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	docs, err := m.matchService.List(c.Request.Context(), c.Query("sport"), c.Query("status"), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, docs)
}

// Create godoc
// @Summary Create a match
// @Tags Matches
// @Accept json
// @Produce json
// @Param request body request_models.MatchCreateRequest true "Match payload"
// @Success 200 {object} map[string]interface{}
// @Router /api/matches [post]
func (m *MatchController) Create(c *gin.Context) {
	var req request_models.MatchCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := m.matchService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// Update godoc
// @Summary Partially update a match
// @Description Applies only the supplied status/score/details fields
// @Tags Matches
// @Accept json
// @Produce json
// @Param id path string true "Match id"
// @Param request body request_models.MatchUpdateRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/matches/{id} [patch]
func (m *MatchController) Update(c *gin.Context) {
	var req request_models.MatchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	fields := bson.M{}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.ScoreA != nil {
		fields["score_a"] = *req.ScoreA
	}
	if req.ScoreB != nil {
		fields["score_b"] = *req.ScoreB
	}
	if req.Details != nil {
		fields["details"] = *req.Details
	}

	doc, err := m.matchService.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if doc == nil {
		c.JSON(http.StatusOK, gin.H{"updated": false})
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Seed godoc
// @Summary Seed sample matches
// @Description Inserts sample matches per sport only when that sport has none
// @Tags Matches
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/seed [post]
func (m *MatchController) Seed(c *gin.Context) {
	if err := m.matchService.Seed(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"seeded": true})
}
