package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportsportal/internal/models/request_models"
	"sportsportal/internal/services"
	"sportsportal/pkg/utils"
)

type MembershipController struct {
	membershipService services.MembershipServiceInterface
}

func NewMembershipController(membershipService services.MembershipServiceInterface) *MembershipController {
	return &MembershipController{
		membershipService: membershipService,
	}
}

// Create godoc
// @Summary Select a gym membership plan
// @Description Returns the existing pending/active membership unchanged, otherwise creates a pending one
// @Tags Gym
// @Accept json
// @Produce json
// @Param request body request_models.GymPlanRequest true "Plan selection payload"
// @Success 200 {object} map[string]interface{}
// @Router /api/gym/membership [post]
func (m *MembershipController) Create(c *gin.Context) {
	var req request_models.GymPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	doc, err := m.membershipService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// Get godoc
// @Summary Fetch the most recent membership for an email
// @Tags Gym
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/gym/membership [get]
func (m *MembershipController) Get(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.RespondError(c, http.StatusBadRequest, "Email is required")
		return
	}

	doc, err := m.membershipService.Latest(c.Request.Context(), email)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}
