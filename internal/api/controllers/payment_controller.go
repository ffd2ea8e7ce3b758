package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sportsportal/internal/models/request_models"
	"sportsportal/internal/services"
	"sportsportal/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// Create godoc
// @Summary Record a payment and activate the latest membership
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.PaymentRequest true "Payment payload"
// @Success 200 {object} response_models.PaymentResponse
// @Router /api/payments/create [post]
func (p *PaymentController) Create(c *gin.Context) {
	var req request_models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := p.paymentService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
