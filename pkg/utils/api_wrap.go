package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Message: message})
}

// HandleServiceError maps service-layer sentinel errors onto the HTTP
// error taxonomy. Anything unrecognized is logged and reported as a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrUserNotFound):
		RespondError(c, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrMembershipNotFound):
		RespondError(c, http.StatusNotFound, "No membership found")
	case errors.Is(err, ErrInvalidMatchID):
		RespondError(c, http.StatusBadRequest, "Invalid match id")
	case errors.Is(err, ErrMatchNotFound):
		RespondError(c, http.StatusNotFound, "Match not found")
	case errors.Is(err, ErrDatabaseNotConfigured):
		RespondError(c, http.StatusInternalServerError, "Database not configured")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
