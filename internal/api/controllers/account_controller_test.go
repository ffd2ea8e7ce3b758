package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"sportsportal/internal/models/request_models"
	"sportsportal/internal/models/response_models"
	"sportsportal/pkg/utils"
)

type stubAccountService struct {
	registerResult *response_models.AuthResponse
	registerErr    error
	loginResult    *response_models.AuthResponse
	loginErr       error
	profileResult  bson.M
	profileErr     error
	lastRegister   request_models.RegisterRequest
	lastLogin      request_models.LoginRequest
	lastEmail      string
}

func (s *stubAccountService) Register(_ context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	s.lastRegister = req
	return s.registerResult, s.registerErr
}

func (s *stubAccountService) Login(_ context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	s.lastLogin = req
	return s.loginResult, s.loginErr
}

func (s *stubAccountService) Profile(_ context.Context, email string) (bson.M, error) {
	s.lastEmail = email
	return s.profileResult, s.profileErr
}

func newAccountRouter(svc *stubAccountService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewAccountController(svc)

	r := gin.New()
	r.POST("/api/auth/register", controller.Register)
	r.POST("/api/auth/login", controller.Login)
	r.GET("/api/profile", controller.Profile)
	return r
}

func TestRegisterEndpointReturnsIdentityAndToken(t *testing.T) {
	svc := &stubAccountService{registerResult: &response_models.AuthResponse{
		ID:    "abc123",
		Token: "token-1",
		Email: "alice@x.com",
		Name:  "Alice",
	}}
	r := newAccountRouter(svc)

	body, _ := json.Marshal(gin.H{"name": "Alice", "email": "alice@x.com", "password": "pw1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"abc123","token":"token-1","email":"alice@x.com","name":"Alice"}`, w.Body.String())
	assert.Equal(t, "alice@x.com", svc.lastRegister.Email)
}

func TestRegisterEndpointRejectsMalformedEmail(t *testing.T) {
	r := newAccountRouter(&stubAccountService{})

	body, _ := json.Marshal(gin.H{"name": "Alice", "email": "not-an-email", "password": "pw1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterEndpointMapsConflict(t *testing.T) {
	svc := &stubAccountService{registerErr: utils.ErrEmailAlreadyExists}
	r := newAccountRouter(svc)

	body, _ := json.Marshal(gin.H{"name": "Alice", "email": "alice@x.com", "password": "pw1"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestLoginEndpointMapsUnauthorized(t *testing.T) {
	svc := &stubAccountService{loginErr: utils.ErrInvalidCredentials}
	r := newAccountRouter(svc)

	body, _ := json.Marshal(gin.H{"email": "alice@x.com", "password": "pw2"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProfileEndpointRequiresEmail(t *testing.T) {
	r := newAccountRouter(&stubAccountService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileEndpointMapsNotFound(t *testing.T) {
	svc := &stubAccountService{profileErr: utils.ErrUserNotFound}
	r := newAccountRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/profile?email=nobody@x.com", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "nobody@x.com", svc.lastEmail)
}
