package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"sportsportal/internal/models/db_models"
	"sportsportal/internal/models/request_models"
	"sportsportal/internal/models/response_models"
	"sportsportal/internal/repositories"
	"sportsportal/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error)
	Profile(ctx context.Context, email string) (bson.M, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	secret   string
}

func NewAccountService(userRepo repositories.UserRepository, secret string) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		secret:   secret,
	}
}

func (a *AccountService) Register(ctx context.Context, req request_models.RegisterRequest) (*response_models.AuthResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, storeErr(err)
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	user := db_models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: utils.HashWithSecret(req.Password, a.secret),
		Role:         db_models.RoleStudent,
		Phone:        req.Phone,
		IsActive:     true,
	}

	id, err := a.userRepo.Insert(ctx, user)
	if err != nil {
		return nil, storeErr(err)
	}

	return &response_models.AuthResponse{
		ID:    id,
		Token: utils.HashWithSecret(req.Email, a.secret),
		Email: req.Email,
		Name:  req.Name,
	}, nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (*response_models.AuthResponse, error) {
	doc, err := a.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, storeErr(err)
	}
	if doc == nil {
		return nil, utils.ErrInvalidCredentials
	}

	stored, _ := doc["password_hash"].(string)
	if stored != utils.HashWithSecret(req.Password, a.secret) {
		return nil, utils.ErrInvalidCredentials
	}

	name, _ := doc["name"].(string)
	return &response_models.AuthResponse{
		Token: utils.HashWithSecret(req.Email, a.secret),
		Email: req.Email,
		Name:  name,
	}, nil
}

func (a *AccountService) Profile(ctx context.Context, email string) (bson.M, error) {
	doc, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeErr(err)
	}
	if doc == nil {
		return nil, utils.ErrUserNotFound
	}

	delete(doc, "password_hash")
	return utils.SerializeDocument(doc), nil
}

// storeErr keeps an unconfigured database distinguishable from a failing one
// so the handler layer can report them differently.
func storeErr(err error) error {
	if errors.Is(err, utils.ErrDatabaseNotConfigured) {
		return err
	}
	return utils.ErrDatabaseError
}
