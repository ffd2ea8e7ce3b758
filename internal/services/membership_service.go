package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"sportsportal/internal/models/db_models"
	"sportsportal/internal/models/request_models"
	"sportsportal/internal/repositories"
	"sportsportal/pkg/utils"
)

type MembershipServiceInterface interface {
	Create(ctx context.Context, req request_models.GymPlanRequest) (bson.M, error)
	Latest(ctx context.Context, email string) (bson.M, error)
}

type MembershipService struct {
	membershipRepo repositories.MembershipRepository
}

func NewMembershipService(membershipRepo repositories.MembershipRepository) MembershipServiceInterface {
	return &MembershipService{
		membershipRepo: membershipRepo,
	}
}

// Create returns the existing membership verbatim when one is still pending
// or active for the email, so repeated plan selections never stack duplicate
// records. Only once the previous membership has left those states does a new
// pending record get created.
func (m *MembershipService) Create(ctx context.Context, req request_models.GymPlanRequest) (bson.M, error) {
	existing, err := m.membershipRepo.FindPendingOrActive(ctx, req.Email)
	if err != nil {
		return nil, storeErr(err)
	}
	if existing != nil {
		return utils.SerializeDocument(existing), nil
	}

	membership := db_models.GymMembership{
		Email:  req.Email,
		Plan:   db_models.MembershipPlan(req.Plan),
		Status: db_models.MembershipPending,
	}

	id, err := m.membershipRepo.Insert(ctx, membership)
	if err != nil {
		return nil, storeErr(err)
	}

	return bson.M{
		"id":     id,
		"email":  req.Email,
		"plan":   req.Plan,
		"status": string(db_models.MembershipPending),
	}, nil
}

func (m *MembershipService) Latest(ctx context.Context, email string) (bson.M, error) {
	doc, err := m.membershipRepo.FindLatest(ctx, email)
	if err != nil {
		return nil, storeErr(err)
	}
	if doc == nil {
		return nil, utils.ErrMembershipNotFound
	}
	return utils.SerializeDocument(doc), nil
}
