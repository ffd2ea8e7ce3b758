package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sportsportal/internal/models/db_models"
	"sportsportal/internal/models/request_models"
	"sportsportal/internal/models/response_models"
	"sportsportal/internal/repositories"
	"sportsportal/pkg/utils"
)

type PaymentServiceInterface interface {
	Create(ctx context.Context, req request_models.PaymentRequest) (*response_models.PaymentResponse, error)
}

type PaymentService struct {
	paymentRepo    repositories.PaymentRepository
	membershipRepo repositories.MembershipRepository
	now            func() time.Time
}

func NewPaymentService(paymentRepo repositories.PaymentRepository, membershipRepo repositories.MembershipRepository) PaymentServiceInterface {
	return &PaymentService{
		paymentRepo:    paymentRepo,
		membershipRepo: membershipRepo,
		now:            time.Now,
	}
}

// Create records the payment as immediately successful (there is no gateway
// round-trip) and then activates the most recent membership for the email,
// whatever state it is currently in. A payment with no membership on file
// still succeeds; the response just carries a null membership.
func (p *PaymentService) Create(ctx context.Context, req request_models.PaymentRequest) (*response_models.PaymentResponse, error) {
	reference := req.Reference
	if reference == "" {
		reference = fmt.Sprintf("REF-%d", p.now().Unix())
	}

	purpose := db_models.PaymentPurpose(req.Purpose)
	if purpose == "" {
		purpose = db_models.PurposeGymMembership
	}
	method := db_models.PaymentMethod(req.Method)
	if method == "" {
		method = db_models.MethodUPI
	}

	payment := db_models.Payment{
		Email:     req.Email,
		Amount:    *req.Amount,
		Purpose:   purpose,
		Method:    method,
		Status:    db_models.PaymentSuccess,
		Reference: reference,
	}

	paymentID, err := p.paymentRepo.Insert(ctx, payment)
	if err != nil {
		return nil, storeErr(err)
	}

	membership, err := p.activateLatestMembership(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	return &response_models.PaymentResponse{
		PaymentID:  paymentID,
		Status:     string(db_models.PaymentSuccess),
		Membership: membership,
	}, nil
}

func (p *PaymentService) activateLatestMembership(ctx context.Context, email string) (bson.M, error) {
	doc, err := p.membershipRepo.FindLatest(ctx, email)
	if err != nil {
		return nil, storeErr(err)
	}
	if doc == nil {
		return nil, nil
	}

	id, ok := doc["_id"].(primitive.ObjectID)
	if !ok {
		return nil, utils.ErrDatabaseError
	}

	plan, _ := doc["plan"].(string)
	start := p.now().UTC()
	end := start.Add(time.Duration(db_models.PlanDurationDays(db_models.MembershipPlan(plan))) * 24 * time.Hour)

	if err := p.membershipRepo.Activate(ctx, id, start, end); err != nil {
		return nil, storeErr(err)
	}

	refreshed, err := p.membershipRepo.FindByID(ctx, id)
	if err != nil {
		return nil, storeErr(err)
	}
	return utils.SerializeDocument(refreshed), nil
}
