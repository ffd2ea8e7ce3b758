package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sportsportal/internal/models/db_models"
)

type stubUserRepo struct {
	findResult bson.M
	findErr    error
	insertID   string
	insertErr  error
	lastEmail  string
	lastInsert *db_models.User
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (bson.M, error) {
	s.lastEmail = email
	return s.findResult, s.findErr
}

func (s *stubUserRepo) Insert(_ context.Context, user db_models.User) (string, error) {
	s.lastInsert = &user
	return s.insertID, s.insertErr
}

type stubMembershipRepo struct {
	pendingOrActive bson.M
	pendingErr      error
	latest          bson.M
	latestErr       error
	byID            bson.M
	byIDErr         error
	insertID        string
	insertErr       error
	activateErr     error

	lastInsert     *db_models.GymMembership
	lastActivateID primitive.ObjectID
	lastStart      time.Time
	lastEnd        time.Time
	activateCalls  int
}

func (s *stubMembershipRepo) FindPendingOrActive(_ context.Context, email string) (bson.M, error) {
	return s.pendingOrActive, s.pendingErr
}

func (s *stubMembershipRepo) FindLatest(_ context.Context, email string) (bson.M, error) {
	return s.latest, s.latestErr
}

func (s *stubMembershipRepo) FindByID(_ context.Context, id primitive.ObjectID) (bson.M, error) {
	return s.byID, s.byIDErr
}

func (s *stubMembershipRepo) Insert(_ context.Context, membership db_models.GymMembership) (string, error) {
	s.lastInsert = &membership
	return s.insertID, s.insertErr
}

func (s *stubMembershipRepo) Activate(_ context.Context, id primitive.ObjectID, start, end time.Time) error {
	s.activateCalls++
	s.lastActivateID = id
	s.lastStart = start
	s.lastEnd = end
	return s.activateErr
}

type stubPaymentRepo struct {
	insertID   string
	insertErr  error
	lastInsert *db_models.Payment
}

func (s *stubPaymentRepo) Insert(_ context.Context, payment db_models.Payment) (string, error) {
	s.lastInsert = &payment
	return s.insertID, s.insertErr
}

type stubMatchRepo struct {
	findResult   []bson.M
	findErr      error
	byID         bson.M
	byIDErr      error
	exists       map[db_models.Sport]bool
	existsErr    error
	insertID     string
	insertErr    error
	updateErr    error
	lastFilter   bson.M
	lastLimit    int64
	lastUpdateID primitive.ObjectID
	lastFields   bson.M
	inserted     []db_models.Match
	updateCalls  int
}

func (s *stubMatchRepo) Find(_ context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	s.lastFilter = filter
	s.lastLimit = limit
	return s.findResult, s.findErr
}

func (s *stubMatchRepo) FindByID(_ context.Context, id primitive.ObjectID) (bson.M, error) {
	return s.byID, s.byIDErr
}

func (s *stubMatchRepo) ExistsBySport(_ context.Context, sport db_models.Sport) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.exists[sport], nil
}

func (s *stubMatchRepo) Insert(_ context.Context, match db_models.Match) (string, error) {
	s.inserted = append(s.inserted, match)
	return s.insertID, s.insertErr
}

func (s *stubMatchRepo) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) error {
	s.updateCalls++
	s.lastUpdateID = id
	s.lastFields = fields
	return s.updateErr
}
