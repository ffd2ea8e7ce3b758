package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sportsportal/internal/models/db_models"
)

type MembershipRepository interface {
	// FindPendingOrActive is the lookup-before-insert guard for membership
	// creation. It is not atomic against a concurrent duplicate request; a
	// unique index or conditional write at the storage layer would be needed
	// to close that window.
	FindPendingOrActive(ctx context.Context, email string) (bson.M, error)
	FindLatest(ctx context.Context, email string) (bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Insert(ctx context.Context, membership db_models.GymMembership) (string, error)
	Activate(ctx context.Context, id primitive.ObjectID, start, end time.Time) error
}

type membershipRepository struct {
	store *DocumentStore
}

func NewMembershipRepository(store *DocumentStore) MembershipRepository {
	return &membershipRepository{store: store}
}

func (r *membershipRepository) FindPendingOrActive(ctx context.Context, email string) (bson.M, error) {
	filter := bson.M{
		"email":  email,
		"status": bson.M{"$in": []db_models.MembershipStatus{db_models.MembershipPending, db_models.MembershipActive}},
	}
	return r.store.FindOne(ctx, db_models.MembershipCollection, filter, nil)
}

func (r *membershipRepository) FindLatest(ctx context.Context, email string) (bson.M, error) {
	sort := bson.D{{Key: "created_at", Value: -1}}
	return r.store.FindOne(ctx, db_models.MembershipCollection, bson.M{"email": email}, sort)
}

func (r *membershipRepository) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return r.store.FindOne(ctx, db_models.MembershipCollection, bson.M{"_id": id}, nil)
}

func (r *membershipRepository) Insert(ctx context.Context, membership db_models.GymMembership) (string, error) {
	return r.store.InsertOne(ctx, db_models.MembershipCollection, membership)
}

func (r *membershipRepository) Activate(ctx context.Context, id primitive.ObjectID, start, end time.Time) error {
	fields := bson.M{
		"status":     db_models.MembershipActive,
		"start_date": start,
		"end_date":   end,
	}
	return r.store.UpdateFields(ctx, db_models.MembershipCollection, id, fields)
}
