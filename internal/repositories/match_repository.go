package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"sportsportal/internal/models/db_models"
)

type MatchRepository interface {
	Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	ExistsBySport(ctx context.Context, sport db_models.Sport) (bool, error)
	Insert(ctx context.Context, match db_models.Match) (string, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
}

type matchRepository struct {
	store *DocumentStore
}

func NewMatchRepository(store *DocumentStore) MatchRepository {
	return &matchRepository{store: store}
}

func (r *matchRepository) Find(ctx context.Context, filter bson.M, limit int64) ([]bson.M, error) {
	return r.store.FindMany(ctx, db_models.MatchCollection, filter, limit)
}

func (r *matchRepository) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	return r.store.FindOne(ctx, db_models.MatchCollection, bson.M{"_id": id}, nil)
}

func (r *matchRepository) ExistsBySport(ctx context.Context, sport db_models.Sport) (bool, error) {
	doc, err := r.store.FindOne(ctx, db_models.MatchCollection, bson.M{"sport": sport}, nil)
	if err != nil {
		return false, err
	}
	return doc != nil, nil
}

func (r *matchRepository) Insert(ctx context.Context, match db_models.Match) (string, error) {
	return r.store.InsertOne(ctx, db_models.MatchCollection, match)
}

func (r *matchRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	return r.store.UpdateFields(ctx, db_models.MatchCollection, id, fields)
}
