package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"sportsportal/internal/models/db_models"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (bson.M, error)
	Insert(ctx context.Context, user db_models.User) (string, error)
}

type userRepository struct {
	store *DocumentStore
}

func NewUserRepository(store *DocumentStore) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (bson.M, error) {
	return r.store.FindOne(ctx, db_models.UserCollection, bson.M{"email": email}, nil)
}

func (r *userRepository) Insert(ctx context.Context, user db_models.User) (string, error) {
	return r.store.InsertOne(ctx, db_models.UserCollection, user)
}
