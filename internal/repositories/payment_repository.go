package repositories

import (
	"context"

	"sportsportal/internal/models/db_models"
)

type PaymentRepository interface {
	Insert(ctx context.Context, payment db_models.Payment) (string, error)
}

type paymentRepository struct {
	store *DocumentStore
}

func NewPaymentRepository(store *DocumentStore) PaymentRepository {
	return &paymentRepository{store: store}
}

func (r *paymentRepository) Insert(ctx context.Context, payment db_models.Payment) (string, error) {
	return r.store.InsertOne(ctx, db_models.PaymentCollection, payment)
}
