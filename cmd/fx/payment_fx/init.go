package payment_fx

import (
	"go.uber.org/fx"

	"sportsportal/internal/repositories"
	"sportsportal/internal/services"
)

var Module = fx.Provide(
	providePaymentRepo, providePaymentService,
)

func providePaymentRepo(store *repositories.DocumentStore) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(store)
}

func providePaymentService(paymentRepo repositories.PaymentRepository, membershipRepo repositories.MembershipRepository) services.PaymentServiceInterface {
	return services.NewPaymentService(paymentRepo, membershipRepo)
}
