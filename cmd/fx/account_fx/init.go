package account_fx

import (
	"go.uber.org/fx"

	"sportsportal/internal/infra"
	"sportsportal/internal/repositories"
	"sportsportal/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService,
)

func provideUserRepo(store *repositories.DocumentStore) repositories.UserRepository {
	return repositories.NewUserRepository(store)
}

func provideAccountService(userRepo repositories.UserRepository, cfg *infra.Config) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, cfg.AuthSecret)
}
