package match_fx

import (
	"go.uber.org/fx"

	"sportsportal/internal/repositories"
	"sportsportal/internal/services"
)

var Module = fx.Provide(
	provideMatchRepo, provideMatchService,
)

func provideMatchRepo(store *repositories.DocumentStore) repositories.MatchRepository {
	return repositories.NewMatchRepository(store)
}

func provideMatchService(matchRepo repositories.MatchRepository) services.MatchServiceInterface {
	return services.NewMatchService(matchRepo)
}
