package gym_fx

import (
	"go.uber.org/fx"

	"sportsportal/internal/repositories"
	"sportsportal/internal/services"
)

var Module = fx.Provide(
	provideMembershipRepo, provideMembershipService,
)

func provideMembershipRepo(store *repositories.DocumentStore) repositories.MembershipRepository {
	return repositories.NewMembershipRepository(store)
}

func provideMembershipService(membershipRepo repositories.MembershipRepository) services.MembershipServiceInterface {
	return services.NewMembershipService(membershipRepo)
}
