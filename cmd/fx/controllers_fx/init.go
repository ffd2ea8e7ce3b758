package controllers_fx

import (
	"go.uber.org/fx"

	"sportsportal/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewMembershipController),
	fx.Provide(controllers.NewPaymentController),
	fx.Provide(controllers.NewMatchController),
	fx.Provide(controllers.NewSystemController),
)
