package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"sportsportal/cmd/fx/account_fx"
	"sportsportal/cmd/fx/controllers_fx"
	"sportsportal/cmd/fx/db_fx"
	"sportsportal/cmd/fx/gym_fx"
	"sportsportal/cmd/fx/match_fx"
	"sportsportal/cmd/fx/payment_fx"
	"sportsportal/internal/api/controllers"
	"sportsportal/internal/infra"
	"sportsportal/pkg/middleware"
)

func main() {
	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		gym_fx.Module,
		payment_fx.Module,
		match_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *infra.Config, db *mongo.Database) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on port %s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.CloseMongo(db)
			return nil
		},
	})
}

func ProvideRouter(
	systemController *controllers.SystemController,
	accountController *controllers.AccountController,
	membershipController *controllers.MembershipController,
	paymentController *controllers.PaymentController,
	matchController *controllers.MatchController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, systemController, accountController, membershipController, paymentController, matchController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	systemController *controllers.SystemController,
	accountController *controllers.AccountController,
	membershipController *controllers.MembershipController,
	paymentController *controllers.PaymentController,
	matchController *controllers.MatchController) {

	r.GET("/", systemController.Root)
	r.GET("/test", systemController.Test)

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)

	api.GET("/profile", accountController.Profile)

	gym := api.Group("/gym")
	gym.POST("/membership", membershipController.Create)
	gym.GET("/membership", membershipController.Get)

	api.POST("/payments/create", paymentController.Create)

	matches := api.Group("/matches")
	matches.GET("", matchController.List)
	matches.POST("", matchController.Create)
	matches.PATCH("/:id", matchController.Update)

	api.POST("/seed", matchController.Seed)
}
