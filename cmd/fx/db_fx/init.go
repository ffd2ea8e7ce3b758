package db_fx

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"

	"sportsportal/internal/infra"
	"sportsportal/internal/repositories"
	"sportsportal/internal/services"
)

var Module = fx.Provide(
	infra.LoadConfig,
	provideDB,
	provideStore,
	services.NewDiagnosticsService,
)

func provideDB(cfg *infra.Config) *mongo.Database {
	return infra.InitMongo(cfg)
}

func provideStore(db *mongo.Database) *repositories.DocumentStore {
	return repositories.NewDocumentStore(db)
}
