package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"yatra/cmd/fx/account_fx"
	"yatra/cmd/fx/catalog_fx"
	"yatra/cmd/fx/controllers_fx"
	"yatra/cmd/fx/db_fx"
	"yatra/cmd/fx/export_fx"
	"yatra/cmd/fx/packing_fx"
	"yatra/cmd/fx/trip_fx"
	"yatra/internal/api/controllers"
	"yatra/internal/infra"
	"yatra/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(infra.LoadConfig),
		db_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		trip_fx.Module,
		packing_fx.Module,
		export_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedCatalog),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SeedCatalog(db *gorm.DB) error {
	return infra.SeedAttractions(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg infra.AppConfig, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.CloseDatabase(db)
			return nil
		},
	})
}

func ProvideRouter(
	cfg infra.AppConfig,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	tripController *controllers.TripController,
	packingController *controllers.PackingController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, cfg,
		accountController, catalogController, tripController, packingController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	cfg infra.AppConfig,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	tripController *controllers.TripController,
	packingController *controllers.PackingController,
	exportController *controllers.ExportController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)

	catalog := r.Group("/catalog")
	catalog.GET("/cities", catalogController.ListCities)
	catalog.GET("/attractions/:city", catalogController.ListAttractions)

	auth := middleware.JWTAuthMiddleware([]byte(cfg.JWTSecret))

	trips := r.Group("/trips", auth)
	trips.POST("", tripController.CreateTrip)
	trips.GET("", tripController.ListTrips)
	trips.GET("/:tripId", tripController.GetTrip)
	trips.DELETE("/:tripId", tripController.DeleteTrip)
	trips.GET("/:tripId/export", exportController.DownloadItinerary)
	trips.POST("/:tripId/packing", packingController.AddItem)

	packing := r.Group("/packing", auth)
	packing.POST("/:itemId/toggle", packingController.ToggleItem)
	packing.DELETE("/:itemId", packingController.DeleteItem)
}
