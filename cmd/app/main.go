package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripcost/cmd/fx/account_fx"
	"tripcost/cmd/fx/catalog_fx"
	"tripcost/cmd/fx/controllers_fx"
	"tripcost/cmd/fx/db_fx"
	"tripcost/cmd/fx/itinerary_fx"
	"tripcost/cmd/fx/memcache_fx"
	"tripcost/cmd/fx/quote_fx"
	"tripcost/cmd/fx/rates_fx"
	"tripcost/internal/api/controllers"
	"tripcost/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		rates_fx.Module,
		itinerary_fx.Module,
		quote_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	rateController *controllers.RateController,
	itineraryController *controllers.ItineraryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, catalogController, rateController, itineraryController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	rateController *controllers.RateController,
	itineraryController *controllers.ItineraryController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	catalog := r.Group("/catalog")
	catalog.GET("", catalogController.ListEntries)
	catalog.GET("/:id", catalogController.GetEntryById)
	catalog.GET("/:id/availability", catalogController.GetMonthAvailability)

	catalogAdmin := catalog.Group("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	catalogAdmin.POST("", catalogController.CreateEntry)
	catalogAdmin.PUT("", catalogController.UpdateEntry)
	catalogAdmin.DELETE("/:id", catalogController.DeleteEntry)

	rates := r.Group("/rates")
	rates.GET("", rateController.ListRates)
	rates.GET("/markup", rateController.GetMarkup)

	ratesAdmin := rates.Group("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	ratesAdmin.POST("", rateController.UpsertRate)
	ratesAdmin.DELETE("/:id", rateController.DeleteRate)
	ratesAdmin.PUT("/markup", rateController.UpdateMarkup)

	itineraries := r.Group("/itineraries", middleware.JWTAuthMiddleware())
	itineraries.POST("", itineraryController.CreateItinerary)
	itineraries.GET("", itineraryController.ListItineraries)
	itineraries.GET("/:id", itineraryController.GetItineraryById)
	itineraries.DELETE("/:id", itineraryController.DeleteItinerary)
	itineraries.GET("/:id/quote", itineraryController.GetQuote)
	itineraries.POST("/days/:dayId/items", itineraryController.AddItemToDay)
	itineraries.DELETE("/items/:itemId", itineraryController.RemoveItem)
}
