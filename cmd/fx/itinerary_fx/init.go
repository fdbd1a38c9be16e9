package itinerary_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripcost/internal/repositories"
	"tripcost/internal/services"
)

var Module = fx.Provide(
	provideItineraryRepo, provideItineraryService)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	catalogRepo repositories.CatalogRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, catalogRepo)
}
