package quote_fx

import (
	"go.uber.org/fx"
	"tripcost/internal/repositories"
	"tripcost/internal/services"
)

var Module = fx.Provide(provideQuoteService)

func provideQuoteService(
	itineraryRepo repositories.ItineraryRepository,
	catalogRepo repositories.CatalogRepository,
	rateRepo repositories.RateRepository,
) services.QuoteServiceInterface {
	return services.NewQuoteService(itineraryRepo, catalogRepo, rateRepo)
}
