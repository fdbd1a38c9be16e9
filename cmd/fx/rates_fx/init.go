package rates_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripcost/internal/repositories"
	"tripcost/internal/services"
)

var Module = fx.Provide(
	provideRateRepo, provideRateService)

func provideRateRepo(db *gorm.DB) repositories.RateRepository {
	return repositories.NewRateRepository(db)
}

func provideRateService(rateRepo repositories.RateRepository) services.RateServiceInterface {
	return services.NewRateService(rateRepo)
}
