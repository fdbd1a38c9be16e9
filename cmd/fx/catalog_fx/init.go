package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"tripcost/internal/repositories"
	"tripcost/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo, provideCatalogService, provideAvailabilityService)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideCatalogService(catalogRepo repositories.CatalogRepository) services.CatalogServiceInterface {
	return services.NewCatalogService(catalogRepo)
}

func provideAvailabilityService(catalogRepo repositories.CatalogRepository) services.AvailabilityServiceInterface {
	return services.NewAvailabilityService(catalogRepo)
}
