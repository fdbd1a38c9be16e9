package controllers_fx

import (
	"go.uber.org/fx"
	"tripcost/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewRateController),
	fx.Provide(controllers.NewItineraryController))
