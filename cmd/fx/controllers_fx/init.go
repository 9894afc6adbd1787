package controllers_fx

import (
	"go.uber.org/fx"

	"qrfleet/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewVehicleController),
	fx.Provide(controllers.NewDocumentController),
	fx.Provide(controllers.NewEventController),
	fx.Provide(controllers.NewUploadController))
