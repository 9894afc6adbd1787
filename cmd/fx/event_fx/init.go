package event_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"qrfleet/internal/repositories"
	"qrfleet/internal/services"
)

var Module = fx.Provide(
	provideEventService, provideEventRepo)

func provideEventRepo(db *gorm.DB) repositories.EventRepository {
	return repositories.NewEventRepository(db)
}

func provideEventService(eventRepo repositories.EventRepository, vehicleRepo repositories.VehicleRepository) services.EventServiceInterface {
	return services.NewEventService(eventRepo, vehicleRepo)
}
