package vehicle_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"qrfleet/internal/repositories"
	"qrfleet/internal/services"
)

var Module = fx.Provide(
	provideVehicleService, provideVehicleRepo, provideQRBinder)

func provideVehicleRepo(db *gorm.DB) repositories.VehicleRepository {
	return repositories.NewVehicleRepository(db)
}

func provideQRBinder() services.QRBinderInterface {
	baseURL := os.Getenv("PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return services.NewQRBinder(baseURL)
}

func provideVehicleService(vehicleRepo repositories.VehicleRepository, qrBinder services.QRBinderInterface) services.VehicleServiceInterface {
	return services.NewVehicleService(vehicleRepo, qrBinder)
}
