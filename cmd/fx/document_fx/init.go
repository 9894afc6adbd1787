package document_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"qrfleet/internal/repositories"
	"qrfleet/internal/services"
)

var Module = fx.Provide(
	provideDocumentService, provideDocumentRepo)

func provideDocumentRepo(db *gorm.DB) repositories.DocumentRepository {
	return repositories.NewDocumentRepository(db)
}

func provideDocumentService(documentRepo repositories.DocumentRepository, vehicleRepo repositories.VehicleRepository) services.DocumentServiceInterface {
	return services.NewDocumentService(documentRepo, vehicleRepo)
}
