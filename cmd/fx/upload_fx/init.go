package upload_fx

import (
	"os"

	"go.uber.org/fx"

	"qrfleet/internal/services"
)

var Module = fx.Provide(
	provideUploadService)

func provideUploadService() services.UploadServiceInterface {
	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "public"
	}
	return services.NewUploadService(publicDir)
}
