package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"qrfleet/cmd/fx/account_fx"
	"qrfleet/cmd/fx/controllers_fx"
	"qrfleet/cmd/fx/db_fx"
	"qrfleet/cmd/fx/document_fx"
	"qrfleet/cmd/fx/event_fx"
	"qrfleet/cmd/fx/session_fx"
	"qrfleet/cmd/fx/upload_fx"
	"qrfleet/cmd/fx/vehicle_fx"
	"qrfleet/internal/api/controllers"
	"qrfleet/internal/services"
	"qrfleet/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		session_fx.Module,
		account_fx.Module,
		vehicle_fx.Module,
		document_fx.Module,
		event_fx.Module,
		upload_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedAdminAccount),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SeedAdminAccount(accountService services.AccountServiceInterface) error {
	return accountService.EnsureAdminAccount(context.Background())
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				logrus.WithField("port", port).Info("starting HTTP server")
				if err := engine.Run(":" + port); err != nil {
					logrus.WithError(err).Fatal("failed to start server")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logrus.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	sessions services.SessionServiceInterface,
	accountController *controllers.AccountController,
	vehicleController *controllers.VehicleController,
	documentController *controllers.DocumentController,
	eventController *controllers.EventController,
	uploadController *controllers.UploadController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, sessions,
		accountController, vehicleController, documentController, eventController, uploadController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	sessions services.SessionServiceInterface,
	accountController *controllers.AccountController,
	vehicleController *controllers.VehicleController,
	documentController *controllers.DocumentController,
	eventController *controllers.EventController,
	uploadController *controllers.UploadController) {

	r.POST("/login", accountController.Login)

	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "public"
	}
	r.Static("/uploads", filepath.Join(publicDir, "uploads"))

	// Public reads, including the QR-linked vehicle page.
	r.GET("/vehicles", vehicleController.GetAllVehicles)
	r.GET("/vehicles/public/:licensePlate", vehicleController.GetPublicVehicle)
	r.GET("/vehicles/:id", vehicleController.GetVehicleById)
	r.GET("/documents", documentController.GetAllDocuments)
	r.GET("/documents/:id", documentController.GetDocumentById)
	r.GET("/events", eventController.GetAllEvents)
	r.GET("/events/:id", eventController.GetEventById)

	// The admin area: everything here sits behind the access gate.
	// Fine-grained role checks stay inside the services.
	admin := r.Group("", middleware.RequireSession(sessions))

	admin.POST("/vehicles", vehicleController.CreateVehicle)
	admin.PUT("/vehicles/:id", vehicleController.UpdateVehicle)
	admin.DELETE("/vehicles/:id", vehicleController.DeleteVehicle)

	admin.POST("/documents", documentController.CreateDocument)
	admin.PUT("/documents/:id", documentController.UpdateDocument)
	admin.DELETE("/documents/:id", documentController.DeleteDocument)

	admin.POST("/events", eventController.CreateEvent)
	admin.PUT("/events/:id", eventController.UpdateEvent)
	admin.DELETE("/events/:id", eventController.DeleteEvent)

	admin.GET("/profile", accountController.Profile)
	admin.GET("/accounts", accountController.GetAllAccounts)
	admin.POST("/accounts", accountController.CreateAccount)
	admin.GET("/accounts/:id", accountController.GetAccountById)
	admin.PUT("/accounts/:id", accountController.UpdateAccount)
	admin.DELETE("/accounts/:id", accountController.DeleteAccount)

	admin.POST("/upload", uploadController.Upload)
}
