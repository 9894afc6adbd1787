package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qrfleet/internal/models/request_models"
	"qrfleet/internal/services"
	"qrfleet/pkg/middleware"
	"qrfleet/pkg/utils"
)

type VehicleController struct {
	vehicleService services.VehicleServiceInterface
}

func NewVehicleController(vehicleService services.VehicleServiceInterface) *VehicleController {
	return &VehicleController{
		vehicleService: vehicleService,
	}
}

func (v *VehicleController) GetAllVehicles(c *gin.Context) {
	vehicles, err := v.vehicleService.GetAllVehicles(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicles, "Vehicles fetched successfully")
}

func (v *VehicleController) GetVehicleById(c *gin.Context) {
	vehicle, err := v.vehicleService.GetVehicleById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicle, "Vehicle fetched successfully")
}

// GetPublicVehicle serves the QR-linked page data: the vehicle with its
// documents and event history, no authentication required.
func (v *VehicleController) GetPublicVehicle(c *gin.Context) {
	licensePlate := c.Param("licensePlate")
	if licensePlate == "" {
		utils.RespondError(c, http.StatusBadRequest, "License plate is required")
		return
	}

	vehicle, err := v.vehicleService.GetVehicleByPlate(c.Request.Context(), licensePlate)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicle, "Vehicle fetched successfully")
}

func (v *VehicleController) CreateVehicle(c *gin.Context) {
	var req request_models.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFromContext(c)

	vehicle, err := v.vehicleService.CreateVehicle(c.Request.Context(), session, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicle, "Vehicle created successfully")
}

func (v *VehicleController) UpdateVehicle(c *gin.Context) {
	var req request_models.VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFromContext(c)

	vehicle, err := v.vehicleService.UpdateVehicle(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, vehicle, "Vehicle updated successfully")
}

func (v *VehicleController) DeleteVehicle(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	if err := v.vehicleService.DeleteVehicle(c.Request.Context(), session, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Vehicle deleted successfully")
}
