package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"qrfleet/internal/authz"
	"qrfleet/internal/models/db_models"
	"qrfleet/internal/models/request_models"
	"qrfleet/internal/models/response_models"
	"qrfleet/internal/repositories"
	"qrfleet/pkg/utils"
)

type VehicleServiceInterface interface {
	GetAllVehicles(ctx context.Context) ([]response_models.VehicleResponse, error)
	GetVehicleById(ctx context.Context, id string) (*response_models.VehicleResponse, error)
	// GetVehicleByPlate backs the public QR-linked page.
	GetVehicleByPlate(ctx context.Context, licensePlate string) (*response_models.VehicleResponse, error)
	CreateVehicle(ctx context.Context, caller *authz.Session, request request_models.VehicleRequest) (*response_models.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, caller *authz.Session, id string, request request_models.VehicleRequest) (*response_models.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, caller *authz.Session, id string) error
}

type VehicleService struct {
	vehicleRepo repositories.VehicleRepository
	qrBinder    QRBinderInterface
}

func NewVehicleService(vehicleRepo repositories.VehicleRepository, qrBinder QRBinderInterface) VehicleServiceInterface {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		qrBinder:    qrBinder,
	}
}

func (v *VehicleService) GetAllVehicles(ctx context.Context) ([]response_models.VehicleResponse, error) {
	vehicles, err := v.vehicleRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		responses = append(responses, v.toVehicleResponse(&vehicles[i]))
	}
	return responses, nil
}

func (v *VehicleService) GetVehicleById(ctx context.Context, id string) (*response_models.VehicleResponse, error) {
	vehicle, err := v.vehicleRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vehicle == nil {
		return nil, utils.ErrVehicleNotFound
	}

	resp := v.toVehicleResponse(vehicle)
	return &resp, nil
}

func (v *VehicleService) GetVehicleByPlate(ctx context.Context, licensePlate string) (*response_models.VehicleResponse, error) {
	vehicle, err := v.vehicleRepo.FindByPlate(ctx, licensePlate)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vehicle == nil {
		return nil, utils.ErrVehicleNotFound
	}

	resp := v.toVehicleResponse(vehicle)
	return &resp, nil
}

func (v *VehicleService) CreateVehicle(ctx context.Context, caller *authz.Session, request request_models.VehicleRequest) (*response_models.VehicleResponse, error) {
	if err := authz.Authorize(caller, authz.ActionManageFleet, ""); err != nil {
		return nil, err
	}

	existing, err := v.vehicleRepo.FindByPlate(ctx, request.LicensePlate)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrPlateAlreadyExists
	}

	// Encode before the row write: a vehicle row is never persisted
	// without its QR payload.
	payload, err := v.qrBinder.PayloadFor(request.LicensePlate)
	if err != nil {
		return nil, err
	}

	vehicle := &db_models.Vehicle{
		LicensePlate: request.LicensePlate,
		Make:         request.Make,
		Model:        request.Model,
		Year:         request.Year,
		PhotoRef:     request.PhotoRef,
		Description:  request.Description,
		QRPayload:    payload,
	}

	if err := v.vehicleRepo.Insert(ctx, vehicle); err != nil {
		// Unique constraint settles the race between concurrent creates.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrPlateAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	resp := v.toVehicleResponse(vehicle)
	return &resp, nil
}

func (v *VehicleService) UpdateVehicle(ctx context.Context, caller *authz.Session, id string, request request_models.VehicleRequest) (*response_models.VehicleResponse, error) {
	if err := authz.Authorize(caller, authz.ActionManageFleet, ""); err != nil {
		return nil, err
	}

	vehicle, err := v.vehicleRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vehicle == nil {
		return nil, utils.ErrVehicleNotFound
	}

	// Rebind only on plate change; an unchanged plate keeps the stored
	// payload byte-identical.
	if request.LicensePlate != vehicle.LicensePlate {
		payload, err := v.qrBinder.PayloadFor(request.LicensePlate)
		if err != nil {
			return nil, err
		}
		vehicle.LicensePlate = request.LicensePlate
		vehicle.QRPayload = payload
	}

	vehicle.Make = request.Make
	vehicle.Model = request.Model
	vehicle.Year = request.Year
	vehicle.PhotoRef = request.PhotoRef
	vehicle.Description = request.Description

	if err := v.vehicleRepo.Update(ctx, vehicle); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrPlateAlreadyExists
		}
		return nil, utils.ErrDatabaseError
	}

	resp := v.toVehicleResponse(vehicle)
	return &resp, nil
}

func (v *VehicleService) DeleteVehicle(ctx context.Context, caller *authz.Session, id string) error {
	if err := authz.Authorize(caller, authz.ActionManageFleet, ""); err != nil {
		return err
	}

	vehicle, err := v.vehicleRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if vehicle == nil {
		return utils.ErrVehicleNotFound
	}

	if err := v.vehicleRepo.DeleteCascade(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (v *VehicleService) toVehicleResponse(vehicle *db_models.Vehicle) response_models.VehicleResponse {
	documents := make([]response_models.DocumentResponse, 0, len(vehicle.Documents))
	for i := range vehicle.Documents {
		documents = append(documents, toDocumentResponse(&vehicle.Documents[i], nil))
	}

	events := make([]response_models.EventResponse, 0, len(vehicle.Events))
	for i := range vehicle.Events {
		events = append(events, toEventResponse(&vehicle.Events[i], nil))
	}

	return response_models.VehicleResponse{
		ID:           vehicle.ID.String(),
		LicensePlate: vehicle.LicensePlate,
		Make:         vehicle.Make,
		Model:        vehicle.Model,
		Year:         vehicle.Year,
		PhotoRef:     vehicle.PhotoRef,
		Description:  vehicle.Description,
		QRPayload:    vehicle.QRPayload,
		PublicURL:    v.qrBinder.PublicURL(vehicle.LicensePlate),
		CreatedAt:    vehicle.CreatedAt,
		UpdatedAt:    vehicle.UpdatedAt,
		Documents:    documents,
		Events:       events,
	}
}
