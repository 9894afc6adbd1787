package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"qrfleet/internal/authz"
	"qrfleet/internal/models/db_models"
	"qrfleet/internal/models/request_models"
	"qrfleet/internal/models/response_models"
	"qrfleet/internal/repositories"
	"qrfleet/pkg/utils"
)

type EventServiceInterface interface {
	GetAllEvents(ctx context.Context, vehicleID string) ([]response_models.EventResponse, error)
	GetEventById(ctx context.Context, id string) (*response_models.EventResponse, error)
	CreateEvent(ctx context.Context, caller *authz.Session, request request_models.EventRequest) (*response_models.EventResponse, error)
	UpdateEvent(ctx context.Context, caller *authz.Session, id string, request request_models.UpdateEventRequest) (*response_models.EventResponse, error)
	DeleteEvent(ctx context.Context, caller *authz.Session, id string) error
}

type EventService struct {
	eventRepo   repositories.EventRepository
	vehicleRepo repositories.VehicleRepository
}

func NewEventService(eventRepo repositories.EventRepository, vehicleRepo repositories.VehicleRepository) EventServiceInterface {
	return &EventService{
		eventRepo:   eventRepo,
		vehicleRepo: vehicleRepo,
	}
}

func (e *EventService) GetAllEvents(ctx context.Context, vehicleID string) ([]response_models.EventResponse, error) {
	events, err := e.eventRepo.FindAll(ctx, vehicleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, toEventResponse(&events[i], &events[i].Vehicle))
	}
	return responses, nil
}

func (e *EventService) GetEventById(ctx context.Context, id string) (*response_models.EventResponse, error) {
	event, err := e.eventRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	resp := toEventResponse(event, &event.Vehicle)
	return &resp, nil
}

func (e *EventService) CreateEvent(ctx context.Context, caller *authz.Session, request request_models.EventRequest) (*response_models.EventResponse, error) {
	if err := authz.Authorize(caller, authz.ActionManageFleet, ""); err != nil {
		return nil, err
	}

	vehicle, err := e.vehicleRepo.FindById(ctx, request.VehicleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vehicle == nil {
		return nil, utils.ErrVehicleNotFound
	}

	date, err := parseOptionalDate(request.Date)
	if err != nil {
		return nil, err
	}
	if date == nil {
		return nil, utils.NewValidationError("Event date is required")
	}

	event := &db_models.Event{
		VehicleID:   uuid.MustParse(request.VehicleID),
		Title:       request.Title,
		Description: request.Description,
		Type:        request.Type,
		Date:        *date,
		Cost:        request.Cost,
	}

	if err := e.eventRepo.Insert(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toEventResponse(event, vehicle)
	return &resp, nil
}

func (e *EventService) UpdateEvent(ctx context.Context, caller *authz.Session, id string, request request_models.UpdateEventRequest) (*response_models.EventResponse, error) {
	if err := authz.Authorize(caller, authz.ActionManageFleet, ""); err != nil {
		return nil, err
	}

	event, err := e.eventRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if event == nil {
		return nil, utils.ErrEventNotFound
	}

	if request.Title != "" {
		event.Title = request.Title
	}
	if request.Description != "" {
		event.Description = request.Description
	}
	if request.Type != "" {
		event.Type = request.Type
	}
	if request.Date != "" {
		date, err := parseOptionalDate(request.Date)
		if err != nil {
			return nil, err
		}
		event.Date = *date
	}
	if request.Cost != nil {
		event.Cost = request.Cost
	}

	if err := e.eventRepo.Update(ctx, event); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toEventResponse(event, &event.Vehicle)
	return &resp, nil
}

func (e *EventService) DeleteEvent(ctx context.Context, caller *authz.Session, id string) error {
	if err := authz.Authorize(caller, authz.ActionManageFleet, ""); err != nil {
		return err
	}

	event, err := e.eventRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if event == nil {
		return utils.ErrEventNotFound
	}

	if err := e.eventRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toEventResponse(event *db_models.Event, vehicle *db_models.Vehicle) response_models.EventResponse {
	resp := response_models.EventResponse{
		ID:          event.ID.String(),
		VehicleID:   event.VehicleID.String(),
		Title:       event.Title,
		Description: event.Description,
		Type:        event.Type,
		Date:        event.Date.Format(time.RFC3339),
		Cost:        event.Cost,
		CreatedAt:   event.CreatedAt,
	}
	if vehicle != nil && vehicle.LicensePlate != "" {
		resp.Vehicle = &response_models.VehicleSummary{
			LicensePlate: vehicle.LicensePlate,
			Model:        vehicle.Model,
		}
	}
	return resp
}
