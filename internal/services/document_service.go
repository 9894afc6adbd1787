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

type DocumentServiceInterface interface {
	GetAllDocuments(ctx context.Context, vehicleID string) ([]response_models.DocumentResponse, error)
	GetDocumentById(ctx context.Context, id string) (*response_models.DocumentResponse, error)
	CreateDocument(ctx context.Context, caller *authz.Session, request request_models.DocumentRequest) (*response_models.DocumentResponse, error)
	UpdateDocument(ctx context.Context, caller *authz.Session, id string, request request_models.UpdateDocumentRequest) (*response_models.DocumentResponse, error)
	DeleteDocument(ctx context.Context, caller *authz.Session, id string) error
}

type DocumentService struct {
	documentRepo repositories.DocumentRepository
	vehicleRepo  repositories.VehicleRepository
}

func NewDocumentService(documentRepo repositories.DocumentRepository, vehicleRepo repositories.VehicleRepository) DocumentServiceInterface {
	return &DocumentService{
		documentRepo: documentRepo,
		vehicleRepo:  vehicleRepo,
	}
}

func (d *DocumentService) GetAllDocuments(ctx context.Context, vehicleID string) ([]response_models.DocumentResponse, error) {
	documents, err := d.documentRepo.FindAll(ctx, vehicleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.DocumentResponse, 0, len(documents))
	for i := range documents {
		responses = append(responses, toDocumentResponse(&documents[i], &documents[i].Vehicle))
	}
	return responses, nil
}

func (d *DocumentService) GetDocumentById(ctx context.Context, id string) (*response_models.DocumentResponse, error) {
	document, err := d.documentRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if document == nil {
		return nil, utils.ErrDocumentNotFound
	}

	resp := toDocumentResponse(document, &document.Vehicle)
	return &resp, nil
}

func (d *DocumentService) CreateDocument(ctx context.Context, caller *authz.Session, request request_models.DocumentRequest) (*response_models.DocumentResponse, error) {
	if err := authz.Authorize(caller, authz.ActionManageFleet, ""); err != nil {
		return nil, err
	}

	vehicle, err := d.vehicleRepo.FindById(ctx, request.VehicleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if vehicle == nil {
		return nil, utils.ErrVehicleNotFound
	}

	expiresAt, err := parseOptionalDate(request.ExpiresAt)
	if err != nil {
		return nil, err
	}

	document := &db_models.Document{
		VehicleID:   uuid.MustParse(request.VehicleID),
		Title:       request.Title,
		Description: request.Description,
		FileRef:     request.FileRef,
		Type:        request.Type,
		ExpiresAt:   expiresAt,
	}

	if err := d.documentRepo.Insert(ctx, document); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toDocumentResponse(document, vehicle)
	return &resp, nil
}

func (d *DocumentService) UpdateDocument(ctx context.Context, caller *authz.Session, id string, request request_models.UpdateDocumentRequest) (*response_models.DocumentResponse, error) {
	if err := authz.Authorize(caller, authz.ActionManageFleet, ""); err != nil {
		return nil, err
	}

	document, err := d.documentRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if document == nil {
		return nil, utils.ErrDocumentNotFound
	}

	if request.Title != "" {
		document.Title = request.Title
	}
	if request.Description != "" {
		document.Description = request.Description
	}
	if request.FileRef != "" {
		document.FileRef = request.FileRef
	}
	if request.Type != "" {
		document.Type = request.Type
	}
	if request.ExpiresAt != "" {
		expiresAt, err := parseOptionalDate(request.ExpiresAt)
		if err != nil {
			return nil, err
		}
		document.ExpiresAt = expiresAt
	}

	if err := d.documentRepo.Update(ctx, document); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := toDocumentResponse(document, &document.Vehicle)
	return &resp, nil
}

func (d *DocumentService) DeleteDocument(ctx context.Context, caller *authz.Session, id string) error {
	if err := authz.Authorize(caller, authz.ActionManageFleet, ""); err != nil {
		return err
	}

	document, err := d.documentRepo.FindById(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if document == nil {
		return utils.ErrDocumentNotFound
	}

	if err := d.documentRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toDocumentResponse(document *db_models.Document, vehicle *db_models.Vehicle) response_models.DocumentResponse {
	resp := response_models.DocumentResponse{
		ID:          document.ID.String(),
		VehicleID:   document.VehicleID.String(),
		Title:       document.Title,
		Description: document.Description,
		FileRef:     document.FileRef,
		Type:        document.Type,
		CreatedAt:   document.CreatedAt,
	}
	if document.ExpiresAt != nil {
		resp.ExpiresAt = document.ExpiresAt.Format(time.RFC3339)
	}
	if vehicle != nil && vehicle.LicensePlate != "" {
		resp.Vehicle = &response_models.VehicleSummary{
			LicensePlate: vehicle.LicensePlate,
			Model:        vehicle.Model,
		}
	}
	return resp
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		// Date-only input from forms.
		parsed, err = time.Parse("2006-01-02", value)
		if err != nil {
			return nil, utils.NewValidationError("Invalid date format, expected RFC 3339 or YYYY-MM-DD")
		}
	}
	return &parsed, nil
}
