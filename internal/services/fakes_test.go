package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"qrfleet/internal/models/db_models"
)

// In-memory repositories backing the service tests. Insert mimics the
// database unique constraints by returning gorm.ErrDuplicatedKey.

type fakeAccountRepo struct {
	accounts map[string]*db_models.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*db_models.Account{}}
}

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	for _, existing := range f.accounts {
		if existing.Email == account.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	account.CreatedAt = time.Now().Unix()
	account.UpdatedAt = account.CreatedAt
	copied := *account
	f.accounts[account.ID.String()] = &copied
	return nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *db_models.Account) error {
	for id, existing := range f.accounts {
		if existing.Email == account.Email && id != account.ID.String() {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *account
	f.accounts[account.ID.String()] = &copied
	return nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id string) error {
	delete(f.accounts, id)
	return nil
}

func (f *fakeAccountRepo) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	account, ok := f.accounts[id]
	if !ok {
		return nil, nil
	}
	copied := *account
	return &copied, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for _, account := range f.accounts {
		if account.Email == email {
			copied := *account
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountRepo) FindAll(ctx context.Context) ([]db_models.Account, error) {
	accounts := make([]db_models.Account, 0, len(f.accounts))
	for _, account := range f.accounts {
		accounts = append(accounts, *account)
	}
	return accounts, nil
}

type fakeVehicleRepo struct {
	vehicles  map[string]*db_models.Vehicle
	documents map[string]*db_models.Document
	events    map[string]*db_models.Event
	// insertErr simulates a constraint violation racing past the
	// duplicate pre-check.
	insertErr error
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{
		vehicles:  map[string]*db_models.Vehicle{},
		documents: map[string]*db_models.Document{},
		events:    map[string]*db_models.Event{},
	}
}

func (f *fakeVehicleRepo) Insert(ctx context.Context, vehicle *db_models.Vehicle) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	for _, existing := range f.vehicles {
		if existing.LicensePlate == vehicle.LicensePlate {
			return gorm.ErrDuplicatedKey
		}
	}
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	vehicle.CreatedAt = time.Now().Unix()
	vehicle.UpdatedAt = vehicle.CreatedAt
	copied := *vehicle
	f.vehicles[vehicle.ID.String()] = &copied
	return nil
}

func (f *fakeVehicleRepo) Update(ctx context.Context, vehicle *db_models.Vehicle) error {
	for id, existing := range f.vehicles {
		if existing.LicensePlate == vehicle.LicensePlate && id != vehicle.ID.String() {
			return gorm.ErrDuplicatedKey
		}
	}
	copied := *vehicle
	f.vehicles[vehicle.ID.String()] = &copied
	return nil
}

func (f *fakeVehicleRepo) DeleteCascade(ctx context.Context, id string) error {
	for docID, document := range f.documents {
		if document.VehicleID.String() == id {
			delete(f.documents, docID)
		}
	}
	for eventID, event := range f.events {
		if event.VehicleID.String() == id {
			delete(f.events, eventID)
		}
	}
	delete(f.vehicles, id)
	return nil
}

func (f *fakeVehicleRepo) FindById(ctx context.Context, id string) (*db_models.Vehicle, error) {
	vehicle, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	copied := *vehicle
	return &copied, nil
}

func (f *fakeVehicleRepo) FindByPlate(ctx context.Context, licensePlate string) (*db_models.Vehicle, error) {
	for _, vehicle := range f.vehicles {
		if vehicle.LicensePlate == licensePlate {
			copied := *vehicle
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeVehicleRepo) FindAll(ctx context.Context) ([]db_models.Vehicle, error) {
	vehicles := make([]db_models.Vehicle, 0, len(f.vehicles))
	for _, vehicle := range f.vehicles {
		vehicles = append(vehicles, *vehicle)
	}
	return vehicles, nil
}

type fakeDocumentRepo struct {
	vehicleRepo *fakeVehicleRepo
}

func (f *fakeDocumentRepo) Insert(ctx context.Context, document *db_models.Document) error {
	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}
	copied := *document
	f.vehicleRepo.documents[document.ID.String()] = &copied
	return nil
}

func (f *fakeDocumentRepo) Update(ctx context.Context, document *db_models.Document) error {
	copied := *document
	f.vehicleRepo.documents[document.ID.String()] = &copied
	return nil
}

func (f *fakeDocumentRepo) Delete(ctx context.Context, id string) error {
	delete(f.vehicleRepo.documents, id)
	return nil
}

func (f *fakeDocumentRepo) FindById(ctx context.Context, id string) (*db_models.Document, error) {
	document, ok := f.vehicleRepo.documents[id]
	if !ok {
		return nil, nil
	}
	copied := *document
	if vehicle, ok := f.vehicleRepo.vehicles[document.VehicleID.String()]; ok {
		copied.Vehicle = *vehicle
	}
	return &copied, nil
}

func (f *fakeDocumentRepo) FindAll(ctx context.Context, vehicleID string) ([]db_models.Document, error) {
	documents := make([]db_models.Document, 0, len(f.vehicleRepo.documents))
	for _, document := range f.vehicleRepo.documents {
		if vehicleID != "" && document.VehicleID.String() != vehicleID {
			continue
		}
		copied := *document
		if vehicle, ok := f.vehicleRepo.vehicles[document.VehicleID.String()]; ok {
			copied.Vehicle = *vehicle
		}
		documents = append(documents, copied)
	}
	return documents, nil
}

type fakeEventRepo struct {
	vehicleRepo *fakeVehicleRepo
}

func (f *fakeEventRepo) Insert(ctx context.Context, event *db_models.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	copied := *event
	f.vehicleRepo.events[event.ID.String()] = &copied
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event *db_models.Event) error {
	copied := *event
	f.vehicleRepo.events[event.ID.String()] = &copied
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	delete(f.vehicleRepo.events, id)
	return nil
}

func (f *fakeEventRepo) FindById(ctx context.Context, id string) (*db_models.Event, error) {
	event, ok := f.vehicleRepo.events[id]
	if !ok {
		return nil, nil
	}
	copied := *event
	if vehicle, ok := f.vehicleRepo.vehicles[event.VehicleID.String()]; ok {
		copied.Vehicle = *vehicle
	}
	return &copied, nil
}

func (f *fakeEventRepo) FindAll(ctx context.Context, vehicleID string) ([]db_models.Event, error) {
	events := make([]db_models.Event, 0, len(f.vehicleRepo.events))
	for _, event := range f.vehicleRepo.events {
		if vehicleID != "" && event.VehicleID.String() != vehicleID {
			continue
		}
		copied := *event
		if vehicle, ok := f.vehicleRepo.vehicles[event.VehicleID.String()]; ok {
			copied.Vehicle = *vehicle
		}
		events = append(events, copied)
	}
	return events, nil
}
