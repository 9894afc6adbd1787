package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"qrfleet/internal/models/db_models"
)

type EventRepository interface {
	Insert(ctx context.Context, event *db_models.Event) error
	Update(ctx context.Context, event *db_models.Event) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Event, error)
	// FindAll lists events by event date, newest first, optionally
	// filtered by vehicle.
	FindAll(ctx context.Context, vehicleID string) ([]db_models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{
		db: db,
	}
}

func (e *eventRepository) Insert(ctx context.Context, event *db_models.Event) error {
	return e.db.WithContext(ctx).Create(event).Error
}

func (e *eventRepository) Update(ctx context.Context, event *db_models.Event) error {
	return e.db.WithContext(ctx).Save(event).Error
}

func (e *eventRepository) Delete(ctx context.Context, id string) error {
	return e.db.WithContext(ctx).Delete(&db_models.Event{}, "id = ?", id).Error
}

func (e *eventRepository) FindById(ctx context.Context, id string) (*db_models.Event, error) {
	var event db_models.Event
	err := e.db.WithContext(ctx).Preload("Vehicle").First(&event, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &event, nil
}

func (e *eventRepository) FindAll(ctx context.Context, vehicleID string) ([]db_models.Event, error) {
	var events []db_models.Event

	query := e.db.WithContext(ctx).Preload("Vehicle").Order("date desc")
	if vehicleID != "" {
		query = query.Where("vehicle_id = ?", vehicleID)
	}

	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}
