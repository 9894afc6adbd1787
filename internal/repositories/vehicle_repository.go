package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"qrfleet/internal/models/db_models"
)

type VehicleRepository interface {
	Insert(ctx context.Context, vehicle *db_models.Vehicle) error
	Update(ctx context.Context, vehicle *db_models.Vehicle) error
	// DeleteCascade removes the vehicle together with its documents and
	// events in one transaction.
	DeleteCascade(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Vehicle, error)
	FindByPlate(ctx context.Context, licensePlate string) (*db_models.Vehicle, error)
	FindAll(ctx context.Context) ([]db_models.Vehicle, error)
}

type vehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

func (v *vehicleRepository) Insert(ctx context.Context, vehicle *db_models.Vehicle) error {
	return v.db.WithContext(ctx).Create(vehicle).Error
}

func (v *vehicleRepository) Update(ctx context.Context, vehicle *db_models.Vehicle) error {
	return v.db.WithContext(ctx).Save(vehicle).Error
}

func (v *vehicleRepository) DeleteCascade(ctx context.Context, id string) error {
	return v.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&db_models.Document{}, "vehicle_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&db_models.Event{}, "vehicle_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&db_models.Vehicle{}, "id = ?", id).Error
	})
}

func (v *vehicleRepository) FindById(ctx context.Context, id string) (*db_models.Vehicle, error) {
	var vehicle db_models.Vehicle
	err := v.db.WithContext(ctx).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("date desc") }).
		First(&vehicle, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &vehicle, nil
}

func (v *vehicleRepository) FindByPlate(ctx context.Context, licensePlate string) (*db_models.Vehicle, error) {
	var vehicle db_models.Vehicle
	err := v.db.WithContext(ctx).
		Preload("Documents", func(db *gorm.DB) *gorm.DB { return db.Order("created_at desc") }).
		Preload("Events", func(db *gorm.DB) *gorm.DB { return db.Order("date desc") }).
		First(&vehicle, "license_plate = ?", licensePlate).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &vehicle, nil
}

func (v *vehicleRepository) FindAll(ctx context.Context) ([]db_models.Vehicle, error) {
	var vehicles []db_models.Vehicle
	err := v.db.WithContext(ctx).
		Preload("Documents").
		Preload("Events").
		Order("created_at desc").
		Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}
