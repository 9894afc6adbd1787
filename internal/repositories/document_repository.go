package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"qrfleet/internal/models/db_models"
)

type DocumentRepository interface {
	Insert(ctx context.Context, document *db_models.Document) error
	Update(ctx context.Context, document *db_models.Document) error
	Delete(ctx context.Context, id string) error
	FindById(ctx context.Context, id string) (*db_models.Document, error)
	// FindAll lists documents newest first, optionally filtered by vehicle.
	FindAll(ctx context.Context, vehicleID string) ([]db_models.Document, error)
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{
		db: db,
	}
}

func (d *documentRepository) Insert(ctx context.Context, document *db_models.Document) error {
	return d.db.WithContext(ctx).Create(document).Error
}

func (d *documentRepository) Update(ctx context.Context, document *db_models.Document) error {
	return d.db.WithContext(ctx).Save(document).Error
}

func (d *documentRepository) Delete(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Delete(&db_models.Document{}, "id = ?", id).Error
}

func (d *documentRepository) FindById(ctx context.Context, id string) (*db_models.Document, error) {
	var document db_models.Document
	err := d.db.WithContext(ctx).Preload("Vehicle").First(&document, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &document, nil
}

func (d *documentRepository) FindAll(ctx context.Context, vehicleID string) ([]db_models.Document, error) {
	var documents []db_models.Document

	query := d.db.WithContext(ctx).Preload("Vehicle").Order("created_at desc")
	if vehicleID != "" {
		query = query.Where("vehicle_id = ?", vehicleID)
	}

	if err := query.Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}
