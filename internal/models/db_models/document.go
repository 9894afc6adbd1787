package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	BaseModel
	VehicleID   uuid.UUID `gorm:"index"`
	Title       string
	Description string
	FileRef     string
	Type        string
	ExpiresAt   *time.Time

	Vehicle Vehicle `gorm:"foreignKey:VehicleID"`
}
