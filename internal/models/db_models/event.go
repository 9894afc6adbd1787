package db_models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	BaseModel
	VehicleID   uuid.UUID `gorm:"index"`
	Title       string
	Description string
	Type        string
	Date        time.Time
	Cost        *float64

	Vehicle Vehicle `gorm:"foreignKey:VehicleID"`
}
