package db_models

type Vehicle struct {
	BaseModel
	LicensePlate string `gorm:"uniqueIndex"`
	Make         string
	Model        string
	Year         int
	PhotoRef     string
	Description  string
	// QRPayload always encodes the public URL for the current plate.
	QRPayload string `gorm:"type:text"`

	Documents []Document
	Events    []Event
}
