package response_models

type VehicleResponse struct {
	ID           string `json:"id"`
	LicensePlate string `json:"license_plate"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	PhotoRef     string `json:"photo_ref,omitempty"`
	Description  string `json:"description,omitempty"`
	QRPayload    string `json:"qr_payload"`
	PublicURL    string `json:"public_url"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`

	Documents []DocumentResponse `json:"documents,omitempty"`
	Events    []EventResponse    `json:"events,omitempty"`
}

// VehicleSummary is embedded in document/event listings.
type VehicleSummary struct {
	LicensePlate string `json:"license_plate"`
	Model        string `json:"model"`
}
