package request_models

type VehicleRequest struct {
	LicensePlate string `json:"license_plate" binding:"required"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	PhotoRef     string `json:"photo_ref"`
	Description  string `json:"description"`
}
