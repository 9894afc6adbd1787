package request_models

type EventRequest struct {
	VehicleID   string   `json:"vehicle_id" binding:"required,uuid"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Date        string   `json:"date" binding:"required"` // RFC 3339
	Cost        *float64 `json:"cost"`
}

type UpdateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Date        string   `json:"date"`
	Cost        *float64 `json:"cost"`
}
