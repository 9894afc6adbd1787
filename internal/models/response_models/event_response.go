package response_models

type EventResponse struct {
	ID          string          `json:"id"`
	VehicleID   string          `json:"vehicle_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Type        string          `json:"type,omitempty"`
	Date        string          `json:"date"`
	Cost        *float64        `json:"cost,omitempty"`
	CreatedAt   int64           `json:"created_at"`
	Vehicle     *VehicleSummary `json:"vehicle,omitempty"`
}
