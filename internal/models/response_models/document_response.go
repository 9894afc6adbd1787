package response_models

type DocumentResponse struct {
	ID          string          `json:"id"`
	VehicleID   string          `json:"vehicle_id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	FileRef     string          `json:"file_ref,omitempty"`
	Type        string          `json:"type,omitempty"`
	ExpiresAt   string          `json:"expires_at,omitempty"`
	CreatedAt   int64           `json:"created_at"`
	Vehicle     *VehicleSummary `json:"vehicle,omitempty"`
}
