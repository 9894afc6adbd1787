package request_models

type DocumentRequest struct {
	VehicleID   string `json:"vehicle_id" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	FileRef     string `json:"file_ref"`
	Type        string `json:"type"`
	ExpiresAt   string `json:"expires_at"` // RFC 3339, optional
}

type UpdateDocumentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FileRef     string `json:"file_ref"`
	Type        string `json:"type"`
	ExpiresAt   string `json:"expires_at"`
}
