package response_models

type UploadResponse struct {
	URL string `json:"url"`
}
