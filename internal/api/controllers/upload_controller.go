package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qrfleet/internal/models/response_models"
	"qrfleet/internal/services"
	"qrfleet/pkg/utils"
)

type UploadController struct {
	uploadService services.UploadServiceInterface
}

func NewUploadController(uploadService services.UploadServiceInterface) *UploadController {
	return &UploadController{
		uploadService: uploadService,
	}
}

// Upload accepts one multipart file plus an optional "fileType" field
// ("image" or "document"); the kind is inferred from the MIME type when
// absent.
func (u *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "No file sent")
		return
	}

	url, err := u.uploadService.Store(file, c.PostForm("fileType"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.UploadResponse{URL: url}, "File uploaded successfully")
}
