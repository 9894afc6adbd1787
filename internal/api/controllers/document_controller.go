package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qrfleet/internal/models/request_models"
	"qrfleet/internal/services"
	"qrfleet/pkg/middleware"
	"qrfleet/pkg/utils"
)

type DocumentController struct {
	documentService services.DocumentServiceInterface
}

func NewDocumentController(documentService services.DocumentServiceInterface) *DocumentController {
	return &DocumentController{
		documentService: documentService,
	}
}

func (d *DocumentController) GetAllDocuments(c *gin.Context) {
	documents, err := d.documentService.GetAllDocuments(c.Request.Context(), c.Query("vehicleId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, documents, "Documents fetched successfully")
}

func (d *DocumentController) GetDocumentById(c *gin.Context) {
	document, err := d.documentService.GetDocumentById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, document, "Document fetched successfully")
}

func (d *DocumentController) CreateDocument(c *gin.Context) {
	var req request_models.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFromContext(c)

	document, err := d.documentService.CreateDocument(c.Request.Context(), session, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, document, "Document created successfully")
}

func (d *DocumentController) UpdateDocument(c *gin.Context) {
	var req request_models.UpdateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFromContext(c)

	document, err := d.documentService.UpdateDocument(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, document, "Document updated successfully")
}

func (d *DocumentController) DeleteDocument(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	if err := d.documentService.DeleteDocument(c.Request.Context(), session, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Document deleted successfully")
}
