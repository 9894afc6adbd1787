package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"qrfleet/internal/models/request_models"
	"qrfleet/internal/services"
	"qrfleet/pkg/middleware"
	"qrfleet/pkg/utils"
)

type EventController struct {
	eventService services.EventServiceInterface
}

func NewEventController(eventService services.EventServiceInterface) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

func (e *EventController) GetAllEvents(c *gin.Context) {
	events, err := e.eventService.GetAllEvents(c.Request.Context(), c.Query("vehicleId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, events, "Events fetched successfully")
}

func (e *EventController) GetEventById(c *gin.Context) {
	event, err := e.eventService.GetEventById(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event fetched successfully")
}

func (e *EventController) CreateEvent(c *gin.Context) {
	var req request_models.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFromContext(c)

	event, err := e.eventService.CreateEvent(c.Request.Context(), session, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event created successfully")
}

func (e *EventController) UpdateEvent(c *gin.Context) {
	var req request_models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session := middleware.SessionFromContext(c)

	event, err := e.eventService.UpdateEvent(c.Request.Context(), session, c.Param("id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, event, "Event updated successfully")
}

func (e *EventController) DeleteEvent(c *gin.Context) {
	session := middleware.SessionFromContext(c)

	if err := e.eventService.DeleteEvent(c.Request.Context(), session, c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Event deleted successfully")
}
