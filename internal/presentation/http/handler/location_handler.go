package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wekesa/dukapos-api/internal/application/service"
	"github.com/wekesa/dukapos-api/internal/presentation/http/dto/request"
	"github.com/wekesa/dukapos-api/internal/presentation/http/dto/response"
)

// LocationHandler handles stock location HTTP requests
type LocationHandler struct {
	locationService *service.LocationService
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService *service.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// List handles listing active locations
func (h *LocationHandler) List(c *gin.Context) {
	locations, err := h.locationService.ListActive(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Locations retrieved successfully", locations)
}

// Create handles creating a location
func (h *LocationHandler) Create(c *gin.Context) {
	var req request.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	location, err := h.locationService.Create(c.Request.Context(), req.Name, req.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Location created successfully", location)
}

// Get handles getting a single location
func (h *LocationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	location, err := h.locationService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Location retrieved successfully", location)
}

// Deactivate handles marking a location inactive
func (h *LocationHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid location ID")
		return
	}

	if err := h.locationService.Deactivate(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
