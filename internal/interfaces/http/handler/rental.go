package handler

import (
	"github.com/gin-gonic/gin"

	propertyapp "github.com/rentfolio/backend/internal/application/property"
	rentalapp "github.com/rentfolio/backend/internal/application/rental"
	"github.com/rentfolio/backend/internal/interfaces/http/middleware"
)

// RentalHandler handles rental rate endpoints
type RentalHandler struct {
	BaseHandler
	rateService     *rentalapp.RateService
	propertyService *propertyapp.PropertyService
}

// NewRentalHandler creates a new RentalHandler
func NewRentalHandler(rateService *rentalapp.RateService, propertyService *propertyapp.PropertyService) *RentalHandler {
	return &RentalHandler{
		rateService:     rateService,
		propertyService: propertyService,
	}
}

// RegisterRoutes registers rental rate routes
func (h *RentalHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rentals := rg.Group("/rentals")
	{
		rentals.POST("/initial", middleware.RequireManager(), h.SetInitialRate)
		rentals.POST("/increase", middleware.RequireManager(), h.RecordIncrease)
		rentals.GET("", h.ListAll)
	}

	rg.GET("/properties/:id/rental", h.GetByProperty)
	rg.GET("/properties/:id/rental/history", h.GetHistory)
}

// SetInitialRate establishes the rental rate baseline for a property.
// Mode "overwrite" replaces an existing snapshot; the default "create"
// refuses to touch one.
func (h *RentalHandler) SetInitialRate(c *gin.Context) {
	var req rentalapp.SetInitialRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.rateService.SetInitialRate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// RecordIncrease records a rental rate increase against an existing record
func (h *RentalHandler) RecordIncrease(c *gin.Context) {
	var req rentalapp.RecordIncreaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.rateService.RecordIncrease(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListAll returns the rate snapshot for every tracked property
func (h *RentalHandler) ListAll(c *gin.Context) {
	snapshots, err := h.rateService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, snapshots)
}

// GetByProperty returns the rate snapshot for one property
func (h *RentalHandler) GetByProperty(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid property ID")
		return
	}

	prop, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	resp, err := h.rateService.GetByAddress(c.Request.Context(), prop.Address)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetHistory returns the append-only increase history for one property
func (h *RentalHandler) GetHistory(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid property ID")
		return
	}

	prop, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	history, err := h.rateService.GetHistory(c.Request.Context(), prop.Address)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, history)
}
