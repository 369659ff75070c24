package handler

import (
	"github.com/gin-gonic/gin"

	propertyapp "github.com/rentfolio/backend/internal/application/property"
	"github.com/rentfolio/backend/internal/interfaces/http/dto"
	"github.com/rentfolio/backend/internal/interfaces/http/middleware"
)

// PropertyHandler handles property and owner endpoints
type PropertyHandler struct {
	BaseHandler
	propertyService *propertyapp.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler
func NewPropertyHandler(propertyService *propertyapp.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// RegisterRoutes registers property routes
func (h *PropertyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	properties := rg.Group("/properties")
	{
		properties.POST("", middleware.RequireManager(), h.Create)
		properties.GET("", h.List)
		properties.GET("/:id", h.Get)
		properties.PUT("/:id", middleware.RequireManager(), h.Update)
		properties.DELETE("/:id", middleware.RequireManager(), h.Delete)
		properties.GET("/:id/detail", h.GetDetail)
		properties.PUT("/:id/strata", middleware.RequireManager(), h.SetStrataContact)

		properties.POST("/:id/owners", middleware.RequireManager(), h.AddOwner)
		properties.PUT("/:id/owners/:owner_id", middleware.RequireManager(), h.UpdateOwner)
		properties.DELETE("/:id/owners/:owner_id", middleware.RequireManager(), h.RemoveOwner)
	}
}

// Create registers a new property
func (h *PropertyHandler) Create(c *gin.Context) {
	var req propertyapp.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.propertyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// List returns properties matching the filter, paginated
func (h *PropertyHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := req.ToFilter()
	if serviceType := c.Query("service_type"); serviceType != "" {
		filter.Filters = map[string]interface{}{"service_type": serviceType}
	}

	result, err := h.propertyService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Get returns a single property by ID
func (h *PropertyHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid property ID")
		return
	}

	resp, err := h.propertyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetDetail returns a property together with its owners, tenancy
// records, and rental snapshot
func (h *PropertyHandler) GetDetail(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid property ID")
		return
	}

	resp, err := h.propertyService.GetDetail(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Update modifies a property's mutable details
func (h *PropertyHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid property ID")
		return
	}

	var req propertyapp.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.propertyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// SetStrataContact records the strata management contact for a property
func (h *PropertyHandler) SetStrataContact(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid property ID")
		return
	}

	var req propertyapp.SetStrataContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.propertyService.SetStrataContact(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a property
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid property ID")
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// AddOwner attaches an owner to a property
func (h *PropertyHandler) AddOwner(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid property ID")
		return
	}

	var req propertyapp.AddOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.propertyService.AddOwner(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// UpdateOwner modifies an owner's details
func (h *PropertyHandler) UpdateOwner(c *gin.Context) {
	ownerID, err := parseIDParam(c, "owner_id")
	if err != nil {
		h.BadRequest(c, "invalid owner ID")
		return
	}

	var req propertyapp.UpdateOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.propertyService.UpdateOwner(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// RemoveOwner detaches an owner from a property
func (h *PropertyHandler) RemoveOwner(c *gin.Context) {
	ownerID, err := parseIDParam(c, "owner_id")
	if err != nil {
		h.BadRequest(c, "invalid owner ID")
		return
	}

	if err := h.propertyService.RemoveOwner(c.Request.Context(), ownerID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
