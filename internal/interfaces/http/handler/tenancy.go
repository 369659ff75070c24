package handler

import (
	"github.com/gin-gonic/gin"

	propertyapp "github.com/rentfolio/backend/internal/application/property"
	tenancyapp "github.com/rentfolio/backend/internal/application/tenancy"
	"github.com/rentfolio/backend/internal/interfaces/http/middleware"
)

// TenancyHandler handles tenancy endpoints
type TenancyHandler struct {
	BaseHandler
	tenantService   *tenancyapp.TenantService
	propertyService *propertyapp.PropertyService
}

// NewTenancyHandler creates a new TenancyHandler
func NewTenancyHandler(tenantService *tenancyapp.TenantService, propertyService *propertyapp.PropertyService) *TenancyHandler {
	return &TenancyHandler{
		tenantService:   tenantService,
		propertyService: propertyService,
	}
}

// RegisterRoutes registers tenancy routes
func (h *TenancyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tenancies := rg.Group("/tenancies")
	{
		tenancies.POST("", middleware.RequireManager(), h.MoveIn)
		tenancies.GET("/:id", h.Get)
		tenancies.PUT("/:id", middleware.RequireManager(), h.Update)
		tenancies.POST("/:id/move-out", middleware.RequireManager(), h.MoveOut)
		tenancies.POST("/:id/set-primary", middleware.RequireManager(), h.SetPrimary)
		tenancies.DELETE("/:id", middleware.RequireManager(), h.Delete)
	}

	rg.GET("/properties/:id/tenancies", h.ListByProperty)
}

// MoveIn records a tenant moving into a property
func (h *TenancyHandler) MoveIn(c *gin.Context) {
	var req tenancyapp.MoveInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.tenantService.MoveIn(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns a single tenancy record
func (h *TenancyHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid tenancy ID")
		return
	}

	resp, err := h.tenantService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListByProperty returns all tenancy records for a property, most
// recent move-in first
func (h *TenancyHandler) ListByProperty(c *gin.Context) {
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

	tenants, err := h.tenantService.ListByProperty(c.Request.Context(), prop.Address)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenants)
}

// Update modifies a tenant's contact details
func (h *TenancyHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid tenancy ID")
		return
	}

	var req tenancyapp.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.tenantService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// MoveOut records a tenant's move-out date, ending the tenancy
func (h *TenancyHandler) MoveOut(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid tenancy ID")
		return
	}

	var req tenancyapp.MoveOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.tenantService.MoveOut(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// SetPrimary marks a tenant as the primary contact for its property
func (h *TenancyHandler) SetPrimary(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid tenancy ID")
		return
	}

	resp, err := h.tenantService.SetPrimary(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a tenancy record entered in error
func (h *TenancyHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "invalid tenancy ID")
		return
	}

	if err := h.tenantService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
