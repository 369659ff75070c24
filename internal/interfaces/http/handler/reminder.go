package handler

import (
	"github.com/gin-gonic/gin"

	reminderapp "github.com/rentfolio/backend/internal/application/reminder"
)

// ReminderHandler handles reminder list endpoints
type ReminderHandler struct {
	BaseHandler
	reminderService *reminderapp.ReminderService
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(reminderService *reminderapp.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// RegisterRoutes registers reminder routes
func (h *ReminderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reminders := rg.Group("/reminders")
	{
		reminders.GET("/rate-increases", h.RateIncreases)
		reminders.GET("/birthdays", h.Birthdays)
	}
}

// RateIncreases returns properties whose rate increase reminder is due
func (h *ReminderHandler) RateIncreases(c *gin.Context) {
	var query reminderapp.RateReminderQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	reminders, err := h.reminderService.RateReminders(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reminders)
}

// Birthdays returns owners and active tenants with a birthday in the
// requested month
func (h *ReminderHandler) Birthdays(c *gin.Context) {
	var query reminderapp.BirthdayReminderQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	reminders, err := h.reminderService.BirthdayReminders(c.Request.Context(), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reminders)
}
