package handler

import (
	"net/http"

	"eclipselink-handoff-backend/internal/service"
	"eclipselink-handoff-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService *service.AuditService
}

func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// List returns the filtered activity log, newest first, capped at 100
// entries. Supported query params: period (hour|24h|7d|30d|all), action,
// user, q (details substring).
func (h *AuditHandler) List(c *gin.Context) {
	entries, err := h.auditService.View(
		c.DefaultQuery("period", service.PeriodMonth),
		c.Query("action"),
		c.Query("user"),
		c.Query("q"),
	)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch audit log")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// Summary returns the activity stat block for the trailing 24 hours.
func (h *AuditHandler) Summary(c *gin.Context) {
	summary, err := h.auditService.Summary()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute audit summary")
		return
	}

	utils.SuccessResponse(c, summary)
}
