package handler

import (
	"net/http"

	"eclipselink-handoff-backend/internal/service"
	"eclipselink-handoff-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// Dashboard returns the analytics aggregates for the dashboard.
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	data, err := h.analyticsService.Dashboard()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to compute analytics")
		return
	}

	utils.SuccessResponse(c, data)
}
