package handler

import (
	"errors"
	"net/http"

	"eclipselink-handoff-backend/internal/service"
	"eclipselink-handoff-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FamilyHandler struct {
	familyService *service.FamilyService
}

func NewFamilyHandler(familyService *service.FamilyService) *FamilyHandler {
	return &FamilyHandler{
		familyService: familyService,
	}
}

// Updates returns the patient's completed handoffs as plain-language care
// updates for family members.
func (h *FamilyHandler) Updates(c *gin.Context) {
	updates, err := h.familyService.Updates(c.Param("patientID"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Patient not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch care updates")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"updates": updates,
		"count":   len(updates),
	})
}
