package handler

import (
	"errors"
	"net/http"
	"strconv"

	"eclipselink-handoff-backend/internal/repository"
	"eclipselink-handoff-backend/internal/service"
	"eclipselink-handoff-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HandoffHandler struct {
	handoffService *service.HandoffService
}

func NewHandoffHandler(handoffService *service.HandoffService) *HandoffHandler {
	return &HandoffHandler{
		handoffService: handoffService,
	}
}

// actingUser returns the display name of the authenticated clinician.
func actingUser(c *gin.Context) string {
	if name, exists := c.Get("userName"); exists {
		if s, ok := name.(string); ok && s != "" {
			return s
		}
	}
	return "User"
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid handoff ID")
		return 0, false
	}
	return uint(id), true
}

// List searches handoffs with the optional query-string filters.
func (h *HandoffHandler) List(c *gin.Context) {
	filter := repository.HandoffFilter{
		Query:     c.Query("q"),
		Type:      c.Query("type"),
		Priority:  c.Query("priority"),
		Status:    c.Query("status"),
		Specialty: c.Query("specialty"),
	}

	handoffs, err := h.handoffService.Search(filter)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch handoffs")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"handoffs": handoffs,
		"count":    len(handoffs),
	})
}

type createHandoffRequest struct {
	PatientName       string `json:"patient_name" binding:"required"`
	PatientID         string `json:"patient_id" binding:"required"`
	HandoffType       string `json:"handoff_type" binding:"required,oneof=shift_change transfer admission discharge procedure"`
	Priority          string `json:"priority" binding:"required,oneof=routine urgent emergent"`
	FromStaff         string `json:"from_staff"`
	ToStaff           string `json:"to_staff"`
	Specialty         string `json:"specialty"`
	Transcript        string `json:"transcript"`
	RecordingDuration *int   `json:"recording_duration"`
}

// Create registers a new pending handoff.
func (h *HandoffHandler) Create(c *gin.Context) {
	var req createHandoffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	handoff, err := h.handoffService.Create(service.CreateHandoffInput{
		PatientName:       req.PatientName,
		PatientID:         req.PatientID,
		HandoffType:       req.HandoffType,
		Priority:          req.Priority,
		FromStaff:         req.FromStaff,
		ToStaff:           req.ToStaff,
		Specialty:         req.Specialty,
		Transcript:        req.Transcript,
		RecordingDuration: req.RecordingDuration,
	}, actingUser(c))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create handoff")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    handoff,
	})
}

// Get fetches one handoff and logs the view. ?lang= adds a translated copy
// of the SBAR sections.
func (h *HandoffHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	handoff, err := h.handoffService.Get(id, actingUser(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Handoff not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch handoff")
		return
	}

	response := gin.H{"handoff": handoff}
	if lang := c.Query("lang"); lang != "" && lang != "en" {
		response["translated_sbar"] = h.handoffService.Translate(handoff, lang)
		response["language"] = lang
	}

	utils.SuccessResponse(c, response)
}

type updateSBARRequest struct {
	Situation      *string `json:"situation"`
	Background     *string `json:"background"`
	Assessment     *string `json:"assessment"`
	Recommendation *string `json:"recommendation"`
}

// UpdateSBAR applies a partial edit to the report sections.
func (h *HandoffHandler) UpdateSBAR(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateSBARRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	handoff, err := h.handoffService.EditSBAR(id, service.SBARUpdate{
		Situation:      req.Situation,
		Background:     req.Background,
		Assessment:     req.Assessment,
		Recommendation: req.Recommendation,
	}, actingUser(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Handoff not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update SBAR")
		return
	}

	utils.SuccessResponse(c, handoff)
}

// Generate produces the SBAR report and scores synchronously.
func (h *HandoffHandler) Generate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	handoff, err := h.handoffService.Generate(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Handoff not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to generate SBAR")
		return
	}

	utils.SuccessResponse(c, handoff)
}

// Complete marks the handoff completed.
func (h *HandoffHandler) Complete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	handoff, err := h.handoffService.Complete(id, actingUser(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Handoff not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to complete handoff")
		return
	}

	utils.SuccessResponse(c, handoff)
}

// ExportPDF streams the handoff's SBAR report as a PDF document.
func (h *HandoffHandler) ExportPDF(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	data, err := h.handoffService.ExportPDF(id, actingUser(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Handoff not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to export PDF")
		return
	}

	c.Header("Content-Disposition", "attachment; filename=sbar_handoff_"+c.Param("id")+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

// Trail returns the handoff's audit history in chronological order.
func (h *HandoffHandler) Trail(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entries, err := h.handoffService.Trail(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Handoff not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch audit trail")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}
