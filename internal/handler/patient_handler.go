package handler

import (
	"errors"
	"net/http"
	"time"

	"eclipselink-handoff-backend/internal/models"
	"eclipselink-handoff-backend/internal/repository"
	"eclipselink-handoff-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PatientHandler struct {
	patientRepo *repository.PatientRepository
	handoffRepo *repository.HandoffRepository
}

func NewPatientHandler(patientRepo *repository.PatientRepository, handoffRepo *repository.HandoffRepository) *PatientHandler {
	return &PatientHandler{
		patientRepo: patientRepo,
		handoffRepo: handoffRepo,
	}
}

// List returns all patients, or matches against name, patient ID and
// conditions when ?q= is present.
func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.patientRepo.Search(c.Query("q"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patients")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"patients": patients,
		"count":    len(patients),
	})
}

type createPatientRequest struct {
	PatientID        string `json:"patient_id" binding:"required"`
	Name             string `json:"name" binding:"required"`
	DateOfBirth      string `json:"date_of_birth"`
	Gender           string `json:"gender"`
	BloodType        string `json:"blood_type"`
	Allergies        string `json:"allergies"`
	Conditions       string `json:"conditions"`
	Medications      string `json:"medications"`
	EmergencyContact string `json:"emergency_contact"`
	Insurance        string `json:"insurance"`
}

// Create registers a new patient. A duplicate patient ID is a conflict, not
// a server error.
func (h *PatientHandler) Create(c *gin.Context) {
	var req createPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	patient := &models.Patient{
		PatientID:        req.PatientID,
		Name:             req.Name,
		DateOfBirth:      req.DateOfBirth,
		Gender:           req.Gender,
		BloodType:        req.BloodType,
		Allergies:        req.Allergies,
		Conditions:       req.Conditions,
		Medications:      req.Medications,
		EmergencyContact: req.EmergencyContact,
		Insurance:        req.Insurance,
		CreatedAt:        models.Timestamp(time.Now()),
	}

	if err := h.patientRepo.Create(patient); err != nil {
		if errors.Is(err, repository.ErrDuplicatePatient) {
			utils.ErrorResponse(c, http.StatusConflict, "Patient ID already exists")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to create patient")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    patient,
	})
}

// Handoffs returns the full handoff history of one patient, newest first.
func (h *PatientHandler) Handoffs(c *gin.Context) {
	patientID := c.Param("patientID")

	if _, err := h.patientRepo.GetByPatientID(patientID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Patient not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch patient")
		return
	}

	handoffs, err := h.handoffRepo.HistoryForPatient(patientID)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch handoffs")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"handoffs": handoffs,
		"count":    len(handoffs),
	})
}
