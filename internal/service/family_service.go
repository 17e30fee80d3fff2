package service

import (
	"time"

	"eclipselink-handoff-backend/internal/ai"
	"eclipselink-handoff-backend/internal/models"
	"eclipselink-handoff-backend/internal/repository"
)

// FamilyService prepares completed handoffs for the family portal: plain
// language only, no clinical jargon.
type FamilyService struct {
	patientRepo *repository.PatientRepository
	handoffRepo *repository.HandoffRepository
}

func NewFamilyService(patientRepo *repository.PatientRepository, handoffRepo *repository.HandoffRepository) *FamilyService {
	return &FamilyService{
		patientRepo: patientRepo,
		handoffRepo: handoffRepo,
	}
}

// FamilyUpdate is one care update in family-friendly language.
type FamilyUpdate struct {
	HandoffID      uint   `json:"handoff_id"`
	Date           string `json:"date"`
	Type           string `json:"type"`
	Priority       string `json:"priority"`
	WhatsHappening string `json:"whats_happening"`
	MedicalHistory string `json:"medical_history"`
	CurrentStatus  string `json:"current_status"`
	CarePlan       string `json:"care_plan"`
	PreviousStaff  string `json:"previous_staff"`
	CurrentStaff   string `json:"current_staff"`
}

// Updates returns the patient's completed handoffs as translated care
// updates, newest first.
func (s *FamilyService) Updates(patientID string) ([]FamilyUpdate, error) {
	if _, err := s.patientRepo.GetByPatientID(patientID); err != nil {
		return nil, err
	}

	handoffs, err := s.handoffRepo.CompletedForPatient(patientID)
	if err != nil {
		return nil, err
	}

	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}

	updates := make([]FamilyUpdate, 0, len(handoffs))
	for _, h := range handoffs {
		date := h.CreatedAt
		if t, err := time.Parse(models.TimeLayout, h.CreatedAt); err == nil {
			date = t.Format("January 2, 2006 at 3:04 PM")
		}
		updates = append(updates, FamilyUpdate{
			HandoffID:      h.ID,
			Date:           date,
			Type:           ai.PlainHandoffType(h.HandoffType),
			Priority:       ai.PlainPriority(h.Priority),
			WhatsHappening: ai.FamilyFriendly(deref(h.SBARSituation)),
			MedicalHistory: ai.FamilyFriendly(deref(h.SBARBackground)),
			CurrentStatus:  ai.FamilyFriendly(deref(h.SBARAssessment)),
			CarePlan:       ai.FamilyFriendly(deref(h.SBARRecommendation)),
			PreviousStaff:  h.FromStaff,
			CurrentStaff:   h.ToStaff,
		})
	}
	return updates, nil
}
