package service

import (
	"testing"

	"eclipselink-handoff-backend/internal/models"
	"eclipselink-handoff-backend/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAssistant(t *testing.T) (*AssistantService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAssistantService(
		repository.NewPatientRepository(db),
		repository.NewHandoffRepository(db),
	), db
}

func TestAssistantMedicationReply(t *testing.T) {
	svc, db := newAssistant(t)
	require.NoError(t, db.Create(&models.Patient{
		PatientID: "P001234", Name: "John Smith",
		Medications: "Metformin 1000mg BID", Allergies: "Penicillin (rash)",
	}).Error)

	reply, err := svc.Reply("What medications is John Smith on?")
	require.NoError(t, err)
	require.Contains(t, reply, "John Smith")
	require.Contains(t, reply, "Metformin 1000mg BID")
}

func TestAssistantAllergyReply(t *testing.T) {
	svc, db := newAssistant(t)
	require.NoError(t, db.Create(&models.Patient{
		PatientID: "P001235", Name: "Jane Doe", Allergies: "Sulfa drugs (anaphylaxis)",
	}).Error)

	reply, err := svc.Reply("Does any patient have an allergy?")
	require.NoError(t, err)
	require.Contains(t, reply, "Jane Doe")
	require.Contains(t, reply, "Sulfa drugs (anaphylaxis)")
}

func TestAssistantRecentHandoffsReply(t *testing.T) {
	svc, db := newAssistant(t)
	require.NoError(t, db.Create(&models.Handoff{
		PatientName: "Robert Johnson", PatientID: "P001236",
		HandoffType: models.TypeAdmission, Priority: models.PriorityUrgent,
		Status: models.StatusCompleted, CreatedAt: "2026-08-01 08:00:00",
		FromStaff: "Dr. Emily Roberts",
	}).Error)

	reply, err := svc.Reply("Show me recent handoffs")
	require.NoError(t, err)
	require.Contains(t, reply, "Robert Johnson")
	require.Contains(t, reply, "Admission")
	require.Contains(t, reply, "Dr. Emily Roberts")
}

func TestAssistantStatsReply(t *testing.T) {
	svc, db := newAssistant(t)
	quality := 92
	require.NoError(t, db.Create(&models.Handoff{
		PatientName: "John Smith", PatientID: "P001234",
		Status: models.StatusCompleted, CreatedAt: "2026-08-01 08:00:00",
		QualityScore: &quality,
	}).Error)

	reply, err := svc.Reply("What are today's statistics?")
	require.NoError(t, err)
	require.Contains(t, reply, "Completed Handoffs: **1**")
	require.Contains(t, reply, "92.0%")
}

func TestAssistantUrgentReply(t *testing.T) {
	svc, db := newAssistant(t)

	reply, err := svc.Reply("Any urgent handoffs?")
	require.NoError(t, err)
	require.Equal(t, "✅ No urgent or emergency handoffs at this time.", reply)

	require.NoError(t, db.Create(&models.Handoff{
		PatientName: "David Brown", PatientID: "P001240",
		HandoffType: models.TypeTransfer, Priority: models.PriorityEmergent,
		Status: models.StatusActive, CreatedAt: "2026-08-01 08:00:00",
	}).Error)

	reply, err = svc.Reply("Any emergency handoffs?")
	require.NoError(t, err)
	require.Contains(t, reply, "EMERGENT")
	require.Contains(t, reply, "David Brown")
}

func TestAssistantPatternPrecedence(t *testing.T) {
	svc, db := newAssistant(t)
	require.NoError(t, db.Create(&models.Patient{
		PatientID: "P001234", Name: "John Smith", Medications: "Aspirin 81mg daily",
	}).Error)

	// "med" outranks "urgent" because medication checks run first
	reply, err := svc.Reply("urgent question about meds")
	require.NoError(t, err)
	require.Contains(t, reply, "medications for our patients")
}

func TestAssistantGuidesAndFallback(t *testing.T) {
	svc, _ := newAssistant(t)

	reply, err := svc.Reply("What should be included in an SBAR?")
	require.NoError(t, err)
	require.Contains(t, reply, "SBAR Format Guide")

	reply, err = svc.Reply("How do I create a handoff?")
	require.NoError(t, err)
	require.Contains(t, reply, "How to Create a Handoff")

	reply, err = svc.Reply("tell me a joke")
	require.NoError(t, err)
	require.Contains(t, reply, "I'm not sure I understand that question")
	require.Contains(t, reply, "Try asking:")
}
