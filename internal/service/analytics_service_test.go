package service

import (
	"testing"
	"time"

	"eclipselink-handoff-backend/internal/models"
	"eclipselink-handoff-backend/internal/repository"
	"eclipselink-handoff-backend/pkg/utils"

	"github.com/stretchr/testify/require"
)

func initTestJWT(t *testing.T) {
	t.Helper()
	utils.InitJWT("test-secret", time.Hour)
}

func TestAnalyticsDashboard(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnalyticsService(repository.NewHandoffRepository(db))

	now := time.Now()
	score := func(q int) *int { return &q }
	duration := 120
	completedAt := models.Timestamp(now)

	handoffs := []models.Handoff{
		{PatientName: "A", PatientID: "P1", HandoffType: models.TypeShiftChange,
			Priority: models.PriorityRoutine, Status: models.StatusCompleted,
			CreatedAt: models.Timestamp(now.Add(-2 * time.Hour)), CompletedAt: &completedAt,
			FromStaff: "Dr. Sarah Johnson", Specialty: "Cardiology",
			QualityScore: score(90), CompletenessScore: score(92), CriticalElementsScore: score(88),
			RecordingDuration: &duration},
		{PatientName: "B", PatientID: "P2", HandoffType: models.TypeShiftChange,
			Priority: models.PriorityUrgent, Status: models.StatusCompleted,
			CreatedAt: models.Timestamp(now.Add(-26 * time.Hour)), CompletedAt: &completedAt,
			FromStaff: "Dr. Sarah Johnson", Specialty: "Cardiology",
			QualityScore: score(94), CompletenessScore: score(96), CriticalElementsScore: score(92),
			RecordingDuration: &duration},
		// open handoffs stay out of the completed aggregates
		{PatientName: "C", PatientID: "P3", HandoffType: models.TypeAdmission,
			Priority: models.PriorityUrgent, Status: models.StatusActive,
			CreatedAt: models.Timestamp(now.Add(-1 * time.Hour))},
	}
	require.NoError(t, db.Create(&handoffs).Error)

	data, err := svc.Dashboard()
	require.NoError(t, err)

	require.Len(t, data.HandoffsByType, 1)
	require.Equal(t, models.TypeShiftChange, data.HandoffsByType[0].Label)
	require.EqualValues(t, 2, data.HandoffsByType[0].Count)

	require.Len(t, data.HandoffsByPriority, 2)
	require.Len(t, data.HandoffsBySpecialty, 1)
	require.EqualValues(t, 2, data.HandoffsBySpecialty[0].Count)

	// all three rows were created inside the 30-day window
	var dailyTotal int64
	for _, d := range data.DailyHandoffs {
		dailyTotal += d.Count
	}
	require.EqualValues(t, 3, dailyTotal)

	require.Len(t, data.TopPerformers, 1)
	require.Equal(t, "Dr. Sarah Johnson", data.TopPerformers[0].Staff)
	require.EqualValues(t, 2, data.TopPerformers[0].Count)
	require.InDelta(t, 92.0, data.TopPerformers[0].AvgQuality, 0.01)

	require.InDelta(t, 92.0, data.AvgQuality, 0.01)
	require.InDelta(t, 94.0, data.AvgCompleteness, 0.01)
	require.InDelta(t, 90.0, data.AvgCritical, 0.01)
	require.InDelta(t, 120.0, data.AvgDuration, 0.01)
}

func TestAuditServiceViewAnnotatesTimeAgo(t *testing.T) {
	db := newTestDB(t)
	auditRepo := repository.NewAuditRepository(db)
	svc := NewAuditService(auditRepo)

	recent := models.Timestamp(time.Now().Add(-2 * time.Hour))
	require.NoError(t, auditRepo.Append(&models.AuditLog{
		HandoffID: 1, Action: models.ActionCreated, User: models.ActorSystem,
		Timestamp: recent, Details: "Handoff created for John Smith",
	}))
	require.NoError(t, auditRepo.Append(&models.AuditLog{
		HandoffID: 1, Action: models.ActionViewed, User: "RN Michael Chen",
		Timestamp: "garbage", Details: "Handoff viewed",
	}))

	entries, err := svc.View(PeriodAll, "", "", "")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byAction := map[string]AuditEntry{}
	for _, e := range entries {
		byAction[e.Action] = e
	}
	require.Equal(t, "2 hours ago", byAction[models.ActionCreated].TimeAgo)
	// malformed timestamps fall back to the raw string
	require.Equal(t, "garbage", byAction[models.ActionViewed].TimeAgo)
}

func TestFamilyUpdatesTranslateCompletedHandoffs(t *testing.T) {
	db := newTestDB(t)
	svc := NewFamilyService(
		repository.NewPatientRepository(db),
		repository.NewHandoffRepository(db),
	)

	require.NoError(t, db.Create(&models.Patient{PatientID: "P001234", Name: "John Smith"}).Error)

	situation := "History of CHF, BP 130/85."
	completedAt := "2026-08-02 09:00:00"
	handoffs := []models.Handoff{
		{PatientName: "John Smith", PatientID: "P001234", HandoffType: models.TypeShiftChange,
			Priority: models.PriorityRoutine, Status: models.StatusCompleted,
			CreatedAt: "2026-08-02 08:00:00", CompletedAt: &completedAt,
			SBARSituation: &situation},
		{PatientName: "John Smith", PatientID: "P001234", HandoffType: models.TypeAdmission,
			Priority: models.PriorityUrgent, Status: models.StatusActive,
			CreatedAt: "2026-08-03 08:00:00"},
	}
	require.NoError(t, db.Create(&handoffs).Error)

	updates, err := svc.Updates("P001234")
	require.NoError(t, err)
	require.Len(t, updates, 1, "open handoffs are not shown to families")

	update := updates[0]
	require.Equal(t, "Care Team Change", update.Type)
	require.Equal(t, "🟢 Routine", update.Priority)
	require.Contains(t, update.WhatsHappening, "heart failure")
	require.Contains(t, update.WhatsHappening, "blood pressure")
	require.NotContains(t, update.WhatsHappening, "CHF")
	require.Equal(t, "No information available.", update.MedicalHistory)
}

func TestFamilyUpdatesUnknownPatient(t *testing.T) {
	db := newTestDB(t)
	svc := NewFamilyService(
		repository.NewPatientRepository(db),
		repository.NewHandoffRepository(db),
	)

	_, err := svc.Updates("P999999")
	require.Error(t, err)
}

func TestLoginResolvesSeededProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	initTestJWT(t)

	require.NoError(t, db.Create(&models.User{
		Name: "Dr. David Kim", Email: "david.kim@hospital.com", Role: "Physician",
	}).Error)

	result, err := svc.Login("david.kim@hospital.com", "anything-goes")
	require.NoError(t, err)
	require.Equal(t, "Dr. David Kim", result.User.Name)
	require.NotEmpty(t, result.AccessToken)
}

func TestLoginFallsBackToDemoProfile(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(repository.NewUserRepository(db))
	initTestJWT(t)

	result, err := svc.Login("", "")
	require.NoError(t, err)
	require.Equal(t, "Dr. Sarah Johnson", result.User.Name)
	require.Equal(t, "demo@eclipselink.ai", result.User.Email)
	require.Equal(t, "Registered Nurse", result.User.Role)
}
