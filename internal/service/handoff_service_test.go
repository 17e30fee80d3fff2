package service

import (
	"path/filepath"
	"testing"

	"eclipselink-handoff-backend/internal/ai"
	"eclipselink-handoff-backend/internal/models"
	"eclipselink-handoff-backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Patient{},
		&models.Handoff{},
		&models.AuditLog{},
		&models.User{},
	))
	return db
}

func newHandoffService(t *testing.T) (*HandoffService, *repository.HandoffRepository, *repository.AuditRepository) {
	t.Helper()
	db := newTestDB(t)
	handoffRepo := repository.NewHandoffRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	svc := NewHandoffService(handoffRepo, auditRepo, ai.NewTemplateGenerator())
	return svc, handoffRepo, auditRepo
}

func TestCreateWithoutTranscript(t *testing.T) {
	svc, _, auditRepo := newHandoffService(t)

	handoff, err := svc.Create(CreateHandoffInput{
		PatientName: "John Smith",
		PatientID:   "P001234",
		HandoffType: models.TypeShiftChange,
		Priority:    models.PriorityRoutine,
	}, "RN Michael Chen")
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, handoff.Status)
	require.False(t, handoff.HasSBAR())
	require.Nil(t, handoff.CompletedAt)

	trail, err := auditRepo.TrailForHandoff(handoff.ID)
	require.NoError(t, err)
	require.Len(t, trail, 1)
	require.Equal(t, models.ActionCreated, trail[0].Action)
	require.Equal(t, models.ActorSystem, trail[0].User)
	require.Equal(t, "Handoff created for John Smith", trail[0].Details)
}

func TestLifecycleEmitsCanonicalAuditShape(t *testing.T) {
	svc, _, auditRepo := newHandoffService(t)

	handoff, err := svc.Create(CreateHandoffInput{
		PatientName: "Jane Doe",
		PatientID:   "P001235",
		HandoffType: models.TypeTransfer,
		Priority:    models.PriorityUrgent,
		Transcript:  "Patient has sulfa allergy, on albuterol, BP 135/88",
	}, "RN Jennifer Lopez")
	require.NoError(t, err)

	_, err = svc.Generate(handoff.ID)
	require.NoError(t, err)
	_, err = svc.Complete(handoff.ID, "RN Jennifer Lopez")
	require.NoError(t, err)

	trail, err := auditRepo.TrailForHandoff(handoff.ID)
	require.NoError(t, err)
	require.Len(t, trail, 5)

	actions := make([]string, len(trail))
	for i, e := range trail {
		actions[i] = e.Action
	}
	require.Equal(t, []string{
		models.ActionCreated,
		models.ActionVoiceUploaded,
		models.ActionTranscribed,
		models.ActionSBARGenerated,
		models.ActionCompleted,
	}, actions)
	require.Equal(t, "RN Jennifer Lopez", trail[1].User)
	require.Equal(t, models.ActorAIWorker, trail[3].User)
}

func TestGenerateWritesSBARAndScoresTogether(t *testing.T) {
	svc, handoffRepo, _ := newHandoffService(t)

	created, err := svc.Create(CreateHandoffInput{
		PatientName: "Jane Doe",
		PatientID:   "P001235",
		HandoffType: models.TypeTransfer,
		Priority:    models.PriorityUrgent,
		Transcript:  "Patient resting comfortably.",
	}, "RN Jennifer Lopez")
	require.NoError(t, err)

	handoff, err := svc.Generate(created.ID)
	require.NoError(t, err)
	require.True(t, handoff.HasSBAR())
	require.Equal(t, models.StatusActive, handoff.Status)

	// transcript mentions nothing critical, so the reduced tier applies
	require.Equal(t, 75, *handoff.QualityScore)
	require.Equal(t, 70, *handoff.CompletenessScore)
	require.Equal(t, 65, *handoff.CriticalElementsScore)

	stored, err := handoffRepo.GetByID(created.ID)
	require.NoError(t, err)
	require.True(t, stored.HasSBAR())
}

func TestCompleteStampsCompletedAt(t *testing.T) {
	svc, _, _ := newHandoffService(t)

	created, err := svc.Create(CreateHandoffInput{
		PatientName: "John Smith",
		PatientID:   "P001234",
		HandoffType: models.TypeDischarge,
		Priority:    models.PriorityRoutine,
	}, "Dr. David Kim")
	require.NoError(t, err)

	handoff, err := svc.Complete(created.ID, "Dr. David Kim")
	require.NoError(t, err)
	require.Equal(t, models.StatusCompleted, handoff.Status)
	require.NotNil(t, handoff.CompletedAt)
	require.GreaterOrEqual(t, *handoff.CompletedAt, handoff.CreatedAt)
}

func TestEditSBARIsPartial(t *testing.T) {
	svc, _, auditRepo := newHandoffService(t)

	created, err := svc.Create(CreateHandoffInput{
		PatientName: "John Smith",
		PatientID:   "P001234",
		HandoffType: models.TypeShiftChange,
		Priority:    models.PriorityRoutine,
		Transcript:  "Stable overnight.",
	}, "RN Michael Chen")
	require.NoError(t, err)
	_, err = svc.Generate(created.ID)
	require.NoError(t, err)

	newSituation := "Updated situation text."
	handoff, err := svc.EditSBAR(created.ID, SBARUpdate{Situation: &newSituation}, "RN Michael Chen")
	require.NoError(t, err)
	require.Equal(t, newSituation, *handoff.SBARSituation)
	require.NotEmpty(t, *handoff.SBARBackground, "untouched sections survive the edit")

	trail, err := auditRepo.TrailForHandoff(created.ID)
	require.NoError(t, err)
	require.Equal(t, models.ActionEdited, trail[len(trail)-1].Action)
	require.Equal(t, "RN Michael Chen", trail[len(trail)-1].User)
}

func TestGetLogsView(t *testing.T) {
	svc, _, auditRepo := newHandoffService(t)

	created, err := svc.Create(CreateHandoffInput{
		PatientName: "John Smith",
		PatientID:   "P001234",
		HandoffType: models.TypeShiftChange,
		Priority:    models.PriorityRoutine,
	}, "RN Michael Chen")
	require.NoError(t, err)

	_, err = svc.Get(created.ID, "Dr. Emily Roberts")
	require.NoError(t, err)

	trail, err := auditRepo.TrailForHandoff(created.ID)
	require.NoError(t, err)
	require.Equal(t, models.ActionViewed, trail[len(trail)-1].Action)
	require.Equal(t, "Dr. Emily Roberts", trail[len(trail)-1].User)
}

func TestWorkerProcessesPendingHandoff(t *testing.T) {
	db := newTestDB(t)
	handoffRepo := repository.NewHandoffRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	handoffService := NewHandoffService(handoffRepo, auditRepo, ai.NewTemplateGenerator())
	worker := NewWorkerService(handoffRepo, handoffService)

	created, err := handoffService.Create(CreateHandoffInput{
		PatientName: "Maria Garcia",
		PatientID:   "P001237",
		HandoffType: models.TypeProcedure,
		Priority:    models.PriorityRoutine,
		Transcript:  "Latex allergy, on insulin pump, BG 158",
	}, "RN Robert Taylor")
	require.NoError(t, err)

	worker.processPending()

	handoff, err := handoffRepo.GetByID(created.ID)
	require.NoError(t, err)
	require.True(t, handoff.HasSBAR())
	require.Equal(t, models.StatusActive, handoff.Status)

	// a second pass finds nothing left to do
	pending, err := handoffRepo.PendingGeneration(10)
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestTranslateHandoffSBAR(t *testing.T) {
	svc, _, _ := newHandoffService(t)

	situation := "patient with stable vital signs"
	handoff := &models.Handoff{SBARSituation: &situation}

	translated := svc.Translate(handoff, "es")
	require.Contains(t, translated.Situation, "paciente")
	require.Contains(t, translated.Situation, "signos vitales")
	require.Empty(t, translated.Background)
}
