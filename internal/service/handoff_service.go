package service

import (
	"log"
	"time"

	"eclipselink-handoff-backend/internal/ai"
	"eclipselink-handoff-backend/internal/models"
	"eclipselink-handoff-backend/internal/pdf"
	"eclipselink-handoff-backend/internal/repository"
)

type HandoffService struct {
	handoffRepo *repository.HandoffRepository
	auditRepo   *repository.AuditRepository
	generator   ai.Generator
}

func NewHandoffService(handoffRepo *repository.HandoffRepository, auditRepo *repository.AuditRepository, generator ai.Generator) *HandoffService {
	return &HandoffService{
		handoffRepo: handoffRepo,
		auditRepo:   auditRepo,
		generator:   generator,
	}
}

// CreateHandoffInput carries the fields of a new handoff. Transcript is
// optional; when present the handoff enters the pipeline with its voice
// events already logged, matching the shape of processed records.
type CreateHandoffInput struct {
	PatientName       string
	PatientID         string
	HandoffType       string
	Priority          string
	FromStaff         string
	ToStaff           string
	Specialty         string
	Transcript        string
	RecordingDuration *int
}

// Create inserts a pending handoff and logs its creation. When a transcript
// is supplied, the voice_uploaded and transcribed events follow so live rows
// carry the same audit shape as processed ones.
func (s *HandoffService) Create(input CreateHandoffInput, actingUser string) (*models.Handoff, error) {
	now := time.Now()
	handoff := &models.Handoff{
		PatientName: input.PatientName,
		PatientID:   input.PatientID,
		HandoffType: input.HandoffType,
		Priority:    input.Priority,
		Status:      models.StatusPending,
		CreatedAt:   models.Timestamp(now),
		FromStaff:   input.FromStaff,
		ToStaff:     input.ToStaff,
		Specialty:   input.Specialty,
	}
	if input.Transcript != "" {
		handoff.Transcription = &input.Transcript
		handoff.RecordingDuration = input.RecordingDuration
	}

	if err := s.handoffRepo.Create(handoff); err != nil {
		return nil, err
	}

	s.log(handoff.ID, models.ActionCreated, models.ActorSystem, now,
		"Handoff created for "+handoff.PatientName)
	if input.Transcript != "" {
		s.log(handoff.ID, models.ActionVoiceUploaded, actingUser, now, "Voice recording uploaded")
		s.log(handoff.ID, models.ActionTranscribed, models.ActorAIWorker, now, "Audio transcribed")
	}

	return handoff, nil
}

// Generate produces the SBAR report and scores for a handoff. The four
// sections and three scores are written together; a pending handoff moves to
// active.
func (s *HandoffService) Generate(id uint) (*models.Handoff, error) {
	handoff, err := s.handoffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	transcript := ""
	if handoff.Transcription != nil {
		transcript = *handoff.Transcription
	}

	sbar := s.generator.GenerateSBAR(handoff.PatientName, handoff.PatientID, transcript)
	scores := s.generator.Score(s.generator.DetectMissingElements(transcript))

	handoff.SBARSituation = &sbar.Situation
	handoff.SBARBackground = &sbar.Background
	handoff.SBARAssessment = &sbar.Assessment
	handoff.SBARRecommendation = &sbar.Recommendation
	handoff.QualityScore = &scores.Quality
	handoff.CompletenessScore = &scores.Completeness
	handoff.CriticalElementsScore = &scores.CriticalElements
	if handoff.Status == models.StatusPending {
		handoff.Status = models.StatusActive
	}

	if err := s.handoffRepo.Update(handoff); err != nil {
		return nil, err
	}

	s.log(handoff.ID, models.ActionSBARGenerated, models.ActorAIWorker, time.Now(), "SBAR report generated")
	return handoff, nil
}

// SBARUpdate holds a partial edit of the four report sections; nil fields
// are left untouched.
type SBARUpdate struct {
	Situation      *string
	Background     *string
	Assessment     *string
	Recommendation *string
}

// EditSBAR applies a partial update to the report sections and logs the edit.
func (s *HandoffService) EditSBAR(id uint, update SBARUpdate, actingUser string) (*models.Handoff, error) {
	handoff, err := s.handoffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Situation != nil {
		handoff.SBARSituation = update.Situation
	}
	if update.Background != nil {
		handoff.SBARBackground = update.Background
	}
	if update.Assessment != nil {
		handoff.SBARAssessment = update.Assessment
	}
	if update.Recommendation != nil {
		handoff.SBARRecommendation = update.Recommendation
	}

	if err := s.handoffRepo.Update(handoff); err != nil {
		return nil, err
	}

	s.log(handoff.ID, models.ActionEdited, actingUser, time.Now(), "SBAR report edited")
	return handoff, nil
}

// Complete marks a handoff completed and stamps completed_at.
func (s *HandoffService) Complete(id uint, actingUser string) (*models.Handoff, error) {
	handoff, err := s.handoffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	completedAt := models.Timestamp(now)
	handoff.Status = models.StatusCompleted
	handoff.CompletedAt = &completedAt

	if err := s.handoffRepo.Update(handoff); err != nil {
		return nil, err
	}

	s.log(handoff.ID, models.ActionCompleted, actingUser, now, "Handoff completed")
	return handoff, nil
}

// Get fetches one handoff and records the view.
func (s *HandoffService) Get(id uint, actingUser string) (*models.Handoff, error) {
	handoff, err := s.handoffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	s.log(handoff.ID, models.ActionViewed, actingUser, time.Now(), "Handoff viewed")
	return handoff, nil
}

// TranslatedSBAR is a handoff's report rendered in a target language.
type TranslatedSBAR struct {
	Situation      string `json:"situation"`
	Background     string `json:"background"`
	Assessment     string `json:"assessment"`
	Recommendation string `json:"recommendation"`
}

// Translate renders the handoff's SBAR in the requested language. English
// and unknown languages return the stored text unchanged.
func (s *HandoffService) Translate(handoff *models.Handoff, lang string) TranslatedSBAR {
	deref := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	return TranslatedSBAR{
		Situation:      ai.TranslateSBAR(deref(handoff.SBARSituation), lang),
		Background:     ai.TranslateSBAR(deref(handoff.SBARBackground), lang),
		Assessment:     ai.TranslateSBAR(deref(handoff.SBARAssessment), lang),
		Recommendation: ai.TranslateSBAR(deref(handoff.SBARRecommendation), lang),
	}
}

// ExportPDF renders the handoff as a PDF and records the export.
func (s *HandoffService) ExportPDF(id uint, actingUser string) ([]byte, error) {
	handoff, err := s.handoffRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	data, err := pdf.GenerateSBARPDF(handoff)
	if err != nil {
		return nil, err
	}

	s.log(handoff.ID, models.ActionExported, actingUser, time.Now(), "SBAR report exported as PDF")
	return data, nil
}

// Search lists handoffs matching the filter, newest first.
func (s *HandoffService) Search(filter repository.HandoffFilter) ([]models.Handoff, error) {
	return s.handoffRepo.Search(filter)
}

// Trail returns the audit history of one handoff in chronological order.
func (s *HandoffService) Trail(id uint) ([]models.AuditLog, error) {
	if _, err := s.handoffRepo.GetByID(id); err != nil {
		return nil, err
	}
	return s.auditRepo.TrailForHandoff(id)
}

// log appends an audit entry. Audit writes ride alongside the handoff update
// without a shared transaction; a failed append leaves the handoff change in
// place.
func (s *HandoffService) log(handoffID uint, action, user string, at time.Time, details string) {
	err := s.auditRepo.Append(&models.AuditLog{
		HandoffID: handoffID,
		Action:    action,
		User:      user,
		Timestamp: models.Timestamp(at),
		Details:   details,
	})
	if err != nil {
		log.Printf("Error writing audit entry %s for handoff %d: %v", action, handoffID, err)
	}
}
