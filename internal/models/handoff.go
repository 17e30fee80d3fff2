package models

// Handoff type values
const (
	TypeShiftChange = "shift_change"
	TypeTransfer    = "transfer"
	TypeAdmission   = "admission"
	TypeDischarge   = "discharge"
	TypeProcedure   = "procedure"
)

// Priority values
const (
	PriorityRoutine  = "routine"
	PriorityUrgent   = "urgent"
	PriorityEmergent = "emergent"
)

// Status values
const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Handoff represents the handoffs table
// Timestamps are stored as "2006-01-02 15:04:05" strings so that
// lexicographic ordering matches chronological ordering.
// patient_name is a denormalized copy taken at creation time and is not
// back-filled if the patient record changes.
// The four SBAR fields and the three scores are either all null (not yet
// processed) or all populated.
type Handoff struct {
	ID                    uint    `gorm:"primaryKey" json:"id"`
	PatientName           string  `gorm:"size:255" json:"patient_name"`
	PatientID             string  `gorm:"size:50;index" json:"patient_id"`
	HandoffType           string  `gorm:"size:30" json:"handoff_type"`
	Priority              string  `gorm:"size:20" json:"priority"`
	Status                string  `gorm:"size:20;index" json:"status"`
	CreatedAt             string  `gorm:"size:25;index" json:"created_at"`
	CompletedAt           *string `gorm:"size:25" json:"completed_at"`
	FromStaff             string  `gorm:"size:255" json:"from_staff"`
	ToStaff               string  `gorm:"size:255" json:"to_staff"`
	Specialty             string  `gorm:"size:100" json:"specialty"`
	SBARSituation         *string `gorm:"column:sbar_situation;type:text" json:"sbar_situation"`
	SBARBackground        *string `gorm:"column:sbar_background;type:text" json:"sbar_background"`
	SBARAssessment        *string `gorm:"column:sbar_assessment;type:text" json:"sbar_assessment"`
	SBARRecommendation    *string `gorm:"column:sbar_recommendation;type:text" json:"sbar_recommendation"`
	RecordingDuration     *int    `gorm:"column:recording_duration" json:"recording_duration"`
	Transcription         *string `gorm:"type:text" json:"transcription,omitempty"`
	QualityScore          *int    `gorm:"column:quality_score" json:"quality_score"`
	CompletenessScore     *int    `gorm:"column:completeness_score" json:"completeness_score"`
	CriticalElementsScore *int    `gorm:"column:critical_elements_score" json:"critical_elements_score"`
}

// TableName specifies the table name for Handoff model
func (Handoff) TableName() string {
	return "handoffs"
}

// HasSBAR reports whether the SBAR report has been generated
func (h *Handoff) HasSBAR() bool {
	return h.SBARSituation != nil && h.SBARBackground != nil &&
		h.SBARAssessment != nil && h.SBARRecommendation != nil
}
