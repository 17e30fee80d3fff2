package models

// Audit log action values
const (
	ActionCreated       = "created"
	ActionVoiceUploaded = "voice_uploaded"
	ActionTranscribed   = "transcribed"
	ActionSBARGenerated = "sbar_generated"
	ActionCompleted     = "completed"
	ActionViewed        = "viewed"
	ActionEdited        = "edited"
	ActionExported      = "exported"
)

// System actor names used in audit entries
const (
	ActorSystem   = "System"
	ActorAIWorker = "AI Worker"
)

// AuditLog represents the audit_logs table
// Used for HIPAA compliance tracking; entries are append-only and are never
// mutated or deleted after insert.
type AuditLog struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	HandoffID uint   `gorm:"index;not null" json:"handoff_id"`
	Action    string `gorm:"size:50;not null" json:"action"`
	User      string `gorm:"size:255;not null" json:"user"`
	Timestamp string `gorm:"size:25;index" json:"timestamp"`
	Details   string `gorm:"type:text" json:"details"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
