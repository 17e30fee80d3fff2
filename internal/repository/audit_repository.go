package repository

import (
	"strings"

	"eclipselink-handoff-backend/internal/models"

	"gorm.io/gorm"
)

// AuditFilter narrows the audit trail listing. Since is an inclusive
// timestamp cutoff in the storage layout; Action and User use FilterAll
// semantics; Details matches a case-insensitive substring.
type AuditFilter struct {
	Since   string
	Action  string
	User    string
	Details string
}

// AuditSummary is the stat block shown above the audit trail.
type AuditSummary struct {
	EventsLast24h   int64 `json:"events_last_24h"`
	HandoffsLast24h int64 `json:"handoffs_last_24h"`
	ActiveUsers     int64 `json:"active_users"`
	CompletedToday  int64 `json:"completed_today"`
}

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append inserts one entry. Entries are never updated or deleted.
func (r *AuditRepository) Append(entry *models.AuditLog) error {
	return r.db.Create(entry).Error
}

// TrailForHandoff returns the full event history of one handoff in
// chronological order.
func (r *AuditRepository) TrailForHandoff(handoffID uint) ([]models.AuditLog, error) {
	var entries []models.AuditLog
	err := r.db.
		Where("handoff_id = ?", handoffID).
		Order("timestamp").
		Find(&entries).Error
	return entries, err
}

// View lists matching entries newest-first, capped at 100 rows.
func (r *AuditRepository) View(filter AuditFilter) ([]models.AuditLog, error) {
	tx := r.db.Model(&models.AuditLog{})

	if filter.Since != "" {
		tx = tx.Where("timestamp >= ?", filter.Since)
	}
	if active(filter.Action) {
		tx = tx.Where("action = ?", filter.Action)
	}
	if active(filter.User) {
		tx = tx.Where("user = ?", filter.User)
	}
	if d := strings.TrimSpace(filter.Details); d != "" {
		tx = tx.Where("LOWER(details) LIKE ?", "%"+strings.ToLower(d)+"%")
	}

	var entries []models.AuditLog
	err := tx.Order("timestamp DESC").Limit(100).Find(&entries).Error
	return entries, err
}

// Summary computes the stat block over the trailing 24 hours; active users
// exclude the system actors.
func (r *AuditRepository) Summary(since24h string) (*AuditSummary, error) {
	var s AuditSummary

	if err := r.db.Model(&models.AuditLog{}).
		Where("timestamp >= ?", since24h).
		Count(&s.EventsLast24h).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.AuditLog{}).
		Where("timestamp >= ?", since24h).
		Distinct("handoff_id").
		Count(&s.HandoffsLast24h).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.AuditLog{}).
		Where("user NOT IN ?", []string{models.ActorSystem, models.ActorAIWorker}).
		Distinct("user").
		Count(&s.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.AuditLog{}).
		Where("action = ? AND timestamp >= ?", models.ActionCompleted, since24h).
		Count(&s.CompletedToday).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Actions returns the distinct action values present in the log, for filter
// dropdowns.
func (r *AuditRepository) Actions() ([]string, error) {
	var actions []string
	err := r.db.Model(&models.AuditLog{}).
		Distinct("action").
		Order("action").
		Pluck("action", &actions).Error
	return actions, err
}

// Users returns the distinct actor names present in the log.
func (r *AuditRepository) Users() ([]string, error) {
	var users []string
	err := r.db.Model(&models.AuditLog{}).
		Distinct("user").
		Order("user").
		Pluck("user", &users).Error
	return users, err
}
