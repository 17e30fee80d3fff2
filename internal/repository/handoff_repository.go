package repository

import (
	"strings"

	"eclipselink-handoff-backend/internal/models"

	"gorm.io/gorm"
)

// FilterAll is the sentinel value meaning "do not filter on this field".
const FilterAll = "all"

// HandoffFilter describes one search over the handoffs table. Query matches a
// case-insensitive substring across patient_name, patient_id, from_staff and
// to_staff; each remaining field adds an equality predicate unless it is
// empty or FilterAll. All active predicates are ANDed.
type HandoffFilter struct {
	Query     string
	Type      string
	Priority  string
	Status    string
	Specialty string
}

type HandoffRepository struct {
	db *gorm.DB
}

func NewHandoffRepository(db *gorm.DB) *HandoffRepository {
	return &HandoffRepository{db: db}
}

func (r *HandoffRepository) Create(handoff *models.Handoff) error {
	return r.db.Create(handoff).Error
}

func (r *HandoffRepository) GetByID(id uint) (*models.Handoff, error) {
	var handoff models.Handoff
	if err := r.db.First(&handoff, id).Error; err != nil {
		return nil, err
	}
	return &handoff, nil
}

func (r *HandoffRepository) Update(handoff *models.Handoff) error {
	return r.db.Save(handoff).Error
}

// Search applies the filter and returns matches newest-first. There is no
// pagination; the demo dataset is small and the UI renders everything.
func (r *HandoffRepository) Search(filter HandoffFilter) ([]models.Handoff, error) {
	tx := r.db.Model(&models.Handoff{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		pattern := "%" + strings.ToLower(q) + "%"
		tx = tx.Where(
			"LOWER(patient_name) LIKE ? OR LOWER(patient_id) LIKE ? OR LOWER(from_staff) LIKE ? OR LOWER(to_staff) LIKE ?",
			pattern, pattern, pattern, pattern)
	}
	if active(filter.Type) {
		tx = tx.Where("handoff_type = ?", filter.Type)
	}
	if active(filter.Priority) {
		tx = tx.Where("priority = ?", filter.Priority)
	}
	if active(filter.Status) {
		tx = tx.Where("status = ?", filter.Status)
	}
	if active(filter.Specialty) {
		tx = tx.Where("specialty = ?", filter.Specialty)
	}

	var handoffs []models.Handoff
	err := tx.Order("created_at DESC").Find(&handoffs).Error
	return handoffs, err
}

func active(v string) bool {
	return v != "" && v != FilterAll
}

// Recent returns the newest handoffs up to limit.
func (r *HandoffRepository) Recent(limit int) ([]models.Handoff, error) {
	var handoffs []models.Handoff
	err := r.db.Order("created_at DESC").Limit(limit).Find(&handoffs).Error
	return handoffs, err
}

// Urgent returns the newest handoffs with elevated priority up to limit,
// regardless of status.
func (r *HandoffRepository) Urgent(limit int) ([]models.Handoff, error) {
	var handoffs []models.Handoff
	err := r.db.
		Where("priority IN ?", []string{models.PriorityUrgent, models.PriorityEmergent}).
		Order("created_at DESC").
		Limit(limit).
		Find(&handoffs).Error
	return handoffs, err
}

// HistoryForPatient returns every handoff recorded for the given external
// patient ID, newest first.
func (r *HandoffRepository) HistoryForPatient(patientID string) ([]models.Handoff, error) {
	var handoffs []models.Handoff
	err := r.db.
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&handoffs).Error
	return handoffs, err
}

// CompletedForPatient returns completed handoffs for the family portal,
// newest first.
func (r *HandoffRepository) CompletedForPatient(patientID string) ([]models.Handoff, error) {
	var handoffs []models.Handoff
	err := r.db.
		Where("patient_id = ? AND status = ?", patientID, models.StatusCompleted).
		Order("created_at DESC").
		Find(&handoffs).Error
	return handoffs, err
}

// PendingGeneration returns open handoffs that have a transcription but no
// SBAR yet. The background worker drains this set.
func (r *HandoffRepository) PendingGeneration(limit int) ([]models.Handoff, error) {
	var handoffs []models.Handoff
	err := r.db.
		Where("status IN ?", []string{models.StatusPending, models.StatusActive}).
		Where("transcription IS NOT NULL").
		Where("sbar_situation IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&handoffs).Error
	return handoffs, err
}

func (r *HandoffRepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Handoff{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (r *HandoffRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Handoff{}).Count(&count).Error
	return count, err
}

// GroupCount is one bucket of a grouped aggregate.
type GroupCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DailyCount is the number of handoffs created on one calendar day.
type DailyCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// ScoreAverages holds the mean of the three SBAR scores and the recording
// duration across completed handoffs.
type ScoreAverages struct {
	Quality          float64 `json:"quality"`
	Completeness     float64 `json:"completeness"`
	CriticalElements float64 `json:"critical_elements"`
	Duration         float64 `json:"duration_seconds"`
}

func (r *HandoffRepository) completedTx() *gorm.DB {
	return r.db.Model(&models.Handoff{}).Where("status = ?", models.StatusCompleted)
}

// CompletedByType counts completed handoffs grouped by handoff_type.
func (r *HandoffRepository) CompletedByType() ([]GroupCount, error) {
	var rows []GroupCount
	err := r.completedTx().
		Select("handoff_type AS label, COUNT(*) AS count").
		Group("handoff_type").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// CompletedByPriority counts completed handoffs grouped by priority.
func (r *HandoffRepository) CompletedByPriority() ([]GroupCount, error) {
	var rows []GroupCount
	err := r.completedTx().
		Select("priority AS label, COUNT(*) AS count").
		Group("priority").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// CompletedBySpecialty counts completed handoffs grouped by specialty,
// capped at the ten largest buckets.
func (r *HandoffRepository) CompletedBySpecialty() ([]GroupCount, error) {
	var rows []GroupCount
	err := r.completedTx().
		Select("specialty AS label, COUNT(*) AS count").
		Group("specialty").
		Order("count DESC").
		Limit(10).
		Scan(&rows).Error
	return rows, err
}

// DailyCounts buckets handoffs created on or after the cutoff by calendar
// day. The substr works because timestamps are fixed-width text.
func (r *HandoffRepository) DailyCounts(cutoff string) ([]DailyCount, error) {
	var rows []DailyCount
	err := r.db.Model(&models.Handoff{}).
		Select("substr(created_at, 1, 10) AS day, COUNT(*) AS count").
		Where("created_at >= ?", cutoff).
		Group("day").
		Order("day").
		Scan(&rows).Error
	return rows, err
}

// StaffPerformance aggregates completed handoffs per sending clinician.
type StaffPerformance struct {
	Staff      string  `json:"staff"`
	Count      int64   `json:"count"`
	AvgQuality float64 `json:"avg_quality"`
}

// TopPerformers ranks sending clinicians by completed handoff count, capped
// at ten.
func (r *HandoffRepository) TopPerformers() ([]StaffPerformance, error) {
	var rows []StaffPerformance
	err := r.completedTx().
		Where("from_staff != ''").
		Select("from_staff AS staff, COUNT(*) AS count, AVG(quality_score) AS avg_quality").
		Group("from_staff").
		Order("count DESC").
		Limit(10).
		Scan(&rows).Error
	return rows, err
}

// HourlyCounts buckets completed handoffs by hour of day. The substr reads
// the fixed-width hour field of the stored timestamp.
func (r *HandoffRepository) HourlyCounts() ([]GroupCount, error) {
	var rows []GroupCount
	err := r.completedTx().
		Select("substr(created_at, 12, 2) AS label, COUNT(*) AS count").
		Group("label").
		Order("label").
		Scan(&rows).Error
	return rows, err
}

// AverageScores computes mean quality, completeness, critical-element scores
// and recording duration over completed handoffs that have scores.
func (r *HandoffRepository) AverageScores() (*ScoreAverages, error) {
	var avg ScoreAverages
	err := r.completedTx().
		Where("quality_score IS NOT NULL").
		Select("AVG(quality_score) AS quality, AVG(completeness_score) AS completeness, " +
			"AVG(critical_elements_score) AS critical_elements, AVG(recording_duration) AS duration").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	return &avg, nil
}

// AverageQuality returns the mean quality score over scored handoffs. Used
// by the assistant's stats reply.
func (r *HandoffRepository) AverageQuality() (float64, error) {
	var avg struct{ Quality float64 }
	err := r.db.Model(&models.Handoff{}).
		Where("quality_score IS NOT NULL").
		Select("AVG(quality_score) AS quality").
		Scan(&avg).Error
	return avg.Quality, err
}
