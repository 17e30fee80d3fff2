package repository

import (
	"strings"

	"eclipselink-handoff-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create inserts a new patient. The patient_id uniqueness check runs before
// the insert so the caller gets ErrDuplicatePatient instead of a raw driver
// constraint error.
func (r *PatientRepository) Create(patient *models.Patient) error {
	var count int64
	if err := r.db.Model(&models.Patient{}).
		Where("patient_id = ?", patient.PatientID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicatePatient
	}
	return r.db.Create(patient).Error
}

func (r *PatientRepository) GetByPatientID(patientID string) (*models.Patient, error) {
	var patient models.Patient
	if err := r.db.Where("patient_id = ?", patientID).First(&patient).Error; err != nil {
		return nil, err
	}
	return &patient, nil
}

// List returns all patients ordered by name.
func (r *PatientRepository) List() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("name").Find(&patients).Error
	return patients, err
}

// First returns the oldest patient records up to limit. The assistant quotes
// these in its medication summary.
func (r *PatientRepository) First(limit int) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Order("id").Limit(limit).Find(&patients).Error
	return patients, err
}

// WithAllergies returns patients with a documented allergy entry, up to limit.
func (r *PatientRepository) WithAllergies(limit int) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.
		Where("allergies != ''").
		Order("id").
		Limit(limit).
		Find(&patients).Error
	return patients, err
}

// Search matches a case-insensitive substring against name, patient_id and
// conditions. An empty query behaves like List.
func (r *PatientRepository) Search(query string) ([]models.Patient, error) {
	if strings.TrimSpace(query) == "" {
		return r.List()
	}
	pattern := "%" + strings.ToLower(query) + "%"
	var patients []models.Patient
	err := r.db.
		Where("LOWER(name) LIKE ? OR LOWER(patient_id) LIKE ? OR LOWER(conditions) LIKE ?",
			pattern, pattern, pattern).
		Order("name").
		Find(&patients).Error
	return patients, err
}
