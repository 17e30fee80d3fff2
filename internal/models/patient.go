package models

// Patient represents the patients table
// patient_id is the external identifier (e.g. P001234); id is the surrogate key
type Patient struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	PatientID        string `gorm:"size:50;uniqueIndex;not null" json:"patient_id"`
	Name             string `gorm:"size:255;not null" json:"name"`
	DateOfBirth      string `gorm:"size:20" json:"date_of_birth"`
	Gender           string `gorm:"size:30" json:"gender"`
	BloodType        string `gorm:"size:10" json:"blood_type"`
	Allergies        string `gorm:"type:text" json:"allergies"`
	Conditions       string `gorm:"type:text" json:"conditions"`
	Medications      string `gorm:"type:text" json:"medications"`
	EmergencyContact string `gorm:"size:255" json:"emergency_contact"`
	Insurance        string `gorm:"size:255" json:"insurance"`
	CreatedAt        string `gorm:"size:25" json:"created_at"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
