package models

// User represents the users table
// Profiles are used for display and seeding only; the demo login accepts any
// credentials, so no password is stored.
type User struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Email      string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Role       string `gorm:"size:100" json:"role"`
	Specialty  string `gorm:"size:100" json:"specialty"`
	Department string `gorm:"size:100" json:"department"`
	Phone      string `gorm:"size:50" json:"phone"`
	CreatedAt  string `gorm:"size:25" json:"created_at"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}
