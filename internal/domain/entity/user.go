package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table. Username doubles as
// the public emergency handle (embedded in emergency URLs and QR codes), so
// it is immutable after registration.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Username  string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role           Role                `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	MedicalProfile *MedicalProfile     `gorm:"foreignKey:UserID" json:"medical_profile,omitempty"`
	DoctorProfile  *DoctorProfile      `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
	Contacts       []EmergencyContact  `gorm:"foreignKey:UserID" json:"contacts,omitempty"`
	AccessLogs     []EmergencyAccessLog `gorm:"foreignKey:UserID" json:"access_logs,omitempty"`
}

func (User) TableName() string {
	return "users"
}
