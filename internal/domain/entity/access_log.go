package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmergencyAccessLog is the append-only audit trail of break-glass
// disclosures. Rows are never updated or deleted; dashboards aggregate them
// for access counts and "last accessed" display.
type EmergencyAccessLog struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	AccessType    string    `gorm:"type:varchar(20);not null;index" json:"access_type"`
	ResponderInfo string    `gorm:"type:text" json:"responder_info,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (EmergencyAccessLog) TableName() string {
	return "emergency_access_logs"
}

// Access type tags
const (
	AccessTypeURL    = "url_access"
	AccessTypeQRScan = "qr_scan"
)
