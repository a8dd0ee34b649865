package passwordreset

import (
	"time"

	"github.com/google/uuid"
)

// ResetRequest is the audit row written whenever an OTP is issued.
type ResetRequest struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Email       string    `gorm:"column:email;size:255;not null;index"`
	Delivered   bool      `gorm:"column:delivered;not null"`
	RequestedAt time.Time `gorm:"column:requested_at;type:timestamptz;not null"`
}

func (ResetRequest) TableName() string {
	return "password_reset_requests"
}
