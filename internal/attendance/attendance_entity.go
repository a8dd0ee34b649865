package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActionCheckIn  = "checkin"
	ActionCheckOut = "checkout"
)

// AttendanceLog is one immutable ledger event. Rows are append-only;
// the unique index makes a duplicate (emp, day, action) insert surface
// as a conflict instead of a second row.
type AttendanceLog struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmpID     string    `gorm:"column:emp_id;size:16;not null;uniqueIndex:uq_attendance_emp_date_action,priority:1"`
	Action    string    `gorm:"column:action;size:10;not null;uniqueIndex:uq_attendance_emp_date_action,priority:3"`
	Timestamp time.Time `gorm:"column:timestamp;type:timestamptz;not null;index"`
	Date      string    `gorm:"column:date;size:10;not null;uniqueIndex:uq_attendance_emp_date_action,priority:2"`
	IPAddress string    `gorm:"column:ip_address;size:45"`
	Location  string    `gorm:"column:location;size:255"`
}

func (AttendanceLog) TableName() string {
	return "attendance_logs"
}
