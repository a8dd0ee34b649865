package events

import "time"

const AttendanceRecordedTopic = "attendance.event.recorded.v1"

type AttendanceRecordedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmpID      string    `json:"emp_id"`
	Action     string    `json:"action"`
	Date       string    `json:"date"`
	Location   string    `json:"location"`
	OccurredAt time.Time `json:"occurred_at"`
}
