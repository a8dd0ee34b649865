package events

import "time"

const EmployeeLifecycleTopic = "attendance.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmpID      string    `json:"emp_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EmployeeRemovedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmpID      string    `json:"emp_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
