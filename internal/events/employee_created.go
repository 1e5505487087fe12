package events

import "time"

const EmployeeCreatedTopic = "rms.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	RefID      string    `json:"ref_id"`
	Company    string    `json:"company"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}
