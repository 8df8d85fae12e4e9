package events

import "time"

const EmployeeLifecycleTopic = "report.employee.lifecycle.v1"

type EmployeeCreatedEvent struct {
	EventType    string    `json:"event_type"`
	RequestID    string    `json:"request_id,omitempty"`
	EmployeeCode string    `json:"employee_code"`
	Role         string    `json:"role"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type EmployeeDeletedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	EmployeeCode   string    `json:"employee_code"`
	DeletedBy      string    `json:"deleted_by"`
	ReportsRemoved int       `json:"reports_removed"`
	OccurredAt     time.Time `json:"occurred_at"`
}
