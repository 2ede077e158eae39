package dto

import (
	"github.com/google/uuid"
	"job-dashboard/constant"
	"time"
)

// JobEvent is published to the job events exchange after a mutation commits.
type JobEvent struct {
	EventId       uuid.UUID          `json:"eventId"`
	Type          constant.EventType `json:"type"`
	JobId         uint               `json:"jobId"`
	JobNo         string             `json:"jobNo"`
	ActorId       uint               `json:"actorId"`
	PreviousValue string             `json:"previousValue,omitempty"`
	CurrentValue  string             `json:"currentValue,omitempty"`
	OccurredAt    time.Time          `json:"occurredAt"`
}

// Actor is the authenticated caller, decoded from the gateway claim header.
type Actor struct {
	ID    uint          `json:"id"`
	Email string        `json:"email"`
	Role  constant.Role `json:"role"`
}
