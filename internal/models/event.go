package models

import (
	"time"

	"github.com/google/uuid"
)

// Application lifecycle event types.
const (
	EventApplicationCreated = "application.created"
	EventApplicationUpdated = "application.updated"
	EventApplicationDeleted = "application.deleted"
)

// ApplicationEvent is published to the event stream when an
// application changes.
type ApplicationEvent struct {
	Type          string    `json:"type"`
	UserID        uuid.UUID `json:"user_id"`
	ApplicationID uuid.UUID `json:"application_id"`
	CompanyName   string    `json:"company_name,omitempty"`
	JobTitle      string    `json:"job_title,omitempty"`
	Status        string    `json:"status,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}
