package dto

import (
	"time"

	"ella-rises-admin/core/dto"
)

type EventRequest struct {
	Name              string `form:"name" json:"name" validate:"required"`
	Type              string `form:"type" json:"type" validate:"required"`
	Description       string `form:"description" json:"description"`
	RecurrencePattern string `form:"recurrence_pattern" json:"recurrence_pattern"`
	DefaultCapacity   string `form:"default_capacity" json:"default_capacity"`
}

type EventResponse struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	Description       string    `json:"description,omitempty"`
	RecurrencePattern string    `json:"recurrence_pattern,omitempty"`
	DefaultCapacity   *int64    `json:"default_capacity,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// EventList carries the page plus the distinct type values that populate the
// filter dropdown.
type EventList struct {
	dto.Pagination[EventResponse]
	Type  string   `json:"type,omitempty"`
	Types []string `json:"types"`
}

type OccurrenceRequest struct {
	StartsAt             string `form:"starts_at" json:"starts_at" validate:"required"`
	EndsAt               string `form:"ends_at" json:"ends_at" validate:"required"`
	Location             string `form:"location" json:"location"`
	Capacity             string `form:"capacity" json:"capacity"`
	RegistrationDeadline string `form:"registration_deadline" json:"registration_deadline"`
}

type OccurrenceResponse struct {
	ID                   int64     `json:"id"`
	EventID              int64     `json:"event_id"`
	StartsAt             time.Time `json:"starts_at"`
	EndsAt               time.Time `json:"ends_at"`
	Location             string    `json:"location,omitempty"`
	Capacity             *int64    `json:"capacity,omitempty"`
	RegistrationDeadline string    `json:"registration_deadline,omitempty"`
}

type EventDetail struct {
	Event       EventResponse        `json:"event"`
	Occurrences []OccurrenceResponse `json:"occurrences"`
}

type RegistrationRequest struct {
	ParticipantID    string `form:"participant_id" json:"participant_id" validate:"required"`
	AttendanceStatus string `form:"attendance_status" json:"attendance_status"`
}
