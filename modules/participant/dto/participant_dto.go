package dto

import (
	"time"

	"ella-rises-admin/core/dto"
)

type ParticipantRequest struct {
	Email            string `form:"email" json:"email" validate:"required,email"`
	FirstName        string `form:"first_name" json:"first_name" validate:"required"`
	LastName         string `form:"last_name" json:"last_name" validate:"required"`
	Role             string `form:"role" json:"role"`
	SchoolOrEmployer string `form:"school_or_employer" json:"school_or_employer"`
	Phone            string `form:"phone" json:"phone"`
}

type ParticipantResponse struct {
	ID               int64     `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	FullName         string    `json:"full_name"`
	Role             string    `json:"role,omitempty"`
	SchoolOrEmployer string    `json:"school_or_employer,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type PaginatedParticipants = dto.Pagination[ParticipantResponse]

type MilestoneHistory struct {
	ID            int64  `json:"id"`
	MilestoneDate string `json:"milestone_date"`
	Notes         string `json:"notes,omitempty"`
	TypeTitle     string `json:"milestone_title,omitempty"`
	TypeCategory  string `json:"category,omitempty"`
}

type EventHistory struct {
	EventName        string    `json:"event_name"`
	EventType        string    `json:"event_type"`
	StartsAt         time.Time `json:"starts_at"`
	AttendanceStatus string    `json:"attendance_status"`
}

type ParticipantDetail struct {
	Participant ParticipantResponse `json:"participant"`
	Milestones  []MilestoneHistory  `json:"milestones"`
	Events      []EventHistory      `json:"events"`
}
