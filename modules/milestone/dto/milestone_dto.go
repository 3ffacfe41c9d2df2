package dto

import "ella-rises-admin/core/dto"

type MilestoneRequest struct {
	ParticipantID   string `form:"participant_id" json:"participant_id" validate:"required"`
	MilestoneTypeID string `form:"milestone_type_id" json:"milestone_type_id" validate:"required"`
	MilestoneDate   string `form:"milestone_date" json:"milestone_date" validate:"required"`
	Notes           string `form:"notes" json:"notes"`
}

type MilestoneTypeRequest struct {
	Title    string `form:"title" json:"title" validate:"required"`
	Category string `form:"category" json:"category"`
}

type MilestoneResponse struct {
	ID              int64  `json:"id"`
	ParticipantID   int64  `json:"participant_id"`
	ParticipantName string `json:"participant_name,omitempty"`
	MilestoneDate   string `json:"milestone_date"`
	Notes           string `json:"notes,omitempty"`
	TypeTitle       string `json:"milestone_title,omitempty"`
	TypeCategory    string `json:"category,omitempty"`
}

type MilestoneTypeResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
}

// MilestoneList carries the page plus the type titles for the filter control.
type MilestoneList struct {
	dto.Pagination[MilestoneResponse]
	Type  string                  `json:"type,omitempty"`
	Types []MilestoneTypeResponse `json:"types"`
}
