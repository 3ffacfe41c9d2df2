package dto

import (
	"time"

	"ella-rises-admin/core/dto"
)

type SurveyRequest struct {
	RegistrationID    string `form:"registration_id" json:"registration_id"`
	SatisfactionScore string `form:"satisfaction_score" json:"satisfaction_score"`
	Comments          string `form:"comments" json:"comments"`
}

type SurveyResponse struct {
	ID                int64     `json:"id"`
	RegistrationID    *int64    `json:"registration_id,omitempty"`
	SubmissionDate    time.Time `json:"submission_date"`
	SatisfactionScore *int64    `json:"satisfaction_score,omitempty"`
	Comments          string    `json:"comments,omitempty"`
	ParticipantName   string    `json:"participant_name,omitempty"`
	EventName         string    `json:"event_name,omitempty"`
	EventDate         string    `json:"event_date,omitempty"`
}

type PaginatedSurveys = dto.Pagination[SurveyResponse]
