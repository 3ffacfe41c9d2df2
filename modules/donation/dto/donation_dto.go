package dto

import "ella-rises-admin/core/dto"

type DonationRequest struct {
	DonorName     string `form:"donor_name" json:"donor_name" validate:"required"`
	DonorEmail    string `form:"donor_email" json:"donor_email" validate:"required,email"`
	DonorPhone    string `form:"donor_phone" json:"donor_phone"`
	Amount        string `form:"amount" json:"amount" validate:"required"`
	DonationType  string `form:"donation_type" json:"donation_type"`
	ParticipantID string `form:"participant_id" json:"participant_id"`
}

type DonationResponse struct {
	ID              int64   `json:"id"`
	DonorName       string  `json:"donor_name"`
	DonorEmail      string  `json:"donor_email"`
	DonorPhone      string  `json:"donor_phone,omitempty"`
	Amount          float64 `json:"amount"`
	DonationType    string  `json:"donation_type"`
	DonationDate    string  `json:"donation_date,omitempty"`
	ParticipantID   *int64  `json:"participant_id,omitempty"`
	ParticipantName string  `json:"participant_name,omitempty"`
}

// DonationList echoes the active amount bracket back so the filter control
// can stay selected.
type DonationList struct {
	dto.Pagination[DonationResponse]
	AmountFilter string `json:"amount_filter,omitempty"`
}
