package dto

type Totals struct {
	Participants int     `json:"participants"`
	Events       int     `json:"events"`
	Surveys      int     `json:"surveys"`
	Milestones   int     `json:"milestones"`
	DonationSum  float64 `json:"donation_sum"`
}

type RecentParticipant struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	JoinedOn string `json:"joined_on"`
}

type RecentMilestone struct {
	ID              int64  `json:"id"`
	ParticipantName string `json:"participant_name,omitempty"`
	Title           string `json:"title,omitempty"`
	Date            string `json:"date"`
}

type RecentSurvey struct {
	ID                int64  `json:"id"`
	ParticipantName   string `json:"participant_name,omitempty"`
	EventName         string `json:"event_name,omitempty"`
	SatisfactionScore *int64 `json:"satisfaction_score,omitempty"`
	SubmittedOn       string `json:"submitted_on"`
}

type RecentDonation struct {
	ID        int64   `json:"id"`
	DonorName string  `json:"donor_name"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date,omitempty"`
}

type Dashboard struct {
	Totals       Totals              `json:"totals"`
	Participants []RecentParticipant `json:"recent_participants"`
	Milestones   []RecentMilestone   `json:"recent_milestones"`
	Surveys      []RecentSurvey      `json:"recent_surveys"`
	Donations    []RecentDonation    `json:"recent_donations"`
}
